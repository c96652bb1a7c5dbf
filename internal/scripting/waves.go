// Package scripting lets a Lua file decide how many enemies each wave brings.
package scripting

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Sizer picks the enemy count for the n-th wave, n starting at 1.
type Sizer interface {
	WaveSize(wave int) int
}

// maxWave caps what a script may ask for in one wave.
const maxWave = 1000

// WaveScript calls the global Lua function wave(n, min, max). Any script
// error or non-numeric result falls back to the wrapped Sizer for that wave.
type WaveScript struct {
	mu       sync.Mutex
	vm       *lua.LState
	min, max int
	fallback Sizer
	log      *zap.Logger
}

// LoadWaveScript runs the file at path and checks that it defines wave.
func LoadWaveScript(path string, min, max int, fallback Sizer, log *zap.Logger) (*WaveScript, error) {
	vm := lua.NewState()
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load wave script %s: %w", path, err)
	}
	return newWaveScript(vm, min, max, fallback, log)
}

// NewWaveScript is LoadWaveScript for an in-memory chunk.
func NewWaveScript(source string, min, max int, fallback Sizer, log *zap.Logger) (*WaveScript, error) {
	vm := lua.NewState()
	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load wave script: %w", err)
	}
	return newWaveScript(vm, min, max, fallback, log)
}

func newWaveScript(vm *lua.LState, min, max int, fallback Sizer, log *zap.Logger) (*WaveScript, error) {
	if _, ok := vm.GetGlobal("wave").(*lua.LFunction); !ok {
		vm.Close()
		return nil, fmt.Errorf("wave script does not define function wave(n, min, max)")
	}
	return &WaveScript{vm: vm, min: min, max: max, fallback: fallback, log: log}, nil
}

// WaveSize implements Sizer.
func (s *WaveScript) WaveSize(wave int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.vm.CallByParam(lua.P{
		Fn:      s.vm.GetGlobal("wave"),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(wave), lua.LNumber(s.min), lua.LNumber(s.max)); err != nil {
		s.log.Error("lua wave error", zap.Int("wave", wave), zap.Error(err))
		return s.fallback.WaveSize(wave)
	}

	result := s.vm.Get(-1)
	s.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		s.log.Error("lua wave returned non-number", zap.Int("wave", wave), zap.String("type", result.Type().String()))
		return s.fallback.WaveSize(wave)
	}
	return min(max(int(n), 0), maxWave)
}

// Close releases the VM.
func (s *WaveScript) Close() {
	s.mu.Lock()
	s.vm.Close()
	s.mu.Unlock()
}
