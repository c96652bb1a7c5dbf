package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/horde/internal/scripting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedSizer int

func (f fixedSizer) WaveSize(int) int { return int(f) }

func TestWaveScriptGrowsWithWave(t *testing.T) {
	script, err := scripting.NewWaveScript(`
function wave(n, min, max)
  return min + n - 1
end
`, 3, 8, fixedSizer(-1), zap.NewNop())
	require.NoError(t, err)
	defer script.Close()

	assert.Equal(t, 3, script.WaveSize(1))
	assert.Equal(t, 4, script.WaveSize(2))
	assert.Equal(t, 12, script.WaveSize(10))
}

func TestWaveScriptClampsResult(t *testing.T) {
	script, err := scripting.NewWaveScript(`
function wave(n, min, max)
  if n == 1 then return -5 end
  return 1e9
end
`, 3, 8, fixedSizer(-1), zap.NewNop())
	require.NoError(t, err)
	defer script.Close()

	assert.Equal(t, 0, script.WaveSize(1))
	assert.Equal(t, 1000, script.WaveSize(2))
}

func TestWaveScriptFallsBack(t *testing.T) {
	script, err := scripting.NewWaveScript(`
function wave(n, min, max)
  if n == 1 then error("boom") end
  return "many"
end
`, 3, 8, fixedSizer(5), zap.NewNop())
	require.NoError(t, err)
	defer script.Close()

	assert.Equal(t, 5, script.WaveSize(1), "runtime error")
	assert.Equal(t, 5, script.WaveSize(2), "non-numeric result")
}

func TestWaveScriptLoadErrors(t *testing.T) {
	_, err := scripting.NewWaveScript(`function wave(`, 3, 8, fixedSizer(0), zap.NewNop())
	assert.ErrorContains(t, err, "load wave script")

	_, err = scripting.NewWaveScript(`x = 1`, 3, 8, fixedSizer(0), zap.NewNop())
	assert.ErrorContains(t, err, "does not define")

	_, err = scripting.LoadWaveScript(filepath.Join(t.TempDir(), "missing.lua"), 3, 8, fixedSizer(0), zap.NewNop())
	assert.Error(t, err)
}

func TestLoadWaveScriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.lua")
	require.NoError(t, os.WriteFile(path, []byte("function wave(n, min, max) return max end\n"), 0o644))

	script, err := scripting.LoadWaveScript(path, 3, 8, fixedSizer(0), zap.NewNop())
	require.NoError(t, err)
	defer script.Close()

	assert.Equal(t, 8, script.WaveSize(1))
}

func TestShippedWaveScript(t *testing.T) {
	script, err := scripting.LoadWaveScript(filepath.Join("..", "..", "scripts", "waves.lua"), 3, 8, fixedSizer(-1), zap.NewNop())
	require.NoError(t, err)
	defer script.Close()

	assert.Equal(t, 3, script.WaveSize(1))
	assert.Equal(t, 3, script.WaveSize(2))
	assert.Equal(t, 4, script.WaveSize(3))
	assert.Equal(t, 16, script.WaveSize(100))
}
