package geom_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/horde/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddle(t *testing.T) {
	box := geom.Box{X: 10, Y: 20, W: 64, H: 32}
	assert.Equal(t, geom.Vector{X: 42, Y: 36}, box.Middle())

	assert.Equal(t, box.Middle(), geom.NewBox(box.Middle(), 64, 32).Middle())
	assert.Equal(t, geom.Vector{X: 5, Y: 5}, geom.Box{X: 1, Y: 1, W: 8, H: 8}.CenterOn(geom.Vector{X: 9, Y: 9}).Origin())
}

func TestIntersects(t *testing.T) {
	a := geom.Box{X: 0, Y: 0, W: 64, H: 64}

	tests := []struct {
		name      string
		b         geom.Box
		threshold float64
		want      bool
	}{
		{"identical", a, 0, true},
		{"edge touching", geom.Box{X: 64, Y: 0, W: 64, H: 64}, 0, false},
		{"one pixel overlap", geom.Box{X: 63, Y: 0, W: 64, H: 64}, 0, true},
		{"shallow overlap under threshold", geom.Box{X: 50, Y: 0, W: 64, H: 64}, 25, false},
		{"deep overlap over threshold", geom.Box{X: 20, Y: 20, W: 64, H: 64}, 25, true},
		{"separated vertically", geom.Box{X: 0, Y: 100, W: 64, H: 64}, 0, false},
		{"bullet inside enemy", geom.Box{X: 28, Y: 28, W: 8, H: 8}, 25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b, tt.threshold))
		})
	}
}

func randomBox(r *rand.Rand) geom.Box {
	return geom.Box{
		X: r.Float64()*200 - 50,
		Y: r.Float64()*200 - 50,
		W: r.Float64() * 100,
		H: r.Float64() * 100,
	}
}

func TestIntersectsSymmetricAtZeroThreshold(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		a, b := randomBox(r), randomBox(r)
		require.Equal(t, a.Intersects(b, 0), b.Intersects(a, 0), "a=%+v b=%+v", a, b)
	}
}

func TestIntersectsMonotonicInThreshold(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	thresholds := []float64{0, 1, 5, 10, 25, 40}

	for i := 0; i < 2000; i++ {
		a, b := randomBox(r), randomBox(r)
		for j := 1; j < len(thresholds); j++ {
			if a.Intersects(b, thresholds[j]) {
				require.True(t, a.Intersects(b, thresholds[j-1]),
					"hit at threshold %v but not at %v: a=%+v b=%+v", thresholds[j], thresholds[j-1], a, b)
			}
		}
	}
}

func TestClampTo(t *testing.T) {
	bounds := geom.Vector{X: 800, Y: 600}

	tests := []struct {
		name string
		in   geom.Box
		want geom.Vector
	}{
		{"inside", geom.Box{X: 10, Y: 10, W: 64, H: 64}, geom.Vector{X: 10, Y: 10}},
		{"negative", geom.Box{X: -5, Y: -100, W: 64, H: 64}, geom.Vector{X: 0, Y: 0}},
		{"past far edge", geom.Box{X: 790, Y: 599, W: 64, H: 64}, geom.Vector{X: 736, Y: 536}},
		{"larger than arena", geom.Box{X: 30, Y: 30, W: 1000, H: 1000}, geom.Vector{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClampTo(bounds)
			assert.Equal(t, tt.want, got.Origin())
			assert.Equal(t, tt.in.Size(), got.Size())
		})
	}
}

func TestOriginWithin(t *testing.T) {
	bounds := geom.Vector{X: 100, Y: 100}

	assert.True(t, geom.Box{X: 0, Y: 0, W: 8, H: 8}.OriginWithin(bounds))
	assert.True(t, geom.Box{X: 100, Y: 100, W: 8, H: 8}.OriginWithin(bounds))
	assert.False(t, geom.Box{X: -0.1, Y: 50, W: 8, H: 8}.OriginWithin(bounds))
	assert.False(t, geom.Box{X: 50, Y: 100.5, W: 8, H: 8}.OriginWithin(bounds))
}

func TestNormalize(t *testing.T) {
	unit, ok := geom.Vector{X: 100, Y: 0}.Normalize()
	require.True(t, ok)
	assert.Equal(t, geom.Vector{X: 1, Y: 0}, unit)

	unit, ok = geom.Vector{X: 3, Y: -4}.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 1.0, unit.Len(), 1e-12)
	assert.InDelta(t, 0.6, unit.X, 1e-12)
	assert.InDelta(t, -0.8, unit.Y, 1e-12)

	_, ok = geom.Vector{}.Normalize()
	assert.False(t, ok)
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 0, geom.Vector{X: 1}.Angle(), 1e-12)
	assert.InDelta(t, math.Pi/2, geom.Vector{Y: 1}.Angle(), 1e-12)
	assert.InDelta(t, math.Pi, geom.Vector{X: -1}.Angle(), 1e-12)

	dir := geom.FromAngle(math.Pi / 4)
	assert.InDelta(t, math.Sqrt2/2, dir.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, dir.Y, 1e-12)
}
