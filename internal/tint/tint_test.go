package tint

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/rgba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = rgba.MustParse("#ff0000")
	blue = rgba.MustParse("#0000ff")
)

func TestScalarKnownDigests(t *testing.T) {
	// md5("") = d41d8cd9...ecf8427e
	assert.Equal(t, float64(0xd47e)/0xFFFF, Scalar(""))
	// md5("abc") = 90015098...28e17f72
	assert.Equal(t, float64(0x9072)/0xFFFF, Scalar("abc"))
}

func TestDigestScalarWrapsMaximum(t *testing.T) {
	var sum [16]byte
	for i := range sum {
		sum[i] = 0xff
	}
	assert.Equal(t, 0.0, digestScalar(sum))

	sum[15] = 0xfe
	assert.Equal(t, float64(0xfffe)/0xFFFF, digestScalar(sum))
	assert.Less(t, digestScalar(sum), 1.0)
}

func TestScalarIsDeterministic(t *testing.T) {
	for _, id := range []string{"", "my-project", "/home/me/src/pigment", "ünïcødé"} {
		first := Scalar(id)
		for i := 0; i < 10; i++ {
			assert.Equal(t, math.Float64bits(first), math.Float64bits(Scalar(id)))
		}
		assert.GreaterOrEqual(t, first, 0.0)
		assert.Less(t, first, 1.0)
	}
}

func TestScalarSpreadsSimilarNames(t *testing.T) {
	scalars := make(map[float64]struct{})
	colors := make(map[string]struct{})
	p := palette.Default()
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("project-%02d", i)
		scalars[Scalar(id)] = struct{}{}
		colors[ForIdentity(id, palette.Light, p).Hex()] = struct{}{}
	}
	// Collisions are allowed but must be rare.
	assert.GreaterOrEqual(t, len(scalars), 48)
	assert.GreaterOrEqual(t, len(colors), 45)
}

func TestByScalarZeroIsFirstStop(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for size := 1; size <= 20; size++ {
		stops := make([]rgba.Color, size)
		for i := range stops {
			stops[i] = rgba.New(uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256)), rng.Float64())
		}
		p := palette.Palette{Light: stops, Dark: stops}
		got := ByScalar(0, p, palette.Light)
		assert.Truef(t, got.Equal(stops[0]), "size %d: got %v want %v", size, got, stops[0])
	}
}

func TestSegmentBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1337))
	for i := 0; i < 10000; i++ {
		n := 2 + rng.IntN(19)
		k := rng.Float64()
		a, b, factor := Segment(k, n)
		require.True(t, a >= 0 && a < n, "a=%d n=%d k=%v", a, n, k)
		require.True(t, b >= 0 && b < n, "b=%d n=%d k=%v", b, n, k)
		require.True(t, factor >= 0 && factor <= 1, "factor=%v", factor)
	}
}

func TestSegmentEdges(t *testing.T) {
	tests := []struct {
		k      float64
		n      int
		a, b   int
		factor float64
	}{
		{0, 3, 0, 1, 0},
		{0.5, 3, 1, 2, 0.5},
		{1, 3, 0, 1, 0},
		{math.Nextafter(1, 0), 3, 2, 0, 1},
		{-0.25, 4, 3, 0, 0},
		{math.NaN(), 3, 0, 1, 0},
		{0.7, 1, 0, 0, 0.7},
	}
	for _, tt := range tests {
		a, b, factor := Segment(tt.k, tt.n)
		assert.Equalf(t, tt.a, a, "k=%v n=%d", tt.k, tt.n)
		assert.Equalf(t, tt.b, b, "k=%v n=%d", tt.k, tt.n)
		assert.InDeltaf(t, tt.factor, factor, 1e-9, "k=%v n=%d", tt.k, tt.n)
	}
}

func TestByScalarTwoStopMidpoint(t *testing.T) {
	// [red, blue] closes to [red, blue, red]; k=0.5 sits halfway from blue to red.
	p := palette.Palette{Light: []rgba.Color{red, blue}}
	got := ByScalar(0.5, p, palette.Light)
	assert.Equal(t, blue.Mix(red, 0.5), got)
	assert.Equal(t, rgba.Color{R: 127, G: 0, B: 127, A: 1}, got)
}

func TestByScalarSelectsTheme(t *testing.T) {
	p := palette.Palette{
		Light: []rgba.Color{red},
		Dark:  []rgba.Color{blue},
	}
	assert.Equal(t, red, ByScalar(0.3, p, palette.Light))
	assert.Equal(t, blue, ByScalar(0.3, p, palette.Dark))
}

func TestByScalarApproachesSeam(t *testing.T) {
	p := palette.Palette{Light: []rgba.Color{red, blue}}
	near := ByScalar(math.Nextafter(1, 0), p, palette.Light)
	assert.Equal(t, red, near)
}

func TestForIdentityMatchesByScalar(t *testing.T) {
	p := palette.Default()
	assert.Equal(t, ByScalar(Scalar("my-project"), p, palette.Dark), ForIdentity("my-project", palette.Dark, p))
}
