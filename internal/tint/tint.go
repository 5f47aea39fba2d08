package tint

import (
	"crypto/md5"
	"math"

	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/rgba"
)

// Scalar maps identity to a fraction in [0,1) using its MD5 digest. The
// empty string is a valid identity.
func Scalar(identity string) float64 {
	return digestScalar(md5.Sum([]byte(identity)))
}

// digestScalar combines the first and last digest bytes. The maximum value
// 0xFFFF/0xFFFF is 1, which wraps to 0.
func digestScalar(sum [md5.Size]byte) float64 {
	v := uint16(sum[0])<<8 | uint16(sum[len(sum)-1])
	return wrap(float64(v) / 0xFFFF)
}

// Segment returns the stop indices and mix factor for k over n stops.
// k outside [0,1) wraps onto it. n must be at least 1.
func Segment(k float64, n int) (a, b int, factor float64) {
	k = wrap(k)
	fn := float64(n)

	a = int(math.Floor(k * fn))
	if a >= n {
		a = n - 1
	}
	if a < 0 {
		a = 0
	}
	b = (a + 1) % n

	factor = k*fn - float64(a)
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return a, b, factor
}

func wrap(k float64) float64 {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0
	}
	k -= math.Floor(k)
	if k >= 1 {
		return 0
	}
	return k
}

// ByScalar returns the palette color at position k for theme.
func ByScalar(k float64, p palette.Palette, theme palette.Theme) rgba.Color {
	stops := p.Stops(theme)
	a, b, factor := Segment(k, len(stops))
	return stops[a].Mix(stops[b], factor)
}

// ForIdentity hashes identity and returns its palette color for theme.
func ForIdentity(identity string, theme palette.Theme, p palette.Palette) rgba.Color {
	return ByScalar(Scalar(identity), p, theme)
}
