package raster

import (
	"math"

	"orrery/internal/mathutil"
	"orrery/internal/scene"
)

// LightConfig holds the tone-mapping parameters shared by every draw.
type LightConfig struct {
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns the standard exposure and display gamma.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// shade is the lighting at one surface point: base color is scaled by
// Diffuse (ambient included) and Specular is added as white.
type shade struct {
	Diffuse  float64
	Specular float64
}

func lerpShade(a, b, c shade, w0, w1, w2 float64) shade {
	return shade{
		Diffuse:  w0*a.Diffuse + w1*b.Diffuse + w2*c.Diffuse,
		Specular: w0*a.Specular + w1*b.Specular + w2*c.Specular,
	}
}

// Phong evaluates ambient + diffuse + specular for a point at pos with unit
// normal n, lit from light and seen from eye.
func Phong(m scene.Material, pos, n, light, eye mathutil.Vec3) shade {
	l := light.Sub(pos).Normalize()
	v := eye.Sub(pos).Normalize()
	h := l.Add(v).Normalize()

	s := shade{Diffuse: m.Ambient}
	ndl := n.Dot(l)
	if ndl <= 0 {
		return s
	}
	s.Diffuse += m.Diffuse * ndl
	if ndh := n.Dot(h); ndh > 0 && m.Specular > 0 {
		s.Specular = m.Specular * math.Pow(ndh, math.Max(m.Shininess, 1))
	}
	return s
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// apply lights an sRGB base color and returns the display color.
func (lc *LightConfig) apply(r, g, b uint8, s shade) (uint8, uint8, uint8) {
	k := s.Diffuse * lc.Exposure
	sp := s.Specular * lc.Exposure
	tr := ACESTonemap(srgbToLinear[r]*k + sp)
	tg := ACESTonemap(srgbToLinear[g]*k + sp)
	tb := ACESTonemap(srgbToLinear[b]*k + sp)
	return clamp255(math.Pow(tr, lc.InvGamma) * 255),
		clamp255(math.Pow(tg, lc.InvGamma) * 255),
		clamp255(math.Pow(tb, lc.InvGamma) * 255)
}

// toSRGB8 converts a [0, 1] color channel to 8 bits.
func toSRGB8(v float64) uint8 {
	return clamp255(v * 255)
}
