package scene

import "orrery/internal/mathutil"

// ShadingMode selects how a body's surface is lit.
type ShadingMode int

const (
	Unlit   ShadingMode = iota - 1 // lines and helpers, no lighting
	Flat                           // one normal per face
	Gouraud                        // lit per vertex, interpolated
	Phong                          // lit per pixel
)

func (m ShadingMode) String() string {
	switch m {
	case Unlit:
		return "none"
	case Flat:
		return "flat"
	case Gouraud:
		return "gouraud"
	case Phong:
		return "phong"
	}
	return "unknown"
}

// Material holds the lighting coefficients of a body.
type Material struct {
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// Primitive is the kind of geometry a DrawCall refers to.
type Primitive int

const (
	Sphere Primitive = iota // tessellated unit sphere, level in DrawCall.Detail
	Ring                    // unit circle in the XZ plane, drawn as a line loop
	Axes                    // unit X/Y/Z triad, drawn red/green/blue
)

// DrawCall is one submission: geometry kind plus the uniform bindings the
// backend needs. Model is the full object-to-world transform.
type DrawCall struct {
	Prim     Primitive
	Detail   int
	Model    mathutil.Mat4
	Color    mathutil.Vec4
	Shading  ShadingMode
	Material Material
	Texture  string
	Body     string
}

// Sink consumes the output of a render pass.
type Sink interface {
	// Light sets the point light used by subsequent draws.
	Light(pos mathutil.Vec4)
	Draw(c DrawCall)
}

// Recorder is a Sink that keeps every call in submission order.
type Recorder struct {
	Lights []mathutil.Vec4
	Calls  []DrawCall
}

func (r *Recorder) Light(pos mathutil.Vec4) { r.Lights = append(r.Lights, pos) }

func (r *Recorder) Draw(c DrawCall) { r.Calls = append(r.Calls, c) }

// Reset drops recorded calls, keeping capacity.
func (r *Recorder) Reset() {
	r.Lights = r.Lights[:0]
	r.Calls = r.Calls[:0]
}

// Bodies returns the sphere draws only.
func (r *Recorder) Bodies() []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Prim == Sphere {
			out = append(out, c)
		}
	}
	return out
}
