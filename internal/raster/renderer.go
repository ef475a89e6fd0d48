// Package raster is a software rasterizer that consumes scene draw calls.
package raster

import (
	"orrery/internal/mathutil"
	"orrery/internal/mesh"
	"orrery/internal/scene"
	"orrery/internal/starfield"
	"orrery/internal/texture"
)

// Stats counts what the last passes submitted.
type Stats struct {
	Triangles int
	Lines     int
	Points    int
	Culled    int
}

// Renderer draws into a FrameBuffer. It implements scene.Sink.
type Renderer struct {
	fb       *FrameBuffer
	meshes   *mesh.Library
	textures texture.Resolver
	lc       LightConfig

	viewProj mathutil.Mat4
	eye      mathutil.Vec3
	light    mathutil.Vec3

	Stats Stats
}

// NewRenderer creates a renderer over fb. textures may be nil.
func NewRenderer(fb *FrameBuffer, meshes *mesh.Library, textures texture.Resolver) *Renderer {
	return &Renderer{
		fb:       fb,
		meshes:   meshes,
		textures: textures,
		lc:       DefaultLightConfig(),
		viewProj: mathutil.Mat4Identity(),
	}
}

// FrameBuffer returns the render target.
func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

// SetCamera sets the world-to-clip transform and the eye used for
// specular highlights.
func (r *Renderer) SetCamera(view, proj mathutil.Mat4, eye mathutil.Vec3) {
	r.viewProj = proj.Mul(view)
	r.eye = eye
}

// Light sets the point light for subsequent draws.
func (r *Renderer) Light(pos mathutil.Vec4) {
	r.light = pos.XYZ()
}

// Draw rasterizes one call.
func (r *Renderer) Draw(c scene.DrawCall) {
	switch c.Prim {
	case scene.Sphere:
		r.sphere(c)
	case scene.Ring:
		r.ring(c)
	case scene.Axes:
		r.axes(c)
	}
}

// project maps a world point to the screen. Points behind the eye or
// outside the depth range are rejected.
func (r *Renderer) project(p mathutil.Vec3) (point, bool) {
	clip := r.viewProj.MulVec4(p.Point())
	w := clip[3]
	if w <= 1e-9 {
		return point{}, false
	}
	nx, ny, nz := clip[0]/w, clip[1]/w, clip[2]/w
	if nz < -1 || nz > 1 {
		return point{}, false
	}
	return point{
		x: (nx + 1) * 0.5 * float64(r.fb.Width),
		y: (1 - ny) * 0.5 * float64(r.fb.Height),
		z: -nz,
	}, true
}

func rgb8(c mathutil.Vec4) (uint8, uint8, uint8) {
	return toSRGB8(c[0]), toSRGB8(c[1]), toSRGB8(c[2])
}

func (r *Renderer) sphere(c scene.DrawCall) {
	tris := r.meshes.Sphere(c.Detail)
	nm := mathutil.NormalMatrix(c.Model)

	s := surface{
		mode:     c.Shading,
		material: c.Material,
		alpha:    toSRGB8(c.Color[3]),
		light:    r.light,
		eye:      r.eye,
		lc:       &r.lc,
	}
	s.r, s.g, s.b = rgb8(c.Color)
	if r.textures != nil && c.Texture != "" {
		s.tex = r.textures.Resolve(c.Texture)
	}

	var v [3]vertex
	for i := 0; i+2 < tris.Len(); i += 3 {
		visible := true
		var centroid, outward mathutil.Vec3
		for k := 0; k < 3; k++ {
			local := tris.Positions[i+k]
			world := c.Model.MulPoint(local)
			p, ok := r.project(world)
			if !ok {
				visible = false
				break
			}
			n := nm.MulVec3(tris.Normals[i+k]).Normalize()
			v[k] = vertex{x: p.x, y: p.y, z: p.z, world: world, normal: n, local: local}
			centroid = centroid.Add(world)
			outward = outward.Add(n)
		}
		if !visible {
			continue
		}
		centroid = centroid.Scale(1.0 / 3)
		if outward.Dot(r.eye.Sub(centroid)) < 0 {
			r.Stats.Culled++
			continue
		}

		switch c.Shading {
		case scene.Flat:
			fn := nm.MulVec3(tris.FlatNormals[i]).Normalize()
			l := Phong(c.Material, centroid, fn, r.light, r.eye)
			v[0].light, v[1].light, v[2].light = l, l, l
		case scene.Gouraud:
			for k := range v {
				v[k].light = Phong(c.Material, v[k].world, v[k].normal, r.light, r.eye)
			}
		}

		rasterizeTriangle(r.fb, &v, &s)
		r.Stats.Triangles++
	}
}

func (r *Renderer) ring(c scene.DrawCall) {
	pts := r.meshes.Ring()
	cr, cg, cb := rgb8(c.Color)
	for i := range pts {
		a, okA := r.project(c.Model.MulPoint(pts[i]))
		b, okB := r.project(c.Model.MulPoint(pts[(i+1)%len(pts)]))
		if !okA || !okB {
			continue
		}
		drawLine(r.fb, a, b, cr, cg, cb)
		r.Stats.Lines++
	}
}

func (r *Renderer) axes(c scene.DrawCall) {
	for _, seg := range r.meshes.Axes() {
		a, okA := r.project(c.Model.MulPoint(seg.From))
		b, okB := r.project(c.Model.MulPoint(seg.To))
		if !okA || !okB {
			continue
		}
		cr, cg, cb := rgb8(seg.Color)
		drawLine(r.fb, a, b, cr, cg, cb)
		r.Stats.Lines++
	}
}

// Stars blends the starfield behind everything drawn so far.
func (r *Renderer) Stars(f *starfield.Field) {
	for _, st := range f.Stars {
		p, ok := r.project(st.Pos)
		if !ok {
			continue
		}
		cr, cg, cb := rgb8(st.Color)
		drawPoint(r.fb, p, cr, cg, cb, st.Color[3])
		r.Stats.Points++
	}
}
