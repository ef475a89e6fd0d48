package mathutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

const eps = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return ApproxEqual(a[0], b[0], tol) && ApproxEqual(a[1], b[1], tol) && ApproxEqual(a[2], b[2], tol)
}

func quatNear(a, b Quat, tol float64) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func toGonum(q Quat) quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

func TestMulMatchesHamiltonProduct(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{1, 2, 3}, 0.7)
	b := QuatFromAxisAngle(Vec3{-2, 0.5, 1}, 2.1)

	got := a.Mul(b)
	want := quat.Mul(toGonum(a), toGonum(b))
	if !quatNear(got, Quat{want.Imag, want.Jmag, want.Kmag, want.Real}, eps) {
		t.Fatalf("Mul got %v, want %v", got, want)
	}
}

func TestRotateMatchesSandwichProduct(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 1, 1}, 2*math.Pi/3)
	v := Vec3{0, 0, 1}

	got := q.Rotate(v)
	p := quat.Mul(quat.Mul(toGonum(q), quat.Number{Kmag: 1}), quat.Conj(toGonum(q)))
	if !vecNear(got, Vec3{p.Imag, p.Jmag, p.Kmag}, eps) {
		t.Fatalf("Rotate got %v, want %v", got, p)
	}
	// 120° about the diagonal cycles z → x
	if !vecNear(got, XAxis, 1e-9) {
		t.Fatalf("Rotate(z) got %v, want x axis", got)
	}
}

func TestRotateKeepsAxisFixed(t *testing.T) {
	axes := []Vec3{XAxis, YAxis, ZAxis, Vec3{1, 1, 0}.Normalize(), Vec3{-3, 2, 7}.Normalize()}
	for _, axis := range axes {
		for _, theta := range []float64{0.1, 1, math.Pi / 2, 3, 5.5} {
			q := QuatFromAxisAngle(axis, theta)
			if got := q.Rotate(axis); !vecNear(got, axis, 1e-9) {
				t.Errorf("axis %v angle %v moved to %v", axis, theta, got)
			}
		}
	}
}

func TestRotateAgreesWithMatrix(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0.3, -1, 0.4}, 1.3)
	v := Vec3{2, -1, 0.5}.Normalize()
	if got, want := q.Rotate(v), q.Mat4().MulPoint(v); !vecNear(got, want, 1e-9) {
		t.Fatalf("Rotate %v, matrix %v", got, want)
	}
}

func TestComposeWithConjugateIsIdentity(t *testing.T) {
	for _, q := range []Quat{
		QuatFromAxisAngle(Vec3{1, 0, 0}, 0.4),
		QuatFromAxisAngle(Vec3{1, 2, 3}, 2.5),
		QuatFromEuler(30, 45, 60),
	} {
		r := q.Mul(q.Conjugate())
		r.Normalize()
		if !quatNear(r, QuatIdentity, 1e-9) {
			t.Errorf("q*q* = %v for q=%v", r, q)
		}
	}
}

func TestIdentityToMatrix(t *testing.T) {
	if m := QuatIdentity.Mat4(); !m.IsIdentity() {
		t.Fatalf("identity quaternion gave %v", m)
	}
}

func TestAxisAngleRoundTrip(t *testing.T) {
	cases := []struct {
		axis  Vec3
		angle float64
	}{
		{Vec3{0, 1, 0}, 0.5},
		{Vec3{3, 0, 4}, 1.2},
		{Vec3{-1, -1, 2}, 3.0},
	}
	for _, c := range cases {
		axis, angle := QuatFromAxisAngle(c.axis, c.angle).AxisAngle()
		if !ApproxEqual(angle, c.angle, 1e-9) {
			t.Errorf("angle got %v want %v", angle, c.angle)
		}
		if !vecNear(axis, c.axis.Normalize(), 1e-9) {
			t.Errorf("axis got %v want %v", axis, c.axis.Normalize())
		}
	}
}

func TestAxisAngleOfIdentityIsUndefined(t *testing.T) {
	axis, _ := QuatIdentity.AxisAngle()
	if !math.IsNaN(axis[0]) {
		t.Fatalf("expected NaN axis, got %v", axis)
	}
}

func TestNormalize(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	q.Normalize()
	mag := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if !ApproxEqual(mag, 1, 1e-12) {
		t.Fatalf("magnitude %v after Normalize", mag)
	}

	tiny := Quat{1e-4, 0, 0, 1e-4}
	tiny.Normalize()
	if tiny != (Quat{1e-4, 0, 0, 1e-4}) {
		t.Fatalf("near-zero quaternion changed to %v", tiny)
	}

	near := Quat{0, 0, 0, 1 + 1e-6}
	near.Normalize()
	if near != (Quat{0, 0, 0, 1 + 1e-6}) {
		t.Fatalf("near-unit quaternion changed to %v", near)
	}
}

func TestFromEulerSingleAxes(t *testing.T) {
	cases := []struct {
		pitch, yaw, roll float64
		axis             Vec3
		angle            float64
	}{
		{90, 0, 0, YAxis, math.Pi / 2},
		{0, 90, 0, ZAxis, math.Pi / 2},
		{0, 0, 90, XAxis, math.Pi / 2},
	}
	for _, c := range cases {
		got := QuatFromEuler(c.pitch, c.yaw, c.roll)
		want := QuatFromAxisAngle(c.axis, c.angle)
		if !quatNear(got, want, 1e-9) {
			t.Errorf("FromEuler(%v,%v,%v) = %v, want %v", c.pitch, c.yaw, c.roll, got, want)
		}
	}
}
