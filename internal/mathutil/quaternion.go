package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w). Rotation helpers assume unit length.
type Quat [4]float64

// QuatIdentity is the no-op rotation.
var QuatIdentity = Quat{0, 0, 0, 1}

// Normalize scales q to unit length in place. It leaves q untouched when the
// squared magnitude is already within Tolerance of 1, or within Tolerance of 0.
func (q *Quat) Normalize() {
	mag2 := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if math.Abs(mag2) <= Tolerance || math.Abs(mag2-1) <= Tolerance {
		return
	}
	mag := math.Sqrt(mag2)
	q[0] /= mag
	q[1] /= mag
	q[2] /= mag
	q[3] /= mag
}

// Conjugate returns (-x, -y, -z, w). It is the inverse only for unit quaternions.
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// Mul returns the Hamilton product q × r. Applied to a vector, r's rotation
// happens first.
func (q Quat) Mul(r Quat) Quat {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return Quat{
		w*r[0] + x*r[3] + y*r[2] - z*r[1],
		w*r[1] + y*r[3] + z*r[0] - x*r[2],
		w*r[2] + z*r[3] + x*r[1] - y*r[0],
		w*r[3] - x*r[0] - y*r[1] - z*r[2],
	}
}

// Rotate applies q to the direction of v via q·v·q*. The input is normalized
// first, so the result is always unit length.
func (q Quat) Rotate(v Vec3) Vec3 {
	vn := v.Normalize()
	vq := Quat{vn[0], vn[1], vn[2], 0}
	res := q.Mul(vq.Mul(q.Conjugate()))
	return Vec3{res[0], res[1], res[2]}
}

// QuatFromAxisAngle builds the rotation of angle radians around axis.
// The axis need not be normalized but must be non-zero.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	half := angle * 0.5
	vn := axis.Normalize()
	s := math.Sin(half)
	return Quat{vn[0] * s, vn[1] * s, vn[2] * s, math.Cos(half)}
}

// EulerToQuat converts Euler XYZ (radians) to a quaternion.
func EulerToQuat(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// QuatFromEuler builds a normalized quaternion from pitch, yaw and roll in
// degrees. Roll turns around X, pitch around Y, yaw around Z.
func QuatFromEuler(pitch, yaw, roll float64) Quat {
	q := EulerToQuat(Deg2Rad(roll), Deg2Rad(pitch), Deg2Rad(yaw))
	q.Normalize()
	return q
}

// QuatToMat3 converts a unit quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat4 converts a unit quaternion to a homogeneous rotation matrix.
func (q Quat) Mat4() Mat4 {
	return FromMat3Translation(QuatToMat3(q), Vec3{})
}

// AxisAngle returns the rotation axis and angle in radians.
// The identity quaternion has no axis; the result is NaN there.
func (q Quat) AxisAngle() (Vec3, float64) {
	scale := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2])
	axis := Vec3{q[0] / scale, q[1] / scale, q[2] / scale}
	return axis, math.Acos(q[3]) * 2
}
