package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rigid placement in world space. The local -Z axis is forward and +Y is up.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// IdentityTransform is at the origin looking down -Z.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// LookingAt builds a transform at position whose forward axis points at target.
// When target coincides with position the identity rotation is used. When the view
// direction is parallel to up, a perpendicular up is substituted.
//
// Parameters:
//   - position: the eye position
//   - target: the point to face
//   - up: the preferred up direction
//
// Returns:
//   - Transform: the placement
func LookingAt(position, target, up mgl32.Vec3) Transform {
	t := Transform{Position: position, Rotation: mgl32.QuatIdent()}
	t.LookAt(target, up)
	return t
}

// LookAt rotates t in place so that it faces target. Position is unchanged.
//
// Parameters:
//   - target: the point to face
//   - up: the preferred up direction
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	dir := target.Sub(t.Position)
	if dir.Len() < 1e-6 {
		return
	}
	back := dir.Mul(-1).Normalize()

	right := up.Cross(back)
	if right.Len() < 1e-6 {
		// Looking straight along up: any axis perpendicular to back will do.
		alt := mgl32.Vec3{1, 0, 0}
		if mgl32.Abs(back.X()) > 0.9 {
			alt = mgl32.Vec3{0, 0, 1}
		}
		right = alt.Cross(back)
	}
	right = right.Normalize()
	trueUp := back.Cross(right)

	basis := mgl32.Mat3FromCols(right, trueUp, back)
	t.Rotation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}

// Forward returns the world-space direction the transform faces.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the world-space local +X axis.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the world-space local +Y axis.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Mat4 returns the local-to-world matrix.
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

// View returns the world-to-view matrix, the inverse of Mat4.
func (t Transform) View() mgl32.Mat4 {
	inv := t.Rotation.Conjugate()
	p := inv.Rotate(t.Position.Mul(-1))
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(inv.Mat4())
}
