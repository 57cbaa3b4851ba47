package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func testSettings() *settings.Settings {
	return &settings.Settings{
		MouseSpeed:  0.01,
		PlanetScale: 1,
		MinDistance: 3,
		MaxDistance: 8,
	}
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func assertVec4(t *testing.T, want, got mgl32.Vec4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func assertQuat(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, eps, "w: want %v, got %v", want, got)
	assertVec3(t, want.V, got.V)
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d: want %v, got %v", i, want, got)
	}
}

// enterFreeLook runs the capture frame, which only switches mode.
func enterFreeLook(c Controller, s *settings.Settings, p *input.PointerAccumulator) {
	c.Update(FrameInput{Settings: s, Captured: true, Pointer: p})
}

func TestOrbitDistanceTable(t *testing.T) {
	tests := []struct {
		t    float32
		want float32
	}{
		{0, 5.5},
		{math32.Pi, 8.0},
		{2 * math32.Pi, 5.5},
		{3 * math32.Pi, 3.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, OrbitDistance(tt.t, 3, 8), eps, "t=%v", tt.t)
	}
}

func TestOrbitDistanceBoundedAndPeriodic(t *testing.T) {
	for i := 0; i < 1000; i++ {
		ts := float32(i) * 0.05
		d := OrbitDistance(ts, 3, 8)
		assert.GreaterOrEqual(t, d, float32(3)-eps)
		assert.LessOrEqual(t, d, float32(8)+eps)
		assert.InDelta(t, d, OrbitDistance(ts+4*math32.Pi, 3, 8), 1e-3)
	}
}

func TestOrbitDistanceDegenerateRange(t *testing.T) {
	assert.InDelta(t, 4.0, OrbitDistance(1.234, 4, 4), eps)
}

func TestAutoOrbitPlacesAndFaces(t *testing.T) {
	c := NewController()
	s := testSettings()

	c.Update(FrameInput{Settings: s, Elapsed: 0})
	assert.Equal(t, ModeAutoOrbit, c.Mode())
	tr := c.Transform()
	assertVec3(t, mgl32.Vec3{0, 0, 5.5}, tr.Position)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, tr.Forward())

	c.Update(FrameInput{Settings: s, Elapsed: math32.Pi})
	assertVec3(t, mgl32.Vec3{0, 0, 8}, c.Transform().Position)
}

func TestAutoOrbitFacesLookAt(t *testing.T) {
	s := testSettings()
	s.LookAt = mgl32.Vec3{1.5, 0, 0}
	c := NewController()

	c.Update(FrameInput{Settings: s, Elapsed: 2})
	tr := c.Transform()
	want := s.LookAt.Sub(tr.Position).Normalize()
	assertVec3(t, want, tr.Forward())
	assert.Greater(t, tr.Up().Y(), float32(0))
}

func TestAutoOrbitCustomAxis(t *testing.T) {
	c := NewController(WithOrbitAxis(mgl32.Vec3{2, 0, 0}))
	c.Update(FrameInput{Settings: testSettings(), Elapsed: 0})
	assertVec3(t, mgl32.Vec3{5.5, 0, 0}, c.Transform().Position)
}

func TestAutoOrbitDiscardsPointer(t *testing.T) {
	c := NewController(WithTransform(IdentityTransform()))
	s := testSettings()
	p := input.NewPointerAccumulator()

	p.Push(40, -25)
	c.Update(FrameInput{Settings: s, Pointer: p})
	assert.Zero(t, p.Pending())
	orbitRotation := c.Transform().Rotation

	// Switching to free-look must not apply the motion from the orbit frame.
	c.Update(FrameInput{Settings: s, Captured: true, Pointer: p})
	assert.Equal(t, ModeFreeLook, c.Mode())
	assertQuat(t, orbitRotation, c.Transform().Rotation)
}

func TestFreeLookPureYaw(t *testing.T) {
	start := IdentityTransform()
	start.Position = mgl32.Vec3{1, 2, 3}
	c := NewController(WithTransform(start))
	p := input.NewPointerAccumulator()
	enterFreeLook(c, testSettings(), p)

	p.Push(10, 0)
	c.Update(FrameInput{Settings: testSettings(), Captured: true, Pointer: p})

	tr := c.Transform()
	assertQuat(t, mgl32.QuatRotate(-0.1, mgl32.Vec3{0, 1, 0}), tr.Rotation)
	assert.Equal(t, start.Position, tr.Position)
	assert.InDelta(t, 0, tr.Forward().Y(), eps)
}

func TestFreeLookComposesYawThenPitch(t *testing.T) {
	start := LookingAt(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	c := NewController(WithTransform(start))
	p := input.NewPointerAccumulator()
	s := testSettings()
	enterFreeLook(c, s, p)

	p.Push(6, 0)
	p.Push(4, 5)
	c.Update(FrameInput{Settings: s, Captured: true, Pointer: p})

	yaw := mgl32.QuatRotate(-10*s.MouseSpeed, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(-5*s.MouseSpeed, mgl32.Vec3{1, 0, 0})
	assertQuat(t, start.Rotation.Mul(yaw).Mul(pitch), c.Transform().Rotation)
	assert.Zero(t, p.Pending())
}

func TestFreeLookEntryDiscardsPendingMotion(t *testing.T) {
	c := NewController(WithTransform(IdentityTransform()))
	s := testSettings()
	p := input.NewPointerAccumulator()

	c.Update(FrameInput{Settings: s, Pointer: p})
	orbitRotation := c.Transform().Rotation

	// Motion that lands between the last orbit frame and the capture click.
	p.Push(100, 0)
	c.Update(FrameInput{Settings: s, Captured: true, Pointer: p})
	assert.Equal(t, ModeFreeLook, c.Mode())
	assertQuat(t, orbitRotation, c.Transform().Rotation)
	assert.Zero(t, p.Pending())

	p.Push(10, 0)
	c.Update(FrameInput{Settings: s, Captured: true, Pointer: p})
	assertQuat(t, orbitRotation.Mul(mgl32.QuatRotate(-0.1, mgl32.Vec3{0, 1, 0})), c.Transform().Rotation)
}

func TestMotionDuringLoadingIsDiscarded(t *testing.T) {
	start := IdentityTransform()
	c := NewController(WithTransform(start))
	p := input.NewPointerAccumulator()

	p.Push(50, 20)
	c.Update(FrameInput{Captured: true, Pointer: p})
	assert.Equal(t, 1, p.Pending())

	c.Update(FrameInput{Settings: testSettings(), Captured: true, Pointer: p})
	assert.Equal(t, ModeFreeLook, c.Mode())
	assertQuat(t, start.Rotation, c.Transform().Rotation)
	assert.Zero(t, p.Pending())
}

func TestFreeLookWithoutMotionKeepsRotation(t *testing.T) {
	c := NewController()
	before := c.Transform()
	c.Update(FrameInput{Settings: testSettings(), Captured: true, Pointer: input.NewPointerAccumulator()})
	c.Update(FrameInput{Settings: testSettings(), Captured: true})
	assert.Equal(t, before, c.Transform())
}

func TestNoSettingsIsNoOp(t *testing.T) {
	c := NewController()
	before := c.Transform()
	p := input.NewPointerAccumulator()
	p.Push(3, 3)

	c.Update(FrameInput{Captured: true, Elapsed: 10, Pointer: p})
	assert.Equal(t, before, c.Transform())
	assert.Equal(t, ModeAutoOrbit, c.Mode())
	assert.Equal(t, 1, p.Pending())
}

func TestDefaultPlacement(t *testing.T) {
	tr := NewController().Transform()
	assertVec3(t, mgl32.Vec3{5, 5, 5}, tr.Position)
	assertVec3(t, mgl32.Vec3{-3.5, -5, -5}.Normalize(), tr.Forward())
}

func TestLookingAtAlongUp(t *testing.T) {
	tr := LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0})
	assertVec3(t, mgl32.Vec3{0, 1, 0}, tr.Forward())

	same := LookingAt(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0})
	assertQuat(t, mgl32.QuatIdent(), same.Rotation)
}

func TestViewInvertsModel(t *testing.T) {
	tr := LookingAt(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{0, 1, 0})
	assertMat4(t, mgl32.Ident4(), tr.View().Mul4(tr.Mat4()))

	eye := tr.View().Mul4x1(tr.Position.Vec4(1))
	assertVec4(t, mgl32.Vec4{0, 0, 0, 1}, eye)
	assertMat4(t, mgl32.LookAtV(tr.Position, mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{0, 1, 0}), tr.View())
}

func TestCameraMatrices(t *testing.T) {
	ctrl := NewController()
	cam := NewCamera(WithController(ctrl), WithAspect(16.0/9.0), WithClipPlanes(0.5, 50))
	cam.Update()

	assert.Equal(t, ctrl.Transform().Position, cam.Position())
	assertMat4(t, cam.ProjectionMatrix().Mul4(cam.ViewMatrix()), cam.ViewProjectionMatrix())

	proj := cam.ProjectionMatrix()
	near := proj.Mul4x1(mgl32.Vec4{0, 0, -0.5, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -50, 1})
	assert.InDelta(t, 0, near.Z()/near.W(), eps)
	assert.InDelta(t, 1, far.Z()/far.W(), eps)
}

func TestCameraFollowsController(t *testing.T) {
	ctrl := NewController()
	cam := NewCamera(WithController(ctrl))

	ctrl.Update(FrameInput{Settings: testSettings(), Elapsed: math32.Pi})
	cam.Update()
	assertVec3(t, mgl32.Vec3{0, 0, 8}, cam.Position())
}

func TestCameraUniformMarshal(t *testing.T) {
	cam := NewCamera(WithController(NewController()))
	u := cam.Uniform()
	require.Equal(t, 80, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, []byte{0, 0, 0xa0, 0x40}, buf[64:68]) // 5.0f
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "auto-orbit", ModeAutoOrbit.String())
	assert.Equal(t, "free-look", ModeFreeLook.String())
}
