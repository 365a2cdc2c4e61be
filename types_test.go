package mgl

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-6

func near(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

func TestVec3(t *testing.T) {
	a := Vec3{X: 1, Y: 0, Z: 0}
	b := Vec3{X: 0, Y: 1, Z: 0}

	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %g, want 0", got)
	}
	if got := a.Cross(b); got != (Vec3{X: 0, Y: 0, Z: 1}) {
		t.Errorf("Cross = %+v, want +Z", got)
	}

	n := Vec3{X: 3, Y: 4, Z: 0}.Normalize()
	if !near(n.X, 0.6) || !near(n.Y, 0.8) || n.Z != 0 {
		t.Errorf("Normalize = %+v, want (0.6, 0.8, 0)", n)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %+v, want zero", got)
	}
}

func TestMat4Mul(t *testing.T) {
	id := Mat4Identity()
	tr := Mat4Translation(1, 2, 3)

	if got := id.Mul(tr); got != tr {
		t.Errorf("I * T = %v, want T", got)
	}
	if got := tr.Mul(id); got != tr {
		t.Errorf("T * I = %v, want T", got)
	}

	// Translation then scaling composes in column-vector order: the product
	// S * T applies T first.
	st := Mat4Scaling(2, 2, 2).Mul(tr)
	v := st.MulVec4(Vec4{X: 0, Y: 0, Z: 0, W: 1})
	if v.X != 2 || v.Y != 4 || v.Z != 6 || v.W != 1 {
		t.Errorf("S*T * origin = %+v, want (2, 4, 6, 1)", v)
	}
}

func TestMat4RotationZ(t *testing.T) {
	m := Mat4RotationZ(math32.Pi / 2)
	v := m.MulVec4(Vec4{X: 1, Y: 0, Z: 0, W: 1})
	if !near(v.X, 0) || !near(v.Y, 1) {
		t.Errorf("rotate(+X) = (%g, %g), want (0, 1)", v.X, v.Y)
	}
}

func TestMat4Ortho(t *testing.T) {
	m := Mat4Ortho(0, 800, 600, 0, -1, 1)

	corners := []struct {
		in   Vec4
		x, y float32
	}{
		{Vec4{X: 0, Y: 0, W: 1}, -1, 1},
		{Vec4{X: 800, Y: 600, W: 1}, 1, -1},
		{Vec4{X: 400, Y: 300, W: 1}, 0, 0},
	}
	for _, c := range corners {
		out := m.MulVec4(c.in)
		if !near(out.X, c.x) || !near(out.Y, c.y) {
			t.Errorf("ortho(%g, %g) = (%g, %g), want (%g, %g)",
				c.in.X, c.in.Y, out.X, out.Y, c.x, c.y)
		}
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(math32.Pi/2, 1, 1, 100)

	// A point on the near plane maps to depth -1 after the w divide.
	out := m.MulVec4(Vec4{X: 0, Y: 0, Z: -1, W: 1})
	if !near(out.Z/out.W, -1) {
		t.Errorf("near-plane depth = %g, want -1", out.Z/out.W)
	}
	out = m.MulVec4(Vec4{X: 0, Y: 0, Z: -100, W: 1})
	if !near(out.Z/out.W, 1) {
		t.Errorf("far-plane depth = %g, want 1", out.Z/out.W)
	}
}
