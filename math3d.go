package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// nearPlane is the smallest depth a vertex may have before the perspective divide.
const nearPlane = 1e-3

// Attitude is the accumulated orientation of the cube, in radians.
type Attitude struct {
	Yaw, Pitch, Roll float64
}

// Rotate adds the given deltas to the attitude.
func (a *Attitude) Rotate(yaw, pitch, roll float64) {
	a.Yaw += yaw
	a.Pitch += pitch
	a.Roll += roll
}

// Matrix returns the rotation applying roll (X), then pitch (Y), then yaw (Z).
func (a Attitude) Matrix() mgl64.Mat3 {
	return mgl64.Rotate3DZ(a.Yaw).Mul3(mgl64.Rotate3DY(a.Pitch)).Mul3(mgl64.Rotate3DX(a.Roll))
}

// Apply rotates v by the attitude.
func (a Attitude) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return a.Matrix().Mul3x1(v)
}

// Camera holds the perspective parameters chosen at startup.
type Camera struct {
	FOVAngleDeg float64
	Dist        float64
}

// NewCamera validates the field of view and camera distance.
func NewCamera(fovAngleDeg, dist float64) (Camera, error) {
	if !(fovAngleDeg > 0 && fovAngleDeg < 180) {
		return Camera{}, fmt.Errorf("field of view must be in (0, 180) degrees, got %v", fovAngleDeg)
	}
	if !(dist > 0) || math.IsInf(dist, 1) {
		return Camera{}, fmt.Errorf("camera distance must be positive, got %v", dist)
	}
	return Camera{FOVAngleDeg: fovAngleDeg, Dist: dist}, nil
}

// Project maps a point in cube space to view coordinates centered on the
// view axis. Depth is clamped to nearPlane.
func (c Camera) Project(v mgl64.Vec3) mgl64.Vec2 {
	halfFovTan := math.Tan(mgl64.DegToRad(c.FOVAngleDeg) / 2)

	depth := v.Z() + c.Dist
	if depth < nearPlane {
		depth = nearPlane
	}
	scale := c.Dist / depth

	return mgl64.Vec2{
		v.X() * scale / halfFovTan,
		v.Y() * scale / halfFovTan,
	}
}

// ProjectCube rotates and projects every cube vertex.
func ProjectCube(attitude Attitude, camera Camera) [len(cubeVertices)]mgl64.Vec2 {
	var out [len(cubeVertices)]mgl64.Vec2
	rot := attitude.Matrix()
	for i, v := range cubeVertices {
		out[i] = camera.Project(rot.Mul3x1(v))
	}
	return out
}
