package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// rotationStep is the angle added per frame while a rotation key is held.
var rotationStep = mgl64.DegToRad(1)

// keyState is the part of *glfw.Window the input handler reads.
type keyState interface {
	GetKey(key glfw.Key) glfw.Action
}

func held(keys keyState, key glfw.Key) bool {
	action := keys.GetKey(key)
	return action == glfw.Press || action == glfw.Repeat
}

// axis returns +1, -1 or 0 depending on which of the two keys is held.
func axis(keys keyState, pos, neg glfw.Key) float64 {
	var v float64
	if held(keys, pos) {
		v++
	}
	if held(keys, neg) {
		v--
	}
	return v
}

// HandleInput updates the attitude from the currently held keys.
// Left/Right turn yaw, Up/Down turn pitch and Q/E turn roll.
func HandleInput(keys keyState, attitude *Attitude) {
	attitude.Rotate(
		axis(keys, glfw.KeyRight, glfw.KeyLeft)*rotationStep,
		axis(keys, glfw.KeyUp, glfw.KeyDown)*rotationStep,
		axis(keys, glfw.KeyE, glfw.KeyQ)*rotationStep,
	)
}
