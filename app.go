package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

const (
	width  = 640
	height = 480
	title  = "Cube"
)

// runWindow opens the window and drives the frame loop until the window is closed.
// It must run on the main OS thread.
func runWindow(opts Options, logger zerolog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Debug().Str("version", gl.GoStr(gl.GetString(gl.VERSION))).Msg("OpenGL initialized")

	p, err := newPresenter()
	if err != nil {
		return fmt.Errorf("failed to build presenter: %w", err)
	}
	defer p.Delete()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	logger.Info().
		Float64("fov_angle_deg", opts.Camera.FOVAngleDeg).
		Float64("camera_dist", opts.Camera.Dist).
		Msg("Running")

	frame := NewFrame(window.GetFramebufferSize())
	renderer := NewRenderer(frame)
	var attitude Attitude

	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for {
		glfw.PollEvents()
		if window.ShouldClose() {
			break
		}

		// FPS Counter Update (every 1 second)
		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		HandleInput(window, &attitude)
		points := ProjectCube(attitude, opts.Camera)

		fbWidth, fbHeight := window.GetFramebufferSize()
		renderer.Render(points, fbWidth, fbHeight)
		p.Present(frame)

		window.SwapBuffers()
	}

	logger.Info().Msg("Shutting down")
	return nil
}
