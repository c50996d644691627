package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

type startRecorder struct {
	calls int
	opts  Options
	err   error
}

func (s *startRecorder) start(opts Options, _ zerolog.Logger) error {
	s.calls++
	s.opts = opts
	return s.err
}

func runCube(t *testing.T, vars map[string]string, args ...string) (code int, stdout, stderr string, rec *startRecorder) {
	t.Helper()
	var out, errOut bytes.Buffer
	rec = &startRecorder{}
	code = run(args, env(vars), &out, &errOut, rec.start)
	return code, out.String(), errOut.String(), rec
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		code, stdout, _, rec := runCube(t, nil, arg)
		assert.Equal(t, exitOK, code)
		assert.Equal(t, usageText, stdout)
		assert.Zero(t, rec.calls)
	}
}

func TestRun_HelpText(t *testing.T) {
	want := `Renders a wireframe cube rotated with the arrow keys

Usage: cube [OPTIONS]

Options:
  -f, --fov-angle-deg <FOV_ANGLE_DEG>  field of view angle in degrees [default: 1]
  -c, --camera-dist <CAMERA_DIST>      distance of camera from the center of the cube [default: 256]
  -h, --help                           Print help
  -V, --version                        Print version
`
	_, stdout, _, _ := runCube(t, nil, "--help")
	assert.Equal(t, want, stdout)
}

func TestRun_Version(t *testing.T) {
	for _, arg := range []string{"--version", "-V"} {
		code, stdout, _, rec := runCube(t, nil, arg)
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "cube "+version+"\n", stdout)
		assert.Zero(t, rec.calls)
	}
}

func TestRun_Defaults(t *testing.T) {
	code, _, _, rec := runCube(t, nil)
	require.Equal(t, exitOK, code)
	require.Equal(t, 1, rec.calls)
	assert.Equal(t, Camera{FOVAngleDeg: 1, Dist: 256}, rec.opts.Camera)
	assert.Equal(t, zerolog.InfoLevel, rec.opts.LogLevel)
}

func TestRun_Flags(t *testing.T) {
	for _, args := range [][]string{
		{"-f", "5", "-c", "12"},
		{"--fov-angle-deg", "5", "--camera-dist", "12"},
		{"--fov-angle-deg=5", "--camera-dist=12"},
	} {
		code, _, _, rec := runCube(t, nil, args...)
		require.Equal(t, exitOK, code, "args %v", args)
		assert.Equal(t, Camera{FOVAngleDeg: 5, Dist: 12}, rec.opts.Camera, "args %v", args)
	}
}

func TestRun_Environment(t *testing.T) {
	vars := map[string]string{
		"CUBE_FOV_ANGLE_DEG": "3",
		"CUBE_CAMERA_DIST":   "40",
		"CUBE_LOG_LEVEL":     "debug",
	}

	code, _, _, rec := runCube(t, vars)
	require.Equal(t, exitOK, code)
	assert.Equal(t, Camera{FOVAngleDeg: 3, Dist: 40}, rec.opts.Camera)
	assert.Equal(t, zerolog.DebugLevel, rec.opts.LogLevel)

	code, _, _, rec = runCube(t, vars, "--camera-dist", "99")
	require.Equal(t, exitOK, code)
	assert.Equal(t, Camera{FOVAngleDeg: 3, Dist: 99}, rec.opts.Camera, "flags win over environment")
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		args []string
	}{
		{"zero camera distance", nil, []string{"--camera-dist", "0"}},
		{"negative fov", nil, []string{"--fov-angle-deg", "-5"}},
		{"fov out of range", nil, []string{"-f", "11"}},
		{"camera distance out of range", nil, []string{"-c", "1001"}},
		{"non numeric", nil, []string{"--camera-dist", "far"}},
		{"unknown flag", nil, []string{"--zoom", "2"}},
		{"positional", nil, []string{"extra"}},
		{"bad environment", map[string]string{"CUBE_CAMERA_DIST": "-1"}, nil},
		{"bad log level", map[string]string{"CUBE_LOG_LEVEL": "loud"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr, rec := runCube(t, tt.vars, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "error: ")
			assert.Contains(t, stderr, "For more information, try '--help'.")
			assert.Zero(t, rec.calls, "no window may be created")
		})
	}
}

func TestRun_StartFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	rec := &startRecorder{err: errors.New("failed to create window: no display")}

	code := run(nil, env(nil), &out, &errOut, rec.start)

	assert.Equal(t, exitFailure, code)
	assert.Equal(t, 1, rec.calls)
	assert.Contains(t, errOut.String(), "no display")
}
