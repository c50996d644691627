package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

const (
	appName = "cube"

	usageText = `Renders a wireframe cube rotated with the arrow keys

Usage: cube [OPTIONS]

Options:
  -f, --fov-angle-deg <FOV_ANGLE_DEG>  field of view angle in degrees [default: 1]
  -c, --camera-dist <CAMERA_DIST>      distance of camera from the center of the cube [default: 256]
  -h, --help                           Print help
  -V, --version                        Print version
`

	usageHint = `
Usage: cube [OPTIONS]

For more information, try '--help'.
`
)

const (
	keyFOV        = "fov-angle-deg"
	keyCameraDist = "camera-dist"
	keyLogLevel   = "log-level"
)

var (
	fovRange        = [2]uint16{1, 10}
	cameraDistRange = [2]uint16{1, 1000}
)

// errUsage marks errors caused by bad command-line or environment input.
var errUsage = errors.New("invalid usage")

// Options is the validated startup configuration.
type Options struct {
	Camera   Camera
	LogLevel zerolog.Level
}

type parseResult struct {
	opts        Options
	showHelp    bool
	showVersion bool
}

// parseOptions reads flags from args and falls back to CUBE_* environment
// variables through lookupEnv.
func parseOptions(args []string, lookupEnv func(string) (string, bool)) (parseResult, error) {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.Uint16P(keyFOV, "f", 1, "field of view angle in degrees")
	fs.Uint16P(keyCameraDist, "c", 256, "distance of camera from the center of the cube")
	help := fs.BoolP("help", "h", false, "Print help")
	ver := fs.BoolP("version", "V", false, "Print version")

	if err := fs.Parse(args); err != nil {
		return parseResult{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *help {
		return parseResult{showHelp: true}, nil
	}
	if *ver {
		return parseResult{showVersion: true}, nil
	}
	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("%w: unexpected argument '%s' found", errUsage, fs.Arg(0))
	}

	v := viper.New()
	v.SetDefault(keyLogLevel, "info")
	for _, key := range []string{keyFOV, keyCameraDist, keyLogLevel} {
		env := "CUBE_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if val, ok := lookupEnv(env); ok {
			v.SetDefault(key, val)
		}
	}
	if err := v.BindPFlags(fs); err != nil {
		return parseResult{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	fov, err := rangedUint16(v, keyFOV, fovRange)
	if err != nil {
		return parseResult{}, err
	}
	dist, err := rangedUint16(v, keyCameraDist, cameraDistRange)
	if err != nil {
		return parseResult{}, err
	}
	camera, err := NewCamera(float64(fov), float64(dist))
	if err != nil {
		return parseResult{}, fmt.Errorf("%w: %v", errUsage, err)
	}

	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return parseResult{}, fmt.Errorf("%w: invalid log level %q", errUsage, v.GetString(keyLogLevel))
	}

	return parseResult{opts: Options{Camera: camera, LogLevel: level}}, nil
}

func rangedUint16(v *viper.Viper, key string, bounds [2]uint16) (uint16, error) {
	raw := v.Get(key)
	n, err := cast.ToUint16E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid value '%v' for '--%s': not a non-negative integer", errUsage, raw, key)
	}
	if n < bounds[0] || n > bounds[1] {
		return 0, fmt.Errorf("%w: invalid value '%v' for '--%s': %d is not in %d..=%d",
			errUsage, raw, key, n, bounds[0], bounds[1])
	}
	return n, nil
}
