package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		out vec2 uv;
		void main() {
			uv = vec2((vp.x + 1.0) * 0.5, (1.0 - vp.y) * 0.5);
			gl_Position = vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec2 uv;
		uniform sampler2D frame;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(frame, uv);
		}
	` + "\x00"
)

var (
	quadVertices = []float32{
		-1, -1,
		1, -1,
		1, 1,
		-1, 1,
	}

	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

// presenter blits a Frame to the current GL framebuffer as a textured quad.
type presenter struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	texture uint32
}

// newPresenter must be called with a current GL context.
func newPresenter() (*presenter, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	p := &presenter{program: program}
	gl.UseProgram(program)

	// VAO / VBO / EBO
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	// Frame texture
	gl.GenTextures(1, &p.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	return p, nil
}

// Present uploads the frame and draws it over the whole viewport.
// An empty frame only clears the framebuffer.
func (p *presenter) Present(frame *Frame) {
	w, h := frame.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if frame.Empty() {
		return
	}

	gl.UseProgram(p.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Image().Pix))

	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Delete releases the GL objects owned by the presenter.
func (p *presenter) Delete() {
	gl.DeleteTextures(1, &p.texture)
	gl.DeleteBuffers(1, &p.ebo)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}
