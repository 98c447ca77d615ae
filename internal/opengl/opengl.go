//go:build !nogl

// Package opengl is the raw GL front-end: every star becomes one
// GL_POINT fed straight from normalized display coordinates, so the
// vertex path is a single clip-space passthrough. It is the fastest of
// the three renderers and the only one without a HUD; stats go to the
// window title.
//
// Build with -tags nogl on machines without GL headers.
package opengl

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/oranellis/universe-simulation/internal/screen"
	"github.com/oranellis/universe-simulation/internal/sim"
	"github.com/oranellis/universe-simulation/internal/stars"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Floats per star in the interleaved vertex buffer:
// x, y, r, g, b, size, solid.
const vertexStride = 7

// Run opens the window and renders snapshots until the user quits.
// stop cancels the stepping goroutine on the way out.
func Run(shared *sim.Shared, domain stars.Domain, frameRate float64, stop func()) error {
	if stop != nil {
		defer stop()
	}
	if frameRate <= 0 {
		frameRate = 60
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, h := domain.TargetW, domain.TargetH
	if w <= 0 {
		w = 1000
	}
	if h <= 0 {
		h = 1000
	}
	window, err := glfw.CreateWindow(w, h, "universe", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		return err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0.03, 1)

	d, err := newDisplay()
	if err != nil {
		return err
	}

	var quit, paused bool
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			quit = true
		case glfw.KeySpace:
			paused = !paused
		}
	})

	period := time.Duration(float64(time.Second) / frameRate)
	var buf []stars.Star
	var step uint64
	frames := 0
	lastTitle := time.Now()

	for !(quit || window.ShouldClose()) {
		start := time.Now()

		if !paused {
			buf, step, _ = shared.Snapshot(buf)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		d.draw(buf, w, h, domain)
		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if since := time.Since(lastTitle); since >= time.Second {
			fps := float64(frames) / since.Seconds()
			window.SetTitle(fmt.Sprintf("universe · %d stars · step %d · %.0f fps", len(buf), step, fps))
			frames = 0
			lastTitle = start
		}

		if rem := period - time.Since(start); rem > 0 {
			time.Sleep(rem)
		}
	}
	return nil
}

// display holds the GL objects for the point pipeline.
type display struct {
	prog uint32
	vao  uint32
	vbo  uint32
	data []float32
}

func newDisplay() (*display, error) {
	d := new(display)

	var err error
	d.prog, err = newProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	return d, nil
}

// draw packs the visible stars into the vertex buffer and issues one
// point draw. Luminous stars go in first and the dark anchors last, so
// an anchor's solid disc occludes anything behind it.
func (d *display) draw(ss []stars.Star, w, h int, domain stars.Domain) {
	d.data = d.data[:0]

	appendStar := func(s *stars.Star) {
		norm, ok := screen.Map(s.Pos, w, h, domain)
		if !ok {
			return
		}
		// Normalized display coordinates are already clip space;
		// GL's y axis points up, same as the simulation's.
		if s.Luminosity <= 0 {
			d.data = append(d.data,
				float32(norm.X), float32(norm.Y),
				0.066, 0.066, 0.13,
				24, 1)
			return
		}
		r, g, b := screen.BlackbodyRGB(s.Temperature)
		size := float32(screen.PointSize(s.Luminosity)) * 4
		d.data = append(d.data,
			float32(norm.X), float32(norm.Y),
			float32(r)/255, float32(g)/255, float32(b)/255,
			size, 0)
	}

	for i := range ss {
		if ss[i].Luminosity > 0 {
			appendStar(&ss[i])
		}
	}
	for i := range ss {
		if ss[i].Luminosity <= 0 {
			appendStar(&ss[i])
		}
	}

	if len(d.data) == 0 {
		return
	}

	gl.UseProgram(d.prog)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.data)*4, gl.Ptr(d.data), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(d.data)/vertexStride))
	gl.BindVertexArray(0)
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("opengl: shader compile: %s", string(logBuf))
	}
	return shader, nil
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetProgramInfoLog(prog, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("opengl: program link: %s", string(logBuf))
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

var vertexShaderSrc = `
#version 410 core
layout(location = 0) in vec2 inPos;
layout(location = 1) in vec3 inColor;
layout(location = 2) in float inSize;
layout(location = 3) in float inSolid;
out vec3 vColor;
out float vSolid;
void main() {
    vColor = inColor;
    vSolid = inSolid;
    gl_Position = vec4(inPos, 0.0, 1.0);
    gl_PointSize = inSize;
}
` + "\x00"

var fragmentShaderSrc = `
#version 410 core
in vec3 vColor;
in float vSolid;
out vec4 fragColor;
void main() {
    vec2 coord = gl_PointCoord * 2.0 - 1.0;
    float d = dot(coord, coord);
    if (d > 1.0) discard;
    float alpha = mix(exp(-4.0 * d), 1.0, vSolid);
    fragColor = vec4(vColor, alpha);
}
` + "\x00"
