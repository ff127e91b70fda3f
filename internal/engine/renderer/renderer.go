// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/island-defense/internal/engine/renderer/shaders"
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/shader"
	"github.com/Faultbox/island-defense/internal/logger"
	"github.com/Faultbox/island-defense/pkg/math"
)

const (
	// position(3) + normal(3) + color(4)
	floatsPerVertex = 10
	stride          = floatsPerVertex * 4

	pointSize = 4

	// maxErrors bounds a single Errors drain; a lost context can report forever.
	maxErrors = 16
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background math.Color
}

// Renderer implements scene.Renderer on an OpenGL 4.1 core context.
// Vertices submitted between Begin and End are streamed into one buffer
// and drawn with a single DrawArrays call.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	vao     uint32
	vbo     uint32

	primitive scene.Primitive
	open      bool
	buf       []float32
	normal    math.Vec3
	color     math.Color

	projection math.Mat4
	view       math.Mat4
	stack      []math.Mat4
	light      scene.Light
	wireframe  bool
}

var _ scene.Renderer = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		log:        logger.Named("renderer"),
		normal:     math.Up,
		color:      math.White,
		projection: math.Identity(),
		view:       math.Identity(),
		stack:      []math.Mat4{math.Identity()},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	bg := cfg.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)

	var err error
	r.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("Buffers created", zap.Uint32("vao", r.vao), zap.Uint32("vbo", r.vbo))
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("Closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("Renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear clears the colour and depth buffers and resets the model stack.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.stack = r.stack[:1]
}

// SetProjection sets the projection matrix used by the following batches.
func (r *Renderer) SetProjection(p math.Mat4) {
	r.projection = p
}

// Begin opens a batch of primitive p.
func (r *Renderer) Begin(p scene.Primitive) {
	if r.open {
		r.log.Warn("Begin inside an open batch, previous batch dropped")
	}
	r.primitive = p
	r.open = true
	r.buf = r.buf[:0]
}

func (r *Renderer) Color(c math.Color) { r.color = c }

func (r *Renderer) Normal(n math.Vec3) { r.normal = n }

// Vertex appends v with the current normal and colour.
func (r *Renderer) Vertex(v math.Vec3) {
	if !r.open {
		return
	}
	n, c := r.normal, r.color
	r.buf = append(r.buf, v.X, v.Y, v.Z, n.X, n.Y, n.Z, c.R, c.G, c.B, c.A)
}

// End uploads the batch and draws it.
func (r *Renderer) End() {
	if !r.open {
		return
	}
	r.open = false
	count := len(r.buf) / floatsPerVertex
	if count == 0 {
		return
	}

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uProjection"), 1, false, r.projection.Ptr())
	gl.UniformMatrix4fv(r.program.Uniform("uView"), 1, false, r.view.Ptr())
	model := r.stack[len(r.stack)-1]
	gl.UniformMatrix4fv(r.program.Uniform("uModel"), 1, false, model.Ptr())
	gl.Uniform1f(r.program.Uniform("uPointSize"), pointSize)

	lit := r.light.Enabled && (r.primitive == scene.Triangles || r.primitive == scene.TriangleStrip)
	if lit {
		d := r.light.Direction
		gl.Uniform1i(r.program.Uniform("uLit"), 1)
		gl.Uniform3f(r.program.Uniform("uLightDir"), d.X, d.Y, d.Z)
		gl.Uniform4f(r.program.Uniform("uAmbient"), r.light.Ambient.R, r.light.Ambient.G, r.light.Ambient.B, r.light.Ambient.A)
		gl.Uniform4f(r.program.Uniform("uDiffuse"), r.light.Diffuse.R, r.light.Diffuse.G, r.light.Diffuse.B, r.light.Diffuse.A)
	} else {
		gl.Uniform1i(r.program.Uniform("uLit"), 0)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(glPrimitive(r.primitive), 0, int32(count))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetWireframe switches polygon rasterization between fill and line.
func (r *Renderer) SetWireframe(on bool) {
	if on == r.wireframe {
		return
	}
	r.wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) SetView(view math.Mat4) { r.view = view }

// PushMatrix composes model with the current model matrix.
func (r *Renderer) PushMatrix(model math.Mat4) {
	top := r.stack[len(r.stack)-1]
	r.stack = append(r.stack, top.Mul(model))
}

// PopMatrix restores the previous model matrix. The identity at the
// bottom of the stack is never popped.
func (r *Renderer) PopMatrix() {
	if len(r.stack) == 1 {
		r.log.Warn("PopMatrix on empty stack")
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Renderer) SetLight(l scene.Light) { r.light = l }

// ReadPixels returns the current back buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Errors drains the GL error queue.
func (r *Renderer) Errors() []error {
	var errs []error
	for range maxErrors {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = append(errs, &Error{Code: code})
	}
	return errs
}

// Error is an OpenGL error code.
type Error struct {
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("gl: %s (0x%04X)", errorName(e.Code), e.Code)
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return "unknown error"
	}
}

func glPrimitive(p scene.Primitive) uint32 {
	switch p {
	case scene.Lines:
		return gl.LINES
	case scene.Points:
		return gl.POINTS
	case scene.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case scene.LineStrip:
		return gl.LINE_STRIP
	default:
		return gl.TRIANGLES
	}
}
