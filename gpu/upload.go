//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/solidbrush"
)

// Upload errors.
var (
	// ErrNilDevice is returned when uploading without a device.
	ErrNilDevice = errors.New("gpu: device is nil")

	// ErrNilQueue is returned when uploading without a queue.
	ErrNilQueue = errors.New("gpu: queue is nil")

	// ErrEmptyData is returned when there is nothing to upload.
	ErrEmptyData = errors.New("gpu: vertex data is empty")

	// ErrMisalignedData is returned when the byte length is not a multiple
	// of the packed vertex stride. A misaligned buffer means the CPU-side
	// encoding and the shader layout have drifted apart.
	ErrMisalignedData = errors.New("gpu: vertex data is not a multiple of the vertex stride")
)

// UploadOption configures a vertex upload.
type UploadOption func(*uploadOptions)

// uploadOptions holds optional configuration for vertex uploads.
type uploadOptions struct {
	label string
	usage gputypes.BufferUsage
}

// defaultUploadOptions returns the default upload options.
func defaultUploadOptions() uploadOptions {
	return uploadOptions{
		label: "brush_verts",
		usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}
}

// WithLabel sets the debug label of the created buffer. Labels show up in
// GPU debuggers and in wgpu validation messages.
func WithLabel(label string) UploadOption {
	return func(o *uploadOptions) {
		o.label = label
	}
}

// WithUsage overrides the buffer usage flags. The default is
// Vertex|CopyDst; add CopySrc when the mesh will be read back.
func WithUsage(usage gputypes.BufferUsage) UploadOption {
	return func(o *uploadOptions) {
		o.usage = usage
	}
}

// UploadVertices creates a GPU buffer and writes the packed vertex data into
// it. data must be a whole number of 48-byte vertices, as produced by
// solidbrush.VertexBuffer.Bytes or Encode.
//
// The caller owns the returned buffer and must release it with
// device.DestroyBuffer.
func UploadVertices(device hal.Device, queue hal.Queue, data []byte, opts ...UploadOption) (hal.Buffer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if len(data)%solidbrush.VertexStride != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMisalignedData, len(data))
	}

	o := defaultUploadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: o.label,
		Size:  uint64(len(data)),
		Usage: o.usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", o.label, err)
	}
	queue.WriteBuffer(buf, 0, data)

	solidbrush.Logger().Debug("vertex buffer uploaded",
		"label", o.label,
		"vertices", len(data)/solidbrush.VertexStride,
		"bytes", len(data))
	return buf, nil
}

// Mesh is an uploaded brush stroke: a GPU vertex buffer plus its vertex
// count. The render pass binds the buffer at slot 0 with
// solidbrush.BufferLayout and draws VertexCount vertices.
type Mesh struct {
	buf   hal.Buffer
	count uint32
}

// NewMesh uploads the contents of a vertex buffer and returns the GPU mesh.
// The vertex buffer may be Reset and reused immediately; the GPU owns a copy.
func NewMesh(dev *Device, vb *solidbrush.VertexBuffer, opts ...UploadOption) (*Mesh, error) {
	if dev == nil || dev.device == nil {
		return nil, ErrNilDevice
	}
	buf, err := UploadVertices(dev.device, dev.queue, vb.Bytes(), opts...)
	if err != nil {
		return nil, err
	}
	return &Mesh{
		buf:   buf,
		count: uint32(vb.Len()), //nolint:gosec // vertex count fits uint32
	}, nil
}

// Buffer returns the GPU vertex buffer.
func (m *Mesh) Buffer() hal.Buffer { return m.buf }

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() uint32 { return m.count }

// Destroy releases the GPU buffer. Safe to call multiple times.
func (m *Mesh) Destroy(device hal.Device) {
	if m.buf != nil && device != nil {
		device.DestroyBuffer(m.buf)
		m.buf = nil
	}
	m.count = 0
}
