//go:build !nogpu

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/solidbrush"
)

// Upload tests that need a live GPU device run in integration environments
// only; these cover the validation paths and option plumbing, which must not
// touch the device at all.

func TestUploadVerticesNilDevice(t *testing.T) {
	data := make([]byte, solidbrush.VertexStride)
	if _, err := UploadVertices(nil, nil, data); !errors.Is(err, ErrNilDevice) {
		t.Errorf("UploadVertices(nil device) = %v, want ErrNilDevice", err)
	}
}

func TestNewMeshNilDevice(t *testing.T) {
	var buf solidbrush.VertexBuffer
	buf.Append(solidbrush.Vertex{})

	if _, err := NewMesh(nil, &buf); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewMesh(nil) = %v, want ErrNilDevice", err)
	}
	if _, err := NewMesh(&Device{}, &buf); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewMesh(closed device) = %v, want ErrNilDevice", err)
	}
}

func TestUploadOptionsDefaults(t *testing.T) {
	o := defaultUploadOptions()
	if o.label != "brush_verts" {
		t.Errorf("default label = %q, want brush_verts", o.label)
	}
	want := gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	if o.usage != want {
		t.Errorf("default usage = %v, want Vertex|CopyDst", o.usage)
	}
}

func TestUploadOptionsApply(t *testing.T) {
	o := defaultUploadOptions()
	for _, opt := range []UploadOption{
		WithLabel("stroke_7"),
		WithUsage(gputypes.BufferUsageVertex | gputypes.BufferUsageCopySrc),
	} {
		opt(&o)
	}
	if o.label != "stroke_7" {
		t.Errorf("label = %q, want stroke_7", o.label)
	}
	if o.usage&gputypes.BufferUsageCopySrc == 0 {
		t.Error("WithUsage did not set CopySrc")
	}
}

func TestMeshDestroyIdempotent(t *testing.T) {
	var m Mesh
	m.Destroy(nil) // no buffer, no device: must not panic
	if m.VertexCount() != 0 {
		t.Errorf("VertexCount after Destroy = %d, want 0", m.VertexCount())
	}
	if m.Buffer() != nil {
		t.Error("Buffer after Destroy should be nil")
	}
}
