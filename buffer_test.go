package solidbrush

import (
	"bytes"
	"testing"
)

func TestVertexBufferAppend(t *testing.T) {
	var buf VertexBuffer
	if buf.Len() != 0 || buf.ByteLen() != 0 {
		t.Fatalf("zero value not empty: len=%d bytes=%d", buf.Len(), buf.ByteLen())
	}

	buf.Append(testVertex())
	buf.Append(Vertex{CurveDistance: 1}, Vertex{CurveDistance: 2})

	if got := buf.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := buf.ByteLen(); got != 3*VertexStride {
		t.Errorf("ByteLen() = %d, want %d", got, 3*VertexStride)
	}
	if got := buf.At(1).CurveDistance; got != 1 {
		t.Errorf("At(1).CurveDistance = %v, want 1", got)
	}
}

func TestVertexBufferSet(t *testing.T) {
	var buf VertexBuffer
	buf.Append(Vertex{}, Vertex{})
	buf.Set(1, Vertex{CurveDistance: 5})
	if got := buf.At(1).CurveDistance; got != 5 {
		t.Errorf("At(1).CurveDistance = %v, want 5", got)
	}
	if got := buf.At(0); got != (Vertex{}) {
		t.Errorf("At(0) = %+v, want zero vertex", got)
	}
}

func TestVertexBufferReset(t *testing.T) {
	var buf VertexBuffer
	buf.Append(make([]Vertex, 100)...)
	capBefore := cap(buf.verts)

	buf.Reset()
	if buf.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", buf.Len())
	}
	buf.Append(make([]Vertex, 100)...)
	if cap(buf.verts) != capBefore {
		t.Errorf("Reset did not retain capacity: %d, want %d", cap(buf.verts), capBefore)
	}
}

func TestVertexBufferGrow(t *testing.T) {
	var buf VertexBuffer
	buf.Append(testVertex())
	buf.Grow(64)
	if free := cap(buf.verts) - buf.Len(); free < 64 {
		t.Errorf("free capacity after Grow(64) = %d, want >= 64", free)
	}
	if got := buf.At(0); got != testVertex() {
		t.Errorf("Grow lost existing vertex: %+v", got)
	}

	// Appending within reserved capacity must not reallocate.
	capBefore := cap(buf.verts)
	buf.Append(make([]Vertex, 64)...)
	if cap(buf.verts) != capBefore {
		t.Errorf("Append within reserved capacity reallocated: %d -> %d", capBefore, cap(buf.verts))
	}

	buf.Grow(0)
	buf.Grow(-1) // no-ops
}

func TestVertexBufferBytesEncodeAgree(t *testing.T) {
	var buf VertexBuffer
	buf.Append(testVertex(), Vertex{}, Vertex{CurveDistance: 3.5})

	raw := buf.Bytes()
	encoded := buf.Encode(nil)

	if len(raw) != buf.ByteLen() || len(encoded) != buf.ByteLen() {
		t.Fatalf("lengths: Bytes=%d Encode=%d, want %d", len(raw), len(encoded), buf.ByteLen())
	}
	if !bytes.Equal(raw, encoded) {
		t.Error("Bytes() and Encode() disagree")
	}
}

func TestVertexBufferEncodeReuse(t *testing.T) {
	var buf VertexBuffer
	buf.Append(testVertex(), testVertex())

	staging := buf.Encode(nil)
	if len(staging) != 2*VertexStride {
		t.Fatalf("staging length = %d, want %d", len(staging), 2*VertexStride)
	}

	// A second encode into the same staging buffer must reuse its backing
	// array when capacity suffices.
	buf.Reset()
	buf.Append(Vertex{CurveDistance: 9})
	reused := buf.Encode(staging)
	if len(reused) != VertexStride {
		t.Errorf("reused staging length = %d, want %d", len(reused), VertexStride)
	}
	if &reused[0] != &staging[0] {
		t.Error("Encode reallocated despite sufficient staging capacity")
	}
	if got := GetVertex(reused).CurveDistance; got != 9 {
		t.Errorf("encoded CurveDistance = %v, want 9", got)
	}
}

func TestVertexBufferEncodeEmpty(t *testing.T) {
	var buf VertexBuffer
	if got := buf.Encode(nil); len(got) != 0 {
		t.Errorf("Encode of empty buffer = %d bytes, want 0", len(got))
	}
	if got := buf.Bytes(); got != nil {
		t.Errorf("Bytes of empty buffer = %v, want nil", got)
	}
}

func TestVertexBufferVerticesAlias(t *testing.T) {
	var buf VertexBuffer
	buf.Append(Vertex{}, Vertex{})
	buf.Vertices()[0].CurveDistance = 11
	if got := buf.At(0).CurveDistance; got != 11 {
		t.Errorf("Vertices() does not alias storage: got %v, want 11", got)
	}
}
