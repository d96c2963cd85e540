package solidbrush

// VertexBuffer accumulates brush vertices on the CPU side before upload.
// Mesh generation appends one Vertex per stroke sample; the upload step
// hands Bytes (or a reusable Encode staging buffer) to the GPU queue.
//
// The zero value is an empty buffer ready for use. VertexBuffer is not safe
// for concurrent use; each stroke builder owns its own buffer.
type VertexBuffer struct {
	verts []Vertex
}

// Append adds vertices to the end of the buffer.
func (b *VertexBuffer) Append(verts ...Vertex) {
	b.verts = append(b.verts, verts...)
}

// Len returns the number of vertices in the buffer.
func (b *VertexBuffer) Len() int {
	return len(b.verts)
}

// ByteLen returns the packed size of the buffer in bytes.
func (b *VertexBuffer) ByteLen() int {
	return len(b.verts) * VertexStride
}

// At returns the i-th vertex. It panics if i is out of range.
func (b *VertexBuffer) At(i int) Vertex {
	return b.verts[i]
}

// Set replaces the i-th vertex. It panics if i is out of range.
func (b *VertexBuffer) Set(i int, v Vertex) {
	b.verts[i] = v
}

// Reset empties the buffer, retaining capacity for reuse across strokes.
func (b *VertexBuffer) Reset() {
	b.verts = b.verts[:0]
}

// Grow reserves capacity for at least n additional vertices. A stroke
// builder that knows its sample count can avoid reallocation during Append.
func (b *VertexBuffer) Grow(n int) {
	if n <= 0 {
		return
	}
	if free := cap(b.verts) - len(b.verts); free < n {
		grown := make([]Vertex, len(b.verts), len(b.verts)+n)
		copy(grown, b.verts)
		b.verts = grown
	}
}

// Vertices returns the underlying vertex slice. The slice aliases the
// buffer's storage and is invalidated by Append or Grow.
func (b *VertexBuffer) Vertices() []Vertex {
	return b.verts
}

// Bytes returns the packed byte view of the buffer without copying, suitable
// for queue.WriteBuffer. The view aliases the buffer's storage.
func (b *VertexBuffer) Bytes() []byte {
	return Bytes(b.verts)
}

// Encode writes the packed little-endian encoding into the provided staging
// buffer, growing it if necessary. Returns the slice of valid vertex data;
// callers keep the returned slice as the staging buffer for the next frame.
//
// Unlike Bytes, Encode is portable across host byte orders and zeroes the
// per-vertex padding, at the cost of a copy.
func (b *VertexBuffer) Encode(staging []byte) []byte {
	needed := b.ByteLen()
	if needed == 0 {
		return staging[:0]
	}
	if cap(staging) < needed {
		staging = make([]byte, needed)
	} else {
		staging = staging[:needed]
	}
	for i := range b.verts {
		PutVertex(staging[i*VertexStride:], b.verts[i])
	}
	return staging
}
