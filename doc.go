// Package solidbrush defines the packed vertex format shared between
// CPU-side brush mesh generation and the GPU pipeline of a hand-drawing
// application.
//
// # Overview
//
// Each sample point on a drawn stroke's surface mesh is one Vertex: an
// object-space position, a lighting normal, a bitangent completing the
// tangent-space basis, the arc length along the stroke (for dashing and
// texture-scroll effects), and a half-precision stroke color.
//
// The format is an interop boundary. A vertex shader reads the fields at
// fixed byte offsets, so the in-memory layout is byte-exact: 48 bytes per
// vertex, 4-byte packing, no implicit reordering. The layout is enforced at
// compile time; a platform or field change that alters the size breaks the
// build instead of silently corrupting what the shader stage expects.
//
// # Layout
//
//	offset  size  field
//	     0    12  Position      (3 x float32)
//	    12    12  Normal        (3 x float32)
//	    24    12  Bitangent     (3 x float32)
//	    36     4  CurveDistance (float32)
//	    40     6  Color         (3 x half)
//	    46     2  padding to the 4-byte-aligned 48-byte stride
//
// # Quick Start
//
//	var buf solidbrush.VertexBuffer
//	buf.Append(solidbrush.Vertex{
//	    Position:      solidbrush.V3(0, 1, 0),
//	    Normal:        solidbrush.V3(0, 0, 1),
//	    Bitangent:     solidbrush.V3(1, 0, 0),
//	    CurveDistance: 0.5,
//	    Color:         solidbrush.HalfColor(1, 0.5, 0.25),
//	})
//	data := buf.Bytes() // ready for queue.WriteBuffer
//
// The gpu subpackage uploads the bytes to a wgpu vertex buffer, and
// BufferLayout returns the matching gputypes vertex buffer layout for
// pipeline creation.
//
// # Logging
//
// solidbrush produces no log output by default. Call SetLogger to enable
// structured logging via log/slog.
package solidbrush
