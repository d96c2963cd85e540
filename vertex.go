package solidbrush

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// VertexStride is the byte stride per vertex in the brush render pipeline.
// Layout per vertex:
//
//	position      (3 x f32)  = 12 bytes (offset  0)
//	normal        (3 x f32)  = 12 bytes (offset 12)
//	bitangent     (3 x f32)  = 12 bytes (offset 24)
//	curveDistance (f32)      =  4 bytes (offset 36)
//	color         (3 x f16)  =  6 bytes (offset 40)
//	padding                  =  2 bytes (offset 46)
//
// Total = 48 bytes per vertex, 4-byte packing.
const VertexStride = 48

// Byte offsets of each field within a vertex. The shader input stage reads
// attributes at exactly these offsets; see BufferLayout.
const (
	PositionOffset      = 0
	NormalOffset        = 12
	BitangentOffset     = 24
	CurveDistanceOffset = 36
	ColorOffset         = 40
)

// Vertex is one sample point on a drawn stroke's surface mesh. Instances are
// plain values: mesh generation fills them, the upload step copies them to a
// GPU vertex buffer, and the vertex shader reads the fields back at the
// offsets above. The declared field order is the wire layout and must not
// change independently of the shader.
type Vertex struct {
	// Position is the object-space coordinate of the sample.
	Position Vec3

	// Normal is the surface normal used for lighting.
	Normal Vec3

	// Bitangent completes the tangent-space basis across the stroke ribbon.
	Bitangent Vec3

	// CurveDistance is the arc length from the start of the stroke to this
	// sample. Distance-based effects (dashing, texture scroll) key off it.
	CurveDistance float32

	// Color is the stroke color, reduced to half precision to save vertex
	// bandwidth.
	Color [3]Half

	// MaterialProperties [2]float32 // X = roughness, Y = metallic.
	// Disabled with the material pipeline; re-enabling it restores the
	// 56-byte layout and must update the stride guard below.
}

// Build-time layout guards. Each index expression is a compile-time constant;
// any size or offset drift fails the build instead of corrupting the data the
// shader stage expects. There is no runtime error path here.
var (
	_ = [1]struct{}{}[VertexStride-unsafe.Sizeof(Vertex{})]
	_ = [1]struct{}{}[unsafe.Offsetof(Vertex{}.Position)-PositionOffset]
	_ = [1]struct{}{}[unsafe.Offsetof(Vertex{}.Normal)-NormalOffset]
	_ = [1]struct{}{}[unsafe.Offsetof(Vertex{}.Bitangent)-BitangentOffset]
	_ = [1]struct{}{}[unsafe.Offsetof(Vertex{}.CurveDistance)-CurveDistanceOffset]
	_ = [1]struct{}{}[unsafe.Offsetof(Vertex{}.Color)-ColorOffset]
	// With MaterialProperties enabled the packed size grows to 56:
	//	_ = [1]struct{}{}[56-unsafe.Sizeof(Vertex{})]
)

// PutVertex writes v into dst at the packed little-endian layout. dst must be
// at least VertexStride bytes; the two trailing pad bytes are zeroed so
// encoded buffers compare byte-for-byte.
func PutVertex(dst []byte, v Vertex) {
	_ = dst[VertexStride-1] // bounds check hint
	putVec3(dst[PositionOffset:], v.Position)
	putVec3(dst[NormalOffset:], v.Normal)
	putVec3(dst[BitangentOffset:], v.Bitangent)
	binary.LittleEndian.PutUint32(dst[CurveDistanceOffset:], math.Float32bits(v.CurveDistance))
	binary.LittleEndian.PutUint16(dst[ColorOffset:], uint16(v.Color[0]))
	binary.LittleEndian.PutUint16(dst[ColorOffset+2:], uint16(v.Color[1]))
	binary.LittleEndian.PutUint16(dst[ColorOffset+4:], uint16(v.Color[2]))
	dst[46] = 0
	dst[47] = 0
}

// GetVertex reads one packed vertex from the start of src. src must be at
// least VertexStride bytes.
func GetVertex(src []byte) Vertex {
	_ = src[VertexStride-1] // bounds check hint
	var v Vertex
	v.Position = getVec3(src[PositionOffset:])
	v.Normal = getVec3(src[NormalOffset:])
	v.Bitangent = getVec3(src[BitangentOffset:])
	v.CurveDistance = math.Float32frombits(binary.LittleEndian.Uint32(src[CurveDistanceOffset:]))
	v.Color[0] = Half(binary.LittleEndian.Uint16(src[ColorOffset:]))
	v.Color[1] = Half(binary.LittleEndian.Uint16(src[ColorOffset+2:]))
	v.Color[2] = Half(binary.LittleEndian.Uint16(src[ColorOffset+4:]))
	return v
}

// VertexAt reads the i-th packed vertex from src.
func VertexAt(src []byte, i int) Vertex {
	return GetVertex(src[i*VertexStride:])
}

// Bytes returns the raw byte view of verts without copying, suitable for
// queue.WriteBuffer. The slice aliases verts and is valid only while verts is
// reachable and unmodified. Byte order is the host's; GPU vertex fetch on all
// supported backends is little-endian, matching the PutVertex encoding.
func Bytes(verts []Vertex) []byte {
	if len(verts) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&verts[0])), len(verts)*VertexStride) //nolint:gosec // fixed-layout struct view
}

func putVec3(dst []byte, v Vec3) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v.Z))
}

func getVec3(src []byte) Vec3 {
	return Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(src[0:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(src[4:8])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(src[8:12])),
	}
}
