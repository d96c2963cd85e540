package solidbrush

import "github.com/gogpu/gputypes"

// Shader input locations for the brush vertex attributes. The vertex shader
// must declare its inputs at these locations.
const (
	ShaderLocationPosition      = 0
	ShaderLocationNormal        = 1
	ShaderLocationBitangent     = 2
	ShaderLocationCurveDistance = 3
	ShaderLocationColor         = 4
)

// BufferLayout returns the vertex buffer layout for the brush pipeline,
// matching the packed Vertex struct byte for byte.
//
// The color attribute is declared Float16x4 even though the record stores
// three halves: WebGPU has no three-component half format, and the fourth
// component reads the record's two trailing pad bytes, staying inside the
// 48-byte stride. Shaders consume .rgb and ignore .a.
func BufferLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: PositionOffset, ShaderLocation: ShaderLocationPosition},
				{Format: gputypes.VertexFormatFloat32x3, Offset: NormalOffset, ShaderLocation: ShaderLocationNormal},
				{Format: gputypes.VertexFormatFloat32x3, Offset: BitangentOffset, ShaderLocation: ShaderLocationBitangent},
				{Format: gputypes.VertexFormatFloat32, Offset: CurveDistanceOffset, ShaderLocation: ShaderLocationCurveDistance},
				{Format: gputypes.VertexFormatFloat16x4, Offset: ColorOffset, ShaderLocation: ShaderLocationColor},
			},
		},
	}
}
