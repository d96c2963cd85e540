//go:build !nogpu

// Package gpu uploads packed brush vertex data to wgpu vertex buffers.
//
// It covers exactly the upload step of the vertex lifecycle: mesh generation
// fills a solidbrush.VertexBuffer on the CPU, this package copies the packed
// bytes into a GPU buffer, and the (out of package) render pipeline binds
// the buffer against solidbrush.BufferLayout.
//
// The package uses gogpu/wgpu's hal layer directly (zero CGO). OpenDevice
// selects a Vulkan adapter; applications that already own a device can call
// UploadVertices with their own hal.Device and hal.Queue instead.
//
// Usage:
//
//	dev, err := gpu.OpenDevice()
//	if err != nil { ... }
//	defer dev.Close()
//
//	mesh, err := gpu.NewMesh(dev, &buf, gpu.WithLabel("stroke_42"))
//	if err != nil { ... }
//	defer mesh.Destroy(dev.HalDevice())
package gpu
