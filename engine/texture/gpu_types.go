package texture

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// SamplerConfig overrides the default linear/repeat sampler. Zero fields keep the default.
type SamplerConfig struct {
	AddressModeU wgpu.AddressMode
	AddressModeV wgpu.AddressMode
	MagFilter    wgpu.FilterMode
	MinFilter    wgpu.FilterMode
}

// Extent returns the per-layer size with the layer count as depth.
func (img *Image) Extent() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              img.width,
		Height:             img.LayerHeight(),
		DepthOrArrayLayers: img.layers,
	}
}

// Descriptor returns the GPU texture descriptor for uploading the image.
func (img *Image) Descriptor() wgpu.TextureDescriptor {
	return wgpu.TextureDescriptor{
		Label:         img.name + " Texture",
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		Size:          img.Extent(),
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	}
}

// ViewDescriptor returns a view covering every layer. Layered images get a 2D array view.
func (img *Image) ViewDescriptor() wgpu.TextureViewDescriptor {
	dimension := wgpu.TextureViewDimension2D
	if img.layers > 1 {
		dimension = wgpu.TextureViewDimension2DArray
	}
	return wgpu.TextureViewDescriptor{
		Label:           img.name + " View",
		Format:          wgpu.TextureFormatRGBA8UnormSrgb,
		Dimension:       dimension,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: img.layers,
		Aspect:          wgpu.TextureAspectAll,
	}
}

// DataLayout returns the buffer layout of Pixels for a single queue write of all layers.
func (img *Image) DataLayout() wgpu.TextureDataLayout {
	return wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  img.width * bytesPerPixel,
		RowsPerImage: img.LayerHeight(),
	}
}

// SamplerDescriptor returns a sampler descriptor with cfg applied over linear filtering and repeat addressing.
func SamplerDescriptor(label string, cfg SamplerConfig) wgpu.SamplerDescriptor {
	return wgpu.SamplerDescriptor{
		Label:         label + " Sampler",
		AddressModeU:  common.Coalesce(cfg.AddressModeU, wgpu.AddressModeRepeat),
		AddressModeV:  common.Coalesce(cfg.AddressModeV, wgpu.AddressModeRepeat),
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     common.Coalesce(cfg.MagFilter, wgpu.FilterModeLinear),
		MinFilter:     common.Coalesce(cfg.MinFilter, wgpu.FilterModeLinear),
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}
