// Package texture decodes images into RGBA pixel buffers and reinterprets vertically
// stacked images as layered array textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultArrayLayers is the layer count of the planet's terrain texture.
const DefaultArrayLayers uint32 = 4

const bytesPerPixel = 4

var (
	// ErrLayerMismatch is returned when an image's height cannot be split evenly into the requested layers.
	ErrLayerMismatch = errors.New("texture: image height is not divisible by layer count")

	// ErrPixelCount is returned when a pixel buffer does not match width*height*4 bytes.
	ErrPixelCount = errors.New("texture: pixel buffer size mismatch")
)

// Image is an RGBA8 pixel buffer with an optional array-layer interpretation.
//
// Layers are stored back to back, each Width x LayerHeight pixels, so a vertically stacked
// 2D image and its array form share the same bytes.
type Image struct {
	name   string
	pixels []byte
	width  uint32
	height uint32
	layers uint32
}

// NewImage wraps an RGBA8 pixel buffer as a single-layer Image.
//
// Parameters:
//   - name: the image name used in labels and errors
//   - width: the width in pixels
//   - height: the height in pixels
//   - pixels: width*height*4 bytes, row major
//
// Returns:
//   - *Image: the image
//   - error: ErrPixelCount if the buffer size is wrong
func NewImage(name string, width, height uint32, pixels []byte) (*Image, error) {
	if uint64(len(pixels)) != uint64(width)*uint64(height)*bytesPerPixel {
		return nil, fmt.Errorf("%w: %s is %dx%d but has %d bytes", ErrPixelCount, name, width, height, len(pixels))
	}
	return &Image{name: name, pixels: pixels, width: width, height: height, layers: 1}, nil
}

// Decode reads a PNG, JPEG, BMP or WebP image and converts it to RGBA8.
//
// Parameters:
//   - name: the image name used in labels and errors
//   - r: the encoded image
//
// Returns:
//   - *Image: the single-layer image
//   - error: error if decoding fails
func Decode(name string, r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*bytesPerPixel || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return NewImage(name, uint32(bounds.Dx()), uint32(bounds.Dy()), rgba.Pix)
}

// LoadFile opens and decodes the image at path.
//
// Parameters:
//   - path: the image file
//
// Returns:
//   - *Image: the single-layer image
//   - error: error if the file cannot be opened or decoded
func LoadFile(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	return Decode(path, file)
}

// ReinterpretStacked2DAsArray splits the image vertically into layers of equal height.
// The pixel bytes are not touched. Reinterpreting with the current layer count is a no-op.
//
// Parameters:
//   - layers: the number of array layers
//
// Returns:
//   - error: ErrLayerMismatch if the height is not divisible by layers, or the image is already layered differently
func (img *Image) ReinterpretStacked2DAsArray(layers uint32) error {
	if layers == img.layers {
		return nil
	}
	if img.layers != 1 {
		return fmt.Errorf("%w: %s already has %d layers", ErrLayerMismatch, img.name, img.layers)
	}
	if layers == 0 || img.height%layers != 0 {
		return fmt.Errorf("%w: %s height %d, layers %d", ErrLayerMismatch, img.name, img.height, layers)
	}
	img.layers = layers
	return nil
}

// Name returns the image name.
func (img *Image) Name() string {
	return img.name
}

// Width returns the width in pixels.
func (img *Image) Width() uint32 {
	return img.width
}

// Height returns the full stacked height in pixels.
func (img *Image) Height() uint32 {
	return img.height
}

// Layers returns the array layer count, 1 for a plain 2D image.
func (img *Image) Layers() uint32 {
	return img.layers
}

// LayerHeight returns the height of one layer in pixels.
func (img *Image) LayerHeight() uint32 {
	return img.height / img.layers
}

// Pixels returns all layers' RGBA8 bytes.
func (img *Image) Pixels() []byte {
	return img.pixels
}

// Layer returns the RGBA8 bytes of layer i, or nil when i is out of range.
func (img *Image) Layer(i uint32) []byte {
	if i >= img.layers {
		return nil
	}
	size := img.width * img.LayerHeight() * bytesPerPixel
	return img.pixels[i*size : (i+1)*size]
}
