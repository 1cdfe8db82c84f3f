// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var rgba8 = PixelFormat{Type: U8, Order: OrderRGBA}

// DownloadImage reads the rectangle r of fb into an image with the
// usual top-left origin.
func DownloadImage(f *Factory, fb *Framebuffer, r image.Rectangle) (*image.RGBA, error) {
	w, h := fb.Dimensions()
	if !r.In(image.Rect(0, 0, w, h)) {
		return nil, fmt.Errorf("gpu: %v outside of %dx%d framebuffer", r, w, h)
	}
	img := image.NewRGBA(r)
	f.ReadPixels(fb, r, rgba8, img.Pix)
	// OpenGL's origin is in the lower left corner.
	flipImageY(r.Dx()*4, r.Dy(), img.Pix)
	return img, nil
}

func flipImageY(stride, height int, pixels []byte) {
	row := make([]uint8, stride)
	for y := 0; y < height/2; y++ {
		y1 := height - y - 1
		dest := y1 * stride
		src := y * stride
		copy(row, pixels[dest:])
		copy(pixels[dest:], pixels[src:src+len(row)])
		copy(pixels[src:], row)
	}
}

// UploadImage replaces the contents of t with img, which must have the
// texture's dimensions. Images other than tightly packed *image.RGBA
// are converted first.
func UploadImage(f *Factory, t *Texture2, img image.Image) error {
	b := img.Bounds()
	if w, h := t.Dimensions(); b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("gpu: %dx%d image for a %dx%d texture", b.Dx(), b.Dy(), w, h)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	pix := rgba.Pix[rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y):]
	f.WriteTexture2(t, rgba8, pix)
	return nil
}
