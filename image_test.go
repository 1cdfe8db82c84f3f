// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipImageY(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	flipImageY(2, 3, pix)
	exp := []byte{
		3, 3,
		2, 2,
		1, 1,
	}
	if string(pix) != string(exp) {
		t.Errorf("got %v, expected %v", pix, exp)
	}
}

func TestDownloadImage(t *testing.T) {
	f, fake := newTestFactory(t)
	// Two rows, bottom row first: red then blue.
	fake.Pixels = []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	tex := f.Texture2(2, 2, false, Rgba8)
	fb := f.Framebuffer(2, 2, [MaxColorAttachments]Attachment{TextureAttachment(tex)}, Attachment{})
	img, err := DownloadImage(f, fb, image.Rect(0, 0, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))

	_, err = DownloadImage(f, fb, image.Rect(0, 0, 3, 3))
	assert.Error(t, err)
}

func TestUploadImage(t *testing.T) {
	f, fake := newTestFactory(t)
	tex := f.Texture2(2, 1, false, Rgba8)
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{R: 40, G: 50, B: 60, A: 255})
	require.NoError(t, UploadImage(f, tex, src))
	assert.Equal(t, []byte{10, 20, 30, 255, 40, 50, 60, 255}, fake.TextureContents(tex.ID()))

	assert.Error(t, UploadImage(f, tex, image.NewRGBA(image.Rect(0, 0, 4, 4))))
}

func TestBytes(t *testing.T) {
	b := Bytes([]uint16{0x0102, 0x0304})
	assert.Len(t, b, 4)
	assert.Nil(t, Bytes([]float32{}))
	f := Bytes([]float32{1})
	assert.Len(t, f, 4)
}
