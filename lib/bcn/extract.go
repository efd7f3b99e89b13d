// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

import (
	"image"

	"golang.org/x/image/draw"
)

// toNRGBA returns src as non-premultiplied 8-bit RGBA. *image.NRGBA images
// are returned as is. Anything else is converted to a new image whose bounds
// start at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if m, ok := src.(*image.NRGBA); ok {
		return m
	}
	b := src.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(m, image.Point{}, src, b, draw.Src, nil)
	return m
}

// extractPixels flattens src into a row-major slice, converting each
// non-premultiplied RGBA color with conv.
func extractPixels[T any](src image.Image, conv func(r uint8, g uint8, b uint8, a uint8) T) (pixels []T, width int, height int) {
	m := toNRGBA(src)
	b := m.Bounds()
	width, height = b.Dx(), b.Dy()
	pixels = make([]T, 0, width*height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		row := m.Pix[i : i+(4*width)]
		for ; len(row) >= 4; row = row[4:] {
			pixels = append(pixels, conv(row[0], row[1], row[2], row[3]))
		}
	}
	return pixels, width, height
}

func extractRGBA8(src image.Image) ([]RGBA8, int, int) {
	return extractPixels(src, func(r uint8, g uint8, b uint8, a uint8) RGBA8 {
		return RGBA8{r, g, b, a}
	})
}

func extractRedGreen8(src image.Image) ([]RedGreen8, int, int) {
	return extractPixels(src, func(r uint8, g uint8, b uint8, a uint8) RedGreen8 {
		return RedGreen8{r, g}
	})
}

// extractRed8 reads the red channel, or the gray level of an *image.Gray.
func extractRed8(src image.Image) ([]Red8, int, int) {
	if m, ok := src.(*image.Gray); ok {
		b := m.Bounds()
		width, height := b.Dx(), b.Dy()
		pixels := make([]Red8, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			for _, v := range m.Pix[i : i+width] {
				pixels = append(pixels, Red8{v})
			}
		}
		return pixels, width, height
	}
	return extractPixels(src, func(r uint8, g uint8, b uint8, a uint8) Red8 {
		return Red8{r}
	})
}
