// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

// Block8 is an encoded BC1 block.
//
// When Max > Min, ColorTable indexes the palette {max, min, (2*max+min)/3,
// (max+2*min)/3}. Otherwise it indexes {max, min, (max+min)/2, transparent
// black}.
type Block8 struct {
	Max        uint16
	Min        uint16
	ColorTable uint32
}

// endpoints are a block's two colors of extreme luminance, ordered so that
// max565 >= min565.
type endpoints[T ColorSource[T]] struct {
	min    T
	min565 uint16
	max    T
	max565 uint16

	// degenerate is whether the luminance order did not already give
	// max565 > min565 and the pair was swapped. For a 565 pair that ends up
	// equal, BC1 decoders use the 3-color plus transparent palette.
	degenerate bool
}

func findEndpoints[T ColorSource[T]](block *[16]T) (e endpoints[T]) {
	maxLum, minLum := int32(-1), int32(0x7FFF_FFFF)
	e.max, e.min = block[0], block[0]
	for _, p := range block {
		lum := p.Luminance()
		if lum > maxLum {
			maxLum, e.max = lum, p
		}
		if lum < minLum {
			minLum, e.min = lum, p
		}
	}

	e.min565 = e.min.To565()
	e.max565 = e.max.To565()
	if e.max565 <= e.min565 {
		e.min, e.max = e.max, e.min
		e.min565, e.max565 = e.max565, e.min565
		e.degenerate = true
	}
	return e
}

// encodeColorTable picks, for each pixel, the nearest of the four palette
// entries and packs the 2-bit indexes, pixel 0 in the low bits. Ties go to the
// lowest index.
//
// If punchThrough is set, pixels with alpha below 0x80 map to index 3
// regardless of their color.
func encodeColorTable[T ColorSource[T]](block *[16]T, palette *[4]T, punchThrough bool) (table uint32) {
	for i, p := range block {
		index := uint32(3)
		if !punchThrough || (p.Alpha() >= 0x80) {
			bestDistance := int32(0x7FFF_FFFF)
			for j := range palette {
				if d := p.SqrDistance(palette[j]); d < bestDistance {
					index, bestDistance = uint32(j), d
				}
			}
		}
		table |= index << (2 * i)
	}
	return table
}

// EncodeBlockBC1 encodes a 4×4 block, given in row-major order.
//
// For pixel types with alpha, pixels whose alpha is below 0x80 are encoded as
// transparent black.
func EncodeBlockBC1[T ColorSource[T]](block [16]T) Block8 {
	e := findEndpoints(&block)

	var zero T
	hasAlpha := zero.HasAlpha()

	palette := [4]T{e.max, e.min}
	if hasAlpha && e.degenerate {
		palette[2] = e.max.Mix11(e.min)
		palette[3] = zero
	} else {
		palette[2] = e.max.Mix21(e.min)
		palette[3] = e.max.Mix12(e.min)
	}

	return Block8{
		Max:        e.max565,
		Min:        e.min565,
		ColorTable: encodeColorTable(&block, &palette, hasAlpha),
	}
}

// EncodeImageBC1 encodes a row-major image of the given size, returning its
// blocks in row-major block order.
//
// It returns ErrBadArgument if width or height is negative or if pixels has
// fewer than width*height elements.
//
// options may be nil, which means to use the default configuration.
func EncodeImageBC1[T ColorSource[T]](pixels []T, width int, height int, options *EncodeOptions) ([]Block8, error) {
	return encodeImage(pixels, width, height, options, EncodeBlockBC1[T])
}

// EncodeImageBC1Bytes is like EncodeImageBC1 but returns the serialized block
// stream, 8 bytes per block.
func EncodeImageBC1Bytes[T ColorSource[T]](pixels []T, width int, height int, options *EncodeOptions) ([]byte, error) {
	return encodeImageBytes(pixels, width, height, options, FormatBC1.BytesPerBlock(), EncodeBlockBC1[T])
}
