// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

// Block16 is an encoded BC3 block: a BC4 alpha block followed by BC1-style
// color fields. The color fields always use the 4-color palette.
type Block16 struct {
	Alpha      GreyScaleBlock8
	Max        uint16
	Min        uint16
	ColorTable uint32
}

// EncodeBlockBC3 encodes a 4×4 block, given in row-major order.
//
// Transparency is carried only by the alpha block. Unlike EncodeBlockBC1, a
// pixel's alpha never affects its color index.
func EncodeBlockBC3[T ColorSource[T]](block [16]T) Block16 {
	alphas := [16]uint8{}
	for i, p := range block {
		alphas[i] = p.Alpha()
	}

	e := findEndpoints(&block)
	palette := [4]T{
		e.max,
		e.min,
		e.max.Mix21(e.min),
		e.max.Mix12(e.min),
	}

	return Block16{
		Alpha:      EncodeChannelBC4(alphas),
		Max:        e.max565,
		Min:        e.min565,
		ColorTable: encodeColorTable(&block, &palette, false),
	}
}

// EncodeImageBC3 encodes a row-major image of the given size, returning its
// blocks in row-major block order.
//
// It returns ErrBadArgument if width or height is negative or if pixels has
// fewer than width*height elements.
//
// options may be nil, which means to use the default configuration.
func EncodeImageBC3[T ColorSource[T]](pixels []T, width int, height int, options *EncodeOptions) ([]Block16, error) {
	return encodeImage(pixels, width, height, options, EncodeBlockBC3[T])
}

// EncodeImageBC3Bytes is like EncodeImageBC3 but returns the serialized block
// stream, 16 bytes per block.
func EncodeImageBC3Bytes[T ColorSource[T]](pixels []T, width int, height int, options *EncodeOptions) ([]byte, error) {
	return encodeImageBytes(pixels, width, height, options, FormatBC3.BytesPerBlock(), EncodeBlockBC3[T])
}
