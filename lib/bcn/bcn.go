// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package bcn implements encoders for the BC1, BC3 and BC4 (also known as
// DXT1, DXT5 and RGTC) block compressed texture formats.
//
// Every format splits the image into 4×4 pixel blocks, encoded independently
// and emitted in row-major block order. Blocks that extend past the right or
// bottom edge of the image are padded with zero-valued pixels.
//
// Endpoints are chosen by the fast min/max luminance heuristic, not by a
// cluster fit, so the output favors speed over quality.
//
// The output is the raw block stream, with no DDS, KTX or other container
// header. The formats are described at
// https://docs.microsoft.com/en-us/windows/win32/direct3d10/d3d10-graphics-programming-guide-resources-block-compression
package bcn

import (
	"runtime"

	"github.com/pkg/errors"
)

var (
	ErrBadArgument = errors.New("bcn: bad argument")
	ErrBadFormat   = errors.New("bcn: bad format")
)

// AlphaModel is a Format's transparency model.
type AlphaModel uint8

const (
	AlphaModelOpaque = AlphaModel(0)
	AlphaModel1Bit   = AlphaModel(1)
	AlphaModel8Bit   = AlphaModel(2)
)

// Format is one of the block compressed formats that this package can
// produce. The zero value is invalid.
type Format uint8

const (
	FormatInvalid = Format(0)

	// FormatBC1 is BC1 (DXT1): 8 bytes per block, RGB plus optional
	// punch-through alpha.
	FormatBC1 = Format(1)

	// FormatBC3 is BC3 (DXT5): 16 bytes per block, a BC4 alpha block
	// followed by a BC1-style color block.
	FormatBC3 = Format(3)

	// FormatBC4R is single channel BC4: 8 bytes per block.
	FormatBC4R = Format(4)

	// FormatBC4RG is dual channel BC4 (the BC5 layout): 16 bytes per block,
	// the red channel's block followed by the green channel's.
	FormatBC4RG = Format(5)
)

// AlphaModel returns the Format's transparency model.
func (f Format) AlphaModel() AlphaModel {
	switch f {
	case FormatBC1:
		return AlphaModel1Bit
	case FormatBC3:
		return AlphaModel8Bit
	}
	return AlphaModelOpaque
}

// BytesPerBlock returns the Format-dependent number of bytes used to encode
// each 4×4 pixel block, or 0 for an invalid Format.
func (f Format) BytesPerBlock() int {
	switch f {
	case FormatBC1, FormatBC4R:
		return 8
	case FormatBC3, FormatBC4RG:
		return 16
	}
	return 0
}

// OpenGLInternalFormat returns the OpenGL internalFormat enum value for f,
// suitable for passing to the glCompressedTexImage2D function.
func (f Format) OpenGLInternalFormat() uint32 {
	switch f {
	case FormatBC1:
		return 0x83F1 // GL_COMPRESSED_RGBA_S3TC_DXT1_EXT
	case FormatBC3:
		return 0x83F3 // GL_COMPRESSED_RGBA_S3TC_DXT5_EXT
	case FormatBC4R:
		return 0x8DBB // GL_COMPRESSED_RED_RGTC1
	case FormatBC4RG:
		return 0x8DBD // GL_COMPRESSED_RG_RGTC2
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case FormatBC1:
		return "BC1"
	case FormatBC3:
		return "BC3"
	case FormatBC4R:
		return "BC4R"
	case FormatBC4RG:
		return "BC4RG"
	}
	return "Invalid"
}

// EncodeOptions are optional arguments to the image encoders. The zero value
// is valid and means to use the default configuration.
type EncodeOptions struct {
	// Workers is the number of goroutines that encode blocks. Zero or one
	// means to encode on the calling goroutine. Negative means to use
	// runtime.GOMAXPROCS(0).
	//
	// The output does not depend on Workers.
	Workers int
}

// minBlocksForWorkers is the block count below which images are always
// encoded sequentially.
const minBlocksForWorkers = 32

func (o *EncodeOptions) workers(numBlocks int) int {
	if (o == nil) || (numBlocks < minBlocksForWorkers) {
		return 1
	}
	n := o.Workers
	if n < 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, numBlocks))
}
