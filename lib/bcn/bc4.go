// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

// GreyScaleBlock8 is an encoded single channel BC4 block. It is also the alpha
// half of a BC3 block.
//
// Table holds 16 3-bit indexes into the ramp built by bc4Ramp, packed
// little-endian: pixel 0 is in the low 3 bits of Table[0].
type GreyScaleBlock8 struct {
	Max   uint8
	Min   uint8
	Table [6]uint8
}

// GreyScaleBlock16 is an encoded dual channel BC4 block.
type GreyScaleBlock16 struct {
	R GreyScaleBlock8
	G GreyScaleBlock8
}

// bc4Ramp returns the 8 entry ramp: max, min and then six interpolations
// stepping from mostly-min to mostly-max.
func bc4Ramp(lo uint8, hi uint8) [8]uint8 {
	return [8]uint8{
		hi,
		lo,
		mixSaturate(6, lo, 1, hi),
		mixSaturate(5, lo, 2, hi),
		mixSaturate(4, lo, 3, hi),
		mixSaturate(3, lo, 4, hi),
		mixSaturate(2, lo, 5, hi),
		mixSaturate(1, lo, 6, hi),
	}
}

// EncodeChannelBC4 encodes 16 samples of one 8-bit channel, in row-major
// order.
func EncodeChannelBC4(samples [16]uint8) GreyScaleBlock8 {
	lo, hi := uint8(0xFF), uint8(0x00)
	for _, s := range samples {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	ramp := bc4Ramp(lo, hi)

	indexes := [16]uint8{}
	for i, s := range samples {
		bestDelta := int32(0x7FFF_FFFF)
		for j, r := range ramp {
			delta := int32(r) - int32(s)
			if delta < 0 {
				delta = -delta
			}
			if delta < bestDelta {
				indexes[i], bestDelta = uint8(j), delta
			}
		}
	}

	return GreyScaleBlock8{
		Max:   hi,
		Min:   lo,
		Table: packIndexes3(&indexes),
	}
}

// packIndexes3 packs 16 3-bit values into 48 bits. Each group of 8 values
// fills 3 bytes, with values 2 and 5 of each group straddling a byte
// boundary.
func packIndexes3(x *[16]uint8) (ret [6]uint8) {
	for g := 0; g < 16; g += 8 {
		o := (3 * g) / 8
		ret[o+0] = (x[g+0] >> 0) | (x[g+1] << 3) | (x[g+2] << 6)
		ret[o+1] = (x[g+2] >> 2) | (x[g+3] << 1) | (x[g+4] << 4) | (x[g+5] << 7)
		ret[o+2] = (x[g+5] >> 1) | (x[g+6] << 2) | (x[g+7] << 5)
	}
	return ret
}

// Indices unpacks b.Table.
func (b GreyScaleBlock8) Indices() (ret [16]uint8) {
	for g := 0; g < 2; g++ {
		t := b.Table[3*g:]
		bits := uint32(t[0]) | (uint32(t[1]) << 8) | (uint32(t[2]) << 16)
		for i := range 8 {
			ret[(8*g)+i] = uint8(bits>>(3*i)) & 0x07
		}
	}
	return ret
}

// EncodeBlockBC4R encodes the red channel of a 4×4 block, given in row-major
// order.
func EncodeBlockBC4R[T RedSource](block [16]T) GreyScaleBlock8 {
	samples := [16]uint8{}
	for i, p := range block {
		samples[i] = p.Red()
	}
	return EncodeChannelBC4(samples)
}

// EncodeBlockBC4RG encodes the red and green channels of a 4×4 block, given
// in row-major order, as two independent BC4 blocks.
func EncodeBlockBC4RG[T RedGreenSource](block [16]T) GreyScaleBlock16 {
	r, g := [16]uint8{}, [16]uint8{}
	for i, p := range block {
		r[i] = p.Red()
		g[i] = p.Green()
	}
	return GreyScaleBlock16{
		R: EncodeChannelBC4(r),
		G: EncodeChannelBC4(g),
	}
}

// EncodeImageBC4R encodes the red channel of a row-major image of the given
// size, returning its blocks in row-major block order.
//
// It returns ErrBadArgument if width or height is negative or if pixels has
// fewer than width*height elements.
//
// options may be nil, which means to use the default configuration.
func EncodeImageBC4R[T RedSource](pixels []T, width int, height int, options *EncodeOptions) ([]GreyScaleBlock8, error) {
	return encodeImage(pixels, width, height, options, EncodeBlockBC4R[T])
}

// EncodeImageBC4RBytes is like EncodeImageBC4R but returns the serialized
// block stream, 8 bytes per block.
func EncodeImageBC4RBytes[T RedSource](pixels []T, width int, height int, options *EncodeOptions) ([]byte, error) {
	return encodeImageBytes(pixels, width, height, options, FormatBC4R.BytesPerBlock(), EncodeBlockBC4R[T])
}

// EncodeImageBC4RG encodes the red and green channels of a row-major image of
// the given size, returning its blocks in row-major block order.
func EncodeImageBC4RG[T RedGreenSource](pixels []T, width int, height int, options *EncodeOptions) ([]GreyScaleBlock16, error) {
	return encodeImage(pixels, width, height, options, EncodeBlockBC4RG[T])
}

// EncodeImageBC4RGBytes is like EncodeImageBC4RG but returns the serialized
// block stream, 16 bytes per block.
func EncodeImageBC4RGBytes[T RedGreenSource](pixels []T, width int, height int, options *EncodeOptions) ([]byte, error) {
	return encodeImageBytes(pixels, width, height, options, FormatBC4RG.BytesPerBlock(), EncodeBlockBC4RG[T])
}
