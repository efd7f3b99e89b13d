// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

// ColorSource is the set of per-pixel operations that the BC1 and BC3 color
// encoders need. T is the concrete pixel type itself, so that SqrDistance and
// the Mix methods take and return values of the same layout.
type ColorSource[T any] interface {
	// Luminance returns r + 2g + b. It is only an endpoint selection
	// heuristic, not a perceptual brightness.
	Luminance() int32

	// To565 truncates the RGB channels to 5:6:5 bits, red in the high bits.
	To565() uint16

	// SqrDistance sums the squared R, G and B differences. Alpha is ignored.
	SqrDistance(other T) int32

	// Mix21 returns (2*c + other) / 3 per channel.
	Mix21(other T) T
	// Mix12 returns (c + 2*other) / 3 per channel.
	Mix12(other T) T
	// Mix11 returns (c + other) / 2 per channel.
	Mix11(other T) T

	// HasAlpha reports whether the pixel type carries an alpha channel. It
	// depends only on the type, not the value.
	HasAlpha() bool

	// Alpha returns the alpha channel, or 0xFF for types without one.
	Alpha() uint8
}

// RedSource is a pixel with at least one 8-bit channel.
type RedSource interface {
	Red() uint8
}

// RedGreenSource is a pixel with at least two 8-bit channels.
type RedGreenSource interface {
	Red() uint8
	Green() uint8
}

// RGBA8 is a non-premultiplied 8-bit-per-channel color with alpha.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGB8 is an 8-bit-per-channel opaque color.
type RGB8 struct {
	R, G, B uint8
}

// Red8 is a single 8-bit channel.
type Red8 struct {
	R uint8
}

// RedGreen8 is a pair of 8-bit channels.
type RedGreen8 struct {
	R, G uint8
}

var (
	_ ColorSource[RGBA8] = RGBA8{}
	_ ColorSource[RGB8]  = RGB8{}
	_ RedGreenSource     = RGBA8{}
	_ RedGreenSource     = RGB8{}
	_ RedSource          = Red8{}
	_ RedGreenSource     = RedGreen8{}
)

func luminance(r uint8, g uint8, b uint8) int32 {
	return int32(r) + (2 * int32(g)) + int32(b)
}

func to565(r uint8, g uint8, b uint8) uint16 {
	return (uint16(r&0xF8) << 8) |
		(uint16(g&0xFC) << 3) |
		(uint16(b) >> 3)
}

func sqrDistance(r0 uint8, g0 uint8, b0 uint8, r1 uint8, g1 uint8, b1 uint8) int32 {
	dr := int32(r0) - int32(r1)
	dg := int32(g0) - int32(g1)
	db := int32(b0) - int32(b1)
	return (dr * dr) + (dg * dg) + (db * db)
}

// mixSaturate returns (aWeight*a + bWeight*b) / (aWeight + bWeight), rounded
// down and clamped to 0xFF.
func mixSaturate(aWeight uint32, a uint8, bWeight uint32, b uint8) uint8 {
	v := ((aWeight * uint32(a)) + (bWeight * uint32(b))) / (aWeight + bWeight)
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

func mix21(x uint8, y uint8) uint8 { return mixSaturate(2, x, 1, y) }
func mix12(x uint8, y uint8) uint8 { return mixSaturate(1, x, 2, y) }
func mix11(x uint8, y uint8) uint8 { return mixSaturate(1, x, 1, y) }

func (c RGBA8) Luminance() int32 { return luminance(c.R, c.G, c.B) }
func (c RGBA8) To565() uint16    { return to565(c.R, c.G, c.B) }
func (c RGBA8) HasAlpha() bool   { return true }
func (c RGBA8) Alpha() uint8     { return c.A }
func (c RGBA8) Red() uint8       { return c.R }
func (c RGBA8) Green() uint8     { return c.G }

func (c RGBA8) SqrDistance(o RGBA8) int32 {
	return sqrDistance(c.R, c.G, c.B, o.R, o.G, o.B)
}

func (c RGBA8) Mix21(o RGBA8) RGBA8 {
	return RGBA8{mix21(c.R, o.R), mix21(c.G, o.G), mix21(c.B, o.B), mix21(c.A, o.A)}
}

func (c RGBA8) Mix12(o RGBA8) RGBA8 {
	return RGBA8{mix12(c.R, o.R), mix12(c.G, o.G), mix12(c.B, o.B), mix12(c.A, o.A)}
}

func (c RGBA8) Mix11(o RGBA8) RGBA8 {
	return RGBA8{mix11(c.R, o.R), mix11(c.G, o.G), mix11(c.B, o.B), mix11(c.A, o.A)}
}

func (c RGB8) Luminance() int32 { return luminance(c.R, c.G, c.B) }
func (c RGB8) To565() uint16    { return to565(c.R, c.G, c.B) }
func (c RGB8) HasAlpha() bool   { return false }
func (c RGB8) Alpha() uint8     { return 0xFF }
func (c RGB8) Red() uint8       { return c.R }
func (c RGB8) Green() uint8     { return c.G }

func (c RGB8) SqrDistance(o RGB8) int32 {
	return sqrDistance(c.R, c.G, c.B, o.R, o.G, o.B)
}

func (c RGB8) Mix21(o RGB8) RGB8 {
	return RGB8{mix21(c.R, o.R), mix21(c.G, o.G), mix21(c.B, o.B)}
}

func (c RGB8) Mix12(o RGB8) RGB8 {
	return RGB8{mix12(c.R, o.R), mix12(c.G, o.G), mix12(c.B, o.B)}
}

func (c RGB8) Mix11(o RGB8) RGB8 {
	return RGB8{mix11(c.R, o.R), mix11(c.G, o.G), mix11(c.B, o.B)}
}

func (c Red8) Red() uint8 { return c.R }

func (c RedGreen8) Red() uint8   { return c.R }
func (c RedGreen8) Green() uint8 { return c.G }
