// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

import (
	"testing"
)

func TestTo565(tt *testing.T) {
	testCases := []struct {
		c    RGB8
		want uint16
	}{
		{RGB8{0x00, 0x00, 0x00}, 0x0000},
		{RGB8{0xFF, 0x00, 0x00}, 0xF800},
		{RGB8{0x00, 0xFF, 0x00}, 0x07E0},
		{RGB8{0x00, 0x00, 0xFF}, 0x001F},
		{RGB8{0xFF, 0xFF, 0xFF}, 0xFFFF},
		{RGB8{0x07, 0x03, 0x07}, 0x0000},
		{RGB8{0x08, 0x04, 0x08}, 0x0821},
	}

	for _, tc := range testCases {
		if got := tc.c.To565(); got != tc.want {
			tt.Errorf("c=%v: got 0x%04X, want 0x%04X", tc.c, got, tc.want)
		}
		rgba := RGBA8{tc.c.R, tc.c.G, tc.c.B, 0x00}
		if got := rgba.To565(); got != tc.want {
			tt.Errorf("rgba=%v: got 0x%04X, want 0x%04X", rgba, got, tc.want)
		}
	}
}

func TestTo565Requantize(tt *testing.T) {
	for v := range 0x10000 {
		r5, g6, b5 := uint8(v>>11), uint8(v>>5)&0x3F, uint8(v)&0x1F
		c := RGB8{
			(r5 << 3) | (r5 >> 2),
			(g6 << 2) | (g6 >> 4),
			(b5 << 3) | (b5 >> 2),
		}
		if got := c.To565(); got != uint16(v) {
			tt.Fatalf("v=0x%04X: got 0x%04X", v, got)
		}
	}
}

func TestLuminance(tt *testing.T) {
	if got, want := (RGBA8{10, 20, 30, 40}).Luminance(), int32(80); got != want {
		tt.Errorf("RGBA8: got %d, want %d", got, want)
	}
	if got, want := (RGB8{0xFF, 0xFF, 0xFF}).Luminance(), int32(1020); got != want {
		tt.Errorf("RGB8: got %d, want %d", got, want)
	}
}

func TestSqrDistanceIgnoresAlpha(tt *testing.T) {
	a := RGBA8{1, 2, 3, 0x00}
	b := RGBA8{4, 6, 3, 0xFF}
	if got, want := a.SqrDistance(b), int32(25); got != want {
		tt.Errorf("got %d, want %d", got, want)
	}
	if got, want := (RGB8{0xFF, 0x00, 0xFF}).SqrDistance(RGB8{}), int32(2*255*255); got != want {
		tt.Errorf("got %d, want %d", got, want)
	}
}

func TestMixSaturate(tt *testing.T) {
	for x := range 256 {
		for y := range 256 {
			lo, hi := uint8(min(x, y)), uint8(max(x, y))
			for _, tc := range []struct {
				name string
				got  uint8
				want int
			}{
				{"mix21", mix21(uint8(x), uint8(y)), ((2 * x) + y) / 3},
				{"mix12", mix12(uint8(x), uint8(y)), (x + (2 * y)) / 3},
				{"mix11", mix11(uint8(x), uint8(y)), (x + y) / 2},
			} {
				if int(tc.got) != tc.want {
					tt.Fatalf("%s(%d, %d): got %d, want %d", tc.name, x, y, tc.got, tc.want)
				}
				if (tc.got < lo) || (tc.got > hi) {
					tt.Fatalf("%s(%d, %d): got %d, outside [%d, %d]", tc.name, x, y, tc.got, lo, hi)
				}
			}
		}
	}
}

func TestMixRGB8(tt *testing.T) {
	white, black := RGB8{0xFF, 0xFF, 0xFF}, RGB8{}
	if got, want := white.Mix21(black), (RGB8{170, 170, 170}); got != want {
		tt.Errorf("Mix21: got %v, want %v", got, want)
	}
	if got, want := white.Mix12(black), (RGB8{85, 85, 85}); got != want {
		tt.Errorf("Mix12: got %v, want %v", got, want)
	}
	if got, want := white.Mix11(black), (RGB8{127, 127, 127}); got != want {
		tt.Errorf("Mix11: got %v, want %v", got, want)
	}
}

func TestAlpha(tt *testing.T) {
	if c := (RGB8{1, 2, 3}); c.HasAlpha() || (c.Alpha() != 0xFF) {
		tt.Errorf("RGB8: got (%t, %d), want (false, 255)", c.HasAlpha(), c.Alpha())
	}
	if c := (RGBA8{1, 2, 3, 4}); !c.HasAlpha() || (c.Alpha() != 4) {
		tt.Errorf("RGBA8: got (%t, %d), want (true, 4)", c.HasAlpha(), c.Alpha())
	}
}
