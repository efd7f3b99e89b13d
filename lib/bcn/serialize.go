// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

// AppendBytes appends the 8 byte wire form of b to dst: Max, Min and then
// ColorTable, each little-endian.
func (b Block8) AppendBytes(dst []byte) []byte {
	dst = appendU16LE(dst, b.Max)
	dst = appendU16LE(dst, b.Min)
	return appendU32LE(dst, b.ColorTable)
}

// Indices unpacks b.ColorTable.
func (b Block8) Indices() (ret [16]uint8) {
	return unpackIndexes2(b.ColorTable)
}

// AppendBytes appends the 8 byte wire form of b to dst: Max, Min and then
// Table.
func (b GreyScaleBlock8) AppendBytes(dst []byte) []byte {
	dst = append(dst, b.Max, b.Min)
	return append(dst, b.Table[:]...)
}

// AppendBytes appends the 16 byte wire form of b to dst: the R block and then
// the G block.
func (b GreyScaleBlock16) AppendBytes(dst []byte) []byte {
	dst = b.R.AppendBytes(dst)
	return b.G.AppendBytes(dst)
}

// AppendBytes appends the 16 byte wire form of b to dst: the alpha block and
// then the color fields in BC1 layout.
func (b Block16) AppendBytes(dst []byte) []byte {
	dst = b.Alpha.AppendBytes(dst)
	dst = appendU16LE(dst, b.Max)
	dst = appendU16LE(dst, b.Min)
	return appendU32LE(dst, b.ColorTable)
}

// Indices unpacks b.ColorTable.
func (b Block16) Indices() (ret [16]uint8) {
	return unpackIndexes2(b.ColorTable)
}

func unpackIndexes2(table uint32) (ret [16]uint8) {
	for i := range ret {
		ret[i] = uint8(table>>(2*i)) & 0x03
	}
	return ret
}

func appendU16LE(b []byte, u uint16) []byte {
	return append(b,
		uint8(u>>0),
		uint8(u>>8),
	)
}

func appendU32LE(b []byte, u uint32) []byte {
	return append(b,
		uint8(u>>0),
		uint8(u>>8),
		uint8(u>>16),
		uint8(u>>24),
	)
}
