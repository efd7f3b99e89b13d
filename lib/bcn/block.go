// Copyright 2025 The Bcn Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bcn

import (
	"sync"
	"sync/atomic"
)

// FetchBlock returns the 4×4 block, in row-major order, whose top-left pixel
// is at (x, y) in a row-major image of the given width and height.
//
// Positions right of or below the image are the zero value of T. Each axis is
// checked separately, so a position past the right edge is never filled from
// the start of the next row.
//
// pixels must hold at least width*height elements.
func FetchBlock[T any](pixels []T, x int, y int, width int, height int) (block [16]T) {
	for dy := range 4 {
		py := y + dy
		if py >= height {
			break
		}
		row := py * width
		for dx := range 4 {
			px := x + dx
			if px >= width {
				break
			}
			block[(4*dy)+dx] = pixels[row+px]
		}
	}
	return block
}

// BlockCount returns the number of 4×4 blocks across and down an image of the
// given size, rounding partial blocks up.
func BlockCount(width int, height int) (blocksX int, blocksY int) {
	return (width + 3) / 4, (height + 3) / 4
}

func checkImage[T any](pixels []T, width int, height int) error {
	if (width < 0) || (height < 0) {
		return ErrBadArgument
	}
	if (width != 0) && (height > (len(pixels) / width)) {
		return ErrBadArgument
	}
	return nil
}

// encodeImage fetches every block of the image and encodes it with encode.
// The result is in row-major block order.
func encodeImage[T any, B any](pixels []T, width int, height int, options *EncodeOptions, encode func(block [16]T) B) ([]B, error) {
	if err := checkImage(pixels, width, height); err != nil {
		return nil, err
	}
	blocksX, blocksY := BlockCount(width, height)
	totalBlocks := blocksX * blocksY
	blocks := make([]B, totalBlocks)

	procs := options.workers(totalBlocks)
	if procs == 1 {
		for by := range blocksY {
			for bx := range blocksX {
				blocks[(by*blocksX)+bx] = encode(FetchBlock(pixels, 4*bx, 4*by, width, height))
			}
		}
		return blocks, nil
	}

	// Each worker claims block indexes and writes only to its own blocks
	// elements, so the order of the result does not depend on scheduling.
	var next uint32
	var wg sync.WaitGroup
	wg.Add(procs)
	for range procs {
		go func() {
			defer wg.Done()
			for {
				idx := int(atomic.AddUint32(&next, 1) - 1)
				if idx >= totalBlocks {
					return
				}
				bx := idx % blocksX
				by := idx / blocksX
				blocks[idx] = encode(FetchBlock(pixels, 4*bx, 4*by, width, height))
			}
		}()
	}
	wg.Wait()
	return blocks, nil
}

type appender interface {
	AppendBytes(dst []byte) []byte
}

// encodeImageBytes is like encodeImage but serializes the blocks, each being
// bytesPerBlock long, into a single buffer.
func encodeImageBytes[T any, B appender](pixels []T, width int, height int, options *EncodeOptions, bytesPerBlock int, encode func(block [16]T) B) ([]byte, error) {
	blocks, err := encodeImage(pixels, width, height, options, encode)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, len(blocks)*bytesPerBlock)
	for _, b := range blocks {
		ret = b.AppendBytes(ret)
	}
	return ret, nil
}
