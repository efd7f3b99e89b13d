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
	"io"

	"github.com/pkg/errors"
)

// Encode writes src to dst as a raw block stream in the format f.
//
// Colors are taken non-premultiplied. FormatBC4R uses the red channel (the
// gray level for an *image.Gray) and FormatBC4RG uses the red and green
// channels.
//
// options may be nil, which means to use the default configuration.
func Encode(dst io.Writer, src image.Image, f Format, options *EncodeOptions) error {
	if (dst == nil) || (src == nil) {
		return ErrBadArgument
	}

	var (
		buf []byte
		err error
	)
	switch f {
	case FormatBC1:
		pixels, w, h := extractRGBA8(src)
		buf, err = EncodeImageBC1Bytes(pixels, w, h, options)
	case FormatBC3:
		pixels, w, h := extractRGBA8(src)
		buf, err = EncodeImageBC3Bytes(pixels, w, h, options)
	case FormatBC4R:
		pixels, w, h := extractRed8(src)
		buf, err = EncodeImageBC4RBytes(pixels, w, h, options)
	case FormatBC4RG:
		pixels, w, h := extractRedGreen8(src)
		buf, err = EncodeImageBC4RGBytes(pixels, w, h, options)
	default:
		return ErrBadFormat
	}
	if err != nil {
		return err
	}

	if _, err := dst.Write(buf); err != nil {
		return errors.Wrapf(err, "bcn: writing %s blocks", f)
	}
	return nil
}
