// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"

	"cogentcore.org/animator/base/iox/imagex"
)

// LoadBitmap reads the image file, detecting its format from
// its content.
func LoadBitmap(filename string) (image.Image, error) {
	img, _, err := imagex.Open(filename)
	return img, err
}

// SaveImage writes the rendered image to the file, with the format
// given by the file extension.
func (c *Canvas) SaveImage(filename string) error {
	return imagex.Save(c.Image, filename)
}
