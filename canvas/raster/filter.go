// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/math32"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"golang.org/x/image/draw"
)

// applyMaskFilter returns the image filtered by the mask filter,
// with radii scaled by scale. The image is premultiplied and
// transparent outside what was drawn.
func applyMaskFilter(img *image.RGBA, mf canvas.MaskFilter, scale float32) *image.RGBA {
	switch f := mf.(type) {
	case *canvas.Blur:
		return applyBlur(img, f, scale)
	case *canvas.Emboss:
		return applyEmboss(img, f, scale)
	}
	return img
}

func applyBlur(img *image.RGBA, f *canvas.Blur, scale float32) *image.RGBA {
	radius := float64(f.Radius * scale)
	if radius <= 0 {
		return img
	}
	blurred := blur.Gaussian(img, radius)
	switch f.Style {
	case canvas.BlurSolid:
		draw.Draw(blurred, blurred.Bounds(), img, img.Bounds().Min, draw.Over)
	case canvas.BlurOuter:
		scaleByAlpha(blurred, img, true)
	case canvas.BlurInner:
		scaleByAlpha(blurred, img, false)
	}
	return blurred
}

// scaleByAlpha scales every pixel of dst by the alpha of the matching
// pixel of by, or by its inverse if invert is set.
func scaleByAlpha(dst, by *image.RGBA, invert bool) {
	for i := 3; i < len(dst.Pix) && i < len(by.Pix); i += 4 {
		a := uint16(by.Pix[i])
		if invert {
			a = 255 - a
		}
		for k := i - 3; k <= i; k++ {
			dst.Pix[k] = uint8(uint16(dst.Pix[k]) * a / 255)
		}
	}
}

// applyEmboss lights the shape as a relief whose height is its
// blurred coverage. The light direction of the bild emboss kernel
// is fixed at the top left, so only the ambient and specular
// amounts of the filter are used.
func applyEmboss(img *image.RGBA, f *canvas.Emboss, scale float32) *image.RGBA {
	height := image.NewRGBA(img.Bounds())
	for i := 3; i < len(img.Pix); i += 4 {
		a := img.Pix[i]
		height.Pix[i-3], height.Pix[i-2], height.Pix[i-1], height.Pix[i] = a, a, a, 255
	}
	if r := float64(f.Radius * scale); r > 0 {
		height = blur.Gaussian(height, r)
	}
	relief := effect.Emboss(height)
	ambient := math32.Clamp(f.Ambient, 0, 1)
	out := image.NewRGBA(img.Bounds())
	for i := 3; i < len(img.Pix) && i < len(relief.Pix); i += 4 {
		a := img.Pix[i]
		if a == 0 {
			continue
		}
		s := (float32(relief.Pix[i-3]) - 128) / 128
		lum := ambient + (1-ambient)*(0.5+0.5*s)
		spec := f.Specular * max(s, 0) * float32(a)
		for k := i - 3; k < i; k++ {
			out.Pix[k] = uint8(math32.Clamp(float32(img.Pix[k])*lum+spec, 0, float32(a)))
		}
		out.Pix[i] = a
	}
	return out
}
