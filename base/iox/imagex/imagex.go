// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads and writes the bitmaps referenced by
// documents and produced by rendering, detecting the format
// of image data from its content.
package imagex

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image encoding / decoding formats
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", f)
	}
	return formatNames[f]
}

// ErrNotImage is returned for data that is not a supported image.
var ErrNotImage = errors.New("imagex: data is not a supported image")

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Sniff returns the format of the given image data based on its
// leading bytes, or [ErrNotImage] if it is not a supported image.
func Sniff(data []byte) (Formats, error) {
	if !filetype.IsImage(data) {
		return None, ErrNotImage
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return None, err
	}
	f, err := ExtToFormat(kind.Extension)
	if err != nil {
		return None, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
	}
	return f, nil
}

// Open opens an image from the given filename.
// The format is detected from the content,
// and is returned using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	im, f, err := Read(file)
	if err != nil {
		return nil, None, fmt.Errorf("imagex.Open %q: %w", filename, err)
	}
	return im, f, nil
}

// OpenFS opens an image from the given filename
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader, checking that the data
// is a supported image before decoding it.
func Read(r io.Reader) (image.Image, Formats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, None, err
	}
	f, err := Sniff(data)
	if err != nil {
		return nil, None, err
	}
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, None, err
	}
	return im, f, nil
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// png, jpeg, gif, tiff, and bmp are supported.
func Save(im image.Image, filename string) error {
	ext := filepath.Ext(filename)
	f, err := ExtToFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	default:
		return fmt.Errorf("imagex.Write: format %v not valid", f)
	}
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(src)
}

// CompareColors returns whether each component of the two colors
// differs by at most tol.
func CompareColors(a, b color.Color, tol int) bool {
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return near(ca.R, cb.R) && near(ca.G, cb.G) && near(ca.B, cb.B) && near(ca.A, cb.A)
}
