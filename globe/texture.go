// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sniffLen is the number of header bytes filetype needs to match any type.
const sniffLen = 261

// LoadTexture opens the image file at path for use as a texture,
// downsizing it to maxWidth pixels wide if it is wider (0 = no limit).
func LoadTexture(path string, maxWidth int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTexture(f, maxWidth)
}

// ReadTexture is [LoadTexture] for an already open file.
func ReadTexture(r io.ReadSeeker, maxWidth int) (*image.RGBA, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading texture header: %w", err)
	}
	if !filetype.IsImage(head[:n]) {
		kind, _ := filetype.Match(head[:n])
		return nil, fmt.Errorf("texture is not an image (detected type %q)", kind.MIME.Value)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding texture: %w", err)
	}
	sz := img.Bounds().Size()
	if maxWidth > 0 && sz.X > maxWidth {
		h := max(1, sz.Y*maxWidth/sz.X)
		slog.Info("downsizing texture", "format", format, "from", sz, "width", maxWidth, "height", h)
		return transform.Resize(img, maxWidth, h, transform.Linear), nil
	}
	return clone.AsRGBA(img), nil
}
