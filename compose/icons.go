package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"wordkit/document"
	"wordkit/observability"
)

// icon resolves a logical icon key (profile, skills, email, ...) to an
// embeddable image sized sizePts square. Icons are decoration: any failure
// logs a warning and reports !ok so the caller renders text-only.
func (c *Composer) icon(key string, sizePts float64) (document.Image, bool) {
	if c.iconDir == "" {
		return document.Image{}, false
	}
	path := filepath.Join(c.iconDir, key+".png")

	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Warn("icon not found, rendering without it",
			observability.String("key", key), observability.Error("err", err))
		return document.Image{}, false
	}

	data, err = c.shrinkIcon(data)
	if err != nil {
		c.log.Warn("icon undecodable, rendering without it",
			observability.String("key", key), observability.Error("err", err))
		return document.Image{}, false
	}

	return document.Image{
		Path:   path,
		Data:   data,
		Width:  sizePts,
		Height: sizePts,
	}, true
}

// shrinkIcon decodes the asset and downsamples oversized art so a source
// icon exported at print resolution does not bloat the package. Icons at
// or under the pixel limit pass through untouched.
func (c *Composer) shrinkIcon(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= c.maxIconPx && h <= c.maxIconPx {
		return data, nil
	}

	scale := float64(c.maxIconPx) / float64(w)
	if h > w {
		scale = float64(c.maxIconPx) / float64(h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return buf.Bytes(), nil
}
