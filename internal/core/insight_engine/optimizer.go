package insight_engine

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"github.com/gecf-kip/insight/internal/core"
	"github.com/gecf-kip/insight/internal/models"
)

// ImageOptimizer re-encodes a raw embedded image as a bounded-dimension JPEG
// thumbnail. Scaling uses a fixed resampling kernel, so output bytes are
// deterministic for identical input and configuration.
type ImageOptimizer struct {
	maxDim  int
	quality int
}

func NewImageOptimizer(maxDim, quality int) *ImageOptimizer {
	return &ImageOptimizer{maxDim: maxDim, quality: quality}
}

// Optimize converts one RawImage into a Thumbnail. Corrupt or zero-byte
// payloads return an ImageDecodeError; the caller skips the image and moves
// on.
func (o *ImageOptimizer) Optimize(raw models.RawImage) (*models.Thumbnail, error) {
	if len(raw.Data) == 0 {
		return nil, &core.ImageDecodeError{PageOrdinal: raw.PageOrdinal, Err: fmt.Errorf("empty image payload")}
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, &core.ImageDecodeError{PageOrdinal: raw.PageOrdinal, Err: fmt.Errorf("non-positive dimensions %dx%d", raw.Width, raw.Height)}
	}

	src, _, err := image.Decode(bytes.NewReader(raw.Data))
	if err != nil {
		return nil, &core.ImageDecodeError{PageOrdinal: raw.PageOrdinal, Err: fmt.Errorf("decode %s image: %w", raw.Format, err)}
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Bound the longer edge; never upscale.
	if longer := max(width, height); longer > o.maxDim {
		scale := float64(o.maxDim) / float64(longer)
		width = int(float64(width) * scale)
		height = int(float64(height) * scale)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: o.quality}); err != nil {
		return nil, &core.ImageDecodeError{PageOrdinal: raw.PageOrdinal, Err: fmt.Errorf("encode jpeg: %w", err)}
	}

	return &models.Thumbnail{
		PageOrdinal: raw.PageOrdinal,
		Width:       width,
		Height:      height,
		Data:        base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
