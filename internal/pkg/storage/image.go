package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor resizes uploaded images.
type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Thumbnail renders the source image into a maxWidth x maxHeight bounding
// box and returns it as JPEG.
func (p *ImageProcessor) Thumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decode image failed: %w", err)
	}

	thumb := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail failed: %w", err)
	}
	return buf, nil
}

// Normalize re-encodes an uploaded image as JPEG, capped at maxDim on the
// longer side. Uploads of arbitrary formats come out as predictable JPEGs.
func (p *ImageProcessor) Normalize(content io.Reader, maxDim int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decode image failed: %w", err)
	}

	if img.Bounds().Dx() > maxDim || img.Bounds().Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode image failed: %w", err)
	}
	return buf, nil
}
