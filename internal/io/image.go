package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration (yt-dlp's default thumbnail format)
)

// ImageService turns downloaded video thumbnails into embeddable cover art.
//
// Thumbnails arrive in whatever format the video site serves (WebP for
// YouTube, sometimes JPEG or PNG). ID3 embedding wants a reasonably
// sized JPEG, so the service decodes, scales down when needed, and
// re-encodes.
//
// Example usage:
//
//	svc := NewImageService()
//
//	data, _ := os.ReadFile("full_audio.webp")
//	cover, err := svc.PrepareCover(data, 1000)
//	// cover is JPEG-encoded, at most 1000px on the longer edge
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// PrepareCover converts thumbnail image data into JPEG cover art no
// larger than maxSize pixels on either edge.
//
// The aspect ratio is preserved; images already within bounds are
// re-encoded without scaling. maxSize values below 1 disable the size
// limit.
//
// The Catmull-Rom algorithm is used for high-quality downscaling.
func (s *ImageService) PrepareCover(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxSize > 0 && (width > maxSize || height > maxSize) {
		// Scale the longer edge down to maxSize, keeping the ratio
		ratio := float64(width) / float64(height)
		if width > height {
			width = maxSize
			height = int(float64(maxSize) / ratio)
		} else {
			height = maxSize
			width = int(float64(maxSize) * ratio)
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
