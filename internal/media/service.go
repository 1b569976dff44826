// Package media relays admin image uploads to Cloudinary and hands back
// durable HTTPS URLs for the catalog to reference.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service wraps the Cloudinary upload API.
type Service struct {
	cld    *cloudinary.Cloudinary
	preset string
}

// NewService constructs a Service from a CLOUDINARY_URL style connection
// string and an upload preset.
func NewService(cloudinaryURL, preset string) (*Service, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("media: cloudinary URL not configured")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("media: init cloudinary: %w", err)
	}
	return &Service{cld: cld, preset: preset}, nil
}

// Upload sends the file to Cloudinary and returns its secure URL.
func (s *Service) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{UploadPreset: s.preset})
	if err != nil {
		return "", fmt.Errorf("media: upload: %w", err)
	}
	if result.SecureURL == "" {
		return "", errors.New("media: upload returned no URL")
	}
	return result.SecureURL, nil
}
