package cdn

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/foliocms/foliocms/internal/config"
	"github.com/foliocms/foliocms/pkg/logger"
)

// Image is one CDN-hosted gallery resource.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Service lists uploaded image resources from the Cloudinary media CDN,
// kept as an alternative/legacy gallery source alongside the blob store.
type Service struct {
	cld *cloudinary.Cloudinary
}

// NewService builds the CDN client. Returns an error when credentials are
// absent; callers treat a nil service as "integration disabled".
func NewService(cfg config.CloudinaryConfig) (*Service, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials missing")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Service{cld: cld}, nil
}

// ListImages returns all uploaded resources as {src, alt} pairs, with the
// public id serving as the alt label. Empty slice on failure.
func (s *Service) ListImages(ctx context.Context) []Image {
	res, err := s.cld.Admin.Assets(ctx, admin.AssetsParams{MaxResults: 100})
	if err != nil {
		logger.Errorf("error fetching CDN images: %v", err)
		return []Image{}
	}
	out := make([]Image, 0, len(res.Assets))
	for _, a := range res.Assets {
		out = append(out, Image{Src: a.SecureURL, Alt: a.PublicID})
	}
	return out
}
