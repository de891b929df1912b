package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/platform/metrics"
)

const (
	ProviderInstagram = "instagram"
	ProviderTikTok    = "tiktok"
)

type socialFeedService struct {
	BaseService
	instagram gateways.SocialGateway
	tiktok    gateways.SocialGateway
}

// NewSocialFeedService creates the social feed proxy service.
func NewSocialFeedService(instagram, tiktok gateways.SocialGateway) portssvc.SocialFeedSvc {
	return &socialFeedService{instagram: instagram, tiktok: tiktok}
}

func (s *socialFeedService) InstagramFeed(ctx context.Context, limit int) (*dto.SocialFeedResponse, error) {
	return s.feed(ctx, ProviderInstagram, s.instagram, limit)
}

func (s *socialFeedService) TikTokFeed(ctx context.Context, limit int) (*dto.SocialFeedResponse, error) {
	return s.feed(ctx, ProviderTikTok, s.tiktok, limit)
}

func (s *socialFeedService) feed(ctx context.Context, provider string, gateway gateways.SocialGateway, limit int) (*dto.SocialFeedResponse, error) {
	if limit <= 0 {
		return nil, apperrors.NewValidationError("limit must be positive")
	}

	start := time.Now()
	posts, err := gateway.RecentPosts(ctx, limit)
	metrics.ObserveUpstream(provider, time.Since(start), err)
	if err != nil {
		s.LogError(ctx, err, "Failed to load social feed", slog.String("provider", provider))
		return nil, apperrors.NewUpstreamError(provider, err)
	}
	if posts == nil {
		posts = []dto.SocialPost{}
	}
	return &dto.SocialFeedResponse{Provider: provider, Posts: posts}, nil
}
