package services

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/platform/metrics"
)

type recaptchaService struct {
	BaseService
	gateway  gateways.RecaptchaGateway
	minScore float64
	bypass   bool
}

// NewRecaptchaService creates the verification service. Verification fails
// closed: anything other than a positive verdict rejects the token. bypass
// accepts every token and must only be set outside production.
func NewRecaptchaService(gateway gateways.RecaptchaGateway, minScore float64, bypass bool) portssvc.RecaptchaSvc {
	return &recaptchaService{gateway: gateway, minScore: minScore, bypass: bypass}
}

func (s *recaptchaService) Verify(ctx context.Context, req dto.VerifyRecaptchaRequest, remoteIP string) (*dto.VerifyRecaptchaResponse, error) {
	if s.bypass {
		s.LogWarn(ctx, "reCAPTCHA bypass enabled, accepting token without verification")
		return &dto.VerifyRecaptchaResponse{Success: true, Action: req.Action}, nil
	}

	start := time.Now()
	verdict, err := s.gateway.SiteVerify(ctx, req.Token, remoteIP)
	metrics.ObserveUpstream("recaptcha", time.Since(start), err)
	if err != nil {
		s.LogError(ctx, err, "reCAPTCHA verification request failed")
		return nil, apperrors.NewUpstreamError("recaptcha", err)
	}

	reason := ""
	switch {
	case !verdict.Success:
		reason = "token rejected"
		if len(verdict.ErrorCodes) > 0 {
			reason += ": " + strings.Join(verdict.ErrorCodes, ", ")
		}
	case req.Action != "" && verdict.Action != "" && verdict.Action != req.Action:
		reason = "action mismatch"
	// v2 tokens carry no action or score
	case verdict.Action != "" && verdict.Score < s.minScore:
		reason = "score below threshold"
	}
	if reason != "" {
		s.LogWarn(ctx, "reCAPTCHA verification failed",
			slog.String("reason", reason),
			slog.Float64("score", verdict.Score),
			slog.String("action", verdict.Action))
		verdict.Success = false
		return verdict, apperrors.NewAppError(http.StatusBadRequest, "reCAPTCHA verification failed: "+reason, apperrors.ErrValidation)
	}
	return verdict, nil
}
