package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func getSocial(svc *MockSocialFeedService, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterSocialRoutes(r.Group("/api/v1"), svc)

	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSocialFeed_InstagramDefaultLimit(t *testing.T) {
	svc := new(MockSocialFeedService)
	posts := []dto.SocialPost{{ID: "1", Caption: "new drop", Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}}
	svc.On("InstagramFeed", mock.Anything, 12).Return(&dto.SocialFeedResponse{Provider: "instagram", Posts: posts}, nil).Once()

	w := getSocial(svc, "/api/v1/social/instagram")
	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.SocialFeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "instagram", res.Provider)
	assert.Len(t, res.Posts, 1)
	svc.AssertExpectations(t)
}

func TestSocialFeed_TikTokCustomLimit(t *testing.T) {
	svc := new(MockSocialFeedService)
	svc.On("TikTokFeed", mock.Anything, 3).Return(&dto.SocialFeedResponse{Provider: "tiktok", Posts: []dto.SocialPost{}}, nil).Once()

	w := getSocial(svc, "/api/v1/social/tiktok?limit=3")
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "InstagramFeed", mock.Anything, mock.Anything)
}

func TestSocialFeed_InvalidLimit(t *testing.T) {
	for _, q := range []string{"limit=0", "limit=51", "limit=abc"} {
		svc := new(MockSocialFeedService)
		w := getSocial(svc, "/api/v1/social/instagram?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestSocialFeed_ProviderFailure(t *testing.T) {
	svc := new(MockSocialFeedService)
	svc.On("TikTokFeed", mock.Anything, 12).Return(nil, apperrors.NewUpstreamError("tiktok", errors.New("no page data"))).Once()

	w := getSocial(svc, "/api/v1/social/tiktok")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var res handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "tiktok request failed: no page data", res.Error)
}
