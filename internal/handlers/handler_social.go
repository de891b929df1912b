package handlers

import (
	"context"
	"net/http"

	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type socialHandler struct {
	socialService portssvc.SocialFeedSvc
}

// RegisterSocialRoutes registers the social feed proxy routes.
func RegisterSocialRoutes(rg *gin.RouterGroup, socialService portssvc.SocialFeedSvc) {
	h := &socialHandler{socialService: socialService}

	social := rg.Group("/social")
	{
		social.GET("/instagram", h.feed(h.socialService.InstagramFeed))
		social.GET("/tiktok", h.feed(h.socialService.TikTokFeed))
	}
}

// feed godoc
// @Summary Get a social media feed
// @Description Returns the newest posts of the store's Instagram or TikTok account
// @Tags social
// @Produce  json
// @Param   limit query int false "Maximum number of posts" minimum(1) maximum(50) default(12)
// @Success 200 {object} dto.SocialFeedResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 502 {object} ErrorResponse "Provider request failed"
// @Router /social/instagram [get]
// @Router /social/tiktok [get]
func (h *socialHandler) feed(fetch func(ctx context.Context, limit int) (*dto.SocialFeedResponse, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var params dto.SocialFeedParams
		if err := c.ShouldBindQuery(&params); err != nil {
			bindError(c, logger, err)
			return
		}

		res, err := fetch(c.Request.Context(), params.Limit)
		if err != nil {
			respondWithError(c, logger, err, "Failed to load social feed")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
