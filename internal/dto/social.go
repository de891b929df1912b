package dto

import "time"

// SocialPost is a normalized post from Instagram or TikTok.
type SocialPost struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption,omitempty"`
	MediaType    string    `json:"mediaType,omitempty"`
	MediaURL     string    `json:"mediaURL,omitempty"`
	ThumbnailURL string    `json:"thumbnailURL,omitempty"`
	Permalink    string    `json:"permalink,omitempty"`
	Timestamp    time.Time `json:"timestamp,omitempty"`
}

// SocialFeedParams are the query parameters of the feed endpoints.
type SocialFeedParams struct {
	Limit int `form:"limit,default=12" binding:"min=1,max=50"`
}

// SocialFeedResponse wraps posts from one provider.
type SocialFeedResponse struct {
	Provider string       `json:"provider"`
	Posts    []SocialPost `json:"posts"`
}
