package dto

import "time"

type PublishArticleRequestDTO struct {
	Title           string `json:"title"`
	TitleTranslated string `json:"title_translated,omitempty"`
	BodyEN          string `json:"body_en"`
	BodyAR          string `json:"body_ar,omitempty"`
	SourceURL       string `json:"source_url,omitempty"`
}

type PublishResponseDTO struct {
	InstanceID int    `json:"instance_id" example:"17"`
	UsageID    string `json:"usage_id" example:"9f2c41aa"`
	SiteURL    string `json:"site_url" example:"https://pagemint.app/alice/image-to-site/9f2c41aa"`
}

type GetInstancesResponseDTO struct {
	ID        int       `json:"id" example:"17"`
	ToolID    string    `json:"tool_id" example:"image-to-site"`
	UsageID   string    `json:"usage_id" example:"9f2c41aa"`
	Title     string    `json:"title"`
	SiteURL   string    `json:"site_url,omitempty"`
	Status    string    `json:"status" example:"finalized"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
}
