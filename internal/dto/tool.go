package dto

type GetToolsResponseDTO struct {
	ToolID      string  `json:"tool_id" example:"image-to-site"`
	DisplayName string  `json:"display_name" example:"Image to Site"`
	UnitPrice   float64 `json:"unit_price" example:"0"`
}

type GenerateArticleRequestDTO struct {
	SourceText string `json:"source_text,omitempty"`
	SourceURL  string `json:"source_url,omitempty" example:"https://example.com/post"`
	Style      string `json:"style,omitempty" example:"informative"`
	Tone       string `json:"tone,omitempty" example:"neutral"`
	Paragraphs int    `json:"paragraphs,omitempty" example:"3"`
}

type GenerateArticleResponseDTO struct {
	Title           string `json:"title"`
	TitleTranslated string `json:"title_translated,omitempty"`
	BodyEN          string `json:"body_en"`
	BodyAR          string `json:"body_ar,omitempty"`
}
