package generationservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/pkg/validate"
)

// Completer is the single-call text-completion collaborator. An
// article request invokes it up to three times: draft, translation,
// title pair.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// ArticleParams drive the draft stage of the text pipeline.
type ArticleParams struct {
	SourceText string
	SourceURL  string
	Style      string
	Tone       string
	Paragraphs int
}

var (
	ErrNoImages        = errors.New("no images provided")
	ErrInvalidImage    = errors.New("invalid image upload")
	ErrNoSource        = errors.New("article source text or url required")
	ErrDraftGeneration = errors.New("draft generation failed for all models")
)

type Service struct {
	completer Completer
	models    []string
}

func New(completer Completer, models []string) *Service {
	return &Service{
		completer: completer,
		models:    models,
	}
}

// GenerateFromImages validates each upload and passes the references
// through unchanged. No external call is made.
func (s *Service) GenerateFromImages(title string, images []domain.ImageAsset) (*domain.Content, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	for _, img := range images {
		if !validate.IsImage(img.ContentType, int64(len(img.Data))) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidImage, img.Name)
		}
	}
	return &domain.Content{
		Title:  title,
		Images: images,
	}, nil
}

// GenerateArticle runs the three-stage text pipeline. The draft stage
// is fatal on failure after trying every model variant in order.
// Translation and title derivation degrade gracefully: the field is
// left empty and the article still saves in English only.
func (s *Service) GenerateArticle(ctx context.Context, params ArticleParams) (*domain.Content, error) {
	if params.SourceText == "" && params.SourceURL == "" {
		return nil, ErrNoSource
	}

	draft, err := s.draft(ctx, params)
	if err != nil {
		return nil, err
	}

	content := &domain.Content{BodyEN: draft}

	translated, err := s.completer.Complete(ctx, s.models[0], translatePrompt(draft))
	if err != nil {
		zap.L().Warn("translation stage failed, saving english only", zap.Error(err))
	} else {
		content.BodyAR = strings.TrimSpace(translated)
	}

	titleText, err := s.completer.Complete(ctx, s.models[0], titlePrompt(draft))
	if err != nil {
		zap.L().Warn("title stage failed, leaving titles empty", zap.Error(err))
	} else {
		content.Title, content.TitleTranslated = parseTitlePair(titleText)
	}

	return content, nil
}

// draft walks the model fallback list in order, advancing on any
// failure and failing only once the list is exhausted.
func (s *Service) draft(ctx context.Context, params ArticleParams) (string, error) {
	prompt := draftPrompt(params)
	for _, model := range s.models {
		text, err := s.completer.Complete(ctx, model, prompt)
		if err != nil {
			zap.L().Warn("draft model failed, trying next",
				zap.String("model", model),
				zap.Error(err),
			)
			continue
		}
		return strings.TrimSpace(text), nil
	}
	return "", ErrDraftGeneration
}

func draftPrompt(params ArticleParams) string {
	var b strings.Builder
	b.WriteString("Write an article")
	if params.Paragraphs > 0 {
		fmt.Fprintf(&b, " of %d paragraphs", params.Paragraphs)
	}
	if params.Style != "" {
		fmt.Fprintf(&b, " in %s style", params.Style)
	}
	if params.Tone != "" {
		fmt.Fprintf(&b, " with a %s tone", params.Tone)
	}
	if params.SourceURL != "" {
		fmt.Fprintf(&b, " based on the page at %s", params.SourceURL)
	} else {
		fmt.Fprintf(&b, " based on the following source:\n\n%s", params.SourceText)
	}
	return b.String()
}

func translatePrompt(draft string) string {
	return "Translate the following article into Modern Standard Arabic, keeping the paragraph structure:\n\n" + draft
}

func titlePrompt(draft string) string {
	return "Derive a short title for the following article. Answer with exactly two lines:\n" +
		"English: <title>\nArabic: <title>\n\n" + draft
}
