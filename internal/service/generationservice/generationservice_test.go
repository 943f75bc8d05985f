package generationservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pagemint/pagemint/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCompleter) {
	ctrl := gomock.NewController(t)
	completer := NewMockCompleter(ctrl)
	service := New(completer, []string{"mint-large", "mint-base", "mint-lite"})
	defer ctrl.Finish()
	return service, completer
}

func TestGenerateFromImages(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name          string
		images        []domain.ImageAsset
		expectedError error
	}{
		{
			name: "Valid images pass through unchanged",
			images: []domain.ImageAsset{
				{Name: "a.png", ContentType: "image/png", Data: []byte("png")},
				{Name: "b.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
			},
		},
		{
			name:          "No images",
			images:        nil,
			expectedError: ErrNoImages,
		},
		{
			name: "Empty upload rejected",
			images: []domain.ImageAsset{
				{Name: "a.png", ContentType: "image/png", Data: nil},
			},
			expectedError: ErrInvalidImage,
		},
		{
			name: "Wrong media type rejected",
			images: []domain.ImageAsset{
				{Name: "a.txt", ContentType: "text/plain", Data: []byte("hi")},
			},
			expectedError: ErrInvalidImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := service.GenerateFromImages("My Page", tt.images)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "My Page", content.Title)
			assert.Equal(t, tt.images, content.Images)
		})
	}
}

func TestGenerateArticle(t *testing.T) {
	params := ArticleParams{SourceText: "Hello world", Paragraphs: 1}

	t.Run("All stages succeed", func(t *testing.T) {
		service, completer := NewMock(t)

		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, prompt string) (string, error) {
				assert.Contains(t, prompt, "Hello world")
				return "An article about the world.", nil
			})
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("مقال عن العالم.", nil)
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).
			Return("English: The World\nArabic: العالم", nil)

		content, err := service.GenerateArticle(context.Background(), params)

		assert.NoError(t, err)
		assert.Equal(t, "An article about the world.", content.BodyEN)
		assert.Equal(t, "مقال عن العالم.", content.BodyAR)
		assert.Equal(t, "The World", content.Title)
		assert.Equal(t, "العالم", content.TitleTranslated)
	})

	t.Run("Draft advances through model fallback list", func(t *testing.T) {
		service, completer := NewMock(t)

		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("", errors.New("overloaded"))
		completer.EXPECT().Complete(gomock.Any(), "mint-base", gomock.Any()).Return("draft from fallback", nil)
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("ترجمة", nil)
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("English: T\nArabic: ت", nil)

		content, err := service.GenerateArticle(context.Background(), params)

		assert.NoError(t, err)
		assert.Equal(t, "draft from fallback", content.BodyEN)
	})

	t.Run("Draft fatal after exhausting every model", func(t *testing.T) {
		service, completer := NewMock(t)

		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("overloaded")).Times(3)

		_, err := service.GenerateArticle(context.Background(), params)

		assert.ErrorIs(t, err, ErrDraftGeneration)
	})

	t.Run("Translation failure degrades to english only", func(t *testing.T) {
		service, completer := NewMock(t)

		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("english body", nil)
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("", errors.New("timeout"))
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).
			Return("English: Title\nArabic: عنوان", nil)

		content, err := service.GenerateArticle(context.Background(), params)

		assert.NoError(t, err)
		assert.NotEmpty(t, content.BodyEN)
		assert.Empty(t, content.BodyAR)
		assert.Equal(t, "Title", content.Title)
	})

	t.Run("Title failure degrades to empty titles", func(t *testing.T) {
		service, completer := NewMock(t)

		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("english body", nil)
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("ترجمة", nil)
		completer.EXPECT().Complete(gomock.Any(), "mint-large", gomock.Any()).Return("", errors.New("timeout"))

		content, err := service.GenerateArticle(context.Background(), params)

		assert.NoError(t, err)
		assert.Empty(t, content.Title)
		assert.Empty(t, content.TitleTranslated)
	})

	t.Run("Missing source rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.GenerateArticle(context.Background(), ArticleParams{})

		assert.ErrorIs(t, err, ErrNoSource)
	})
}

func TestParseTitlePair(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		english string
		arabic  string
	}{
		{
			name:    "Structured key value form",
			text:    "English: Hello World\nArabic: مرحبا بالعالم",
			english: "Hello World",
			arabic:  "مرحبا بالعالم",
		},
		{
			name:    "Case insensitive keys",
			text:    "english: Hello\nARABIC: مرحبا",
			english: "Hello",
			arabic:  "مرحبا",
		},
		{
			name:    "Line heuristic fallback",
			text:    "Hello World\nمرحبا بالعالم",
			english: "Hello World",
			arabic:  "مرحبا بالعالم",
		},
		{
			name:    "Heuristic with blank lines and only english",
			text:    "\n\nJust a Title\n",
			english: "Just a Title",
			arabic:  "",
		},
		{
			name:    "Empty input",
			text:    "",
			english: "",
			arabic:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			english, arabic := parseTitlePair(tt.text)
			assert.Equal(t, tt.english, english)
			assert.Equal(t, tt.arabic, strings.TrimSpace(arabic))
		})
	}
}
