package qrservice

import (
	"go.uber.org/zap"
)

// Renderer is the external QR image collaborator.
type Renderer interface {
	Render(target string, size int) ([]byte, error)
}

const (
	defaultSize = 300
	minSize     = 100
	maxSize     = 1000
)

type Service struct {
	renderer Renderer
}

func New(renderer Renderer) *Service {
	return &Service{renderer: renderer}
}

// Encode returns a QR code PNG for the target URL. Zero size picks
// the default; out-of-range sizes are clamped.
func (s *Service) Encode(target string, size int) ([]byte, error) {
	if size == 0 {
		size = defaultSize
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}
	return s.renderer.Render(target, size)
}

// EncodeWithLogo composites the brand mark over the code's center.
// Compositing failures degrade to the plain code, never to an error:
// a scannable code matters more than the mark.
func (s *Service) EncodeWithLogo(target string, size int) ([]byte, error) {
	plain, err := s.Encode(target, size)
	if err != nil {
		return nil, err
	}

	composited, err := overlayLogo(plain)
	if err != nil {
		zap.L().Warn("logo compositing failed, serving plain code", zap.Error(err))
		return plain, nil
	}
	return composited, nil
}
