package qrservice

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRenderer) {
	ctrl := gomock.NewController(t)
	renderer := NewMockRenderer(ctrl)
	service := New(renderer)
	defer ctrl.Finish()
	return service, renderer
}

// fakeQR builds a black-and-white checkerboard PNG standing in for a
// rendered code.
func fakeQR(t *testing.T, size int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/10+y/10)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestService_Encode(t *testing.T) {
	tests := []struct {
		name          string
		requested     int
		expectedSize  int
		renderErr     error
		expectedError bool
	}{
		{name: "Requested size passed through", requested: 250, expectedSize: 250},
		{name: "Zero size picks default", requested: 0, expectedSize: 300},
		{name: "Undersized request clamped", requested: 10, expectedSize: 100},
		{name: "Oversized request clamped", requested: 5000, expectedSize: 1000},
		{name: "Renderer failure propagates", requested: 300, expectedSize: 300, renderErr: errors.New("unreachable"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, renderer := NewMock(t)
			renderer.EXPECT().Render("https://pagemint.app/alice/image-to-site/abc12345", tt.expectedSize).
				Return([]byte("png-bytes"), tt.renderErr)

			data, err := service.Encode("https://pagemint.app/alice/image-to-site/abc12345", tt.requested)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, []byte("png-bytes"), data)
		})
	}
}

func TestService_EncodeWithLogo(t *testing.T) {
	t.Run("Mark composited over the center", func(t *testing.T) {
		service, renderer := NewMock(t)
		renderer.EXPECT().Render(gomock.Any(), 300).Return(fakeQR(t, 300), nil)

		data, err := service.EncodeWithLogo("https://pagemint.app/x/y/z", 300)

		assert.NoError(t, err)
		img, decodeErr := png.Decode(bytes.NewReader(data))
		require.NoError(t, decodeErr)

		// Center carries the mint mark, corners keep the code.
		cr, cg, _, _ := img.At(150, 150).RGBA()
		assert.NotEqual(t, cr, cg)
		r, g, b, _ := img.At(5, 5).RGBA()
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
	})

	t.Run("Undecodable payload falls back to the plain code", func(t *testing.T) {
		service, renderer := NewMock(t)
		renderer.EXPECT().Render(gomock.Any(), 300).Return([]byte("not a png"), nil)

		data, err := service.EncodeWithLogo("https://pagemint.app/x/y/z", 300)

		assert.NoError(t, err)
		assert.Equal(t, []byte("not a png"), data)
	})

	t.Run("Renderer failure propagates", func(t *testing.T) {
		service, renderer := NewMock(t)
		renderer.EXPECT().Render(gomock.Any(), 300).Return(nil, errors.New("unreachable"))

		_, err := service.EncodeWithLogo("https://pagemint.app/x/y/z", 300)

		assert.Error(t, err)
	})
}
