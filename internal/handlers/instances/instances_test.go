package instances

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/pkg/auth"
)

func NewMock(t *testing.T) (*InstancesHandler, *MockCatalogService, *MockQRService) {
	ctrl := gomock.NewController(t)
	catalog := NewMockCatalogService(ctrl)
	qr := NewMockQRService(ctrl)
	handler := New(catalog, qr)
	defer ctrl.Finish()
	return handler, catalog, qr
}

func newAuthRequest(method, target, instanceID string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), auth.ClientIDKey, 1)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("instanceID", instanceID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestDeleteHandler(t *testing.T) {
	tests := []struct {
		name         string
		instanceID   string
		prepareMock  func(catalog *MockCatalogService)
		expectedCode int
	}{
		{
			name:       "Successful deletion",
			instanceID: "7",
			prepareMock: func(catalog *MockCatalogService) {
				catalog.EXPECT().Delete(gomock.Any(), 1, 7).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid instance id",
			instanceID:   "abc",
			prepareMock:  func(catalog *MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Instance not found",
			instanceID: "404",
			prepareMock: func(catalog *MockCatalogService) {
				catalog.EXPECT().Delete(gomock.Any(), 1, 404).Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "Internal server error",
			instanceID: "7",
			prepareMock: func(catalog *MockCatalogService) {
				catalog.EXPECT().Delete(gomock.Any(), 1, 7).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, catalog, _ := NewMock(t)
			tt.prepareMock(catalog)

			r := newAuthRequest(http.MethodDelete, "/api/instances/"+tt.instanceID, tt.instanceID)
			w := httptest.NewRecorder()
			handler.Delete(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetQRHandler(t *testing.T) {
	published := &domain.ToolInstance{ID: 7, ClientID: 1, SiteURL: "https://pagemint.app/alice/image-to-site/abc12345"}

	t.Run("Plain code", func(t *testing.T) {
		handler, catalog, qr := NewMock(t)
		catalog.EXPECT().Get(gomock.Any(), 1, 7).Return(published, nil)
		qr.EXPECT().Encode(published.SiteURL, 250).Return([]byte("png-bytes"), nil)

		r := newAuthRequest(http.MethodGet, "/api/instances/7/qr?size=250", "7")
		w := httptest.NewRecorder()
		handler.GetQR(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("Branded composite", func(t *testing.T) {
		handler, catalog, qr := NewMock(t)
		catalog.EXPECT().Get(gomock.Any(), 1, 7).Return(published, nil)
		qr.EXPECT().EncodeWithLogo(published.SiteURL, 0).Return([]byte("png-bytes"), nil)

		r := newAuthRequest(http.MethodGet, "/api/instances/7/qr?logo=1", "7")
		w := httptest.NewRecorder()
		handler.GetQR(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unpublished instance", func(t *testing.T) {
		handler, catalog, _ := NewMock(t)
		catalog.EXPECT().Get(gomock.Any(), 1, 7).Return(&domain.ToolInstance{ID: 7, ClientID: 1}, nil)

		r := newAuthRequest(http.MethodGet, "/api/instances/7/qr", "7")
		w := httptest.NewRecorder()
		handler.GetQR(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Instance not found", func(t *testing.T) {
		handler, catalog, _ := NewMock(t)
		catalog.EXPECT().Get(gomock.Any(), 1, 404).Return(nil, domain.ErrNotFound)

		r := newAuthRequest(http.MethodGet, "/api/instances/404/qr", "404")
		w := httptest.NewRecorder()
		handler.GetQR(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Renderer failure", func(t *testing.T) {
		handler, catalog, qr := NewMock(t)
		catalog.EXPECT().Get(gomock.Any(), 1, 7).Return(published, nil)
		qr.EXPECT().Encode(published.SiteURL, 0).Return(nil, errors.New("unreachable"))

		r := newAuthRequest(http.MethodGet, "/api/instances/7/qr", "7")
		w := httptest.NewRecorder()
		handler.GetQR(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
