package instances

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/pkg/auth"
	"github.com/pagemint/pagemint/pkg/utils"
)

type CatalogService interface {
	Get(ctx context.Context, clientID, instanceID int) (*domain.ToolInstance, error)
	Delete(ctx context.Context, clientID, instanceID int) error
}

type QRService interface {
	Encode(target string, size int) ([]byte, error)
	EncodeWithLogo(target string, size int) ([]byte, error)
}

type InstancesHandler struct {
	catalogService CatalogService
	qrService      QRService
}

func New(catalogService CatalogService, qrService QRService) *InstancesHandler {
	return &InstancesHandler{
		catalogService: catalogService,
		qrService:      qrService,
	}
}

// Delete godoc
//
//	@Summary		Delete a tool instance
//	@Description	Remove the instance and issue best-effort deletion of its storage objects. The instance disappears from listings regardless of storage outcome.
//	@Tags			Instances
//	@Security		BearerAuth
//	@Param			instanceID	path	int	true	"Instance id"
//	@Success		204	{object}	utils.Response	"Instance deleted"
//	@Failure		400	{object}	utils.Response	"Invalid instance id"
//	@Failure		401	{object}	utils.Response	"Client not authorized"
//	@Failure		404	{object}	utils.Response	"Instance not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/instances/{instanceID} [delete]
func (h *InstancesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(auth.ClientIDKey).(int)

	instanceID, err := strconv.Atoi(chi.URLParam(r, "instanceID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid instance id")
		return
	}

	if err := h.catalogService.Delete(r.Context(), clientID, instanceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Instance not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetQR godoc
//
//	@Summary		QR code for a published instance
//	@Description	Render a QR code PNG pointing at the instance's public address. Pass logo=1 for the branded composite; any size between 100 and 1000 pixels.
//	@Tags			Instances
//	@Security		BearerAuth
//	@Produce		png
//	@Param			instanceID	path	int		true	"Instance id"
//	@Param			size		query	int		false	"Pixel size"
//	@Param			logo		query	string	false	"Set to 1 for the branded composite"
//	@Success		200	{file}		file			"QR code PNG"
//	@Failure		400	{object}	utils.Response	"Invalid id or unpublished instance"
//	@Failure		401	{object}	utils.Response	"Client not authorized"
//	@Failure		404	{object}	utils.Response	"Instance not found"
//	@Failure		502	{object}	utils.Response	"QR rendering failed"
//	@Router			/api/instances/{instanceID}/qr [get]
func (h *InstancesHandler) GetQR(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(auth.ClientIDKey).(int)

	instanceID, err := strconv.Atoi(chi.URLParam(r, "instanceID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid instance id")
		return
	}

	instance, err := h.catalogService.Get(r.Context(), clientID, instanceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Instance not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if instance.SiteURL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Instance not published yet")
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	var png []byte
	if r.URL.Query().Get("logo") == "1" {
		png, err = h.qrService.EncodeWithLogo(instance.SiteURL, size)
	} else {
		png, err = h.qrService.Encode(instance.SiteURL, size)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "QR rendering failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
