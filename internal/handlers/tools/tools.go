package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/dto"
	"github.com/pagemint/pagemint/internal/service/generationservice"
	"github.com/pagemint/pagemint/internal/service/provisionservice"
	"github.com/pagemint/pagemint/internal/service/publishservice"
	"github.com/pagemint/pagemint/pkg/auth"
	"github.com/pagemint/pagemint/pkg/ident"
	"github.com/pagemint/pagemint/pkg/utils"
)

const maxUploadBytes = 32 << 20

type ProvisionService interface {
	GetTool(ctx context.Context, toolID string) (*domain.Tool, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
	Purchase(ctx context.Context, clientID int, toolID, title, sourceRefURL, idempotencyKey string) (*domain.ToolInstance, error)
}

type GenerationService interface {
	GenerateFromImages(title string, images []domain.ImageAsset) (*domain.Content, error)
	GenerateArticle(ctx context.Context, params generationservice.ArticleParams) (*domain.Content, error)
}

type PublishService interface {
	Publish(ctx context.Context, instance *domain.ToolInstance, content *domain.Content) (string, error)
}

type CatalogService interface {
	List(ctx context.Context, clientID int, toolID string) ([]domain.ToolInstance, error)
}

type ToolsHandler struct {
	provisionService  ProvisionService
	generationService GenerationService
	publishService    PublishService
	catalogService    CatalogService
}

func New(provisionService ProvisionService, generationService GenerationService, publishService PublishService, catalogService CatalogService) *ToolsHandler {
	return &ToolsHandler{
		provisionService:  provisionService,
		generationService: generationService,
		publishService:    publishService,
		catalogService:    catalogService,
	}
}

// GetTools godoc
//
//	@Summary		List active tools
//	@Description	List the tools currently available for purchase.
//	@Tags			Tools
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetToolsResponseDTO	"Active tools"
//	@Success		204	{object}	utils.Response			"No active tools"
//	@Failure		401	{object}	utils.Response			"Client not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/tools [get]
func (h *ToolsHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	toolList, err := h.provisionService.ListTools(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tools")
		return
	}
	if len(toolList) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.GetToolsResponseDTO, 0, len(toolList))
	for _, tool := range toolList {
		resp = append(resp, dto.GetToolsResponseDTO{
			ToolID:      tool.ToolID,
			DisplayName: tool.DisplayName,
			UnitPrice:   tool.UnitPrice,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Generate godoc
//
//	@Summary		Generate an article
//	@Description	Run the text pipeline for the given tool: English draft, Arabic translation, bilingual title. Translation and title failures degrade to empty fields.
//	@Tags			Tools
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			toolID	path		string						true	"Tool key"
//	@Param			request	body		dto.GenerateArticleRequestDTO	true	"Generation parameters"
//	@Success		200		{object}	dto.GenerateArticleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or missing source"
//	@Failure		401		{object}	utils.Response	"Client not authorized"
//	@Failure		404		{object}	utils.Response	"Tool unavailable"
//	@Failure		502		{object}	utils.Response	"Draft generation failed"
//	@Router			/api/tools/{toolID}/generate [post]
func (h *ToolsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	toolID := chi.URLParam(r, "toolID")

	if _, err := h.provisionService.GetTool(r.Context(), toolID); err != nil {
		if errors.Is(err, provisionservice.ErrToolUnavailable) {
			utils.RespondWithError(w, http.StatusNotFound, "Tool unavailable")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req dto.GenerateArticleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content, err := h.generationService.GenerateArticle(r.Context(), generationservice.ArticleParams{
		SourceText: req.SourceText,
		SourceURL:  req.SourceURL,
		Style:      req.Style,
		Tone:       req.Tone,
		Paragraphs: req.Paragraphs,
	})
	if err != nil {
		switch {
		case errors.Is(err, generationservice.ErrNoSource):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, generationservice.ErrDraftGeneration):
			utils.RespondWithError(w, http.StatusBadGateway, "Article generation failed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.GenerateArticleResponseDTO{
		Title:           content.Title,
		TitleTranslated: content.TitleTranslated,
		BodyEN:          content.BodyEN,
		BodyAR:          content.BodyAR,
	})
}

// Publish godoc
//
//	@Summary		Purchase and publish a tool instance
//	@Description	Debit the wallet, allocate a usage id and push the content live. Accepts multipart uploads (image tools) or an article JSON body (text tools). An Idempotency-Key header makes a replayed request resolve to the originally allocated instance.
//	@Tags			Tools
//	@Security		BearerAuth
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			toolID			path		string	true	"Tool key"
//	@Param			Idempotency-Key	header		string	false	"Client-chosen request key"
//	@Success		200				{object}	dto.PublishResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid content"
//	@Failure		401				{object}	utils.Response	"Client not authorized"
//	@Failure		402				{object}	utils.Response	"Insufficient funds"
//	@Failure		404				{object}	utils.Response	"Tool unavailable"
//	@Failure		409				{object}	utils.Response	"Allocation exhausted"
//	@Failure		502				{object}	utils.Response	"Upload stage failed"
//	@Router			/api/tools/{toolID}/publish [post]
func (h *ToolsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(auth.ClientIDKey).(int)
	toolID := chi.URLParam(r, "toolID")

	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey == "" {
		idempotencyKey = ident.NewIdempotencyKey()
	}

	content, sourceRefURL, ok := h.readContent(w, r)
	if !ok {
		return
	}

	instance, err := h.provisionService.Purchase(r.Context(), clientID, toolID, content.Title, sourceRefURL, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, provisionservice.ErrToolUnavailable):
			utils.RespondWithError(w, http.StatusNotFound, "Tool unavailable")
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient funds")
		case errors.Is(err, provisionservice.ErrAllocationExhausted):
			utils.RespondWithError(w, http.StatusConflict, "Could not allocate a unique address, try again")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	siteURL, err := h.publishService.Publish(r.Context(), instance, content)
	if err != nil {
		switch {
		case errors.Is(err, publishservice.ErrImageUpload):
			utils.RespondWithError(w, http.StatusBadGateway, "Image upload failed")
		case errors.Is(err, publishservice.ErrPageUpload):
			utils.RespondWithError(w, http.StatusBadGateway, "Page upload failed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PublishResponseDTO{
		InstanceID: instance.ID,
		UsageID:    instance.UsageID,
		SiteURL:    siteURL,
	})
}

// readContent decodes the request into publishable content: multipart
// form uploads for image tools, an article JSON body otherwise. On
// failure it writes the error response and reports !ok.
func (h *ToolsHandler) readContent(w http.ResponseWriter, r *http.Request) (*domain.Content, string, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
			return nil, "", false
		}

		var images []domain.ImageAsset
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Unreadable upload")
				return nil, "", false
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Unreadable upload")
				return nil, "", false
			}
			images = append(images, domain.ImageAsset{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}

		content, err := h.generationService.GenerateFromImages(r.FormValue("title"), images)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return nil, "", false
		}
		return content, "", true
	}

	var req dto.PublishArticleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, "", false
	}
	if req.BodyEN == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Article body required")
		return nil, "", false
	}
	return &domain.Content{
		Title:           req.Title,
		TitleTranslated: req.TitleTranslated,
		BodyEN:          req.BodyEN,
		BodyAR:          req.BodyAR,
	}, req.SourceURL, true
}

// GetInstances godoc
//
//	@Summary		List tool instances
//	@Description	List the client's instances of one tool, newest first, with friendly URLs.
//	@Tags			Tools
//	@Security		BearerAuth
//	@Produce		json
//	@Param			toolID	path		string	true	"Tool key"
//	@Success		200		{array}		dto.GetInstancesResponseDTO	"Instances"
//	@Success		204		{object}	utils.Response				"No instances"
//	@Failure		401		{object}	utils.Response				"Client not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tools/{toolID}/instances [get]
func (h *ToolsHandler) GetInstances(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(auth.ClientIDKey).(int)
	toolID := chi.URLParam(r, "toolID")

	instances, err := h.catalogService.List(r.Context(), clientID, toolID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch instances")
		return
	}
	if len(instances) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.GetInstancesResponseDTO, 0, len(instances))
	for _, instance := range instances {
		resp = append(resp, dto.GetInstancesResponseDTO{
			ID:        instance.ID,
			ToolID:    instance.ToolID,
			UsageID:   instance.UsageID,
			Title:     instance.Title,
			SiteURL:   instance.SiteURL,
			Status:    instance.Status,
			CreatedAt: instance.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
