package handlers

import (
	"net/http"

	"homeserve_backend/internal/services"
	"homeserve_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)

	providers := rg.Group("/providers")
	{
		providers.GET("", h.ListProviders)
		providers.GET("/:id", h.GetProvider)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CatalogHandler) ListProviders(c *gin.Context) {
	var filter dto.ProviderFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	providers, err := h.catalogService.ListProviders(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if len(providers) == 0 {
		h.Success(c, http.StatusOK, "No providers found", providers)
		return
	}
	h.Success(c, http.StatusOK, "Providers retrieved successfully", providers)
}

func (h *CatalogHandler) GetProvider(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	provider, err := h.catalogService.GetProvider(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Provider retrieved successfully", provider)
}
