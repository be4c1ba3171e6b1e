package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/models"
	"github.com/noah-isme/course-planner-api/internal/service"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

type chainCatalog interface {
	ListRows(ctx context.Context) ([]models.ChainRow, error)
}

// CatalogHandler exposes read-only views of the prerequisite chain catalog.
type CatalogHandler struct {
	chains chainCatalog
}

// NewCatalogHandler constructs the catalog handler.
func NewCatalogHandler(chains chainCatalog) *CatalogHandler {
	return &CatalogHandler{chains: chains}
}

// ChainView is one cleaned prerequisite chain.
type ChainView struct {
	ChainID string              `json:"chain_id"`
	Links   []service.ChainLink `json:"links"`
}

// Chains godoc
// @Summary List prerequisite chains
// @Description Cleaned and ordered prerequisite chains from the catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /catalog/chains [get]
func (h *CatalogHandler) Chains(c *gin.Context) {
	index, err := h.buildIndex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	views := make([]ChainView, 0)
	for _, chainID := range index.ChainIDs() {
		views = append(views, ChainView{ChainID: chainID, Links: index.Chain(chainID)})
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// Chain godoc
// @Summary One prerequisite chain
// @Tags Catalog
// @Produce json
// @Param id path string true "Chain ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/chains/{id} [get]
func (h *CatalogHandler) Chain(c *gin.Context) {
	index, err := h.buildIndex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	chainID := c.Param("id")
	links := index.Chain(chainID)
	if links == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "chain not found"))
		return
	}
	response.JSON(c, http.StatusOK, ChainView{ChainID: chainID, Links: links}, nil)
}

func (h *CatalogHandler) buildIndex(ctx context.Context) (*service.ChainIndex, error) {
	rows, err := h.chains.ListRows(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "failed to load prerequisite chains")
	}
	return service.BuildChainIndex(rows), nil
}
