package handlers

import (
	"net/http"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public service list and the admin store views.
type CatalogHandler struct {
	store usecase.IStoreAdminUseCase
}

func NewCatalogHandler(store usecase.IStoreAdminUseCase) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListServices godoc
// @Summary      Service catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  entities.ServiceOffering
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, entities.ServiceCatalog)
}

// Collections godoc
// @Summary      Store collections with document counts
// @Tags         admin
// @Produce      json
// @Success      200  {array}   entities.CollectionInfo
// @Failure      502  {object}  pkg.HTTPError
// @Router       /admin/store/collections [get]
func (h *CatalogHandler) Collections(c *gin.Context) {
	cols, err := h.store.Collections(c.Request.Context(), actor(c))
	if err != nil {
		appErr := storeUnavailable(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cols)
}

// Stats godoc
// @Summary      Store statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  entities.StoreStats
// @Failure      502  {object}  pkg.HTTPError
// @Router       /admin/store/stats [get]
func (h *CatalogHandler) Stats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context(), actor(c))
	if err != nil {
		appErr := storeUnavailable(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func storeUnavailable(err error) *pkg.AppError {
	return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store request failed", err, http.StatusBadGateway)
}
