package handlers

import (
	"net/http"

	response "torchline_portal/internal/adapter/http/dto/response"
	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/usecase"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

type PortalHandler struct {
	usecase usecase.IPortalUseCase
}

func NewPortalHandler(uc usecase.IPortalUseCase) *PortalHandler {
	return &PortalHandler{usecase: uc}
}

// CustomerDashboard godoc
// @Summary      Customer portal: own shipments and quotes
// @Tags         portal
// @Produce      json
// @Success      200  {object}  response.CustomerDashboardResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /portal/customer [get]
func (h *PortalHandler) CustomerDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	d, err := h.usecase.CustomerDashboard(c.Request.Context(), user)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDashboard(d))
}

// VendorDashboard godoc
// @Summary      Vendor portal: own orders
// @Tags         portal
// @Produce      json
// @Success      200  {object}  response.VendorDashboardResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /portal/vendor [get]
func (h *PortalHandler) VendorDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	d, err := h.usecase.VendorDashboard(c.Request.Context(), user)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVendorDashboard(d))
}
