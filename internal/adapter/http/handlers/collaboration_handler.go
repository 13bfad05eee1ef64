package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "torchline_portal/internal/adapter/http/dto/request"
	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/usecase"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTrackingPayload = pkg.NewDomainErrorSimple("INVALID_TRACKING_INPUT", "trackingNumber, location and status are required", http.StatusBadRequest)
	errInvalidMessagePayload  = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "receiverId and content are required", http.StatusBadRequest)
	errInvalidFilePayload     = pkg.NewDomainErrorSimple("INVALID_FILE_INPUT", "A file and a category are required", http.StatusBadRequest)
)

// CollaborationHandler covers tracking updates, messages and document uploads.
type CollaborationHandler struct {
	usecase usecase.ICollaborationUseCase
}

func NewCollaborationHandler(uc usecase.ICollaborationUseCase) *CollaborationHandler {
	return &CollaborationHandler{usecase: uc}
}

// UpdateTracking godoc
// @Summary      Append a shipment tracking update
// @Tags         collaboration
// @Accept       json
// @Produce      json
// @Param        body  body      request.TrackingRequest  true  "Tracking update"
// @Success      201   {object}  entities.ShipmentTracking
// @Failure      400   {object}  pkg.HTTPError
// @Router       /tracking [post]
func (h *CollaborationHandler) UpdateTracking(c *gin.Context) {
	var payload request.TrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}

	tracking, err := h.usecase.UpdateShipmentTracking(c.Request.Context(), actor(c), payload.ToInput())
	if err != nil {
		appErr := mapCollaborationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, tracking)
}

// SendMessage godoc
// @Summary      Send a direct message
// @Tags         collaboration
// @Accept       json
// @Produce      json
// @Param        body  body      request.MessageRequest  true  "Message"
// @Success      201   {object}  entities.Message
// @Failure      400   {object}  pkg.HTTPError
// @Router       /messages [post]
func (h *CollaborationHandler) SendMessage(c *gin.Context) {
	var payload request.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	user, _ := middleware.CurrentUser(c)
	msg, err := h.usecase.SendMessage(c.Request.Context(), payload.ToInput(user.Email, user.Name))
	if err != nil {
		appErr := mapCollaborationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// UploadFile godoc
// @Summary      Upload a document
// @Tags         collaboration
// @Accept       mpfd
// @Produce      json
// @Param        file           formData  file    true   "PDF or image, at most 10MB"
// @Param        category       formData  string  true   "Document category"
// @Param        expiresInDays  formData  int     false  "Expiry in days"
// @Success      201  {object}  entities.FileMetadata
// @Failure      400  {object}  pkg.HTTPError
// @Router       /files [post]
func (h *CollaborationHandler) UploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidFilePayload.HTTPStatus, errInvalidFilePayload.ToHTTPError())
		return
	}
	expires := 0
	if raw := strings.TrimSpace(c.PostForm("expiresInDays")); raw != "" {
		if expires, err = strconv.Atoi(raw); err != nil {
			c.JSON(errInvalidFilePayload.HTTPStatus, errInvalidFilePayload.ToHTTPError())
			return
		}
	}
	upload, err := readUpload(fh)
	if err != nil {
		log.Printf("[file][handler] read failed name=%s err=%v", fh.Filename, err)
		c.JSON(errInvalidFilePayload.HTTPStatus, errInvalidFilePayload.ToHTTPError())
		return
	}

	meta, err := h.usecase.UploadFile(c.Request.Context(), usecase.FileInput{
		Upload:        upload,
		Category:      c.PostForm("category"),
		UploadedBy:    actor(c),
		ExpiresInDays: expires,
	})
	if err != nil {
		appErr := mapCollaborationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, meta)
}

func mapCollaborationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackingInput),
		errors.Is(err, usecase.ErrInvalidMessageInput),
		errors.Is(err, usecase.ErrInvalidFileInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge), errors.Is(err, usecase.ErrFileTypeNotAllowed), errors.Is(err, usecase.ErrEmptyFile):
		return pkg.NewDomainErrorSimple("INVALID_FILE", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
