package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "torchline_portal/internal/adapter/http/dto/request"
	response "torchline_portal/internal/adapter/http/dto/response"
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
	"torchline_portal/internal/usecase/interfaces"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidPagination   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit and skip must be non-negative integers", http.StatusBadRequest)
)

// DecisionObserver is notified of every recorded approve/reject decision.
type DecisionObserver interface {
	ObserveDecision(status entities.QuoteStatus)
}

// QuoteHandler serves the Contact form and the employee quote workflow.
type QuoteHandler struct {
	quotes    usecase.IQuoteUseCase
	approvals usecase.IQuoteApprovalUseCase
	observer  DecisionObserver
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, approvals usecase.IQuoteApprovalUseCase, observer DecisionObserver) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, approvals: approvals, observer: observer}
}

// SubmitQuote godoc
// @Summary      Submit a quote request
// @Description  Accepts JSON, or multipart/form-data with "attachments" files and a JSON "serviceDetails" field.
// @Tags         quotes
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "Quote request"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	var files []usecase.FileUpload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if raw := strings.TrimSpace(c.PostForm("serviceDetails")); raw != "" {
			var details entities.ServiceDetails
			if err := json.Unmarshal([]byte(raw), &details); err != nil {
				c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
				return
			}
			payload.ServiceDetails = &details
		}
		for _, fh := range form.File["attachments"] {
			f, err := readUpload(fh)
			if err != nil {
				log.Printf("[quote][handler] attachment read failed name=%s err=%v", fh.Filename, err)
				c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
				return
			}
			files = append(files, f)
		}
	}

	quote, err := h.quotes.SubmitQuote(c.Request.Context(), payload.ToSubmission(files))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary      List quote requests
// @Tags         quotes
// @Produce      json
// @Param        limit  query     int  false  "Page size (default 50)"
// @Param        skip   query     int  false  "Offset"
// @Success      200    {object}  response.QuoteListResponse
// @Failure      401    {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	limit, okLimit := queryInt(c, "limit", 0)
	skip, okSkip := queryInt(c, "skip", 0)
	if !okLimit || !okSkip {
		c.JSON(errInvalidPagination.HTTPStatus, errInvalidPagination.ToHTTPError())
		return
	}

	quotes, err := h.quotes.ListQuotes(c.Request.Context(), actor(c), limit, skip)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteListResponse{Quotes: response.FromQuotes(quotes), Limit: limit, Skip: skip})
}

// GetQuote godoc
// @Summary      Get a quote request
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.quotes.GetQuote(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// PriceQuote godoc
// @Summary      Price a quote request
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote id"
// @Success      200  {object}  entities.PriceCalculation
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/price [get]
func (h *QuoteHandler) PriceQuote(c *gin.Context) {
	calc, err := h.quotes.PriceQuote(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, calc)
}

// ApproveQuote records an approval. Without a priceCalculation in the body
// the quote is priced first.
// @Summary      Approve a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true   "Quote id"
// @Param        body  body      request.ApproveQuoteRequest   false  "Price shown to the employee"
// @Success      200   {object}  entities.QuoteDecision
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [post]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	quoteID := c.Param("id")
	var payload request.ApproveQuoteRequest
	// an empty body is allowed; the quote is priced below
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	calc := payload.PriceCalculation
	if calc == nil {
		priced, err := h.quotes.PriceQuote(c.Request.Context(), actor(c), quoteID)
		if err != nil {
			appErr := mapQuoteError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		calc = &priced
	}

	decision, err := h.approvals.Approve(c.Request.Context(), quoteID, actor(c), calc)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.observe(decision)
	c.JSON(http.StatusOK, decision)
}

// RejectQuote godoc
// @Summary      Reject a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Quote id"
// @Param        body  body      request.RejectQuoteRequest  true  "Rejection reason"
// @Success      200   {object}  entities.QuoteDecision
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/{id}/reject [post]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	decision, err := h.approvals.Reject(c.Request.Context(), c.Param("id"), actor(c), payload.Reason)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.observe(decision)
	c.JSON(http.StatusOK, decision)
}

func (h *QuoteHandler) observe(d entities.QuoteDecision) {
	if h.observer != nil {
		h.observer.ObserveDecision(d.Approval.Status)
	}
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge), errors.Is(err, usecase.ErrFileTypeNotAllowed), errors.Is(err, usecase.ErrEmptyFile):
		return pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceCalculationRequired):
		return pkg.NewDomainErrorSimple("PRICE_CALCULATION_REQUIRED", "Price calculation is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRejectionReasonRequired):
		return pkg.NewDomainErrorSimple("REJECTION_REASON_REQUIRED", "Rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, interfaces.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
