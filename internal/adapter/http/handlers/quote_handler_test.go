package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"torchline_portal/internal/adapter/http/handlers/mocks"
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotes", h.SubmitQuote)
	staff := r.Group("/v1/quotes", withUser(employee))
	staff.GET("", h.ListQuotes)
	staff.GET("/:id", h.GetQuote)
	staff.GET("/:id/price", h.PriceQuote)
	staff.POST("/:id/approve", h.ApproveQuote)
	staff.POST("/:id/reject", h.RejectQuote)
	return r
}

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuoteRouter(NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		quotes.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidQuoteInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"name":"Jane"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("json success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		quotes.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.QuoteSubmission) (entities.Quote, error) {
			if in.Service != entities.ServiceTypeOcean || in.ServiceDetails == nil || *in.ServiceDetails.Weight != 1500 {
				t.Errorf("unexpected submission %+v", in)
			}
			return entities.Quote{ID: "doc-1", Name: in.Name, Status: entities.QuoteStatusPending, Version: 1}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"name":"Jane","email":"jane@example.com","service":"ocean","message":"hi","serviceDetails":{"weight":1500}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "doc-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("multipart with attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("name", "Jane")
		_ = mw.WriteField("email", "jane@example.com")
		_ = mw.WriteField("service", "air")
		_ = mw.WriteField("message", "urgent")
		_ = mw.WriteField("serviceDetails", `{"timeline":"ASAP"}`)
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="attachments"; filename="bol.pdf"`)
		hdr.Set("Content-Type", "application/pdf")
		part, _ := mw.CreatePart(hdr)
		_, _ = part.Write([]byte("%PDF-1.4"))
		_ = mw.Close()

		quotes.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.QuoteSubmission) (entities.Quote, error) {
			if in.Name != "Jane" || in.Service != entities.ServiceTypeAir {
				t.Errorf("unexpected fields %+v", in)
			}
			if in.ServiceDetails == nil || in.ServiceDetails.Timeline != "ASAP" {
				t.Errorf("expected service details from form, got %+v", in.ServiceDetails)
			}
			if len(in.Attachments) != 1 || in.Attachments[0].FileType != "application/pdf" || string(in.Attachments[0].Content) != "%PDF-1.4" {
				t.Errorf("unexpected attachments %+v", in.Attachments)
			}
			return entities.Quote{ID: "doc-2"}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuoteRouter(NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes?limit=-1", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list passes session owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		quotes.EXPECT().ListQuotes(gomock.Any(), employee.Email, 20, 40).Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes?limit=20&skip=40", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Quotes []map[string]any `json:"quotes"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Quotes) != 2 || body.Quotes[1]["id"] != "q-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		quotes.EXPECT().GetQuote(gomock.Any(), employee.Email, "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		quotes.EXPECT().PriceQuote(gomock.Any(), employee.Email, "q-1").Return(entities.PriceCalculation{BasePrice: 1500, TotalPrice: 1700, Currency: "USD"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/price", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["totalPrice"] != float64(1700) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Decisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve with supplied price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		approvals := mocks.NewMockIQuoteApprovalUseCase(ctrl)
		rec := &decisionRecorder{}
		r := newQuoteRouter(NewQuoteHandler(quotes, approvals, rec))

		approvals.EXPECT().Approve(gomock.Any(), "q-1", employee.Email, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ string, calc *entities.PriceCalculation) (entities.QuoteDecision, error) {
				if calc == nil || calc.TotalPrice != 800 {
					t.Errorf("expected supplied calculation, got %+v", calc)
				}
				return entities.QuoteDecision{Approval: entities.QuoteApproval{Status: entities.QuoteStatusApproved}, QuoteUpdated: true, NotificationSent: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", bytes.NewBufferString(`{"priceCalculation":{"basePrice":500,"totalPrice":800,"currency":"USD"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(rec.statuses) != 1 || rec.statuses[0] != entities.QuoteStatusApproved {
			t.Fatalf("expected one approved observation, got %v", rec.statuses)
		}
	})

	t.Run("approve prices the quote when body is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		approvals := mocks.NewMockIQuoteApprovalUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, approvals, nil))

		calc := entities.PriceCalculation{BasePrice: 300, TotalPrice: 300, Currency: "USD"}
		gomock.InOrder(
			quotes.EXPECT().PriceQuote(gomock.Any(), employee.Email, "q-1").Return(calc, nil),
			approvals.EXPECT().Approve(gomock.Any(), "q-1", employee.Email, &calc).Return(entities.QuoteDecision{}, nil),
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve reads chunked body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		approvals := mocks.NewMockIQuoteApprovalUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, approvals, nil))

		approvals.EXPECT().Approve(gomock.Any(), "q-1", employee.Email, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ string, calc *entities.PriceCalculation) (entities.QuoteDecision, error) {
				if calc == nil || calc.TotalPrice != 950 {
					t.Errorf("expected supplied calculation, got %+v", calc)
				}
				return entities.QuoteDecision{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", bytes.NewBufferString(`{"priceCalculation":{"basePrice":700,"totalPrice":950,"currency":"USD"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve rejects malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newQuoteRouter(NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", bytes.NewBufferString(`{"priceCalculation":`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(quotes, mocks.NewMockIQuoteApprovalUseCase(ctrl), nil))

		quotes.EXPECT().PriceQuote(gomock.Any(), gomock.Any(), "nope").Return(entities.PriceCalculation{}, usecase.ErrQuoteNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/quotes/nope/approve", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reject blank reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mocks.NewMockIQuoteApprovalUseCase(ctrl)
		rec := &decisionRecorder{}
		r := newQuoteRouter(NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), approvals, rec))

		approvals.EXPECT().Reject(gomock.Any(), "q-1", employee.Email, "  ").Return(entities.QuoteDecision{}, usecase.ErrRejectionReasonRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{"reason":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(rec.statuses) != 0 {
			t.Fatalf("expected no observation, got %v", rec.statuses)
		}
	})

	t.Run("reject store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mocks.NewMockIQuoteApprovalUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), approvals, nil))

		approvals.EXPECT().Reject(gomock.Any(), "q-1", gomock.Any(), "too far").Return(entities.QuoteDecision{}, errors.New("store down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{"reason":"too far"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("reject partial decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approvals := mocks.NewMockIQuoteApprovalUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), approvals, nil))

		approvals.EXPECT().Reject(gomock.Any(), "q-1", gomock.Any(), "too far").Return(entities.QuoteDecision{
			Approval:     entities.QuoteApproval{ID: "approval_1", Status: entities.QuoteStatusRejected},
			QuoteUpdated: false,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{"reason":"too far"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quoteUpdated"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing document maps to 404", func(t *testing.T) {
		if got := mapQuoteError(interfaces.ErrDocumentNotFound); got.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", got.HTTPStatus)
		}
	})
}
