package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
)

const defaultQuotePageSize = 50

// QuoteSubmission is the Contact form payload.
type QuoteSubmission struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	Service        entities.ServiceType
	Message        string
	ServiceDetails *entities.ServiceDetails
	Attachments    []FileUpload
}

// IQuoteUseCase exposes quote request operations:
//   - Contact form submission => SubmitQuote()
//   - Employee quote list/detail => ListQuotes(), GetQuote()
//   - Price shown before a decision => PriceQuote()
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, in QuoteSubmission) (entities.Quote, error)
	ListQuotes(ctx context.Context, owner string, limit, skip int) ([]entities.Quote, error)
	GetQuote(ctx context.Context, owner, id string) (entities.Quote, error)
	PriceQuote(ctx context.Context, owner, id string) (entities.PriceCalculation, error)
}

type QuoteUseCase struct {
	store        interfaces.IDocumentStore
	serviceOwner string
	now          func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase builds the use case. serviceOwner is the email recorded as
// owner of anonymous Contact form submissions.
func NewQuoteUseCase(store interfaces.IDocumentStore, serviceOwner string) *QuoteUseCase {
	if strings.TrimSpace(serviceOwner) == "" {
		serviceOwner = DefaultActor
	}
	return &QuoteUseCase{store: store, serviceOwner: serviceOwner, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, in QuoteSubmission) (entities.Quote, error) {
	if err := validateSubmission(in); err != nil {
		log.Printf("[quote][usecase] submit rejected err=%v", err)
		return entities.Quote{}, err
	}

	now := u.now()
	attachments := make([]entities.FileAttachment, 0, len(in.Attachments))
	for _, f := range in.Attachments {
		if len(f.Content) == 0 {
			return entities.Quote{}, fmt.Errorf("%w: %s", ErrEmptyFile, f.FileName)
		}
		if err := ValidateFile(f.FileType, int64(len(f.Content))); err != nil {
			return entities.Quote{}, err
		}
		attachments = append(attachments, entities.FileAttachment{
			FileName:   f.FileName,
			FileType:   f.FileType,
			FileSize:   int64(len(f.Content)),
			FileURL:    EncodeDataURL(f.FileType, f.Content),
			UploadedAt: now,
		})
	}

	q := entities.Quote{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Company:        strings.TrimSpace(in.Company),
		Service:        entities.ServiceType(strings.TrimSpace(string(in.Service))),
		Message:        strings.TrimSpace(in.Message),
		ServiceDetails: in.ServiceDetails,
		Status:         entities.QuoteStatusPending,
		SubmittedAt:    now.Format(time.RFC3339Nano),
	}
	if len(attachments) > 0 {
		q.Attachments = attachments
	}

	log.Printf("[quote][usecase] submit start email=%s service=%s attachments=%d", q.Email, q.Service, len(attachments))
	doc, err := u.store.Create(ctx, u.serviceOwner, CollectionQuoteRequests, q, []string{"quote", string(entities.QuoteStatusPending), string(q.Service)})
	if err != nil {
		log.Printf("[quote][usecase] submit failed email=%s err=%v", q.Email, err)
		return entities.Quote{}, err
	}
	q.ID = doc.ID
	q.Version = doc.Metadata.Version
	log.Printf("[quote][usecase] submit success quote_id=%s", q.ID)
	return q, nil
}

func validateSubmission(in QuoteSubmission) error {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"service", string(in.Service)},
		{"message", in.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidQuoteInput, r.field)
		}
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidQuoteInput)
	}
	return nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, owner string, limit, skip int) ([]entities.Quote, error) {
	if limit <= 0 {
		limit = defaultQuotePageSize
	}
	if skip < 0 {
		skip = 0
	}
	docs, err := u.store.Read(ctx, owner, entities.ReadQuery{Collection: CollectionQuoteRequests, Limit: limit, Skip: skip})
	if err != nil {
		return nil, err
	}
	quotes := make([]entities.Quote, 0, len(docs))
	for _, d := range docs {
		q, err := toQuote(d)
		if err != nil {
			log.Printf("[quote][usecase] skipping undecodable quote doc_id=%s err=%v", d.ID, err)
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, owner, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	docs, err := u.store.Read(ctx, owner, entities.ReadQuery{Collection: CollectionQuoteRequests, ID: id, Limit: 1})
	if err != nil {
		return entities.Quote{}, err
	}
	for _, d := range docs {
		if d.ID == id {
			return toQuote(d)
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) PriceQuote(ctx context.Context, owner, id string) (entities.PriceCalculation, error) {
	q, err := u.GetQuote(ctx, owner, id)
	if err != nil {
		return entities.PriceCalculation{}, err
	}
	var details entities.ServiceDetails
	if q.ServiceDetails != nil {
		details = *q.ServiceDetails
	}
	return calculatePriceAt(q.Service, details, u.now()), nil
}
