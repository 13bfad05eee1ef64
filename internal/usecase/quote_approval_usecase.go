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

	"github.com/google/uuid"
)

var (
	ErrPriceCalculationRequired = errors.New("price calculation required")
	ErrRejectionReasonRequired  = errors.New("rejection reason required")
)

// IQuoteApprovalUseCase drives the pending -> approved|rejected decision.
//
// Each decision issues three independent store writes (approval record, quote
// status patch, notification). Only the first one decides success; later
// failures are reported on the returned QuoteDecision and are not rolled back.
type IQuoteApprovalUseCase interface {
	Approve(ctx context.Context, quoteID, actor string, calc *entities.PriceCalculation) (entities.QuoteDecision, error)
	Reject(ctx context.Context, quoteID, actor, reason string) (entities.QuoteDecision, error)
}

type QuoteApprovalUseCase struct {
	store interfaces.IDocumentStore
	now   func() time.Time
}

var _ IQuoteApprovalUseCase = (*QuoteApprovalUseCase)(nil)

func NewQuoteApprovalUseCase(store interfaces.IDocumentStore) *QuoteApprovalUseCase {
	return &QuoteApprovalUseCase{store: store, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteApprovalUseCase) Approve(ctx context.Context, quoteID, actor string, calc *entities.PriceCalculation) (entities.QuoteDecision, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteDecision{}, ErrInvalidQuoteID
	}
	if calc == nil {
		log.Printf("[approval][usecase] approve skipped quote_id=%s reason=no-price-calculation", quoteID)
		return entities.QuoteDecision{}, ErrPriceCalculationRequired
	}
	actor = resolveActor(actor)

	now := u.now()
	approval := entities.QuoteApproval{
		ID:                 newApprovalID(),
		QuoteID:            quoteID,
		Status:             entities.QuoteStatusApproved,
		ApprovedBy:         actor,
		ApprovedAt:         &now,
		Version:            1,
		PriceCalculation:   *calc,
		EmailNotifications: []entities.EmailNotification{},
	}
	patch := map[string]any{
		"status":     entities.QuoteStatusApproved,
		"approvedAt": now.Format(time.RFC3339Nano),
	}

	log.Printf("[approval][usecase] approve start quote_id=%s actor=%s total=%.2f", quoteID, actor, calc.TotalPrice)
	return u.decide(ctx, actor, approval, patch)
}

func (u *QuoteApprovalUseCase) Reject(ctx context.Context, quoteID, actor, reason string) (entities.QuoteDecision, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteDecision{}, ErrInvalidQuoteID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		log.Printf("[approval][usecase] reject skipped quote_id=%s reason=empty-rejection-reason", quoteID)
		return entities.QuoteDecision{}, ErrRejectionReasonRequired
	}
	actor = resolveActor(actor)

	now := u.now()
	approval := entities.QuoteApproval{
		ID:                 newApprovalID(),
		QuoteID:            quoteID,
		Status:             entities.QuoteStatusRejected,
		RejectedBy:         actor,
		RejectedAt:         &now,
		RejectionReason:    reason,
		Version:            1,
		PriceCalculation:   entities.EmptyPriceCalculation(now),
		EmailNotifications: []entities.EmailNotification{},
	}
	patch := map[string]any{
		"status":          entities.QuoteStatusRejected,
		"rejectedAt":      now.Format(time.RFC3339Nano),
		"rejectionReason": reason,
	}

	log.Printf("[approval][usecase] reject start quote_id=%s actor=%s", quoteID, actor)
	return u.decide(ctx, actor, approval, patch)
}

func (u *QuoteApprovalUseCase) decide(ctx context.Context, actor string, approval entities.QuoteApproval, patch map[string]any) (entities.QuoteDecision, error) {
	status := string(approval.Status)

	if _, err := u.store.Create(ctx, actor, CollectionQuoteApprovals, approval, []string{"approval", status}); err != nil {
		log.Printf("[approval][usecase] approval record failed quote_id=%s status=%s err=%v", approval.QuoteID, status, err)
		return entities.QuoteDecision{}, err
	}
	decision := entities.QuoteDecision{Approval: approval}

	updated, err := u.store.Update(ctx, actor, approval.QuoteID, patch, []string{"quote", status}, true)
	if err != nil {
		log.Printf("[approval][usecase] quote status patch failed quote_id=%s approval_id=%s err=%v", approval.QuoteID, approval.ID, err)
	} else {
		decision.QuoteUpdated = true
	}

	to := ""
	if err == nil {
		if q, qErr := toQuote(updated); qErr == nil {
			to = q.Email
		}
	}
	if err := u.notify(ctx, actor, approval.QuoteID, status, to); err != nil {
		log.Printf("[approval][usecase] notification failed quote_id=%s approval_id=%s err=%v", approval.QuoteID, approval.ID, err)
	} else {
		decision.NotificationSent = true
	}

	log.Printf("[approval][usecase] decision recorded quote_id=%s approval_id=%s status=%s quote_updated=%t notification_sent=%t",
		approval.QuoteID, approval.ID, status, decision.QuoteUpdated, decision.NotificationSent)
	return decision, nil
}

func (u *QuoteApprovalUseCase) notify(ctx context.Context, actor, quoteID, status, to string) error {
	if to == "" {
		to = "customer@example.com"
	}
	n := entities.EmailNotification{
		QuoteID: quoteID,
		To:      to,
		Subject: fmt.Sprintf("Quote %s", strings.ToUpper(status)),
		Body:    fmt.Sprintf("Your quote has been %s by %s", status, actor),
		SentAt:  u.now(),
		Status:  "sent",
	}
	_, err := u.store.Create(ctx, actor, CollectionEmailNotifications, n, []string{"notification", status})
	return err
}

func resolveActor(actor string) string {
	if a := strings.TrimSpace(actor); a != "" {
		return a
	}
	return DefaultActor
}

func newApprovalID() string {
	return "approval_" + uuid.NewString()
}
