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
	ErrInvalidTrackingInput = errors.New("invalid tracking input")
	ErrInvalidMessageInput  = errors.New("invalid message input")
	ErrInvalidFileInput     = errors.New("invalid file input")
)

const (
	trackingPageSize    = 100
	defaultDeliveryDays = 3
)

type TrackingInput struct {
	TrackingNumber string
	Location       string
	Status         string
	Description    string
}

type MessageInput struct {
	SenderID    string
	SenderName  string
	ReceiverID  string
	Content     string
	Attachments []string
}

type FileInput struct {
	Upload        FileUpload
	Category      string
	UploadedBy    string
	ExpiresInDays int
}

// ICollaborationUseCase groups the shipment tracking, messaging and document
// upload features of the portals.
type ICollaborationUseCase interface {
	UpdateShipmentTracking(ctx context.Context, actor string, in TrackingInput) (entities.ShipmentTracking, error)
	SendMessage(ctx context.Context, in MessageInput) (entities.Message, error)
	UploadFile(ctx context.Context, in FileInput) (entities.FileMetadata, error)
}

type CollaborationUseCase struct {
	store interfaces.IDocumentStore
	now   func() time.Time
}

var _ ICollaborationUseCase = (*CollaborationUseCase)(nil)

func NewCollaborationUseCase(store interfaces.IDocumentStore) *CollaborationUseCase {
	return &CollaborationUseCase{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// UpdateShipmentTracking appends an update to the latest snapshot of the
// tracking number and stores the result as a new snapshot. The first update
// of a tracking number starts a fresh history.
func (u *CollaborationUseCase) UpdateShipmentTracking(ctx context.Context, actor string, in TrackingInput) (entities.ShipmentTracking, error) {
	in.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
	in.Location = strings.TrimSpace(in.Location)
	in.Status = strings.TrimSpace(in.Status)
	if in.TrackingNumber == "" || in.Location == "" || in.Status == "" {
		return entities.ShipmentTracking{}, fmt.Errorf("%w: trackingNumber, location and status are required", ErrInvalidTrackingInput)
	}
	actor = resolveActor(actor)
	now := u.now()

	tracking, found, err := u.latestTracking(ctx, actor, in.TrackingNumber)
	if err != nil {
		log.Printf("[tracking][usecase] history fetch failed tracking=%s err=%v", in.TrackingNumber, err)
		return entities.ShipmentTracking{}, err
	}

	update := entities.TrackingUpdate{Location: in.Location, Status: in.Status, Timestamp: now, Description: in.Description}
	if found {
		tracking.Updates = append(tracking.Updates, update)
		tracking.CurrentLocation = in.Location
		tracking.Status = in.Status
	} else {
		tracking = entities.ShipmentTracking{
			TrackingNumber:    in.TrackingNumber,
			Status:            in.Status,
			CurrentLocation:   in.Location,
			EstimatedDelivery: now.AddDate(0, 0, defaultDeliveryDays),
			Updates:           []entities.TrackingUpdate{update},
			Realtime:          true,
		}
	}

	if _, err := u.store.Create(ctx, actor, CollectionShipmentTracking, tracking, []string{"tracking", in.Status}); err != nil {
		log.Printf("[tracking][usecase] update failed tracking=%s err=%v", in.TrackingNumber, err)
		return entities.ShipmentTracking{}, err
	}
	log.Printf("[tracking][usecase] update recorded tracking=%s status=%s updates=%d", in.TrackingNumber, in.Status, len(tracking.Updates))
	return tracking, nil
}

func (u *CollaborationUseCase) latestTracking(ctx context.Context, actor, trackingNumber string) (entities.ShipmentTracking, bool, error) {
	docs, err := u.store.Read(ctx, actor, entities.ReadQuery{Collection: CollectionShipmentTracking, Limit: trackingPageSize})
	if err != nil {
		return entities.ShipmentTracking{}, false, err
	}
	var (
		latest entities.ShipmentTracking
		found  bool
	)
	for _, d := range docs {
		t, err := decodeDocument[entities.ShipmentTracking](d)
		if err != nil || t.TrackingNumber != trackingNumber {
			continue
		}
		if !found || len(t.Updates) > len(latest.Updates) {
			latest, found = t, true
		}
	}
	return latest, found, nil
}

func (u *CollaborationUseCase) SendMessage(ctx context.Context, in MessageInput) (entities.Message, error) {
	in.SenderID = strings.TrimSpace(in.SenderID)
	in.ReceiverID = strings.TrimSpace(in.ReceiverID)
	in.Content = strings.TrimSpace(in.Content)
	if in.SenderID == "" || in.ReceiverID == "" || in.Content == "" {
		return entities.Message{}, fmt.Errorf("%w: sender, receiver and content are required", ErrInvalidMessageInput)
	}

	msg := entities.Message{
		ID:          "msg_" + uuid.NewString(),
		SenderID:    in.SenderID,
		SenderName:  strings.TrimSpace(in.SenderName),
		ReceiverID:  in.ReceiverID,
		Content:     in.Content,
		Timestamp:   u.now(),
		Read:        false,
		Attachments: in.Attachments,
	}
	if _, err := u.store.Create(ctx, in.SenderID, CollectionMessages, msg, []string{"message", "unread"}); err != nil {
		log.Printf("[message][usecase] send failed from=%s to=%s err=%v", in.SenderID, in.ReceiverID, err)
		return entities.Message{}, err
	}
	log.Printf("[message][usecase] sent message_id=%s from=%s to=%s", msg.ID, in.SenderID, in.ReceiverID)
	return msg, nil
}

func (u *CollaborationUseCase) UploadFile(ctx context.Context, in FileInput) (entities.FileMetadata, error) {
	f := in.Upload
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return entities.FileMetadata{}, fmt.Errorf("%w: category is required", ErrInvalidFileInput)
	}
	if in.ExpiresInDays < 0 {
		return entities.FileMetadata{}, fmt.Errorf("%w: expiresInDays must not be negative", ErrInvalidFileInput)
	}
	if len(f.Content) == 0 {
		return entities.FileMetadata{}, ErrEmptyFile
	}
	if err := ValidateFile(f.FileType, int64(len(f.Content))); err != nil {
		return entities.FileMetadata{}, err
	}
	uploader := resolveActor(in.UploadedBy)
	now := u.now()
	url := EncodeDataURL(f.FileType, f.Content)
	major, _, _ := strings.Cut(f.FileType, "/")

	meta := entities.FileMetadata{
		ID:         "file_" + uuid.NewString(),
		FileName:   f.FileName,
		FileType:   f.FileType,
		FileSize:   int64(len(f.Content)),
		FileURL:    url,
		Category:   category,
		UploadedBy: uploader,
		UploadedAt: now,
		Tags:       []string{category, major},
	}
	if in.ExpiresInDays > 0 {
		exp := now.AddDate(0, 0, in.ExpiresInDays)
		meta.ExpiresAt = &exp
	}
	if major == "image" {
		meta.PreviewURL = url
	}

	if _, err := u.store.Create(ctx, uploader, CollectionFileMetadata, meta, []string{"file", category}); err != nil {
		log.Printf("[file][usecase] upload failed name=%s err=%v", f.FileName, err)
		return entities.FileMetadata{}, err
	}
	log.Printf("[file][usecase] upload success file_id=%s size=%s category=%s", meta.ID, FormatFileSize(meta.FileSize), category)
	return meta, nil
}
