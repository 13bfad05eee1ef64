package request

import "torchline_portal/internal/usecase"

type TrackingRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Status         string `json:"status" binding:"required"`
	Description    string `json:"description"`
}

func (r TrackingRequest) ToInput() usecase.TrackingInput {
	return usecase.TrackingInput{
		TrackingNumber: r.TrackingNumber,
		Location:       r.Location,
		Status:         r.Status,
		Description:    r.Description,
	}
}

// MessageRequest omits the sender; it comes from the session.
type MessageRequest struct {
	ReceiverID  string   `json:"receiverId" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Attachments []string `json:"attachments"`
}

func (r MessageRequest) ToInput(senderID, senderName string) usecase.MessageInput {
	return usecase.MessageInput{
		SenderID:    senderID,
		SenderName:  senderName,
		ReceiverID:  r.ReceiverID,
		Content:     r.Content,
		Attachments: r.Attachments,
	}
}
