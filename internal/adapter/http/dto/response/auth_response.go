package response

import "torchline_portal/internal/domain/entities"

type SessionResponse struct {
	User entities.SessionUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
