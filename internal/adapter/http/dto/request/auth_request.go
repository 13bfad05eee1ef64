package request

import "strings"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) NormalizedEmail() string {
	return strings.TrimSpace(r.Email)
}
