package handlers

import (
	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var employee = entities.SessionUser{Email: "employee@torchlinegroup.com", Name: "Jane Employee", Role: entities.UserRoleEmployee}

func withUser(user entities.SessionUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

type decisionRecorder struct {
	statuses []entities.QuoteStatus
}

func (d *decisionRecorder) ObserveDecision(status entities.QuoteStatus) {
	d.statuses = append(d.statuses, status)
}
