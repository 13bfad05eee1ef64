package handlers

import (
	"errors"
	"log"
	"net/http"

	request "torchline_portal/internal/adapter/http/dto/request"
	response "torchline_portal/internal/adapter/http/dto/response"
	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email and password are required", http.StatusBadRequest)

// SessionStore persists the logged-in user between requests.
type SessionStore interface {
	Save(w http.ResponseWriter, r *http.Request, user entities.SessionUser) error
	Load(r *http.Request) (entities.SessionUser, error)
	Clear(w http.ResponseWriter, r *http.Request) error
}

type AuthHandler struct {
	usecase  usecase.IAuthUseCase
	sessions SessionStore
}

func NewAuthHandler(uc usecase.IAuthUseCase, sessions SessionStore) *AuthHandler {
	return &AuthHandler{usecase: uc, sessions: sessions}
}

// Login godoc
// @Summary      Log in to a portal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Login(c.Request.Context(), payload.NormalizedEmail(), payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.sessions.Save(c.Writer, c.Request, user); err != nil {
		log.Printf("[auth][handler] session save failed email=%s err=%v", user.Email, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login success email=%s role=%s", user.Email, user.Role)
	c.JSON(http.StatusOK, response.SessionResponse{User: user})
}

// Logout always expires the session cookie.
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		log.Printf("[auth][handler] session clear failed err=%v", err)
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}

// Me returns the session user.
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Login required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SessionResponse{User: user})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
