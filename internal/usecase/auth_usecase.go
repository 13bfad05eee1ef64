package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"strings"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const defaultUsersPageSize = 100

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.SessionUser, error)
}

type AuthUseCase struct {
	store    interfaces.IDocumentStore
	owner    string
	pageSize int
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase builds the login flow. owner is the store identity used to
// read the users collection; pageSize bounds that single read.
func NewAuthUseCase(store interfaces.IDocumentStore, owner string, pageSize int) *AuthUseCase {
	if pageSize <= 0 {
		pageSize = defaultUsersPageSize
	}
	return &AuthUseCase{store: store, owner: resolveActor(owner), pageSize: pageSize}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.SessionUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.SessionUser{}, ErrInvalidCredentials
	}

	docs, err := u.store.Read(ctx, u.owner, entities.ReadQuery{Collection: CollectionUsers, Limit: u.pageSize})
	if err != nil {
		log.Printf("[auth][usecase] users fetch failed email=%s err=%v", email, err)
		return entities.SessionUser{}, err
	}

	for _, d := range docs {
		user, err := decodeDocument[entities.User](d)
		if err != nil {
			continue
		}
		if user.Email != email {
			continue
		}
		if !PasswordMatches(user.Password, password) {
			continue
		}
		log.Printf("[auth][usecase] login success email=%s role=%s", email, user.Role)
		return user.SessionUser(), nil
	}
	log.Printf("[auth][usecase] login failed email=%s", email)
	return entities.SessionUser{}, ErrInvalidCredentials
}

// PasswordMatches checks a supplied password against a stored one, which is
// either a bcrypt hash or plaintext.
func PasswordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
