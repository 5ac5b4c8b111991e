package usecase

import (
	"context"

	"apikit/internal/domain/entity"
)

// UserUsecase manages users. Passwords are hashed on every write that sets one
// and emails are kept unique and lowercase.
type UserUsecase interface {
	CrudUsecase[entity.User]

	// GetByID returns the user with the given hex id, or nil when there is none.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail returns the user with the given email, or nil when there is none.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// MessageUsecase manages messages.
type MessageUsecase interface {
	CrudUsecase[entity.Message]
}
