package impl

import (
	"context"
	"log/slog"
	"strings"

	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	"apikit/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

type messageService struct {
	*CrudService[entity.Message]
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	Messages  repository.Collection[entity.Message]
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		CrudService: NewCrudService(params.Messages, params.TxManager, params.Logger, Hooks[entity.Message]{
			BeforeCreate: validateMessage,
			BeforeUpdate: normalizeMessageUpdate,
		}),
	}
}

func validateMessage(_ context.Context, msg *entity.Message) error {
	switch {
	case strings.TrimSpace(msg.Title) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title is required"), "create message")
	case strings.TrimSpace(msg.Content) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("content is required"), "create message")
	case msg.Author.IsZero():
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("author is required"), "create message")
	}

	return nil
}

// normalizeMessageUpdate stores author references as ObjectIDs.
func normalizeMessageUpdate(_ context.Context, _ repository.Filter, update repository.Update) error {
	raw, ok := update["author"]
	if !ok {
		return nil
	}

	switch author := raw.(type) {
	case primitive.ObjectID:
		if author.IsZero() {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("author is required"), "update message")
		}
	case string:
		id, err := primitive.ObjectIDFromHex(author)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("author must be a valid id"), "update message")
		}
		update["author"] = id
	default:
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("author must be a valid id"), "update message")
	}

	return nil
}
