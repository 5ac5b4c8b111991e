package handler

import (
	"encoding/json"
	"log/slog"

	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/repository"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

var messageFilterFields = []FieldSpec{
	{Name: "id", Kind: FieldObjectIDList},
	{Name: "title", Kind: FieldString},
	{Name: "author", Kind: FieldObjectID},
	{Name: "isArchived", Kind: FieldBool},
	{Name: "createdAt", Kind: FieldDate},
	{Name: "updatedAt", Kind: FieldDate},
}

type createMessageInput struct {
	Title             string                 `json:"title" validate:"required"`
	Content           string                 `json:"content" validate:"required"`
	Author            string                 `json:"author" validate:"omitempty,objectid"`
	IsArchived        formBool               `json:"isArchived"`
	Thumbnail         string                 `json:"thumbnail"`
	ThumbnailMetadata *entity.UploadMetadata `json:"thumbnail_metadata"`
}

type updateMessageInput struct {
	Title             *string                `json:"title" validate:"omitempty,min=1"`
	Content           *string                `json:"content" validate:"omitempty,min=1"`
	Author            *string                `json:"author" validate:"omitempty,objectid"`
	IsArchived        *formBool              `json:"isArchived"`
	Thumbnail         *string                `json:"thumbnail"`
	ThumbnailMetadata *entity.UploadMetadata `json:"thumbnail_metadata"`
}

// MessageController serves /v1/messages.
type MessageController struct {
	*Controller[entity.Message]
}

// MessageControllerParams holds dependencies for MessageController, injected by Fx.
type MessageControllerParams struct {
	fx.In

	Messages usecase.MessageUsecase
	Uploads  usecase.UploadUsecase
	Logger   *slog.Logger
}

// NewMessageController is the constructor for MessageController.
func NewMessageController(params MessageControllerParams) *MessageController {
	return &MessageController{
		Controller: NewController(params.Messages, params.Uploads, Resource[entity.Message]{
			Name:   entity.MessageCollection,
			Schema: messageSchema,
			Codec: Codec[entity.Message]{
				Create: decodeCreateMessage,
				Update: decodeUpdateMessage,
			},
			FilterFields: messageFilterFields,
			UpdateManyFilterFields: []FieldSpec{
				{Name: "isArchived", Kind: FieldBool},
				{Name: "createdAt", Kind: FieldDate},
				{Name: "updatedAt", Kind: FieldDate},
			},
			DeleteManyFilterFields: []FieldSpec{
				{Name: "id", Kind: FieldObjectIDList},
				{Name: "isArchived", Kind: FieldBool},
				{Name: "createdAt", Kind: FieldDate},
				{Name: "updatedAt", Kind: FieldDate},
			},
			PopulateFields: []string{"author"},
			Uploads:        []UploadField{{Field: "thumbnail", Folder: "messages"}},
		}, params.Logger),
	}
}

// decodeCreateMessage attributes messages without an author to the caller.
func decodeCreateMessage(c echo.Context, raw json.RawMessage) (*entity.Message, error) {
	var in createMessageInput
	if err := decodePayload(c, raw, &in); err != nil {
		return nil, err
	}

	msg := &entity.Message{
		Title:             in.Title,
		Content:           in.Content,
		IsArchived:        bool(in.IsArchived),
		Thumbnail:         in.Thumbnail,
		ThumbnailMetadata: in.ThumbnailMetadata,
	}

	if in.Author != "" {
		msg.Author, _ = primitive.ObjectIDFromHex(in.Author)
	} else if caller, ok := deliverycontext.GetUser(c); ok {
		msg.Author = caller.ID
	}

	return msg, nil
}

func decodeUpdateMessage(c echo.Context, raw json.RawMessage) (repository.Update, error) {
	var in updateMessageInput
	if err := decodePayload(c, raw, &in); err != nil {
		return nil, err
	}

	update := repository.Update{}
	if in.Title != nil {
		update["title"] = *in.Title
	}
	if in.Content != nil {
		update["content"] = *in.Content
	}
	if in.Author != nil {
		update["author"] = *in.Author
	}
	if in.IsArchived != nil {
		update["isArchived"] = bool(*in.IsArchived)
	}
	if in.Thumbnail != nil {
		update["thumbnail"] = *in.Thumbnail
	}
	if in.ThumbnailMetadata != nil {
		update["thumbnail_metadata"] = in.ThumbnailMetadata
	}

	return update, nil
}
