package handler

import (
	"apikit/internal/domain/entity"
	"apikit/internal/domain/shape"
)

var (
	userSchema    = shape.For[entity.User]()
	messageSchema = shape.For[entity.Message](shape.WithRef("author", userSchema))
)
