package mongodb

import (
	"apikit/internal/domain/entity"
	"apikit/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

func NewUserCollection(db *mongo.Database) repository.Collection[entity.User] {
	return NewCollection[entity.User](db, entity.UserCollection)
}

func NewTokenCollection(db *mongo.Database) repository.Collection[entity.Token] {
	return NewCollection[entity.Token](db, entity.TokenCollection)
}

func NewMessageCollection(db *mongo.Database) repository.Collection[entity.Message] {
	return NewCollection[entity.Message](db, entity.MessageCollection,
		WithRef("author", entity.UserCollection),
	)
}

// Module provides the MongoDB client, collections and transaction manager
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewDatabase,
		NewTransactionManager,
		NewUserCollection,
		NewTokenCollection,
		NewMessageCollection,
	),
	fx.Invoke(RegisterIndexes),
)
