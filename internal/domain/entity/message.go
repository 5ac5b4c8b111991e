package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// MessageCollection is the collection name for messages.
const MessageCollection = "messages"

// Message is a user-authored post with an optional thumbnail.
type Message struct {
	Base `bson:",inline"`

	Title             string             `bson:"title" json:"title"`
	Content           string             `bson:"content" json:"content"`
	Thumbnail         string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	ThumbnailMetadata *UploadMetadata    `bson:"thumbnail_metadata,omitempty" json:"thumbnail_metadata,omitempty"`
	Author            primitive.ObjectID `bson:"author" json:"author"`
	IsArchived        bool               `bson:"isArchived" json:"isArchived"`
}
