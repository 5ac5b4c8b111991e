package shape

import (
	"testing"
	"time"

	"apikit/internal/domain/entity"
	"apikit/internal/domain/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type secretBox struct {
	Label string `bson:"label"`
	Key   string `bson:"key" shape:"private"`
}

type nestedDoc struct {
	entity.Base `bson:",inline"`

	Name    string      `bson:"name"`
	Token   string      `bson:"token" shape:"private"`
	Box     secretBox   `bson:"box"`
	Boxes   []secretBox `bson:"boxes"`
	Version int         `bson:"__v"`
}

func TestFor_DiscoversNestedPrivatePaths(t *testing.T) {
	s := For[nestedDoc]()

	assert.ElementsMatch(t, []string{"token", "box.key", "boxes.key"}, s.PrivatePaths())
	assert.Equal(t, []string{"password"}, For[entity.User]().PrivatePaths())
}

func TestApply_User_StripsPasswordAndRenamesID(t *testing.T) {
	id := primitive.NewObjectID()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	user := &entity.User{
		Base:     entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Email:    "jane@example.com",
		Password: "$2a$08$hash",
		Role:     entity.RoleUser,
	}

	got, err := For[entity.User]().Apply(user)

	require.NoError(t, err)
	assert.Equal(t, id.Hex(), got["id"])
	assert.NotContains(t, got, "_id")
	assert.NotContains(t, got, "password")
	assert.NotContains(t, got, "_populated")
	assert.Equal(t, "jane@example.com", got["email"])
	assert.Equal(t, now, got["createdAt"])
	assert.Equal(t, "$2a$08$hash", user.Password, "source must be untouched")
}

func TestApply_NestedPrivateAndRevision(t *testing.T) {
	doc := &nestedDoc{
		Base:    entity.Base{ID: primitive.NewObjectID()},
		Name:    "n",
		Token:   "t",
		Box:     secretBox{Label: "a", Key: "k"},
		Boxes:   []secretBox{{Label: "b", Key: "k2"}},
		Version: 3,
	}

	got, err := For[nestedDoc]().Apply(doc)

	require.NoError(t, err)
	assert.NotContains(t, got, "token")
	assert.NotContains(t, got, "__v")
	assert.Equal(t, map[string]any{"label": "a"}, got["box"])
	assert.Equal(t, []any{map[string]any{"label": "b"}}, got["boxes"])
}

func TestApply_PopulatedRefUsesRefSchema(t *testing.T) {
	authorID := primitive.NewObjectID()
	msg := &entity.Message{
		Base: entity.Base{
			ID: primitive.NewObjectID(),
			Populated: map[string]bson.M{
				"author": {"_id": authorID, "email": "a@example.com", "password": "hash"},
			},
		},
		Title:  "hello",
		Author: authorID,
	}

	s := For[entity.Message](WithRef("author", For[entity.User]()))
	got, err := s.Apply(msg)

	require.NoError(t, err)
	author, ok := got["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, authorID.Hex(), author["id"])
	assert.NotContains(t, author, "password")
	assert.NotContains(t, got, "_populated")
}

func TestApply_UnpopulatedRefIsHexString(t *testing.T) {
	authorID := primitive.NewObjectID()

	got, err := For[entity.Message]().Apply(&entity.Message{Author: authorID})

	require.NoError(t, err)
	assert.Equal(t, authorID.Hex(), got["author"])
}

func TestApply_TransformRunsLast(t *testing.T) {
	s := For[entity.User](WithTransform(func(doc map[string]any) {
		_, hasPassword := doc["password"]
		doc["passwordSeen"] = hasPassword
		doc["fullName"] = doc["firstName"].(string) + " " + doc["lastName"].(string)
	}))

	got, err := s.Apply(&entity.User{FirstName: "Ada", LastName: "Lovelace", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, false, got["passwordSeen"])
	assert.Equal(t, "Ada Lovelace", got["fullName"])
}

func TestApply_IsRepeatable(t *testing.T) {
	s := For[entity.User]()
	user := &entity.User{Base: entity.Base{ID: primitive.NewObjectID()}, Password: "p"}

	first, err := s.Apply(user)
	require.NoError(t, err)
	second, err := s.Apply(user)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOne_NilPointer(t *testing.T) {
	got, err := One[entity.User](For[entity.User](), nil)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApplyPage(t *testing.T) {
	page := &pagination.Result[entity.User]{
		Results:      []*entity.User{{Email: "a@example.com", Password: "x"}},
		Page:         2,
		Limit:        1,
		TotalPages:   3,
		TotalResults: 3,
	}

	got, err := ApplyPage(For[entity.User](), page)

	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.NotContains(t, got.Results[0], "password")
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, int64(3), got.TotalResults)
}
