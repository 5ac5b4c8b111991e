package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"apikit/config"
	apimiddleware "apikit/internal/delivery/api/middleware"
	"apikit/internal/delivery/api/validator"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/pagination"
	"apikit/internal/domain/repository"
	mockUsecase "apikit/internal/mocks/usecase"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvProduction

	e := echo.New()
	e.Validator = validator.New(cfg)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger(), cfg).HandleHTTPError

	return e
}

func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, user)

			return next(c)
		}
	}
}

func newCaller(role entity.Role) *entity.User {
	user := &entity.User{Email: "caller@example.com", Role: role}
	user.ID = primitive.NewObjectID()

	return user
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type messageFixtures struct {
	e        *echo.Echo
	messages *mockUsecase.MockMessageUsecase
	uploads  *mockUsecase.MockUploadUsecase
	caller   *entity.User
}

func createMessageFixtures(t *testing.T) messageFixtures {
	fx := messageFixtures{
		e:        newTestEcho(),
		messages: mockUsecase.NewMockMessageUsecase(t),
		uploads:  mockUsecase.NewMockUploadUsecase(t),
		caller:   newCaller(entity.RoleAdmin),
	}

	ctl := NewMessageController(MessageControllerParams{Messages: fx.messages, Uploads: fx.uploads, Logger: newDiscardLogger()})
	g := fx.e.Group("/v1/messages", asUser(fx.caller))
	g.GET("", ctl.ReadManyPaginated)
	g.GET("/all", ctl.ReadMany)
	g.POST("", ctl.CreateOne)
	g.POST("/many", ctl.CreateMany)
	g.PATCH("/many", ctl.UpdateMany)
	g.DELETE("/many", ctl.DeleteMany)
	g.GET("/:id", ctl.ReadOne)
	g.PATCH("/:id", ctl.UpdateOne)
	g.DELETE("/:id", ctl.DeleteOne)

	return fx
}

func TestController_UpdateMany_DropsFilterFieldsOutsideAllowList(t *testing.T) {
	fx := createMessageFixtures(t)

	fx.messages.EXPECT().
		UpdateMany(mock.Anything, repository.Filter{"isArchived": true}, repository.Update{"title": "renamed"}).
		Return(repository.BulkResult{Matched: 2, Modified: 2}, nil)

	rec, body := doRequest(t, fx.e, jsonRequest(http.MethodPatch, "/v1/messages/many?isArchived=true&secret=x", `{"title":"renamed"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matchedCount":2,"modifiedCount":2,"deletedCount":0}`, string(body.Data))
}

func TestController_DeleteMany_RequiresAllowedFilter(t *testing.T) {
	fx := createMessageFixtures(t)

	rec, body := doRequest(t, fx.e, httptest.NewRequest(http.MethodDelete, "/v1/messages/many?secret=x", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	fx.messages.AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}

func TestController_DeleteMany_IDList(t *testing.T) {
	fx := createMessageFixtures(t)
	a, b := primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()

	fx.messages.EXPECT().
		DeleteMany(mock.Anything, repository.Filter{"id": []string{a, b}}).
		Return(repository.BulkResult{Deleted: 2}, nil)

	rec, _ := doRequest(t, fx.e, httptest.NewRequest(http.MethodDelete, "/v1/messages/many?id="+a+"&id="+b, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestController_ReadManyPaginated(t *testing.T) {
	fx := createMessageFixtures(t)
	msg := &entity.Message{Title: "hello", Author: fx.caller.ID}
	msg.ID = primitive.NewObjectID()

	fx.messages.EXPECT().
		ReadManyPaginated(mock.Anything, repository.Filter{"title": "hello"}, pagination.Options{
			SortBy:   "title:desc",
			Limit:    2,
			Page:     3,
			Populate: "author",
		}).
		Return(&pagination.Result[entity.Message]{
			Results:      []*entity.Message{msg},
			Page:         3,
			Limit:        2,
			TotalPages:   3,
			TotalResults: 5,
		}, nil)

	rec, body := doRequest(t, fx.e, httptest.NewRequest(http.MethodGet,
		"/v1/messages?title=hello&sortBy=title:desc&limit=2&page=3&populate=author,secret&foo=bar", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Results []map[string]any `json:"results"`
		Total   int64            `json:"totalResults"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, msg.ID.Hex(), page.Results[0]["id"])
	assert.NotContains(t, page.Results[0], "_id")
	assert.Equal(t, int64(5), page.Total)
}

func TestController_ReadManyPaginated_InvalidBoolean(t *testing.T) {
	fx := createMessageFixtures(t)

	rec, _ := doRequest(t, fx.e, httptest.NewRequest(http.MethodGet, "/v1/messages?isArchived=maybe", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestController_ReadOne_MissingIsNull(t *testing.T) {
	fx := createMessageFixtures(t)
	id := primitive.NewObjectID().Hex()

	fx.messages.EXPECT().ReadOne(mock.Anything, repository.Filter{"id": id}).Return(nil, nil)

	rec, body := doRequest(t, fx.e, httptest.NewRequest(http.MethodGet, "/v1/messages/"+id, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(body.Data))
}

func TestController_CreateOne_DefaultsAuthorToCaller(t *testing.T) {
	fx := createMessageFixtures(t)

	fx.messages.EXPECT().
		CreateOne(mock.Anything, mock.MatchedBy(func(m *entity.Message) bool {
			return m.Title == "hi" && m.Author == fx.caller.ID && !m.IsArchived
		})).
		RunAndReturn(func(_ context.Context, m *entity.Message) (*entity.Message, error) {
			m.ID = primitive.NewObjectID()

			return m, nil
		})

	rec, body := doRequest(t, fx.e, jsonRequest(http.MethodPost, "/v1/messages", `{"title":"hi","content":"body"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, fx.caller.ID.Hex(), got["author"])
}

func TestController_CreateOne_RejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"content":"body"}`},
		{name: "unknown field", body: `{"title":"hi","content":"body","secret":true}`},
		{name: "bad author", body: `{"title":"hi","content":"body","author":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createMessageFixtures(t)

			rec, body := doRequest(t, fx.e, jsonRequest(http.MethodPost, "/v1/messages", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		})
	}
}

func TestController_CreateMany(t *testing.T) {
	fx := createMessageFixtures(t)

	fx.messages.EXPECT().
		CreateMany(mock.Anything, mock.MatchedBy(func(docs []*entity.Message) bool {
			return len(docs) == 2 && docs[0].Title == "a" && docs[1].IsArchived
		})).
		RunAndReturn(func(_ context.Context, docs []*entity.Message) ([]*entity.Message, error) {
			return docs, nil
		})

	rec, _ := doRequest(t, fx.e, jsonRequest(http.MethodPost, "/v1/messages/many",
		`[{"title":"a","content":"x"},{"title":"b","content":"y","isArchived":true}]`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestController_UpdateOne_RequiresAField(t *testing.T) {
	fx := createMessageFixtures(t)

	rec, _ := doRequest(t, fx.e, jsonRequest(http.MethodPatch, "/v1/messages/"+primitive.NewObjectID().Hex(), `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, fileField, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestController_UpdateOne_MultipartUpload(t *testing.T) {
	fx := createMessageFixtures(t)
	id := primitive.NewObjectID()
	stored := &entity.UploadedFile{
		Key:      "messages/abc.png",
		URL:      "https://cdn.example.com/messages/abc.png",
		Metadata: entity.UploadMetadata{MimeType: "image/png", Size: "4 B", OriginalName: "pic.png", Extension: "png"},
	}

	fx.uploads.EXPECT().
		Upload(mock.Anything, "messages", mock.MatchedBy(func(f *usecase.FileUpload) bool {
			return f.Name == "pic.png" && f.ContentType == "image/png" && f.Size == 4
		})).
		Return(stored, nil)
	fx.messages.EXPECT().
		UpdateOne(mock.Anything, repository.Filter{"id": id.Hex()}, mock.MatchedBy(func(u repository.Update) bool {
			meta, ok := u["thumbnail_metadata"].(*entity.UploadMetadata)

			return u["thumbnail"] == stored.URL && u["isArchived"] == true && ok && *meta == stored.Metadata
		})).
		Return(&entity.Message{Thumbnail: stored.URL}, nil)

	req := multipartRequest(t, http.MethodPatch, "/v1/messages/"+id.Hex(),
		map[string]string{"isArchived": "true"}, "thumbnail", "pic.png", "image/png", []byte("png!"))
	rec, _ := doRequest(t, fx.e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestController_UpdateOne_RemovesUploadWhenUpdateFails(t *testing.T) {
	fx := createMessageFixtures(t)
	id := primitive.NewObjectID()

	fx.uploads.EXPECT().
		Upload(mock.Anything, "messages", mock.Anything).
		Return(&entity.UploadedFile{Key: "messages/abc.png", URL: "u"}, nil)
	fx.messages.EXPECT().
		UpdateOne(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("store down"))
	fx.uploads.EXPECT().Remove(mock.Anything, "messages/abc.png").Return(nil)

	req := multipartRequest(t, http.MethodPatch, "/v1/messages/"+id.Hex(), nil, "thumbnail", "pic.png", "image/png", []byte("png!"))
	rec, _ := doRequest(t, fx.e, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUserController_UpdateOne_SelfCannotVerifyEmail(t *testing.T) {
	e := newTestEcho()
	users := mockUsecase.NewMockUserUsecase(t)
	caller := newCaller(entity.RoleUser)
	ctl := NewUserController(UserControllerParams{Users: users, Uploads: mockUsecase.NewMockUploadUsecase(t), Logger: newDiscardLogger()})
	e.PATCH("/v1/users/:id", ctl.UpdateOne, asUser(caller))

	users.EXPECT().
		UpdateOne(mock.Anything, repository.Filter{"id": caller.ID.Hex()}, repository.Update{"firstName": "Jane"}).
		Return(&entity.User{FirstName: "Jane", Password: "hash"}, nil)

	rec, body := doRequest(t, e, jsonRequest(http.MethodPatch, "/v1/users/"+caller.ID.Hex(),
		`{"firstName":" Jane ","isEmailVerified":true,"role":"admin"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.NotContains(t, got, "password")
}

func TestUserController_CreateOne_WeakPassword(t *testing.T) {
	e := newTestEcho()
	ctl := NewUserController(UserControllerParams{
		Users:   mockUsecase.NewMockUserUsecase(t),
		Uploads: mockUsecase.NewMockUploadUsecase(t),
		Logger:  newDiscardLogger(),
	})
	e.POST("/v1/users", ctl.CreateOne, asUser(newCaller(entity.RoleAdmin)))

	rec, _ := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/users",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"password"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
