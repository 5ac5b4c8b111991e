// Package handler contains the HTTP handlers of the API.
package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"apikit/internal/delivery/api/response"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/pagination"
	"apikit/internal/domain/repository"
	"apikit/internal/domain/shape"
	"apikit/internal/errors"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxFilterIDs bounds id lists accepted in bulk filters.
const maxFilterIDs = 100

// FieldKind decides how a query parameter is coerced before it reaches a filter.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldBool
	FieldDate
	FieldObjectID
	// FieldObjectIDList accepts repeated or comma separated ids.
	FieldObjectIDList
)

// FieldSpec allows one query parameter into a filter.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Codec turns request payloads into documents and updates. raw is always a
// JSON object; multipart form values arrive as strings.
type Codec[T any] struct {
	Create func(c echo.Context, raw json.RawMessage) (*T, error)
	Update func(c echo.Context, raw json.RawMessage) (repository.Update, error)
}

// UploadField is a multipart file field stored in object storage. The stored
// URL replaces the field in the payload and its metadata is added under
// <Field>_metadata.
type UploadField struct {
	Field  string
	Folder string
}

// Resource configures a Controller for one entity.
type Resource[T any] struct {
	Name   string
	Schema *shape.Schema
	Codec  Codec[T]

	// FilterFields are accepted by paginated reads
	FilterFields           []FieldSpec
	UpdateManyFilterFields []FieldSpec
	DeleteManyFilterFields []FieldSpec
	PopulateFields         []string
	Uploads                []UploadField
}

// Controller is the generic HTTP adapter over a CrudUsecase.
type Controller[T any] struct {
	service  usecase.CrudUsecase[T]
	uploads  usecase.UploadUsecase
	resource Resource[T]
	logger   *slog.Logger
}

// NewController is the constructor for Controller. uploads may be nil when
// the resource has no upload fields.
func NewController[T any](service usecase.CrudUsecase[T], uploads usecase.UploadUsecase, resource Resource[T], logger *slog.Logger) *Controller[T] {
	return &Controller[T]{
		service:  service,
		uploads:  uploads,
		resource: resource,
		logger:   logger.With(slog.String("resource", resource.Name)),
	}
}

// ReadOne returns the document named by the id path parameter, or null.
func (ctl *Controller[T]) ReadOne(c echo.Context) error {
	doc, err := ctl.service.ReadOne(c.Request().Context(), repository.Filter{"id": c.Param("id")})
	if err != nil {
		return errors.WithStack(err)
	}

	return ctl.one(c, http.StatusOK, doc)
}

// ReadMany returns every document, unpaginated.
func (ctl *Controller[T]) ReadMany(c echo.Context) error {
	docs, err := ctl.service.ReadMany(c.Request().Context(), repository.Filter{})
	if err != nil {
		return errors.WithStack(err)
	}

	return ctl.all(c, docs)
}

// ReadManyPaginated returns one page of documents matching the allowed filter fields.
func (ctl *Controller[T]) ReadManyPaginated(c echo.Context) error {
	filter, err := pickFilter(c, ctl.resource.FilterFields)
	if err != nil {
		return err
	}

	var opts pagination.Options
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &opts); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit and page must be integers"))
	}
	opts.Populate = strings.Join(ctl.allowedPopulate(opts.PopulateFields()), ",")

	page, err := ctl.service.ReadManyPaginated(c.Request().Context(), filter, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	shaped, err := shape.ApplyPage(ctl.resource.Schema, page)
	if err != nil {
		return errors.Wrap(err, "shape page")
	}

	return response.OK(c, shaped)
}

// CreateOne creates a document from a JSON or multipart body.
func (ctl *Controller[T]) CreateOne(c echo.Context) error {
	raw, keys, err := ctl.readPayload(c)
	if err != nil {
		return err
	}

	doc, err := ctl.resource.Codec.Create(c, raw)
	if err == nil {
		doc, err = ctl.service.CreateOne(c.Request().Context(), doc)
	}
	if err != nil {
		ctl.discardUploads(c.Request().Context(), keys)

		return errors.WithStack(err)
	}

	return ctl.one(c, http.StatusOK, doc)
}

// CreateMany creates every document of a JSON array body.
func (ctl *Controller[T]) CreateMany(c echo.Context) error {
	var items []json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&items); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("body must be an array"))
	}

	docs := make([]*T, 0, len(items))
	for _, item := range items {
		doc, err := ctl.resource.Codec.Create(c, item)
		if err != nil {
			return errors.WithStack(err)
		}
		docs = append(docs, doc)
	}

	created, err := ctl.service.CreateMany(c.Request().Context(), docs)
	if err != nil {
		return errors.WithStack(err)
	}

	return ctl.all(c, created)
}

// UpdateOne applies a partial update to the document named by the id path parameter.
func (ctl *Controller[T]) UpdateOne(c echo.Context) error {
	raw, keys, err := ctl.readPayload(c)
	if err != nil {
		return err
	}

	doc, err := ctl.updateOne(c, raw)
	if err != nil {
		ctl.discardUploads(c.Request().Context(), keys)

		return err
	}

	return ctl.one(c, http.StatusOK, doc)
}

func (ctl *Controller[T]) updateOne(c echo.Context, raw json.RawMessage) (*T, error) {
	update, err := ctl.decodeUpdate(c, raw)
	if err != nil {
		return nil, err
	}

	doc, err := ctl.service.UpdateOne(c.Request().Context(), repository.Filter{"id": c.Param("id")}, update)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return doc, nil
}

// UpdateMany applies a partial update to every document matching the allowed filter fields.
func (ctl *Controller[T]) UpdateMany(c echo.Context) error {
	filter, err := requireFilter(c, ctl.resource.UpdateManyFilterFields)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	update, err := ctl.decodeUpdate(c, raw)
	if err != nil {
		return err
	}

	result, err := ctl.service.UpdateMany(c.Request().Context(), filter, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// DeleteOne removes the document named by the id path parameter and returns it, or null.
func (ctl *Controller[T]) DeleteOne(c echo.Context) error {
	doc, err := ctl.service.DeleteOne(c.Request().Context(), repository.Filter{"id": c.Param("id")})
	if err != nil {
		return errors.WithStack(err)
	}

	return ctl.one(c, http.StatusOK, doc)
}

// DeleteMany removes every document matching the allowed filter fields.
func (ctl *Controller[T]) DeleteMany(c echo.Context) error {
	filter, err := requireFilter(c, ctl.resource.DeleteManyFilterFields)
	if err != nil {
		return err
	}

	result, err := ctl.service.DeleteMany(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

func (ctl *Controller[T]) decodeUpdate(c echo.Context, raw json.RawMessage) (repository.Update, error) {
	update, err := ctl.resource.Codec.Update(c, raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(update) == 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("at least one field must be updated"))
	}

	return update, nil
}

func (ctl *Controller[T]) one(c echo.Context, status int, doc *T) error {
	shaped, err := shape.One(ctl.resource.Schema, doc)
	if err != nil {
		return errors.Wrap(err, "shape document")
	}

	return response.Success(c, status, shaped)
}

func (ctl *Controller[T]) all(c echo.Context, docs []*T) error {
	shaped, err := shape.All(ctl.resource.Schema, docs)
	if err != nil {
		return errors.Wrap(err, "shape documents")
	}

	return response.OK(c, shaped)
}

func (ctl *Controller[T]) allowedPopulate(requested []string) []string {
	allowed := make([]string, 0, len(requested))
	for _, field := range requested {
		if slices.Contains(ctl.resource.PopulateFields, field) && !slices.Contains(allowed, field) {
			allowed = append(allowed, field)
		}
	}

	return allowed
}

// readPayload returns the request body as a JSON object. Multipart bodies are
// flattened to their first form values and their upload fields are stored;
// the returned keys name the stored objects.
func (ctl *Controller[T]) readPayload(c echo.Context) (json.RawMessage, []string, error) {
	mediaType, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if mediaType != echo.MIMEMultipartForm {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return nil, nil, errors.Wrap(err, "read body")
		}
		if len(strings.TrimSpace(string(raw))) == 0 {
			raw = []byte("{}")
		}

		return raw, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed multipart body"))
	}

	payload := make(map[string]any, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	var keys []string
	for _, field := range ctl.resource.Uploads {
		stored, err := ctl.storeUpload(c, field)
		if err != nil {
			ctl.discardUploads(c.Request().Context(), keys)

			return nil, nil, err
		}
		if stored == nil {
			continue
		}
		keys = append(keys, stored.Key)
		payload[field.Field] = stored.URL
		payload[field.Field+"_metadata"] = stored.Metadata
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		ctl.discardUploads(c.Request().Context(), keys)

		return nil, nil, errors.Wrap(err, "encode form payload")
	}

	return raw, keys, nil
}

func (ctl *Controller[T]) storeUpload(c echo.Context, field UploadField) (*entity.UploadedFile, error) {
	header, err := c.FormFile(field.Field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read upload %s", field.Field)
	}
	if ctl.uploads == nil {
		return nil, errors.Errorf("resource %s accepts no uploads", ctl.resource.Name)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", field.Field)
	}
	defer file.Close()

	stored, err := ctl.uploads.Upload(c.Request().Context(), field.Folder, &usecase.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return stored, nil
}

func (ctl *Controller[T]) discardUploads(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := ctl.uploads.Remove(ctx, key); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, ctl.logger).
				Warn("Failed to remove orphaned upload", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// requireFilter is pickFilter for bulk writes, which must be narrowed by at least one field.
func requireFilter(c echo.Context, specs []FieldSpec) (repository.Filter, error) {
	filter, err := pickFilter(c, specs)
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		names := make([]string, 0, len(specs))
		for _, spec := range specs {
			names = append(names, spec.Name)
		}

		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"at least one filter is required: " + strings.Join(names, ", ")))
	}

	return filter, nil
}

// pickFilter copies the allowed query parameters into a filter. Anything not
// listed in specs is dropped.
func pickFilter(c echo.Context, specs []FieldSpec) (repository.Filter, error) {
	query := c.QueryParams()
	filter := make(repository.Filter)

	for _, spec := range specs {
		values, ok := query[spec.Name]
		if !ok || len(values) == 0 {
			continue
		}

		value, err := coerce(spec, values)
		if err != nil {
			return nil, err
		}
		filter[spec.Name] = value
	}

	return filter, nil
}

func coerce(spec FieldSpec, values []string) (any, error) {
	invalid := func(expected string) error {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			strconv.Quote(spec.Name) + " must be " + expected))
	}

	switch spec.Kind {
	case FieldBool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, invalid("a boolean")
		}

		return b, nil
	case FieldDate:
		t, err := parseDate(values[0])
		if err != nil {
			return nil, invalid("a date")
		}

		return t, nil
	case FieldObjectID:
		id, err := primitive.ObjectIDFromHex(values[0])
		if err != nil {
			return nil, invalid("a valid id")
		}

		return id, nil
	case FieldObjectIDList:
		var ids []string
		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					ids = append(ids, part)
				}
			}
		}
		if len(ids) == 0 || len(ids) > maxFilterIDs {
			return nil, invalid("between 1 and " + strconv.Itoa(maxFilterIDs) + " ids")
		}
		for _, id := range ids {
			if !primitive.IsValidObjectID(id) {
				return nil, invalid("a list of valid ids")
			}
		}
		if spec.Name == "id" {
			// the service maps "id" onto the stored identity itself
			if len(ids) == 1 {
				return ids[0], nil
			}

			return ids, nil
		}
		oids := make([]primitive.ObjectID, 0, len(ids))
		for _, id := range ids {
			oid, _ := primitive.ObjectIDFromHex(id)
			oids = append(oids, oid)
		}

		return bson.M{"$in": oids}, nil
	default:
		return values[0], nil
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognised date %q", s)
}
