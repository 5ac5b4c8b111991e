// Package shape builds the outbound representation of stored entities.
//
// A Schema renames the stored identity to "id", drops the revision field,
// splices populated references, removes every field tagged shape:"private"
// at any depth and finally runs an optional custom transform. The source
// value is never modified.
package shape

import (
	"reflect"
	"slices"
	"strings"
	"time"

	"apikit/internal/domain/pagination"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	tagName       = "shape"
	tagPrivate    = "private"
	fieldID       = "_id"
	fieldRevision = "__v"
	fieldPopulate = "_populated"
	outputID      = "id"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	objectIDType = reflect.TypeOf(primitive.ObjectID{})
)

// Transform mutates a shaped document after the built-in steps ran.
type Transform func(doc map[string]any)

// Schema is the shaping contract of one entity type.
type Schema struct {
	private   []string
	refs      map[string]*Schema
	transform Transform
}

// Option customises a Schema.
type Option func(*Schema)

// WithRef shapes the populated reference stored under field with ref.
func WithRef(field string, ref *Schema) Option {
	return func(s *Schema) {
		s.refs[field] = ref
	}
}

// WithTransform registers a custom transform applied last.
func WithTransform(fn Transform) Option {
	return func(s *Schema) {
		s.transform = fn
	}
}

// WithPrivate marks extra dotted paths as private.
func WithPrivate(paths ...string) Option {
	return func(s *Schema) {
		s.private = append(s.private, paths...)
	}
}

// For builds the Schema of T from its bson and shape struct tags.
func For[T any](opts ...Option) *Schema {
	s := &Schema{refs: make(map[string]*Schema)}
	s.private = privatePaths(reflect.TypeOf((*T)(nil)).Elem(), "", nil)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// PrivatePaths lists the dotted paths removed from every shaped document.
func (s *Schema) PrivatePaths() []string {
	return slices.Clone(s.private)
}

// Apply shapes a single value. A nil value shapes to nil.
func (s *Schema) Apply(v any) (map[string]any, error) {
	if isNil(v) {
		return nil, nil
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}

	out, _ := normalize(doc).(map[string]any)

	return s.shapeMap(out), nil
}

func (s *Schema) shapeMap(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}

	if id, ok := doc[fieldID]; ok {
		doc[outputID] = id
	}
	delete(doc, fieldID)
	delete(doc, fieldRevision)

	if populated, ok := doc[fieldPopulate].(map[string]any); ok {
		for field, value := range populated {
			ref, ok := s.refs[field]
			if !ok {
				ref = &Schema{}
			}

			sub, _ := value.(map[string]any)
			if sub == nil {
				doc[field] = nil

				continue
			}
			doc[field] = ref.shapeMap(sub)
		}
	}
	delete(doc, fieldPopulate)

	for _, path := range s.private {
		deletePath(doc, strings.Split(path, "."))
	}

	if s.transform != nil {
		s.transform(doc)
	}

	return doc
}

// One shapes a typed pointer; a nil pointer shapes to nil.
func One[T any](s *Schema, v *T) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}

	return s.Apply(v)
}

// All shapes every element of items.
func All[T any](s *Schema, items []*T) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		doc, err := One(s, item)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}

	return out, nil
}

// Page is a shaped pagination result.
type Page struct {
	Results      []map[string]any `json:"results"`
	Page         int              `json:"page"`
	Limit        int              `json:"limit"`
	TotalPages   int              `json:"totalPages"`
	TotalResults int64            `json:"totalResults"`
}

// ApplyPage shapes each result of a page.
func ApplyPage[T any](s *Schema, page *pagination.Result[T]) (*Page, error) {
	results, err := All(s, page.Results)
	if err != nil {
		return nil, err
	}

	return &Page{
		Results:      results,
		Page:         page.Page,
		Limit:        page.Limit,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}, nil
}

func privatePaths(t reflect.Type, prefix string, seen []reflect.Type) []string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t == timeType || t == objectIDType || slices.Contains(seen, t) {
		return nil
	}
	seen = append(seen, t)

	paths := make([]string, 0)
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, inline, skip := bsonName(f)
		if skip {
			continue
		}

		if inline {
			paths = append(paths, privatePaths(f.Type, prefix, seen)...)

			continue
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		if slices.Contains(strings.Split(f.Tag.Get(tagName), ","), tagPrivate) {
			paths = append(paths, path)

			continue
		}

		paths = append(paths, privatePaths(f.Type, path, seen)...)
	}

	return paths
}

func bsonName(f reflect.StructField) (name string, inline, skip bool) {
	tag := f.Tag.Get("bson")
	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	inline = slices.Contains(parts[1:], "inline")
	if name == "" {
		name = strings.ToLower(f.Name)
	}

	return name, inline, false
}

// normalize converts decoded BSON into plain Go values.
func normalize(v any) any {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}

		return m
	case bson.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}

		return m
	case bson.A:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}

		return out
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.Null, primitive.Undefined:
		return nil
	default:
		return val
	}
}

func deletePath(node any, path []string) {
	switch n := node.(type) {
	case map[string]any:
		if len(path) == 1 {
			delete(n, path[0])

			return
		}
		if child, ok := n[path[0]]; ok {
			deletePath(child, path[1:])
		}
	case []any:
		for _, item := range n {
			deletePath(item, path)
		}
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
