package mongodb

import (
	"context"
	"time"

	"apikit/internal/domain/entity"
	"apikit/internal/domain/pagination"
	"apikit/internal/domain/repository"
	"apikit/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const populatedField = "_populated"

// fields an update may never overwrite
var immutableFields = []string{"_id", "id", "createdAt"}

// documentPtr constrains PT to a pointer to T that is an entity.Document.
type documentPtr[T any] interface {
	*T
	entity.Document
}

// collection implements repository.Collection[T] over a single MongoDB collection.
type collection[T any, PT documentPtr[T]] struct {
	coll *mongo.Collection
	refs map[string]string
	now  func() time.Time
}

// CollectionOption configures a collection.
type CollectionOption func(*collectionConfig)

type collectionConfig struct {
	refs map[string]string
	now  func() time.Time
}

// WithRef lets field be populated from the foreign collection by _id.
func WithRef(field, foreignCollection string) CollectionOption {
	return func(c *collectionConfig) {
		c.refs[field] = foreignCollection
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) CollectionOption {
	return func(c *collectionConfig) {
		c.now = now
	}
}

// NewCollection returns a repository.Collection[T] backed by db.Collection(name).
func NewCollection[T any, PT documentPtr[T]](db *mongo.Database, name string, opts ...CollectionOption) repository.Collection[T] {
	cfg := &collectionConfig{refs: make(map[string]string), now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	return &collection[T, PT]{
		coll: db.Collection(name),
		refs: cfg.refs,
		now:  cfg.now,
	}
}

func (c *collection[T, PT]) Name() string {
	return c.coll.Name()
}

func (c *collection[T, PT]) prepareInsert(doc *T, now time.Time) {
	d := PT(doc)
	if d.GetID().IsZero() {
		d.SetID(primitive.NewObjectID())
	}
	d.Touch(now, true)
}

func (c *collection[T, PT]) InsertOne(ctx context.Context, doc *T) error {
	c.prepareInsert(doc, c.now().UTC())

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return translateError(err, "insert into "+c.Name())
	}

	return nil
}

func (c *collection[T, PT]) InsertMany(ctx context.Context, docs []*T) error {
	if len(docs) == 0 {
		return nil
	}

	now := c.now().UTC()
	batch := make([]any, len(docs))
	for i, doc := range docs {
		c.prepareInsert(doc, now)
		batch[i] = doc
	}

	if _, err := c.coll.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true)); err != nil {
		return translateError(err, "insert many into "+c.Name())
	}

	return nil
}

func (c *collection[T, PT]) FindOne(ctx context.Context, filter repository.Filter, populate []string) (*T, error) {
	lookups := c.lookupStages(populate)
	if len(lookups) == 0 {
		doc := new(T)
		if err := c.coll.FindOne(ctx, nonNil(filter)).Decode(doc); err != nil {
			return nil, translateError(err, "find one in "+c.Name())
		}

		return doc, nil
	}

	pipeline := mongo.Pipeline{{{Key: "$match", Value: nonNil(filter)}}, {{Key: "$limit", Value: 1}}}
	pipeline = append(pipeline, lookups...)

	docs, err := c.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.WithStack(repository.ErrDocumentNotFound)
	}

	return docs[0], nil
}

func (c *collection[T, PT]) Find(ctx context.Context, filter repository.Filter, opts repository.FindOptions) ([]*T, error) {
	lookups := c.lookupStages(opts.Populate)
	if len(lookups) == 0 {
		findOpts := options.Find()
		if len(opts.Sort) > 0 {
			findOpts.SetSort(sortDocument(opts.Sort))
		}
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}

		cursor, err := c.coll.Find(ctx, nonNil(filter), findOpts)
		if err != nil {
			return nil, translateError(err, "find in "+c.Name())
		}

		docs := make([]*T, 0)
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, translateError(err, "decode "+c.Name())
		}

		return docs, nil
	}

	pipeline := mongo.Pipeline{{{Key: "$match", Value: nonNil(filter)}}}
	if len(opts.Sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sortDocument(opts.Sort)}})
	}
	if opts.Skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: opts.Skip}})
	}
	if opts.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: opts.Limit}})
	}
	pipeline = append(pipeline, lookups...)

	return c.aggregate(ctx, pipeline)
}

func (c *collection[T, PT]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, translateError(err, "count "+c.Name())
	}

	return n, nil
}

func (c *collection[T, PT]) UpdateOne(ctx context.Context, filter repository.Filter, update repository.Update) (*T, error) {
	doc := new(T)
	err := c.coll.FindOneAndUpdate(ctx, nonNil(filter), c.setDocument(update),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(doc)
	if err != nil {
		return nil, translateError(err, "update one in "+c.Name())
	}

	return doc, nil
}

func (c *collection[T, PT]) UpdateMany(ctx context.Context, filter repository.Filter, update repository.Update) (repository.BulkResult, error) {
	res, err := c.coll.UpdateMany(ctx, nonNil(filter), c.setDocument(update))
	if err != nil {
		return repository.BulkResult{}, translateError(err, "update many in "+c.Name())
	}

	return repository.BulkResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (c *collection[T, PT]) DeleteOne(ctx context.Context, filter repository.Filter) (*T, error) {
	doc := new(T)
	if err := c.coll.FindOneAndDelete(ctx, nonNil(filter)).Decode(doc); err != nil {
		return nil, translateError(err, "delete one in "+c.Name())
	}

	return doc, nil
}

func (c *collection[T, PT]) DeleteMany(ctx context.Context, filter repository.Filter) (repository.BulkResult, error) {
	res, err := c.coll.DeleteMany(ctx, nonNil(filter))
	if err != nil {
		return repository.BulkResult{}, translateError(err, "delete many in "+c.Name())
	}

	return repository.BulkResult{Matched: res.DeletedCount, Deleted: res.DeletedCount}, nil
}

func (c *collection[T, PT]) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*T, error) {
	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translateError(err, "aggregate "+c.Name())
	}

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translateError(err, "decode "+c.Name())
	}

	return docs, nil
}

// lookupStages resolves each known populate field into _populated.<field>.
// Unknown fields are ignored.
func (c *collection[T, PT]) lookupStages(populate []string) []bson.D {
	stages := make([]bson.D, 0)
	for _, field := range populate {
		from, ok := c.refs[field]
		if !ok {
			continue
		}

		target := populatedField + "." + field
		stages = append(stages,
			bson.D{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: from},
				{Key: "localField", Value: field},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: target},
			}}},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: target, Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$" + target, 0}}}},
			}}},
		)
	}

	return stages
}

// setDocument builds a $set update, stamping updatedAt and dropping immutable fields.
func (c *collection[T, PT]) setDocument(update repository.Update) bson.D {
	set := bson.M{}
	for k, v := range update {
		set[k] = v
	}
	for _, f := range immutableFields {
		delete(set, f)
	}
	set["updatedAt"] = c.now().UTC()

	return bson.D{{Key: "$set", Value: set}}
}

func sortDocument(fields []pagination.SortField) bson.D {
	sort := make(bson.D, 0, len(fields))
	for _, f := range fields {
		dir := 1
		if f.Descending {
			dir = -1
		}
		sort = append(sort, bson.E{Key: f.Field, Value: dir})
	}

	return sort
}

func nonNil(filter repository.Filter) repository.Filter {
	if filter == nil {
		return repository.Filter{}
	}

	return filter
}
