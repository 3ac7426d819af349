// Package mongodb provides the MongoDB-backed blog repository.
package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ademola7/BlogApi/internal/blog/domain"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
	"github.com/Ademola7/BlogApi/pkg/constant"
)

const blogsCollection = "blogs"

// Sortable API fields and their document keys. Anything else in a sort
// expression is ignored.
var sortableFields = map[string]string{
	"read_count":   "read_count",
	"reading_time": "reading_time",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"title":        "title",
}

type MongoBlogRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogRepository returns a blog repository over the blogs collection,
// ensuring the unique title index exists.
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	collection := db.Collection(blogsCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logrus.WithError(err).Warn("failed to create unique index on blogs.title")
	}

	return &MongoBlogRepository{collection: collection}
}

func (r *MongoBlogRepository) Insert(ctx context.Context, blog *domain.Blog) error {
	_, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTitleAlreadyInUse
		}
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

func (r *MongoBlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}
	return &blog, nil
}

func (r *MongoBlogRepository) FindPublishedByID(ctx context.Context, id string) (*domain.Blog, error) {
	filter := bson.M{"_id": id, "state": domain.StatePublished}
	update := bson.M{"$inc": bson.M{"read_count": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog domain.Blog
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get published blog: %w", err)
	}
	return &blog, nil
}

func (r *MongoBlogRepository) FindPublished(ctx context.Context, q domain.ListQuery) ([]*domain.Blog, error) {
	filter := bson.M{"state": domain.StatePublished}

	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"tags": regex},
			bson.M{"description": regex},
		}
	}

	page := q.Page
	if page < 1 {
		page = constant.DefaultPage
	}
	limit := q.Limit
	if limit < 1 || limit > constant.MaxLimit {
		limit = constant.DefaultLimit
	}

	opts := options.Find().
		SetSort(parseSort(q.Sort)).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	return r.find(ctx, filter, opts)
}

func (r *MongoBlogRepository) FindByAuthor(ctx context.Context, authorID string) ([]*domain.Blog, error) {
	filter := bson.M{"author_id": authorID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *MongoBlogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Blog, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]*domain.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *MongoBlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	update := bson.M{"$set": bson.M{
		"title":        blog.Title,
		"description":  blog.Description,
		"body":         blog.Body,
		"tags":         blog.Tags,
		"state":        blog.State,
		"reading_time": blog.ReadingTime,
		"updated_at":   blog.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blog.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTitleAlreadyInUse
		}
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoBlogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// parseSort turns a comma-separated sort expression ("-read_count,title")
// into a Mongo sort document, defaulting to most-read, newest first.
func parseSort(sort string) bson.D {
	if sort == "" {
		return bson.D{
			{Key: "read_count", Value: -1},
			{Key: "created_at", Value: -1},
		}
	}

	var doc bson.D
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		direction := 1
		if strings.HasPrefix(field, "-") {
			direction = -1
			field = field[1:]
		}
		if key, ok := sortableFields[field]; ok {
			doc = append(doc, bson.E{Key: key, Value: direction})
		}
	}

	if len(doc) == 0 {
		return bson.D{
			{Key: "read_count", Value: -1},
			{Key: "created_at", Value: -1},
		}
	}
	return doc
}
