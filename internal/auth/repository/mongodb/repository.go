// Package mongodb provides the MongoDB-backed user repository.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ademola7/BlogApi/internal/auth/domain"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
)

const usersCollection = "users"

type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository returns a user repository over the users collection,
// ensuring the unique email index exists. Emails are stored lower-cased, so
// the index gives case-insensitive uniqueness.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	collection := db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logrus.WithError(err).Warn("failed to create unique index on users.email")
	}

	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
