package repo

import (
	"context"
	"errors"
	"time"

	"github.com/SalllesAndr/user-service/internal/db"
	"github.com/SalllesAndr/user-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 5 * time.Second

// UserRepository translates each caller's intent into exactly one operation
// on the users collection. Filters are always exact matches on a single
// field.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUserID(ctx context.Context, userID string) (*model.User, error)
	FindAll(ctx context.Context, filter bson.M) ([]model.User, error)
	Insert(ctx context.Context, user model.User) error
	// UpdateByUserID applies a partial $set and reports how many documents matched.
	UpdateByUserID(ctx context.Context, userID string, fields bson.M) (int64, error)
	// DeleteByUserID reports how many documents were deleted.
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

type userRepository struct {
	mongoRepo *db.Repository[model.User]
}

func NewUserRepository(mongoRepo *db.Repository[model.User]) UserRepository {
	return &userRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, db.NewFilter().Eq("email", email).Build())
}

func (r *userRepository) FindByUserID(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, db.NewFilter().Eq("user_id", userID).Build())
}

// findOne returns (nil, nil) when no document matches so callers do not have
// to know about driver sentinels.
func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user, err := r.mongoRepo.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context, filter bson.M) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.mongoRepo.FindAll(ctx, filter)
}

func (r *userRepository) Insert(ctx context.Context, user model.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.mongoRepo.Create(ctx, user)
	return err
}

func (r *userRepository) UpdateByUserID(ctx context.Context, userID string, fields bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.mongoRepo.Update(ctx, db.NewFilter().Eq("user_id", userID).Build(), fields)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *userRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.mongoRepo.Delete(ctx, db.NewFilter().Eq("user_id", userID).Build())
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
