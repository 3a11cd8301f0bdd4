package profile

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/redmonkez12/devconnector-api/internal/database"
)

var (
	ErrNoProfile        = errors.New("profile not found")
	ErrDuplicateProfile = errors.New("profile already exists for user")
)

// Repository stores profile documents in MongoDB
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(database.ProfilesCollection)}
}

// FindByUser returns the profile owned by userID
func (r *Repository) FindByUser(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &p, nil
}

// FindAll returns every profile, newest first
func (r *Repository) FindAll(ctx context.Context) ([]Profile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

// Insert stores a new profile, assigning its ID
func (r *Repository) Insert(ctx context.Context, p *Profile) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateProfile
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// Replace writes the whole document back
func (r *Repository) Replace(ctx context.Context, p *Profile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to replace profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoProfile
	}
	return nil
}

// DeleteByUser removes the profile owned by userID, if any
func (r *Repository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
