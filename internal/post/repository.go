package post

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

var ErrNoPost = errors.New("post not found")

// Repository stores post documents in MongoDB
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(database.PostsCollection)}
}

// FindByID returns the post with the given hex id. Malformed ids are reported as ErrNoPost.
func (r *Repository) FindByID(ctx context.Context, id string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoPost
	}

	var p Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoPost
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &p, nil
}

// FindAll returns every post, newest first
func (r *Repository) FindAll(ctx context.Context) ([]Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// Insert stores a new post, assigning its ID
func (r *Repository) Insert(ctx context.Context, p *Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// Replace writes the whole document back
func (r *Repository) Replace(ctx context.Context, p *Post) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to replace post: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoPost
	}
	return nil
}

// Delete removes the post with the given id
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoPost
	}
	return nil
}
