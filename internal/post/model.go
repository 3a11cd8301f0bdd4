package post

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like records that a user liked a post. A post holds at most one like per user.
type Like struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	User string             `bson:"user" json:"user"`
}

// Comment is a reply on a post with a snapshot of its author.
type Comment struct {
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
	User   string             `bson:"user" json:"user"`
	Text   string             `bson:"text" json:"text"`
	Name   string             `bson:"name" json:"name"`
	Avatar string             `bson:"avatar" json:"avatar"`
	Date   time.Time          `bson:"date" json:"date"`
}

type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User     string             `bson:"user" json:"user"`
	Text     string             `bson:"text" json:"text"`
	Name     string             `bson:"name" json:"name"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	Likes    []Like             `bson:"likes" json:"likes"`
	Comments []Comment          `bson:"comments" json:"comments"`
	Date     time.Time          `bson:"date" json:"date"`
}
