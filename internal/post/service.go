package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/auth"
	"github.com/redmonkez12/devconnector-api/internal/collection"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/user"
	"github.com/redmonkez12/devconnector-api/internal/validation"
)

var (
	ErrPostNotFound    = apperr.New(apperr.NotFound, "Post not found")
	ErrNotAuthorized   = apperr.New(apperr.NotAuthorized, "User not authorized")
	ErrAlreadyLiked    = apperr.New(apperr.Conflict, "Post already liked")
	ErrNotLiked        = apperr.New(apperr.Conflict, "Post has not yet been liked")
	ErrCommentNotFound = apperr.New(apperr.NotFound, "Comment does not exist")
	ErrAuthorNotFound  = apperr.New(apperr.NotFound, "User not found")
)

var likePolicy = collection.Policy[Like]{
	Key:              func(l Like) string { return l.User },
	RejectDuplicates: true,
	Duplicate:        ErrAlreadyLiked,
	Missing:          ErrNotLiked,
}

var commentPolicy = collection.Policy[Comment]{
	Key:     func(c Comment) string { return c.ID.Hex() },
	Missing: ErrCommentNotFound,
}

// Store persists post documents
type Store interface {
	FindByID(ctx context.Context, id string) (*Post, error)
	FindAll(ctx context.Context) ([]Post, error)
	Insert(ctx context.Context, p *Post) error
	Replace(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AuthorLookup resolves the author snapshot stored on posts and comments
type AuthorLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Service handles post business logic
type Service struct {
	posts  Store
	users  AuthorLookup
	logger *logging.Logger
	now    func() time.Time
}

func NewService(posts Store, users AuthorLookup, logger *logging.Logger) *Service {
	return &Service{
		posts:  posts,
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// Create publishes a post by the caller
func (s *Service) Create(ctx context.Context, callerID, text string) (*Post, error) {
	text, err := requireText(text)
	if err != nil {
		return nil, err
	}

	author, err := s.author(ctx, callerID)
	if err != nil {
		return nil, err
	}

	p := &Post{
		User:     callerID,
		Text:     text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []Like{},
		Comments: []Comment{},
		Date:     s.now().UTC(),
	}
	if err := s.posts.Insert(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "failed to create post", err)
	}

	s.logger.Info("post created", "user_id", callerID, "post_id", p.ID.Hex())
	return p, nil
}

// List returns every post, newest first
func (s *Service) List(ctx context.Context) ([]Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "failed to list posts", err)
	}
	return posts, nil
}

// Get returns one post
func (s *Service) Get(ctx context.Context, postID string) (*Post, error) {
	return s.load(ctx, postID)
}

// Delete removes a post. Only its owner may do so.
func (s *Service) Delete(ctx context.Context, callerID, postID string) error {
	p, err := s.load(ctx, postID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(p.User, callerID) {
		return ErrNotAuthorized
	}

	if err := s.posts.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, ErrNoPost) {
			return ErrPostNotFound
		}
		return apperr.Wrap(apperr.Persistence, "failed to delete post", err)
	}

	s.logger.Info("post removed", "user_id", callerID, "post_id", postID)
	return nil
}

// Like adds the caller's like and returns the resulting likes
func (s *Service) Like(ctx context.Context, callerID, postID string) ([]Like, error) {
	p, err := s.mutate(ctx, postID, func(p *Post) error {
		likes, err := likePolicy.Add(p.Likes, Like{ID: primitive.NewObjectID(), User: callerID})
		p.Likes = likes
		return err
	})
	if err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like and returns the resulting likes
func (s *Service) Unlike(ctx context.Context, callerID, postID string) ([]Like, error) {
	p, err := s.mutate(ctx, postID, func(p *Post) error {
		likes, err := likePolicy.Remove(p.Likes, callerID)
		p.Likes = likes
		return err
	})
	if err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Comment adds a comment by the caller and returns the resulting comments
func (s *Service) Comment(ctx context.Context, callerID, postID, text string) ([]Comment, error) {
	text, err := requireText(text)
	if err != nil {
		return nil, err
	}

	author, err := s.author(ctx, callerID)
	if err != nil {
		return nil, err
	}

	c := Comment{
		ID:     primitive.NewObjectID(),
		User:   callerID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   s.now().UTC(),
	}

	p, err := s.mutate(ctx, postID, func(p *Post) error {
		comments, err := commentPolicy.Add(p.Comments, c)
		p.Comments = comments
		return err
	})
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// DeleteComment removes a comment. Only the comment's author may do so, whoever owns the post.
func (s *Service) DeleteComment(ctx context.Context, callerID, postID, commentID string) ([]Comment, error) {
	p, err := s.mutate(ctx, postID, func(p *Post) error {
		c, err := commentPolicy.Find(p.Comments, commentID)
		if err != nil {
			return err
		}
		if !auth.CanMutate(c.User, callerID) {
			return ErrNotAuthorized
		}
		comments, err := commentPolicy.Remove(p.Comments, commentID)
		p.Comments = comments
		return err
	})
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// mutate loads a post, applies fn and writes the whole document back.
// Nothing is written when fn fails.
func (s *Service) mutate(ctx context.Context, postID string, fn func(*Post) error) (*Post, error) {
	p, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	if err := s.posts.Replace(ctx, p); err != nil {
		if errors.Is(err, ErrNoPost) {
			return nil, ErrPostNotFound
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to save post", err)
	}
	return p, nil
}

func (s *Service) load(ctx context.Context, postID string) (*Post, error) {
	p, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNoPost) {
			return nil, ErrPostNotFound
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to load post", err)
	}
	return p, nil
}

func (s *Service) author(ctx context.Context, callerID string) (*user.User, error) {
	id, err := user.ParseID(callerID)
	if err != nil {
		return nil, ErrAuthorNotFound
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to load author", err)
	}
	return u, nil
}

func requireText(text string) (string, error) {
	text = strings.TrimSpace(text)
	var check validation.Checker
	check.Required("text", text, "Text is required")
	if err := check.Err(); err != nil {
		return "", err
	}
	return text, nil
}
