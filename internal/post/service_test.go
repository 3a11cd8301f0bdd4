package post

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/user"
)

type memPosts struct {
	mu     sync.Mutex
	byID   map[string]Post
	writes int
}

func newMemPosts() *memPosts {
	return &memPosts{byID: map[string]Post{}}
}

func (m *memPosts) FindByID(_ context.Context, id string) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNoPost
	}
	return &p, nil
}

func (m *memPosts) FindAll(_ context.Context) ([]Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Post{}
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPosts) Insert(_ context.Context, p *Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.byID[p.ID.Hex()] = *p
	m.writes++
	return nil
}

func (m *memPosts) Replace(_ context.Context, p *Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID.Hex()]; !ok {
		return ErrNoPost
	}
	m.byID[p.ID.Hex()] = *p
	m.writes++
	return nil
}

func (m *memPosts) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id.Hex()]; !ok {
		return ErrNoPost
	}
	delete(m.byID, id.Hex())
	return nil
}

type memAuthors map[uuid.UUID]*user.User

func (m memAuthors) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := m[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func discardLogger() *logging.Logger {
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fixture struct {
	svc   *Service
	posts *memPosts
	ana   string
	bob   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ana := &user.User{ID: uuid.New(), Name: "Ana", Avatar: "https://avatar/ana"}
	bob := &user.User{ID: uuid.New(), Name: "Bob", Avatar: "https://avatar/bob"}
	posts := newMemPosts()
	return &fixture{
		svc:   NewService(posts, memAuthors{ana.ID: ana, bob.ID: bob}, discardLogger()),
		posts: posts,
		ana:   ana.ID.String(),
		bob:   bob.ID.String(),
	}
}

func (f *fixture) createPost(t *testing.T, callerID string) *Post {
	t.Helper()
	p, err := f.svc.Create(context.Background(), callerID, "hello world")
	require.NoError(t, err)
	return p
}

func TestCreateSnapshotsAuthor(t *testing.T) {
	f := newFixture(t)

	p := f.createPost(t, f.ana)

	assert.Equal(t, f.ana, p.User)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "https://avatar/ana", p.Avatar)
	assert.Empty(t, p.Likes)
	assert.Empty(t, p.Comments)
}

func TestCreateRequiresText(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.ana, "  ")

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Zero(t, f.posts.writes)
}

func TestGetMissingPost(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, f.ana)

	err := f.svc.Delete(ctx, f.bob, p.ID.Hex())
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Len(t, f.posts.byID, 1)

	require.NoError(t, f.svc.Delete(ctx, f.ana, p.ID.Hex()))
	assert.Empty(t, f.posts.byID)
}

func TestLikeTwiceFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, f.ana)

	likes, err := f.svc.Like(ctx, f.bob, p.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 1)

	_, err = f.svc.Like(ctx, f.bob, p.ID.Hex())
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Equal(t, 400, apperr.KindOf(err).Status())

	stored, _ := f.posts.FindByID(ctx, p.ID.Hex())
	assert.Len(t, stored.Likes, 1)
}

func TestLikesArePrependedAndUnlikeKeepsOthers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, f.ana)

	_, err := f.svc.Like(ctx, f.ana, p.ID.Hex())
	require.NoError(t, err)
	likes, err := f.svc.Like(ctx, f.bob, p.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, f.bob, likes[0].User)

	likes, err = f.svc.Unlike(ctx, f.bob, p.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, f.ana, likes[0].User)

	_, err = f.svc.Unlike(ctx, f.bob, p.ID.Hex())
	assert.ErrorIs(t, err, ErrNotLiked)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, f.ana)

	comments, err := f.svc.Comment(ctx, f.bob, p.ID.Hex(), "nice post")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0].Name)
	commentID := comments[0].ID.Hex()

	_, err = f.svc.DeleteComment(ctx, f.ana, p.ID.Hex(), commentID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = f.svc.DeleteComment(ctx, f.bob, p.ID.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrCommentNotFound)

	comments, err = f.svc.DeleteComment(ctx, f.bob, p.ID.Hex(), commentID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeleteCommentRemovesByCommentID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, f.ana)

	_, err := f.svc.Comment(ctx, f.bob, p.ID.Hex(), "first")
	require.NoError(t, err)
	comments, err := f.svc.Comment(ctx, f.bob, p.ID.Hex(), "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)

	comments, err = f.svc.DeleteComment(ctx, f.bob, p.ID.Hex(), comments[1].ID.Hex())
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second", comments[0].Text)
}
