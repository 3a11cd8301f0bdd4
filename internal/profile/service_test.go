package profile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/user"
)

type memProfiles struct {
	mu     sync.Mutex
	byUser map[string]Profile
	writes int
}

func newMemProfiles() *memProfiles {
	return &memProfiles{byUser: map[string]Profile{}}
}

func (m *memProfiles) FindByUser(_ context.Context, userID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNoProfile
	}
	return &p, nil
}

func (m *memProfiles) FindAll(_ context.Context) ([]Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Profile{}
	for _, p := range m.byUser {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProfiles) Insert(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUser[p.User]; ok {
		return ErrDuplicateProfile
	}
	p.ID = primitive.NewObjectID()
	m.byUser[p.User] = *p
	m.writes++
	return nil
}

func (m *memProfiles) Replace(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUser[p.User]; !ok {
		return ErrNoProfile
	}
	m.byUser[p.User] = *p
	m.writes++
	return nil
}

func (m *memProfiles) DeleteByUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
	return nil
}

type memDirectory struct {
	users   map[uuid.UUID]*user.User
	deleted []uuid.UUID
}

func (d *memDirectory) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := d.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (d *memDirectory) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*user.User, error) {
	out := map[uuid.UUID]*user.User{}
	for _, id := range ids {
		if u, ok := d.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (d *memDirectory) Delete(_ context.Context, id uuid.UUID) error {
	delete(d.users, id)
	d.deleted = append(d.deleted, id)
	return nil
}

type stubRepos struct {
	username string
}

func (s *stubRepos) ListRepos(_ context.Context, username string) (json.RawMessage, error) {
	s.username = username
	return json.RawMessage(`[{"name":"repo"}]`), nil
}

func discardLogger() *logging.Logger {
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fixture struct {
	svc      *Service
	profiles *memProfiles
	users    *memDirectory
	repos    *stubRepos
	ana      *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ana := &user.User{ID: uuid.New(), Name: "Ana", Avatar: "https://avatar/ana"}
	f := &fixture{
		profiles: newMemProfiles(),
		users:    &memDirectory{users: map[uuid.UUID]*user.User{ana.ID: ana}},
		repos:    &stubRepos{},
		ana:      ana,
	}
	f.svc = NewService(f.profiles, f.users, f.repos, discardLogger())
	return f
}

func (f *fixture) createProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := f.svc.Upsert(context.Background(), f.ana.ID.String(), UpsertInput{Status: strPtr("Dev"), Skills: strPtr("js, go")})
	require.NoError(t, err)
	return p
}

func TestUpsertCreatesThenMerges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createProfile(t)
	assert.Equal(t, f.ana.ID.String(), created.User)
	assert.Equal(t, []string{"js", "go"}, created.Skills)
	assert.Empty(t, created.Experience)

	updated, err := f.svc.Upsert(ctx, f.ana.ID.String(), UpsertInput{
		Status:  strPtr("Lead"),
		Skills:  strPtr("go"),
		Company: strPtr("Acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Lead", updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, []string{"go"}, updated.Skills)
	assert.Len(t, f.profiles.byUser, 1)
}

func TestUpsertValidatesBeforeStoreAccess(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Upsert(context.Background(), f.ana.ID.String(), UpsertInput{Skills: strPtr(" ")})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.Validation, appErr.Kind)
	assert.Equal(t, []apperr.Issue{
		{Msg: "Status is required", Param: "status"},
		{Msg: "Skills is required", Param: "skills"},
	}, appErr.Issues)
	assert.Zero(t, f.profiles.writes)
}

func TestMeAndByUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Me(ctx, f.ana.ID.String())
	assert.ErrorIs(t, err, ErrNoProfileForUser)

	f.createProfile(t)

	view, err := f.svc.Me(ctx, f.ana.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.Owner{ID: f.ana.ID.String(), Name: "Ana", Avatar: "https://avatar/ana"}, view.User)

	_, err = f.svc.ByUser(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = f.svc.ByUser(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrProfileNotFound)

	view, err = f.svc.ByUser(ctx, f.ana.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Dev", view.Status)
}

func TestViewJSONPopulatesOwner(t *testing.T) {
	f := newFixture(t)
	f.createProfile(t)

	views, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)

	raw, err := json.Marshal(views[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	owner, ok := decoded["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", owner["name"])
	assert.Equal(t, "Dev", decoded["status"])
}

func TestExperienceAddAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	caller := f.ana.ID.String()
	f.createProfile(t)

	p, err := f.svc.AddExperience(ctx, caller, ExperienceInput{Title: "Eng", Company: "X", From: "2020-01-01"})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Eng", p.Experience[0].Title)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), p.Experience[0].From)
	assert.Nil(t, p.Experience[0].To)

	p, err = f.svc.AddExperience(ctx, caller, ExperienceInput{Title: "Lead", Company: "Y", From: "2022-01-01", To: "2023-06-30"})
	require.NoError(t, err)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Lead", p.Experience[0].Title)
	firstID := p.Experience[1].ID.Hex()

	_, err = f.svc.DeleteExperience(ctx, caller, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrExperienceNotFound)
	stored, _ := f.profiles.FindByUser(ctx, caller)
	assert.Len(t, stored.Experience, 2)

	p, err = f.svc.DeleteExperience(ctx, caller, firstID)
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Lead", p.Experience[0].Title)
}

func TestExperienceValidation(t *testing.T) {
	f := newFixture(t)
	f.createProfile(t)

	_, err := f.svc.AddExperience(context.Background(), f.ana.ID.String(), ExperienceInput{Title: "Eng", Company: "X", From: "yesterday"})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "from", appErr.Issues[0].Param)
}

func TestExperienceWithoutProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddExperience(context.Background(), f.ana.ID.String(), ExperienceInput{Title: "Eng", Company: "X", From: "2020-01-01"})
	assert.ErrorIs(t, err, ErrNoProfileForUser)
}

func TestEducationAddAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	caller := f.ana.ID.String()
	f.createProfile(t)

	_, err := f.svc.AddEducation(ctx, caller, EducationInput{School: "MIT", Degree: "BSc", From: "2015-09-01"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "fieldofstudy", appErr.Issues[0].Param)

	p, err := f.svc.AddEducation(ctx, caller, EducationInput{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01", Current: true})
	require.NoError(t, err)
	require.Len(t, p.Education, 1)

	_, err = f.svc.DeleteEducation(ctx, caller, "bogus")
	assert.ErrorIs(t, err, ErrEducationNotFound)

	p, err = f.svc.DeleteEducation(ctx, caller, p.Education[0].ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, p.Education)
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createProfile(t)

	require.NoError(t, f.svc.DeleteAccount(ctx, f.ana.ID.String()))

	assert.Empty(t, f.profiles.byUser)
	assert.Equal(t, []uuid.UUID{f.ana.ID}, f.users.deleted)
}

func TestGitHubReposTrimsUsername(t *testing.T) {
	f := newFixture(t)

	repos, err := f.svc.GitHubRepos(context.Background(), " octocat ")
	require.NoError(t, err)
	assert.Equal(t, "octocat", f.repos.username)
	assert.JSONEq(t, `[{"name":"repo"}]`, string(repos))
}

func TestUpsertRejectsSkillsWithoutEntries(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Upsert(context.Background(), f.ana.ID.String(), UpsertInput{Status: strPtr("Dev"), Skills: strPtr(" , ,")})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []apperr.Issue{{Msg: "Skills is required", Param: "skills"}}, appErr.Issues)
	assert.Zero(t, f.profiles.writes)
}

func TestDeleteAccountWithoutProfile(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.DeleteAccount(context.Background(), f.ana.ID.String()))

	assert.Equal(t, []uuid.UUID{f.ana.ID}, f.users.deleted)
}
