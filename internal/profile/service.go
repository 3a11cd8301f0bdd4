package profile

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/collection"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/user"
	"github.com/redmonkez12/devconnector-api/internal/validation"
)

var (
	ErrNoProfileForUser   = apperr.New(apperr.NotFound, "There is no profile for this user")
	ErrProfileNotFound    = apperr.New(apperr.NotFound, "Profile not found")
	ErrExperienceNotFound = apperr.New(apperr.NotFound, "Experience not found")
	ErrEducationNotFound  = apperr.New(apperr.NotFound, "Education not found")
	ErrProfileExists      = apperr.New(apperr.Conflict, "Profile already exists")
)

var experiencePolicy = collection.Policy[Experience]{
	Key:     func(e Experience) string { return e.ID.Hex() },
	Missing: ErrExperienceNotFound,
}

var educationPolicy = collection.Policy[Education]{
	Key:     func(e Education) string { return e.ID.Hex() },
	Missing: ErrEducationNotFound,
}

// Store persists profile documents
type Store interface {
	FindByUser(ctx context.Context, userID string) (*Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)
	Insert(ctx context.Context, p *Profile) error
	Replace(ctx context.Context, p *Profile) error
	DeleteByUser(ctx context.Context, userID string) error
}

// UserDirectory resolves and removes the accounts profiles belong to
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RepoLister lists the public repositories of a GitHub user
type RepoLister interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}

// UpsertInput is the profile create/update payload. Nil fields were not sent.
type UpsertInput struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status"`
	GitHubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	YouTube        *string `json:"youtube"`
	Facebook       *string `json:"facebook"`
	Twitter        *string `json:"twitter"`
	Instagram      *string `json:"instagram"`
	LinkedIn       *string `json:"linkedin"`
}

// Patch converts the input into a profile patch.
func (in UpsertInput) Patch() Patch {
	p := Patch{
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		Status:         in.Status,
		GitHubUsername: in.GitHubUsername,
		Social: SocialPatch{
			YouTube:   in.YouTube,
			Facebook:  in.Facebook,
			Twitter:   in.Twitter,
			Instagram: in.Instagram,
			LinkedIn:  in.LinkedIn,
		},
	}
	if in.Skills != nil {
		p.Skills = ParseSkills(*in.Skills)
	}
	return p
}

// ExperienceInput is the payload for a new experience entry
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput is the payload for a new education entry
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Service handles profile business logic
type Service struct {
	profiles Store
	users    UserDirectory
	repos    RepoLister
	logger   *logging.Logger
	now      func() time.Time
}

func NewService(profiles Store, users UserDirectory, repos RepoLister, logger *logging.Logger) *Service {
	return &Service{
		profiles: profiles,
		users:    users,
		repos:    repos,
		logger:   logger,
		now:      time.Now,
	}
}

// Me returns the caller's own profile
func (s *Service) Me(ctx context.Context, callerID string) (*View, error) {
	p, err := s.load(ctx, callerID, ErrNoProfileForUser)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p)
}

// ByUser returns the profile owned by userID
func (s *Service) ByUser(ctx context.Context, userID string) (*View, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrProfileNotFound
	}
	p, err := s.load(ctx, userID, ErrProfileNotFound)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p)
}

// List returns every profile with its owner populated
func (s *Service) List(ctx context.Context) ([]View, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "failed to list profiles", err)
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		if id, err := uuid.Parse(p.User); err == nil {
			ids = append(ids, id)
		}
	}

	owners := map[uuid.UUID]*user.User{}
	if len(ids) > 0 {
		owners, err = s.users.GetByIDs(ctx, ids)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "failed to load profile owners", err)
		}
	}

	views := make([]View, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		v := View{Profile: p, User: user.Owner{ID: p.User}}
		if id, err := uuid.Parse(p.User); err == nil {
			if u, ok := owners[id]; ok {
				v.User = u.Owner()
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// Upsert creates the caller's profile or merges the input into the existing one
func (s *Service) Upsert(ctx context.Context, callerID string, in UpsertInput) (*Profile, error) {
	var check validation.Checker
	check.Required("status", deref(in.Status), "Status is required")

	// skills must still hold an entry once split and trimmed
	patch := in.Patch()
	check.Required("skills", strings.Join(patch.Skills, ","), "Skills is required")
	if err := check.Err(); err != nil {
		return nil, err
	}

	existing, err := s.profiles.FindByUser(ctx, callerID)
	if err != nil && !errors.Is(err, ErrNoProfile) {
		return nil, apperr.Wrap(apperr.Persistence, "failed to load profile", err)
	}

	if existing != nil {
		updated := patch.Apply(*existing)
		if err := s.profiles.Replace(ctx, &updated); err != nil {
			return nil, s.persistErr(err, ErrNoProfileForUser)
		}
		return &updated, nil
	}

	created := patch.Apply(Profile{
		User:       callerID,
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		Date:       s.now().UTC(),
	})
	if err := s.profiles.Insert(ctx, &created); err != nil {
		if errors.Is(err, ErrDuplicateProfile) {
			return nil, ErrProfileExists
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to create profile", err)
	}

	s.logger.Info("profile created", "user_id", callerID, "profile_id", created.ID.Hex())
	return &created, nil
}

// DeleteAccount removes the caller's profile, if any, and then the caller's account.
// Posts written by the caller are left in place.
func (s *Service) DeleteAccount(ctx context.Context, callerID string) error {
	id, err := user.ParseID(callerID)
	if err != nil {
		return ErrNoProfileForUser
	}

	if err := s.profiles.DeleteByUser(ctx, callerID); err != nil {
		return apperr.Wrap(apperr.Persistence, "failed to delete profile", err)
	}
	if err := s.users.Delete(ctx, id); err != nil && !errors.Is(err, user.ErrNotFound) {
		return apperr.Wrap(apperr.Persistence, "failed to delete user", err)
	}

	s.logger.Info("account deleted", "user_id", callerID)
	return nil
}

// AddExperience prepends an experience entry to the caller's profile
func (s *Service) AddExperience(ctx context.Context, callerID string, in ExperienceInput) (*Profile, error) {
	var check validation.Checker
	check.Required("title", strings.TrimSpace(in.Title), "Title is required")
	check.Required("company", strings.TrimSpace(in.Company), "Company is required")
	check.Required("from", strings.TrimSpace(in.From), "From date is required")
	if err := check.Err(); err != nil {
		return nil, err
	}
	from, to, err := parsePeriod(in.From, in.To)
	if err != nil {
		return nil, err
	}

	entry := Experience{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}

	return s.mutate(ctx, callerID, func(p *Profile) error {
		items, err := experiencePolicy.Add(p.Experience, entry)
		p.Experience = items
		return err
	})
}

// DeleteExperience removes the experience entry with the given id
func (s *Service) DeleteExperience(ctx context.Context, callerID, expID string) (*Profile, error) {
	return s.mutate(ctx, callerID, func(p *Profile) error {
		items, err := experiencePolicy.Remove(p.Experience, expID)
		p.Experience = items
		return err
	})
}

// AddEducation prepends an education entry to the caller's profile
func (s *Service) AddEducation(ctx context.Context, callerID string, in EducationInput) (*Profile, error) {
	var check validation.Checker
	check.Required("school", strings.TrimSpace(in.School), "School is required")
	check.Required("degree", strings.TrimSpace(in.Degree), "Degree is required")
	check.Required("fieldofstudy", strings.TrimSpace(in.FieldOfStudy), "Field of study is required")
	check.Required("from", strings.TrimSpace(in.From), "From date is required")
	if err := check.Err(); err != nil {
		return nil, err
	}
	from, to, err := parsePeriod(in.From, in.To)
	if err != nil {
		return nil, err
	}

	entry := Education{
		ID:           primitive.NewObjectID(),
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}

	return s.mutate(ctx, callerID, func(p *Profile) error {
		items, err := educationPolicy.Add(p.Education, entry)
		p.Education = items
		return err
	})
}

// DeleteEducation removes the education entry with the given id
func (s *Service) DeleteEducation(ctx context.Context, callerID, eduID string) (*Profile, error) {
	return s.mutate(ctx, callerID, func(p *Profile) error {
		items, err := educationPolicy.Remove(p.Education, eduID)
		p.Education = items
		return err
	})
}

// GitHubRepos lists the latest public repositories of a GitHub user
func (s *Service) GitHubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	return s.repos.ListRepos(ctx, strings.TrimSpace(username))
}

// mutate loads the caller's profile, applies fn and writes the whole document back.
// The profile is looked up by the caller's identity, so it is always the caller's own.
// Nothing is written when fn fails.
func (s *Service) mutate(ctx context.Context, callerID string, fn func(*Profile) error) (*Profile, error) {
	p, err := s.load(ctx, callerID, ErrNoProfileForUser)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	if err := s.profiles.Replace(ctx, p); err != nil {
		return nil, s.persistErr(err, ErrNoProfileForUser)
	}
	return p, nil
}

func (s *Service) load(ctx context.Context, userID string, missing error) (*Profile, error) {
	p, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			return nil, missing
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to load profile", err)
	}
	return p, nil
}

func (s *Service) view(ctx context.Context, p *Profile) (*View, error) {
	v := &View{Profile: p, User: user.Owner{ID: p.User}}

	id, err := uuid.Parse(p.User)
	if err != nil {
		return v, nil
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return v, nil
		}
		return nil, apperr.Wrap(apperr.Persistence, "failed to load profile owner", err)
	}
	v.User = u.Owner()
	return v, nil
}

func (s *Service) persistErr(err error, missing error) error {
	if errors.Is(err, ErrNoProfile) {
		return missing
	}
	return apperr.Wrap(apperr.Persistence, "failed to save profile", err)
}

func parsePeriod(fromRaw, toRaw string) (time.Time, *time.Time, error) {
	var check validation.Checker
	check.Date("from", strings.TrimSpace(fromRaw), "From date must be a valid date")
	if strings.TrimSpace(toRaw) != "" {
		check.Date("to", strings.TrimSpace(toRaw), "To date must be a valid date")
	}
	if err := check.Err(); err != nil {
		return time.Time{}, nil, err
	}

	from, _ := validation.ParseDate(strings.TrimSpace(fromRaw))
	if strings.TrimSpace(toRaw) == "" {
		return from, nil, nil
	}
	to, _ := validation.ParseDate(strings.TrimSpace(toRaw))
	return from, &to, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
