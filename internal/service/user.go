package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/user-directory/internal/model"
	"github.com/maxviazov/user-directory/internal/repository"
)

// Options tunes the user service. Zero values fall back to sane defaults.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	// Now is the clock used for the birth date check; time.Now when nil.
	Now func() time.Time
}

// userService holds user use-case logic: validation + orchestration, no transport details.
type userService struct {
	repo repository.UserRepository
	opts Options
	log  zerolog.Logger
}

func NewUserService(repo repository.UserRepository, logger zerolog.Logger, opts Options) UserService {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = repository.DefaultPageSize
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = max(100, opts.DefaultPageSize)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	l := logger.With().Str("module", "service").Str("component", "user").Logger()
	return &userService{repo: repo, opts: opts, log: l}
}

func (s *userService) ListUsers(ctx context.Context, page, size int) (repository.PageResult[model.User], error) {
	size = s.normalizeSize(size)
	all, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list users failed")
		return repository.PageResult[model.User]{}, fmt.Errorf("list users: %w", err)
	}
	w := repository.Paginate(len(all), page, size)
	return repository.PageResult[model.User]{
		Items:  repository.Slice(all, w),
		Total:  w.Total,
		Window: w,
	}, nil
}

func (s *userService) normalizeSize(size int) int {
	if size <= 0 {
		return s.opts.DefaultPageSize
	}
	if size > s.opts.MaxPageSize {
		return s.opts.MaxPageSize
	}
	return size
}

func (s *userService) GetUser(ctx context.Context, id int64) (model.User, error) {
	if err := checkID(id); err != nil {
		return model.User{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, in UserInput) (model.User, error) {
	start := time.Now()
	u, err := s.validate(in)
	if err != nil {
		return model.User{}, err
	}

	out, err := s.repo.Create(ctx, u)
	if err != nil {
		s.log.Error().Err(err).Str("email", u.Email).Msg("create user failed")
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("user_id", out.ID).Msg("user created")
	return out, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, in UserInput) (model.User, error) {
	if err := checkID(id); err != nil {
		return model.User{}, err
	}
	u, err := s.validate(in)
	if err != nil {
		return model.User{}, err
	}

	out, err := s.repo.Update(ctx, id, u)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug().Int64("user_id", id).Msg("update target not found")
			return model.User{}, err
		}
		s.log.Error().Err(err).Int64("user_id", id).Msg("update user failed")
		return model.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return out, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", id).Msg("delete user failed")
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if !deleted {
		return repository.ErrNotFound
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) CountUsers(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *userService) validate(in UserInput) (model.User, error) {
	u, ferrs := validateUser(normalizeInput(in), s.opts.Now())
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Str("email_raw", in.Email).Msg("user validation failed")
		return model.User{}, err
	}
	return u, nil
}

func checkID(id int64) error {
	if id <= 0 {
		return NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return nil
}
