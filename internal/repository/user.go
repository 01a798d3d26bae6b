package repository

import (
	"context"
	"time"

	"gametracker/internal/db"
	"gametracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type UserRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewUserRepository(queries *db.Queries, logger zerolog.Logger) *UserRepository {
	return &UserRepository{queries: queries, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return wrap("generate user id", err)
		}
		user.ID = id
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		AvatarUrl:    user.AvatarURL,
		Bio:          user.Bio,
		Gender:       user.Gender,
		Phone:        user.Phone,
		Country:      user.Country,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return wrap("create user", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, wrap("get user by email", err)
	}
	return mapUser(user), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := r.queries.GetUserByID(ctx, id)
	if err != nil {
		return nil, wrap("get user by id", err)
	}
	return mapUser(user), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	err := r.queries.UpdateUserProfile(ctx, db.UpdateUserProfileParams{
		Name:      user.Name,
		AvatarUrl: user.AvatarURL,
		Bio:       user.Bio,
		Gender:    user.Gender,
		Phone:     user.Phone,
		Country:   user.Country,
		UpdatedAt: time.Now(),
		ID:        user.ID,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to update profile")
		return wrap("update profile", err)
	}
	return nil
}

func mapUser(u db.User) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		AvatarURL:    u.AvatarUrl,
		Bio:          u.Bio,
		Gender:       u.Gender,
		Phone:        u.Phone,
		Country:      u.Country,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
