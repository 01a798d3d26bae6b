package db

import (
	"context"
	"time"
)

const createUser = `
INSERT INTO users (id, email, password_hash, name, avatar_url, bio, gender, phone, country, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateUserParams struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	AvatarUrl    string
	Bio          string
	Gender       string
	Phone        string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.Name,
		arg.AvatarUrl,
		arg.Bio,
		arg.Gender,
		arg.Phone,
		arg.Country,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getUserByEmail = `
SELECT id, email, password_hash, name, avatar_url, bio, gender, phone, country, created_at, updated_at
FROM users WHERE email = ?
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Name,
		&i.AvatarUrl,
		&i.Bio,
		&i.Gender,
		&i.Phone,
		&i.Country,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUserByID = `
SELECT id, email, password_hash, name, avatar_url, bio, gender, phone, country, created_at, updated_at
FROM users WHERE id = ?
`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Name,
		&i.AvatarUrl,
		&i.Bio,
		&i.Gender,
		&i.Phone,
		&i.Country,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateUserProfile = `
UPDATE users
SET name = ?, avatar_url = ?, bio = ?, gender = ?, phone = ?, country = ?, updated_at = ?
WHERE id = ?
`

type UpdateUserProfileParams struct {
	Name      string
	AvatarUrl string
	Bio       string
	Gender    string
	Phone     string
	Country   string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateUserProfile(ctx context.Context, arg UpdateUserProfileParams) error {
	_, err := q.db.ExecContext(ctx, updateUserProfile,
		arg.Name,
		arg.AvatarUrl,
		arg.Bio,
		arg.Gender,
		arg.Phone,
		arg.Country,
		arg.UpdatedAt,
		arg.ID,
	)
	return err
}
