package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/nyumba/nyumba-api/internal/model"
	"github.com/nyumba/nyumba-api/internal/utils"
)

// UserRepo provides access to the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

const userColumns = "id,email,password_hash,full_name,phone,role,is_active,created_at,updated_at"

// Create inserts a user with a generated uuid and returns the ID.
func (r *UserRepo) Create(ctx context.Context, email, password, fullName, phone string, role model.Role, cost int) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, full_name, phone, role) VALUES (?,?,?,?,?,?)",
		id, email, hash, fullName, phone, string(role))
	if err != nil {
		// MySQL duplicate-key error for the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return "", ErrEmailExists
		}
		return "", err
	}
	return id, nil
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	var phone sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &phone, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if phone.Valid {
		u.Phone = phone.String
	}
	return u, err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// UpdateProfile changes the mutable profile fields (full name, phone).
// Email, role and password are managed elsewhere.
func (r *UserRepo) UpdateProfile(ctx context.Context, id, fullName, phone string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET full_name=?, phone=?, updated_at=NOW() WHERE id=?",
		fullName, phone, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean an identical value; confirm existence.
		var exists int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=?", id).Scan(&exists); err != nil {
			return err
		}
	}
	return nil
}
