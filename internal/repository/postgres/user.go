package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

const (
	insertUserQuery = `INSERT INTO users (id, email, password_hash, first_name, last_name, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at, updated_at`

	selectUserQuery = `SELECT id, email, password_hash, first_name, last_name, role, created_at, updated_at
FROM users
WHERE id = $1`

	selectUserByEmailQuery = `SELECT id, email, password_hash, first_name, last_name, role, created_at, updated_at
FROM users
WHERE email = $1`

	listUsersQuery = `SELECT id, email, password_hash, first_name, last_name, role, created_at, updated_at
FROM users
ORDER BY created_at, id`

	updateUserQuery = `UPDATE users
SET email = $2, first_name = $3, last_name = $4, role = $5, updated_at = now()
WHERE id = $1
RETURNING id, email, password_hash, first_name, last_name, role, created_at, updated_at`

	deleteUserQuery = `DELETE FROM users
WHERE id = $1
RETURNING id, email, password_hash, first_name, last_name, role, created_at, updated_at`

	missingUsersQuery = `SELECT w.id
FROM unnest($1::text[]) AS w(id)
WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = w.id)`
)

// CreateUser inserts a user with a server-generated identifier. Duplicate
// emails surface as entities.ErrEmailExists.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	user.ID = uuid.NewString()
	err := p.db.QueryRow(ctx, insertUserQuery,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmailExists
		}
		p.log.Errorw("failed to create user", "error", err, "email", user.Email)
		return nil, fmt.Errorf("create user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID)
	return &user, nil
}

// GetUser returns a user by id.
func (p *Postgres) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserQuery, id))
}

// GetUserByEmail returns a user by unique email.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserByEmailQuery, email))
}

// ListUsers returns all users ordered by creation time.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// UpdateUser overwrites the mutable profile columns of an existing user.
func (p *Postgres) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	res, err := p.scanUser(p.db.QueryRow(ctx, updateUserQuery,
		user.ID, user.Email, user.FirstName, user.LastName, user.Role,
	))
	if err != nil {
		return nil, err
	}

	p.log.Infow("user updated", "user_id", user.ID)
	return res, nil
}

// DeleteUser removes a user and returns the deleted row. References held by
// tasks or teams are not cleaned up.
func (p *Postgres) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	res, err := p.scanUser(p.db.QueryRow(ctx, deleteUserQuery, id))
	if err != nil {
		return nil, err
	}

	p.log.Infow("user deleted", "user_id", id)
	return res, nil
}

// MissingUsers returns the subset of ids with no matching user row.
func (p *Postgres) MissingUsers(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := p.db.Query(ctx, missingUsersQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("missing users: %w", err)
	}
	defer rows.Close()

	missing := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan missing user: %w", err)
		}
		missing = append(missing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate missing users: %w", err)
	}

	return missing, nil
}

func (p *Postgres) scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
