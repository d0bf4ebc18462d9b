// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

// Register creates a user from the supplied profile, hashes the password and
// issues a session token bound to the new user id.
func (u *Usecase) Register(ctx context.Context, user entities.User, password string) (*entities.Credentials, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", entities.ErrInvalidArgument)
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	if !validRole(user.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, user.Role)
	}

	hash, err := u.creds.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	created, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := u.creds.IssueToken(created.ID)
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", created.ID)
	return &entities.Credentials{User: *created, Token: token}, nil
}

// Login verifies email/password and returns a session token. Unknown email
// and wrong password fail identically.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", entities.ErrAuthentication
		}
		return "", err
	}
	if !u.creds.VerifyPassword(password, user.PasswordHash) {
		return "", entities.ErrAuthentication
	}

	return u.creds.IssueToken(user.ID)
}

// ListUsers returns the full user sequence; windowing is the caller's concern.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListUsers(ctx)
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, id)
}

// UpdateUser applies a partial profile update to an existing user.
func (u *Usecase) UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil {
		existing.Email = *upd.Email
	}
	if upd.FirstName != nil {
		existing.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		existing.LastName = *upd.LastName
	}
	if upd.Role != nil {
		if !validRole(*upd.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, *upd.Role)
		}
		existing.Role = *upd.Role
	}
	if existing.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateUser(ctx, *existing)
}

// DeleteUser removes a user and returns the deleted entity. References to the
// user held by tasks or teams stay behind.
func (u *Usecase) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteUser(ctx, id)
}
