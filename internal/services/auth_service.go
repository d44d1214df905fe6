package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService registers accounts, checks credentials and gates actions by role.
type AuthService struct {
	DB        *sql.DB
	RequestID string
	// HashCost overrides bcrypt.DefaultCost when non-zero.
	HashCost int
}

func (s AuthService) users() repositories.UserRepository {
	return repositories.UserRepository{DB: s.DB}
}

func (s AuthService) hashPassword(password string) (string, error) {
	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register creates an account with a bcrypt-hashed password.
func (s AuthService) Register(ctx context.Context, username, password, role string) (models.User, error) {
	username = utils.TrimOrEmpty(username)
	if username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "required"}
	}
	if password == "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "required"}
	}
	if !models.ValidRole(role) {
		return models.User{}, domain.ValidationError{Field: "role", Msg: fmt.Sprintf("unknown role %q", role)}
	}

	_, err := s.users().GetByUsername(ctx, username)
	switch {
	case err == nil:
		return models.User{}, duplicateUsername()
	case !domain.IsNotFound(err):
		return models.User{}, domain.InternalError{Err: err}
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	u, err := s.users().Create(ctx, models.User{Username: username, PasswordHash: hash, Role: role})
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return models.User{}, duplicateUsername()
		}
		return models.User{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d role=%s", u.ID, u.Role))
	return u, nil
}

func duplicateUsername() error {
	return domain.ConflictError{Resource: "username", Msg: "already exists", Err: domain.ErrDuplicateUsername}
}

// Authenticate returns the account matching username and password. Unknown
// users and wrong passwords fail the same way.
func (s AuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.users().GetByUsername(ctx, utils.TrimOrEmpty(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.ErrInvalidCredentials
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.User{}, domain.ErrInvalidCredentials
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return u, nil
}

// Authorize fails with Unauthorized unless the session carries requiredRole.
func (s AuthService) Authorize(rc domain.RequestContext, requiredRole string) error {
	if !rc.Authenticated() || rc.Role != requiredRole {
		return domain.UnauthorizedError{Required: requiredRole, Actual: rc.Role}
	}
	return nil
}

// requireAdmin authorizes rc as admin and re-reads the account, so a deleted
// or demoted admin loses access before the session token expires.
func (s AuthService) requireAdmin(ctx context.Context, rc domain.RequestContext) error {
	if err := s.Authorize(rc, models.RoleAdmin); err != nil {
		return err
	}
	u, err := s.users().GetByUsername(ctx, rc.Username)
	switch {
	case domain.IsNotFound(err):
		return domain.UnauthorizedError{Required: models.RoleAdmin, Actual: rc.Role}
	case err != nil:
		return domain.InternalError{Err: err}
	case u.ID != int64(rc.UserID) || u.Role != models.RoleAdmin:
		return domain.UnauthorizedError{Required: models.RoleAdmin, Actual: u.Role}
	}
	return nil
}

// ListAccounts backs the admin dashboard.
func (s AuthService) ListAccounts(ctx context.Context, rc domain.RequestContext) ([]models.User, error) {
	if err := s.requireAdmin(ctx, rc); err != nil {
		return nil, err
	}
	list, err := s.users().List(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// DeleteAccount removes targetID on behalf of an admin session.
func (s AuthService) DeleteAccount(ctx context.Context, rc domain.RequestContext, targetID int64) error {
	if err := s.requireAdmin(ctx, rc); err != nil {
		return err
	}
	if targetID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if err := s.users().Delete(ctx, targetID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "delete_user", fmt.Sprintf("actor=%d target=%d", rc.UserID, targetID))
	return nil
}
