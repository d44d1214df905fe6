package domain

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	dup := ConflictError{Resource: "username", Msg: "already exists", Err: ErrDuplicateUsername}
	assert.True(t, IsConflict(dup))
	assert.True(t, errors.Is(dup, ErrDuplicateUsername))
	assert.Equal(t, "username conflict: already exists", dup.Error())

	rng := ValidationError{Field: "endDate", Msg: "must be after startDate", Err: ErrInvalidDateRange}
	assert.True(t, IsValidation(rng))
	assert.True(t, errors.Is(rng, ErrInvalidDateRange))
	assert.False(t, errors.Is(rng, ErrInvalidDate))

	nf := NotFoundError{Resource: "car", Err: sql.ErrNoRows}
	assert.True(t, IsNotFound(nf))
	assert.True(t, errors.Is(nf, sql.ErrNoRows))
	assert.Equal(t, "car not found", nf.Error())
}

func TestUnauthorizedError(t *testing.T) {
	err := UnauthorizedError{Required: "admin", Actual: "agent"}
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsInvalidCredentials(err))
	assert.Equal(t, "unauthorized: requires role admin", err.Error())
	assert.Equal(t, "unauthorized", UnauthorizedError{}.Error())
}

func TestRequestContextAuthenticated(t *testing.T) {
	assert.False(t, RequestContext{}.Authenticated())
	assert.False(t, RequestContext{UserID: 1}.Authenticated())
	assert.True(t, RequestContext{UserID: 1, Username: "admin", Role: "admin"}.Authenticated())
}
