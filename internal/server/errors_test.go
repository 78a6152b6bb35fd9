package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/portfolioai/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "email conflict", err: &ErrEmailAlreadyExists{Email: "a@b.com"}, want: http.StatusConflict},
		{name: "invalid credentials", err: &ErrInvalidCredentials{}, want: http.StatusUnauthorized},
		{name: "not found", err: &ErrNotFound{Kind: "portfolio", ID: uuid.New()}, want: http.StatusNotFound},
		{name: "validation", err: &ErrValidation{Field: "email", Message: "required"}, want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	req := &types.RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "secret123"}
	err := req.Validate()
	assert.Equal(t, "validation error: Email - email", validationMessage(err))

	assert.Equal(t, "validation error: invalid request", validationMessage(errors.New("boom")))
}
