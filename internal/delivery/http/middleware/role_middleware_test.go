package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func roleRequest(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/familia", nil)
	if role == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequirePatient(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows patient", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		RequirePatient(next).ServeHTTP(rec, roleRequest(entity.RolePatient))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects professional", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		RequirePatient(next).ServeHTTP(rec, roleRequest(entity.RoleProfessional))
		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects missing role", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		RequirePatient(next).ServeHTTP(rec, roleRequest(""))
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireProfessional(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireProfessional(next).ServeHTTP(rec, roleRequest(entity.RoleProfessional))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	RequireProfessional(next).ServeHTTP(rec, roleRequest(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
