package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("No checks", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz().ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("All checks pass", func(t *testing.T) {
		ok := HealthCheckFunc(func(context.Context) error { return nil })
		w := httptest.NewRecorder()
		HandleReadyz(ok, ok).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("A check fails", func(t *testing.T) {
		ok := HealthCheckFunc(func(context.Context) error { return nil })
		bad := HealthCheckFunc(func(context.Context) error { return errors.New("prices not loaded") })
		w := httptest.NewRecorder()
		HandleReadyz(ok, bad).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"prices not loaded"`)
	})

	t.Run("Checks see a deadline", func(t *testing.T) {
		var hadDeadline bool
		check := HealthCheckFunc(func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		})
		HandleReadyz(check).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/readyz", nil))
		assert.True(t, hadDeadline)
	})
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}
