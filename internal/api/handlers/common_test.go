package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
		expectedField string
	}{
		{"validation", fmt.Errorf("validation failed: %w", apperrors.ErrInvalidTimeRange), http.StatusBadRequest, "end time must be after start time", "end_time"},
		{"not found", apperrors.ErrEventNotFound, http.StatusNotFound, "event not found", ""},
		{"conflict", apperrors.ErrAccessCodeExists, http.StatusConflict, "access code already exists in the studio", ""},
		{"invalid transition", &apperrors.InvalidTransitionError{From: "completed", To: "ongoing"}, http.StatusUnprocessableEntity, "invalid status transition", ""},
		{"authentication", apperrors.ErrInvalidToken, http.StatusUnauthorized, "invalid identity token", ""},
		{"authorization", apperrors.ErrForeignStudio, http.StatusForbidden, "another studio", ""},
		{"gallery access", apperrors.ErrGalleryAccessDenied, http.StatusForbidden, "access to gallery denied", ""},
		{"storage", &apperrors.StorageError{Op: "delete event", Err: errors.New("disk full")}, http.StatusInternalServerError, "Failed to do thing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := testutils.CreateTestGinContext()
			c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err, "Failed to do thing")

			assert.Equal(t, tt.expectedCode, recorder.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.expectedError)
			assert.Equal(t, tt.expectedField, resp.Field)
		})
	}
}

func TestRequireCaller(t *testing.T) {
	c, recorder := testutils.CreateTestGinContext()

	_, ok := requireCaller(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestParseOptionalUUIDQuery(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		c, _ := testutils.CreateTestGinContext()
		c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

		id, ok := parseOptionalUUIDQuery(c, "ceremony_id")
		assert.True(t, ok)
		assert.Nil(t, id)
	})

	t.Run("malformed", func(t *testing.T) {
		c, recorder := testutils.CreateTestGinContext()
		c.Request, _ = http.NewRequest(http.MethodGet, "/?ceremony_id=nope", nil)

		_, ok := parseOptionalUUIDQuery(c, "ceremony_id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
