package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "not found uses error text",
			err:         fmt.Errorf("list rsvps: %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    helpers.ErrCodeNotFound,
			wantMessage: "list rsvps: not found",
		},
		{
			name:        "invalid input",
			err:         fmt.Errorf("%w: status is required", domain.ErrInvalidInput),
			wantStatus:  http.StatusBadRequest,
			wantCode:    helpers.ErrCodeBadRequest,
			wantMessage: "invalid input: status is required",
		},
		{
			name:        "constraint violation",
			err:         fmt.Errorf("create event: %w: fk", domain.ErrConstraintViolation),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    helpers.ErrCodeInternalError,
			wantMessage: "create event: constraint violation: fk",
		},
		{
			name:        "other",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    helpers.ErrCodeInternalError,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(testLogger, rr, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil), tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			_, apiErr := decodeEnvelope(t, rr.Body)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}
