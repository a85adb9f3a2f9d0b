package blogservice

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blogtasks/internal/common"
)

func TestAppError(t *testing.T) {
	validationErr := common.ValidationError{Errors: map[string]string{"name": "must be provided"}}

	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage any
	}{
		{
			name:        "exists by id",
			err:         ErrExistsByID,
			wantStatus:  http.StatusConflict,
			wantMessage: "blog already exists by id",
		},
		{
			name:        "no blog by id",
			err:         ErrNoBlogByID,
			wantStatus:  http.StatusNotFound,
			wantMessage: "no blog by id",
		},
		{
			name:        "wrapped no blog by id",
			err:         fmt.Errorf("lookup: %w", ErrNoBlogByID),
			wantStatus:  http.StatusNotFound,
			wantMessage: "lookup: no blog by id",
		},
		{
			name:        "validation",
			err:         validationErr,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: map[string]string{"name": "must be provided"},
		},
		{
			name:        "infrastructure",
			err:         errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := NewAppError(tc.err)
			assert.Equal(t, tc.wantStatus, appErr.Status())
			assert.Equal(t, tc.wantMessage, appErr.Message())
			assert.Equal(t, tc.wantStatus == http.StatusInternalServerError, appErr.Internal())
			assert.Equal(t, tc.err, appErr.Unwrap())
		})
	}
}
