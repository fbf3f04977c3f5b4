package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/usecase"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

func TestWriteCompareError(t *testing.T) {
	h := &ComparisonHandler{logger: slog.New(slog.DiscardHandler)}

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name: "validation list maps to 422",
			err: valueobject.ValidationErrors{
				{Code: valueobject.CodeInvalidTerm, Message: "term months must be positive"},
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown criterion maps to 400",
			err:        fmt.Errorf("parse criterion: %w", valueobject.ErrUnknownCriterion),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty quote set maps to 400",
			err:        valueobject.ErrEmptyQuoteSet,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid currency maps to 400",
			err:        fmt.Errorf("%w: bad code", usecase.ErrInvalidCurrency),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected failure maps to opaque 500",
			err:        fmt.Errorf("database unavailable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/credit/compare", nil)
			rec := httptest.NewRecorder()

			h.writeCompareError(rec, req, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "database", "internal detail must not leak")
			}
		})
	}
}
