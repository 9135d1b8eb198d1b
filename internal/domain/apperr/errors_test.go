package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("loading blog: %w", NotFound("Blog not found"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrForbidden))
}

func TestMessageOf_HidesInternalCause(t *testing.T) {
	err := Internal("failed to load session", errors.New("dial tcp: refused"))

	assert.Equal(t, "failed to load session", MessageOf(err))
	assert.Equal(t, "internal server error", MessageOf(errors.New("raw")))
	assert.Contains(t, err.Error(), "dial tcp")
}

func TestKind_HTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindUnauthenticated: http.StatusUnauthorized,
		KindForbidden:       http.StatusForbidden,
		KindNotFound:        http.StatusNotFound,
		KindConflict:        http.StatusConflict,
		KindInvalidInput:    http.StatusBadRequest,
		KindInternal:        http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.HTTPStatus(), kind)
	}
}
