package diag_test

import (
	"errors"
	"testing"

	"github.com/corazon/parsekit/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SummaryMatchesMessageByDefault(t *testing.T) {
	err := diag.New(diag.KindUnknownSymbol, "no symbol named %q", "Foo")

	assert.Equal(t, `no symbol named "Foo"`, err.Error())
	assert.Equal(t, `no symbol named "Foo"`, diag.Summary(err))
	assert.True(t, diag.Is(err, diag.KindUnknownSymbol))
	assert.False(t, diag.Is(err, diag.KindPrecondition))
}

func TestWrap_UnwrapsToOriginal(t *testing.T) {
	cause := errors.New("boom")
	err := diag.Wrap(diag.KindPrecondition, cause, "cannot proceed: %v", cause)

	require.True(t, diag.Is(err, diag.KindPrecondition))
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestSummary_FallsBackToPlainErrorForForeignErrors(t *testing.T) {
	plain := errors.New("not a diag error")
	assert.Equal(t, "not a diag error", diag.Summary(plain))
}

func TestIs_FalseForForeignErrors(t *testing.T) {
	plain := errors.New("not a diag error")
	assert.False(t, diag.Is(plain, diag.KindPrecondition))
}
