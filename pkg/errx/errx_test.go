package errx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alamane/outreach/pkg/errx"
	"github.com/stretchr/testify/assert"
)

var testErrors = errx.NewRegistry("TEST")

var (
	errBroken = testErrors.Register("BROKEN", errx.TypeExternal, "Something broke")
	errOther  = testErrors.Register("OTHER", errx.TypeValidation, "Something else")
)

func TestRegistry_NewCarriesCodeAndType(t *testing.T) {
	err := testErrors.New(errBroken)

	assert.Equal(t, "TEST_BROKEN", err.Code)
	assert.Equal(t, errx.TypeExternal, err.Type)
	assert.Equal(t, "[TEST_BROKEN] Something broke", err.Error())
}

func TestErrorsIs_MatchesRegisteredCodeThroughWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("send: %w", testErrors.NewWithCause(errBroken, cause))

	assert.ErrorIs(t, err, errBroken)
	assert.NotErrorIs(t, err, errOther)
	assert.ErrorIs(t, err, cause)
}

func TestIsType_WalksTheChain(t *testing.T) {
	inner := testErrors.New(errOther)
	outer := errx.Wrap(inner, "outer", errx.TypeInternal)

	assert.True(t, errx.IsType(outer, errx.TypeInternal))
	assert.True(t, errx.IsType(outer, errx.TypeValidation))
	assert.False(t, errx.IsType(outer, errx.TypeExternal))
	assert.False(t, errx.IsType(errors.New("plain"), errx.TypeInternal))
	assert.Equal(t, "TEST_OTHER", errx.CodeOf(outer))
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, errx.Wrap(nil, "nothing", errx.TypeInternal))
}

func TestRegister_DuplicateCodePanics(t *testing.T) {
	r := errx.NewRegistry("DUP")
	r.Register("SAME", errx.TypeInternal, "first")

	assert.Panics(t, func() { r.Register("SAME", errx.TypeInternal, "second") })
}
