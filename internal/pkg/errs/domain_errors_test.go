//go:build unit

package errs_test

import (
	"testing"

	"visit-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	cases := []struct {
		name                                  string
		err                                   error
		validation, format, notFound, storage bool
	}{
		{name: "validation", err: errs.Validation("missing"), validation: true},
		{name: "format is also validation", err: errs.Formatf("bad %s", "date"), validation: true, format: true},
		{name: "not found", err: errs.NotFound("gone"), notFound: true},
		{name: "storage", err: errs.Mark(errs.New("boom"), errs.ErrStorage), storage: true},
		{name: "plain", err: errs.New("plain")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.validation, errs.IsValidation(tc.err))
			assert.Equal(t, tc.format, errs.IsFormat(tc.err))
			assert.Equal(t, tc.notFound, errs.IsNotFound(tc.err))
			assert.Equal(t, tc.storage, errs.IsStorage(tc.err))
		})
	}
}

func TestCategorySurvivesWrapping(t *testing.T) {
	err := errs.Wrapf(errs.Wrap(errs.Format("malformed"), "visitDate"), "request %d", 7)
	assert.True(t, errs.IsFormat(err))
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Contains(t, err.Error(), "visitDate: malformed")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("with stack"), 3)
	assert.Len(t, lines, 3)
	assert.Equal(t, "with stack", lines[0])
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
