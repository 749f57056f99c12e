package errs

import cr "github.com/cockroachdb/errors"

// Category sentinels. Errors returned by the usecase layer are marked with
// exactly one of these (format errors additionally carry ErrValidation).
var (
	ErrValidation = cr.New("validation error")
	ErrFormat     = cr.New("format error")
	ErrNotFound   = cr.New("not found")
	ErrStorage    = cr.New("storage error")
)

// Validation reports a required value that is absent or empty.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}

// Format reports a value that is present but malformed.
func Format(msg string) error {
	return Mark(Mark(New(msg), ErrFormat), ErrValidation)
}

func Formatf(format string, args ...any) error {
	return Mark(Mark(Newf(format, args...), ErrFormat), ErrValidation)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func IsValidation(err error) bool { return cr.Is(err, ErrValidation) }
func IsFormat(err error) bool     { return cr.Is(err, ErrFormat) }
func IsNotFound(err error) bool   { return cr.Is(err, ErrNotFound) }
func IsStorage(err error) bool    { return cr.Is(err, ErrStorage) }
