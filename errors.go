package datefmt

import (
	"errors"
	"log"
	"os"
)

var (
	// ErrInvalidDate is returned when the input is not a well-formed point in time.
	ErrInvalidDate = errors.New("datefmt: invalid date")

	// ErrLocaleDataMissing is returned when a provider has no name or composite pattern for a locale.
	ErrLocaleDataMissing = errors.New("datefmt: locale data missing")

	// ErrCompositeCycle marks a composite pattern that expands into another composite token.
	ErrCompositeCycle = errors.New("datefmt: composite pattern references a composite token")

	// ErrInvalidLocale is returned when a locale identifier cannot be parsed.
	ErrInvalidLocale = errors.New("datefmt: invalid locale")
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger redirects the informational messages of the package, pass nil to silence them. It is not synchronized and must be called before formatters are used concurrently.
func SetLogger(l *log.Logger) {
	logger = l
}

func logf(format string, args ...any) {
	if logger != nil {
		logger.Printf("INFO: datefmt: "+format, args...)
	}
}
