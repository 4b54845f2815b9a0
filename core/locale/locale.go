package locale

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// Default is the fallback language used when nothing else is configured.
const Default = "fr"

var (
	// ErrUnsupported is returned when changing to a language outside the
	// store's supported set.
	ErrUnsupported = errors.New("unsupported language")
	// ErrInvalidTag is returned when a language code cannot be parsed.
	ErrInvalidTag = errors.New("invalid language tag")
)

// Store is a thread-safe holder of the current UI locale.
type Store struct {
	mu        sync.RWMutex
	current   string
	supported map[string]struct{}
}

// NewStore creates a locale store with the given fallback as the initial
// current locale. The fallback is always part of the supported set.
func NewStore(fallback string, supported ...string) (*Store, error) {
	norm, err := Normalize(fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback locale %q: %w", fallback, err)
	}

	s := &Store{
		current:   norm,
		supported: map[string]struct{}{norm: {}},
	}
	for _, lang := range supported {
		code, err := Normalize(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid supported locale %q: %w", lang, err)
		}
		s.supported[code] = struct{}{}
	}
	return s, nil
}

// Current returns the current two-letter locale code.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Change sets the current locale. The code is normalized before validation;
// unsupported languages are rejected without mutating the store.
func (s *Store) Change(code string) error {
	norm, err := Normalize(code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.supported[norm]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupported, norm)
	}
	s.current = norm
	return nil
}

// Supported reports whether the given code belongs to the supported set.
func (s *Store) Supported(code string) bool {
	norm, err := Normalize(code)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.supported[norm]
	return ok
}

// Normalize reduces a language tag to its two-letter base form, e.g.
// "en-US" -> "en". Returns ErrInvalidTag for unparseable input.
func Normalize(tag string) (string, error) {
	if tag == "" {
		return "", ErrInvalidTag
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	base, _ := parsed.Base()
	return base.String(), nil
}
