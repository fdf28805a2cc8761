package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/and161185/notes-api/internal/errs"
)

// MaxTitleLen is the maximum title length in characters, after trimming.
const MaxTitleLen = 200

var (
	// ErrTitleRequired is returned when a title is missing or blank.
	ErrTitleRequired = fmt.Errorf("%w: title is required", errs.ErrValidation)
	// ErrTitleTooLong is returned when a title exceeds MaxTitleLen.
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds %d characters", errs.ErrValidation, MaxTitleLen)
	// ErrTitleInvalid is returned for titles Postgres text cannot store: NUL or invalid UTF-8.
	ErrTitleInvalid = fmt.Errorf("%w: title contains invalid characters", errs.ErrValidation)
)

func normalizeTitle(s string) (string, error) {
	if !utf8.ValidString(s) || strings.ContainsRune(s, 0) {
		return "", ErrTitleInvalid
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(t) > MaxTitleLen {
		return "", ErrTitleTooLong
	}
	return t, nil
}

// normalizeTitlePtr validates an optional title; nil stays nil.
func normalizeTitlePtr(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t, err := normalizeTitle(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
