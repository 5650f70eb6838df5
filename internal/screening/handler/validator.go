package handler

import (
	"github.com/rs/zerolog/log"
	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
	"github.com/shubhamkumar755/AutismS/pkg/set"
)

type fieldValidator struct {
	required []string
	known    *set.ThreadSafeSet
}

func newFieldValidator(required []string) *fieldValidator {
	return &fieldValidator{
		required: append([]string(nil), required...),
		known:    set.NewStringSet(required...),
	}
}

// Validate checks raw against the required field list. Missing fields are
// reported before empty ones and short-circuit the empty check.
func (v *fieldValidator) Validate(raw RawRequest) error {
	received := raw.Keys()
	var unexpected []string
	for _, field := range received {
		if !v.known.Contains(field) {
			unexpected = append(unexpected, field)
		}
	}
	log.Debug().Strs("received", received).Strs("expected", v.required).Strs("unexpected", unexpected).
		Msg("Validating request fields")

	var missing []string
	for _, field := range v.required {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		log.Info().Strs("missing", missing).Msg("Missing fields")
		return &apperrors.MissingFieldsError{
			Fields:         missing,
			ReceivedFields: received,
			ExpectedFields: v.required,
		}
	}

	var empty []string
	for _, field := range v.required {
		if raw[field] == "" {
			empty = append(empty, field)
		}
	}
	if len(empty) > 0 {
		log.Info().Strs("empty", empty).Msg("Empty fields")
		return &apperrors.EmptyFieldsError{Fields: empty}
	}
	return nil
}
