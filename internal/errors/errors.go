package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// MissingFieldsError is returned when required keys are absent from the request.
type MissingFieldsError struct {
	Fields         []string
	ReceivedFields []string
	ExpectedFields []string
}

func (m *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: [%s]", strings.Join(m.Fields, ", "))
}

// EmptyFieldsError is returned when required keys are present but blank or null.
type EmptyFieldsError struct {
	Fields []string
}

func (m *EmptyFieldsError) Error() string {
	return fmt.Sprintf("Empty required fields: [%s]", strings.Join(m.Fields, ", "))
}

type ModelUnavailableError struct {
	ModelLoaded    bool
	EncodersLoaded bool
}

func (m *ModelUnavailableError) Error() string {
	return "Model not loaded"
}

// Detail names the artifacts that are missing.
func (m *ModelUnavailableError) Detail() string {
	var missing []string
	if !m.ModelLoaded {
		missing = append(missing, "classifier")
	}
	if !m.EncodersLoaded {
		missing = append(missing, "encoders")
	}
	return fmt.Sprintf("Model files are missing (%s). Please ensure the model artifacts are present at startup.",
		strings.Join(missing, ", "))
}

type CoercionError struct {
	Field  string
	Value  string
	Target string
}

func (m *CoercionError) Error() string {
	return fmt.Sprintf("invalid literal for %s field %s: %q", m.Target, m.Field, m.Value)
}

type EncodingError struct {
	Column string
	Value  string
}

func (m *EncodingError) Error() string {
	return fmt.Sprintf("column %s contains previously unseen label: %q", m.Column, m.Value)
}

type FeatureTypeError struct {
	Column string
	Value  interface{}
}

func (m *FeatureTypeError) Error() string {
	return fmt.Sprintf("could not convert %T to float for feature %s: '%v'", m.Value, m.Column, m.Value)
}

type UnexpectedLabelError struct {
	Label int
}

func (m *UnexpectedLabelError) Error() string {
	return fmt.Sprintf("classifier returned unexpected label %d", m.Label)
}

// StatusCode maps an error to the http status it is reported with.
func StatusCode(err error) int {
	var missing *MissingFieldsError
	var empty *EmptyFieldsError
	if goerrors.As(err, &missing) || goerrors.As(err, &empty) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
