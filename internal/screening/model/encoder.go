package model

import (
	"fmt"
	"sort"

	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
)

// EncoderArtifact is the serialized form of a fitted label encoder.
type EncoderArtifact struct {
	Classes []string `json:"classes"`
}

// LabelEncoder maps a closed vocabulary onto 0..n-1 by sorted position.
type LabelEncoder struct {
	column string
	codes  map[string]int
}

func NewLabelEncoder(column string, classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("encoder for %s has an empty vocabulary", column)
	}
	sorted := append([]string(nil), classes...)
	sort.Strings(sorted)
	codes := make(map[string]int, len(sorted))
	for _, c := range sorted {
		if _, ok := codes[c]; ok {
			continue
		}
		codes[c] = len(codes)
	}
	return &LabelEncoder{column: column, codes: codes}, nil
}

func (e *LabelEncoder) Transform(value string) (int, error) {
	code, ok := e.codes[value]
	if !ok {
		return 0, &apperrors.EncodingError{Column: e.column, Value: value}
	}
	return code, nil
}

// EncoderSet holds one fitted encoder per categorical column.
type EncoderSet struct {
	encoders map[string]*LabelEncoder
}

func NewEncoderSet(artifacts map[string]EncoderArtifact) (*EncoderSet, error) {
	encoders := make(map[string]*LabelEncoder, len(artifacts))
	for column, artifact := range artifacts {
		encoder, err := NewLabelEncoder(column, artifact.Classes)
		if err != nil {
			return nil, err
		}
		encoders[column] = encoder
	}
	return &EncoderSet{encoders: encoders}, nil
}

func (s *EncoderSet) Get(column string) (*LabelEncoder, bool) {
	e, ok := s.encoders[column]
	return e, ok
}

// Columns returns the encoded column names, sorted.
func (s *EncoderSet) Columns() []string {
	columns := make([]string, 0, len(s.encoders))
	for c := range s.encoders {
		columns = append(columns, c)
	}
	sort.Strings(columns)
	return columns
}
