package schema

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Integer Kind = iota
	Float
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column is one feature the classifier was trained on. Source is the request
// field it is read from.
type Column struct {
	Name   string
	Source string
	Kind   Kind
}

type Schema struct {
	Version string
	Columns []Column
}

// V1 is the training layout of the screening classifier. Order matters.
var V1 = Schema{
	Version: "v1",
	Columns: []Column{
		{Name: "A1_Score", Source: "A1_Score", Kind: Integer},
		{Name: "A2_Score", Source: "A2_Score", Kind: Integer},
		{Name: "A3_Score", Source: "A3_Score", Kind: Integer},
		{Name: "A4_Score", Source: "A4_Score", Kind: Integer},
		{Name: "A5_Score", Source: "A5_Score", Kind: Integer},
		{Name: "A6_Score", Source: "A6_Score", Kind: Integer},
		{Name: "A7_Score", Source: "A7_Score", Kind: Integer},
		{Name: "A8_Score", Source: "A8_Score", Kind: Integer},
		{Name: "A9_Score", Source: "A9_Score", Kind: Integer},
		{Name: "A10_Score", Source: "A10_Score", Kind: Integer},
		{Name: "age", Source: "age", Kind: Integer},
		{Name: "gender", Source: "gender", Kind: Categorical},
		{Name: "ethnicity", Source: "ethnicity", Kind: Categorical},
		{Name: "jaundice", Source: "jaundice", Kind: Categorical},
		{Name: "austim", Source: "familyAutism", Kind: Categorical},
		{Name: "contry_of_res", Source: "country", Kind: Categorical},
		{Name: "used_app_before", Source: "usedApp", Kind: Categorical},
		{Name: "result", Source: "aqScore", Kind: Float},
		{Name: "relation", Source: "relation", Kind: Categorical},
	},
}

// FeatureNames returns the column names in training order.
func (s Schema) FeatureNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// RequiredFields returns the request fields every prediction needs.
func (s Schema) RequiredFields() []string {
	fields := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		fields = append(fields, c.Source)
	}
	return fields
}

func (s Schema) CategoricalColumns() []string {
	var cols []string
	for _, c := range s.Columns {
		if c.Kind == Categorical {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

func (s Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Check compares the layout an artifact declares with this schema. Empty
// declarations are accepted as-is.
func (s Schema) Check(version string, featureNames []string) error {
	if version != "" && version != s.Version {
		return fmt.Errorf("schema version mismatch: artifact declares %q, service expects %q", version, s.Version)
	}
	if len(featureNames) == 0 {
		return nil
	}
	expected := s.FeatureNames()
	if len(featureNames) != len(expected) {
		return fmt.Errorf("feature count mismatch: artifact declares %d features, service expects %d",
			len(featureNames), len(expected))
	}
	var mismatched []string
	for i, name := range featureNames {
		if name != expected[i] {
			mismatched = append(mismatched, fmt.Sprintf("%d:%s!=%s", i, name, expected[i]))
		}
	}
	if len(mismatched) > 0 {
		return fmt.Errorf("feature order mismatch: %s", strings.Join(mismatched, ", "))
	}
	return nil
}
