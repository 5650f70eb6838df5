package handler

import (
	"strconv"
	"strings"

	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"
)

// MapFeatures renames and coerces validated request fields into a FeatureRow
// laid out in schema order. Categorical values are copied unchanged.
func MapFeatures(raw RawRequest, s schema.Schema) (*schema.FeatureRow, error) {
	row := schema.NewFeatureRow()
	for _, c := range s.Columns {
		value := raw[c.Source]
		switch c.Kind {
		case schema.Integer:
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, &apperrors.CoercionError{Field: c.Source, Value: value, Target: "integer"}
			}
			row.Set(c.Name, n)
		case schema.Float:
			f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, &apperrors.CoercionError{Field: c.Source, Value: value, Target: "float"}
			}
			row.Set(c.Name, f)
		default:
			row.Set(c.Name, value)
		}
	}
	return row, nil
}
