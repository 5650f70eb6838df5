package schema

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
)

// FeatureRow is a single record keyed by column name. Insertion order is kept
// so the row always reads back in training order.
type FeatureRow struct {
	values *linkedhashmap.Map
}

func NewFeatureRow() *FeatureRow {
	return &FeatureRow{values: linkedhashmap.New()}
}

// Set stores value for column. Overwriting keeps the original position.
func (r *FeatureRow) Set(column string, value interface{}) {
	r.values.Put(column, value)
}

func (r *FeatureRow) Get(column string) (interface{}, bool) {
	return r.values.Get(column)
}

func (r *FeatureRow) Columns() []string {
	keys := r.values.Keys()
	columns := make([]string, 0, len(keys))
	for _, k := range keys {
		columns = append(columns, k.(string))
	}
	return columns
}

// Vector flattens the row into the numeric input of a classifier following
// the column order of s.
func (r *FeatureRow) Vector(s Schema) ([]float64, error) {
	vector := make([]float64, 0, len(s.Columns))
	for _, c := range s.Columns {
		raw, ok := r.values.Get(c.Name)
		if !ok {
			return nil, fmt.Errorf("feature %s is missing from row", c.Name)
		}
		switch v := raw.(type) {
		case int:
			vector = append(vector, float64(v))
		case float64:
			vector = append(vector, v)
		default:
			return nil, &apperrors.FeatureTypeError{Column: c.Name, Value: raw}
		}
	}
	return vector, nil
}

func (r *FeatureRow) String() string {
	var b strings.Builder
	b.WriteString("{")
	it := r.values.Iterator()
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", it.Key(), it.Value())
	}
	b.WriteString("}")
	return b.String()
}
