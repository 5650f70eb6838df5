package handler

import (
	"github.com/rs/zerolog/log"
	"github.com/shubhamkumar755/AutismS/internal/screening/model"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"
)

// EncodeCategorical replaces each categorical value in row with its encoder
// code. Columns without a fitted encoder keep their raw value.
func EncodeCategorical(row *schema.FeatureRow, s schema.Schema, encoders *model.EncoderSet) error {
	for _, column := range s.CategoricalColumns() {
		encoder, ok := encoders.Get(column)
		if !ok {
			log.Warn().Str("column", column).Msg("No encoder found for column")
			continue
		}
		raw, _ := row.Get(column)
		value, _ := raw.(string)
		code, err := encoder.Transform(value)
		if err != nil {
			return err
		}
		log.Debug().Str("column", column).Str("value", value).Int("code", code).Msg("Encoded column")
		row.Set(column, code)
	}
	return nil
}
