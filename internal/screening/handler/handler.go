package handler

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
	"github.com/shubhamkumar755/AutismS/internal/screening/artifact"
	"github.com/shubhamkumar755/AutismS/pkg/metric"
	"github.com/shubhamkumar755/AutismS/pkg/utils"
)

type ScreeningHandler interface {
	Predict(raw RawRequest) (*Prediction, error)
	Health() Health
	ModelInfo() ModelInfo
}

type screeningHandler struct {
	artifacts *artifact.Artifacts
	validator *fieldValidator
}

// NewScreeningHandler wires the pipeline to the loaded artifacts. The
// artifacts are only read, never modified.
func NewScreeningHandler(artifacts *artifact.Artifacts) ScreeningHandler {
	return &screeningHandler{
		artifacts: artifacts,
		validator: newFieldValidator(artifacts.Schema.RequiredFields()),
	}
}

func (h *screeningHandler) Predict(raw RawRequest) (*Prediction, error) {
	startTime := time.Now()
	prediction, err := h.predict(raw)
	outcome := outcomeTag(prediction, err)
	tags := metric.BuildTag(metric.NewTag(metric.TagOutcome, outcome))
	metric.Incr(metric.PredictionCount, tags)
	metric.Timing(metric.PredictionLatency, time.Since(startTime), tags)
	return prediction, err
}

func (h *screeningHandler) predict(raw RawRequest) (*Prediction, error) {
	if !h.artifacts.ModelLoaded() || !h.artifacts.EncodersLoaded() {
		return nil, &apperrors.ModelUnavailableError{
			ModelLoaded:    h.artifacts.ModelLoaded(),
			EncodersLoaded: h.artifacts.EncodersLoaded(),
		}
	}
	if err := h.validator.Validate(raw); err != nil {
		return nil, err
	}

	s := h.artifacts.Schema
	row, err := MapFeatures(raw, s)
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("row", row).Msg("Processed data")

	if err := EncodeCategorical(row, s, h.artifacts.Encoders); err != nil {
		return nil, err
	}

	class, label, err := Classify(row, s, h.artifacts.Classifier)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("class", class).Str("prediction", label).Msg("Prediction result")
	return &Prediction{Label: label, Class: class, Fingerprint: utils.Fingerprint(raw)}, nil
}

func (h *screeningHandler) Health() Health {
	return Health{
		ModelLoaded:    h.artifacts.ModelLoaded(),
		EncodersLoaded: h.artifacts.EncodersLoaded(),
	}
}

func (h *screeningHandler) ModelInfo() ModelInfo {
	s := h.artifacts.Schema
	info := ModelInfo{
		SchemaVersion:      s.Version,
		FeatureNames:       s.FeatureNames(),
		RequiredFields:     s.RequiredFields(),
		CategoricalColumns: s.CategoricalColumns(),
		ModelLoaded:        h.artifacts.ModelLoaded(),
		EncodersLoaded:     h.artifacts.EncodersLoaded(),
	}
	if info.ModelLoaded {
		info.ModelType = h.artifacts.Classifier.ModelType()
	}
	if info.EncodersLoaded {
		info.EncoderColumns = h.artifacts.Encoders.Columns()
	}
	return info
}

func outcomeTag(prediction *Prediction, err error) string {
	if err == nil {
		if prediction.Class == 1 {
			return "positive"
		}
		return "negative"
	}
	return ErrorKind(err)
}

// ErrorKind classifies a pipeline error into a stable short code.
func ErrorKind(err error) string {
	var (
		missing     *apperrors.MissingFieldsError
		empty       *apperrors.EmptyFieldsError
		unavailable *apperrors.ModelUnavailableError
		coercion    *apperrors.CoercionError
		encoding    *apperrors.EncodingError
		featureType *apperrors.FeatureTypeError
		label       *apperrors.UnexpectedLabelError
	)
	switch {
	case errors.As(err, &missing):
		return "missing_fields"
	case errors.As(err, &empty):
		return "empty_fields"
	case errors.As(err, &unavailable):
		return "model_unavailable"
	case errors.As(err, &coercion):
		return "coercion_error"
	case errors.As(err, &encoding):
		return "encoding_error"
	case errors.As(err, &featureType):
		return "feature_type_error"
	case errors.As(err, &label):
		return "unexpected_label"
	default:
		return "internal_error"
	}
}
