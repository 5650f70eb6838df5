package handler

const (
	LabelPositive = "ASD Positive"
	LabelNegative = "ASD Negative"
)

// RawRequest is the normalized request body: field name to raw value.
// JSON null is stored as an empty string.
type RawRequest map[string]string

// Keys returns the received field names.
func (r RawRequest) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

type Prediction struct {
	Label       string
	Class       int
	Fingerprint string
}

type Health struct {
	ModelLoaded    bool
	EncodersLoaded bool
}

type ModelInfo struct {
	SchemaVersion      string   `json:"schema_version"`
	FeatureNames       []string `json:"feature_names"`
	RequiredFields     []string `json:"required_fields"`
	CategoricalColumns []string `json:"categorical_columns"`
	ModelLoaded        bool     `json:"model_loaded"`
	ModelType          string   `json:"model_type,omitempty"`
	EncodersLoaded     bool     `json:"encoders_loaded"`
	EncoderColumns     []string `json:"encoder_columns,omitempty"`
}
