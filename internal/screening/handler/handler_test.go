package handler

import (
	"errors"
	"testing"

	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
	"github.com/shubhamkumar755/AutismS/internal/screening/artifact"
	"github.com/shubhamkumar755/AutismS/internal/screening/model"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClassifier is a mock for model.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(features []float64) (int, error) {
	args := m.Called(features)
	return args.Int(0), args.Error(1)
}

func (m *MockClassifier) ModelType() string {
	return "mock"
}

func validRequest() RawRequest {
	return RawRequest{
		"A1_Score": "1", "A2_Score": "0", "A3_Score": "1", "A4_Score": "0", "A5_Score": "1",
		"A6_Score": "0", "A7_Score": "1", "A8_Score": "0", "A9_Score": "1", "A10_Score": "1",
		"age":          "25",
		"gender":       "m",
		"ethnicity":    "Asian",
		"jaundice":     "no",
		"familyAutism": "yes",
		"country":      "India",
		"usedApp":      "no",
		"aqScore":      "6.0",
		"relation":     "Self",
	}
}

func testEncoders(t *testing.T) *model.EncoderSet {
	t.Helper()
	set, err := model.NewEncoderSet(map[string]model.EncoderArtifact{
		"gender":          {Classes: []string{"f", "m"}},
		"ethnicity":       {Classes: []string{"Asian", "Black", "White-European"}},
		"jaundice":        {Classes: []string{"no", "yes"}},
		"austim":          {Classes: []string{"no", "yes"}},
		"contry_of_res":   {Classes: []string{"India", "Jordan", "United States"}},
		"used_app_before": {Classes: []string{"no", "yes"}},
		"relation":        {Classes: []string{"Others", "Parent", "Self"}},
	})
	require.NoError(t, err)
	return set
}

// encodedVector is validRequest after mapping and encoding.
var encodedVector = []float64{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 25, 1, 0, 0, 1, 0, 0, 6, 2}

func TestPredict(t *testing.T) {
	t.Run("positive label", func(t *testing.T) {
		clf := &MockClassifier{}
		clf.On("Predict", encodedVector).Return(1, nil)
		h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: testEncoders(t)})

		prediction, err := h.Predict(validRequest())
		require.NoError(t, err)
		assert.Equal(t, LabelPositive, prediction.Label)
		assert.Equal(t, 1, prediction.Class)
		assert.NotEmpty(t, prediction.Fingerprint)
		clf.AssertExpectations(t)
	})

	t.Run("negative label", func(t *testing.T) {
		clf := &MockClassifier{}
		clf.On("Predict", mock.Anything).Return(0, nil)
		h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: testEncoders(t)})

		prediction, err := h.Predict(validRequest())
		require.NoError(t, err)
		assert.Equal(t, LabelNegative, prediction.Label)
	})

	t.Run("identical input gives identical output", func(t *testing.T) {
		clf := &MockClassifier{}
		clf.On("Predict", encodedVector).Return(1, nil)
		h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: testEncoders(t)})

		first, err := h.Predict(validRequest())
		require.NoError(t, err)
		second, err := h.Predict(validRequest())
		require.NoError(t, err)
		assert.Equal(t, first, second)
		clf.AssertNumberOfCalls(t, "Predict", 2)
	})

	t.Run("unexpected label", func(t *testing.T) {
		clf := &MockClassifier{}
		clf.On("Predict", mock.Anything).Return(2, nil)
		h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: testEncoders(t)})

		_, err := h.Predict(validRequest())
		var labelErr *apperrors.UnexpectedLabelError
		require.True(t, errors.As(err, &labelErr))
		assert.Equal(t, 2, labelErr.Label)
	})

	t.Run("classifier failure is returned", func(t *testing.T) {
		clf := &MockClassifier{}
		clf.On("Predict", mock.Anything).Return(0, errors.New("bad input"))
		h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: testEncoders(t)})

		_, err := h.Predict(validRequest())
		assert.EqualError(t, err, "bad input")
		assert.Equal(t, "internal_error", ErrorKind(err))
	})
}

func TestPredictModelUnavailable(t *testing.T) {
	tests := []struct {
		name      string
		artifacts *artifact.Artifacts
	}{
		{"no classifier", &artifact.Artifacts{Schema: schema.V1, Encoders: &model.EncoderSet{}}},
		{"no encoders", &artifact.Artifacts{Schema: schema.V1, Classifier: &MockClassifier{}}},
		{"nothing loaded", &artifact.Artifacts{Schema: schema.V1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewScreeningHandler(tt.artifacts)
			_, err := h.Predict(RawRequest{})
			var unavailable *apperrors.ModelUnavailableError
			require.True(t, errors.As(err, &unavailable))
			assert.Equal(t, tt.artifacts.ModelLoaded(), unavailable.ModelLoaded)
			assert.Equal(t, tt.artifacts.EncodersLoaded(), unavailable.EncodersLoaded)
		})
	}
}

func TestPredictErrorsFromPipeline(t *testing.T) {
	clf := &MockClassifier{}
	h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: testEncoders(t)})

	t.Run("coercion", func(t *testing.T) {
		raw := validRequest()
		raw["age"] = "twenty"
		_, err := h.Predict(raw)
		assert.Equal(t, "coercion_error", ErrorKind(err))
	})

	t.Run("unseen category", func(t *testing.T) {
		raw := validRequest()
		raw["country"] = "Atlantis"
		_, err := h.Predict(raw)
		assert.Equal(t, "encoding_error", ErrorKind(err))
	})

	t.Run("missing field", func(t *testing.T) {
		raw := validRequest()
		delete(raw, "relation")
		_, err := h.Predict(raw)
		assert.Equal(t, "missing_fields", ErrorKind(err))
	})

	clf.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestPredictWithoutEncoderForColumn(t *testing.T) {
	partial, err := model.NewEncoderSet(map[string]model.EncoderArtifact{
		"gender": {Classes: []string{"f", "m"}},
	})
	require.NoError(t, err)
	clf := &MockClassifier{}
	h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: clf, Encoders: partial})

	_, err = h.Predict(validRequest())
	var typeErr *apperrors.FeatureTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "ethnicity", typeErr.Column)
	clf.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestHealthAndModelInfo(t *testing.T) {
	h := NewScreeningHandler(&artifact.Artifacts{Schema: schema.V1, Classifier: &MockClassifier{}})
	assert.Equal(t, Health{ModelLoaded: true, EncodersLoaded: false}, h.Health())

	info := h.ModelInfo()
	assert.Equal(t, "v1", info.SchemaVersion)
	assert.Equal(t, "mock", info.ModelType)
	assert.Len(t, info.FeatureNames, len(schema.V1.Columns))
	assert.False(t, info.EncodersLoaded)
	assert.Empty(t, info.EncoderColumns)
}
