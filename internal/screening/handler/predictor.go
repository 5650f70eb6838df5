package handler

import (
	apperrors "github.com/shubhamkumar755/AutismS/internal/errors"
	"github.com/shubhamkumar755/AutismS/internal/screening/model"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"
)

// Classify runs the classifier on an encoded row and returns the raw class
// along with its label.
func Classify(row *schema.FeatureRow, s schema.Schema, classifier model.Classifier) (int, string, error) {
	features, err := row.Vector(s)
	if err != nil {
		return 0, "", err
	}
	class, err := classifier.Predict(features)
	if err != nil {
		return 0, "", err
	}
	label, err := labelFor(class)
	return class, label, err
}

func labelFor(class int) (string, error) {
	switch class {
	case 1:
		return LabelPositive, nil
	case 0:
		return LabelNegative, nil
	default:
		return "", &apperrors.UnexpectedLabelError{Label: class}
	}
}
