package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stump splits on feature 0 at 0.5: left leaf favours class 0, right leaf class 1.
func stump(feature int) Tree {
	return Tree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{feature, -2, -2},
		Threshold:     []float64{0.5, -2, -2},
		Value:         [][]float64{{10, 10}, {9, 1}, {2, 8}},
	}
}

func TestDecisionTree(t *testing.T) {
	clf, err := NewClassifier(&ClassifierArtifact{
		ModelType: TypeDecisionTree,
		Classes:   []int{0, 1},
		Trees:     []Tree{stump(0)},
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, TypeDecisionTree, clf.ModelType())

	label, err := clf.Predict([]float64{0, 7})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	// threshold is inclusive on the left branch
	label, err = clf.Predict([]float64{0.5, 7})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	label, err = clf.Predict([]float64{1, 7})
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	_, err = clf.Predict([]float64{1})
	assert.ErrorContains(t, err, "expected 2 features")
}

func TestRandomForestAveragesTrees(t *testing.T) {
	clf, err := NewClassifier(&ClassifierArtifact{
		ModelType: TypeRandomForest,
		Classes:   []int{0, 1},
		Trees:     []Tree{stump(0), stump(1), stump(1)},
	}, 2)
	require.NoError(t, err)

	// tree 0 votes 1 (0.8), trees 1 and 2 vote 0 (0.9 each)
	label, err := clf.Predict([]float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	label, err = clf.Predict([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestRandomForestTieGoesToFirstClass(t *testing.T) {
	even := Tree{
		ChildrenLeft:  []int{-1},
		ChildrenRight: []int{-1},
		Feature:       []int{-2},
		Threshold:     []float64{-2},
		Value:         [][]float64{{5, 5}},
	}
	clf, err := NewClassifier(&ClassifierArtifact{
		ModelType: TypeRandomForest,
		Classes:   []int{0, 1},
		Trees:     []Tree{even},
	}, 1)
	require.NoError(t, err)
	label, err := clf.Predict([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestLogisticRegression(t *testing.T) {
	clf, err := NewClassifier(&ClassifierArtifact{
		ModelType:    TypeLogisticRegression,
		Classes:      []int{0, 1},
		Coefficients: []float64{1, 1},
		Intercept:    -1.5,
	}, 2)
	require.NoError(t, err)

	label, err := clf.Predict([]float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	label, err = clf.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestNewClassifierRejectsMalformedArtifacts(t *testing.T) {
	tests := []struct {
		name     string
		artifact ClassifierArtifact
		want     string
	}{
		{
			name:     "single class",
			artifact: ClassifierArtifact{ModelType: TypeDecisionTree, Classes: []int{1}, Trees: []Tree{stump(0)}},
			want:     "at least 2 classes",
		},
		{
			name:     "unknown type",
			artifact: ClassifierArtifact{ModelType: "svm", Classes: []int{0, 1}},
			want:     "unsupported model type",
		},
		{
			name:     "no trees",
			artifact: ClassifierArtifact{ModelType: TypeRandomForest, Classes: []int{0, 1}},
			want:     "has no trees",
		},
		{
			name:     "decision tree with forest",
			artifact: ClassifierArtifact{ModelType: TypeDecisionTree, Classes: []int{0, 1}, Trees: []Tree{stump(0), stump(0)}},
			want:     "exactly 1 tree",
		},
		{
			name:     "feature out of range",
			artifact: ClassifierArtifact{ModelType: TypeDecisionTree, Classes: []int{0, 1}, Trees: []Tree{stump(5)}},
			want:     "splits on feature 5",
		},
		{
			name: "backwards child",
			artifact: ClassifierArtifact{ModelType: TypeDecisionTree, Classes: []int{0, 1}, Trees: []Tree{{
				ChildrenLeft:  []int{0},
				ChildrenRight: []int{0},
				Feature:       []int{0},
				Threshold:     []float64{0},
				Value:         [][]float64{{1, 1}},
			}}},
			want: "out of range children",
		},
		{
			name:     "coefficient count",
			artifact: ClassifierArtifact{ModelType: TypeLogisticRegression, Classes: []int{0, 1}, Coefficients: []float64{1}},
			want:     "has 1 coefficients",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(&tt.artifact, 2)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
