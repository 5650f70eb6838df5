package model

import (
	"fmt"
	"math"
)

const (
	TypeDecisionTree       = "decision_tree"
	TypeRandomForest       = "random_forest"
	TypeLogisticRegression = "logistic_regression"
)

// Classifier predicts the class label of a single numeric feature row.
// Implementations are immutable after construction and safe for concurrent use.
type Classifier interface {
	Predict(features []float64) (int, error)
	ModelType() string
}

// ClassifierArtifact is the serialized form of a trained classifier.
type ClassifierArtifact struct {
	SchemaVersion string    `json:"schema_version"`
	ModelType     string    `json:"model_type"`
	FeatureNames  []string  `json:"feature_names"`
	Classes       []int     `json:"classes"`
	Trees         []Tree    `json:"trees,omitempty"`
	Coefficients  []float64 `json:"coefficients,omitempty"`
	Intercept     float64   `json:"intercept,omitempty"`
}

// Tree uses the array layout of an exported sklearn tree: node i is a leaf
// when ChildrenLeft[i] == -1, otherwise samples with
// x[Feature[i]] <= Threshold[i] go left.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// NewClassifier builds a Classifier from its artifact, validating structure
// against numFeatures.
func NewClassifier(artifact *ClassifierArtifact, numFeatures int) (Classifier, error) {
	if len(artifact.Classes) < 2 {
		return nil, fmt.Errorf("classifier must declare at least 2 classes, got %d", len(artifact.Classes))
	}
	switch artifact.ModelType {
	case TypeDecisionTree, TypeRandomForest:
		if len(artifact.Trees) == 0 {
			return nil, fmt.Errorf("%s artifact has no trees", artifact.ModelType)
		}
		if artifact.ModelType == TypeDecisionTree && len(artifact.Trees) != 1 {
			return nil, fmt.Errorf("decision_tree artifact must have exactly 1 tree, got %d", len(artifact.Trees))
		}
		for i := range artifact.Trees {
			if err := artifact.Trees[i].validate(numFeatures, len(artifact.Classes)); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
		return &treeEnsemble{
			modelType: artifact.ModelType,
			classes:   append([]int(nil), artifact.Classes...),
			trees:     artifact.Trees,
			features:  numFeatures,
		}, nil
	case TypeLogisticRegression:
		if len(artifact.Classes) != 2 {
			return nil, fmt.Errorf("logistic_regression supports 2 classes, got %d", len(artifact.Classes))
		}
		if len(artifact.Coefficients) != numFeatures {
			return nil, fmt.Errorf("logistic_regression has %d coefficients, expected %d",
				len(artifact.Coefficients), numFeatures)
		}
		return &logisticRegression{
			classes:      [2]int{artifact.Classes[0], artifact.Classes[1]},
			coefficients: append([]float64(nil), artifact.Coefficients...),
			intercept:    artifact.Intercept,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", artifact.ModelType)
	}
}

func (t *Tree) validate(numFeatures, numClasses int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("tree arrays have inconsistent lengths")
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == -1 {
			if len(t.Value[i]) != numClasses {
				return fmt.Errorf("leaf %d has %d class weights, expected %d", i, len(t.Value[i]), numClasses)
			}
			continue
		}
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d has out of range children (%d, %d)", i, left, right)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= numFeatures {
			return fmt.Errorf("node %d splits on feature %d, row has %d features", i, t.Feature[i], numFeatures)
		}
	}
	return nil
}

// leaf walks the tree for x and returns the class weights of the reached leaf.
func (t *Tree) leaf(x []float64) []float64 {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

type treeEnsemble struct {
	modelType string
	classes   []int
	trees     []Tree
	features  int
}

func (e *treeEnsemble) ModelType() string {
	return e.modelType
}

// Predict averages the normalised leaf distributions of all trees; ties go
// to the lowest class index.
func (e *treeEnsemble) Predict(features []float64) (int, error) {
	if len(features) != e.features {
		return 0, fmt.Errorf("expected %d features, got %d", e.features, len(features))
	}
	proba := make([]float64, len(e.classes))
	for i := range e.trees {
		weights := e.trees[i].leaf(features)
		total := 0.0
		for _, w := range weights {
			total += w
		}
		if total == 0 {
			continue
		}
		for c, w := range weights {
			proba[c] += w / total
		}
	}
	best := 0
	for c := 1; c < len(proba); c++ {
		if proba[c] > proba[best] {
			best = c
		}
	}
	return e.classes[best], nil
}

type logisticRegression struct {
	classes      [2]int
	coefficients []float64
	intercept    float64
}

func (l *logisticRegression) ModelType() string {
	return TypeLogisticRegression
}

func (l *logisticRegression) Predict(features []float64) (int, error) {
	if len(features) != len(l.coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(l.coefficients), len(features))
	}
	z := l.intercept
	for i, w := range l.coefficients {
		z += w * features[i]
	}
	if 1/(1+math.Exp(-z)) > 0.5 {
		return l.classes[1], nil
	}
	return l.classes[0], nil
}
