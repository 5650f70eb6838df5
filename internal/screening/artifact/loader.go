package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/shubhamkumar755/AutismS/internal/screening/model"
	"github.com/shubhamkumar755/AutismS/internal/screening/schema"
	"github.com/shubhamkumar755/AutismS/pkg/metric"
)

const (
	classifierArtifact = "classifier"
	encodersArtifact   = "encoders"
)

type Options struct {
	ModelPath      string
	EncodersPath   string
	StrictEncoders bool
}

// Artifacts is the read-only inference state shared by all requests. A nil
// Classifier or Encoders means that artifact failed to load.
type Artifacts struct {
	Schema     schema.Schema
	Classifier model.Classifier
	Encoders   *model.EncoderSet
}

func (a *Artifacts) ModelLoaded() bool {
	return a != nil && a.Classifier != nil
}

func (a *Artifacts) EncodersLoaded() bool {
	return a != nil && a.Encoders != nil
}

// Load reads both artifacts from disk. Failures are logged and leave the
// corresponding field nil; the process keeps serving in degraded mode.
func Load(opts Options, s schema.Schema) *Artifacts {
	artifacts := &Artifacts{Schema: s}

	classifier, err := LoadClassifier(opts.ModelPath, s)
	recordLoad(classifierArtifact, err)
	if err != nil {
		log.Warn().Err(err).Str("path", opts.ModelPath).Msg("Model file could not be loaded, predictions are disabled")
	} else {
		artifacts.Classifier = classifier
		log.Info().Str("path", opts.ModelPath).Str("modelType", classifier.ModelType()).Msg("Classifier loaded")
	}

	encoders, err := LoadEncoders(opts.EncodersPath, s, opts.StrictEncoders)
	recordLoad(encodersArtifact, err)
	if err != nil {
		log.Warn().Err(err).Str("path", opts.EncodersPath).Msg("Encoders file could not be loaded, predictions are disabled")
	} else {
		artifacts.Encoders = encoders
		log.Info().Str("path", opts.EncodersPath).Strs("columns", encoders.Columns()).Msg("Encoders loaded")
	}
	return artifacts
}

// LoadClassifier decodes a classifier artifact and checks it against s.
func LoadClassifier(path string, s schema.Schema) (model.Classifier, error) {
	var artifact model.ClassifierArtifact
	if err := readJSON(path, &artifact); err != nil {
		return nil, err
	}
	if err := s.Check(artifact.SchemaVersion, artifact.FeatureNames); err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	if artifact.SchemaVersion == "" || len(artifact.FeatureNames) == 0 {
		log.Warn().Str("path", path).Msg("Classifier does not declare its feature schema, assuming " + s.Version)
	}
	classifier, err := model.NewClassifier(&artifact, len(s.Columns))
	if err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	return classifier, nil
}

// LoadEncoders decodes the encoder set. Encoders for columns that are not
// categorical in s are rejected. Categorical columns without an encoder are
// reported, and rejected when strict is set.
func LoadEncoders(path string, s schema.Schema, strict bool) (*model.EncoderSet, error) {
	var artifacts map[string]model.EncoderArtifact
	if err := readJSON(path, &artifacts); err != nil {
		return nil, err
	}
	for column := range artifacts {
		c, ok := s.Column(column)
		if !ok || c.Kind != schema.Categorical {
			return nil, fmt.Errorf("encoders %s: column %s is not a categorical feature", path, column)
		}
	}
	var uncovered []string
	for _, column := range s.CategoricalColumns() {
		if _, ok := artifacts[column]; !ok {
			uncovered = append(uncovered, column)
		}
	}
	if len(uncovered) > 0 {
		if strict {
			return nil, fmt.Errorf("encoders %s: no encoder for categorical columns %s", path, strings.Join(uncovered, ", "))
		}
		log.Warn().Strs("columns", uncovered).Msg("No encoder found for categorical columns, raw values will reach the classifier")
	}
	encoders, err := model.NewEncoderSet(artifacts)
	if err != nil {
		return nil, fmt.Errorf("encoders %s: %w", path, err)
	}
	return encoders, nil
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	size := len(data)
	if strings.HasSuffix(path, zstdSuffix) {
		dec, err := newZstdDecoder()
		if err != nil {
			return fmt.Errorf("creating zstd decoder: %w", err)
		}
		if data, err = dec.decode(data); err != nil {
			return fmt.Errorf("decompressing %s: %w", path, err)
		}
	}
	log.Debug().Str("path", path).Str("size", humanize.Bytes(uint64(size))).
		Str("decoded", humanize.Bytes(uint64(len(data)))).Msg("Read artifact file")
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func recordLoad(artifact string, err error) {
	status := metric.TagValueSuccess
	if err != nil {
		status = metric.TagValueFailure
	}
	metric.Incr(metric.ArtifactLoadCount, metric.BuildTag(
		metric.NewTag(metric.TagArtifact, artifact),
		metric.NewTag(metric.TagStatus, status),
	))
}
