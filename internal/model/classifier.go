package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Classifier is a trained logistic-regression win predictor together with the
// column order and standardization parameters it was fitted with. Immutable
// after Load.
type Classifier struct {
	cols         []string
	coefficients []float64
	intercept    float64
	mean         []float64
	scale        []float64
}

type modelFile struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

type scalerFile struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Load reads model.json, model_cols.json and scaler.json from dir. The three
// artifacts must agree on dimensionality.
func Load(dir string) (*Classifier, error) {
	var mf modelFile
	if err := readJSON(filepath.Join(dir, "model.json"), &mf); err != nil {
		return nil, err
	}
	var cols []string
	if err := readJSON(filepath.Join(dir, "model_cols.json"), &cols); err != nil {
		return nil, err
	}
	var sf scalerFile
	if err := readJSON(filepath.Join(dir, "scaler.json"), &sf); err != nil {
		return nil, err
	}

	n := len(cols)
	if len(mf.Coefficients) != n || len(sf.Mean) != n || len(sf.Scale) != n {
		return nil, fmt.Errorf("model artifacts disagree: %d cols, %d coefficients, %d means, %d scales",
			n, len(mf.Coefficients), len(sf.Mean), len(sf.Scale))
	}

	return &Classifier{
		cols:         cols,
		coefficients: mf.Coefficients,
		intercept:    mf.Intercept,
		mean:         sf.Mean,
		scale:        sf.Scale,
	}, nil
}

// Cols returns the feature column order the classifier expects.
func (c *Classifier) Cols() []string {
	return c.cols
}

// Predict returns the blue-side win probability for one difference row.
// Columns missing from the row count as 0 before standardization.
func (c *Classifier) Predict(row map[string]float64) (float64, error) {
	if len(c.cols) == 0 {
		return 0, fmt.Errorf("classifier has no columns")
	}
	z := c.intercept
	for i, col := range c.cols {
		scale := c.scale[i]
		if scale == 0 {
			scale = 1
		}
		z += c.coefficients[i] * ((row[col] - c.mean[i]) / scale)
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read model artifact: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
