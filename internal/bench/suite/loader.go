package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, apperr.NewValidationWrap("invalid suite", err)
	}
	if err := checkEntries(s.Entries); err != nil {
		return nil, err
	}
	if len(s.KValues) == 0 {
		s.KValues = DefaultKValues
	}
	return &s, nil
}

func checkEntries(entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			return apperr.NewValidation(fmt.Sprintf("duplicate ranking id %q", e.ID))
		}
		seen[e.ID] = true

		if e.Relevance != nil && (e.Ranked != nil || e.Judgments != nil) {
			return apperr.NewValidation(fmt.Sprintf("ranking %q mixes relevance with ranked/judgments", e.ID))
		}
		if e.Relevance == nil && e.Ranked == nil && e.Judgments == nil {
			return apperr.NewValidation(fmt.Sprintf("ranking %q has neither relevance nor ranked docs", e.ID))
		}
		if e.Ranked == nil && e.Judgments != nil {
			return apperr.NewValidation(fmt.Sprintf("ranking %q has judgments but no ranked docs", e.ID))
		}
	}
	return nil
}
