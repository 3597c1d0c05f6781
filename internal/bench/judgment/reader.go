package judgment

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ImportAnnotations reads a graded judgment file.
func ImportAnnotations(path string) (*JudgmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read judgment file: %w", err)
	}
	var jf JudgmentFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parse judgment file: %w", err)
	}
	if err := validate.Struct(&jf); err != nil {
		return nil, apperr.NewValidationWrap("invalid judgment file", err)
	}
	return &jf, nil
}
