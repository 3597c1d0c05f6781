package judgment

import "github.com/google/uuid"

// Ungraded marks a pooled document an annotator has not graded yet.
const Ungraded = -1

type GradedDoc struct {
	DocID uuid.UUID `yaml:"doc_id" validate:"required"`
	Grade int       `yaml:"grade" validate:"gte=-1"`
}

type JudgmentFile struct {
	Strategy string          `yaml:"strategy"`
	Rankings []JudgmentEntry `yaml:"rankings" validate:"dive"`
}

type JudgmentEntry struct {
	RankingID string      `yaml:"ranking_id" validate:"required"`
	Docs      []GradedDoc `yaml:"docs" validate:"dive"`
}
