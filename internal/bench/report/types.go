package report

import (
	"runtime"
	"time"
)

type Report struct {
	Meta    ReportMeta `json:"meta"`
	Suite   string     `json:"suite"`
	KValues []int      `json:"k_values"`
	Entries []Entry    `json:"entries"`
}

type ReportMeta struct {
	Version     string          `json:"version"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Entry struct {
	RankingID string          `json:"ranking_id"`
	Length    int             `json:"length"`
	AP        float64         `json:"ap"`
	NDCG      float64         `json:"ndcg"`
	NDCGAtK   map[int]float64 `json:"ndcg_at_k,omitempty"`
	Error     string          `json:"error,omitempty"`
}
