package runner

const DefaultConcurrency = 4

type Config struct {
	// KValues overrides the suite's cutoffs when set.
	KValues     []int
	Concurrency int
}

func DefaultConfig() Config {
	return Config{
		Concurrency: DefaultConcurrency,
	}
}
