package configs

// KPI configures the estimation engine.
type KPI struct {
	// BenchmarkFile is an optional YAML file overriding platform benchmarks.
	BenchmarkFile string `env:"BENCHMARK_FILE"`
	// Seed makes daily-series variance reproducible when non-zero.
	Seed uint64 `env:"KPI_SEED"`
}
