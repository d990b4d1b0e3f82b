package model

import "time"

// Config holds all flsscan configuration
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Lexicon  LexiconConfig  `yaml:"lexicon" mapstructure:"lexicon"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig tunes the detection engine
type AnalysisConfig struct {
	MinConfidence float64 `yaml:"min_confidence" mapstructure:"min_confidence"` // discard candidates below this confidence [0,1]
	MaxSegments   int     `yaml:"max_segments" mapstructure:"max_segments"`    // cap on returned candidates per section
	SectionKind   string  `yaml:"section_kind" mapstructure:"section_kind"`    // "mda" or "risk_factors"
	Workers       int     `yaml:"workers" mapstructure:"workers"`              // per-segment classification workers
}

// LexiconConfig controls signal-phrase loading
type LexiconConfig struct {
	// ExtraPhrasesFile optionally points at a YAML file mapping signal
	// categories to additional phrases, merged into the built-in tables
	ExtraPhrasesFile string `yaml:"extra_phrases_file" mapstructure:"extra_phrases_file"`
}

// CacheConfig controls the pipeline result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// LLMConfig configures the optional post-scoring summarizer
type LLMConfig struct {
	Provider      string  `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model         string  `yaml:"model" mapstructure:"model"`
	APIKey        string  `yaml:"-" mapstructure:"-"` // from environment only, never persisted
	BaseURL       string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout       int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens     int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"` // batch-mode API call throttle
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MinConfidence: 0.5,
			MaxSegments:   50,
			SectionKind:   string(SectionMDA),
			Workers:       4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:      "",
			Timeout:       30,
			MaxTokens:     1000,
			RatePerSecond: 1,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
