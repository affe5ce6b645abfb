package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskReview   TaskType = "review"
	TaskGenerate TaskType = "generate"
	TaskRefine   TaskType = "refine"
	TaskEmbed    TaskType = "embed"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Endpoint       string
	Model          string
	EmbeddingModel string
	TimeoutMs      int
	MaxRetries     int
	RepeatPenalty  float64
	LogCalls       bool
	Tasks          map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults for a local
// Ollama instance serving the fine-tuned writer model.
func DefaultConfig() Config {
	return Config{
		Endpoint:       "http://localhost:11434",
		Model:          "nsfc-writer",
		EmbeddingModel: "bge-small-zh-v1.5",
		TimeoutMs:      60000,
		MaxRetries:     1,
		RepeatPenalty:  1.1,
		Tasks: map[TaskType]TaskConfig{
			TaskReview:   {Temperature: 0.7, TopP: 0.9, MaxTokens: 2048, TimeoutMs: 90000},
			TaskGenerate: {Temperature: 0.7, TopP: 0.9, MaxTokens: 2048, TimeoutMs: 90000},
			TaskRefine:   {Temperature: 0.7, TopP: 0.9, MaxTokens: 2048, TimeoutMs: 90000},
			TaskEmbed:    {TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NSFC_OLLAMA_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("NSFC_OLLAMA_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("NSFC_EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := os.Getenv("NSFC_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NSFC_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("NSFC_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
