package configloader

import "github.com/yaklabco/cppgrader/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Scalar values overwrite base only when set (non-zero). Booleans can only be
// switched on by an override, not unset.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Server.Host != "" {
		result.Server.Host = override.Server.Host
	}
	if override.Server.Port != 0 {
		result.Server.Port = override.Server.Port
	}

	if override.Ollama.Host != "" {
		result.Ollama.Host = override.Ollama.Host
	}
	if override.Ollama.Model != "" {
		result.Ollama.Model = override.Ollama.Model
	}
	if override.Ollama.TimeoutSeconds != 0 {
		result.Ollama.TimeoutSeconds = override.Ollama.TimeoutSeconds
	}
	if override.Ollama.Enabled {
		result.Ollama.Enabled = true
	}

	if override.RAG.ChunkSize != 0 {
		result.RAG.ChunkSize = override.RAG.ChunkSize
	}
	if override.RAG.ChunkOverlap != 0 {
		result.RAG.ChunkOverlap = override.RAG.ChunkOverlap
	}
	if override.RAG.TopK != 0 {
		result.RAG.TopK = override.RAG.TopK
	}

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.StyleGuidePath != "" {
		result.StyleGuidePath = override.StyleGuidePath
	}

	return &result
}
