package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/cppgrader/pkg/config"
)

// envVarPrefix is the prefix for all cppgrader environment variables.
const envVarPrefix = "CPPGRADER_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with CPPGRADER_ (e.g., CPPGRADER_LOG_LEVEL).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("SERVER_HOST"); ok {
		cfg.Server.Host = v
	}
	if v, ok := lookup("SERVER_PORT"); ok {
		port, err := parseInt("SERVER_PORT", v)
		if err != nil {
			return err
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("OLLAMA_HOST"); ok {
		cfg.Ollama.Host = v
	}
	if v, ok := lookup("OLLAMA_MODEL"); ok {
		cfg.Ollama.Model = v
	}
	if v, ok := lookup("OLLAMA_TIMEOUT"); ok {
		timeout, err := parseInt("OLLAMA_TIMEOUT", v)
		if err != nil {
			return err
		}
		cfg.Ollama.TimeoutSeconds = timeout
	}
	if v, ok := lookup("OLLAMA_ENABLED"); ok {
		enabled, err := parseBool("OLLAMA_ENABLED", v)
		if err != nil {
			return err
		}
		cfg.Ollama.Enabled = enabled
	}
	if v, ok := lookup("RAG_CHUNK_SIZE"); ok {
		size, err := parseInt("RAG_CHUNK_SIZE", v)
		if err != nil {
			return err
		}
		cfg.RAG.ChunkSize = size
	}
	if v, ok := lookup("RAG_TOP_K"); ok {
		topK, err := parseInt("RAG_TOP_K", v)
		if err != nil {
			return err
		}
		cfg.RAG.TopK = topK
	}
	if v, ok := lookup("JOBS"); ok {
		jobs, err := parseInt("JOBS", v)
		if err != nil {
			return err
		}
		cfg.Jobs = jobs
	}

	return nil
}

// lookup fetches a prefixed environment variable, ignoring empty values.
func lookup(suffix string) (string, bool) {
	v := os.Getenv(envVarPrefix + suffix)
	return v, v != ""
}

func parseInt(suffix, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s%s: %q", envVarPrefix, suffix, value)
	}
	return i, nil
}

func parseBool(suffix, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s%s: %q (expected true/false/1/0)", envVarPrefix, suffix, value)
	}
	return b, nil
}
