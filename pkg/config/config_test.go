package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "asm-key")
	t.Setenv("GROQ_API_KEY", "groq-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "universal", cfg.Assembly.SpeechModel)
	assert.Equal(t, 10*time.Minute, cfg.Assembly.MaxWait)

	assert.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.AnalysisModel)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Groq.ChatModel)
	assert.Equal(t, 60*time.Second, cfg.Groq.RequestTimeout)

	assert.Equal(t, "local", cfg.Storage.Type)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "asm-key")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("PORT", "9090")
	t.Setenv("ASSEMBLYAI_MAX_WAIT", "2m")
	t.Setenv("GROQ_REQUEST_TIMEOUT", "15s")
	t.Setenv("STORAGE_TYPE", "minio")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Minute, cfg.Assembly.MaxWait)
	assert.Equal(t, 15*time.Second, cfg.Groq.RequestTimeout)
	assert.Equal(t, "minio", cfg.Storage.Type)
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "groq-key")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ASSEMBLYAI_API_KEY", "asm-key")
	t.Setenv("GROQ_API_KEY", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate_StorageType(t *testing.T) {
	cfg := &Config{
		Assembly: AssemblyAIConfig{APIKey: "a"},
		Groq:     GroqConfig{APIKey: "g"},
		Storage:  StorageConfig{Type: "s3"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Storage.Type = "minio"
	assert.NoError(t, cfg.Validate())
}

func TestGetEnvAsDuration_BadValueFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	assert.Equal(t, 30*time.Second, getEnvAsDuration("SOME_DURATION", "30s"))
}
