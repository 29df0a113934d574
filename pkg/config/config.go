package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// AssemblyAIConfig holds transcription provider configuration
type AssemblyAIConfig struct {
	APIKey      string
	SpeechModel string
	MaxWait     time.Duration
}

// GroqConfig holds the generative text provider configuration.
// AnalysisModel drives name resolution, summaries and intelligence
// extraction; ChatModel drives follow-up question answering.
type GroqConfig struct {
	APIKey         string
	BaseURL        string
	AnalysisModel  string
	ChatModel      string
	RequestTimeout time.Duration
}

// StorageConfig holds transient media artifact storage configuration
type StorageConfig struct {
	Type            string // "minio" or "local"
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	LocalDir        string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "*")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Assembly: AssemblyAIConfig{
			APIKey:      getEnv("ASSEMBLYAI_API_KEY", ""),
			SpeechModel: getEnv("ASSEMBLYAI_SPEECH_MODEL", "universal"),
			MaxWait:     getEnvAsDuration("ASSEMBLYAI_MAX_WAIT", "10m"),
		},
		Groq: GroqConfig{
			APIKey:         getEnv("GROQ_API_KEY", ""),
			BaseURL:        getEnv("GROQ_API_URL", "https://api.groq.com"),
			AnalysisModel:  getEnv("GROQ_ANALYSIS_MODEL", "llama-3.3-70b-versatile"),
			ChatModel:      getEnv("GROQ_CHAT_MODEL", "llama-3.1-8b-instant"),
			RequestTimeout: getEnvAsDuration("GROQ_REQUEST_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			Type:            getEnv("STORAGE_TYPE", "local"),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "meeting-uploads"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
			LocalDir:        getEnv("STORAGE_LOCAL_DIR", os.TempDir()),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.Storage.Type != "minio" && c.Storage.Type != "local" {
		return fmt.Errorf("STORAGE_TYPE must be \"minio\" or \"local\", got %q", c.Storage.Type)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
