package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEntityRegistry lists the GECF member and observer countries the
// relevance filter scans for. Overridable via ENTITY_REGISTRY.
var DefaultEntityRegistry = []string{
	"Algeria", "Bolivia", "Egypt", "Equatorial Guinea", "Iran", "Libya",
	"Nigeria", "Qatar", "Russia", "Trinidad and Tobago",
	"United Arab Emirates", "UAE", "Venezuela",
	"Angola", "Azerbaijan", "Iraq", "Malaysia", "Mauritania", "Mozambique",
	"Peru", "Senegal",
}

// DefaultInstructionTemplate is the system prompt sent with every
// summarization request.
const DefaultInstructionTemplate = "You are an expert geopolitical energy analyst. " +
	"Directly summarize key insights from the provided text in one paragraph, " +
	"focusing on the role of the listed countries. Do not start with introductory " +
	"phrases. Avoid lists."

type Config struct {
	Port                string
	AIAPIKey            string
	GenModel            string
	EntityRegistry      []string
	MaxContextChars     int
	MaxThumbnails       int
	ThumbnailMaxDim     int
	ThumbnailQuality    int
	SummarizeTimeout    time.Duration
	InstructionTemplate string
	MaxUploadBytes      int64
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		AIAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GenModel:            getEnv("GEN_MODEL", "gemini-1.5-flash"),
		EntityRegistry:      getEnvList("ENTITY_REGISTRY", DefaultEntityRegistry),
		MaxContextChars:     getEnvInt("MAX_CONTEXT_CHARS", 24000),
		MaxThumbnails:       getEnvInt("MAX_THUMBNAILS", 6),
		ThumbnailMaxDim:     getEnvInt("THUMBNAIL_MAX_DIM", 400),
		ThumbnailQuality:    getEnvInt("THUMBNAIL_QUALITY", 85),
		SummarizeTimeout:    getEnvDuration("SUMMARIZE_TIMEOUT", 60*time.Second),
		InstructionTemplate: getEnv("INSTRUCTION_TEMPLATE", DefaultInstructionTemplate),
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_MB", 100)) << 20,
	}

	if cfg.AIAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set; summarization requests will fail")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a duration, using default %s", key, v, def)
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
