package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	UploadDir string
	IndexDir  string

	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	ChunkSize    int
	ChunkOverlap int
	TopK         int

	// hosts allowed for URL ingestion; empty list disables the endpoint
	URLAllowedDomains []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
		return def
	}

	var domains []string
	for _, h := range strings.Split(get("URL_ALLOWED_DOMAINS", ""), ",") {
		if h = strings.TrimSpace(h); h != "" {
			domains = append(domains, strings.ToLower(h))
		}
	}

	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            get("DB_PATH", "figchat.db"),
		UploadDir:         get("UPLOAD_DIR", "uploads"),
		IndexDir:          get("INDEX_DIR", "indices"),
		EmbEndpoint:       get("EMB_ENDPOINT", ""),
		EmbAPIKey:         get("EMB_API_KEY", ""),
		EmbModel:          get("EMB_MODEL", "text-embedding-3-small"),
		LLMEndpoint:       get("LLM_ENDPOINT", ""),
		LLMAPIKey:         get("LLM_API_KEY", ""),
		LLMModel:          get("LLM_MODEL", "gpt-4o-mini"),
		ChunkSize:         getInt("CHUNK_SIZE", 1000),
		ChunkOverlap:      getInt("CHUNK_OVERLAP", 200),
		TopK:              getInt("TOP_K", 3),
		URLAllowedDomains: domains,
	}
	log.Printf("[cfg] port=%s db=%s indices=%s emb=%s llm=%s", cfg.Port, cfg.DBPath, cfg.IndexDir, cfg.EmbModel, cfg.LLMModel)
	return cfg
}
