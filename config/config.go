package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port             string `yaml:"port"`
	DBDSN            string `yaml:"db_dsn"`
	GeminiAPIKey     string `yaml:"gemini_api_key"`
	GeminiModel      string `yaml:"gemini_model"`
	StructuredOutput bool   `yaml:"gemini_structured_output"`
	IdentifyStrict   bool   `yaml:"identify_strict"`
	BodyLimit        string `yaml:"body_limit"`
	StaticDir        string `yaml:"static_dir"`
	GuideSeedPath    string `yaml:"guide_seed_path"`
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
}

func Defaults() AppConfig {
	return AppConfig{
		Port:        "8080",
		DBDSN:       ":memory:",
		GeminiModel: "gemini-1.5-flash",
		BodyLimit:   "10M",
		StaticDir:   "static",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads .env (if any), then the optional CONFIG_FILE yaml, then the
// environment. Later sources win.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("[cfg] no .env file loaded: %v", err)
	}

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			logrus.Warnf("[cfg] config file %s: %v", path, err)
		}
	}
	applyEnv(&cfg, os.Getenv)

	logrus.WithField("config", cfg.Redacted()).Info("[cfg] loaded")
	return cfg
}

func loadYAML(path string, cfg *AppConfig) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func applyEnv(cfg *AppConfig, getenv func(string) string) {
	str := func(k string, dst *string) {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			*dst = v
		}
	}
	flag := func(k string, dst *bool) {
		switch strings.ToLower(strings.TrimSpace(getenv(k))) {
		case "1", "true", "yes", "on":
			*dst = true
		case "0", "false", "no", "off":
			*dst = false
		}
	}

	str("PORT", &cfg.Port)
	str("DB_DSN", &cfg.DBDSN)
	str("GEMINI_API_KEY", &cfg.GeminiAPIKey)
	str("GEMINI_MODEL", &cfg.GeminiModel)
	flag("GEMINI_STRUCTURED_OUTPUT", &cfg.StructuredOutput)
	flag("IDENTIFY_STRICT", &cfg.IdentifyStrict)
	str("BODY_LIMIT", &cfg.BodyLimit)
	str("STATIC_DIR", &cfg.StaticDir)
	str("GUIDE_SEED_PATH", &cfg.GuideSeedPath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
}

// Redacted returns a copy safe to log.
func (c AppConfig) Redacted() AppConfig {
	if c.GeminiAPIKey != "" {
		c.GeminiAPIKey = "***"
	}
	return c
}
