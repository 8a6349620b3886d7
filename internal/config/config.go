package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds every runtime setting of the game
type AppConfig struct {
	StrokeMin  int
	StrokeMax  int
	MaxGuesses int

	CanvasWidth  int
	CanvasHeight int

	ExportDir      string
	ExportFilename string
	ExportLabel    string
	ExportQuality  int
	ShareViaOS     bool

	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &AppConfig{
		StrokeMin:      1,
		StrokeMax:      50,
		MaxGuesses:     3,
		CanvasWidth:    800,
		CanvasHeight:   600,
		ExportDir:      defaultExportDir(),
		ExportFilename: "linewidth.jpg",
		ExportQuality:  90,
		SessionTTL:     2 * time.Hour,
	}

	var err error
	if cfg.StrokeMin, err = intEnv("STROKE_MIN", cfg.StrokeMin); err != nil {
		return nil, err
	}
	if cfg.StrokeMax, err = intEnv("STROKE_MAX", cfg.StrokeMax); err != nil {
		return nil, err
	}
	if cfg.MaxGuesses, err = intEnv("MAX_GUESSES", cfg.MaxGuesses); err != nil {
		return nil, err
	}
	if cfg.CanvasWidth, err = intEnv("CANVAS_WIDTH", cfg.CanvasWidth); err != nil {
		return nil, err
	}
	if cfg.CanvasHeight, err = intEnv("CANVAS_HEIGHT", cfg.CanvasHeight); err != nil {
		return nil, err
	}
	if cfg.ExportQuality, err = intEnv("EXPORT_QUALITY", cfg.ExportQuality); err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(os.Getenv("EXPORT_DIR")); v != "" {
		cfg.ExportDir = v
	}
	if v := strings.TrimSpace(os.Getenv("EXPORT_FILENAME")); v != "" {
		cfg.ExportFilename = v
	}
	cfg.ExportLabel = strings.TrimSpace(os.Getenv("EXPORT_LABEL"))

	if v := strings.TrimSpace(os.Getenv("SHARE_VIA_OS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SHARE_VIA_OS: %w", err)
		}
		cfg.ShareViaOS = b
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := strings.TrimSpace(os.Getenv("SESSION_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings for consistency
func (c *AppConfig) Validate() error {
	if c.StrokeMin < 1 {
		return errors.New("STROKE_MIN must be at least 1")
	}
	if c.StrokeMax < c.StrokeMin {
		return errors.New("STROKE_MAX must not be below STROKE_MIN")
	}
	if c.MaxGuesses < 1 {
		return errors.New("MAX_GUESSES must be at least 1")
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return errors.New("CANVAS_WIDTH and CANVAS_HEIGHT must be positive")
	}
	if c.ExportQuality < 1 || c.ExportQuality > 100 {
		return errors.New("EXPORT_QUALITY must be between 1 and 100")
	}
	if strings.ContainsAny(c.ExportFilename, `/\`) {
		return errors.New("EXPORT_FILENAME must be a bare file name")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// UseRedis reports whether session state goes to Redis
func (c *AppConfig) UseRedis() bool {
	return c.RedisAddr != ""
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
