package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	OCR      OCRConfig
	Classify ClassifyConfig
	Extract  ExtractConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// OCRConfig holds the OCR engine invocation settings. The PSM/OEM values
// default to the empirically tuned `--oem 3 --psm 6` configuration; changing
// them changes recognition behavior on the target document set, so they are
// deliberately first-class here rather than buried in the engine call.
type OCRConfig struct {
	Tesseract  string `mapstructure:"tesseract"`  // binary name or absolute path
	Pdftoppm   string `mapstructure:"pdftoppm"`   // binary name or absolute path
	Lang       string `mapstructure:"lang"`       // tesseract language, default "eng"
	DPI        int    `mapstructure:"dpi"`        // rasterization DPI for forced OCR, default 300
	PSM        int    `mapstructure:"psm"`        // page segmentation mode, default 6
	OEM        int    `mapstructure:"oem"`        // OCR engine mode, default 3
	Preprocess bool   `mapstructure:"preprocess"` // grayscale/blur/threshold cleanup before OCR
}

// ClassifyConfig holds classifier settings.
type ClassifyConfig struct {
	// RulesPath optionally points at a JSON file of extra vendor signature
	// rules, loaded between the builtin vendor rules and the generic rules.
	RulesPath string `mapstructure:"rules_path"`
}

// ExtractConfig holds field-extraction settings.
type ExtractConfig struct {
	// VendorFallbacks re-enables the legacy constant defaults some vendor
	// matchers carry (e.g. gross_weight_kg "39" on Delta Freight invoices).
	// Off by default: an unmatched field degrades to the "N/A" sentinel.
	VendorFallbacks bool `mapstructure:"vendor_fallbacks"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the CARGOSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CARGOSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 50)

	// OCR defaults
	v.SetDefault("ocr.tesseract", "tesseract")
	v.SetDefault("ocr.pdftoppm", "pdftoppm")
	v.SetDefault("ocr.lang", "eng")
	v.SetDefault("ocr.dpi", 300)
	v.SetDefault("ocr.psm", 6)
	v.SetDefault("ocr.oem", 3)
	v.SetDefault("ocr.preprocess", true)

	// Classifier defaults
	v.SetDefault("classify.rules_path", "")

	// Extraction defaults
	v.SetDefault("extract.vendor_fallbacks", false)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "CARGOSCAN_SERVER_PORT",
		"server.read_timeout":      "CARGOSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "CARGOSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":       "CARGOSCAN_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb":  "CARGOSCAN_UPLOAD_MAX_FILE_SIZE_MB",
		"ocr.tesseract":            "CARGOSCAN_OCR_TESSERACT",
		"ocr.pdftoppm":             "CARGOSCAN_OCR_PDFTOPPM",
		"ocr.lang":                 "CARGOSCAN_OCR_LANG",
		"ocr.dpi":                  "CARGOSCAN_OCR_DPI",
		"ocr.psm":                  "CARGOSCAN_OCR_PSM",
		"ocr.oem":                  "CARGOSCAN_OCR_OEM",
		"ocr.preprocess":           "CARGOSCAN_OCR_PREPROCESS",
		"classify.rules_path":      "CARGOSCAN_CLASSIFY_RULES_PATH",
		"extract.vendor_fallbacks": "CARGOSCAN_EXTRACT_VENDOR_FALLBACKS",
		"cors.allowed_origins":     "CARGOSCAN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CARGOSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CARGOSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.OCR = OCRConfig{
		Tesseract:  v.GetString("ocr.tesseract"),
		Pdftoppm:   v.GetString("ocr.pdftoppm"),
		Lang:       v.GetString("ocr.lang"),
		DPI:        v.GetInt("ocr.dpi"),
		PSM:        v.GetInt("ocr.psm"),
		OEM:        v.GetInt("ocr.oem"),
		Preprocess: v.GetBool("ocr.preprocess"),
	}
	cfg.Classify = ClassifyConfig{
		RulesPath: v.GetString("classify.rules_path"),
	}
	cfg.Extract = ExtractConfig{
		VendorFallbacks: v.GetBool("extract.vendor_fallbacks"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("upload.max_file_size_mb must be positive, got %d", c.Upload.MaxFileSizeMB)
	}
	if c.OCR.DPI <= 0 {
		return fmt.Errorf("ocr.dpi must be positive, got %d", c.OCR.DPI)
	}
	if c.OCR.PSM < 0 || c.OCR.PSM > 13 {
		return fmt.Errorf("ocr.psm must be in 0..13, got %d", c.OCR.PSM)
	}
	if c.OCR.OEM < 0 || c.OCR.OEM > 3 {
		return fmt.Errorf("ocr.oem must be in 0..3, got %d", c.OCR.OEM)
	}
	return nil
}
