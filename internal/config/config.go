package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "profolio"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "profolio"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: PROFOLIO_* (highest among these sources)
	v.SetEnvPrefix("profolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize a few dependent values post-merge
	if strings.TrimSpace(v.GetString("output_dir")) == "" {
		v.Set("output_dir", "public")
	}
	v.Set("output_dir", expandHome(v.GetString("output_dir")))
	if dir := v.GetString("partials_dir"); dir != "" {
		v.Set("partials_dir", expandHome(dir))
	}
	if dir := v.GetString("static_dir"); dir != "" {
		v.Set("static_dir", expandHome(dir))
	}
	return nil
}

// CheckConfigValidity reports every invalid setting at once so a user can fix
// a config file in one pass.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if strings.TrimSpace(v.GetString("output_dir")) == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}
	if strings.TrimSpace(v.GetString("http_addr")) == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}

	switch v.GetString("render.dialect") {
	case "markdown", "plain":
	default:
		errs = append(errs, fmt.Errorf("render.dialect must be markdown or plain, got %q", v.GetString("render.dialect")))
	}

	if v.GetInt("list.page_size") <= 0 {
		errs = append(errs, errors.New("list.page_size must be greater than 0"))
	}
	if v.GetInt("serve.debounce_ms") < 0 {
		errs = append(errs, errors.New("serve.debounce_ms must not be negative"))
	}

	if raw := strings.TrimSpace(v.GetString("source.url")); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("source.url has invalid url %q", raw))
		}
	}

	return errors.Join(errs...)
}

// expandHome expands a leading ~ for convenience.
func expandHome(dir string) string {
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[1:])
		}
	}
	return dir
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "profolio", "config.toml")
}
