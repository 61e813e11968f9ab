// pkg/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"userkit/pkg/env"
)

type Config struct {
	Env         string
	HTTPAddr    string
	ServiceName string

	// Bundler-style .env files; when set they become the bundler store.
	BundlerEnvFiles []string
	// YAML snapshot with server/bundler sections; replaces both stores.
	EnvSnapshot string
	// Freeze the environment once at startup instead of reading it live.
	FreezeEnv bool

	DebugDoubleWrite bool
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:              get("USERKIT_ENV", "dev"),
		HTTPAddr:         get("USERKIT_HTTP_ADDR", ":8080"),
		ServiceName:      get("USERKIT_SERVICE_NAME", "userkit"),
		BundlerEnvFiles:  getList("USERKIT_BUNDLER_ENV_FILES"),
		EnvSnapshot:      get("USERKIT_ENV_SNAPSHOT", ""),
		FreezeEnv:        getBool("USERKIT_FREEZE_ENV", true),
		DebugDoubleWrite: getBool("DEBUG_DOUBLE_WRITE", false),
	}
	if cfg.EnvSnapshot != "" && len(cfg.BundlerEnvFiles) > 0 {
		log.Println("[WARN] USERKIT_ENV_SNAPSHOT set; ignoring USERKIT_BUNDLER_ENV_FILES")
	}
	return cfg
}

// Environment builds the runtime environment the helpers read from.
// A snapshot file wins; otherwise the process environment is the server
// store and the bundler .env files, if any, are the bundler store.
func Environment(cfg Config) (*env.Environment, error) {
	var e *env.Environment
	switch {
	case cfg.EnvSnapshot != "":
		var err error
		if e, err = env.LoadYAML(cfg.EnvSnapshot); err != nil {
			return nil, err
		}
	default:
		e = env.FromOS()
		if len(cfg.BundlerEnvFiles) > 0 {
			m, err := env.LoadDotenv(cfg.BundlerEnvFiles...)
			if err != nil {
				return nil, fmt.Errorf("bundler env: %w", err)
			}
			e.Bundler = m
		}
	}
	if cfg.FreezeEnv {
		e = e.Snapshot()
	}
	return e, nil
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
	return def
}
func getList(k string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
