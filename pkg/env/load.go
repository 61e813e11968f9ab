package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadDotenv parses bundler-style .env files into a Map. Later files override
// earlier ones. The process environment is left untouched.
func LoadDotenv(paths ...string) (Map, error) {
	m := Map{}
	for _, p := range paths {
		vals, err := godotenv.Read(p)
		if err != nil {
			return nil, fmt.Errorf("read dotenv %s: %w", p, err)
		}
		for k, v := range vals {
			m[k] = v
		}
	}
	return m, nil
}

// snapshotFile is the on-disk form read by LoadYAML:
//
//	server:
//	  NODE_ENV: development
//	bundler:
//	  VITE_API_BASE_URL: https://api.example.com
//
// An omitted section means that runtime is absent.
type snapshotFile struct {
	Server  map[string]string `yaml:"server"`
	Bundler map[string]string `yaml:"bundler"`
}

// LoadYAML builds an Environment from a snapshot file.
func LoadYAML(path string) (*Environment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read env snapshot: %w", err)
	}
	return ParseYAML(b)
}

func ParseYAML(b []byte) (*Environment, error) {
	var f snapshotFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse env snapshot: %w", err)
	}
	e := &Environment{}
	if f.Server != nil {
		e.Server = Map(f.Server)
	}
	if f.Bundler != nil {
		e.Bundler = Map(f.Bundler)
	}
	return e, nil
}
