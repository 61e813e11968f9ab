// Package env reads the runtime configuration that the URL and presentation
// helpers depend on.
//
// Two environment stores are modelled: the server-style store (process
// environment, as seen by Node/Next.js style runtimes) and the bundler-style
// store (build-time injected variables, as seen by Vite style runtimes).
// Either may be absent. A nil store is never an error; every lookup against
// it reports "not set".
package env

import (
	"os"
)

// Server-style keys.
const (
	KeyPublicAPIURL        = "NEXT_PUBLIC_API_URL"
	KeyAPIURL              = "API_URL"
	KeyNodeEnv             = "NODE_ENV"
	KeyPublicEnableLogging = "NEXT_PUBLIC_ENABLE_LOGGING"
)

// Bundler-style keys.
const (
	KeyBundlerAPIURL        = "VITE_API_BASE_URL"
	KeyBundlerDevAPIURL     = "VITE_DEV_API_URL"
	KeyBundlerEnableLogging = "VITE_ENABLE_LOGGING"
	KeyMode                 = "MODE"
)

const development = "development"

// ServerKeys and BundlerKeys list every key Snapshot copies.
var (
	ServerKeys  = []string{KeyPublicAPIURL, KeyAPIURL, KeyNodeEnv, KeyPublicEnableLogging}
	BundlerKeys = []string{KeyBundlerAPIURL, KeyBundlerDevAPIURL, KeyBundlerEnableLogging, KeyMode}
)

// Lookup is a read-only key/value store.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// Map is an immutable in-memory Lookup.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// OS reads the live process environment.
type OS struct{}

func (OS) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// Runtime names which environment stores are present.
type Runtime string

const (
	RuntimeNone    Runtime = "none"
	RuntimeServer  Runtime = "server"
	RuntimeBundler Runtime = "bundler"
	RuntimeBoth    Runtime = "both"
)

// Environment pairs the two stores. The zero value, and a nil *Environment,
// behave as if neither runtime were present.
type Environment struct {
	Server  Lookup
	Bundler Lookup
}

func New(server, bundler Lookup) *Environment {
	return &Environment{Server: server, Bundler: bundler}
}

// FromOS returns an Environment whose server store is the process
// environment and which has no bundler store.
func FromOS() *Environment {
	return &Environment{Server: OS{}}
}

// ServerRuntime reports whether a server-style store is available.
func (e *Environment) ServerRuntime() bool { return e != nil && e.Server != nil }

// BundlerRuntime reports whether a bundler-style store is available.
func (e *Environment) BundlerRuntime() bool { return e != nil && e.Bundler != nil }

func (e *Environment) Runtime() Runtime {
	switch s, b := e.ServerRuntime(), e.BundlerRuntime(); {
	case s && b:
		return RuntimeBoth
	case s:
		return RuntimeServer
	case b:
		return RuntimeBundler
	default:
		return RuntimeNone
	}
}

// ServerValue returns the server-style value for key, or "" when unset.
func (e *Environment) ServerValue(key string) string {
	if !e.ServerRuntime() {
		return ""
	}
	v, _ := e.Server.Lookup(key)
	return v
}

// BundlerValue returns the bundler-style value for key, or "" when unset.
func (e *Environment) BundlerValue(key string) string {
	if !e.BundlerRuntime() {
		return ""
	}
	v, _ := e.Bundler.Lookup(key)
	return v
}

// Development is true when either runtime signals a development build.
// The server store is checked first; the result is the OR of both.
func (e *Environment) Development() bool {
	return e.ServerValue(KeyNodeEnv) == development ||
		e.BundlerValue(KeyMode) == development ||
		e.BundlerValue(KeyBundlerEnableLogging) == "true"
}

// LoggingEnabled is the gate for the leveled logger. Unlike Development it
// also honours the server-side explicit enable flag.
func (e *Environment) LoggingEnabled() bool {
	server := e.ServerValue(KeyNodeEnv) == development ||
		e.ServerValue(KeyPublicEnableLogging) == "true"
	bundler := e.BundlerValue(KeyMode) == development ||
		e.BundlerValue(KeyBundlerEnableLogging) == "true"
	return server || bundler
}

func (e *Environment) HasServerAPIURL() bool { return e.ServerValue(KeyPublicAPIURL) != "" }

func (e *Environment) HasBundlerAPIURL() bool { return e.BundlerValue(KeyBundlerAPIURL) != "" }

// Snapshot copies every known key into fresh Maps. The returned Environment
// no longer observes changes to the underlying stores.
func (e *Environment) Snapshot() *Environment {
	out := &Environment{}
	if e.ServerRuntime() {
		out.Server = copyKeys(e.Server, ServerKeys)
	}
	if e.BundlerRuntime() {
		out.Bundler = copyKeys(e.Bundler, BundlerKeys)
	}
	return out
}

func copyKeys(src Lookup, keys []string) Map {
	m := Map{}
	for _, k := range keys {
		if v, ok := src.Lookup(k); ok {
			m[k] = v
		}
	}
	return m
}
