// Package baseurl derives the API base URL from explicit overrides or the
// environment, normalizing slashes.
package baseurl

import (
	"strings"

	"userkit/pkg/env"
)

// Options overrides the environment. Empty fields are "not given".
type Options struct {
	BaseURL string
	APIPath string
}

// Resolve returns the API base URL.
// Order of precedence:
// 1. BaseURL (+ APIPath when both are given)
// 2. NEXT_PUBLIC_API_URL (server)
// 3. VITE_API_BASE_URL (bundler)
// 4. API_URL (server)
// 5. "" (APIPath is still joined, giving "/path")
//
// The result never ends in "/".
func Resolve(e *env.Environment, opts Options) string {
	if opts.BaseURL != "" {
		if opts.APIPath != "" {
			return Join(opts.BaseURL, opts.APIPath)
		}
		return TrimTrailing(opts.BaseURL)
	}
	base := firstNonEmpty(
		e.ServerValue(env.KeyPublicAPIURL),
		e.BundlerValue(env.KeyBundlerAPIURL),
		e.ServerValue(env.KeyAPIURL),
	)
	if opts.APIPath != "" {
		return Join(base, opts.APIPath)
	}
	return TrimTrailing(base)
}

// Join strips trailing slashes from base and surrounding slashes from path
// and joins them with exactly one "/". A path made only of slashes adds
// nothing.
func Join(base, path string) string {
	base = TrimTrailing(base)
	path = strings.Trim(path, "/")
	if path == "" {
		return base
	}
	return base + "/" + path
}

func TrimTrailing(s string) string { return strings.TrimRight(s, "/") }

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
