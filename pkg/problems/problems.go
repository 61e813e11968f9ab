package problems

import (
	"encoding/json"
	"net/http"
	"os"

	"userkit/pkg/baseurl"
)

// Base returns the base URL for problem type identifiers.
// Order of precedence:
// 1. PROBLEM_BASE_URL (exact base, e.g. https://mydomain.com/problems)
// 2. BASE_PUBLIC_URL + "/problems" (if set)
// 3. https://example.com/problems (fallback)
func Base() string {
	if b := os.Getenv("PROBLEM_BASE_URL"); b != "" {
		return baseurl.TrimTrailing(b)
	}
	if b := os.Getenv("BASE_PUBLIC_URL"); b != "" {
		return baseurl.Join(b, "problems")
	}
	return "https://example.com/problems"
}

// Type builds a full problem type URL for the given slug.
func Type(slug string) string { return baseurl.Join(Base(), slug) }

// Problem is an RFC 7807 problem document.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Param  string `json:"param,omitempty"`
}

// Write sends a problem+json response.
func Write(w http.ResponseWriter, status int, slug, detail, param string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Type:   Type(slug),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Param:  param,
	})
}
