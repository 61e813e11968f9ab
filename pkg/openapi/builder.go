package openapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Operation represents a single HTTP operation to surface in OpenAPI.
type Operation struct {
	Method      string         `json:"method"`
	Path        string         `json:"path"`
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Parameters  []Parameter    `json:"parameters,omitempty"`
	Responses   map[string]any `json:"responses"`
}

// Parameter is a query parameter. Only string, boolean and integer schemas
// are used by this service.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"-"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Registry holds registered operations.
type Registry struct {
	Ops []Operation
}

func NewRegistry() *Registry { return &Registry{Ops: []Operation{}} }

func (r *Registry) Register(op Operation) {
	if op.Method != "" {
		op.Method = strings.ToLower(op.Method)
	}
	r.Ops = append(r.Ops, op)
}

// Build produces a minimal OpenAPI 3.1 document representing the currently
// registered operations. Components/schemas are kept inline for brevity.
func (r *Registry) Build(serviceName, version string) map[string]any {
	paths := map[string]any{}
	for _, op := range r.Ops {
		if _, ok := paths[op.Path]; !ok {
			paths[op.Path] = map[string]any{}
		}
		m := map[string]any{
			"summary":     op.Summary,
			"description": op.Description,
			"tags":        op.Tags,
			"responses":   op.Responses,
		}
		if len(op.Parameters) > 0 {
			params := make([]map[string]any, 0, len(op.Parameters))
			for _, p := range op.Parameters {
				typ := p.Type
				if typ == "" {
					typ = "string"
				}
				params = append(params, map[string]any{
					"name":        p.Name,
					"in":          "query",
					"description": p.Description,
					"required":    p.Required,
					"schema":      map[string]any{"type": typ},
				})
			}
			m["parameters"] = params
		}
		paths[op.Path].(map[string]any)[op.Method] = m
	}
	return map[string]any{
		"openapi": "3.1.0",
		"info":    map[string]any{"title": serviceName, "version": version},
		"paths":   paths,
	}
}

// ServeHandler returns an HTTP handler that serves the built OpenAPI JSON.
func (r *Registry) ServeHandler(serviceName, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(r.Build(serviceName, version))
	}
}
