package userapi

import "userkit/pkg/openapi"

func jsonResponse(desc string) map[string]any {
	return map[string]any{
		"200": map[string]any{"description": desc},
		"400": map[string]any{"description": "invalid parameter (application/problem+json)"},
	}
}

func document(reg *openapi.Registry) {
	if reg == nil {
		return
	}
	reg.Register(openapi.Operation{
		Method:      "GET",
		Path:        "/v1/base-url",
		Summary:     "Resolve the API base URL",
		Description: "Explicit base_url wins; otherwise NEXT_PUBLIC_API_URL, VITE_API_BASE_URL, API_URL. Never ends in a slash.",
		Tags:        []string{"urls"},
		Parameters: []openapi.Parameter{
			{Name: "base_url", Description: "explicit base URL"},
			{Name: "api_path", Description: "path joined to the base with a single slash"},
		},
		Responses: jsonResponse("resolved base URL"),
	})
	reg.Register(openapi.Operation{
		Method:  "GET",
		Path:    "/v1/display-name",
		Summary: "Derive a display name",
		Tags:    []string{"users"},
		Parameters: []openapi.Parameter{
			{Name: "full_name", Required: true},
			{Name: "use_full_name", Type: "boolean"},
			{Name: "max_length", Type: "integer", Description: "defaults to 20"},
		},
		Responses: jsonResponse("display name"),
	})
	reg.Register(openapi.Operation{
		Method:      "GET",
		Path:        "/v1/avatar",
		Summary:     "Resolve an avatar URL",
		Description: "http:// avatars are only returned in development builds.",
		Tags:        []string{"users"},
		Parameters: []openapi.Parameter{
			{Name: "path"},
			{Name: "fallback", Description: "defaults to /avatars/avatar.webp"},
			{Name: "base_url"},
			{Name: "no_prefix", Type: "boolean"},
		},
		Responses: jsonResponse("avatar URL and the rule that produced it"),
	})
	reg.Register(openapi.Operation{
		Method:      "GET",
		Path:        "/v1/profile-photo",
		Summary:     "Role-based profile photo",
		Description: "Deprecated: use /v1/avatar.",
		Tags:        []string{"users"},
		Parameters: []openapi.Parameter{
			{Name: "role"},
			{Name: "photo_path"},
			{Name: "user_avatar_path"},
			{Name: "admin_avatar_path"},
		},
		Responses: jsonResponse("profile photo URL"),
	})
	reg.Register(openapi.Operation{
		Method:    "GET",
		Path:      "/v1/environment",
		Summary:   "Resolved runtime flags",
		Tags:      []string{"env"},
		Responses: map[string]any{"200": map[string]any{"description": "runtime, development and logging flags"}},
	})
}
