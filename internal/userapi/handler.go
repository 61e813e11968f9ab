// Package userapi exposes the base-URL, display-name and avatar helpers over
// HTTP so that non-Go front-ends resolve them the same way.
package userapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"userkit/pkg/baseurl"
	"userkit/pkg/env"
	"userkit/pkg/logger"
	"userkit/pkg/openapi"
	"userkit/pkg/problems"
	"userkit/pkg/user"
)

const (
	opBaseURL      = "base_url"
	opDisplayName  = "display_name"
	opAvatar       = "avatar"
	opProfilePhoto = "profile_photo"
)

type handler struct {
	env     *env.Environment
	dev     *logger.Dev
	metrics *Metrics
}

// RegisterRoutes mounts the resolution endpoints and documents them in reg.
// GET /v1/base-url       ?base_url&api_path
// GET /v1/display-name   ?full_name&use_full_name&max_length
// GET /v1/avatar         ?path&fallback&base_url&no_prefix
// GET /v1/profile-photo  ?role&photo_path&user_avatar_path&admin_avatar_path
// GET /v1/environment
func RegisterRoutes(r chi.Router, e *env.Environment, log *zap.SugaredLogger, m *Metrics, reg *openapi.Registry) {
	h := &handler{env: e, dev: logger.NewDev(e, log), metrics: m}

	r.Get("/v1/base-url", h.baseURL)
	r.Get("/v1/display-name", h.displayName)
	r.Get("/v1/avatar", h.avatar)
	r.Get("/v1/profile-photo", h.profilePhoto)
	r.Get("/v1/environment", h.environment)

	document(reg)
}

func (h *handler) baseURL(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	out := baseurl.Resolve(h.env, baseurl.Options{
		BaseURL: q.Get("base_url"),
		APIPath: q.Get("api_path"),
	})
	h.metrics.resolved(opBaseURL, "ok")
	writeJSON(w, map[string]string{"base_url": out}, http.StatusOK)
}

func (h *handler) displayName(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	full, err := queryBool(q.Get("use_full_name"))
	if err != nil {
		h.badRequest(w, opDisplayName, "use_full_name", err)
		return
	}
	maxLength := 0
	if v := q.Get("max_length"); v != "" {
		if maxLength, err = strconv.Atoi(v); err != nil || maxLength < 1 {
			h.badRequest(w, opDisplayName, "max_length", fmt.Errorf("must be a positive integer, got %q", v))
			return
		}
	}
	out := user.DisplayName(user.DisplayNameOptions{
		FullName:    q.Get("full_name"),
		UseFullName: full,
		MaxLength:   maxLength,
	})
	h.metrics.resolved(opDisplayName, "ok")
	writeJSON(w, map[string]string{"display_name": out}, http.StatusOK)
}

func (h *handler) avatar(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	noPrefix, err := queryBool(q.Get("no_prefix"))
	if err != nil {
		h.badRequest(w, opAvatar, "no_prefix", err)
		return
	}
	out, src := user.ResolveAvatarSource(h.env, user.AvatarOptions{
		Path:     q.Get("path"),
		Fallback: q.Get("fallback"),
		BaseURL:  q.Get("base_url"),
		NoPrefix: noPrefix,
	})
	if src == user.SourceInsecureRejected {
		h.dev.Warn(logger.Options{Message: "insecure avatar URL replaced by fallback", Data: q.Get("path")})
	}
	h.metrics.resolved(opAvatar, string(src))
	writeJSON(w, map[string]string{"avatar_url": out, "source": string(src)}, http.StatusOK)
}

func (h *handler) profilePhoto(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	out := user.DefaultProfilePhoto(h.env, user.ProfilePhotoOptions{
		Role:            q.Get("role"),
		PhotoPath:       q.Get("photo_path"),
		UserAvatarPath:  q.Get("user_avatar_path"),
		AdminAvatarPath: q.Get("admin_avatar_path"),
	})
	h.metrics.resolved(opProfilePhoto, "ok")
	writeJSON(w, map[string]string{"photo_url": out}, http.StatusOK)
}

func (h *handler) environment(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"runtime":             h.env.Runtime(),
		"server_runtime":      h.env.ServerRuntime(),
		"bundler_runtime":     h.env.BundlerRuntime(),
		"development":         h.env.Development(),
		"logging_enabled":     h.env.LoggingEnabled(),
		"has_server_api_url":  h.env.HasServerAPIURL(),
		"has_bundler_api_url": h.env.HasBundlerAPIURL(),
	}, http.StatusOK)
}

func (h *handler) badRequest(w http.ResponseWriter, op, param string, err error) {
	h.metrics.rejected(op)
	h.dev.Log(logger.Options{Message: "rejected " + op + " request", Data: err.Error()})
	problems.Write(w, http.StatusBadRequest, "invalid-parameter", param+": "+err.Error(), param)
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("must be a boolean, got %q", v)
	}
	return b, nil
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
