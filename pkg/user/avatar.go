package user

import (
	"strings"

	"userkit/pkg/baseurl"
	"userkit/pkg/env"
)

const (
	DefaultAvatar     = "/avatars/avatar.webp"
	DefaultUserAvatar = "/avatars/user.png"

	RoleAdmin = "admin"
)

type AvatarOptions struct {
	// Path is a stored avatar path or absolute URL. Empty means none.
	Path string
	// Fallback defaults to DefaultAvatar.
	Fallback string
	// BaseURL prefixes relative paths. Empty means baseurl.Resolve.
	BaseURL string
	// NoPrefix returns relative paths unchanged.
	NoPrefix bool
}

// AvatarSource records which rule produced an avatar URL.
type AvatarSource string

const (
	SourceFallback         AvatarSource = "fallback"
	SourceSecure           AvatarSource = "secure"
	SourceInsecureDev      AvatarSource = "insecure-dev"
	SourceInsecureRejected AvatarSource = "insecure-rejected"
	SourceVerbatim         AvatarSource = "verbatim"
	SourcePrefixed         AvatarSource = "prefixed"
)

// ResolveAvatar turns a stored avatar path into a displayable URL.
func ResolveAvatar(e *env.Environment, opts AvatarOptions) string {
	url, _ := ResolveAvatarSource(e, opts)
	return url
}

// ResolveAvatarSource is ResolveAvatar that also reports the rule applied.
// http:// URLs are only allowed in development; outside it they are
// replaced by the fallback.
func ResolveAvatarSource(e *env.Environment, opts AvatarOptions) (string, AvatarSource) {
	fallback := opts.Fallback
	if fallback == "" {
		fallback = DefaultAvatar
	}
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return fallback, SourceFallback
	}

	switch lower := strings.ToLower(path); {
	case strings.HasPrefix(lower, "https://"):
		return path, SourceSecure
	case strings.HasPrefix(lower, "http://"):
		if e.Development() {
			return path, SourceInsecureDev
		}
		return fallback, SourceInsecureRejected
	}

	if opts.NoPrefix {
		return path, SourceVerbatim
	}
	base := opts.BaseURL
	if base == "" {
		base = baseurl.Resolve(e, baseurl.Options{})
	}
	return baseurl.TrimTrailing(base) + "/" + strings.TrimLeft(path, "/"), SourcePrefixed
}

type ProfilePhotoOptions struct {
	Role      string
	PhotoPath string
	// UserAvatarPath defaults to DefaultUserAvatar.
	UserAvatarPath  string
	AdminAvatarPath string
}

// DefaultProfilePhoto is the role-based resolver that predates ResolveAvatar.
//
// Deprecated: use ResolveAvatar.
func DefaultProfilePhoto(e *env.Environment, opts ProfilePhotoOptions) string {
	if opts.PhotoPath != "" {
		return baseurl.Resolve(e, baseurl.Options{}) + "/" + opts.PhotoPath
	}
	if opts.Role == RoleAdmin && opts.AdminAvatarPath != "" {
		return opts.AdminAvatarPath
	}
	if opts.UserAvatarPath != "" {
		return opts.UserAvatarPath
	}
	return DefaultUserAvatar
}
