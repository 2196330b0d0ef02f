// Package resolver turns intercepted resource URLs into canonical filesystem paths.
package resolver

import (
	"net/url"
	"regexp"
	"runtime"
	"strings"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver maps request URLs to filesystem paths and classifies them as bypass or compile.
type Resolver struct {
	goos   string
	bypass *regexp.Regexp
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGOOS overrides the platform used for path canonicalization.
func WithGOOS(goos string) Option {
	return func(r *Resolver) {
		r.goos = goos
	}
}

// New creates a Resolver that bypasses paths containing any of the given segments.
// A nil segment list falls back to domain.DefaultBypassSegments; an empty
// non-nil list disables bypass.
func New(segments []string, opts ...Option) *Resolver {
	if segments == nil {
		segments = domain.DefaultBypassSegments()
	}
	r := &Resolver{
		goos:   runtime.GOOS,
		bypass: compileBypass(segments),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// compileBypass builds a matcher for a separator followed by one of the segments.
func compileBypass(segments []string) *regexp.Regexp {
	quoted := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, `/\`)
		if s == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(s))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`[/\\](?:` + strings.Join(quoted, "|") + `)`)
}

// Resolve parses rawURL and returns the canonical path it refers to.
//
// A URL whose host is longer than one character cannot be resolved: it is a
// protocol-relative reference that was parsed as having a host, and no rewrite is attempted.
// A single-character host is ignored.
func (r *Resolver) Resolve(rawURL string) (domain.ResolvedPath, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrMalformedRequestURL.Error())
		return domain.ResolvedPath{}, zerr.With(err, "url", rawURL)
	}

	if len(u.Host) > 1 {
		return domain.ResolvedPath{}, zerr.With(domain.ErrCannotResolveRelative, "url", rawURL)
	}

	// EscapedPath keeps the original encoding, so decoding happens exactly once here.
	path, err := url.PathUnescape(u.EscapedPath())
	if err != nil {
		err = zerr.Wrap(err, domain.ErrMalformedRequestURL.Error())
		return domain.ResolvedPath{}, zerr.With(err, "url", rawURL)
	}

	if r.goos == "windows" && len(path) > 0 && (path[0] == '/' || path[0] == '\\') {
		path = path[1:]
	}

	return domain.ResolvedPath{
		Path:   path,
		Bypass: r.IsBypass(path),
	}, nil
}

// IsBypass reports whether path lies in a tree that is served without compilation.
func (r *Resolver) IsBypass(path string) bool {
	return r.bypass != nil && r.bypass.MatchString(path)
}
