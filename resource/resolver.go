// Package resource resolves carousel resource paths against a file tree
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/lixenwraith/vi-carousel/carousel"
)

// FSResolver resolves paths inside an fs.FS
//
// A directory resolves to every visible file it contains, in name order.
// A file resolves to itself. A path with no extension also matches "path.*",
// so "slides/intro" finds "slides/intro.txt".
type FSResolver struct {
	fsys fs.FS
	// Extensions limits matches to these suffixes when non-empty (e.g. ".txt")
	Extensions []string
}

// NewFSResolver creates a resolver rooted at fsys
func NewFSResolver(fsys fs.FS, extensions ...string) *FSResolver {
	return &FSResolver{fsys: fsys, Extensions: extensions}
}

// Resolve implements carousel.Resolver
func (r *FSResolver) Resolve(p string) ([]carousel.Resource, error) {
	clean := path.Clean(strings.TrimPrefix(p, "/"))
	if clean == "" || clean == "." || !fs.ValidPath(clean) {
		return nil, fmt.Errorf("invalid resource path %q", p)
	}

	info, err := fs.Stat(r.fsys, clean)
	switch {
	case err == nil && info.IsDir():
		return r.resolveDir(clean)
	case err == nil:
		if !r.accepts(clean) {
			log.Printf("Skipping filtered resource: %s", clean)
			return nil, nil
		}
		res, err := r.load(clean)
		if err != nil {
			return nil, err
		}
		return []carousel.Resource{res}, nil
	case errors.Is(err, fs.ErrNotExist):
		return r.resolveStem(clean)
	default:
		return nil, fmt.Errorf("stat %s: %w", clean, err)
	}
}

func (r *FSResolver) resolveDir(dir string) ([]carousel.Resource, error) {
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var out []carousel.Resource
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			log.Printf("Skipping hidden resource: %s", name)
			continue
		}
		if !r.accepts(name) {
			continue
		}
		res, err := r.load(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	log.Printf("Resolved %d resource(s) in %s", len(out), dir)
	return out, nil
}

func (r *FSResolver) resolveStem(stem string) ([]carousel.Resource, error) {
	matches, err := fs.Glob(r.fsys, stem+".*")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", stem, err)
	}
	sort.Strings(matches)

	var out []carousel.Resource
	for _, m := range matches {
		if !r.accepts(m) {
			continue
		}
		res, err := r.load(m)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("resolve %s: %w", stem, fs.ErrNotExist)
	}
	return out, nil
}

func (r *FSResolver) load(p string) (carousel.Resource, error) {
	body, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return carousel.Resource{}, fmt.Errorf("read resource %s: %w", p, err)
	}
	base := path.Base(p)
	return carousel.Resource{
		Name: strings.TrimSuffix(base, path.Ext(base)),
		Path: p,
		Body: body,
	}, nil
}

func (r *FSResolver) accepts(name string) bool {
	if len(r.Extensions) == 0 {
		return true
	}
	ext := path.Ext(name)
	for _, want := range r.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Static resolves from a fixed map, unknown paths resolve to nothing
type Static map[string][]carousel.Resource

// Resolve implements carousel.Resolver
func (s Static) Resolve(p string) ([]carousel.Resource, error) {
	return s[p], nil
}
