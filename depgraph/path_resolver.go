package depgraph

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultResolveCacheSize = 4096

// CancelDot collapses "." and ".." segments textually:
//
//	CancelDot("a/b/c/../../e/./f") == "a/e/f"
//
// A ".." with nothing left to pop is dropped.
func CancelDot(s string) string {
	segments := strings.Split(s, "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case ".":
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, seg)
		}
	}
	return strings.Join(kept, "/")
}

// joinPath is path.Join without cleaning, always using '/'.
func joinPath(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return dir + "/" + name
}

type resolution struct {
	path  string
	found bool
}

// PathResolver matches raw references against the known files of a scan.
type PathResolver struct {
	files       []string
	known       map[string]bool
	suffixes    []string
	strictMatch bool
	cache       *lru.Cache[string, resolution]
}

// NewPathResolver creates a resolver over files, which must be root-relative and
// slash separated. Files are tried in the given order.
func NewPathResolver(files []string, candidateSuffixes []string, strictMatch bool) *PathResolver {
	known := make(map[string]bool, len(files))
	for _, f := range files {
		known[f] = true
	}
	cache, err := lru.New[string, resolution](defaultResolveCacheSize)
	if err != nil {
		cache = nil
	}
	return &PathResolver{
		files:       files,
		known:       known,
		suffixes:    append([]string(nil), candidateSuffixes...),
		strictMatch: strictMatch,
		cache:       cache,
	}
}

// Candidates returns the reference itself followed by every candidate suffix appended to it.
func (r *PathResolver) Candidates(ref string) []string {
	candidates := make([]string, 0, len(r.suffixes)+1)
	candidates = append(candidates, ref)
	for _, suffix := range r.suffixes {
		candidates = append(candidates, ref+suffix)
	}
	return candidates
}

// Resolve returns the first known file matching rawReference as seen from currentFileDir.
func (r *PathResolver) Resolve(rawReference, currentFileDir string) (string, bool) {
	key := currentFileDir + "\x00" + rawReference
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached.path, cached.found
		}
	}

	path, found := r.resolve(rawReference, currentFileDir)
	if r.cache != nil {
		r.cache.Add(key, resolution{path: path, found: found})
	}
	return path, found
}

func (r *PathResolver) resolve(rawReference, currentFileDir string) (string, bool) {
	for _, candidate := range r.Candidates(rawReference) {
		normalized := CancelDot(candidate)
		var joined string
		if strings.HasPrefix(candidate, "/") {
			joined = strings.TrimPrefix(normalized, "/")
		} else {
			// The reference is normalized on its own, so a leading ".." never
			// climbs above currentFileDir.
			joined = joinPath(currentFileDir, normalized)
		}

		if r.strictMatch {
			if r.known[joined] {
				return joined, true
			}
			continue
		}

		for _, f := range r.files {
			if f == joined || f == normalized || strings.HasSuffix(f, "/"+normalized) {
				return f, true
			}
		}
	}
	return "", false
}
