package directory

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/smartdial/pkg/smartdial"
)

// Registry holds all loaded directories and serves keypad searches.
type Registry struct {
	mu      sync.RWMutex
	dirs    map[string]*Directory
	root    string
	matcher *smartdial.Matcher
}

// NewRegistry creates an empty registry for the given root directory.
// A nil matcher uses smartdial.Default().
func NewRegistry(root string, matcher *smartdial.Matcher) *Registry {
	if matcher == nil {
		matcher = smartdial.Default()
	}
	return &Registry{
		dirs:    make(map[string]*Directory),
		root:    root,
		matcher: matcher,
	}
}

// Load scans the root directory and loads every directory with a manifest.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return fmt.Errorf("read directories dir %s: %w", r.root, err)
	}

	loaded := make(map[string]*Directory)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		d, err := LoadDirectory(dir)
		if err != nil {
			return fmt.Errorf("load directory %s: %w", entry.Name(), err)
		}
		loaded[d.Manifest.ID] = d
	}

	r.mu.Lock()
	r.dirs = loaded
	r.mu.Unlock()
	return nil
}

// Reload reloads all directories from disk. On error the previous set is
// kept.
func (r *Registry) Reload() error {
	return r.Load()
}

// Add registers an in-memory directory, replacing one with the same ID.
func (r *Registry) Add(d *Directory) {
	r.mu.Lock()
	r.dirs[d.Manifest.ID] = d
	r.mu.Unlock()
}

// Matcher returns the matcher used for searches.
func (r *Registry) Matcher() *smartdial.Matcher {
	return r.matcher
}

// Hit is one contact matched by a search.
type Hit struct {
	DirectoryID string            `json:"directory_id"`
	Name        string            `json:"name"`
	Numbers     []string          `json:"numbers,omitempty"`
	NameMatches []smartdial.Range `json:"name_matches,omitempty"`
	Number      string            `json:"number,omitempty"`
	NumberMatch *smartdial.Range  `json:"number_match,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// SearchResult is the response for a keypad search.
type SearchResult struct {
	Query     string `json:"query"`
	Digits    string `json:"digits"`
	Hits      []Hit  `json:"hits"`
	Truncated bool   `json:"truncated,omitempty"`
}

// SearchOptions are optional filters for a search.
type SearchOptions struct {
	Directories []string
	Regions     []string
	Limit       int
}

// Search matches query against every contact name and number of the
// selected directories. Hits are ordered by directory ID, then by the
// contact's position in its directory.
func (r *Registry) Search(query string, opts *SearchOptions) (*SearchResult, error) {
	result := &SearchResult{
		Query:  query,
		Digits: r.matcher.NormalizeQuery(query),
		Hits:   []Hit{},
	}
	if result.Digits == "" {
		return result, nil
	}

	r.mu.RLock()
	selected := r.selectLocked(opts)
	r.mu.RUnlock()

	perDir := make([][]Hit, len(selected))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range selected {
		g.Go(func() error {
			perDir[i] = r.searchDirectory(d, query)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	limit := 0
	if opts != nil {
		limit = opts.Limit
	}
	for _, hits := range perDir {
		for _, h := range hits {
			if limit > 0 && len(result.Hits) == limit {
				result.Truncated = true
				return result, nil
			}
			result.Hits = append(result.Hits, h)
		}
	}
	return result, nil
}

func (r *Registry) selectLocked(opts *SearchOptions) []*Directory {
	ids := make([]string, 0, len(r.dirs))
	for id := range r.dirs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Directory, 0, len(ids))
	for _, id := range ids {
		d := r.dirs[id]
		if opts != nil {
			if len(opts.Directories) > 0 && !slices.Contains(opts.Directories, id) {
				continue
			}
			if len(opts.Regions) > 0 && !slices.Contains(opts.Regions, d.Manifest.Region) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

func (r *Registry) searchDirectory(d *Directory, query string) []Hit {
	var hits []Hit
	for _, c := range d.Contacts {
		h := Hit{
			DirectoryID: d.Manifest.ID,
			Name:        c.Name,
			Numbers:     c.Numbers,
			Metadata:    c.Metadata,
		}
		ranges, nameOK := r.matcher.MatchesCombination(c.Name, query)
		if nameOK {
			h.NameMatches = ranges
		}
		numberOK := false
		for _, n := range c.Numbers {
			if rng, ok := r.matcher.MatchesNumber(n, query); ok {
				h.Number = n
				h.NumberMatch = &rng
				numberOK = true
				break
			}
		}
		if nameOK || numberOK {
			hits = append(hits, h)
		}
	}
	return hits
}

// Lookup finds contacts by normalized name across all directories, in
// directory ID order.
func (r *Registry) Lookup(name string) []Hit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hits := []Hit{}
	for _, d := range r.selectLocked(nil) {
		for _, c := range d.Lookup(name) {
			hits = append(hits, Hit{
				DirectoryID: d.Manifest.ID,
				Name:        c.Name,
				Numbers:     c.Numbers,
				Metadata:    c.Metadata,
			})
		}
	}
	return hits
}

// DirectoryInfo is the public metadata for a loaded directory.
type DirectoryInfo struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Region    string `json:"region"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
	License   string `json:"license,omitempty"`
	Contacts  int    `json:"contacts"`
}

// ListDirectories returns metadata for all loaded directories, sorted by ID.
func (r *Registry) ListDirectories() []DirectoryInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]DirectoryInfo, 0, len(r.dirs))
	for _, d := range r.dirs {
		infos = append(infos, DirectoryInfo{
			ID:        d.Manifest.ID,
			Version:   d.Manifest.Version,
			Region:    d.Manifest.Region,
			Source:    d.Manifest.Source,
			SourceURL: d.Manifest.SourceURL,
			License:   d.Manifest.License,
			Contacts:  len(d.Contacts),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// DirectoryCount returns the number of loaded directories.
func (r *Registry) DirectoryCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dirs)
}

// TotalContacts returns the number of contacts across all directories.
func (r *Registry) TotalContacts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, d := range r.dirs {
		total += len(d.Contacts)
	}
	return total
}
