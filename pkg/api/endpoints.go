package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hazyhaar/smartdial/pkg/directory"
	"github.com/hazyhaar/smartdial/pkg/kit"
	"github.com/hazyhaar/smartdial/pkg/smartdial"
)

// ErrInvalidRequest marks errors caused by the caller's input.
var ErrInvalidRequest = errors.New("invalid request")

// DefaultSearchLimit bounds search results when Options.SearchLimit is unset.
const DefaultSearchLimit = 50

// Options configure the HTTP and MCP transports.
type Options struct {
	Logger      *slog.Logger
	SearchLimit int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.SearchLimit <= 0 {
		o.SearchLimit = DefaultSearchLimit
	}
	return o
}

// Shared request/response types used by both HTTP and MCP transports.

type transliterateReq struct {
	Name string
}

type transliterateResponse struct {
	Name            string `json:"name"`
	Transliteration string `json:"transliteration"`
	Script          string `json:"script"`
}

type matchReq struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

type matchResponse struct {
	Name       string            `json:"name"`
	Query      string            `json:"query"`
	Digits     string            `json:"digits"`
	Matched    bool              `json:"matched"`
	Ranges     []smartdial.Range `json:"ranges"`
	Highlights []string          `json:"highlights"`
}

type searchReq struct {
	Query string
	Opts  *directory.SearchOptions
}

type directoriesResponse struct {
	Directories []directory.DirectoryInfo `json:"directories"`
}

// endpoints are the kit.Endpoints shared by every transport.
type endpoints struct {
	transliterate   kit.Endpoint
	match           kit.Endpoint
	search          kit.Endpoint
	listDirectories kit.Endpoint
}

func newEndpoints(reg *directory.Registry, opts Options) endpoints {
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(opts.Logger, name))(ep)
	}
	m := reg.Matcher()
	return endpoints{
		transliterate:   wrap("transliterate", transliterateEndpoint(m)),
		match:           wrap("match_name", matchEndpoint(m)),
		search:          wrap("search_contacts", searchEndpoint(reg, opts.SearchLimit)),
		listDirectories: wrap("list_directories", listDirectoriesEndpoint(reg)),
	}
}

func transliterateEndpoint(m *smartdial.Matcher) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*transliterateReq)
		if req.Name == "" {
			return nil, fmt.Errorf("%w: missing name", ErrInvalidRequest)
		}
		c := m.Tokenize(req.Name)
		return transliterateResponse{
			Name:            req.Name,
			Transliteration: c.Text,
			Script:          c.Kind.String(),
		}, nil
	}
}

func matchEndpoint(m *smartdial.Matcher) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*matchReq)
		if req.Name == "" {
			return nil, fmt.Errorf("%w: missing name", ErrInvalidRequest)
		}
		if req.Query == "" {
			return nil, fmt.Errorf("%w: missing query", ErrInvalidRequest)
		}
		resp := matchResponse{
			Name:       req.Name,
			Query:      req.Query,
			Digits:     m.NormalizeQuery(req.Query),
			Ranges:     []smartdial.Range{},
			Highlights: []string{},
		}
		ranges, ok := m.MatchesCombination(req.Name, req.Query)
		if !ok {
			return resp, nil
		}
		resp.Matched = true
		resp.Ranges = append(resp.Ranges, ranges...)
		runes := []rune(req.Name)
		for _, r := range ranges {
			resp.Highlights = append(resp.Highlights, string(runes[r.Start:r.End]))
		}
		return resp, nil
	}
}

func searchEndpoint(reg *directory.Registry, maxLimit int) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*searchReq)
		if req.Query == "" {
			return nil, fmt.Errorf("%w: missing query", ErrInvalidRequest)
		}
		opts := req.Opts
		if opts == nil {
			opts = &directory.SearchOptions{}
		}
		if opts.Limit < 0 {
			return nil, fmt.Errorf("%w: negative limit", ErrInvalidRequest)
		}
		if opts.Limit == 0 || opts.Limit > maxLimit {
			opts.Limit = maxLimit
		}
		return reg.Search(req.Query, opts)
	}
}

func listDirectoriesEndpoint(reg *directory.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return directoriesResponse{Directories: reg.ListDirectories()}, nil
	}
}
