package api

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/smartdial/pkg/directory"
	"github.com/hazyhaar/smartdial/pkg/kit"
)

// RegisterMCPTools registers the smartdial MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *directory.Registry, opts Options) {
	ep := newEndpoints(reg, opts.withDefaults())

	kit.RegisterMCPTool(srv, mcp.NewTool("transliterate",
		mcp.WithDescription("Return the keypad-searchable Latin form of a contact name (pinyin for Chinese names, diacritics folded otherwise)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name, e.g. 李红霞 or Zoë")),
	), ep.transliterate, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &transliterateReq{Name: name}}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("match_name",
		mcp.WithDescription("Match a phone keypad query (digits or letters) against a contact name and return the character ranges to highlight."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name")),
		mcp.WithString("query", mcp.Required(), mcp.Description("Keypad query, e.g. 4664 or hong")),
	), ep.match, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return nil, err
		}
		query, err := req.RequireString("query")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &matchReq{Name: name, Query: query}}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("search_contacts",
		mcp.WithDescription("Search the loaded contact directories by keypad query, on names and phone numbers."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Keypad query")),
		mcp.WithString("directories", mcp.Description("Comma-separated directory filter")),
		mcp.WithString("regions", mcp.Description("Comma-separated region filter (e.g. fr,us)")),
		mcp.WithNumber("limit", mcp.Description(fmt.Sprintf("Maximum hits (default and max %d)", opts.withDefaults().SearchLimit))),
	), ep.search, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &searchReq{
			Query: query,
			Opts: &directory.SearchOptions{
				Directories: splitList(req.GetString("directories", "")),
				Regions:     splitList(req.GetString("regions", "")),
				Limit:       req.GetInt("limit", 0),
			},
		}}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("list_directories",
		mcp.WithDescription("List the loaded contact directories with region, source and contact count."),
	), ep.listDirectories, func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}

// NewMCPServer returns an MCP server with the smartdial tools registered.
func NewMCPServer(reg *directory.Registry, opts Options, version string) *server.MCPServer {
	srv := server.NewMCPServer("smartdial", version, server.WithToolCapabilities(false))
	RegisterMCPTools(srv, reg, opts)
	return srv
}
