package chassis

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}

func startServer(t *testing.T) string {
	t.Helper()
	mcpSrv := server.NewMCPServer("test", "1", server.WithToolCapabilities(false))
	mcpSrv.AddTool(mcp.NewTool("echo", mcp.WithString("text", mcp.Required())),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(req.GetString("text", "")), nil
		})

	addr := freeAddr(t)
	srv, err := New(Config{
		Addr:      addr,
		Handler:   http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { io.WriteString(w, "ok") }),
		MCPServer: mcpSrv,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	t.Cleanup(func() {
		cancel()
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		srv.Stop(stopCtx)
		<-done
	})

	// Wait for the TCP listener.
	require.Eventually(t, func() bool {
		c, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		c.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)
	return addr
}

func dialMCP(t *testing.T, addr string) (*quic.Stream, *bufio.Reader) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := quic.DialAddr(ctx, addr, &tls.Config{InsecureSkipVerify: true, NextProtos: []string{ALPNMCP}}, QUICConfig())
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseWithError(0, "") })
	stream, err := conn.OpenStreamSync(ctx)
	require.NoError(t, err)
	return stream, bufio.NewReader(stream)
}

func TestHTTPS_AltSvc(t *testing.T) {
	addr := startServer(t)
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}}

	resp, err := client.Get("https://" + addr + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, "ok", string(body))
	_, port, _ := net.SplitHostPort(addr)
	assert.Equal(t, `h3=":`+port+`"; ma=86400`, resp.Header.Get("Alt-Svc"))
}

func TestMCPOverQUIC(t *testing.T) {
	addr := startServer(t)
	stream, r := dialMCP(t, addr)

	_, err := io.WriteString(stream, Magic+`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo","arguments":{"text":"hi"}}}`+"\n")
	require.NoError(t, err)
	stream.SetReadDeadline(time.Now().Add(5 * time.Second))
	line, err := r.ReadBytes('\n')
	require.NoError(t, err)

	var resp struct {
		ID     int `json:"id"`
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(line, &resp), "line %s", line)
	assert.Equal(t, 1, resp.ID)
	require.Len(t, resp.Result.Content, 1)
	assert.Equal(t, "hi", resp.Result.Content[0].Text)
}

func TestMCPOverQUIC_BadMagic(t *testing.T) {
	addr := startServer(t)
	stream, r := dialMCP(t, addr)

	_, err := io.WriteString(stream, "HTTP"+`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n")
	require.NoError(t, err)
	stream.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, err = r.ReadBytes('\n')
	assert.Error(t, err)
}

func TestReadMagic(t *testing.T) {
	assert.NoError(t, readMagic(strings.NewReader(Magic+"rest")))
	assert.ErrorIs(t, readMagic(strings.NewReader("MCP1")), ErrBadMagic)
	assert.Error(t, readMagic(strings.NewReader("SD")))
}

func TestTLSConfig_SelfSigned(t *testing.T) {
	cfg, err := TLSConfig("", "")
	require.NoError(t, err)
	require.Len(t, cfg.Certificates, 1)
	assert.Equal(t, []string{ALPNHTTP3, ALPNMCP}, cfg.NextProtos)
	assert.Equal(t, uint16(tls.VersionTLS13), cfg.MinVersion)

	_, err = TLSConfig("missing.pem", "missing.key")
	assert.Error(t, err)
}

func TestNew_NilHandler(t *testing.T) {
	_, err := New(Config{Addr: "127.0.0.1:0"})
	assert.Error(t, err)
}
