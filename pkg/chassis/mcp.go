package chassis

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"

	"github.com/hazyhaar/smartdial/pkg/kit"
)

// Magic is the preamble a client writes on the first stream of an MCP
// connection before any JSON-RPC line.
const Magic = "SDM1"

// maxLine bounds a single JSON-RPC message read from a stream.
const maxLine = 4 << 20

const (
	errCodeProtocol quic.ApplicationErrorCode = 0x03
	errCodeALPN     quic.ApplicationErrorCode = 0x11
	errCodeDisabled quic.ApplicationErrorCode = 0x10

	streamErrConfused quic.StreamErrorCode = 0x02
)

var ErrBadMagic = errors.New("bad MCP magic")

func readMagic(r io.Reader) error {
	buf := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("read magic: %w", err)
	}
	if !bytes.Equal(buf, []byte(Magic)) {
		return fmt.Errorf("%w: %q", ErrBadMagic, buf)
	}
	return nil
}

// mcpHandler runs newline-delimited JSON-RPC sessions against an MCP server,
// one per QUIC connection.
type mcpHandler struct {
	srv    *server.MCPServer
	logger *slog.Logger
}

func (h *mcpHandler) serveConn(ctx context.Context, conn *quic.Conn) {
	remote := conn.RemoteAddr().String()

	stream, err := conn.AcceptStream(ctx)
	if err != nil {
		h.logger.Debug("mcp: no stream", "remote", remote, "error", err)
		conn.CloseWithError(errCodeProtocol, "no stream")
		return
	}
	if err := readMagic(stream); err != nil {
		h.logger.Warn("mcp: rejected connection", "remote", remote, "error", err)
		stream.CancelRead(streamErrConfused)
		stream.CancelWrite(streamErrConfused)
		conn.CloseWithError(errCodeProtocol, "bad magic")
		return
	}

	sess := &session{id: "quic_" + uuid.NewString(), notifications: make(chan mcp.JSONRPCNotification, 64), w: stream}
	if err := h.srv.RegisterSession(ctx, sess); err != nil {
		h.logger.Error("mcp: register session", "error", err)
		stream.Close()
		return
	}
	defer h.srv.UnregisterSession(ctx, sess.id)
	h.logger.Info("mcp session started", "session", sess.id, "remote", remote)

	ctx, cancel := context.WithCancel(kit.WithTransport(ctx, "mcp"))
	defer cancel()
	ctx = h.srv.WithContext(ctx, sess)
	go sess.forward(ctx)

	sc := bufio.NewScanner(stream)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		resp := h.srv.HandleMessage(ctx, json.RawMessage(line))
		if resp == nil {
			continue
		}
		if err := sess.send(resp); err != nil {
			h.logger.Debug("mcp: write", "session", sess.id, "error", err)
			break
		}
	}
	if err := sc.Err(); err != nil && ctx.Err() == nil {
		h.logger.Debug("mcp: read", "session", sess.id, "error", err)
	}
	stream.Close()
	h.logger.Info("mcp session ended", "session", sess.id)
}

// session implements server.ClientSession over one QUIC stream.
type session struct {
	id            string
	notifications chan mcp.JSONRPCNotification
	initialized   atomic.Bool

	mu sync.Mutex
	w  io.Writer
}

func (s *session) SessionID() string                                   { return s.id }
func (s *session) NotificationChannel() chan<- mcp.JSONRPCNotification { return s.notifications }
func (s *session) Initialize()                                         { s.initialized.Store(true) }
func (s *session) Initialized() bool                                   { return s.initialized.Load() }

func (s *session) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(append(data, '\n'))
	return err
}

func (s *session) forward(ctx context.Context) {
	for {
		select {
		case n := <-s.notifications:
			_ = s.send(n)
		case <-ctx.Done():
			return
		}
	}
}
