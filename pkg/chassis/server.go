// Package chassis serves the HTTP API over TLS with two listeners on one
// port: TCP for HTTP/1.1 and HTTP/2, UDP for QUIC. QUIC connections are
// demultiplexed by ALPN between HTTP/3 and newline-delimited MCP JSON-RPC.
//
// Without a configured certificate a self-signed localhost one is generated.
package chassis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
)

// ALPN protocol identifiers accepted on the QUIC listener.
const (
	ALPNHTTP3 = "h3"
	ALPNMCP   = "smartdial-mcp-v1"
)

// Config configures a Server.
type Config struct {
	Addr      string // host:port, shared by TCP and UDP
	CertFile  string
	KeyFile   string
	Handler   http.Handler
	MCPServer *server.MCPServer // nil rejects MCP connections
	Logger    *slog.Logger
}

// Server is the TLS front end.
type Server struct {
	addr    string
	logger  *slog.Logger
	tlsCfg  *tls.Config
	handler http.Handler
	mcp     *mcpHandler

	mu     sync.Mutex
	tcp    *http.Server
	h3     *http3.Server
	quicLn *quic.Listener
}

// QUICConfig returns the transport settings used by the listener.
func QUICConfig() *quic.Config {
	return &quic.Config{
		MaxIdleTimeout:  5 * time.Minute,
		KeepAlivePeriod: 30 * time.Second,
	}
}

func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Handler == nil {
		return nil, errors.New("chassis: nil handler")
	}
	tlsCfg, err := TLSConfig(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, err
	}
	if cfg.CertFile == "" {
		cfg.Logger.Warn("chassis: using a self-signed certificate")
	}

	s := &Server{
		addr:    cfg.Addr,
		logger:  cfg.Logger,
		tlsCfg:  tlsCfg,
		handler: altSvc(cfg.Addr, cfg.Handler),
	}
	if cfg.MCPServer != nil {
		s.mcp = &mcpHandler{srv: cfg.MCPServer, logger: cfg.Logger}
	}
	return s, nil
}

// altSvc advertises HTTP/3 on the same port.
func altSvc(addr string, next http.Handler) http.Handler {
	_, port, _ := net.SplitHostPort(addr)
	value := fmt.Sprintf(`h3=":%s"; ma=86400`, port)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Alt-Svc", value)
		next.ServeHTTP(w, r)
	})
}

// Start listens on both transports and blocks until ctx is done or a
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	tcpTLS := s.tlsCfg.Clone()
	tcpTLS.NextProtos = []string{"h2", "http/1.1"}
	tcpLn, err := tls.Listen("tcp", s.addr, tcpTLS)
	if err != nil {
		return fmt.Errorf("tcp listen: %w", err)
	}
	quicLn, err := quic.ListenAddr(s.addr, s.tlsCfg, QUICConfig())
	if err != nil {
		tcpLn.Close()
		return fmt.Errorf("quic listen: %w", err)
	}

	s.mu.Lock()
	s.tcp = &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}
	s.h3 = &http3.Server{Handler: s.handler}
	s.quicLn = quicLn
	s.mu.Unlock()

	s.logger.Info("chassis listening", "addr", s.addr, "tcp", "h2,http/1.1", "udp", ALPNHTTP3+","+ALPNMCP)

	errCh := make(chan error, 2)
	go func() {
		if err := s.tcp.Serve(tcpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("tcp: %w", err)
		}
	}()
	go func() {
		if err := s.acceptQUIC(ctx, quicLn); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) acceptQUIC(ctx context.Context, ln *quic.Listener) error {
	for {
		conn, err := ln.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, quic.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("quic accept: %w", err)
		}
		s.dispatch(ctx, conn)
	}
}

func (s *Server) dispatch(ctx context.Context, conn *quic.Conn) {
	switch alpn := conn.ConnectionState().TLS.NegotiatedProtocol; alpn {
	case ALPNHTTP3:
		go func() {
			if err := s.h3.ServeQUICConn(conn); err != nil {
				s.logger.Debug("http3 conn closed", "remote", conn.RemoteAddr(), "error", err)
			}
		}()
	case ALPNMCP:
		if s.mcp == nil {
			conn.CloseWithError(errCodeDisabled, "mcp disabled")
			return
		}
		go s.mcp.serveConn(ctx, conn)
	default:
		s.logger.Warn("unsupported ALPN", "alpn", alpn, "remote", conn.RemoteAddr())
		conn.CloseWithError(errCodeALPN, "unsupported ALPN")
	}
}

// Stop shuts both listeners down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.tcp != nil {
		errs = append(errs, s.tcp.Shutdown(ctx))
	}
	if s.h3 != nil {
		errs = append(errs, s.h3.Close())
	}
	if s.quicLn != nil {
		errs = append(errs, s.quicLn.Close())
	}
	return errors.Join(errs...)
}
