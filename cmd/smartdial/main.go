package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/smartdial/pkg/api"
	"github.com/hazyhaar/smartdial/pkg/chassis"
	"github.com/hazyhaar/smartdial/pkg/directory"
	"github.com/hazyhaar/smartdial/pkg/importer"
	"github.com/hazyhaar/smartdial/pkg/keypad"
	"github.com/hazyhaar/smartdial/pkg/pinyin"
	"github.com/hazyhaar/smartdial/pkg/script"
	"github.com/hazyhaar/smartdial/pkg/smartdial"
)

const version = "0.1.0"

type config struct {
	Addr             string            `yaml:"addr"`
	TLSAddr          string            `yaml:"tls_addr"` // HTTPS + HTTP/3 + MCP over QUIC; empty disables
	TLSCert          string            `yaml:"tls_cert"`
	TLSKey           string            `yaml:"tls_key"`
	DirectoriesDir   string            `yaml:"directories_dir"`
	KeypadLayout     string            `yaml:"keypad_layout"`
	SegmentCacheSize int               `yaml:"segment_cache_size"`
	SearchLimit      int               `yaml:"search_limit"`
	CheckInterval    time.Duration     `yaml:"check_interval"`
	LogLevel         string            `yaml:"log_level"`
	Sources          []importer.Source `yaml:"sources"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "match":
		cmdMatch(os.Args[2:])
	case "transliterate":
		cmdTransliterate(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: smartdial <command>

Commands:
  serve          Start the HTTP + MCP server (or MCP over stdio with -stdio)
  import         Build directories from vCard/CSV sources
  match          Match a keypad query against names
  transliterate  Print the keypad-searchable form of names
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	stdio := fs.Bool("stdio", false, "serve MCP over stdin/stdout instead of HTTP")
	fs.Parse(args)

	// Stdout belongs to the MCP transport in stdio mode.
	logger := newLogger("info")
	cfg := loadConfig(*cfgPath, logger)
	logger = newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	matcher, err := buildMatcher(cfg)
	if err != nil {
		logger.Error("failed to build matcher", "error", err)
		os.Exit(1)
	}

	reg := directory.NewRegistry(cfg.DirectoriesDir, matcher)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load directories", "error", err)
		os.Exit(1)
	}
	logger.Info("directories loaded", "count", reg.DirectoryCount(), "contacts", reg.TotalContacts())

	opts := api.Options{Logger: logger, SearchLimit: cfg.SearchLimit}
	mcpSrv := api.NewMCPServer(reg, opts, version)

	// SIGHUP: hot reload directories.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading directories")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("directories reloaded", "count", reg.DirectoryCount(), "contacts", reg.TotalContacts())
			}
		}
	}()

	if len(cfg.Sources) > 0 && cfg.CheckInterval > 0 {
		sdb, err := openSources(cfg)
		if err != nil {
			logger.Error("source checker disabled", "error", err)
		} else {
			defer sdb.Close()
			go importer.NewChecker(sdb, logger, cfg.CheckInterval).Start(ctx)
		}
	}

	if *stdio {
		logger.Info("smartdial serving MCP over stdio")
		if err := server.ServeStdio(mcpSrv); err != nil {
			logger.Error("stdio server error", "error", err)
			os.Exit(1)
		}
		return
	}

	router := api.NewRouter(reg, opts, server.NewStreamableHTTPServer(mcpSrv))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("smartdial listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	var tlsSrv *chassis.Server
	if cfg.TLSAddr != "" {
		tlsSrv, err = chassis.New(chassis.Config{
			Addr:      cfg.TLSAddr,
			CertFile:  cfg.TLSCert,
			KeyFile:   cfg.TLSKey,
			Handler:   router,
			MCPServer: mcpSrv,
			Logger:    logger,
		})
		if err != nil {
			logger.Error("tls server", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := tlsSrv.Start(ctx); err != nil {
				logger.Error("tls server error", "error", err)
				os.Exit(1)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
	if tlsSrv != nil {
		tlsSrv.Stop(shutdownCtx)
	}
}

// buildMatcher wires the keypad layout and the pinyin segmenter named by cfg.
func buildMatcher(cfg config) (*smartdial.Matcher, error) {
	keys := keypad.Default()
	if cfg.KeypadLayout != "" {
		var err error
		if keys, err = keypad.Load(cfg.KeypadLayout); err != nil {
			return nil, err
		}
	}
	digits := smartdial.NewDigitMatcher(keys)
	tok := script.NewTokenizer(pinyin.New(cfg.SegmentCacheSize))
	return smartdial.NewMatcher(tok, digits, digits), nil
}

// openSources opens directories_dir/sources.db and seeds it with the
// configured sources.
func openSources(cfg config) (*importer.SourceDB, error) {
	if err := os.MkdirAll(cfg.DirectoriesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create directories dir: %w", err)
	}
	sdb, err := importer.OpenSourceDB(filepath.Join(cfg.DirectoriesDir, "sources.db"))
	if err != nil {
		return nil, err
	}
	if err := sdb.Seed(cfg.Sources); err != nil {
		sdb.Close()
		return nil, err
	}
	return sdb, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:             ":8421",
		DirectoriesDir:   "directories",
		SegmentCacheSize: pinyin.DefaultCacheSize,
		SearchLimit:      api.DefaultSearchLimit,
		CheckInterval:    6 * time.Hour,
		LogLevel:         "info",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
