package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hazyhaar/smartdial/pkg/importer"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	source := fs.String("source", "", "source ID to import")
	all := fs.Bool("all", false, "import every configured source")
	setURL := fs.String("set-url", "", "replace the URL of -source before importing")
	fs.Parse(args)

	logger := newLogger("info")
	cfg := loadConfig(*cfgPath, logger)

	sdb, err := openSources(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sources.db: %v\n", err)
		os.Exit(1)
	}
	defer sdb.Close()

	if *setURL != "" {
		if *source == "" {
			fmt.Fprintln(os.Stderr, "-set-url needs -source")
			os.Exit(1)
		}
		if err := sdb.SetURL(*source, *setURL); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if !*all && *source == "" {
		printSources(sdb)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if *all {
		sources, err := sdb.ListSources()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		failed := 0
		for _, src := range sources {
			if !runImport(ctx, src, cfg.DirectoriesDir) {
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	src, err := sdb.GetSource(*source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printSources(sdb)
		os.Exit(1)
	}
	if !runImport(ctx, src, cfg.DirectoriesDir) {
		os.Exit(1)
	}
}

func runImport(ctx context.Context, src importer.Source, outputDir string) bool {
	fmt.Printf("[%s] importing %s...\n", src.ID, src.SourceURL)
	if err := importer.Run(ctx, src, outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", src.ID, err)
		return false
	}
	fmt.Printf("[%s] OK -> %s/%s/ (send SIGHUP to a running server to reload)\n", src.ID, outputDir, src.DirectoryID)
	return true
}

func printSources(sdb *importer.SourceDB) {
	fmt.Println("Configured sources:")
	fmt.Println()
	sources, _ := sdb.ListSources()
	for _, src := range sources {
		status := ""
		if src.LastStatus != nil {
			status = fmt.Sprintf("  [%d]", *src.LastStatus)
		}
		fmt.Printf("  %-20s  %-6s  %s  (-> %s)%s\n", src.ID, src.Adapter, src.SourceURL, src.DirectoryID, status)
	}
	fmt.Println()
	fmt.Println("Adapters:")
	for _, a := range importer.All() {
		fmt.Printf("  %-6s  %s\n", a.ID(), a.Description())
	}
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  smartdial import -source <id> [-set-url <url>] [-config <file>]")
	fmt.Println("  smartdial import -all [-config <file>]")
}
