package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hazyhaar/smartdial/pkg/smartdial"
)

// cmdMatch matches -q against the names given as arguments, or one name per
// line of stdin, and prints each match with its highlighted glyphs in
// brackets.
func cmdMatch(args []string) {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	query := fs.String("q", "", "keypad query (digits or letters)")
	fs.Parse(args)

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Usage: smartdial match -q <query> [name ...]")
		os.Exit(1)
	}

	cfg := loadConfig(*cfgPath, newLogger("warn"))
	m, err := buildMatcher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	matched := 0
	eachName(fs.Args(), os.Stdin, func(name string) {
		ranges, ok := m.MatchesCombination(name, *query)
		if !ok {
			return
		}
		matched++
		fmt.Println(highlight(name, ranges))
	})
	if matched == 0 {
		os.Exit(1)
	}
}

// cmdTransliterate prints "name<TAB>canonical<TAB>script" for each name.
func cmdTransliterate(args []string) {
	fs := flag.NewFlagSet("transliterate", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath, newLogger("warn"))
	m, err := buildMatcher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	eachName(fs.Args(), os.Stdin, func(name string) {
		c := m.Tokenize(name)
		fmt.Printf("%s\t%s\t%s\n", name, c.Text, c.Kind)
	})
}

func eachName(args []string, stdin io.Reader, fn func(string)) {
	if len(args) > 0 {
		for _, name := range args {
			fn(name)
		}
		return
	}
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			fn(name)
		}
	}
}

// highlight wraps the runes covered by ranges in brackets.
func highlight(name string, ranges []smartdial.Range) string {
	runes := []rune(name)
	open := make(map[int]bool, len(ranges))
	closeAt := make(map[int]bool, len(ranges))
	for _, r := range ranges {
		open[r.Start] = true
		closeAt[r.End] = true
	}
	var b strings.Builder
	for i, r := range runes {
		if closeAt[i] {
			b.WriteByte(']')
		}
		if open[i] {
			b.WriteByte('[')
		}
		b.WriteRune(r)
	}
	if closeAt[len(runes)] {
		b.WriteByte(']')
	}
	return b.String()
}
