// Command roman converts between Roman numerals and integers.
//
// With arguments, each one is converted and printed: integers encode to
// numerals, anything else decodes to an integer. The special argument
// "table" prints the canonical table, optionally bounded ("table 1 100").
// With no arguments it starts an interactive prompt.
//
// Decoding flags may come from a TOML file (-config), ROMAN_* environment
// variables, or command-line flags, in rising order of precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/davidsulc/roman"
	"github.com/davidsulc/roman/internal/config"
	"github.com/davidsulc/roman/internal/logging"
)

const (
	historyFile = ".roman_history"
	prompt      = "roman> "
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		strict     = flag.Bool("strict", true, "enforce strict composition rules")
		ignoreCase = flag.Bool("ignore-case", false, "fold input to upper case before decoding")
		explain    = flag.Bool("explain", false, "report the specific rule a rejected input violates")
		zero       = flag.Bool("zero", false, `accept "N" as zero`)
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.L().Fatal().Err(err).Msg("configuration failed")
	}
	logging.Configure(cfg.LogLevel)
	log := logging.L()

	// Command-line flags outrank the file and environment layers, but only
	// when actually set on the command line.
	opts := cfg.Options()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			opts.Strict = *strict
		case "ignore-case":
			opts.IgnoreCase = *ignoreCase
		case "explain":
			opts.Explain = *explain
		case "zero":
			opts.Zero = *zero
		}
	})
	roman.Configure(opts)
	log.Debug().Interface("options", opts).Msg("decode defaults configured")

	args := flag.Args()
	if len(args) == 0 {
		runREPL()
		return
	}
	if args[0] == "table" {
		if err := printTable(args[1:]); err != nil {
			log.Fatal().Err(err).Msg("table")
		}
		return
	}

	code := 0
	for _, arg := range args {
		out, err := convert(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			code = 1
			continue
		}
		fmt.Println(out)
	}
	os.Exit(code)
}

// convert translates one input in either direction: a parseable integer
// encodes, anything else decodes under the configured defaults.
func convert(arg string) (string, error) {
	if v, err := strconv.Atoi(arg); err == nil {
		return roman.Encode(v)
	}
	v, err := roman.Decode(arg, nil)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(v), nil
}

// printTable writes the canonical table, one "<value> <numeral>" line per
// value, optionally bounded by "from" and "to" arguments.
func printTable(bounds []string) error {
	from, to := 1, roman.MaxNumeral
	var err error
	if len(bounds) > 0 {
		if from, err = strconv.Atoi(bounds[0]); err != nil {
			return fmt.Errorf("bad lower bound %q", bounds[0])
		}
	}
	if len(bounds) > 1 {
		if to, err = strconv.Atoi(bounds[1]); err != nil {
			return fmt.Errorf("bad upper bound %q", bounds[1])
		}
	}
	if from < 1 || to > roman.MaxNumeral || from > to {
		return fmt.Errorf("bounds must satisfy 1 <= from <= to <= %d", roman.MaxNumeral)
	}

	for _, p := range roman.Pairs()[from-1 : to] {
		fmt.Printf("%d %s\n", p.Value, p.Numeral)
	}

	return nil
}

// runREPL reads inputs interactively until :quit or Ctrl+D, converting
// each line like a command-line argument.
func runREPL() {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = rl.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Println("roman numeral converter. Type :quit or Ctrl+D to exit.")
	for {
		in, err := rl.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == ":quit" || in == ":q" {
			break
		}
		rl.AppendHistory(in)

		out, err := convert(in)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(out)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = rl.WriteHistory(f)
			_ = f.Close()
		}
	}
}
