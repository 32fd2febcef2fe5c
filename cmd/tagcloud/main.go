// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the tagcloud generator, its IPC server and a CLI [DBG] explorer.

tagcloud counts the words of a text file and writes the N most frequent ones
as an HTML tag cloud. Words are listed alphabetically and each one gets a
font class between f11 and f48 scaled by its count.

# Usage

Generate a cloud, answering the prompts for input file, output file and size:

	tagcloud

Or pass everything up front:

	tagcloud -in book.txt -out cloud.html -n 100

Print the ranked selection as a table on stderr:

	tagcloud -in book.txt -out cloud.html -n 25 -table

Explore the counted words of a file by prefix:

	tagcloud -c -in book.txt

Serve msgpack cloud requests on stdin/stdout:

	tagcloud -s

# Words

A word is a maximal run of characters that are not whitespace or one of

	'!~@#$%^&*()-=;:<>?.,[]{}|"

folded to lowercase. The top N words are picked by count, ties broken
alphabetically, and cut strictly by rank: a word tied with the Nth count but
ranked after it is left out.

# Configuration

Runtime configuration lives in ~/.config/tagcloud/config.toml, created with
defaults on first run:

	[cloud]
	min_font = 11
	max_font = 48
	default_size = 0

	[html]
	stylesheet = "http://.../tagcloud.css"

	[server]
	max_words = 1000
	max_text_bytes = 10485760

	[cli]
	explore_limit = 24

A default_size above zero is used when -n is not given instead of prompting.

# Command Line Flags

	-in string
	    Input text file (prompted when empty)
	-out string
	    Output HTML file (prompted when empty)
	-n int
	    Number of words in the cloud (prompted when 0)
	-config string
	    Custom config file path
	-table
	    Print the selected words as a table on stderr
	-c  Explore counted words by prefix instead of writing a page
	-s  Run the msgpack IPC server
	-d  Enable debug mode with detailed logging
	-version
	    Show current version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/tagcloud/internal/cli"
	"github.com/bastiangx/tagcloud/internal/utils"
	"github.com/bastiangx/tagcloud/pkg/cloud"
	"github.com/bastiangx/tagcloud/pkg/config"
	"github.com/bastiangx/tagcloud/pkg/document"
	"github.com/bastiangx/tagcloud/pkg/frequency"
	"github.com/bastiangx/tagcloud/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "tagcloud"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// options collects the parsed flags.
type options struct {
	inFile    string
	outFile   string
	size      int
	showTable bool
}

// main parses flags, loads config and hands off to the selected mode.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	inFile := flag.String("in", "", "Input text file (prompted when empty)")
	outFile := flag.String("out", "", "Output HTML file (prompted when empty)")
	size := flag.Int("n", 0, "Number of words in the cloud (prompted when 0)")
	configPath := flag.String("config", "", "Custom config file path")
	showTable := flag.Bool("table", false, "Print the selected words as a table on stderr")
	exploreMode := flag.Bool("c", false, "Explore counted words by prefix -- useful for testing and debugging")
	serverMode := flag.Bool("s", false, "Run the msgpack IPC server on stdin/stdout")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: (%s)", config.GetActiveConfigPath(usedPath))

	opts := options{
		inFile:    *inFile,
		outFile:   *outFile,
		size:      *size,
		showTable: *showTable,
	}

	switch {
	case *serverMode:
		log.Debug("spawning IPC")
		if err := server.NewServer(cfg).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case *exploreMode:
		log.SetReportTimestamp(false)
		if err := explore(cfg, opts); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		if err := generate(cfg, opts); err != nil {
			log.Fatalf("Failed to generate cloud: %v", err)
		}
	}
}

// generate asks for whatever the flags left out, then writes the page.
func generate(cfg *config.Config, opts options) error {
	prompter := cli.NewPrompter(os.Stdin, os.Stdout, utils.IsTerminal(os.Stdin))

	inPath := opts.inFile
	if inPath == "" {
		var err error
		if inPath, err = prompter.InputFile(); err != nil {
			return err
		}
	}
	outPath := opts.outFile
	if outPath == "" {
		var err error
		if outPath, err = prompter.OutputFile(); err != nil {
			return err
		}
	}

	analysis, err := document.Analyze(document.FileSource{Path: inPath})
	if err != nil {
		return err
	}

	size, err := resolveSize(opts.size, cfg.Cloud.DefaultSize, analysis.Distinct(), prompter)
	if err != nil {
		return err
	}

	out, err := document.CreateFile(outPath)
	if err != nil {
		return err
	}
	report, err := analysis.Write(out, document.Options{
		Size:       size,
		Fonts:      cfg.Fonts(),
		Stylesheet: cfg.HTML.Stylesheet,
	})
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to finish %s: %w", outPath, cerr)
	}
	if err != nil {
		return err
	}

	log.Debugf("Wrote %d words to %s", len(report.Words), outPath)
	if opts.showTable {
		fmt.Fprintln(os.Stderr, renderSelection(report))
	}
	return nil
}

// resolveSize picks the cloud size. A -n value must fit the input; a config
// default that does not fit is dropped in favour of the prompt.
func resolveSize(flagSize, defaultSize, distinct int, prompter *cli.Prompter) (int, error) {
	if flagSize != 0 {
		if err := cloud.ValidateSize(flagSize, distinct); err != nil {
			return 0, err
		}
		return flagSize, nil
	}
	if defaultSize != 0 {
		err := cloud.ValidateSize(defaultSize, distinct)
		if err == nil {
			return defaultSize, nil
		}
		if errors.Is(err, cloud.ErrEmptyInput) {
			return 0, err
		}
		log.Warnf("Ignoring default_size: %v", err)
	}
	return prompter.Size(distinct)
}

// explore counts the input and runs the prefix explorer over it.
func explore(cfg *config.Config, opts options) error {
	prompter := cli.NewPrompter(os.Stdin, os.Stdout, utils.IsTerminal(os.Stdin))

	inPath := opts.inFile
	if inPath == "" {
		var err error
		if inPath, err = prompter.InputFile(); err != nil {
			return err
		}
	}
	analysis, err := document.Analyze(document.FileSource{Path: inPath})
	if err != nil {
		return err
	}

	log.Debug("Explorer info:",
		"input", inPath,
		"tokens", analysis.Tokens,
		"distinct", analysis.Distinct(),
		"limit", cfg.CLI.ExploreLimit)

	index := frequency.NewIndex(analysis.Freqs)
	return cli.NewExplorer(index, cfg.CLI.ExploreLimit, prompter.Reader(), os.Stdout).Start()
}

// printVersion shows the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ tagcloud ] Counts words, renders clouds")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
