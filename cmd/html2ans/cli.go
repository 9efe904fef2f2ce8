package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/html2ans"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *Config
	Stories html2ans.StoryService
	Logger  *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert HTML files into ANS content elements"`
	Parsers ParsersCmd `cmd:"" help:"List registered element parsers per tag"`
	List    ListCmd    `cmd:"" help:"List saved stories"`
	Show    ShowCmd    `cmd:"" help:"Show a saved story"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved story"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Files       []string `arg:"" optional:"" help:"HTML files to convert (stdin when empty or -)"`
	StartTag    string   `short:"s" name:"start-tag" help:"CSS selector of the element to convert from"`
	Strict      bool     `help:"Fail on parser errors instead of skipping the element"`
	Extract     string   `short:"e" help:"Main-content extractor: none, trafilatura or readability"`
	Format      string   `short:"f" default:"json" enum:"json,markdown" help:"Output format"`
	Save        bool     `xor:"dest" help:"Save each converted story to the database"`
	Out         string   `short:"o" xor:"dest" type:"path" help:"Write each converted story as a file into this directory instead of stdout"`
	Title       string   `short:"t" help:"Story title (defaults to the extracted title)"`
	Concurrency int      `short:"c" help:"Concurrent conversion limit"`
	Verbose     bool     `short:"v" help:"Log conversions and parser activity to stderr"`
}

// ParsersCmd is the "parsers" subcommand.
type ParsersCmd struct {
	Tag string `arg:"" optional:"" help:"Only show parsers for this tag"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list stories from this source"`
	Limit  int    `short:"n" help:"Maximum number of stories to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Story ID"`
	Format string `short:"f" default:"json" enum:"json,markdown" help:"Output format"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Story ID"`
	Force bool   `help:"Confirm deletion"`
}
