package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/batch"
	"github.com/fwojciec/html2ans/dispatch"
	"github.com/fwojciec/html2ans/fs"
	"github.com/fwojciec/html2ans/goquery"
	"github.com/fwojciec/html2ans/htmltomarkdown"
	"github.com/fwojciec/html2ans/readability"
	h2aslog "github.com/fwojciec/html2ans/slog"
	"github.com/fwojciec/html2ans/trafilatura"
)

const (
	extractorNone        = "none"
	extractorTrafilatura = "trafilatura"
	extractorReadability = "readability"
)

const stdinSource = "-"

// storyOutput is the JSON shape written by convert and show.
type storyOutput struct {
	ID              string                    `json:"id,omitempty"`
	Source          string                    `json:"source"`
	Title           string                    `json:"title,omitempty"`
	ContentElements []html2ans.ContentElement `json:"content_elements"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	opts := c.options(deps.Config)
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", html2ans.ErrorMessage(err))
		return err
	}
	if c.Save && deps.Stories == nil {
		return html2ans.Errorf(html2ans.EINTERNAL, "story storage is not configured")
	}

	inputs, err := readInputs(deps.Stdin, c.Files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	logger := deps.Logger
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	engine, err := newEngine(opts.Strict, logger)
	if err != nil {
		return err
	}

	var gen html2ans.Generator = engine
	extractor := newExtractor(opts.Extractor)
	if logger != nil {
		gen = h2aslog.NewLoggingGenerator(gen, logger)
		if extractor != nil {
			extractor = h2aslog.NewLoggingExtractor(extractor, logger)
		}
	}

	b := &batch.Batch{
		Extractor:   extractor,
		Generator:   gen,
		StartTag:    opts.StartTag,
		Title:       c.Title,
		Concurrency: opts.Concurrency,
	}
	switch {
	case c.Save:
		b.Stories = deps.Stories
	case c.Out != "":
		var conv html2ans.Converter
		if c.Format == "markdown" {
			conv = htmltomarkdown.NewConverter()
		}
		b.Stories = fs.NewWriter(c.Out, conv)
	}

	var progress batch.ProgressFunc
	if opts.Verbose {
		progress = func(e batch.ProgressEvent) {
			switch e.Type {
			case batch.ProgressCompleted:
				fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, batch.TruncateSource(e.Source, 60))
			case batch.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "[%d/%d] %s failed: %s\n", e.Completed, e.Total, batch.TruncateSource(e.Source, 60), e.Error)
			}
		}
	}

	result, err := b.Run(deps.Ctx, inputs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", html2ans.ErrorMessage(err))
		return err
	}

	var converted []batch.Output
	for _, out := range result.Outputs {
		if out.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", out.Source, out.Err)
			continue
		}
		converted = append(converted, out)
		if out.StoryID != "" {
			fmt.Fprintf(deps.Stderr, "Saved story %s from %s\n", out.StoryID, out.Source)
		}
	}

	switch {
	case c.Out != "":
		// Stories were written to files.
	case c.Format == "markdown":
		err = writeMarkdown(deps.Stdout, converted)
	default:
		err = writeJSON(deps.Stdout, converted, len(inputs) > 1)
	}
	if err != nil {
		return err
	}

	if opts.Verbose {
		fmt.Fprintf(deps.Stderr, "Converted %d of %d inputs (%s)\n", result.Converted, len(inputs), batch.FormatBytes(result.Bytes))
	}

	if result.Failed > 0 {
		return html2ans.Errorf(html2ans.EINVALID, "%d of %d inputs failed", result.Failed, len(inputs))
	}
	return nil
}

// options merges flag values over the config file values.
func (c *ConvertCmd) options(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	opts := *cfg
	if c.StartTag != "" {
		opts.StartTag = c.StartTag
	}
	if c.Strict {
		opts.Strict = true
	}
	if c.Extract != "" {
		opts.Extractor = c.Extract
	}
	if c.Concurrency != 0 {
		opts.Concurrency = c.Concurrency
	}
	if c.Verbose {
		opts.Verbose = true
	}
	return &opts
}

// newEngine builds an engine with the default parsers. Parsers are wrapped
// with logging when logger is set.
func newEngine(strict bool, logger *slog.Logger) (*dispatch.Engine, error) {
	engine := dispatch.NewEngine(goquery.NewBuilder(), dispatch.WithSuppressExceptions(!strict))
	parsers := goquery.DefaultParsers()
	if logger != nil {
		parsers = h2aslog.WrapParsers(parsers, logger)
	}
	if err := engine.AddParsers(parsers...); err != nil {
		return nil, err
	}
	return engine, nil
}

func newExtractor(name string) html2ans.Extractor {
	switch name {
	case extractorTrafilatura:
		return trafilatura.NewExtractor()
	case extractorReadability:
		return readability.NewExtractor()
	default:
		return nil
	}
}

// readInputs reads each file, or stdin for "-" or an empty list.
func readInputs(stdin io.Reader, files []string) ([]batch.Input, error) {
	if len(files) == 0 {
		files = []string{stdinSource}
	}

	inputs := make([]batch.Input, 0, len(files))
	readStdin := false
	for _, path := range files {
		if path == stdinSource {
			if readStdin {
				return nil, html2ans.Errorf(html2ans.EINVALID, "stdin can only be read once")
			}
			readStdin = true
			if stdin == nil {
				return nil, html2ans.Errorf(html2ans.EINVALID, "no input on stdin")
			}
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			inputs = append(inputs, batch.Input{Source: "stdin", HTML: string(b)})
			continue
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, batch.Input{Source: path, HTML: string(b)})
	}
	return inputs, nil
}

func writeJSON(w io.Writer, outputs []batch.Output, many bool) error {
	stories := make([]storyOutput, len(outputs))
	for i, out := range outputs {
		stories[i] = newStoryOutput(out.StoryID, out.Source, out.Title, out.Elements)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if many {
		return enc.Encode(stories)
	}
	if len(stories) == 0 {
		return nil
	}
	return enc.Encode(stories[0])
}

func writeMarkdown(w io.Writer, outputs []batch.Output) error {
	conv := htmltomarkdown.NewConverter()
	var parts []string
	for _, out := range outputs {
		md, err := html2ans.FormatStory(&html2ans.Story{
			Source:          out.Source,
			Title:           out.Title,
			ContentElements: out.Elements,
		}, conv)
		if err != nil {
			return err
		}
		parts = append(parts, md)
	}
	if len(parts) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "\n\n"))
	return err
}

func newStoryOutput(id, source, title string, elems []html2ans.ContentElement) storyOutput {
	if elems == nil {
		elems = []html2ans.ContentElement{}
	}
	return storyOutput{ID: id, Source: source, Title: title, ContentElements: elems}
}
