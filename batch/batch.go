// Package batch converts many HTML inputs concurrently with one shared
// generator and optionally stores each result as a story.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/html2ans"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Batch.Concurrency is not positive.
const DefaultConcurrency = 4

// Batch orchestrates the conversion of a set of HTML inputs.
type Batch struct {
	// Extractor isolates the main content before conversion. Optional.
	Extractor html2ans.Extractor

	// Generator converts HTML into content elements. Required.
	Generator html2ans.Generator

	// Stories receives every successful conversion when set.
	Stories html2ans.StoryWriter

	StartTag    string
	Title       string // overrides the extracted title when set
	Concurrency int
}

// Input is a single HTML document to convert.
type Input struct {
	Source string
	HTML   string
}

// Output is the outcome of converting a single input.
type Output struct {
	Position int
	Source   string
	Title    string
	Elements []html2ans.ContentElement
	StoryID  string
	Err      error
}

// Result holds the outcome of a batch run. Outputs are in input order.
type Result struct {
	Outputs   []Output
	Converted int
	Saved     int
	Failed    int
	Bytes     int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run converts all inputs. Conversions run concurrently up to Concurrency;
// stories are saved afterwards in input order. A failing input is recorded
// in its Output and does not stop the others.
func (b *Batch) Run(ctx context.Context, inputs []Input, progress ProgressFunc) (*Result, error) {
	if b.Generator == nil {
		return nil, html2ans.Errorf(html2ans.EINVALID, "batch requires a generator")
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(inputs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	outputCh := make(chan Output, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, in := range inputs {
			g.Go(func() error {
				outputCh <- b.process(gctx, i, in)
				return nil
			})
		}
		_ = g.Wait()
		close(outputCh)
	}()

	var completed atomic.Int64
	result := &Result{Outputs: make([]Output, total)}
	for out := range outputCh {
		completed.Add(1)
		result.Outputs[out.Position] = out

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Source:    out.Source,
		}
		if out.Err != nil {
			event.Type = ProgressFailed
			event.Error = out.Err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range result.Outputs {
		out := &result.Outputs[i]
		if out.Err != nil {
			result.Failed++
			continue
		}
		result.Converted++
		result.Bytes += len(inputs[i].HTML)

		if b.Stories == nil {
			continue
		}
		story := &html2ans.Story{
			Source:          out.Source,
			Title:           out.Title,
			ContentElements: out.Elements,
		}
		if err := b.Stories.CreateStory(ctx, story, inputs[i].HTML); err != nil {
			out.Err = err
			result.Converted--
			result.Failed++
			continue
		}
		out.StoryID = story.ID
		result.Saved++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// process extracts and converts a single input.
func (b *Batch) process(ctx context.Context, position int, in Input) Output {
	out := Output{Position: position, Source: in.Source, Title: b.Title}

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	content := in.HTML
	if b.Extractor != nil {
		extracted, err := b.Extractor.Extract(in.HTML)
		if err != nil {
			out.Err = err
			return out
		}
		content = extracted.ContentHTML
		if out.Title == "" {
			out.Title = extracted.Title
		}
	}

	elems, err := b.Generator.GenerateANS(content, b.StartTag)
	if err != nil {
		out.Err = err
		return out
	}
	out.Elements = elems

	return out
}
