// Package pipeline segments every chromosome in a store and writes its
// report.
package pipeline

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/logging"
	"github.com/yech1990/chromwin/internal/report"
	"github.com/yech1990/chromwin/internal/window"
)

type Options struct {
	NominalLength int
	Threads       int
	Segmenter     *window.Segmenter
	Writer        *report.Writer
	Log           logrus.FieldLogger
	// Progress receives the progress bar; nil hides it.
	Progress io.Writer
}

type job struct {
	index int
	label genome.Label
	seq   string
}

type result struct {
	index   int
	summary report.Summary
	err     error
}

// Run writes one report per non-empty chromosome. Summaries come back in
// label order whatever the thread count. An invalid nominal length fails
// before anything is written.
func Run(store *genome.Store, opts Options) ([]report.Summary, error) {
	if err := window.ValidateLength(opts.NominalLength); err != nil {
		return nil, err
	}
	if opts.Segmenter == nil {
		opts.Segmenter = window.NewSegmenter(window.DefaultScanner())
	}
	if opts.Writer == nil {
		opts.Writer = report.NewWriter(".")
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	var jobs []job
	for _, label := range store.Labels() {
		seq := store.Sequence(label)
		if seq == "" {
			opts.Log.WithField("label", label).Debug("empty chromosome skipped")
			continue
		}
		jobs = append(jobs, job{index: len(jobs), label: label, seq: seq})
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	numWorkers := opts.Threads
	if numWorkers < 1 {
		numWorkers = 1
	}
	if len(jobs) < numWorkers {
		numWorkers = len(jobs)
	}

	bar := newBar(len(jobs), opts.Progress)
	queue := make(chan job, len(jobs))
	results := make(chan result, len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				s, err := process(j, opts)
				results <- result{index: j.index, summary: s, err: err}
			}
		}()
	}
	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	go func() { wg.Wait(); close(results) }()

	summaries := make([]report.Summary, len(jobs))
	var firstErr error
	firstErrIndex := len(jobs)
	for r := range results {
		if bar != nil {
			_ = bar.Add(1)
		}
		if r.err != nil {
			if r.index < firstErrIndex {
				firstErr, firstErrIndex = r.err, r.index
			}
			continue
		}
		summaries[r.index] = r.summary
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(opts.Progress)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return summaries, nil
}

func process(j job, opts Options) (report.Summary, error) {
	windows, err := opts.Segmenter.Segment(j.seq, opts.NominalLength)
	if err != nil {
		return report.Summary{}, fmt.Errorf("chromosome %s: %w", j.label, err)
	}
	path, err := opts.Writer.Write(j.label, windows)
	if err != nil {
		return report.Summary{}, fmt.Errorf("chromosome %s: %w", j.label, err)
	}
	opts.Log.WithFields(logrus.Fields{
		"label":   j.label,
		"windows": len(windows),
		"path":    path,
	}).Info("report written")
	return report.Summarize(j.label, len(j.seq), windows, path), nil
}

func newBar(total int, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("[cyan]Windowing chromosomes..."),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "[green]=[reset]", SaucerHead: "[green]>[reset]", SaucerPadding: " ", BarStart: "[", BarEnd: "]"}),
	)
}
