package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibbench/internal/ui"
)

// ProgressRefreshRate is how often the spinner and its suffix are redrawn.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so progress display can be tested.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(f *os.File) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriterFile(f))
	return &realSpinner{s}
}

// Progress shows a spinner with the highest index claimed so far while the
// benchmark runs.
type Progress struct {
	spinner Spinner
	source  func() uint64
	start   time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// ProgressEnabled reports whether a spinner should be drawn on f.
func ProgressEnabled(quiet bool, f *os.File) bool {
	return !quiet && ui.IsTerminal(f)
}

// StartProgress starts a spinner on f that polls source every
// ProgressRefreshRate. Call Stop when the run ends.
func StartProgress(f *os.File, source func() uint64) *Progress {
	return startProgress(newSpinner(f), source, ProgressRefreshRate)
}

func startProgress(s Spinner, source func() uint64, every time.Duration) *Progress {
	p := &Progress{
		spinner: s,
		source:  source,
		start:   time.Now(),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	p.spinner.UpdateSuffix(p.suffix())
	p.spinner.Start()
	go p.loop(every)
	return p
}

func (p *Progress) loop(every time.Duration) {
	defer close(p.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.spinner.UpdateSuffix(p.suffix())
		}
	}
}

func (p *Progress) suffix() string {
	elapsed := time.Since(p.start).Truncate(time.Second)
	return fmt.Sprintf(" %smeasuring n = %d%s (%s)", ui.ColorCyan(), p.source(), ui.ColorReset(), elapsed)
}

// Stop halts the spinner. It is safe to call more than once.
func (p *Progress) Stop() {
	p.once.Do(func() {
		close(p.stop)
		<-p.done
		p.spinner.Stop()
	})
}
