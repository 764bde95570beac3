// Package cli renders fibbench's output: benchmark samples and range values
// on stdout, the progress spinner on stderr, and shell completion scripts.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/agbru/fibbench/internal/bench"
	"github.com/agbru/fibbench/internal/fibonacci"
)

// FormatSeconds renders a duration in seconds with up to six significant
// digits, switching to exponent notation for very small or large values
// (1e-06, 0.000123, 1.25).
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'g', 6, 64)
}

// FormatSample renders one benchmark line, "<n>: <seconds>", without the
// trailing newline.
func FormatSample(s bench.Sample) string {
	return strconv.FormatUint(s.N, 10) + ": " + FormatSeconds(s.Seconds())
}

// SampleWriter writes benchmark samples to an io.Writer, one line each.
// Every line is written with a single Write call so a terminal or pipe sees
// whole lines as soon as they are measured.
type SampleWriter struct {
	mu  sync.Mutex
	out io.Writer
	buf []byte
}

// NewSampleWriter returns a SampleWriter writing to out.
func NewSampleWriter(out io.Writer) *SampleWriter {
	return &SampleWriter{out: out}
}

// Write renders s and writes it followed by a newline.
func (w *SampleWriter) Write(s bench.Sample) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = strconv.AppendUint(w.buf[:0], s.N, 10)
	w.buf = append(w.buf, ':', ' ')
	w.buf = strconv.AppendFloat(w.buf, s.Seconds(), 'g', 6, 64)
	w.buf = append(w.buf, '\n')
	_, err := w.out.Write(w.buf)
	return err
}

// Sink adapts w to bench.Sink.
func (w *SampleWriter) Sink() bench.Sink {
	return w.Write
}

// PrintRange writes "<i>: <F(i)>" for every i in [from, to], one line per
// index. An empty range (from > to) prints nothing. The strategy is
// prepared once for to; each value is rendered destructively from the
// strategy's own register, which the next Fib call overwrites anyway.
func PrintRange(ctx context.Context, out io.Writer, strategy fibonacci.Strategy, from, to uint64) error {
	if from > to {
		return nil
	}
	strategy.Prepare(to)

	w := bufio.NewWriter(out)
	for i := from; ; i++ {
		if err := ctx.Err(); err != nil {
			_ = w.Flush()
			return err
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, strategy.Fib(i).Consume()); err != nil {
			return err
		}
		if i == to {
			break
		}
	}
	return w.Flush()
}
