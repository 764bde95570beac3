// Command fibbench computes Fibonacci numbers on a fixed-capacity bignum and
// benchmarks the strategies that produce them.
//
// Usage:
//
//	fibbench [flags]        run the benchmark, one "n: seconds" line per index
//	fibbench [flags] l r    print F(l) through F(r), one "i: F(i)" line each
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/fibbench/internal/app"
	apperrors "github.com/agbru/fibbench/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		if code := apperrors.ExitCode(err); code != apperrors.ExitErrorUsage && code != apperrors.ExitErrorConfig {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(apperrors.ExitCode(err))
	}
	os.Exit(application.Run(context.Background(), os.Stdout))
}
