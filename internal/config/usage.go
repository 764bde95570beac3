package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/fibbench/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// NO_COLOR applies before the theme is initialised.
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		fmt.Fprintf(out, "\n%sFibonacci Benchmark%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Times Fibonacci strategies over growing indices, or prints a range of values.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags]          run measurements\n  %s [flags] <l> <r>  print F(l) .. F(r)\n\n%sFlags:%s\n",
			t.Warning, t.Reset, fs.Name(), fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}
			fmt.Fprintf(out, "  %s%-22s%s %s", t.Primary, flagSig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\nEvery flag can also be set through a %s-prefixed environment variable.\n\n", EnvPrefix)
	}
}
