package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/fibiter/internal/fibonacci"
	"github.com/agbru/fibiter/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// The theme is not initialised yet when flags fail to parse.
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()
		fmt.Fprintf(out, "\n%sFibonacci Calculator%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Iterative Fibonacci numbers F(n) for n in [%d, %d].\n\n", fibonacci.MinIndex, fibonacci.MaxIndex)
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := "-" + f.Name
			if len(name) > 0 {
				flagSig += " " + name
			}
			fmt.Fprintf(out, "  %s%-20s%s %s", t.Primary, flagSig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\n%sEnvironment:%s\n  Every flag can be set as %sNAME (e.g. %sN=42, %sSERVER=true).\n\n",
			t.Warning, t.Reset, EnvPrefix, EnvPrefix, EnvPrefix)
	}
}
