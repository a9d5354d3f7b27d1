// marslog finds the longest qualifying missions in a pipe-delimited
// mission log.
//
// Usage:
//
//	marslog missions.log
//	marslog --top 5 --format json missions.log
//	cat missions.log | marslog -v
//
// Exit status: 0 when at least one valid qualifying record exists,
// 1 when none exists (including empty input), 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"marslog/internal/config"
	"marslog/internal/diag"
	"marslog/pkg/browse"
	"marslog/pkg/mission"
	"marslog/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("marslog", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags config.Flags
	fs.StringVar(&flags.Format, "format", "", "Output format: default, json, csv")
	fs.StringVar(&flags.Format, "f", "", "Shorthand for --format")
	fs.IntVar(&flags.Top, "top", 0, "Show top N longest missions (0 means 1)")
	fs.IntVar(&flags.Top, "n", 0, "Shorthand for --top")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Show processing diagnostics and expanded fields")
	fs.BoolVar(&flags.Verbose, "v", false, "Shorthand for --verbose")
	fs.StringVar(&flags.Destination, "destination", "", "Destination to match (default mars)")
	fs.StringVar(&flags.Status, "status", "", "Status to match (default completed)")
	fs.StringVar(&flags.Theme, "theme", "", "Theme: default, orca, mono")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&flags.Browse, "browse", false, "Browse results interactively (requires a terminal)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format", "f":
			flags.FormatSet = true
		case "top", "n":
			flags.TopSet = true
		case "verbose", "v":
			flags.VerboseSet = true
		case "destination":
			flags.DestinationSet = true
		case "status":
			flags.StatusSet = true
		case "theme":
			flags.ThemeSet = true
		}
	})

	fileCfg, err := config.LoadFile(config.FindPath())
	if err != nil {
		fmt.Fprintf(stderr, "marslog: warning: %v (using defaults)\n", err)
		fileCfg = &config.File{}
	}
	cfg, err := config.Resolve(fileCfg, flags)
	if err != nil {
		fmt.Fprintf(stderr, "marslog: %v\n", err)
		return 2
	}

	in, closeIn, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	defer closeIn()

	log := diag.New(stderr, cfg.Verbose)
	pred := mission.Predicate{Destination: cfg.Destination, Status: cfg.Status}
	records, stats, err := mission.ParseStream(in, pred, log)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	if stats.ValidCount == 0 {
		fmt.Fprintf(stderr, "ERROR: no valid %s/%s missions found: %s\n",
			cfg.Destination, cfg.Status, stats.FailureReason())
		return 1
	}

	if cfg.Verbose && cfg.Format == config.ModeDefault {
		logStats(log, stats)
	}

	report := render.Report{
		Records: mission.TopK(records, cfg.Top),
		Stats:   stats,
		Query:   pred,
	}

	if cfg.Browse {
		if fs.Arg(0) == "" || fs.Arg(0) == "-" {
			fmt.Fprintln(stderr, "marslog: --browse requires an input file, not stdin")
			return 2
		}
		if !isTTYWriter(stdout) {
			fmt.Fprintln(stderr, "marslog: --browse requires a terminal")
			return 2
		}
		if err := browse.Run(report, selectTheme(cfg, stdout), stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "marslog: browse: %v\n", err)
			return 2
		}
		return 0
	}

	fmt.Fprint(stdout, selectRenderer(cfg, stdout).Render(report))
	return 0
}

// openInput resolves the input source: a path argument, or stdin when
// the argument is absent or "-".
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open %s: %v", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func selectRenderer(cfg config.Config, w io.Writer) render.Renderer {
	switch cfg.Format {
	case config.ModeJSON:
		return render.NewJSON()
	case config.ModeCSV:
		return render.NewCSV()
	default:
		return render.NewText(selectTheme(cfg, w), cfg.Verbose)
	}
}

func selectTheme(cfg config.Config, w io.Writer) render.Theme {
	// Honor NO_COLOR; pipes get the mono theme too.
	if cfg.NoColor || os.Getenv("NO_COLOR") != "" || !isTTYWriter(w) {
		return render.MonoTheme()
	}
	return render.ThemeByName(cfg.Theme)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// logStats emits the statistics block on the diagnostics channel.
func logStats(log zerolog.Logger, stats mission.Statistics) {
	log.Info().
		Int("total_lines", stats.TotalLines).
		Int("data_lines", stats.DataLines).
		Int("category_matches", stats.CategoryMatches).
		Int("qualifying_matches", stats.QualifyingMatches).
		Int("valid_records", stats.ValidCount).
		Int("errors", stats.Errors).
		Msg("processing statistics")
}
