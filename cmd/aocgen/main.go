package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/skratchdot/open-golang/open"

	"aockit/internal/aocweb"
	"aockit/internal/config"
	"aockit/internal/logging"
	"aockit/internal/scaffold"
)

func main() {
	_ = godotenv.Load()
	log := logging.New()
	if err := run(context.Background(), log, os.Args[1:]); err != nil {
		log.Err(err.Error())
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	year      int
	day       int
	docstring bool
	open      bool
	root      string
	config    string
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("aocgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var o options
	fs.IntVar(&o.year, "year", 0, "puzzle year")
	fs.IntVar(&o.year, "y", 0, "puzzle year")
	fs.IntVar(&o.day, "day", 0, "puzzle day")
	fs.IntVar(&o.day, "d", 0, "puzzle day")
	fs.BoolVar(&o.docstring, "docstring", false, "print the puzzle description")
	fs.BoolVar(&o.docstring, "D", false, "print the puzzle description")
	fs.BoolVar(&o.open, "open", false, "open the puzzle page in the browser")
	fs.BoolVar(&o.open, "o", false, "open the puzzle page in the browser")
	fs.StringVar(&o.root, "root", "", "solutions directory (default from config)")
	fs.StringVar(&o.config, "config", config.DefaultPath(), "config file path")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return o, nil
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "aocgen: scaffold a new Advent of Code day")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  aocgen [--year Y] [--day D] [--docstring] [--open] [--root DIR] [--config PATH]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --year, -y       Puzzle year (default: most recent year with puzzles)")
	_, _ = fmt.Fprintln(w, "  --day, -d        Puzzle day (default: today, December only)")
	_, _ = fmt.Fprintln(w, "  --docstring, -D  Print the puzzle description instead of scaffolding")
	_, _ = fmt.Fprintln(w, "  --open, -o       Open the puzzle page in the default browser")
	_, _ = fmt.Fprintln(w, "  --root           Solutions directory (default from config)")
	_, _ = fmt.Fprintln(w, "  --config         Config file path")
}

func run(ctx context.Context, log *logging.Logger, args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		printUsage(os.Stderr)
		return err
	}

	now := time.Now()
	recent := aocweb.MostRecentYear(now)
	year := opts.year
	if year == 0 {
		year = recent
	}
	if year < 2015 || year > recent {
		return fmt.Errorf("invalid year %d: must be 2015..%d", year, recent)
	}
	day := opts.day
	if day == 0 {
		day, err = aocweb.CurrentDay(now)
		if err != nil {
			return fmt.Errorf("%w; pass --day", err)
		}
	}
	if day < 1 || day > 25 {
		return fmt.Errorf("invalid day %d: must be 1..25", day)
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}

	if opts.docstring || opts.open {
		if opts.docstring {
			client, err := aocweb.New(aocweb.Options{
				BaseURL:   cfg.BaseURL,
				Session:   cfg.Session,
				UserAgent: cfg.UserAgent,
				CacheDir:  cfg.CacheDir,
			})
			if err != nil {
				return err
			}
			lines, err := client.Description(ctx, year, day)
			if err != nil {
				return err
			}
			for _, line := range lines {
				_, _ = fmt.Fprintln(os.Stdout, line)
			}
		}
		if opts.open {
			url := fmt.Sprintf("%s/%d/day/%d", cfg.BaseURL, year, day)
			if err := open.Run(url); err != nil {
				return fmt.Errorf("open %s: %w", url, err)
			}
		}
		return nil
	}

	root := opts.root
	if root == "" {
		root = cfg.SolutionsDir
	}
	res, err := scaffold.Generate(root, year, day)
	if err != nil {
		return err
	}
	for _, path := range res.Created {
		log.Okf("created %s", path)
	}
	for _, path := range res.Skipped {
		log.Warnf("skipping %s: already exists", path)
	}
	return nil
}
