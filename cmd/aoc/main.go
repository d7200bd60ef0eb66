package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"aockit/internal/aocweb"
	"aockit/internal/config"
	"aockit/internal/logging"
	"aockit/internal/solve"

	_ "aockit/solutions"
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
	year   int
	day    int
	parts  []int
	test   bool
	submit bool
	config string
}

// partList accumulates repeated and comma-separated --part values.
type partList []int

func (p *partList) String() string {
	parts := make([]string, len(*p))
	for i, n := range *p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (p *partList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid part %q", s)
		}
		*p = append(*p, n)
	}
	return nil
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		o     options
		parts partList
	)
	fs.IntVar(&o.year, "year", 0, "puzzle year")
	fs.IntVar(&o.year, "y", 0, "puzzle year")
	fs.IntVar(&o.day, "day", 0, "puzzle day")
	fs.IntVar(&o.day, "d", 0, "puzzle day")
	fs.Var(&parts, "part", "part to run (repeatable)")
	fs.Var(&parts, "p", "part to run (repeatable)")
	fs.BoolVar(&o.test, "test", false, "run tests instead of solving")
	fs.BoolVar(&o.test, "t", false, "run tests instead of solving")
	fs.BoolVar(&o.submit, "submit", false, "submit answers")
	fs.BoolVar(&o.submit, "s", false, "submit answers")
	fs.StringVar(&o.config, "config", config.DefaultPath(), "config file path")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if o.test && o.submit {
		return options{}, errors.New("--test and --submit are mutually exclusive")
	}
	o.parts = parts
	return o, nil
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "aoc: run or test a day's Advent of Code solution")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  aoc [--year Y] [--day D] [--part N]... [--test | --submit] [--config PATH]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --year, -y    Puzzle year (default: most recent year with puzzles)")
	_, _ = fmt.Fprintln(w, "  --day, -d     Puzzle day (default: today, December only)")
	_, _ = fmt.Fprintln(w, "  --part, -p    Part to run, 1 or 2; repeatable (default: 1,2)")
	_, _ = fmt.Fprintln(w, "  --test, -t    Run the day's tests instead of solving")
	_, _ = fmt.Fprintln(w, "  --submit, -s  Submit answers to adventofcode.com")
	_, _ = fmt.Fprintln(w, "  --config      Config file path")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  AOC_SESSION   Session token for input fetch and submission")
	_, _ = fmt.Fprintln(w, "  NO_COLOR      Disable colored output")
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

	runner := &solve.Runner{Out: os.Stdout, Log: log, Registry: solve.Default}
	if opts.test {
		return runner.Test(year, day, opts.parts)
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	client, err := aocweb.New(aocweb.Options{
		BaseURL:   cfg.BaseURL,
		Session:   cfg.Session,
		UserAgent: cfg.UserAgent,
		CacheDir:  cfg.CacheDir,
	})
	if err != nil {
		return err
	}
	runner.Service = &puzzleService{client: client, log: log}
	return runner.Solve(ctx, year, day, opts.parts, opts.submit)
}

// puzzleService adapts the website client to the runner's Service interface.
// Submission verdicts are logged here; a wrong answer is reported but only a
// transport or service failure becomes an error.
type puzzleService struct {
	client *aocweb.Client
	log    *logging.Logger
}

func (s *puzzleService) Input(ctx context.Context, year, day int) (string, error) {
	return s.client.Input(ctx, year, day)
}

func (s *puzzleService) Submit(ctx context.Context, year, day, part int, answer string) error {
	res, err := s.client.Submit(ctx, year, day, part, answer)
	if err != nil {
		return err
	}
	switch res.Verdict {
	case aocweb.VerdictCorrect:
		s.log.Okf("part %d: correct", part)
	case aocweb.VerdictIncorrect:
		s.log.Warnf("part %d: incorrect: %s", part, res.Message)
	case aocweb.VerdictTooSoon:
		s.log.Warnf("part %d: submitted too recently: %s", part, res.Message)
	case aocweb.VerdictAlreadyDone:
		s.log.Infof("part %d: already answered: %s", part, res.Message)
	default:
		s.log.Infof("part %d: %s", part, res.Message)
	}
	return nil
}
