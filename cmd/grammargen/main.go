package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/phyten/grammargen/internal/config"
	"github.com/phyten/grammargen/internal/hashshared"
	"github.com/phyten/grammargen/internal/keywords"
	"github.com/phyten/grammargen/internal/model"
	"github.com/phyten/grammargen/internal/output"
	"github.com/phyten/grammargen/internal/regexgen"
	"github.com/phyten/grammargen/internal/termcolor"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usageText = `usage: grammargen <command> [flags]

Commands:
  hashshared   classify the shared-name table (Name,Value CSV) into scopes
  keywords     render the language keyword lists

Run "grammargen <command> -h" for the flags of a command.
`

func main() {
	env := termcolor.EnvMap(os.Environ())
	os.Exit(run(os.Args[1:], env, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status. Generated
// text reaches stdout only when the whole run succeeded.
func run(args []string, env map[string]string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "hashshared", "keywords":
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(stderr, "grammargen: unknown command %q\n\n%s", cmd, usageText)
		return exitUsage
	}

	inv, err := parseArgs(cmd, rest, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	getenv := func(key string) string { return env[key] }
	palette := termcolor.NewPalette(false, env)

	logger, err := newLogger(inv.verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "grammargen: %v\n", err)
		return exitFail
	}
	defer func() { _ = logger.Sync() }()

	settings, err := resolveSettings(inv, getenv, logger)
	if err != nil {
		fmt.Fprintf(stderr, "grammargen: %s %v\n", palette.Error("error:"), err)
		return exitUsage
	}
	mode, _ := termcolor.ParseMode(settings.Color)
	palette = termcolor.NewPalette(termcolor.Resolve(mode, asFile(stderr), env), env)

	var blocks []model.Block
	switch cmd {
	case "hashshared":
		blocks, err = runHashShared(settings, stdin, logger)
	case "keywords":
		blocks, err = runKeywords(settings, logger)
	}
	if err == nil && settings.Verify {
		err = verifyBlocks(blocks, logger)
	}
	if err != nil {
		reportError(stderr, palette, err)
		return exitFail
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, settings.Format, blocks); err != nil {
		reportError(stderr, palette, err)
		return exitFail
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		reportError(stderr, palette, err)
		return exitFail
	}
	if settings.Summary {
		if err := output.WriteSummary(stderr, blocks, palette); err != nil {
			logger.Warn("write summary", zap.Error(err))
		}
	}
	return exitOK
}

type invocation struct {
	cmd        string
	configPath string
	verbose    bool
	layer      config.Config
}

func parseArgs(cmd string, args []string, stderr io.Writer) (invocation, error) {
	inv := invocation{cmd: cmd}
	fs := flag.NewFlagSet("grammargen "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		input   string
		format  string
		color   string
		verify  bool
		summary bool
	)
	fs.StringVar(&inv.configPath, "config", "", "config file (yaml|toml|json); default: search .grammargen.* upwards, then XDG, then home")
	if cmd == "hashshared" {
		fs.StringVar(&input, "input", "", "shared-name table (CSV with Name and Value columns); - reads stdin (default hashShared.csv)")
	}
	fs.StringVar(&format, "format", "", "text|json|yaml|csv|markdown (default text)")
	fs.StringVar(&color, "color", "", "auto|always|never, for diagnostics on stderr (default auto)")
	fs.BoolVar(&verify, "verify", false, "check that every literal is matched by its own pattern")
	fs.BoolVar(&summary, "summary", false, "print a per-category summary to stderr")
	fs.BoolVar(&inv.verbose, "verbose", false, "debug logging on stderr")
	if err := fs.Parse(args); err != nil {
		return inv, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintf(stderr, "grammargen: %v\n", err)
		return inv, err
	}

	// Only flags given on the command line form a layer.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			inv.layer.Input = &input
		case "format":
			inv.layer.Format = &format
		case "color":
			inv.layer.Color = &color
		case "verify":
			inv.layer.Verify = &verify
		case "summary":
			inv.layer.Summary = &summary
		}
	})
	return inv, nil
}

func resolveSettings(inv invocation, getenv func(string) string, logger *zap.Logger) (config.Settings, error) {
	explicit := inv.configPath
	if explicit == "" {
		explicit = getenv(config.EnvConfig)
	}
	path, where, err := config.Find(".", explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return config.Settings{}, fmt.Errorf("find config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}
	if path != "" {
		logger.Debug("loaded config", zap.String("path", path), zap.String("source", where))
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return config.Settings{}, err
	}
	settings := config.Merge(config.DefaultSettings(), fileCfg, envCfg, inv.layer)
	return config.Normalize(settings)
}

func runHashShared(settings config.Settings, stdin io.Reader, logger *zap.Logger) ([]model.Block, error) {
	var r io.Reader = stdin
	source := "stdin"
	if settings.Input != "-" {
		f, err := os.Open(settings.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		source = settings.Input
	}
	entries, err := hashshared.ReadEntries(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("read table", zap.String("source", source), zap.Int("rows", len(entries)))

	mapping := settings.ValueMapping()
	groups, err := hashshared.Classify(entries, mapping)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("classified table",
		zap.Int("categories", len(groups.Names)),
		zap.Int("filtered", groups.Filtered))
	return hashshared.Render(groups), nil
}

func runKeywords(settings config.Settings, logger *zap.Logger) ([]model.Block, error) {
	lists := settings.KeywordLists()
	logger.Debug("keyword lists", zap.Int("lists", len(lists)), zap.Bool("builtin", settings.Keywords == nil))
	return keywords.Generate(lists)
}

func verifyBlocks(blocks []model.Block, logger *zap.Logger) error {
	var errs []error
	for _, b := range blocks {
		if err := regexgen.Verify(b.Category, b.Pattern, b.Literals); err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Debug("verified", zap.String("category", b.Category), zap.Int("literals", len(b.Literals)))
	}
	return errors.Join(errs...)
}

func reportError(w io.Writer, p termcolor.Palette, err error) {
	var (
		unmapped *hashshared.UnmappedValueError
		overlap  *keywords.CategoryOverlapError
	)
	switch {
	case errors.As(err, &unmapped):
		fmt.Fprintf(w, "grammargen: %s %v\n", p.Error("unmapped value:"), err)
		fmt.Fprintf(w, "%s\n", p.Dim("extend the value mapping (built-in or \"mapping\" in the config file) and rerun"))
	case errors.As(err, &overlap):
		fmt.Fprintf(w, "grammargen: %s %v\n", p.Error("overlapping categories:"), err)
	default:
		fmt.Fprintf(w, "grammargen: %s %v\n", p.Error("error:"), err)
	}
}

func asFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
