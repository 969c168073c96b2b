// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/fixlicense/internal/atomicio"
	"go.astrophena.name/fixlicense/internal/cli"
	"go.astrophena.name/fixlicense/internal/config"
	"go.astrophena.name/fixlicense/internal/header"
	"go.astrophena.name/fixlicense/internal/lang"
	"go.astrophena.name/fixlicense/internal/logger"
	"go.astrophena.name/fixlicense/internal/restrict"
	"go.astrophena.name/fixlicense/internal/util/set"
	"go.astrophena.name/fixlicense/internal/util/syncx"

	"github.com/landlock-lsm/go-landlock/landlock"
)

// configEnv names the environment variable with the configuration file path.
const configEnv = "FIXLICENSE_CONFIG"

var (
	errWouldChange = errors.New("some files need changes")
	errFailed      = errors.New("some files could not be processed")
	errEmptyHeader = errors.New("header file is empty")
)

func main() { cli.Main(new(app)) }

type app struct {
	lang    string
	newline bool
	config  string
	dry     bool
	backup  bool
	jobs    int
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.lang, "l", "", "Use `language` for all files instead of detecting it.")
	fs.StringVar(&a.lang, "language", "", "Same as -l.")
	fs.BoolVar(&a.newline, "n", true, "Separate the header from the code with a blank line.")
	fs.BoolVar(&a.newline, "newline", true, "Same as -n.")
	fs.StringVar(&a.config, "config", "", "Load languages and indicators from Starlark `file`. Defaults to "+configEnv+" environment variable.")
	fs.BoolVar(&a.dry, "dry", false, "Report files that need changes, but don't write them.")
	fs.BoolVar(&a.backup, "backup", false, "Keep a backup of every rewritten file.")
	fs.IntVar(&a.jobs, "j", 1, "Process up to `n` files concurrently.")
	fs.BoolVar(&a.verbose, "v", false, "Log the loaded header and found comment blocks.")
}

// file is a file being processed.
type file struct {
	path  string
	lang  lang.Profile
	lines []string
	res   header.Result

	readErr  error
	writeErr error
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) < 2 {
		return fmt.Errorf("%w: header file and at least one file to fix are required", cli.ErrInvalidArgs)
	}
	if a.jobs < 1 {
		return fmt.Errorf("%w: -j must be at least 1", cli.ErrInvalidArgs)
	}
	if a.verbose {
		logger.Get(ctx).Level.Set(slog.LevelDebug)
	}

	cfg := config.Default()
	if path := cmp.Or(a.config, env.Getenv(configEnv)); path != "" {
		var err error
		cfg, err = config.Load(path, logger.Get(ctx).Logf(slog.LevelInfo))
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
	}
	if a.lang != "" {
		if _, ok := cfg.Languages.Lookup(a.lang); !ok {
			return fmt.Errorf("%w: unknown language %q, known are %s", lang.ErrUnknownLanguage, a.lang, strings.Join(cfg.Languages.Names(), ", "))
		}
	}

	canonical, err := header.Load(env.Args[0])
	if err != nil {
		return err
	}
	if len(canonical) == 0 {
		return fmt.Errorf("%w: %s", errEmptyHeader, env.Args[0])
	}
	logger.Debug(ctx, "loaded license header", slog.String("file", env.Args[0]), slog.String("text", string(header.JoinLines(canonical))))

	files, dirs := a.targets(ctx, env.Args[1:])

	// Drop privileges if not in tests.
	restrict.DoUnlessTesting(ctx, landlock.RWDirs(dirs...))

	if err := a.read(files, cfg.Languages); err != nil {
		return err
	}

	opts := header.Options{
		Indicators: cfg.Indicators,
		Pad:        a.newline,
	}
	wg := syncx.NewLimitedWaitGroup(a.jobs)
	for _, f := range files {
		if f.readErr != nil {
			continue
		}
		wg.Go(func() { a.fix(f, canonical, opts) })
	}
	wg.Wait()

	return a.report(ctx, files)
}

// targets returns files named by args without duplicates, and the directories
// that hold them.
func (a *app) targets(ctx context.Context, args []string) (files []*file, dirs []string) {
	var (
		seen     = set.New[string](len(args))
		seenDirs = set.New[string](len(args))
	)
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			path = filepath.Clean(arg)
		}
		if !seen.Add(path) {
			logger.Debug(ctx, "skipping duplicate", slog.String("file", arg))
			continue
		}
		// The file may be a symlink, so both the directory holding the link
		// and the one holding its target are needed.
		dir := filepath.Dir(path)
		if realdir, err := filepath.EvalSymlinks(dir); err == nil {
			dir = realdir
		}
		seenDirs.Add(dir)
		if target, err := filepath.EvalSymlinks(path); err == nil {
			seenDirs.Add(filepath.Dir(target))
		}
		files = append(files, &file{path: arg})
	}
	return files, seenDirs.ToSortedSlice()
}

// read reads all files and determines their languages. It fails if the
// language of any file is unknown, so nothing is written in this case.
// Other errors are kept in files.
func (a *app) read(files []*file, languages *lang.Table) error {
	var errs []error
	for _, f := range files {
		b, err := os.ReadFile(f.path)
		if err != nil {
			f.readErr = err
			continue
		}
		f.lines = header.SplitLines(b)

		var firstLine string
		if len(f.lines) > 0 {
			firstLine = f.lines[0]
		}
		f.lang, err = languages.Resolve(f.path, a.lang, firstLine)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) fix(f *file, canonical []string, opts header.Options) {
	f.res = header.Reconcile(f.lines, canonical, f.lang.Comments, opts)
	if !f.res.Changed() || a.dry {
		return
	}
	f.writeErr = atomicio.WriteFile(f.path, header.JoinLines(f.res.Lines), atomicio.Options{Backup: a.backup})
}

// report logs the outcome for every file, in the order they were given.
func (a *app) report(ctx context.Context, files []*file) error {
	env := cli.GetEnv(ctx)

	var failed, changed int
	for _, f := range files {
		attrs := []slog.Attr{slog.String("file", f.path)}
		if f.readErr != nil {
			logger.Error(ctx, "reading failed", append(attrs, slog.Any("err", f.readErr))...)
			failed++
			continue
		}

		attrs = append(attrs, slog.String("language", f.lang.Name))
		if f.res.Range.Valid() {
			attrs = append(attrs, slog.String("indicator", f.res.Indicator), slog.Int("line", f.res.Line+1))
			logger.Debug(ctx, "found comment block", append(attrs,
				slog.Int("lines", f.res.Range.Len()),
				slog.String("text", string(header.JoinLines(f.res.Block(f.lines)))),
			)...)
		}

		logger.Info(ctx, message(f.res, a.dry), attrs...)

		if f.writeErr != nil {
			logger.Error(ctx, "writing failed", slog.String("file", f.path), slog.Any("err", f.writeErr))
			failed++
			continue
		}
		if f.res.Changed() {
			changed++
			if a.dry {
				fmt.Fprintln(env.Stdout, f.path)
			}
		}
	}

	// Failures were logged above.
	if failed > 0 {
		return cli.Unprintable(fmt.Errorf("%w: %d of %d", errFailed, failed, len(files)))
	}
	if a.dry && changed > 0 {
		return fmt.Errorf("%w: %d of %d", errWouldChange, changed, len(files))
	}
	return nil
}

func message(res header.Result, dry bool) string {
	var msg string
	switch {
	case res.Status == header.StatusCorrect:
		return "license header correct"
	case res.Status == header.StatusReplaced:
		msg = "license headers differ, replacing"
	case res.Reason == header.ReasonNoComment:
		msg = "no valid license indicator found, inserting"
	default:
		msg = "no license indicator found, inserting"
	}
	if dry {
		msg += " (dry run)"
	}
	return msg
}
