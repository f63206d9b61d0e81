// Package driver runs the front end pipeline: parse, then analyze.
package driver

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/qasm/internal/check"
	"github.com/you-not-fish/qasm/internal/config"
	"github.com/you-not-fish/qasm/internal/syntax"
)

// ErrDiagnostics is returned, wrapped, when the configuration treats
// diagnostics as failure and a program has some.
var ErrDiagnostics = errors.New("semantic diagnostics reported")

// Result is the outcome of compiling one source.
type Result struct {
	Filename string
	Program  *syntax.Program // nil after a syntax error
	Info     *check.Info     // nil after a syntax error

	// Diagnostics holds the reported diagnostics, at most
	// Diagnostics.Max of them when a limit is configured.
	Diagnostics []check.Diagnostic
	// Omitted counts the diagnostics dropped by the limit.
	Omitted int

	// Err is the error returned by Compile for this source.
	Err error
}

// Driver compiles sources under one configuration. It holds no per-source
// state and may be used from several goroutines.
type Driver struct {
	conf *config.Config
	log  *zap.Logger
}

// New returns a Driver. A nil conf means the defaults; unset fields of a
// given conf take their default values. A nil logger disables logging.
func New(conf *config.Config, log *zap.Logger) *Driver {
	c := config.Config{}
	if conf != nil {
		c = *conf
	}
	c = c.WithDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{conf: &c, log: log}
}

// Compile parses and analyzes src. A syntax error is returned wrapped;
// its cause is a *syntax.SyntaxError. Diagnostics are returned in the
// result and only cause an error, ErrDiagnostics, under a fatal policy.
func (d *Driver) Compile(filename string, src io.Reader) (*Result, error) {
	start := time.Now()
	res := &Result{Filename: filename}

	prog, err := syntax.NewParser(filename, src, nil).Parse()
	if err != nil {
		res.Err = errors.Wrap(err, "parse")
		d.log.Debug("parse failed", zap.String("file", filename), zap.Error(err))
		return res, res.Err
	}
	res.Program = prog

	res.Info = &check.Info{}
	diags := check.Check(prog, &check.Config{Logger: d.log.With(zap.String("file", filename))}, res.Info)
	if max := d.conf.Diagnostics.Max; max > 0 && len(diags) > max {
		res.Omitted = len(diags) - max
		diags = diags[:max]
	}
	res.Diagnostics = diags

	d.log.Debug("compiled",
		zap.String("file", filename),
		zap.Int("statements", len(prog.Stmts)),
		zap.Int("diagnostics", len(diags)+res.Omitted),
		zap.Duration("elapsed", time.Since(start)),
	)

	if d.conf.Diagnostics.Fatal && len(diags) > 0 {
		res.Err = errors.Wrapf(ErrDiagnostics, "%s: %d", filename, len(diags)+res.Omitted)
	}
	return res, res.Err
}

// CompileFile reads and compiles the file at path.
func (d *Driver) CompileFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		res := &Result{Filename: path, Err: errors.Wrap(err, "read")}
		return res, res.Err
	}
	return d.Compile(path, bytes.NewReader(data))
}

// CompileFiles compiles the files at paths concurrently, at most
// Jobs at a time. Every file gets a result, in the order of paths; a
// failing file does not stop the others. If ctx is done early, files not
// yet started have a nil result and the context error is returned.
func (d *Driver) CompileFiles(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	// A limit of zero would block every Go call.
	jobs := d.conf.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			// Each goroutine owns its parser, checker and symbol table.
			results[i], _ = d.CompileFile(path)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, "compile files")
	}

	d.log.Info("batch complete", zap.Int("files", len(paths)), zap.Int("failed", countFailed(results)))
	return results, nil
}

func countFailed(results []*Result) int {
	n := 0
	for _, r := range results {
		if r == nil || r.Err != nil {
			n++
		}
	}
	return n
}
