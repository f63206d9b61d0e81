package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/you-not-fish/qasm/internal/config"
	"github.com/you-not-fish/qasm/internal/syntax"
)

const bell = `OPENQASM 2.0;
qreg q[2];
creg c[2];
U(pi/2, 0, pi) q[0];
CX q[0], q[1];
measure q -> c;
`

func TestCompile(t *testing.T) {
	res, err := New(nil, nil).Compile("bell.qasm", strings.NewReader(bell))
	require.NoError(t, err)
	require.NotNil(t, res.Program)
	assert.Len(t, res.Program.Stmts, 5)
	assert.Empty(t, res.Diagnostics)
	assert.NotNil(t, res.Info.Symbols.LookupRegister("q"))
}

func TestCompileSyntaxError(t *testing.T) {
	res, err := New(nil, nil).Compile("v3.qasm", strings.NewReader("OPENQASM 3.0;"))
	require.Error(t, err)
	assert.Nil(t, res.Program)
	assert.Same(t, err, res.Err)

	serr, ok := errors.Cause(err).(*syntax.SyntaxError)
	require.True(t, ok, "cause is %T", errors.Cause(err))
	assert.Equal(t, uint32(1), serr.Pos.Line())
	assert.True(t, strings.HasPrefix(err.Error(), "parse: v3.qasm:1:10:"), err.Error())
}

func TestCompileDiagnosticsPolicy(t *testing.T) {
	src := "OPENQASM 2.0;\nqreg q[0];\nh q;\nCX q;\n"

	res, err := New(nil, nil).Compile("bad.qasm", strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, res.Diagnostics, 3)

	conf := config.Default()
	conf.Diagnostics.Fatal = true
	res, err = New(conf, nil).Compile("bad.qasm", strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ErrDiagnostics, errors.Cause(err))
	assert.Len(t, res.Diagnostics, 3)
	assert.Equal(t, "bad.qasm: 3: semantic diagnostics reported", err.Error())
}

func TestCompileMaxDiagnostics(t *testing.T) {
	conf := config.Default()
	conf.Diagnostics.Max = 1

	src := "OPENQASM 2.0;\nqreg q[0];\nh q;\nCX q;\n"
	res, err := New(conf, nil).Compile("bad.qasm", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "invalid quantum register size", res.Diagnostics[0].Msg)
	assert.Equal(t, 2, res.Omitted)
}

func TestCompileFileMissing(t *testing.T) {
	res, err := New(nil, nil).CompileFile(filepath.Join(t.TempDir(), "nope.qasm"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	assert.Nil(t, res.Program)
}

func writeFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i := 0; i < n; i++ {
		src := bell
		switch i % 3 {
		case 1:
			src = "OPENQASM 2.0;\nqreg q[1];\nh q;\n"
		case 2:
			src = "OPENQASM 2.0;\nqreg q[1]"
		}
		path := filepath.Join(dir, fmt.Sprintf("f%02d.qasm", i))
		require.NoError(t, os.WriteFile(path, []byte(src), 0644))
		paths = append(paths, path)
	}
	return paths
}

func TestCompileFiles(t *testing.T) {
	paths := writeFiles(t, 12)

	conf := config.Default()
	conf.Jobs = 3
	core, logs := observer.New(zapcore.InfoLevel)

	results, err := New(conf, zap.New(core)).CompileFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		require.NotNil(t, res, "result %d", i)
		assert.Equal(t, paths[i], res.Filename)
		switch i % 3 {
		case 0:
			assert.NoError(t, res.Err)
			assert.Empty(t, res.Diagnostics)
		case 1:
			assert.NoError(t, res.Err)
			require.Len(t, res.Diagnostics, 1)
			assert.Equal(t, "gate 'h' not declared", res.Diagnostics[0].Msg)
		case 2:
			assert.Error(t, res.Err)
			assert.Nil(t, res.Program)
		}
	}

	batch := logs.FilterMessage("batch complete").All()
	require.Len(t, batch, 1)
	assert.EqualValues(t, 4, batch[0].ContextMap()["failed"])
}

// Concurrent runs do not share symbol tables.
func TestCompileFilesIndependentTables(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 1; i <= 8; i++ {
		path := filepath.Join(dir, fmt.Sprintf("r%d.qasm", i))
		src := fmt.Sprintf("OPENQASM 2.0;\nqreg q[%d];\nbarrier q;\n", i)
		require.NoError(t, os.WriteFile(path, []byte(src), 0644))
		paths = append(paths, path)
	}

	results, err := New(nil, nil).CompileFiles(context.Background(), paths)
	require.NoError(t, err)
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, i+1, res.Info.Symbols.LookupRegister("q").Size())
	}
}

// A zero or negative job count still compiles every file.
func TestCompileFilesJobs(t *testing.T) {
	tests := []struct {
		name string
		conf *config.Config
	}{
		{"zero_config", &config.Config{}},
		{"negative_jobs", &config.Config{Jobs: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := writeFiles(t, 3)

			type outcome struct {
				results []*Result
				err     error
			}
			done := make(chan outcome, 1)
			go func() {
				results, err := New(tt.conf, nil).CompileFiles(context.Background(), paths)
				done <- outcome{results, err}
			}()

			select {
			case out := <-done:
				require.NoError(t, out.err)
				require.Len(t, out.results, len(paths))
				for i, res := range out.results {
					assert.NotNil(t, res, "result %d", i)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("CompileFiles did not return")
			}
		})
	}
}

func TestCompileFilesCanceled(t *testing.T) {
	paths := writeFiles(t, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New(nil, nil).CompileFiles(ctx, paths)
	require.Error(t, err)
	assert.Equal(t, context.Canceled, errors.Cause(err))
	assert.Len(t, results, 4)
	for _, res := range results {
		assert.Nil(t, res)
	}
}
