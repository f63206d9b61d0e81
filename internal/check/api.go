package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/qasm/internal/symbols"
	"github.com/you-not-fish/qasm/internal/syntax"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Error is called for each diagnostic, in source order.
	// If nil, diagnostics are only returned.
	Error ErrorHandler

	// Logger receives debug events per declaration and a summary per run.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// Info holds the results of semantic analysis.
type Info struct {
	// Symbols is the global table after the run, built-ins included.
	Symbols *symbols.Scope

	// Gates maps each resolved gate call, top-level or inside a gate body,
	// to the gate it applies.
	Gates map[*syntax.GateCall]*symbols.Gate

	// Operands maps each top-level gate call, measurement, barrier and
	// reset that passed its checks to its expanded operands.
	Operands map[syntax.Stmt]*Operands

	// Includes lists the include directives in source order.
	// They are recorded, never resolved.
	Includes []string
}

// Bit is one slot of a register.
type Bit struct {
	Reg   string
	Index int
}

// Operands holds the expanded register references of a statement.
// Clbits is only set for measurements, pairwise with Qubits.
type Operands struct {
	Qubits []Bit
	Clbits []Bit
}

// Check analyzes a parsed program and returns the diagnostics in source
// order. The analysis never stops early; each statement is checked on its
// own.
func Check(prog *syntax.Program, conf *Config, info *Info) []Diagnostic {
	if conf == nil {
		conf = &Config{}
	}

	log := conf.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Gates == nil {
			info.Gates = make(map[*syntax.GateCall]*symbols.Gate)
		}
		if info.Operands == nil {
			info.Operands = make(map[syntax.Stmt]*Operands)
		}
	}

	c := &Checker{
		conf:  conf,
		info:  info,
		log:   log,
		scope: symbols.NewUniverse(),
	}

	c.checkProgram(prog)

	if info != nil {
		info.Symbols = c.scope
	}
	return c.diags
}
