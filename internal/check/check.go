// Package check is a minimal assertion runner. A Checker accumulates
// pass/fail counts for one run; there is no package-level state.
package check

import (
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
)

// Result is the tally of a run.
type Result struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Total returns the number of checks evaluated.
func (r Result) Total() int { return r.Passed + r.Failed }

// OK reports whether no check failed.
func (r Result) OK() bool { return r.Failed == 0 }

// Checker evaluates boolean checks and logs the failing ones.
type Checker struct {
	log *slog.Logger
	res Result
}

// New creates a Checker that reports failures to log. A nil logger
// discards output.
func New(log *slog.Logger) *Checker {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{log: log}
}

// Check records ok. On failure it logs the description, the expression
// text and the caller's file and line. It returns ok.
func (c *Checker) Check(ok bool, expr, description string) bool {
	if ok {
		c.res.Passed++
		return true
	}
	c.res.Failed++
	file, line := "unknown", 0
	if _, f, l, found := runtime.Caller(1); found {
		file, line = filepath.Base(f), l
	}
	c.log.Error("check failed",
		"description", description,
		"code", expr,
		"file", file,
		"line", line,
	)
	return false
}

// Result returns the tally so far.
func (c *Checker) Result() Result { return c.res }
