package scenario

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/wheelibin/berlinuhr/internal/concurrency"
	"github.com/wheelibin/berlinuhr/internal/constants"
)

type timeConverter interface {
	ConvertTime(text string) (string, error)
}

type Result struct {
	Scenario Scenario
	Actual   string
	Err      error
	Passed   bool
	// Diff is empty when the scenario passed (-expected +actual)
	Diff string
}

type Report struct {
	Feature string
	Results []Result
}

func (r Report) Failed() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool { return !res.Passed })
}

func (r Report) Passed() bool {
	return len(r.Failed()) == 0
}

type Runner struct {
	logger        *log.Logger
	converter     timeConverter
	lineSeparator string
	workers       int
}

// NewRunner creates a runner whose doc strings are compared using lineSeparator between rows.
func NewRunner(logger *log.Logger, converter timeConverter, lineSeparator string, workers int) *Runner {
	if lineSeparator == "" {
		lineSeparator = constants.DefaultLineSeparator
	}
	if workers < 1 {
		workers = constants.DefaultWorkers
	}
	return &Runner{logger: logger, converter: converter, lineSeparator: lineSeparator, workers: workers}
}

// Run converts the scenario's time and compares the whole output with what was expected.
func (r *Runner) Run(s Scenario) Result {
	actual, err := r.converter.ConvertTime(s.Time)
	res := Result{Scenario: s, Actual: actual, Err: err}

	if s.ExpectError {
		got := ""
		if err != nil {
			got = err.Error()
		}
		res.Passed = err != nil && got == s.ExpectedError
		if !res.Passed {
			res.Diff = cmp.Diff(s.ExpectedError, got)
		}
	} else {
		expected := strings.ReplaceAll(s.Expected, "\n", r.lineSeparator)
		res.Passed = err == nil && actual == expected
		if !res.Passed {
			res.Diff = cmp.Diff(expected, actual)
		}
	}

	if res.Passed {
		r.logger.Debug("scenario passed", "scenario", s.Name, "time", s.Time)
	} else {
		r.logger.Warn("scenario failed", "scenario", s.Name, "line", s.Line, "time", s.Time, "err", err)
	}

	return res
}

// RunFeature runs every scenario of the feature, results are kept in the order of the file.
func (r *Runner) RunFeature(f *Feature) Report {
	w := concurrency.NewWorker(r.workers, r.Run)
	report := Report{Feature: f.Name, Results: w.Run(f.Scenarios)}

	r.logger.Info("feature finished",
		"feature", f.Name,
		"scenarios", len(report.Results),
		"failed", len(report.Failed()),
	)

	return report
}
