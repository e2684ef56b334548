package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/wheelibin/berlinuhr/internal/scenario"
)

func printReport(w io.Writer, path string, report scenario.Report) {
	fmt.Fprintf(w, "%s: %s\n", path, report.Feature)

	for _, res := range report.Results {
		status := "ok"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-4s %s (line %d)\n", status, res.Scenario.Name, res.Scenario.Line)
		if !res.Passed {
			for _, line := range strings.Split(strings.TrimRight(res.Diff, "\n"), "\n") {
				fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}

	fmt.Fprintf(w, "%d scenarios, %d failed\n", len(report.Results), len(report.Failed()))
}
