package scenario

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

var (
	whenTimeStep  = regexp.MustCompile(`^When the time is "(.*)"$`)
	thenClockStep = regexp.MustCompile(`^Then the clock should look like$`)
	thenFailStep  = regexp.MustCompile(`^Then the conversion should fail with "(.*)"$`)

	// gherkin reports syntax errors as "(line:column): message"
	gherkinErrorLocation = regexp.MustCompile(`\((\d+):\d+\): ([^\n]*)`)
)

var ErrNoScenarios = errors.New("feature has no scenarios")

type Feature struct {
	Name string
	// free text between Feature: and the first scenario
	Description string
	Scenarios   []Scenario
}

// Scenario is one "When the time is" step and what the clock should do with it.
// Expected is only meaningful when ExpectError is false, ExpectedError otherwise.
type Scenario struct {
	Name          string
	Line          int
	Time          string
	Expected      string
	ExpectError   bool
	ExpectedError string
}

type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func parseErrorf(loc *messages.Location, format string, args ...any) error {
	return &ParseError{Line: int(loc.Line), Msg: fmt.Sprintf(format, args...)}
}

// ParseFeature reads a feature file and maps its steps onto clock scenarios.
func ParseFeature(r io.Reader) (*Feature, error) {
	doc, err := gherkin.ParseGherkinDocument(r, (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, fromGherkinError(err)
	}
	if doc.Feature == nil {
		return nil, ErrNoScenarios
	}

	feature := &Feature{
		Name:        doc.Feature.Name,
		Description: trimDescription(doc.Feature.Description),
	}

	for _, child := range doc.Feature.Children {
		switch {
		case child.Background != nil:
			return nil, parseErrorf(child.Background.Location, "backgrounds are not supported")
		case child.Rule != nil:
			return nil, parseErrorf(child.Rule.Location, "rules are not supported")
		case child.Scenario != nil:
			s, err := toScenario(child.Scenario)
			if err != nil {
				return nil, err
			}
			feature.Scenarios = append(feature.Scenarios, s)
		}
	}

	if len(feature.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	return feature, nil
}

func toScenario(sc *messages.Scenario) (Scenario, error) {
	s := Scenario{Name: sc.Name, Line: int(sc.Location.Line)}
	if len(sc.Examples) > 0 {
		return s, parseErrorf(sc.Location, "scenario outlines are not supported")
	}

	hasWhen, hasThen := false, false
	for _, step := range sc.Steps {
		text := strings.TrimSpace(step.Keyword) + " " + step.Text

		switch {
		case whenTimeStep.MatchString(text):
			if hasWhen {
				return s, parseErrorf(step.Location, "scenario %q already has a When step", s.Name)
			}
			s.Time = whenTimeStep.FindStringSubmatch(text)[1]
			hasWhen = true

		case thenClockStep.MatchString(text), thenFailStep.MatchString(text):
			switch {
			case !hasWhen:
				return s, parseErrorf(step.Location, "Then step before When step in scenario %q", s.Name)
			case hasThen:
				return s, parseErrorf(step.Location, "scenario %q already has a Then step", s.Name)
			}

			if m := thenFailStep.FindStringSubmatch(text); m != nil {
				s.ExpectError = true
				s.ExpectedError = m[1]
			} else {
				if step.DocString == nil {
					return s, parseErrorf(step.Location, "expected a doc string")
				}
				s.Expected = step.DocString.Content
			}
			hasThen = true

		default:
			return s, parseErrorf(step.Location, "unknown step %q", text)
		}
	}

	if !hasThen {
		return s, parseErrorf(sc.Location, "scenario %q has no Then step", s.Name)
	}
	return s, nil
}

// fromGherkinError keeps the first reported syntax error
func fromGherkinError(err error) error {
	m := gherkinErrorLocation.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("error reading feature: %w", err)
	}
	line, _ := strconv.Atoi(m[1])
	return &ParseError{Line: line, Msg: m[2]}
}

func trimDescription(description string) string {
	lines := strings.Split(description, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
