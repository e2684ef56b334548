package berlinclock

import (
	"strings"

	"github.com/samber/lo"
	"github.com/wheelibin/berlinuhr/internal/constants"
)

// LampPattern is the state of every lamp on the clock, one string per row from the top.
type LampPattern struct {
	Seconds     string
	FiveHours   string
	OneHours    string
	FiveMinutes string
	OneMinutes  string
}

// Render lights the lamps for an already validated time.
func Render(t Time) LampPattern {
	fiveHours := t.Hours / 5
	fiveMinutes := t.Minutes / 5

	seconds := string(constants.LampYellow)
	if t.Seconds%2 != 0 {
		seconds = string(constants.LampOff)
	}

	return LampPattern{
		Seconds:   seconds,
		FiveHours: row(constants.LampRed, fiveHours, constants.FiveHourRowWidth),
		OneHours:  row(constants.LampRed, t.Hours-fiveHours*5, constants.OneHourRowWidth),
		FiveMinutes: strings.ReplaceAll(
			row(constants.LampYellow, fiveMinutes, constants.FiveMinuteRowWidth),
			constants.QuarterRun, constants.QuarterRunMarked,
		),
		OneMinutes: row(constants.LampYellow, t.Minutes-fiveMinutes*5, constants.OneMinuteRowWidth),
	}
}

// row returns lit lamps followed by unlit lamps up to width
func row(lit rune, count int, width int) string {
	return strings.Repeat(string(lit), count) + strings.Repeat(string(constants.LampOff), width-count)
}

func (p LampPattern) Rows() []string {
	return []string{p.Seconds, p.FiveHours, p.OneHours, p.FiveMinutes, p.OneMinutes}
}

func (p LampPattern) Join(sep string) string {
	return strings.Join(p.Rows(), sep)
}

func (p LampPattern) String() string {
	return p.Join(constants.DefaultLineSeparator)
}

// SecondsLampOn reports whether the blinking lamp on top is lit.
func (p LampPattern) SecondsLampOn() bool {
	return p.Seconds == string(constants.LampYellow)
}

// HoursShown reads the hours back from the two hour rows.
func (p LampPattern) HoursShown() int {
	return 5*litLamps(p.FiveHours) + litLamps(p.OneHours)
}

// MinutesShown reads the minutes back from the two minute rows, quarter lamps included.
func (p LampPattern) MinutesShown() int {
	return 5*litLamps(p.FiveMinutes) + litLamps(p.OneMinutes)
}

func litLamps(row string) int {
	return lo.CountBy([]rune(row), func(r rune) bool { return r != constants.LampOff })
}
