package berlinclock

import (
	"github.com/charmbracelet/log"
	"github.com/wheelibin/berlinuhr/internal/constants"
)

// TimeConverter turns "HH:mm:ss" strings into the text form of the Berlin clock lamps.
// It holds no mutable state and can be shared between goroutines.
type TimeConverter struct {
	logger        *log.Logger
	lineSeparator string
}

func NewTimeConverter(logger *log.Logger, lineSeparator string) *TimeConverter {
	if lineSeparator == "" {
		lineSeparator = constants.DefaultLineSeparator
	}
	return &TimeConverter{logger: logger, lineSeparator: lineSeparator}
}

// ConvertTime validates the time and returns the five lamp rows joined by the line separator.
func (c *TimeConverter) ConvertTime(text string) (string, error) {
	t, err := ParseTime(text)
	if err != nil {
		c.logger.Debug("rejected time", "input", text, "err", err)
		return "", err
	}

	pattern := Render(t)
	c.logger.Debug("converted time", "input", text, "rows", pattern.Rows())

	return pattern.Join(c.lineSeparator), nil
}
