package berlinclock_test

import (
	"os"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/berlinuhr/internal/berlinclock"
)

func newConverter(sep string) *berlinclock.TimeConverter {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return berlinclock.NewTimeConverter(logger, sep)
}

func Test_ConvertTime(t *testing.T) {

	tests := []struct {
		input    string
		expected string
	}{
		{input: "00:00:00", expected: "Y\nOOOO\nOOOO\nOOOOOOOOOOO\nOOOO"},
		{input: "13:17:01", expected: "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO"},
		{input: "23:59:59", expected: "O\nRRRR\nRRRO\nYYRYYRYYRYY\nYYYY"},
		{input: "24:00:00", expected: "Y\nRRRR\nRRRR\nOOOOOOOOOOO\nOOOO"},
	}

	c := newConverter("")
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, err := c.ConvertTime(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func Test_ConvertTime_CustomSeparator(t *testing.T) {
	actual, err := newConverter("\r\n").ConvertTime("13:17:01")
	require.NoError(t, err)
	assert.Equal(t, "O\r\nRROO\r\nRRRO\r\nYYROOOOOOOO\r\nYYOO", actual)
}

func Test_ConvertTime_Errors(t *testing.T) {
	c := newConverter("")

	actual, err := c.ConvertTime("   ")
	assert.ErrorIs(t, err, berlinclock.ErrEmptyInput)
	assert.Empty(t, actual)

	actual, err = c.ConvertTime("23:60:00")
	assert.ErrorIs(t, err, berlinclock.ErrMinutesOutOfRange)
	assert.EqualError(t, err, "Minutes must be between 0-59")
	assert.Empty(t, actual)
}

func Test_ConvertTime_Deterministic(t *testing.T) {
	c := newConverter("")
	first, err := c.ConvertTime("09:34:03")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.ConvertTime("09:34:03")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, first, r)
	}
}
