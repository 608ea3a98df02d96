package value_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"squad_finder/internal/domain/value"
)

func TestWeekDaysString(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  []int
		output string
	}{
		{name: "Ordered", input: []int{1, 3, 5}, output: "1,3,5"},
		{name: "Insertion order kept", input: []int{5, 0, 2}, output: "5,0,2"},
		{name: "Duplicates kept", input: []int{2, 2}, output: "2,2"},
		{name: "Single", input: []int{0}, output: "0"},
		{name: "Empty", input: []int{}, output: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			days, err := value.NewWeekDays(tc.input)
			rq.NoError(err)
			rq.Equal(tc.output, days.String())
		})
	}
}

func TestNewWeekDaysOutOfRange(t *testing.T) {
	rq := require.New(t)

	_, err := value.NewWeekDays([]int{1, 7})
	rq.ErrorIs(err, value.ErrInvalidWeekDay)

	_, err = value.NewWeekDays([]int{-1})
	rq.ErrorIs(err, value.ErrInvalidWeekDay)
}

func TestParseWeekDays(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  string
		output []int
		err    error
	}{
		{name: "Stored form", input: "1,3,5", output: []int{1, 3, 5}},
		{name: "Empty string is no days", input: "", output: []int{}},
		{name: "Duplicates", input: "6,6", output: []int{6, 6}},
		{name: "Trailing separator", input: "1,", err: value.ErrInvalidWeekDay},
		{name: "Not a number", input: "mon", err: value.ErrInvalidWeekDay},
		{name: "Out of range", input: "1,9", err: value.ErrInvalidWeekDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			days, err := value.ParseWeekDays(tc.input)
			if tc.err != nil {
				rq.ErrorIs(err, tc.err)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.output, days.Ints())
		})
	}
}

func TestWeekDaysRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("encoded week days decode to the same sequence", prop.ForAll(
		func(input []int) bool {
			days, err := value.NewWeekDays(input)
			if err != nil {
				return false
			}

			decoded, err := value.ParseWeekDays(days.String())

			return err == nil && slices.Equal(input, decoded.Ints())
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
