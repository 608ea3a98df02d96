package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const weekDaysSeparator = ","

var ErrInvalidWeekDay = errors.New("week day must be an integer from 0 to 6")

// WeekDay is a day of week, 0 (Sunday) through 6 (Saturday).
type WeekDay int

func NewWeekDay(v int) (WeekDay, error) {
	if v < 0 || v > 6 {
		return 0, fmt.Errorf("%d: %w", v, ErrInvalidWeekDay)
	}

	return WeekDay(v), nil
}

// WeekDays keeps the days in the order the client sent them, duplicates
// included.
type WeekDays []WeekDay

func NewWeekDays(days []int) (WeekDays, error) {
	result := make(WeekDays, 0, len(days))

	for _, d := range days {
		day, err := NewWeekDay(d)
		if err != nil {
			return nil, err
		}

		result = append(result, day)
	}

	return result, nil
}

// ParseWeekDays decodes the stored "0,2,4" form. An empty string is an empty
// set, not a single empty day.
func ParseWeekDays(s string) (WeekDays, error) {
	if s == "" {
		return WeekDays{}, nil
	}

	tokens := strings.Split(s, weekDaysSeparator)
	result := make(WeekDays, 0, len(tokens))

	for _, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", token, ErrInvalidWeekDay)
		}

		day, err := NewWeekDay(v)
		if err != nil {
			return nil, err
		}

		result = append(result, day)
	}

	return result, nil
}

func (w WeekDays) Ints() []int {
	result := make([]int, len(w))

	for i, d := range w {
		result[i] = int(d)
	}

	return result
}

// String encodes the days for storage.
func (w WeekDays) String() string {
	tokens := make([]string, len(w))

	for i, d := range w {
		tokens[i] = strconv.Itoa(int(d))
	}

	return strings.Join(tokens, weekDaysSeparator)
}
