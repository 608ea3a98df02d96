package value

import (
	"errors"
	"fmt"
	"strings"
)

const maxIDLen = 64

var ErrInvalidID = errors.New("invalid id")

type GameID string

func ParseGameID(s string) (GameID, error) {
	id, err := parseID(s)
	if err != nil {
		return "", fmt.Errorf("game id: %w", err)
	}

	return GameID(id), nil
}

func (id GameID) String() string {
	return string(id)
}

type AdID string

func ParseAdID(s string) (AdID, error) {
	id, err := parseID(s)
	if err != nil {
		return "", fmt.Errorf("ad id: %w", err)
	}

	return AdID(id), nil
}

func (id AdID) String() string {
	return string(id)
}

func parseID(s string) (string, error) {
	if s == "" || len(s) > maxIDLen || strings.TrimSpace(s) != s {
		return "", ErrInvalidID
	}

	return s, nil
}
