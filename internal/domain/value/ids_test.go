package value_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"squad_finder/internal/domain/value"
)

func TestParseIDs(t *testing.T) {
	rq := require.New(t)

	gameID, err := value.ParseGameID("game-1")
	rq.NoError(err)
	rq.Equal("game-1", gameID.String())

	adID, err := value.ParseAdID("cv37img6kh5s73d4v4k0")
	rq.NoError(err)
	rq.Equal("cv37img6kh5s73d4v4k0", adID.String())

	for _, bad := range []string{"", " game-1", "game-1\n", strings.Repeat("a", 65)} {
		_, err = value.ParseGameID(bad)
		rq.ErrorIs(err, value.ErrInvalidID, bad)

		_, err = value.ParseAdID(bad)
		rq.ErrorIs(err, value.ErrInvalidID, bad)
	}
}
