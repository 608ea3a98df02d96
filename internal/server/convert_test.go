package server

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"squad_finder/internal/domain/entity"
	"squad_finder/internal/domain/value"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/rest"
)

func validRequest() rest.CreateAdRequest {
	return rest.CreateAdRequest{
		Name:            "Zed",
		YearsPlaying:    lo.ToPtr(3),
		Discord:         "zed#0001",
		WeekDays:        []int{5, 1, 1},
		HourStart:       "08:30",
		HourEnd:         "23:59",
		UseVoiceChannel: lo.ToPtr(false),
	}
}

func TestNewDomainAd(t *testing.T) {
	ad, err := newDomainAd("game-1", validRequest())
	require.NoError(t, err)

	require.Equal(t, entity.Ad{
		GameID:          "game-1",
		Name:            "Zed",
		YearsPlaying:    3,
		Discord:         "zed#0001",
		WeekDays:        value.WeekDays{5, 1, 1},
		HourStart:       510,
		HourEnd:         1439,
		UseVoiceChannel: false,
	}, ad)
}

func TestNewDomainAdErrors(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(*rest.CreateAdRequest)
		wantMessage string
	}{
		{
			name:        "bad weekday",
			modify:      func(r *rest.CreateAdRequest) { r.WeekDays = []int{-1} },
			wantMessage: "weekDays",
		},
		{
			name:        "bad start",
			modify:      func(r *rest.CreateAdRequest) { r.HourStart = "8:3:0" },
			wantMessage: "hourStart",
		},
		{
			name:        "bad end",
			modify:      func(r *rest.CreateAdRequest) { r.HourEnd = "12:60" },
			wantMessage: "hourEnd",
		},
		{
			name:        "equal bounds",
			modify:      func(r *rest.CreateAdRequest) { r.HourEnd = r.HourStart },
			wantMessage: "08:30-08:30: hourStart must be earlier than hourEnd",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.modify(&request)

			_, err := newDomainAd("game-1", request)
			require.Error(t, err)
			require.True(t, failure.IsInvalidArgumentError(err))
			require.Equal(t, errcodes.ValidationError, failure.Code(err))
			require.Contains(t, failure.Description(err), tt.wantMessage)
		})
	}
}

func TestNewRESTAd(t *testing.T) {
	ad := entity.Ad{
		ID:              "cse8d9ak4l8p4tvc6ne0",
		GameID:          "game-1",
		Name:            "Zed",
		YearsPlaying:    2,
		Discord:         "zed#0001",
		WeekDays:        value.WeekDays{0, 6},
		HourStart:       0,
		HourEnd:         75,
		UseVoiceChannel: true,
	}

	require.Equal(t, rest.Ad{
		ID:              "cse8d9ak4l8p4tvc6ne0",
		Name:            "Zed",
		WeekDays:        []int{0, 6},
		UseVoiceChannel: true,
		YearsPlaying:    2,
		HourStart:       "00:00",
		HourEnd:         "01:15",
	}, newRESTAd(ad))

	created := newRESTCreatedAd(ad)
	require.Equal(t, "0,6", created.WeekDays)
	require.Equal(t, 0, created.HourStart)
	require.Equal(t, 75, created.HourEnd)
	require.Equal(t, "zed#0001", created.Discord)
}
