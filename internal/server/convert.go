package server

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"squad_finder/internal/domain/entity"
	"squad_finder/internal/domain/value"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/rest"
)

var errHourSpan = errors.New("hourStart must be earlier than hourEnd")

func newRESTGame(game entity.GameSummary) rest.Game {
	return rest.Game{
		ID:        game.ID.String(),
		Title:     game.Title,
		BannerURL: game.BannerURL,
		Count: rest.GameCount{
			Ads: game.AdCount,
		},
	}
}

func newRESTCreatedAd(ad entity.Ad) rest.CreatedAd {
	return rest.CreatedAd{
		ID:              ad.ID.String(),
		GameID:          ad.GameID.String(),
		Name:            ad.Name,
		YearsPlaying:    ad.YearsPlaying,
		Discord:         ad.Discord,
		WeekDays:        ad.WeekDays.String(),
		HourStart:       ad.HourStart.Int(),
		HourEnd:         ad.HourEnd.Int(),
		UseVoiceChannel: ad.UseVoiceChannel,
		CreatedAt:       ad.CreatedAt,
	}
}

func newRESTAd(ad entity.Ad) rest.Ad {
	return rest.Ad{
		ID:              ad.ID.String(),
		Name:            ad.Name,
		WeekDays:        ad.WeekDays.Ints(),
		UseVoiceChannel: ad.UseVoiceChannel,
		YearsPlaying:    ad.YearsPlaying,
		HourStart:       ad.HourStart.String(),
		HourEnd:         ad.HourEnd.String(),
	}
}

// newDomainAd expects a request that already passed struct validation, so
// the pointer fields are set.
func newDomainAd(gameID value.GameID, ad rest.CreateAdRequest) (entity.Ad, error) {
	weekDays, err := value.NewWeekDays(ad.WeekDays)
	if err != nil {
		return entity.Ad{}, invalidArgument(fmt.Errorf("weekDays: %w", err))
	}

	hourStart, err := value.ParseHour(ad.HourStart)
	if err != nil {
		return entity.Ad{}, invalidArgument(fmt.Errorf("hourStart: %w", err))
	}

	hourEnd, err := value.ParseHour(ad.HourEnd)
	if err != nil {
		return entity.Ad{}, invalidArgument(fmt.Errorf("hourEnd: %w", err))
	}

	if hourStart >= hourEnd {
		return entity.Ad{}, invalidArgument(fmt.Errorf("%s-%s: %w", hourStart, hourEnd, errHourSpan))
	}

	return entity.Ad{
		GameID:          gameID,
		Name:            ad.Name,
		YearsPlaying:    lo.FromPtr(ad.YearsPlaying),
		Discord:         ad.Discord,
		WeekDays:        weekDays,
		HourStart:       hourStart,
		HourEnd:         hourEnd,
		UseVoiceChannel: lo.FromPtr(ad.UseVoiceChannel),
	}, nil
}

func invalidArgument(err error) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(err.Error()),
	)
}
