package persistence

import (
	"fmt"
	"time"

	"squad_finder/internal/domain/entity"
	"squad_finder/internal/domain/value"
)

// gameSummarySchema строка каталога вместе с количеством объявлений.
type gameSummarySchema struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	BannerURL string `db:"banner_url"`
	AdCount   int    `db:"ad_count"`
}

func (s gameSummarySchema) toDomain() entity.GameSummary {
	return entity.GameSummary{
		Game: entity.Game{
			ID:        value.GameID(s.ID),
			Title:     s.Title,
			BannerURL: s.BannerURL,
		},
		AdCount: s.AdCount,
	}
}

// adSchema представление таблицы ads в БД.
type adSchema struct {
	ID              string    `db:"id"`
	GameID          string    `db:"game_id"`
	Name            string    `db:"name"`
	YearsPlaying    int       `db:"years_playing"`
	Discord         string    `db:"discord"`
	WeekDays        string    `db:"week_days"`
	HourStart       int       `db:"hour_start"`
	HourEnd         int       `db:"hour_end"`
	UseVoiceChannel bool      `db:"use_voice_channel"`
	CreatedAt       time.Time `db:"created_at"`
}

func fromAd(e entity.Ad) adSchema {
	return adSchema{
		ID:              e.ID.String(),
		GameID:          e.GameID.String(),
		Name:            e.Name,
		YearsPlaying:    e.YearsPlaying,
		Discord:         e.Discord,
		WeekDays:        e.WeekDays.String(),
		HourStart:       e.HourStart.Int(),
		HourEnd:         e.HourEnd.Int(),
		UseVoiceChannel: e.UseVoiceChannel,
		CreatedAt:       e.CreatedAt,
	}
}

func (s adSchema) toDomain() (entity.Ad, error) {
	weekDays, err := value.ParseWeekDays(s.WeekDays)
	if err != nil {
		return entity.Ad{}, fmt.Errorf("ad %s week days: %w", s.ID, err)
	}

	hourStart, err := value.NewMinutes(s.HourStart)
	if err != nil {
		return entity.Ad{}, fmt.Errorf("ad %s hour start: %w", s.ID, err)
	}

	hourEnd, err := value.NewMinutes(s.HourEnd)
	if err != nil {
		return entity.Ad{}, fmt.Errorf("ad %s hour end: %w", s.ID, err)
	}

	return entity.Ad{
		ID:              value.AdID(s.ID),
		GameID:          value.GameID(s.GameID),
		Name:            s.Name,
		YearsPlaying:    s.YearsPlaying,
		Discord:         s.Discord,
		WeekDays:        weekDays,
		HourStart:       hourStart,
		HourEnd:         hourEnd,
		UseVoiceChannel: s.UseVoiceChannel,
		CreatedAt:       s.CreatedAt,
	}, nil
}
