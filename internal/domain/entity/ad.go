package entity

import (
	"time"

	"squad_finder/internal/domain/value"
)

type Ad struct {
	ID              value.AdID
	GameID          value.GameID
	Name            string
	YearsPlaying    int
	Discord         string
	WeekDays        value.WeekDays
	HourStart       value.Minutes
	HourEnd         value.Minutes
	UseVoiceChannel bool
	CreatedAt       time.Time
}
