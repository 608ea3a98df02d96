// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// Game Игра из каталога вместе с количеством объявлений
type Game struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	BannerURL string    `json:"bannerUrl"`
	Count     GameCount `json:"_count"`
}

// GameCount Агрегаты по игре
type GameCount struct {
	Ads int `json:"ads"`
}

// CreateAdRequest Тело запроса на создание объявления
type CreateAdRequest struct {
	Name            string `json:"name"            validate:"required"`
	YearsPlaying    *int   `json:"yearsPlaying"    validate:"required,min=0,max=100"`
	Discord         string `json:"discord"         validate:"required"`
	WeekDays        []int  `json:"weekDays"        validate:"required,dive,min=0,max=6"`
	HourStart       string `json:"hourStart"       validate:"required"`
	HourEnd         string `json:"hourEnd"         validate:"required"`
	UseVoiceChannel *bool  `json:"useVoiceChannel" validate:"required"`
}

// CreatedAd Объявление в том виде, в котором оно сохранено
type CreatedAd struct {
	ID              string    `json:"id"`
	GameID          string    `json:"gameId"`
	Name            string    `json:"name"`
	YearsPlaying    int       `json:"yearsPlaying"`
	Discord         string    `json:"discord"`
	WeekDays        string    `json:"weekDays"`
	HourStart       int       `json:"hourStart"`
	HourEnd         int       `json:"hourEnd"`
	UseVoiceChannel bool      `json:"useVoiceChannel"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Ad Объявление в списке объявлений игры
type Ad struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	WeekDays        []int  `json:"weekDays"`
	UseVoiceChannel bool   `json:"useVoiceChannel"`
	YearsPlaying    int    `json:"yearsPlaying"`
	HourStart       string `json:"hourStart"`
	HourEnd         string `json:"hourEnd"`
}

// Discord Контакт автора объявления
type Discord struct {
	Discord string `json:"discord"`
}

// Error Модель ошибок
type Error struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody Содержимое ошибки
type ErrorBody struct {
	// Kind Код ошибки
	Kind ErrorCode `json:"kind"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
