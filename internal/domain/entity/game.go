package entity

import "squad_finder/internal/domain/value"

type Game struct {
	ID        value.GameID
	Title     string
	BannerURL string
}

// GameSummary is a catalog entry together with the number of ads filed
// under it.
type GameSummary struct {
	Game
	AdCount int
}
