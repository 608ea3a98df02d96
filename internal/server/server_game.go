package server

import (
	"context"
	"fmt"
	"net/http"

	"squad_finder/internal/domain/entity"
	"squad_finder/pkg/httpx/reply"
	"squad_finder/pkg/lox"
)

type gameRepository interface {
	List(context.Context) ([]entity.GameSummary, error)
}

type GameServer struct {
	gameRepository gameRepository
}

func NewGameServer(gameRepository gameRepository) GameServer {
	return GameServer{
		gameRepository: gameRepository,
	}
}

func (s GameServer) getGames(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	games, err := s.gameRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("gameRepository.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(games, newRESTGame))

	return nil
}
