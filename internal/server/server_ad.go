package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"squad_finder/internal/domain/entity"
	"squad_finder/internal/domain/value"
	"squad_finder/pkg/httpx/reply"
	"squad_finder/pkg/httpx/req"
	"squad_finder/pkg/logx"
	"squad_finder/pkg/lox"
	"squad_finder/pkg/rest"
)

type adRepository interface {
	Create(context.Context, entity.Ad) (entity.Ad, error)
	ListByGame(context.Context, value.GameID) ([]entity.Ad, error)
	GetDiscord(context.Context, value.AdID) (string, error)
}

type AdServer struct {
	adRepository adRepository
}

func NewAdServer(adRepository adRepository) AdServer {
	return AdServer{
		adRepository: adRepository,
	}
}

func (s AdServer) postGameAds(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gameID, err := parseGameID(r)
	if err != nil {
		return err
	}

	var request rest.CreateAdRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	ad, err := newDomainAd(gameID, request)
	if err != nil {
		return fmt.Errorf("newDomainAd: %w", err)
	}

	ad, err = s.adRepository.Create(ctx, ad)
	if err != nil {
		return fmt.Errorf("adRepository.Create: %w", err)
	}

	logger(ctx).Info(
		"ad created",
		logx.Stringer(logx.FieldGameID, ad.GameID),
		logx.Stringer(logx.FieldAdID, ad.ID),
		slog.Int("week-days", len(ad.WeekDays)),
	)

	reply.JSON(ctx, w, http.StatusCreated, newRESTCreatedAd(ad))

	return nil
}

func (s AdServer) getGameAds(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gameID, err := parseGameID(r)
	if err != nil {
		return err
	}

	ads, err := s.adRepository.ListByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("adRepository.ListByGame: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(ads, newRESTAd))

	return nil
}

func (s AdServer) getAdDiscord(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseAdID(chi.URLParam(r, "id"))
	if err != nil {
		return invalidArgument(fmt.Errorf("ad id: %w", err))
	}

	discord, err := s.adRepository.GetDiscord(ctx, id)
	if err != nil {
		return fmt.Errorf("adRepository.GetDiscord: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Discord{Discord: discord})

	return nil
}

func parseGameID(r *http.Request) (value.GameID, error) {
	gameID, err := value.ParseGameID(chi.URLParam(r, "id"))
	if err != nil {
		return "", invalidArgument(fmt.Errorf("game id: %w", err))
	}

	return gameID, nil
}

