package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"squad_finder/internal/domain"
	"squad_finder/internal/domain/entity"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/lox"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// List возвращает каталог игр с количеством объявлений по каждой.
func (r *GameRepository) List(ctx context.Context) ([]entity.GameSummary, error) {
	query := `
		SELECT g.id, g.title, g.banner_url, COUNT(a.id) AS ad_count
		FROM games g
		LEFT JOIN ads a ON a.game_id = g.id
		GROUP BY g.id, g.title, g.banner_url
		ORDER BY g.title ASC, g.id ASC`

	var schemas []gameSummarySchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "failed to list games")
	}

	return lox.Map(schemas, gameSummarySchema.toDomain), nil
}
