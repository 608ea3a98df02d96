package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"squad_finder/internal/domain"
	"squad_finder/internal/domain/entity"
	"squad_finder/internal/domain/value"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/lox"
)

type AdRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewAdRepository создаёт новый экземпляр репозитория.
func NewAdRepository(db *sqlx.DB) *AdRepository {
	return &AdRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *AdRepository) WithClock(now func() time.Time) *AdRepository {
	r.now = now
	return r
}

// Create сохраняет объявление, выдавая ему идентификатор и время создания.
// Ссылку на игру проверяет внешний ключ.
func (r *AdRepository) Create(ctx context.Context, ad entity.Ad) (entity.Ad, error) {
	ad.ID = value.AdID(xid.New().String())
	ad.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query := `
		INSERT INTO ads (
			id, game_id, name, years_playing, discord, week_days,
			hour_start, hour_end, use_voice_channel, created_at
		) VALUES (
			:id, :game_id, :name, :years_playing, :discord, :week_days,
			:hour_start, :hour_end, :use_voice_channel, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, fromAd(ad)); err != nil {
		if isForeignKeyViolation(err) {
			return entity.Ad{}, domain.WrapError(err, errcodes.ForeignKeyViolation, "game does not exist")
		}

		if isOutOfRange(err) {
			return entity.Ad{}, domain.WrapError(err, errcodes.ValidationError, "value out of range")
		}

		return entity.Ad{}, domain.WrapError(err, errcodes.StorageUnavailable, "failed to create ad")
	}

	return ad, nil
}

// ListByGame возвращает объявления игры, новые первыми. Для неизвестной игры
// список пуст.
func (r *AdRepository) ListByGame(ctx context.Context, gameID value.GameID) ([]entity.Ad, error) {
	query := r.db.Rebind(`
		SELECT id, name, week_days, use_voice_channel, years_playing, hour_start, hour_end
		FROM ads
		WHERE game_id = ?
		ORDER BY created_at DESC, id DESC`)

	var schemas []adSchema
	if err := r.db.SelectContext(ctx, &schemas, query, gameID.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "failed to list ads")
	}

	ads, err := lox.MapErr(schemas, adSchema.toDomain)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert ad")
	}

	for i := range ads {
		ads[i].GameID = gameID
	}

	return ads, nil
}

// GetDiscord возвращает контакт автора объявления.
func (r *AdRepository) GetDiscord(ctx context.Context, id value.AdID) (string, error) {
	query := r.db.Rebind(`SELECT discord FROM ads WHERE id = ?`)

	var discord string
	if err := r.db.GetContext(ctx, &discord, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewError(errcodes.NotFound, "ad not found")
		}
		return "", domain.WrapError(err, errcodes.StorageUnavailable, "failed to get ad discord")
	}

	return discord, nil
}
