package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fin-advisor/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := squirrel.Select("id", "visa_status", "income_type", "region", "language", "goals", "updated_at").
		From("user_profiles").
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		profile   models.UserProfile
		goalsJSON []byte
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &profile.VisaStatus, &profile.IncomeType, &profile.Region, &profile.Language, &goalsJSON, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(goalsJSON) > 0 {
		if err := json.Unmarshal(goalsJSON, &profile.Goals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal goals: %w", err)
		}
	}

	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	goalsJSON, err := json.Marshal(profile.Goals)
	if err != nil {
		return fmt.Errorf("failed to marshal goals: %w", err)
	}

	query := squirrel.Insert("user_profiles").
		Columns("id", "visa_status", "income_type", "region", "language", "goals", "updated_at").
		Values(profile.ID, profile.VisaStatus, profile.IncomeType, profile.Region, profile.Language, goalsJSON, profile.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			visa_status = EXCLUDED.visa_status,
			income_type = EXCLUDED.income_type,
			region = EXCLUDED.region,
			language = EXCLUDED.language,
			goals = EXCLUDED.goals,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
