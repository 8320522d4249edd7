package postgres

import (
	"context"
	"fmt"

	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/postgres"
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

type settingsRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSettingsRepository(db *postgres.DB, logger *logger.Logger) settings.Repository {
	return &settingsRepository{db: db, logger: logger}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (*settings.Settings, error) {
	var s settings.Settings
	rows, err := r.db.NamedQueryContext(ctx,
		"SELECT * FROM user_settings WHERE user_id = :user_id AND status = :status",
		map[string]interface{}{
			"user_id": userID,
			"status":  types.StatusActive,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, settings.ErrSettingsNotFound
	}

	if err := rows.StructScan(&s); err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}

	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, s *settings.Settings) error {
	query := `
		INSERT INTO user_settings (
			id, user_id, company_details, logo,
			yoco_public_key, yoco_secret_key, yoco_test_public_key, yoco_test_secret_key,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :user_id, :company_details, :logo,
			:yoco_public_key, :yoco_secret_key, :yoco_test_public_key, :yoco_test_secret_key,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)
		ON CONFLICT (user_id) DO UPDATE SET
			company_details = EXCLUDED.company_details,
			logo = EXCLUDED.logo,
			yoco_public_key = EXCLUDED.yoco_public_key,
			yoco_secret_key = EXCLUDED.yoco_secret_key,
			yoco_test_public_key = EXCLUDED.yoco_test_public_key,
			yoco_test_secret_key = EXCLUDED.yoco_test_secret_key,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`

	r.logger.Debugw("upserting settings", "user_id", s.UserID)

	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
