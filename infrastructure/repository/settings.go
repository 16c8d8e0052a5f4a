package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kol-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

const collectorSettingsTable = "collector_settings"

// settingsRowID fixa a linha única da tabela de configurações.
const settingsRowID = 1

type SettingsRepository interface {
	GetSettings() (*domain.CollectorSettings, error)
	SaveSettings(settings *domain.CollectorSettings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// GetSettings carrega as configurações do coletor. Quando a linha ainda não
// existe, devolve os padrões sem erro.
func (s *settingsRepository) GetSettings() (*domain.CollectorSettings, error) {
	settingsSQL, settingsArgs, err := squirrel.
		Select("data").
		From(collectorSettingsTable).
		Where(squirrel.Eq{"id": settingsRowID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := s.conn.QueryRow(settingsSQL, settingsArgs...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultCollectorSettings(), nil
		}
		return nil, err
	}

	settings := domain.DefaultCollectorSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("erro ao deserializar as configurações: %w", err)
	}

	return settings, nil
}

func (s *settingsRepository) SaveSettings(settings *domain.CollectorSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("erro ao serializar as configurações: %w", err)
	}

	upsertSQL, upsertArgs, err := squirrel.StatementBuilder.
		Insert(collectorSettingsTable).
		Columns("id", "data").
		Values(settingsRowID, data).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				data = EXCLUDED.data,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = s.conn.Exec(upsertSQL, upsertArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
