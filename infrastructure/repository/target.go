package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kol-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

const collectTargetsTable = "collect_targets"

type TargetRepository interface {
	ListTargets() ([]*domain.CollectTarget, error)
	GetTargetByUserID(userID string) (*domain.CollectTarget, error)
	CreateTarget(target *domain.CollectTarget) (created bool, err error)
	UpdateTargetStatus(targetID, status string) error
	UpdateTargetResult(target *domain.CollectTarget) error
	ClearTargets() error
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

const targetColumns = "id, user_id, pgy_url, xhs_url, nickname, status, record, collected_at, created_at"

func (t *targetRepository) ListTargets() ([]*domain.CollectTarget, error) {
	targetsSQL, targetsArgs, err := squirrel.
		Select(targetColumns).
		From(collectTargetsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := t.conn.Query(targetsSQL, targetsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	targets := make([]*domain.CollectTarget, 0)

	for rows.Next() {
		target, err := t.deserializeTarget(rows)
		if err != nil {
			return nil, err
		}

		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return targets, nil
}

func (t *targetRepository) GetTargetByUserID(userID string) (*domain.CollectTarget, error) {
	targetSQL, targetArgs, err := squirrel.
		Select(targetColumns).
		From(collectTargetsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := t.conn.Query(targetSQL, targetArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	return t.deserializeTarget(rows)
}

func (t *targetRepository) deserializeTarget(rows *sql.Rows) (*domain.CollectTarget, error) {
	target := &domain.CollectTarget{}

	var record []byte
	var collectedAt sql.NullTime

	if err := rows.Scan(
		&target.ID,
		&target.UserID,
		&target.PgyURL,
		&target.XhsURL,
		&target.Nickname,
		&target.Status,
		&record,
		&collectedAt,
		&target.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(record) > 0 {
		if err := json.Unmarshal(record, &target.Record); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o registro coletado: %w", err)
		}
	}

	if collectedAt.Valid {
		target.CollectedAt = &collectedAt.Time
	}

	return target, nil
}

// CreateTarget insere o alvo se ainda não existir um com o mesmo user_id.
// Devolve false quando o alvo foi ignorado pela deduplicação.
func (t *targetRepository) CreateTarget(target *domain.CollectTarget) (bool, error) {
	insertSQL, insertArgs, err := squirrel.StatementBuilder.
		Insert(collectTargetsTable).
		Columns("id", "user_id", "pgy_url", "xhs_url", "nickname", "status").
		Values(
			target.ID,
			target.UserID,
			target.PgyURL,
			target.XhsURL,
			target.Nickname,
			target.Status,
		).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := t.conn.Exec(insertSQL, insertArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (t *targetRepository) UpdateTargetStatus(targetID, status string) error {
	updateSQL, updateArgs, err := squirrel.
		Update(collectTargetsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": targetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = t.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateTargetResult persiste o desfecho de um alvo: estado final, apelido,
// registro coletado e horário da coleta.
func (t *targetRepository) UpdateTargetResult(target *domain.CollectTarget) error {
	if target.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(collectTargetsTable).
		Set("status", target.Status).
		Set("nickname", target.Nickname).
		Set("collected_at", collectedAtValue(target.CollectedAt)).
		Where(squirrel.Eq{"id": target.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if target.Record != nil {
		record, err := json.Marshal(target.Record)
		if err != nil {
			return fmt.Errorf("erro ao serializar o registro coletado: %w", err)
		}
		queryBuilder = queryBuilder.Set("record", record)
	}

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := t.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("target not found")
	}

	return nil
}

func (t *targetRepository) ClearTargets() error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(collectTargetsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := t.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func collectedAtValue(collectedAt *time.Time) interface{} {
	if collectedAt == nil {
		return nil
	}
	return *collectedAt
}
