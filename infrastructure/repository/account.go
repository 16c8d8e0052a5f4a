package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/kol-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

const platformAccountsTable = "platform_accounts"

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.PlatformAccount, error)
	ListAccounts() ([]*domain.PlatformAccount, error)
	ListAccountsByStatus(status domain.AccountStatus) ([]*domain.PlatformAccount, error)
	CreateAccount(account *domain.PlatformAccount) error
	UpdateAccount(account *domain.UpdatePlatformAccountRequest) error
	UpdateAccountCheck(accountID string, status domain.AccountStatus, nickname string) error
	DeleteAccount(accountID string) error
	SaveUsages(usages []domain.AccountUsage) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

const accountColumns = "id, remark, cookies, status, nickname, last_use_date, today_use_count, created_at, updated_at"

func (a *accountRepository) GetAccountByID(accountID string) (*domain.PlatformAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select(accountColumns).
		From(platformAccountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountSQL, accountArgs...)

	account, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (a *accountRepository) ListAccounts() ([]*domain.PlatformAccount, error) {
	return a.listAccounts(nil)
}

// ListAccountsByStatus lista apenas as contas no estado informado. O motor de
// coleta usa este filtro para montar o pool de contas válidas.
func (a *accountRepository) ListAccountsByStatus(status domain.AccountStatus) ([]*domain.PlatformAccount, error) {
	return a.listAccounts(squirrel.Eq{"status": status})
}

func (a *accountRepository) listAccounts(whereClause interface{}) ([]*domain.PlatformAccount, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From(platformAccountsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.PlatformAccount, 0)

	for rows.Next() {
		account := &domain.PlatformAccount{}

		if err := rows.Scan(
			&account.ID,
			&account.Remark,
			&account.Cookies,
			&account.Status,
			&account.Nickname,
			&account.LastUseDate,
			&account.TodayUseCount,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.PlatformAccount, error) {
	account := &domain.PlatformAccount{}

	if err := row.Scan(
		&account.ID,
		&account.Remark,
		&account.Cookies,
		&account.Status,
		&account.Nickname,
		&account.LastUseDate,
		&account.TodayUseCount,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return account, nil
}

func (a *accountRepository) CreateAccount(account *domain.PlatformAccount) error {
	insertSQL, insertArgs, err := squirrel.StatementBuilder.
		Insert(platformAccountsTable).
		Columns("id", "remark", "cookies", "status", "nickname", "last_use_date", "today_use_count").
		Values(
			account.ID,
			account.Remark,
			account.Cookies,
			account.Status,
			account.Nickname,
			account.LastUseDate,
			account.TodayUseCount,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.Exec(insertSQL, insertArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdatePlatformAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(platformAccountsTable).
		Where(squirrel.Eq{"id": account.ID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os campos que foram fornecidos para atualização
	if account.Remark != nil {
		queryBuilder = queryBuilder.Set("remark", *account.Remark)
	}

	if account.Cookies != nil {
		// Trocar os cookies invalida a checagem anterior
		queryBuilder = queryBuilder.
			Set("cookies", *account.Cookies).
			Set("status", domain.AccountStatusUnchecked).
			Set("nickname", "")
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.conn.Exec(sqlQuery, args...)
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
		return errors.New("account not found")
	}

	return nil
}

// UpdateAccountCheck registra o resultado de uma validação de cookies.
func (a *accountRepository) UpdateAccountCheck(accountID string, status domain.AccountStatus, nickname string) error {
	updateSQL, updateArgs, err := squirrel.
		Update(platformAccountsTable).
		Set("status", status).
		Set("nickname", nickname).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (a *accountRepository) DeleteAccount(accountID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(platformAccountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("account not found")
	}

	return nil
}

// SaveUsages persiste os contadores de cota acumulados em um lote, casando
// cada registro pela string de cookies. Apenas os dois campos de cota são
// atualizados, para não sobrescrever edições feitas durante o lote.
func (a *accountRepository) SaveUsages(usages []domain.AccountUsage) error {
	if len(usages) == 0 {
		return nil
	}

	return a.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, usage := range usages {
			updateSQL, updateArgs, err := squirrel.
				Update(platformAccountsTable).
				Set("last_use_date", usage.LastUseDate).
				Set("today_use_count", usage.TodayUseCount).
				Where(squirrel.Eq{"cookies": usage.Cookies}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.Exec(updateSQL, updateArgs...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("failed to execute query: %w", err)
			}
		}

		return nil
	})
}
