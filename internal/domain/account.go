package domain

import "time"

// AccountStatus representa o estado de validade de uma conta da plataforma
type AccountStatus string

const (
	AccountStatusUnchecked AccountStatus = "未检测"
	AccountStatusValid     AccountStatus = "正常"
	AccountStatusInvalid   AccountStatus = "失效"
)

// PlatformAccount é uma conta de sessão da plataforma usada nas coletas.
// A sessão é identificada pelo cookie completo; LastUseDate/TodayUseCount
// controlam a cota diária de uso.
type PlatformAccount struct {
	ID            string        `json:"id"`
	Remark        string        `json:"remark"`
	Cookies       string        `json:"cookies"`
	Status        AccountStatus `json:"status"`
	Nickname      string        `json:"nickname"`
	LastUseDate   string        `json:"last_use_date"`
	TodayUseCount int           `json:"today_use_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreatePlatformAccountRequest struct {
	Remark  string `json:"remark"`
	Cookies string `json:"cookies"`
}

type UpdatePlatformAccountRequest struct {
	ID      string         `json:"id"`
	Remark  *string        `json:"remark"`
	Cookies *string        `json:"cookies"`
	Status  *AccountStatus `json:"status"`
}

// AccountUsage carrega apenas os campos de cota que são persistidos ao
// final de um lote de coleta.
type AccountUsage struct {
	Cookies       string
	LastUseDate   string
	TodayUseCount int
}

// PlatformAccountResponse é o formato de listagem da API: o cookie completo
// nunca sai do servidor, apenas a indicação de presença.
type PlatformAccountResponse struct {
	ID            string        `json:"id"`
	Remark        string        `json:"remark"`
	Status        AccountStatus `json:"status"`
	Nickname      string        `json:"nickname"`
	LastUseDate   string        `json:"last_use_date"`
	TodayUseCount int           `json:"today_use_count"`
	HasCookies    bool          `json:"has_cookies"`
	CreatedAt     time.Time     `json:"created_at"`
}

type CheckAccountResult struct {
	ID       string        `json:"id"`
	Remark   string        `json:"remark"`
	Status   AccountStatus `json:"status"`
	Nickname string        `json:"nickname"`
}
