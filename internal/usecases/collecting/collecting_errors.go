package collecting

import "errors"

// Erros específicos do contexto de coleta. A mensagem de cota esgotada é a
// mesma exibida na linha do alvo, por isso fica em chinês.
var (
	ErrBatchAlreadyRunning = errors.New("a batch is already running")
	ErrBatchNotRunning     = errors.New("no batch is running")
	ErrBatchNotPaused      = errors.New("batch is not paused")
	ErrNoValidAccounts     = errors.New("no valid accounts available")
	ErrNoTargets           = errors.New("no targets to collect")

	// ErrQuotaExhausted indica que todas as contas atingiram a cota diária
	ErrQuotaExhausted = errors.New("所有账号均已达到今日最大使用次数")
)
