package accountpool

import (
	"sync"
	"time"

	"github.com/vfg2006/kol-collector-api/internal/domain"
)

// Assignment é o resultado de uma atribuição de conta: o índice exibido ao
// usuário (a partir de 1) e uma cópia da conta no momento da atribuição.
type Assignment struct {
	Index   int
	Cookies string
	Remark  string
}

// Pool é a cópia em memória das contas válidas durante um lote de coleta.
// O motor é o único mutador dos contadores de uso enquanto o lote roda; a
// persistência de volta ao armazenamento acontece uma única vez, no fim.
type Pool struct {
	mu       sync.Mutex
	accounts []domain.PlatformAccount
	cursor   int
}

// New monta o pool apenas com as contas de status normal.
func New(accounts []domain.PlatformAccount) *Pool {
	eligible := make([]domain.PlatformAccount, 0, len(accounts))
	for _, account := range accounts {
		if account.Status == domain.AccountStatusValid {
			eligible = append(eligible, account)
		}
	}

	return &Pool{accounts: eligible}
}

// Size informa quantas contas válidas o pool carrega.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.accounts)
}

// Acquire devolve a próxima conta com cota diária disponível, em rodízio a
// partir do cursor atual, já contabilizando o uso. A janela diária de cada
// conta é reiniciada quando o último uso registrado não é de hoje. Devolve
// false quando todas as contas esgotaram a cota.
func (p *Pool) Acquire(maxCount int, now time.Time) (*Assignment, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.accounts) == 0 {
		return nil, false
	}

	today := now.Format("2006-01-02")

	for attempts := 0; attempts < len(p.accounts); attempts++ {
		account := &p.accounts[p.cursor]

		// Reiniciar a janela diária quando o dia virou
		if account.LastUseDate != today {
			account.LastUseDate = today
			account.TodayUseCount = 0
		}

		if account.TodayUseCount < maxCount {
			account.TodayUseCount++

			assignment := &Assignment{
				Index:   p.cursor + 1,
				Cookies: account.Cookies,
				Remark:  account.Remark,
			}

			// Rotacionar após a atribuição para distribuir o uso
			p.cursor = (p.cursor + 1) % len(p.accounts)

			return assignment, true
		}

		p.cursor = (p.cursor + 1) % len(p.accounts)
	}

	return nil, false
}

// Usages devolve os contadores acumulados de todas as contas do pool, para a
// persistência única ao fim do lote.
func (p *Pool) Usages() []domain.AccountUsage {
	p.mu.Lock()
	defer p.mu.Unlock()

	usages := make([]domain.AccountUsage, 0, len(p.accounts))
	for _, account := range p.accounts {
		usages = append(usages, domain.AccountUsage{
			Cookies:       account.Cookies,
			LastUseDate:   account.LastUseDate,
			TodayUseCount: account.TodayUseCount,
		})
	}

	return usages
}
