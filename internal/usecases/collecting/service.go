package collecting

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy"
	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/config"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/internal/usecases/accountpool"
)

// Exporter é o recorte do serviço de exportação usado na exportação
// automática ao fim de um lote.
type Exporter interface {
	Export(onlyCompleted bool) (string, error)
}

// Service controla o ciclo de vida dos lotes de coleta: no máximo um lote
// roda por vez; configurações e contas são recarregadas no início de cada
// lote, nunca herdadas do lote anterior.
type Service interface {
	Start(ctx context.Context) error
	Pause() error
	Resume() error
	Stop() error
	Running() bool
	GetStatus() map[string]interface{}
}

type service struct {
	accountRepo  repository.AccountRepository
	targetRepo   repository.TargetRepository
	settingsRepo repository.SettingsRepository
	collector    pgy.Service
	exporter     Exporter
	cfg          *config.Config

	mu          sync.Mutex
	running     bool
	engine      *Engine
	lastSummary *BatchSummary
}

func NewService(
	accountRepo repository.AccountRepository,
	targetRepo repository.TargetRepository,
	settingsRepo repository.SettingsRepository,
	collector pgy.Service,
	exporter Exporter,
	cfg *config.Config,
) Service {
	return &service{
		accountRepo:  accountRepo,
		targetRepo:   targetRepo,
		settingsRepo: settingsRepo,
		collector:    collector,
		exporter:     exporter,
		cfg:          cfg,
	}
}

// Start dispara um lote de coleta em segundo plano. Devolve erro quando já
// existe um lote em andamento ou quando não há contas válidas ou alvos.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrBatchAlreadyRunning
	}

	// Recarregar as configurações no início do lote: edições feitas durante
	// um lote só valem para o próximo
	settings, err := s.settingsRepo.GetSettings()
	if err != nil {
		return err
	}

	accounts, err := s.accountRepo.ListAccountsByStatus(domain.AccountStatusValid)
	if err != nil {
		return err
	}

	pool := accountpool.New(dereferenceAccounts(accounts))
	if pool.Size() == 0 {
		return ErrNoValidAccounts
	}

	targets, err := s.targetRepo.ListTargets()
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}

	engine := NewEngine(s.collector, pool, settings, s.cfg.Collect.InterTargetDelay)
	events := make(chan Event)

	s.engine = engine
	s.running = true

	logrus.Infof("Lote iniciado: %d alvos, %d contas válidas, %d combinações de desempenho",
		len(targets), pool.Size(), len(settings.PerformanceFields))

	// O lote sobrevive à requisição que o disparou; o contexto do chamador
	// não é propagado para as chamadas de rede do motor
	go engine.Run(context.Background(), targets, events)
	go s.consumeEvents(events, pool, settings)

	return nil
}

// consumeEvents persiste os eventos do motor. Na conclusão normal do lote, os
// contadores de cota são gravados uma única vez e a exportação automática é
// disparada quando habilitada.
func (s *service) consumeEvents(events <-chan Event, pool *accountpool.Pool, settings *domain.CollectorSettings) {
	for event := range events {
		switch event.Type {
		case EventTargetStatus:
			if err := s.targetRepo.UpdateTargetStatus(event.TargetID, event.Status); err != nil {
				logrus.WithError(err).Errorf("Erro ao atualizar o estado do alvo %s", event.TargetID)
			}

		case EventTargetResult:
			if err := s.targetRepo.UpdateTargetResult(event.Target); err != nil {
				logrus.WithError(err).Errorf("Erro ao persistir o resultado do alvo %s", event.TargetID)
			}

		case EventBatchFinished:
			s.finishBatch(event.Summary, pool, settings)
		}
	}
}

func (s *service) finishBatch(summary *BatchSummary, pool *accountpool.Pool, settings *domain.CollectorSettings) {
	// Persistência única dos contadores, casando pela string de cookies.
	// Um lote interrompido descarta o uso daquela execução
	if !summary.Stopped {
		if err := s.accountRepo.SaveUsages(pool.Usages()); err != nil {
			logrus.WithError(err).Error("Erro ao salvar os contadores de uso das contas")
		}
	}

	logrus.Infof("Lote encerrado: %d sucesso(s), %d falha(s), %d pulado(s), interrompido=%t",
		summary.Success, summary.Failed, summary.Skipped, summary.Stopped)

	if settings.AutoExport && !summary.Stopped {
		if path, err := s.exporter.Export(true); err != nil {
			logrus.WithError(err).Error("Erro na exportação automática")
		} else {
			logrus.Infof("Exportação automática concluída em %s", path)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSummary = summary
	s.running = false
	s.engine = nil
}

func (s *service) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.engine == nil {
		return ErrBatchNotRunning
	}

	s.engine.Pause()
	logrus.Info("Lote suspenso")

	return nil
}

func (s *service) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.engine == nil {
		return ErrBatchNotRunning
	}

	if !s.engine.Paused() {
		return ErrBatchNotPaused
	}

	s.engine.Resume()
	logrus.Info("Lote retomado")

	return nil
}

func (s *service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.engine == nil {
		return ErrBatchNotRunning
	}

	s.engine.Stop()
	logrus.Info("Encerramento do lote solicitado")

	return nil
}

// Running informa se há um lote em andamento.
func (s *service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// GetStatus devolve o estado corrente do controlador de lotes.
func (s *service) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]interface{}{
		"running": s.running,
		"paused":  false,
	}

	if s.engine != nil {
		status["paused"] = s.engine.Paused()
	}

	if s.lastSummary != nil {
		status["last_summary"] = s.lastSummary
	}

	return status
}

func dereferenceAccounts(accounts []*domain.PlatformAccount) []domain.PlatformAccount {
	result := make([]domain.PlatformAccount, 0, len(accounts))
	for _, account := range accounts {
		if account != nil {
			result = append(result, *account)
		}
	}

	return result
}
