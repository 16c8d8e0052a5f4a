package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/internal/config"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/internal/usecases/account"
)

// AccountCheckSyncConfig representa a configuração do agendador de verificação
// de sessões das contas da plataforma
type AccountCheckSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AccountCheckSyncService revalida periodicamente as sessões das contas da
// plataforma. Cookies expiram sem aviso; a verificação noturna marca as contas
// inválidas antes do próximo lote de coleta.
type AccountCheckSyncService struct {
	scheduler           *gocron.Scheduler
	config              AccountCheckSyncConfig
	accountService      account.AccountService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAccountCheckSyncService cria uma nova instância do serviço de verificação de contas
func NewAccountCheckSyncService(
	accountService account.AccountService,
	appConfig *config.Config,
) *AccountCheckSyncService {
	syncConfig := AccountCheckSyncConfig{
		CronSchedule: appConfig.CollectSync.CronSchedule,
		SyncEnabled:  appConfig.CollectSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de verificação de contas carregada")

	return &AccountCheckSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		accountService: accountService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AccountCheckSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Verificação periódica de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// checkAllAccounts revalida todas as contas cadastradas
func (s *AccountCheckSyncService) checkAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de contas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando verificação de sessão de todas as contas da plataforma")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	results, err := s.accountService.CheckAllAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar contas da plataforma")
		return
	}

	valid, invalid := 0, 0
	for _, result := range results {
		if result.Status == domain.AccountStatusValid {
			valid++
		} else {
			invalid++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(results),
		"valid":    valid,
		"invalid":  invalid,
	}).Info("Verificação de contas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma verificação de contas
func (s *AccountCheckSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de contas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando verificação manual de contas")
	go s.checkAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *AccountCheckSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
