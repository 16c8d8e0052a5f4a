package collecting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pgymocks "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/mocks"
	"github.com/vfg2006/kol-collector-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kol-collector-api/internal/config"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

type stubExporter struct {
	calls         int
	onlyCompleted bool
	path          string
}

func (s *stubExporter) Export(onlyCompleted bool) (string, error) {
	s.calls++
	s.onlyCompleted = onlyCompleted
	return s.path, nil
}

type serviceFixture struct {
	accountRepo  *mocks.MockAccountRepository
	targetRepo   *mocks.MockTargetRepository
	settingsRepo *mocks.MockSettingsRepository
	collector    *pgymocks.MockService
	exporter     *stubExporter
	service      Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	fixture := &serviceFixture{
		accountRepo:  mocks.NewMockAccountRepository(ctrl),
		targetRepo:   mocks.NewMockTargetRepository(ctrl),
		settingsRepo: mocks.NewMockSettingsRepository(ctrl),
		collector:    pgymocks.NewMockService(ctrl),
		exporter:     &stubExporter{path: "/tmp/out.xlsx"},
	}

	fixture.service = NewService(
		fixture.accountRepo,
		fixture.targetRepo,
		fixture.settingsRepo,
		fixture.collector,
		fixture.exporter,
		&config.Config{},
	)

	return fixture
}

func validAccounts() []*domain.PlatformAccount {
	return []*domain.PlatformAccount{
		{ID: "a1", Cookies: "c1", Status: domain.AccountStatusValid},
	}
}

// waitBatchFinish aguarda o lote em segundo plano encerrar.
func waitBatchFinish(t *testing.T, service Service) {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for service.Running() {
		select {
		case <-deadline:
			t.Fatal("o lote não encerrou dentro do prazo")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStart_SemContasValidas(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.settingsRepo.EXPECT().GetSettings().Return(domain.DefaultCollectorSettings(), nil)
	fixture.accountRepo.EXPECT().
		ListAccountsByStatus(domain.AccountStatusValid).
		Return(nil, nil)

	err := fixture.service.Start(context.Background())
	assert.ErrorIs(t, err, ErrNoValidAccounts)
	assert.False(t, fixture.service.Running())
}

func TestStart_SemAlvos(t *testing.T) {
	fixture := newServiceFixture(t)

	fixture.settingsRepo.EXPECT().GetSettings().Return(domain.DefaultCollectorSettings(), nil)
	fixture.accountRepo.EXPECT().ListAccountsByStatus(domain.AccountStatusValid).Return(validAccounts(), nil)
	fixture.targetRepo.EXPECT().ListTargets().Return(nil, nil)

	err := fixture.service.Start(context.Background())
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestStart_ExecutaLoteCompleto(t *testing.T) {
	fixture := newServiceFixture(t)

	settings := domain.DefaultCollectorSettings()
	settings.PerformanceFields = nil
	settings.AutoExport = false

	fixture.settingsRepo.EXPECT().GetSettings().Return(settings, nil)
	fixture.accountRepo.EXPECT().ListAccountsByStatus(domain.AccountStatusValid).Return(validAccounts(), nil)
	fixture.targetRepo.EXPECT().ListTargets().Return([]*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
	}, nil)

	fixture.collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{"name": "博主"}, nil)
	fixture.collector.EXPECT().
		CollectDataSummary(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)
	fixture.collector.EXPECT().
		CollectFansSummary(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)
	fixture.collector.EXPECT().
		CollectFansProfile(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)

	fixture.targetRepo.EXPECT().UpdateTargetStatus("t1", gomock.Any()).Return(nil).AnyTimes()
	fixture.targetRepo.EXPECT().
		UpdateTargetResult(gomock.Any()).
		DoAndReturn(func(target *domain.CollectTarget) error {
			assert.Equal(t, domain.TargetStatusCompleted, target.Status)
			return nil
		})
	fixture.accountRepo.EXPECT().
		SaveUsages(gomock.Any()).
		DoAndReturn(func(usages []domain.AccountUsage) error {
			require.Len(t, usages, 1)
			assert.Equal(t, "c1", usages[0].Cookies)
			assert.Equal(t, 1, usages[0].TodayUseCount)
			return nil
		})

	require.NoError(t, fixture.service.Start(context.Background()))
	waitBatchFinish(t, fixture.service)

	// Com a exportação automática desligada, nada é exportado
	assert.Equal(t, 0, fixture.exporter.calls)

	status := fixture.service.GetStatus()
	assert.Equal(t, false, status["running"])
	summary, ok := status["last_summary"].(*BatchSummary)
	require.True(t, ok)
	assert.Equal(t, 1, summary.Success)
}

func TestStart_ExportacaoAutomatica(t *testing.T) {
	fixture := newServiceFixture(t)

	settings := domain.DefaultCollectorSettings()
	settings.PerformanceFields = nil
	settings.AutoExport = true

	fixture.settingsRepo.EXPECT().GetSettings().Return(settings, nil)
	fixture.accountRepo.EXPECT().ListAccountsByStatus(domain.AccountStatusValid).Return(validAccounts(), nil)
	fixture.targetRepo.EXPECT().ListTargets().Return([]*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusCompleted},
	}, nil)

	fixture.accountRepo.EXPECT().SaveUsages(gomock.Any()).Return(nil)

	require.NoError(t, fixture.service.Start(context.Background()))
	waitBatchFinish(t, fixture.service)

	// Exportação automática, restrita aos alvos concluídos
	assert.Equal(t, 1, fixture.exporter.calls)
	assert.True(t, fixture.exporter.onlyCompleted)
}

func TestStop_NaoPersisteContadoresNemExporta(t *testing.T) {
	fixture := newServiceFixture(t)

	settings := domain.DefaultCollectorSettings()
	settings.PerformanceFields = nil
	settings.AutoExport = true

	fixture.settingsRepo.EXPECT().GetSettings().Return(settings, nil)
	fixture.accountRepo.EXPECT().ListAccountsByStatus(domain.AccountStatusValid).Return(validAccounts(), nil)
	fixture.targetRepo.EXPECT().ListTargets().Return([]*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
		{ID: "t2", UserID: "user2", Status: domain.TargetStatusPending},
	}, nil)

	// Interrupção pedida durante o primeiro alvo: o motor conclui o alvo em
	// andamento e para na fronteira, sem tocar no segundo
	fixture.collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", "c1").
		DoAndReturn(func(_ context.Context, _, _ string) (domain.FlatRecord, error) {
			require.NoError(t, fixture.service.Stop())
			return domain.FlatRecord{"name": "博主"}, nil
		})
	fixture.collector.EXPECT().
		CollectDataSummary(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)
	fixture.collector.EXPECT().
		CollectFansSummary(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)
	fixture.collector.EXPECT().
		CollectFansProfile(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)

	fixture.targetRepo.EXPECT().UpdateTargetStatus("t1", gomock.Any()).Return(nil).AnyTimes()
	fixture.targetRepo.EXPECT().UpdateTargetResult(gomock.Any()).Return(nil)

	// Nenhuma expectativa de SaveUsages: um lote interrompido descarta os
	// contadores de uso daquela execução

	require.NoError(t, fixture.service.Start(context.Background()))
	waitBatchFinish(t, fixture.service)

	assert.Equal(t, 0, fixture.exporter.calls)

	status := fixture.service.GetStatus()
	summary, ok := status["last_summary"].(*BatchSummary)
	require.True(t, ok)
	assert.True(t, summary.Stopped)
	assert.Equal(t, 1, summary.Success)
}

func TestStart_LoteJaEmAndamento(t *testing.T) {
	fixture := newServiceFixture(t)

	settings := domain.DefaultCollectorSettings()
	settings.PerformanceFields = nil
	settings.AutoExport = false

	started := make(chan struct{})
	release := make(chan struct{})

	fixture.settingsRepo.EXPECT().GetSettings().Return(settings, nil)
	fixture.accountRepo.EXPECT().ListAccountsByStatus(domain.AccountStatusValid).Return(validAccounts(), nil)
	fixture.targetRepo.EXPECT().ListTargets().Return([]*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
	}, nil)

	fixture.collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", "c1").
		DoAndReturn(func(_ context.Context, _, _ string) (domain.FlatRecord, error) {
			close(started)
			<-release
			return domain.FlatRecord{"name": "博主"}, nil
		})
	fixture.collector.EXPECT().
		CollectDataSummary(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)
	fixture.collector.EXPECT().
		CollectFansSummary(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)
	fixture.collector.EXPECT().
		CollectFansProfile(gomock.Any(), "user1", "c1").
		Return(domain.FlatRecord{}, nil)

	fixture.targetRepo.EXPECT().UpdateTargetStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fixture.targetRepo.EXPECT().UpdateTargetResult(gomock.Any()).Return(nil)
	fixture.accountRepo.EXPECT().SaveUsages(gomock.Any()).Return(nil)

	require.NoError(t, fixture.service.Start(context.Background()))
	<-started

	err := fixture.service.Start(context.Background())
	assert.ErrorIs(t, err, ErrBatchAlreadyRunning)

	close(release)
	waitBatchFinish(t, fixture.service)
}

func TestPause_SemLoteEmAndamento(t *testing.T) {
	fixture := newServiceFixture(t)

	assert.ErrorIs(t, fixture.service.Pause(), ErrBatchNotRunning)
	assert.ErrorIs(t, fixture.service.Resume(), ErrBatchNotRunning)
	assert.ErrorIs(t, fixture.service.Stop(), ErrBatchNotRunning)
}

func TestGetStatus_SemLote(t *testing.T) {
	fixture := newServiceFixture(t)

	status := fixture.service.GetStatus()

	assert.Equal(t, false, status["running"])
	assert.Equal(t, false, status["paused"])
	assert.NotContains(t, status, "last_summary")
}
