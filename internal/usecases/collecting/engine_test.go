package collecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pgymocks "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/mocks"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/internal/usecases/accountpool"
)

func testPool(cookies ...string) *accountpool.Pool {
	accounts := make([]domain.PlatformAccount, 0, len(cookies))
	for _, c := range cookies {
		accounts = append(accounts, domain.PlatformAccount{
			Cookies: c,
			Status:  domain.AccountStatusValid,
		})
	}
	return accountpool.New(accounts)
}

func testSettings() *domain.CollectorSettings {
	return &domain.CollectorSettings{
		MaxCount:          100,
		PerformanceFields: []string{"日常笔记-图文+视频-近30天-全流量"},
	}
}

// runEngine executa o motor e drena os eventos em memória.
func runEngine(t *testing.T, engine *Engine, targets []*domain.CollectTarget) ([]Event, *BatchSummary) {
	t.Helper()

	events := make(chan Event, 64)
	done := make(chan struct{})

	var collected []Event
	var summary *BatchSummary

	go func() {
		defer close(done)
		for event := range events {
			collected = append(collected, event)
			if event.Type == EventBatchFinished {
				summary = event.Summary
			}
		}
	}()

	engine.Run(context.Background(), targets, events)
	<-done

	require.NotNil(t, summary)
	return collected, summary
}

func expectFullTarget(collector *pgymocks.MockService, userID string) {
	collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), userID, gomock.Any()).
		Return(domain.FlatRecord{"name": "博主" + userID}, nil)
	collector.EXPECT().
		CollectDataSummary(gomock.Any(), userID, gomock.Any()).
		Return(domain.FlatRecord{"noteNumber": 10}, nil)
	collector.EXPECT().
		CollectPerformanceData(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansSummary(gomock.Any(), userID, gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansProfile(gomock.Any(), userID, gomock.Any()).
		Return(domain.FlatRecord{}, nil)
}

func TestEngine_ColetaCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	expectFullTarget(collector, "user1")

	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	target := &domain.CollectTarget{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending}
	events, summary := runEngine(t, engine, []*domain.CollectTarget{target})

	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, 0, summary.Failed)
	assert.False(t, summary.Stopped)

	assert.Equal(t, domain.TargetStatusCompleted, target.Status)
	assert.Equal(t, "博主user1", target.Nickname)
	require.NotNil(t, target.Record)
	assert.Equal(t, 10, target.Record["noteNumber"])
	assert.NotNil(t, target.CollectedAt)

	// Os estágios são anunciados na ordem do pipeline
	var statuses []string
	for _, event := range events {
		if event.Type == EventTargetStatus {
			statuses = append(statuses, event.Status)
		}
	}
	require.Len(t, statuses, 5)
	assert.Equal(t, "采集中-博主信息(账号1)", statuses[0])
	assert.Equal(t, "采集中-数据概览", statuses[1])
	assert.Equal(t, "采集中-数据表现", statuses[2])
	assert.Equal(t, "采集中-粉丝指标", statuses[3])
	assert.Equal(t, "采集中-粉丝画像", statuses[4])
}

func TestEngine_FalhaNosDadosCadastraisDerrubaOAlvo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", gomock.Any()).
		Return(nil, errors.New("数据不可用"))

	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	target := &domain.CollectTarget{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending}
	_, summary := runEngine(t, engine, []*domain.CollectTarget{target})

	assert.Equal(t, 0, summary.Success)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "失败: 数据不可用", target.Status)
	assert.Nil(t, target.Record)
}

func TestEngine_FalhaParcialNaoDerrubaOAlvo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{"name": "博主"}, nil)
	collector.EXPECT().
		CollectDataSummary(gomock.Any(), "user1", gomock.Any()).
		Return(nil, errors.New("请求超时"))
	collector.EXPECT().
		CollectPerformanceData(gomock.Any(), "user1", gomock.Any(), gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansSummary(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansProfile(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)

	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	target := &domain.CollectTarget{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending}
	_, summary := runEngine(t, engine, []*domain.CollectTarget{target})

	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, domain.TargetStatusCompleted, target.Status)
}

func TestEngine_PulaAlvosJaConcluidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	expectFullTarget(collector, "user2")

	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	targets := []*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusCompleted},
		{ID: "t2", UserID: "user2", Status: domain.TargetStatusPending},
	}
	_, summary := runEngine(t, engine, targets)

	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Success)
}

func TestEngine_CotaEsgotadaFalhaOAlvo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)

	settings := testSettings()
	settings.MaxCount = 0

	engine := NewEngine(collector, testPool("c1"), settings, 0)

	target := &domain.CollectTarget{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending}
	_, summary := runEngine(t, engine, []*domain.CollectTarget{target})

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "失败: 所有账号均已达到今日最大使用次数", target.Status)
}

func TestEngine_RodizioDeContasEntreAlvos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)

	var usedCookies []string
	for _, userID := range []string{"user1", "user2", "user3"} {
		userID := userID
		collector.EXPECT().
			CollectBloggerInfo(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, cookies string) (domain.FlatRecord, error) {
				usedCookies = append(usedCookies, cookies)
				return domain.FlatRecord{"name": userID}, nil
			})
		collector.EXPECT().
			CollectDataSummary(gomock.Any(), userID, gomock.Any()).
			Return(domain.FlatRecord{}, nil)
		collector.EXPECT().
			CollectPerformanceData(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(domain.FlatRecord{}, nil)
		collector.EXPECT().
			CollectFansSummary(gomock.Any(), userID, gomock.Any()).
			Return(domain.FlatRecord{}, nil)
		collector.EXPECT().
			CollectFansProfile(gomock.Any(), userID, gomock.Any()).
			Return(domain.FlatRecord{}, nil)
	}

	engine := NewEngine(collector, testPool("c1", "c2"), testSettings(), 0)

	targets := []*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
		{ID: "t2", UserID: "user2", Status: domain.TargetStatusPending},
		{ID: "t3", UserID: "user3", Status: domain.TargetStatusPending},
	}
	runEngine(t, engine, targets)

	assert.Equal(t, []string{"c1", "c2", "c1"}, usedCookies)
}

func TestEngine_StopEncerraNaFronteiraDoAlvo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) (domain.FlatRecord, error) {
			// Stop chega com o primeiro alvo em andamento: ele termina, o
			// segundo nunca começa
			engine.Stop()
			return domain.FlatRecord{"name": "博主"}, nil
		})
	collector.EXPECT().
		CollectDataSummary(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectPerformanceData(gomock.Any(), "user1", gomock.Any(), gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansSummary(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansProfile(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)

	targets := []*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
		{ID: "t2", UserID: "user2", Status: domain.TargetStatusPending},
	}
	_, summary := runEngine(t, engine, targets)

	assert.True(t, summary.Stopped)
	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, domain.TargetStatusPending, targets[1].Status)
}

func TestEngine_PauseEResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	paused := make(chan struct{})

	collector.EXPECT().
		CollectBloggerInfo(gomock.Any(), "user1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) (domain.FlatRecord, error) {
			// Pause vale a partir do próximo alvo
			engine.Pause()
			close(paused)
			return domain.FlatRecord{"name": "博主"}, nil
		})
	collector.EXPECT().
		CollectDataSummary(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectPerformanceData(gomock.Any(), "user1", gomock.Any(), gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansSummary(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)
	collector.EXPECT().
		CollectFansProfile(gomock.Any(), "user1", gomock.Any()).
		Return(domain.FlatRecord{}, nil)

	expectFullTarget(collector, "user2")

	go func() {
		<-paused
		// Dar tempo do motor alcançar a espera antes de retomar
		time.Sleep(50 * time.Millisecond)
		assert.True(t, engine.Paused())
		engine.Resume()
	}()

	targets := []*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
		{ID: "t2", UserID: "user2", Status: domain.TargetStatusPending},
	}
	_, summary := runEngine(t, engine, targets)

	assert.False(t, summary.Stopped)
	assert.Equal(t, 2, summary.Success)
}

func TestEngine_StopDuranteAPausa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := pgymocks.NewMockService(ctrl)
	engine := NewEngine(collector, testPool("c1"), testSettings(), 0)

	engine.Pause()
	go func() {
		time.Sleep(50 * time.Millisecond)
		engine.Stop()
	}()

	targets := []*domain.CollectTarget{
		{ID: "t1", UserID: "user1", Status: domain.TargetStatusPending},
	}
	_, summary := runEngine(t, engine, targets)

	assert.True(t, summary.Stopped)
	assert.Equal(t, 0, summary.Success)
	assert.Equal(t, domain.TargetStatusPending, targets[0].Status)
}
