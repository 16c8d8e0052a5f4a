package pgy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
	clientmocks "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/pgyclient/mocks"
	"github.com/vfg2006/kol-collector-api/internal/config"
)

func newTestService(client *clientmocks.MockClient) Service {
	return newDelayedTestService(client, 0, 0)
}

func newDelayedTestService(client *clientmocks.MockClient, retryDelay, coreDataDelay time.Duration) Service {
	cfg := &config.Config{}
	cfg.Collect.MaxRetries = 3
	cfg.Collect.RetryDelay = retryDelay
	cfg.Collect.CoreDataDelay = coreDataDelay

	return NewService(client, cfg)
}

func TestCollectBloggerInfo_RepeteApenasNo406(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := newTestService(client)

	t.Run("406 é repetido até obter resposta", func(t *testing.T) {
		gomock.InOrder(
			client.EXPECT().
				GetBloggerInfo(gomock.Any(), "user1", "c1").
				Return(nil, pgydomain.NewDataUnavailableError()),
			client.EXPECT().
				GetBloggerInfo(gomock.Any(), "user1", "c1").
				Return(nil, pgydomain.NewDataUnavailableError()),
			client.EXPECT().
				GetBloggerInfo(gomock.Any(), "user1", "c1").
				Return(map[string]interface{}{"name": "博主"}, nil),
		)

		record, err := service.CollectBloggerInfo(context.Background(), "user1", "c1")
		require.NoError(t, err)
		assert.Equal(t, "博主", record["name"])
	})

	t.Run("406 persistente esgota as tentativas", func(t *testing.T) {
		client.EXPECT().
			GetBloggerInfo(gomock.Any(), "user2", "c1").
			Return(nil, pgydomain.NewDataUnavailableError()).
			Times(3)

		_, err := service.CollectBloggerInfo(context.Background(), "user2", "c1")
		require.Error(t, err)
		assert.True(t, pgydomain.IsDataUnavailable(err))
		assert.Equal(t, "数据不可用", err.Error())
	})

	t.Run("Outras falhas não são repetidas", func(t *testing.T) {
		client.EXPECT().
			GetBloggerInfo(gomock.Any(), "user3", "c1").
			Return(nil, pgydomain.NewTimeoutError(nil))

		_, err := service.CollectBloggerInfo(context.Background(), "user3", "c1")
		require.Error(t, err)
		assert.Equal(t, "请求超时", err.Error())
	})
}

func TestCollectBloggerInfo_AguardaEntreAsTentativas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const retryDelay = 30 * time.Millisecond

	client := clientmocks.NewMockClient(ctrl)
	service := newDelayedTestService(client, retryDelay, 0)

	var callTimes []time.Time

	client.EXPECT().
		GetBloggerInfo(gomock.Any(), "user1", "c1").
		DoAndReturn(func(_ context.Context, _, _ string) (map[string]interface{}, error) {
			callTimes = append(callTimes, time.Now())
			if len(callTimes) < 3 {
				return nil, pgydomain.NewDataUnavailableError()
			}
			return map[string]interface{}{"name": "博主"}, nil
		}).
		Times(3)

	_, err := service.CollectBloggerInfo(context.Background(), "user1", "c1")
	require.NoError(t, err)

	require.Len(t, callTimes, 3)
	assert.GreaterOrEqual(t, callTimes[1].Sub(callTimes[0]), retryDelay)
	assert.GreaterOrEqual(t, callTimes[2].Sub(callTimes[1]), retryDelay)
}

func TestCollectDataSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := newTestService(client)

	t.Run("Combina notas diárias e de cooperação", func(t *testing.T) {
		client.EXPECT().
			GetDataSummary(gomock.Any(), "user1", 0, "c1").
			Return(map[string]interface{}{"noteNumber": "12"}, nil)
		client.EXPECT().
			GetDataSummary(gomock.Any(), "user1", 1, "c1").
			Return(map[string]interface{}{"responseRate": "95%"}, nil)

		record, err := service.CollectDataSummary(context.Background(), "user1", "c1")
		require.NoError(t, err)
		assert.Equal(t, "12", record["noteNumber"])
		assert.Equal(t, "95%", record["responseRate"])
	})

	t.Run("Falha nas notas diárias ganha o prefixo do estágio", func(t *testing.T) {
		client.EXPECT().
			GetDataSummary(gomock.Any(), "user2", 0, "c1").
			Return(nil, pgydomain.NewTimeoutError(nil))

		_, err := service.CollectDataSummary(context.Background(), "user2", "c1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "获取日常笔记数据失败")
	})

	t.Run("Falha nas notas de cooperação ganha o prefixo do estágio", func(t *testing.T) {
		client.EXPECT().
			GetDataSummary(gomock.Any(), "user3", 0, "c1").
			Return(map[string]interface{}{}, nil)
		client.EXPECT().
			GetDataSummary(gomock.Any(), "user3", 1, "c1").
			Return(nil, pgydomain.NewLogicalError("无权限"))

		_, err := service.CollectDataSummary(context.Background(), "user3", "c1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "获取合作笔记数据失败")
	})
}

func TestCollectPerformanceData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := newTestService(client)

	fields := []string{"日常笔记-图文+视频-近30天-全流量"}
	params := PerformanceFieldParams[fields[0]]

	client.EXPECT().
		GetNotesRate(gomock.Any(), "user1", params, "c1").
		Return(map[string]interface{}{"noteNumber": "7"}, nil)
	client.EXPECT().
		GetCoreData(gomock.Any(), "user1", params, "c1").
		Return(map[string]interface{}{
			"sumData": map[string]interface{}{"imp": "1000"},
		}, nil)

	record, err := service.CollectPerformanceData(context.Background(), "user1", fields, "c1")
	require.NoError(t, err)

	prefix := PerformancePrefix(params)
	assert.Equal(t, "7", record[prefix+"笔记数"])
	assert.Equal(t, "1000", record[prefix+"曝光中位数"])
}

func TestCollectPerformanceData_AguardaAposCadaChamadaDeMedianas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const coreDataDelay = 40 * time.Millisecond

	client := clientmocks.NewMockClient(ctrl)
	service := newDelayedTestService(client, 0, coreDataDelay)

	fields := []string{
		"日常笔记-图文-近30天-全流量",
		"日常笔记-视频-近30天-全流量",
	}

	client.EXPECT().
		GetNotesRate(gomock.Any(), "user1", gomock.Any(), "c1").
		Return(map[string]interface{}{}, nil).
		Times(2)

	var coreCalls []time.Time
	client.EXPECT().
		GetCoreData(gomock.Any(), "user1", gomock.Any(), "c1").
		DoAndReturn(func(_ context.Context, _ string, _ pgydomain.PerformanceParams, _ string) (map[string]interface{}, error) {
			coreCalls = append(coreCalls, time.Now())
			return map[string]interface{}{}, nil
		}).
		Times(2)

	start := time.Now()
	_, err := service.CollectPerformanceData(context.Background(), "user1", fields, "c1")
	require.NoError(t, err)

	require.Len(t, coreCalls, 2)
	assert.GreaterOrEqual(t, coreCalls[1].Sub(coreCalls[0]), coreDataDelay)

	// A espera acontece depois de cada chamada, inclusive a última
	assert.GreaterOrEqual(t, time.Since(start), 2*coreDataDelay)
}

func TestCollectPerformanceData_FalhaIndividualNaoDerrubaOEstagio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := newTestService(client)

	fields := []string{"日常笔记-图文+视频-近30天-全流量"}
	params := PerformanceFieldParams[fields[0]]

	client.EXPECT().
		GetNotesRate(gomock.Any(), "user1", params, "c1").
		Return(nil, pgydomain.NewTimeoutError(nil))
	client.EXPECT().
		GetCoreData(gomock.Any(), "user1", params, "c1").
		Return(map[string]interface{}{
			"sumData": map[string]interface{}{"imp": "1000"},
		}, nil)

	record, err := service.CollectPerformanceData(context.Background(), "user1", fields, "c1")
	require.NoError(t, err)

	prefix := PerformancePrefix(params)
	assert.NotContains(t, record, prefix+"笔记数")
	assert.Equal(t, "1000", record[prefix+"曝光中位数"])
}

func TestCollectPerformanceData_CombinacaoDesconhecidaEIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := newTestService(client)

	record, err := service.CollectPerformanceData(context.Background(), "user1", []string{"combinação-inexistente"}, "c1")
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestCheckAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := newTestService(client)

	t.Run("Sessão válida devolve o apelido do primeiro papel", func(t *testing.T) {
		client.EXPECT().
			GetUserInfo(gomock.Any(), "c1").
			Return(&pgydomain.UserInfo{
				RoleInfoList: []pgydomain.UserRole{{NickName: "品牌号"}, {NickName: "其他"}},
			}, nil)

		nickname, err := service.CheckAccount(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "品牌号", nickname)
	})

	t.Run("Sessão válida sem papéis devolve apelido vazio", func(t *testing.T) {
		client.EXPECT().
			GetUserInfo(gomock.Any(), "c2").
			Return(&pgydomain.UserInfo{}, nil)

		nickname, err := service.CheckAccount(context.Background(), "c2")
		require.NoError(t, err)
		assert.Empty(t, nickname)
	})

	t.Run("Sessão rejeitada propaga o erro", func(t *testing.T) {
		client.EXPECT().
			GetUserInfo(gomock.Any(), "c3").
			Return(nil, pgydomain.NewLogicalError("账号验证失败"))

		_, err := service.CheckAccount(context.Background(), "c3")
		assert.Error(t, err)
	})
}
