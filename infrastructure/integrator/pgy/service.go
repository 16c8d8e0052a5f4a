package pgy

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/pgyclient"
	"github.com/vfg2006/kol-collector-api/internal/config"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

// PerformanceFieldParams mapeia cada combinação selecionável de desempenho
// para os parâmetros de consulta correspondentes.
var PerformanceFieldParams = map[string]pgydomain.PerformanceParams{
	"日常笔记-图文+视频-近30天-全流量": {Business: 0, NoteType: 3, DateType: 1, AdvertiseSwitch: 1},
	"日常笔记-图文-近30天-全流量":    {Business: 0, NoteType: 1, DateType: 1, AdvertiseSwitch: 1},
	"日常笔记-视频-近30天-全流量":    {Business: 0, NoteType: 2, DateType: 1, AdvertiseSwitch: 1},
	"日常笔记-图文+视频-近90天-全流量": {Business: 0, NoteType: 3, DateType: 2, AdvertiseSwitch: 1},
	"日常笔记-图文-近90天-全流量":    {Business: 0, NoteType: 1, DateType: 2, AdvertiseSwitch: 1},
	"日常笔记-视频-近90天-全流量":    {Business: 0, NoteType: 2, DateType: 2, AdvertiseSwitch: 1},
	"合作笔记-图文+视频-近30天-全流量": {Business: 1, NoteType: 3, DateType: 1, AdvertiseSwitch: 1},
	"合作笔记-图文-近30天-全流量":    {Business: 1, NoteType: 1, DateType: 1, AdvertiseSwitch: 1},
	"合作笔记-视频-近30天-全流量":    {Business: 1, NoteType: 2, DateType: 1, AdvertiseSwitch: 1},
	"合作笔记-图文+视频-近90天-全流量": {Business: 1, NoteType: 3, DateType: 2, AdvertiseSwitch: 1},
	"合作笔记-图文-近90天-全流量":    {Business: 1, NoteType: 1, DateType: 2, AdvertiseSwitch: 1},
	"合作笔记-视频-近90天-全流量":    {Business: 1, NoteType: 2, DateType: 2, AdvertiseSwitch: 1},
}

// performanceFieldOrder fixa a ordem de coleta quando nenhuma combinação é
// selecionada explicitamente.
var performanceFieldOrder = []string{
	"日常笔记-图文+视频-近30天-全流量",
	"日常笔记-图文-近30天-全流量",
	"日常笔记-视频-近30天-全流量",
	"日常笔记-图文+视频-近90天-全流量",
	"日常笔记-图文-近90天-全流量",
	"日常笔记-视频-近90天-全流量",
	"合作笔记-图文+视频-近30天-全流量",
	"合作笔记-图文-近30天-全流量",
	"合作笔记-视频-近30天-全流量",
	"合作笔记-图文+视频-近90天-全流量",
	"合作笔记-图文-近90天-全流量",
	"合作笔记-视频-近90天-全流量",
}

// Service expõe as coletas de alto nível sobre o cliente assinado. Cada
// método corresponde a um estágio do pipeline de coleta de um alvo.
type Service interface {
	CollectBloggerInfo(ctx context.Context, userID, cookies string) (domain.FlatRecord, error)
	CollectDataSummary(ctx context.Context, userID, cookies string) (domain.FlatRecord, error)
	CollectPerformanceData(ctx context.Context, userID string, fields []string, cookies string) (domain.FlatRecord, error)
	CollectFansSummary(ctx context.Context, userID, cookies string) (domain.FlatRecord, error)
	CollectFansProfile(ctx context.Context, userID, cookies string) (domain.FlatRecord, error)
	CheckAccount(ctx context.Context, cookies string) (string, error)
}

type service struct {
	client        pgyclient.Client
	maxRetries    int
	retryDelay    time.Duration
	coreDataDelay time.Duration
}

func NewService(client pgyclient.Client, cfg *config.Config) Service {
	maxRetries := cfg.Collect.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &service{
		client:        client,
		maxRetries:    maxRetries,
		retryDelay:    cfg.Collect.RetryDelay,
		coreDataDelay: cfg.Collect.CoreDataDelay,
	}
}

// withRetry repete a chamada apenas no status "dados indisponíveis" (406).
// Qualquer outra falha é devolvida de imediato.
func (s *service) withRetry(fn func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	var lastErr error

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		payload, err := fn()
		if err == nil {
			return payload, nil
		}
		lastErr = err

		if !pgydomain.IsDataUnavailable(err) || attempt == s.maxRetries-1 {
			break
		}

		logrus.Debugf("Dados indisponíveis (406), nova tentativa %d/%d", attempt+1, s.maxRetries)
		time.Sleep(s.retryDelay)
	}

	return nil, lastErr
}

func (s *service) CollectBloggerInfo(ctx context.Context, userID, cookies string) (domain.FlatRecord, error) {
	payload, err := s.withRetry(func() (map[string]interface{}, error) {
		return s.client.GetBloggerInfo(ctx, userID, cookies)
	})
	if err != nil {
		return nil, err
	}

	return ExtractBloggerInfo(payload), nil
}

func (s *service) CollectDataSummary(ctx context.Context, userID, cookies string) (domain.FlatRecord, error) {
	// Notas diárias
	dailyPayload, err := s.withRetry(func() (map[string]interface{}, error) {
		return s.client.GetDataSummary(ctx, userID, 0, cookies)
	})
	if err != nil {
		return nil, errors.Wrap(err, "获取日常笔记数据失败")
	}

	// Notas de cooperação
	coopPayload, err := s.withRetry(func() (map[string]interface{}, error) {
		return s.client.GetDataSummary(ctx, userID, 1, cookies)
	})
	if err != nil {
		return nil, errors.Wrap(err, "获取合作笔记数据失败")
	}

	record := ExtractDataSummary(dailyPayload, 0)
	for key, value := range ExtractDataSummary(coopPayload, 1) {
		record[key] = value
	}

	return record, nil
}

// CollectPerformanceData percorre as combinações selecionadas chamando os dois
// endpoints de desempenho. Falhas individuais são registradas em log e não
// derrubam o estágio; 406 após as tentativas vira resultado vazio.
func (s *service) CollectPerformanceData(ctx context.Context, userID string, fields []string, cookies string) (domain.FlatRecord, error) {
	if len(fields) == 0 {
		fields = performanceFieldOrder
	}

	combined := domain.FlatRecord{}

	// Primeiro as métricas de taxa de todas as combinações
	for _, field := range fields {
		params, ok := PerformanceFieldParams[field]
		if !ok {
			continue
		}

		payload, err := s.withRetry(func() (map[string]interface{}, error) {
			return s.client.GetNotesRate(ctx, userID, params, cookies)
		})
		if err != nil {
			logrus.WithError(err).Warnf("Falha ao coletar métricas de taxa da combinação %s", field)
			continue
		}

		for key, value := range ExtractNotesRate(payload, params) {
			combined[key] = value
		}
	}

	// Depois as medianas e custos, respeitando o limite de taxa do endpoint
	for _, field := range fields {
		params, ok := PerformanceFieldParams[field]
		if !ok {
			continue
		}

		payload, err := s.withRetry(func() (map[string]interface{}, error) {
			return s.client.GetCoreData(ctx, userID, params, cookies)
		})
		if err != nil {
			logrus.WithError(err).Warnf("Falha ao coletar medianas da combinação %s", field)
		} else {
			for key, value := range ExtractCoreData(payload, params) {
				combined[key] = value
			}
		}

		time.Sleep(s.coreDataDelay)
	}

	return combined, nil
}

func (s *service) CollectFansSummary(ctx context.Context, userID, cookies string) (domain.FlatRecord, error) {
	payload, err := s.withRetry(func() (map[string]interface{}, error) {
		return s.client.GetFansSummary(ctx, userID, cookies)
	})
	if err != nil {
		return nil, err
	}

	return ExtractFansSummary(payload), nil
}

func (s *service) CollectFansProfile(ctx context.Context, userID, cookies string) (domain.FlatRecord, error) {
	payload, err := s.withRetry(func() (map[string]interface{}, error) {
		return s.client.GetFansProfile(ctx, userID, cookies)
	})
	if err != nil {
		return nil, err
	}

	return ExtractFansProfile(payload), nil
}

// CheckAccount valida os cookies de uma conta e devolve o apelido vinculado.
func (s *service) CheckAccount(ctx context.Context, cookies string) (string, error) {
	userInfo, err := s.client.GetUserInfo(ctx, cookies)
	if err != nil {
		return "", err
	}

	if len(userInfo.RoleInfoList) > 0 {
		return userInfo.RoleInfoList[0].NickName, nil
	}

	return "", nil
}
