package collecting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/internal/usecases/accountpool"
)

// EventType distingue os eventos emitidos pelo motor durante um lote.
type EventType string

const (
	// EventTargetStatus sinaliza mudança de estado intermediário de um alvo
	EventTargetStatus EventType = "target_status"
	// EventTargetResult sinaliza o desfecho de um alvo (sucesso ou falha)
	EventTargetResult EventType = "target_result"
	// EventBatchFinished sinaliza o fim do lote, com o resumo agregado
	EventBatchFinished EventType = "batch_finished"
)

// Event é a única forma de comunicação do motor com o controlador do lote.
// Os eventos de um alvo são emitidos estritamente antes do próximo alvo
// começar a ser processado.
type Event struct {
	Type     EventType
	TargetID string
	Status   string
	Target   *domain.CollectTarget
	Summary  *BatchSummary
}

// BatchSummary é o resumo agregado de um lote encerrado.
type BatchSummary struct {
	Success int  `json:"success"`
	Failed  int  `json:"failed"`
	Skipped int  `json:"skipped"`
	Stopped bool `json:"stopped"`
}

// Engine percorre os alvos de um lote sequencialmente, com um único worker.
// pause/resume/stop são cooperativos: pause é verificado no início de cada
// alvo e stop na fronteira entre alvos; uma chamada de rede em andamento
// nunca é interrompida.
type Engine struct {
	collector        pgy.Service
	pool             *accountpool.Pool
	settings         *domain.CollectorSettings
	interTargetDelay time.Duration

	mu      sync.Mutex
	cond    *sync.Cond
	paused  bool
	stopped bool
}

func NewEngine(
	collector pgy.Service,
	pool *accountpool.Pool,
	settings *domain.CollectorSettings,
	interTargetDelay time.Duration,
) *Engine {
	engine := &Engine{
		collector:        collector,
		pool:             pool,
		settings:         settings,
		interTargetDelay: interTargetDelay,
	}
	engine.cond = sync.NewCond(&engine.mu)

	return engine
}

// Pause suspende o lote no próximo início de alvo. Um alvo em andamento
// termina normalmente antes da suspensão valer.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.paused = true
}

// Resume retoma um lote suspenso.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.paused = false
	e.cond.Broadcast()
}

// Stop encerra o lote na próxima fronteira de alvo. Também acorda o motor
// caso esteja suspenso.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopped = true
	e.cond.Broadcast()
}

// Paused informa se o motor está suspenso.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.paused
}

// waitWhilePaused bloqueia enquanto o lote estiver suspenso. Devolve false
// quando o lote foi encerrado durante a espera.
func (e *Engine) waitWhilePaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.paused && !e.stopped {
		e.cond.Wait()
	}

	return !e.stopped
}

func (e *Engine) isStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stopped
}

// Run processa os alvos em ordem e fecha o canal de eventos ao terminar.
// Alvos já concluídos são pulados; o resumo final distingue lote completo de
// lote encerrado por stop.
func (e *Engine) Run(ctx context.Context, targets []*domain.CollectTarget, events chan<- Event) {
	defer close(events)

	summary := &BatchSummary{}

	for i, target := range targets {
		if target.Status == domain.TargetStatusCompleted {
			summary.Skipped++
			continue
		}

		if !e.waitWhilePaused() {
			summary.Stopped = true
			break
		}

		e.collectTarget(ctx, target, events)

		if target.Status == domain.TargetStatusCompleted {
			summary.Success++
		} else {
			summary.Failed++
		}

		events <- Event{Type: EventTargetResult, TargetID: target.ID, Target: target}

		if e.isStopped() {
			summary.Stopped = true
			break
		}

		// Intervalo entre alvos para não sobrecarregar a plataforma
		if i < len(targets)-1 {
			time.Sleep(e.interTargetDelay)
		}
	}

	events <- Event{Type: EventBatchFinished, Summary: summary}
}

// setStatus atualiza o estado do alvo e notifica o controlador.
func (e *Engine) setStatus(target *domain.CollectTarget, status string, events chan<- Event) {
	target.Status = status
	events <- Event{Type: EventTargetStatus, TargetID: target.ID, Status: status}
}

// collectTarget executa o pipeline de estágios de um único alvo. A falha do
// primeiro estágio (dados cadastrais) derruba o alvo; os demais estágios são
// de melhor esforço e apenas anotam a falha na mensagem composta.
func (e *Engine) collectTarget(ctx context.Context, target *domain.CollectTarget, events chan<- Event) {
	now := time.Now()

	assignment, ok := e.pool.Acquire(e.settings.MaxCount, now)
	if !ok {
		e.failTarget(target, ErrQuotaExhausted.Error())
		return
	}

	logrus.Debugf("Conta %d atribuída ao alvo %s", assignment.Index, target.UserID)

	// 1. Dados cadastrais do blogueiro
	e.setStatus(target, domain.StatusCollectingStage(fmt.Sprintf("博主信息(账号%d)", assignment.Index)), events)

	record, err := e.collector.CollectBloggerInfo(ctx, target.UserID, assignment.Cookies)
	if err != nil {
		e.failTarget(target, err.Error())
		return
	}

	failures := ""

	// 2. Resumo de dados
	e.setStatus(target, domain.StatusCollectingStage("数据概览"), events)
	if summary, err := e.collector.CollectDataSummary(ctx, target.UserID, assignment.Cookies); err != nil {
		failures += fmt.Sprintf("（数据概览失败: %s）", err.Error())
	} else {
		mergeRecord(record, summary)
	}

	// 3. Dados de desempenho, apenas com combinações selecionadas
	if len(e.settings.PerformanceFields) > 0 {
		e.setStatus(target, domain.StatusCollectingStage("数据表现"), events)
		if performance, err := e.collector.CollectPerformanceData(ctx, target.UserID, e.settings.PerformanceFields, assignment.Cookies); err != nil {
			failures += fmt.Sprintf("（数据表现失败: %s）", err.Error())
		} else {
			mergeRecord(record, performance)
		}
	}

	// 4. Indicadores de fãs
	e.setStatus(target, domain.StatusCollectingStage("粉丝指标"), events)
	if fansSummary, err := e.collector.CollectFansSummary(ctx, target.UserID, assignment.Cookies); err != nil {
		failures += fmt.Sprintf("（粉丝指标失败: %s）", err.Error())
	} else {
		mergeRecord(record, fansSummary)
	}

	// 5. Retrato dos fãs
	e.setStatus(target, domain.StatusCollectingStage("粉丝画像"), events)
	if fansProfile, err := e.collector.CollectFansProfile(ctx, target.UserID, assignment.Cookies); err != nil {
		failures += fmt.Sprintf("（粉丝画像失败: %s）", err.Error())
	} else {
		mergeRecord(record, fansProfile)
	}

	if failures != "" {
		logrus.Warnf("Alvo %s concluído com falhas parciais: %s", target.UserID, failures)
	}

	collectedAt := time.Now()

	target.Status = domain.TargetStatusCompleted
	target.Record = record
	target.CollectedAt = &collectedAt
	if name, ok := record["name"].(string); ok {
		target.Nickname = name
	}
}

func (e *Engine) failTarget(target *domain.CollectTarget, reason string) {
	collectedAt := time.Now()

	target.Status = domain.TargetStatusFailedPrefix + reason
	target.CollectedAt = &collectedAt

	logrus.Warnf("Alvo %s falhou: %s", target.UserID, reason)
}

func mergeRecord(record, fragment domain.FlatRecord) {
	for key, value := range fragment {
		record[key] = value
	}
}
