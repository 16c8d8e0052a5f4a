package targeting

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/pkg/utils"
)

// Erros específicos do contexto de alvos
var (
	ErrNoValidURLs       = errors.New("no valid URLs to import")
	ErrBatchInProgress   = errors.New("cannot clear targets while a batch is running")
	ErrGenerateID        = errors.New("error generating target ID")
	ErrDatabaseOperation = errors.New("database operation error")
)

// URLs aceitas na importação: página do blogueiro na plataforma de
// cooperação e perfil público.
var (
	pgyURLRegex = regexp.MustCompile(`pgy\.xiaohongshu\.com/solar/pre-trade/blogger-detail/([a-f0-9]+)`)
	xhsURLRegex = regexp.MustCompile(`www\.xiaohongshu\.com/user/profile/([a-f0-9]+)`)
)

// batchState é o recorte do controlador de lotes consultado antes de
// operações destrutivas.
type batchState interface {
	Running() bool
}

type Service interface {
	ImportTargets(req *domain.ImportTargetsRequest) (*domain.ImportTargetsResponse, error)
	ListTargets() ([]*domain.CollectTarget, error)
	ClearTargets() error
}

type service struct {
	targetRepo repository.TargetRepository
	batch      batchState
}

func NewService(targetRepo repository.TargetRepository, batch batchState) Service {
	return &service{
		targetRepo: targetRepo,
		batch:      batch,
	}
}

// ExtractUserID reconhece o identificador do blogueiro em uma URL suportada.
func ExtractUserID(rawURL string) (string, bool) {
	if match := pgyURLRegex.FindStringSubmatch(rawURL); match != nil {
		return match[1], true
	}
	if match := xhsURLRegex.FindStringSubmatch(rawURL); match != nil {
		return match[1], true
	}

	return "", false
}

// ImportTargets interpreta as URLs recebidas (em lista ou texto com uma URL
// por linha), deduplica pelo identificador do blogueiro e insere os alvos
// novos como pendentes.
func (s *service) ImportTargets(req *domain.ImportTargetsRequest) (*domain.ImportTargetsResponse, error) {
	urls := make([]string, 0, len(req.URLs))
	urls = append(urls, req.URLs...)

	for _, line := range strings.Split(req.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}

	response := &domain.ImportTargetsResponse{}

	// Deduplicação dentro da própria importação
	seen := make(map[string]struct{})

	for _, rawURL := range urls {
		userID, ok := ExtractUserID(rawURL)
		if !ok {
			response.Invalid++
			continue
		}

		if _, duplicated := seen[userID]; duplicated {
			response.Skipped++
			continue
		}
		seen[userID] = struct{}{}

		targetID, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar o ID do alvo")
			return nil, ErrGenerateID
		}

		created, err := s.targetRepo.CreateTarget(&domain.CollectTarget{
			ID:     targetID,
			UserID: userID,
			PgyURL: fmt.Sprintf("https://pgy.xiaohongshu.com/solar/pre-trade/blogger-detail/%s", userID),
			XhsURL: fmt.Sprintf("https://www.xiaohongshu.com/user/profile/%s", userID),
			Status: domain.TargetStatusPending,
		})
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao inserir o alvo %s", userID)
			return nil, ErrDatabaseOperation
		}

		if created {
			response.Added++
		} else {
			response.Skipped++
		}
	}

	if response.Added == 0 && response.Skipped == 0 && response.Invalid == 0 {
		return nil, ErrNoValidURLs
	}

	return response, nil
}

func (s *service) ListTargets() ([]*domain.CollectTarget, error) {
	return s.targetRepo.ListTargets()
}

// ClearTargets remove todos os alvos. A operação é recusada com lote em
// andamento.
func (s *service) ClearTargets() error {
	if s.batch != nil && s.batch.Running() {
		return ErrBatchInProgress
	}

	return s.targetRepo.ClearTargets()
}
