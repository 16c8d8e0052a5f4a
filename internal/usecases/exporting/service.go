package exporting

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/config"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

const sheetName = "采集数据"

var ErrNothingToExport = errors.New("没有可导出的数据")

// Service exporta os registros coletados para uma planilha xlsx. Com
// onlyCompleted apenas os alvos concluídos entram; caso contrário todos os
// alvos, inclusive os ainda não coletados.
type Service interface {
	Export(onlyCompleted bool) (string, error)
}

type service struct {
	targetRepo   repository.TargetRepository
	settingsRepo repository.SettingsRepository
	cfg          *config.Config
}

func NewService(
	targetRepo repository.TargetRepository,
	settingsRepo repository.SettingsRepository,
	cfg *config.Config,
) Service {
	return &service{
		targetRepo:   targetRepo,
		settingsRepo: settingsRepo,
		cfg:          cfg,
	}
}

func (s *service) Export(onlyCompleted bool) (string, error) {
	settings, err := s.settingsRepo.GetSettings()
	if err != nil {
		return "", errors.Wrap(err, "carregar configurações do coletor")
	}

	targets, err := s.targetRepo.ListTargets()
	if err != nil {
		return "", errors.Wrap(err, "listar alvos de coleta")
	}

	// No modo completo todos os alvos geram linha, mesmo sem registro
	// coletado: as URLs saem preenchidas e as células de dados vazias
	exportable := make([]*domain.CollectTarget, 0, len(targets))
	for _, target := range targets {
		if onlyCompleted && target.Status != domain.TargetStatusCompleted {
			continue
		}
		exportable = append(exportable, target)
	}

	if len(exportable) == 0 {
		return "", ErrNothingToExport
	}

	headers, rowFor := s.buildSchema(settings, exportable)

	path, err := s.resolvePath(settings)
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			logrus.Warnf("Erro ao fechar planilha: %v", err)
		}
	}()

	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return "", errors.Wrap(err, "renomear aba da planilha")
	}

	if err := file.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return "", errors.Wrap(err, "escrever cabeçalhos")
	}

	for i, target := range exportable {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", errors.Wrap(err, "calcular célula da linha")
		}

		row := rowFor(target)
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", errors.Wrap(err, "escrever linha da planilha")
		}
	}

	if err := file.SaveAs(path); err != nil {
		return "", errors.Wrap(err, "salvar planilha")
	}

	logrus.Infof("Planilha exportada com %d registro(s): %s", len(exportable), path)

	return path, nil
}

// buildSchema monta os cabeçalhos completos da planilha e a função que gera a
// linha de cada alvo na mesma ordem. As colunas de desempenho seguem a ordem
// das combinações selecionadas; o perfil de fãs pode ser dividido em
// sub-colunas por nome.
func (s *service) buildSchema(
	settings *domain.CollectorSettings,
	targets []*domain.CollectTarget,
) ([]interface{}, func(*domain.CollectTarget) []interface{}) {
	headers := make([]interface{}, 0, len(baseHeaders))
	for _, header := range baseHeaders {
		headers = append(headers, header)
	}

	fieldPrefixes := make([]string, 0, len(settings.PerformanceFields))
	for _, field := range settings.PerformanceFields {
		prefix := "数据表现-" + field
		fieldPrefixes = append(fieldPrefixes, prefix)
		for _, header := range performanceFieldHeaders(prefix) {
			headers = append(headers, header)
		}
	}

	for _, header := range fansMetricsHeaders {
		headers = append(headers, header)
	}

	var splitHeaders []string
	if settings.SplitFansProfile {
		splitHeaders = splitFansProfileHeaders(targets)
		for _, header := range splitHeaders {
			headers = append(headers, header)
		}
	} else {
		for _, header := range fansProfileHeaders {
			headers = append(headers, header)
		}
	}

	headers = append(headers, "采集时间")

	rowFor := func(target *domain.CollectTarget) []interface{} {
		record := target.Record
		if record == nil {
			record = domain.FlatRecord{}
		}

		row := baseRow(target)

		for _, prefix := range fieldPrefixes {
			row = append(row, performanceFieldValues(record, prefix)...)
		}

		for _, header := range fansMetricsHeaders {
			row = append(row, cellOr(record, header, ""))
		}

		if settings.SplitFansProfile {
			row = append(row, splitFansProfileValues(record, splitHeaders)...)
		} else {
			for _, header := range fansProfileHeaders {
				row = append(row, cellOr(record, header, ""))
			}
		}

		collectTime := ""
		if target.CollectedAt != nil {
			collectTime = target.CollectedAt.Format("2006/01/02 15:04:05")
		}
		row = append(row, collectTime)

		return row
	}

	return headers, rowFor
}

// resolvePath monta o caminho final da planilha a partir das configurações,
// garantindo o diretório e a extensão xlsx.
func (s *service) resolvePath(settings *domain.CollectorSettings) (string, error) {
	dir := settings.Path
	if dir == "" {
		dir = s.cfg.Export.Dir
	}

	filename := settings.Filename
	if filename == "" {
		filename = domain.DefaultCollectorSettings().Filename
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		filename += ".xlsx"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "criar diretório de exportação")
	}

	return filepath.Join(dir, filename), nil
}
