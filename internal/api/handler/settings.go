package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy"
	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/pkg/apiErrors"
)

func GetCollectorSettings(repo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := repo.GetSettings()
		if err != nil {
			logrus.Error("Error loading settings:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateCollectorSettings aplica uma atualização parcial sobre as
// configurações persistidas. Combinações de desempenho desconhecidas são
// rejeitadas.
func UpdateCollectorSettings(repo repository.SettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCollectorSettings")

		w.Header().Set("Content-Type", "application/json")

		var updateRequest domain.UpdateCollectorSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		settings, err := repo.GetSettings()
		if err != nil {
			logrus.Error("Error loading settings:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar configurações", nil)
			return
		}

		if updateRequest.MaxCount != nil {
			if *updateRequest.MaxCount <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O limite diário deve ser maior que zero", nil)
				return
			}
			settings.MaxCount = *updateRequest.MaxCount
		}

		if updateRequest.PerformanceFields != nil {
			var unknown []string
			for _, field := range *updateRequest.PerformanceFields {
				if _, ok := pgy.PerformanceFieldParams[field]; !ok {
					unknown = append(unknown, field)
				}
			}
			if len(unknown) > 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Combinações de desempenho desconhecidas: "+strings.Join(unknown, ", "), nil)
				return
			}
			settings.PerformanceFields = *updateRequest.PerformanceFields
		}

		if updateRequest.Filename != nil && *updateRequest.Filename != "" {
			settings.Filename = *updateRequest.Filename
		}

		if updateRequest.Path != nil {
			settings.Path = *updateRequest.Path
		}

		if updateRequest.SplitFansProfile != nil {
			settings.SplitFansProfile = *updateRequest.SplitFansProfile
		}

		if updateRequest.AutoExport != nil {
			settings.AutoExport = *updateRequest.AutoExport
		}

		if err := repo.SaveSettings(settings); err != nil {
			logrus.Error("Error saving settings:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
