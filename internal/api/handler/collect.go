package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/internal/usecases/collecting"
	"github.com/vfg2006/kol-collector-api/pkg/apiErrors"
)

// StartCollect dispara um novo lote de coleta. O lote roda em segundo plano;
// o progresso é consultado via GetCollectStatus e na listagem de alvos.
func StartCollect(service collecting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StartCollect")

		if err := service.Start(r.Context()); err != nil {
			logrus.Error("Error starting batch:", err)

			switch {
			case errors.Is(err, collecting.ErrBatchAlreadyRunning):
				apiErrors.WriteError(w, apiErrors.ErrBatchAlreadyRunning, "Já existe um lote de coleta em andamento", nil)

			case errors.Is(err, collecting.ErrNoValidAccounts):
				apiErrors.WriteError(w, apiErrors.ErrNoValidAccounts, "Nenhuma conta válida disponível para coleta", nil)

			case errors.Is(err, collecting.ErrNoTargets):
				apiErrors.WriteError(w, apiErrors.ErrNoTargets, "Nenhum alvo importado para coleta", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar lote de coleta", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"status": "started"})
	})
}

func PauseCollect(service collecting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PauseCollect")

		if err := service.Pause(); err != nil {
			writeBatchControlError(w, err, "Erro ao pausar lote de coleta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "paused"})
	})
}

func ResumeCollect(service collecting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResumeCollect")

		if err := service.Resume(); err != nil {
			writeBatchControlError(w, err, "Erro ao retomar lote de coleta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "resumed"})
	})
}

func StopCollect(service collecting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StopCollect")

		if err := service.Stop(); err != nil {
			writeBatchControlError(w, err, "Erro ao encerrar lote de coleta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "stopping"})
	})
}

func GetCollectStatus(service collecting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func writeBatchControlError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error("Batch control error:", err)

	switch {
	case errors.Is(err, collecting.ErrBatchNotRunning):
		apiErrors.WriteError(w, apiErrors.ErrBatchNotRunning, "Nenhum lote de coleta em andamento", nil)

	case errors.Is(err, collecting.ErrBatchNotPaused):
		apiErrors.WriteError(w, apiErrors.ErrBatchNotPaused, "O lote de coleta não está pausado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
