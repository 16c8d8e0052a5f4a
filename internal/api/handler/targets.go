package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/internal/usecases/targeting"
	"github.com/vfg2006/kol-collector-api/pkg/apiErrors"
)

// ImportTargets recebe URLs de blogueiros, como lista ou texto com uma URL
// por linha, e devolve o resumo da importação.
func ImportTargets(service targeting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportTargets")

		w.Header().Set("Content-Type", "application/json")

		var importRequest domain.ImportTargetsRequest
		if err := json.NewDecoder(r.Body).Decode(&importRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.ImportTargets(&importRequest)
		if err != nil {
			logrus.Error("Error importing targets:", err)

			switch {
			case errors.Is(err, targeting.ErrNoValidURLs):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhuma URL válida para importar", nil)

			case errors.Is(err, targeting.ErrGenerateID):
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificadores únicos", nil)

			case errors.Is(err, targeting.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar alvos no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar alvos", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListTargets(service targeting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		targets, err := service.ListTargets()
		if err != nil {
			logrus.Error("Error listing targets:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alvos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ClearTargets(service targeting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ClearTargets")

		if err := service.ClearTargets(); err != nil {
			logrus.Error("Error clearing targets:", err)

			if errors.Is(err, targeting.ErrBatchInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrBatchAlreadyRunning, "Não é possível limpar alvos com um lote em andamento", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao limpar alvos", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
