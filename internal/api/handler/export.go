package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/internal/usecases/exporting"
	"github.com/vfg2006/kol-collector-api/pkg/apiErrors"
)

type ExportRequest struct {
	// SaveAll inclui também os alvos não concluídos que tenham algum registro
	SaveAll bool `json:"save_all"`
}

type ExportResponse struct {
	Path string `json:"path"`
}

// ExportRecords gera a planilha com os registros coletados e devolve o
// caminho do arquivo gerado.
func ExportRecords(service exporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportRecords")

		w.Header().Set("Content-Type", "application/json")

		var exportRequest ExportRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&exportRequest); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}

		path, err := service.Export(!exportRequest.SaveAll)
		if err != nil {
			logrus.Error("Error exporting records:", err)

			if errors.Is(err, exporting.ErrNothingToExport) {
				apiErrors.WriteError(w, apiErrors.ErrNothingToExport, "Nenhum registro coletado para exportar", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(ExportResponse{Path: path}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
