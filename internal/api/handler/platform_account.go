package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/internal/usecases/account"
	"github.com/vfg2006/kol-collector-api/pkg/apiErrors"
)

func PlatformAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts()
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			writeAccountError(w, err, "Erro ao listar contas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreatePlatformAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePlatformAccount")

		w.Header().Set("Content-Type", "application/json")

		var createRequest domain.CreatePlatformAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.CreateAccount(&createRequest)
		if err != nil {
			logrus.Error("Error creating account:", err)

			if errors.Is(err, account.ErrCookiesRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O cookie da sessão é obrigatório", nil)
				return
			}

			writeAccountError(w, err, "Erro ao criar conta")
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdatePlatformAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePlatformAccount")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdatePlatformAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		if err := service.UpdateAccount(&updateRequest); err != nil {
			logrus.Error("Error updating account:", err)

			switch {
			case errors.Is(err, account.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
				})

			case errors.Is(err, account.ErrCookiesRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O cookie da sessão não pode ser vazio", nil)

			default:
				writeAccountError(w, err, "Erro ao atualizar conta")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeletePlatformAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePlatformAccount")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		if err := service.DeleteAccount(id); err != nil {
			logrus.Error("Error deleting account:", err)

			if errors.Is(err, account.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
				})
				return
			}

			writeAccountError(w, err, "Erro ao remover conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// CheckPlatformAccount valida a sessão de uma conta contra a plataforma e
// devolve o estado resultante. Sessão rejeitada não é erro HTTP.
func CheckPlatformAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckPlatformAccount")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		result, err := service.CheckAccount(r.Context(), id)
		if err != nil {
			logrus.Error("Error checking account:", err)

			if errors.Is(err, account.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
				})
				return
			}

			writeAccountError(w, err, "Erro ao verificar conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CheckAllPlatformAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckAllPlatformAccounts")

		results, err := service.CheckAllAccounts(r.Context())
		if err != nil {
			logrus.Error("Error checking accounts:", err)
			writeAccountError(w, err, "Erro ao verificar contas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeAccountError converte erros do caso de uso de contas na resposta
// padronizada da API
func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		var details interface{}
		if accountErr.AccountID != "" {
			details = map[string]interface{}{"account_id": accountErr.AccountID}
		}
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

	case errors.Is(err, account.ErrFetchAccounts) || errors.Is(err, account.ErrDatabaseOperation) || errors.Is(err, account.ErrUpdateAccount):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
