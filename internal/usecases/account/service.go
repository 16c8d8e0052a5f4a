package account

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy"
	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/domain"
	"github.com/vfg2006/kol-collector-api/pkg/apiErrors"
	"github.com/vfg2006/kol-collector-api/pkg/utils"
)

type AccountService interface {
	ListAccounts() ([]*domain.PlatformAccountResponse, error)
	CreateAccount(request *domain.CreatePlatformAccountRequest) (*domain.PlatformAccountResponse, error)
	UpdateAccount(request *domain.UpdatePlatformAccountRequest) error
	DeleteAccount(accountID string) error
	CheckAccount(ctx context.Context, accountID string) (*domain.CheckAccountResult, error)
	CheckAllAccounts(ctx context.Context) ([]*domain.CheckAccountResult, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	collectorService  pgy.Service
}

func NewService(
	accountRepository repository.AccountRepository,
	collectorService pgy.Service,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		collectorService:  collectorService,
	}
}

func (s *Service) ListAccounts() ([]*domain.PlatformAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma as contas para o formato de resposta da API
	response := make([]*domain.PlatformAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, accountResponse(account))
	}

	return response, nil
}

func (s *Service) CreateAccount(request *domain.CreatePlatformAccountRequest) (*domain.PlatformAccountResponse, error) {
	if strings.TrimSpace(request.Cookies) == "" {
		return nil, ErrCookiesRequired
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	account := &domain.PlatformAccount{
		ID:      accountID,
		Remark:  request.Remark,
		Cookies: strings.TrimSpace(request.Cookies),
		Status:  domain.AccountStatusUnchecked,
	}

	if err := s.accountRepository.CreateAccount(account); err != nil {
		logrus.Error("Error creating account on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta no banco de dados")
	}

	return accountResponse(account), nil
}

func (s *Service) UpdateAccount(request *domain.UpdatePlatformAccountRequest) error {
	if request.ID == "" {
		return ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if request.Cookies != nil && strings.TrimSpace(*request.Cookies) == "" {
		return ErrCookiesRequired
	}

	// O repositório volta o estado para "não verificada" quando o cookie muda
	if err := s.accountRepository.UpdateAccount(request); err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return nil
}

func (s *Service) DeleteAccount(accountID string) error {
	if accountID == "" {
		return ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	if err := s.accountRepository.DeleteAccount(accountID); err != nil {
		logrus.Error("Error deleting account on the repository:", err)
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao remover conta no banco de dados")
	}

	return nil
}

// CheckAccount valida a sessão de uma conta contra a plataforma. Uma sessão
// rejeitada não é erro: a conta é marcada como inválida e o resultado volta
// para o chamador.
func (s *Service) CheckAccount(ctx context.Context, accountID string) (*domain.CheckAccountResult, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	return s.checkAccount(ctx, account)
}

// CheckAllAccounts valida todas as contas cadastradas, uma a uma.
func (s *Service) CheckAllAccounts(ctx context.Context) ([]*domain.CheckAccountResult, error) {
	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	results := make([]*domain.CheckAccountResult, 0, len(accounts))
	for _, account := range accounts {
		result, err := s.checkAccount(ctx, account)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (s *Service) checkAccount(ctx context.Context, account *domain.PlatformAccount) (*domain.CheckAccountResult, error) {
	status := domain.AccountStatusValid

	nickname, err := s.collectorService.CheckAccount(ctx, account.Cookies)
	if err != nil {
		logrus.Warnf("Conta %s rejeitada pela plataforma: %v", account.ID, err)
		status = domain.AccountStatusInvalid
		nickname = ""
	}

	if err := s.accountRepository.UpdateAccountCheck(account.ID, status, nickname); err != nil {
		logrus.Error("Error saving account check on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, account.ID, "Falha ao registrar verificação da conta")
	}

	return &domain.CheckAccountResult{
		ID:       account.ID,
		Remark:   account.Remark,
		Status:   status,
		Nickname: nickname,
	}, nil
}

func accountResponse(account *domain.PlatformAccount) *domain.PlatformAccountResponse {
	return &domain.PlatformAccountResponse{
		ID:            account.ID,
		Remark:        account.Remark,
		Status:        account.Status,
		Nickname:      account.Nickname,
		LastUseDate:   account.LastUseDate,
		TodayUseCount: account.TodayUseCount,
		HasCookies:    account.Cookies != "",
		CreatedAt:     account.CreatedAt,
	}
}
