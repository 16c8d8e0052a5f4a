package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pgymocks "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/mocks"
	"github.com/vfg2006/kol-collector-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kol-collector-api/internal/domain"
)

type accountFixture struct {
	accountRepo *mocks.MockAccountRepository
	collector   *pgymocks.MockService
	service     AccountService
}

func newAccountFixture(t *testing.T) *accountFixture {
	ctrl := gomock.NewController(t)

	fixture := &accountFixture{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		collector:   pgymocks.NewMockService(ctrl),
	}
	fixture.service = NewService(fixture.accountRepo, fixture.collector)

	return fixture
}

func TestListAccounts_NaoExpoeOsCookies(t *testing.T) {
	fixture := newAccountFixture(t)

	fixture.accountRepo.EXPECT().ListAccounts().Return([]*domain.PlatformAccount{
		{ID: "a1", Remark: "conta1", Cookies: "a1=secreto", Status: domain.AccountStatusValid},
		{ID: "a2", Remark: "conta2", Cookies: "", Status: domain.AccountStatusUnchecked},
	}, nil)

	accounts, err := fixture.service.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.True(t, accounts[0].HasCookies)
	assert.False(t, accounts[1].HasCookies)
}

func TestCreateAccount(t *testing.T) {
	fixture := newAccountFixture(t)

	t.Run("Cookies obrigatórios", func(t *testing.T) {
		_, err := fixture.service.CreateAccount(&domain.CreatePlatformAccountRequest{
			Remark:  "conta",
			Cookies: "   ",
		})
		assert.ErrorIs(t, err, ErrCookiesRequired)
	})

	t.Run("Conta nova entra como não verificada", func(t *testing.T) {
		fixture.accountRepo.EXPECT().
			CreateAccount(gomock.Any()).
			DoAndReturn(func(account *domain.PlatformAccount) error {
				assert.NotEmpty(t, account.ID)
				assert.Equal(t, "a1=valor", account.Cookies)
				assert.Equal(t, domain.AccountStatusUnchecked, account.Status)
				return nil
			})

		response, err := fixture.service.CreateAccount(&domain.CreatePlatformAccountRequest{
			Remark:  "conta",
			Cookies: " a1=valor ",
		})
		require.NoError(t, err)
		assert.Equal(t, "conta", response.Remark)
		assert.True(t, response.HasCookies)
	})
}

func TestCheckAccount(t *testing.T) {
	account := &domain.PlatformAccount{
		ID:      "a1",
		Remark:  "conta",
		Cookies: "a1=valor",
		Status:  domain.AccountStatusUnchecked,
	}

	t.Run("Sessão aceita marca a conta como válida", func(t *testing.T) {
		fixture := newAccountFixture(t)

		fixture.accountRepo.EXPECT().GetAccountByID("a1").Return(account, nil)
		fixture.collector.EXPECT().CheckAccount(gomock.Any(), "a1=valor").Return("品牌号", nil)
		fixture.accountRepo.EXPECT().
			UpdateAccountCheck("a1", domain.AccountStatusValid, "品牌号").
			Return(nil)

		result, err := fixture.service.CheckAccount(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, domain.AccountStatusValid, result.Status)
		assert.Equal(t, "品牌号", result.Nickname)
	})

	t.Run("Sessão rejeitada marca a conta como inválida sem erro", func(t *testing.T) {
		fixture := newAccountFixture(t)

		fixture.accountRepo.EXPECT().GetAccountByID("a1").Return(account, nil)
		fixture.collector.EXPECT().
			CheckAccount(gomock.Any(), "a1=valor").
			Return("", errors.New("账号验证失败"))
		fixture.accountRepo.EXPECT().
			UpdateAccountCheck("a1", domain.AccountStatusInvalid, "").
			Return(nil)

		result, err := fixture.service.CheckAccount(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, domain.AccountStatusInvalid, result.Status)
		assert.Empty(t, result.Nickname)
	})

	t.Run("Conta inexistente", func(t *testing.T) {
		fixture := newAccountFixture(t)

		fixture.accountRepo.EXPECT().GetAccountByID("nao-existe").Return(nil, nil)

		_, err := fixture.service.CheckAccount(context.Background(), "nao-existe")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestCheckAllAccounts(t *testing.T) {
	fixture := newAccountFixture(t)

	fixture.accountRepo.EXPECT().ListAccounts().Return([]*domain.PlatformAccount{
		{ID: "a1", Cookies: "c1"},
		{ID: "a2", Cookies: "c2"},
	}, nil)

	fixture.collector.EXPECT().CheckAccount(gomock.Any(), "c1").Return("conta一", nil)
	fixture.collector.EXPECT().CheckAccount(gomock.Any(), "c2").Return("", errors.New("rejeitada"))

	fixture.accountRepo.EXPECT().UpdateAccountCheck("a1", domain.AccountStatusValid, "conta一").Return(nil)
	fixture.accountRepo.EXPECT().UpdateAccountCheck("a2", domain.AccountStatusInvalid, "").Return(nil)

	results, err := fixture.service.CheckAllAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, domain.AccountStatusValid, results[0].Status)
	assert.Equal(t, domain.AccountStatusInvalid, results[1].Status)
}
