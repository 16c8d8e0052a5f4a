package handler

import (
	"net/http"

	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/api/handler/router"
	"github.com/vfg2006/kol-collector-api/internal/usecases/account"
	"github.com/vfg2006/kol-collector-api/internal/usecases/authenticating"
	"github.com/vfg2006/kol-collector-api/internal/usecases/collecting"
	"github.com/vfg2006/kol-collector-api/internal/usecases/exporting"
	"github.com/vfg2006/kol-collector-api/internal/usecases/targeting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/me/change-password",
			Method:  http.MethodPost,
			Handler: ChangePassword(service),
		},
	}
}

func PlatformAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: PlatformAccountList(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodPost,
			Handler: CreatePlatformAccount(service),
		},
		{
			Path:    "/v1/accounts/check",
			Method:  http.MethodPost,
			Handler: CheckAllPlatformAccounts(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodPut,
			Handler: UpdatePlatformAccount(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodDelete,
			Handler: DeletePlatformAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/check",
			Method:  http.MethodPost,
			Handler: CheckPlatformAccount(service),
		},
	}
}

func Targets(service targeting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/targets",
			Method:  http.MethodGet,
			Handler: ListTargets(service),
		},
		{
			Path:    "/v1/targets/import",
			Method:  http.MethodPost,
			Handler: ImportTargets(service),
		},
		{
			Path:    "/v1/targets",
			Method:  http.MethodDelete,
			Handler: ClearTargets(service),
		},
	}
}

func Collect(service collecting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/collect/start",
			Method:  http.MethodPost,
			Handler: StartCollect(service),
		},
		{
			Path:    "/v1/collect/pause",
			Method:  http.MethodPost,
			Handler: PauseCollect(service),
		},
		{
			Path:    "/v1/collect/resume",
			Method:  http.MethodPost,
			Handler: ResumeCollect(service),
		},
		{
			Path:    "/v1/collect/stop",
			Method:  http.MethodPost,
			Handler: StopCollect(service),
		},
		{
			Path:    "/v1/collect/status",
			Method:  http.MethodGet,
			Handler: GetCollectStatus(service),
		},
	}
}

func Export(service exporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export",
			Method:  http.MethodPost,
			Handler: ExportRecords(service),
		},
	}
}

func Settings(repo repository.SettingsRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetCollectorSettings(repo),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: UpdateCollectorSettings(repo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
