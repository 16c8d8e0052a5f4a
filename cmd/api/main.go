package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy"
	"github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/pgyclient"
	"github.com/vfg2006/kol-collector-api/infrastructure/repository"
	"github.com/vfg2006/kol-collector-api/internal/api"
	"github.com/vfg2006/kol-collector-api/internal/config"
	"github.com/vfg2006/kol-collector-api/internal/scheduler"
	"github.com/vfg2006/kol-collector-api/internal/usecases/account"
	"github.com/vfg2006/kol-collector-api/internal/usecases/authenticating"
	"github.com/vfg2006/kol-collector-api/internal/usecases/collecting"
	"github.com/vfg2006/kol-collector-api/internal/usecases/exporting"
	"github.com/vfg2006/kol-collector-api/internal/usecases/targeting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	pgyClient := pgyclient.NewClient(cfg)
	collector := pgy.NewService(pgyClient, cfg)

	accountService := account.NewService(accountRepo, collector)

	exportService := exporting.NewService(targetRepo, settingsRepo, cfg)

	collectService := collecting.NewService(
		accountRepo,
		targetRepo,
		settingsRepo,
		collector,
		exportService,
		cfg,
	)

	targetService := targeting.NewService(targetRepo, collectService)

	// Inicializa o agendador de verificação periódica das sessões
	accountCheckSyncService := scheduler.NewAccountCheckSyncService(accountService, cfg)

	if err := accountCheckSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de contas")
	} else {
		logrus.Info("Agendador de verificação de contas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		targetService,
		collectService,
		exportService,
		settingsRepo,
		authenticator,
		accountCheckSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
