package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"

	"github.com/cloudkeep/cloudkeep/internal/account"
	"github.com/cloudkeep/cloudkeep/internal/binding"
	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
	"github.com/cloudkeep/cloudkeep/internal/instance"
	"github.com/cloudkeep/cloudkeep/internal/invitation"
	"github.com/cloudkeep/cloudkeep/internal/model"
	"github.com/cloudkeep/cloudkeep/internal/webserver"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Error retrieving user home dir")
	}
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}
	if err = os.MkdirAll(fmt.Sprintf("%s/cloudkeep/instances", homeDir), os.ModePerm); err != nil {
		log.Fatal(fmt.Errorf("Couldn't create %s, exiting", fmt.Sprintf("%s/cloudkeep/instances", homeDir)))
	}
	if cfg.DbPath == "" {
		cfg.DbPath = fmt.Sprintf("%s/cloudkeep/database.db", homeDir)
	}

	run(cfg, homeDir, appFs)
}

func run(cfg Config, homeDir string, appFs afero.Fs) {
	var sender webserver.Sender

	db := infrastructure.Connect(cfg.DbPath)

	sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	catalog, err := infrastructure.NewVersionCatalog(appFs, cfg.VersionsPath)
	if err != nil {
		log.Fatal(err)
	}
	backend := infrastructure.NewLocalCompute(appFs, fmt.Sprintf("%s/cloudkeep/instances", homeDir))
	providers := infrastructure.NewLocalProviderRegistry()

	accountsRepository := &model.AccountRepository{DB: db}
	instancesRepository := &model.InstanceRepository{DB: db}
	bindingsRepository := &model.BindingRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	membershipsRepository := &model.MembershipRepository{DB: db}
	usersRepository := &model.UserRepository{DB: db}

	builder := instance.NewConfigBuilder(
		accountsRepository,
		bindingsRepository,
		providers,
		instance.NotificationSettings{
			Username: cfg.SmtpUser,
			Password: cfg.SmtpPassword,
			From:     sender.From(),
			Admins:   cfg.AdminAddresses,
		},
		cfg.Endpoint,
	)

	services := webserver.Services{
		Accounts: account.NewService(
			accountsRepository,
			instancesRepository,
			membershipsRepository,
			sender,
			account.Config{AdminAddresses: cfg.AdminAddresses},
		),
		Instances: instance.NewService(
			instancesRepository,
			accountsRepository,
			membershipsRepository,
			usersRepository,
			backend,
			catalog,
			builder,
		),
		Bindings:    binding.NewRegistry(bindingsRepository, providers),
		Invitations: invitation.NewService(invitationsRepository, membershipsRepository, invitation.Config{Endpoint: cfg.Endpoint}),
	}
	services.Poller = instance.NewPoller(
		services.Instances,
		time.Duration(cfg.WaitDeadline)*time.Second,
		time.Duration(cfg.WaitInterval)*time.Second,
	)

	webserverConfig := webserver.Config{
		Version:        version,
		JwtSecret:      []byte(cfg.JwtSecret),
		SessionTimeout: time.Duration(cfg.SessionTimeout) * time.Hour,
		Endpoint:       cfg.Endpoint,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, services, sender, cfg.InvitationDays)
	app := webserver.New(webserverConfig, controllers)
	fmt.Printf("CloudKeep version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
