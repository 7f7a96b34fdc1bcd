package main

import (
	"context"
	"log/slog"

	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal"
	"github.com/dfischr/diagpage/internal/adapters"
	"github.com/dfischr/diagpage/internal/app"
	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/web"
)

func main() {
	ctx := internal.SignalAwareContext(context.Background())

	cfg, err := config.GetConfig()
	internal.AssertNoError(err)

	internal.SetupLogging(cfg.Advanced.LogLevel, cfg.Advanced.LogJson)

	slog.Info("starting diagpage...", "version", internal.Version)

	queueSize := 100
	eventBus := evbus.New(queueSize)

	var faultRepo *adapters.FaultRepo
	if cfg.Core.RecordFaults {
		db, err := adapters.NewDatabase(cfg.Database)
		internal.AssertNoError(err)

		faultRepo, err = adapters.NewFaultRepository(db)
		internal.AssertNoError(err)

		_, err = app.NewFaultRecorder(cfg, eventBus, faultRepo)
		internal.AssertNoError(err)
	}

	if cfg.Core.MailFaults {
		mailer := adapters.NewSmtpMailRepo(cfg.Mail)
		_, err = app.NewMailNotifier(cfg, eventBus, mailer)
		internal.AssertNoError(err)
	}

	metricsSrv := adapters.NewMetricsServer(cfg)
	go metricsSrv.Run(ctx)

	var faults web.FaultReader
	if faultRepo != nil {
		faults = faultRepo
	}

	webSrv, err := web.NewServer(cfg, eventBus, faults, metricsSrv)
	internal.AssertNoError(err)

	go webSrv.Run(ctx, cfg.Web.ListeningAddress)

	// wait until context gets cancelled
	<-ctx.Done()

	slog.Info("stopped diagpage")
}
