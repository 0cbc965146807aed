package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/overdue-reminder/internal/api/handlers/settings"
	"github.com/aliskhannn/overdue-reminder/internal/api/router"
	"github.com/aliskhannn/overdue-reminder/internal/api/server"
	"github.com/aliskhannn/overdue-reminder/internal/config"
	"github.com/aliskhannn/overdue-reminder/internal/dispatch"
	"github.com/aliskhannn/overdue-reminder/internal/grace"
	"github.com/aliskhannn/overdue-reminder/internal/idempotency"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	runmsg "github.com/aliskhannn/overdue-reminder/internal/rabbitmq/handlers/run"
	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/overdue-reminder/internal/repository/history"
	"github.com/aliskhannn/overdue-reminder/internal/repository/lending"
	notifrepo "github.com/aliskhannn/overdue-reminder/internal/repository/notification"
	prefrepo "github.com/aliskhannn/overdue-reminder/internal/repository/preferences"
	"github.com/aliskhannn/overdue-reminder/internal/schedule"
	prefsvc "github.com/aliskhannn/overdue-reminder/internal/service/preferences"
	remindersvc "github.com/aliskhannn/overdue-reminder/internal/service/reminder"
	"github.com/aliskhannn/overdue-reminder/internal/worker"
	"github.com/aliskhannn/overdue-reminder/pkg/email"
	"github.com/aliskhannn/overdue-reminder/pkg/postgres"
	"github.com/aliskhannn/overdue-reminder/pkg/push"
	"github.com/aliskhannn/overdue-reminder/pkg/sms"
	"github.com/aliskhannn/overdue-reminder/pkg/whatsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	if err := postgres.MigrateUp(cfg.Database.Master.DSN(), cfg.Database.Migrations); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	lendingRepo := lending.NewRepository(db)
	prefRepo := prefrepo.NewRepository(db)
	historyRepo := history.NewRepository(db)
	notifRepo := notifrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewRunQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create run queue")
	}

	senders := make(map[model.Channel]dispatch.Sender)

	if cfg.Email.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		senders[model.ChannelEmail] = email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
	}
	if cfg.SMS.URL != "" {
		senders[model.ChannelSMS] = sms.NewClient(cfg.SMS.URL, cfg.SMS.Token, cfg.SMS.Sender)
	}
	if cfg.Push.URL != "" {
		senders[model.ChannelPush] = push.NewClient(cfg.Push.URL, cfg.Push.Token)
	}
	if cfg.WhatsApp.URL != "" {
		senders[model.ChannelWhatsApp] = whatsapp.NewClient(cfg.WhatsApp.URL, cfg.WhatsApp.Token, cfg.WhatsApp.Sender)
	}

	zlog.Logger.Info().Int("channels", len(senders)).Msg("delivery channels configured")

	graceCalc := grace.NewCalculator(nil, lendingRepo, cfg.Reminder.Grace.Options())
	scheduler := schedule.New(
		schedule.WithZoneAware(cfg.Reminder.ZoneAware),
		schedule.WithTolerance(cfg.Reminder.Tolerance),
	)
	guard := idempotency.NewGuard(historyRepo, rdb, cfg.Reminder.LeaseTTL)
	dispatcher := dispatch.NewDispatcher(historyRepo, notifRepo, senders, cfg.Reminder.ChannelTimeout, cfg.Retry)

	reminderService := remindersvc.NewService(lendingRepo, prefRepo, graceCalc, scheduler, guard, dispatcher, notifRepo)
	prefService := prefsvc.NewService(prefRepo, rdb, val)

	reminderHandler := reminder.NewHandler(reminderService, q, val, cfg)
	settingsHandler := settings.NewHandler(prefService, cfg)
	messageHandler := runmsg.NewHandler(reminderService)

	processor := worker.NewProcessor(q, messageHandler)
	trigger := worker.NewTrigger(q, cfg.Reminder.TriggerInterval)

	go processor.Run(ctx, cfg.Retry, cfg.Workers.Count)
	go trigger.Run(ctx, cfg.Retry)

	r := router.New(reminderHandler, settingsHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
