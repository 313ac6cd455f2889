package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/config"
	"github.com/Astemirdum/library-circulation/library/internal/cache"
	"github.com/Astemirdum/library-circulation/library/internal/circulation"
	"github.com/Astemirdum/library-circulation/library/internal/handler"
	"github.com/Astemirdum/library-circulation/library/internal/openlibrary"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/library/internal/scheduler"
	"github.com/Astemirdum/library-circulation/library/internal/server"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/Astemirdum/library-circulation/library/migrations"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	pkgcache "github.com/Astemirdum/library-circulation/pkg/cache"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

func Policy(cfg config.Circulation) circulation.Policy {
	return circulation.Policy{
		LoanDays:    cfg.LoanDays,
		RenewDays:   cfg.RenewDays,
		FineRate:    cfg.FineRate,
		MaxFine:     cfg.MaxFine,
		GraceDays:   cfg.GraceDays,
		MaxRenewals: cfg.MaxRenewals,
	}
}

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	rdb, err := pkgcache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("redis init", zap.Error(err))
	}

	sessions := cache.NewSessions(rdb)
	tokens := auth.NewManager(cfg.Auth)
	opts := []service.Option{
		service.WithPolicy(Policy(cfg.Circulation)),
		service.WithSessions(sessions, tokens),
		service.WithReportCache(cache.NewReports(rdb, cfg.Redis.DashboardTTL)),
		service.WithBookSource(openlibrary.NewClient(cfg.OpenLibrary.BaseURL, cfg.OpenLibrary.Timeout, log)),
	}

	var closers []func() error
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		closers = append(closers, producer.Close)
		opts = append(opts, service.WithPublisher(kafka.NewEnqueuer(producer)))
	} else {
		log.Warn("kafka is not configured, circulation events are not published")
	}
	svc := service.NewService(repo, log, opts...)

	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.CirculationConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		closers = append(closers, group.Close)
		consumer := handler.NewConsumer(svc, log)
		go kafka.Consume(ctx, group, consumer, log, kafka.CirculationTopic)
		go func() {
			select {
			case <-consumer.Ready():
				log.Info("circulation consumer joined", zap.String("group", kafka.CirculationConsumerGroup))
			case <-ctx.Done():
			}
		}()
	}

	sched, err := scheduler.New(cfg.Scheduler.SweepSpec, svc, log)
	if err != nil {
		log.Fatal("scheduler", zap.Error(err))
	}
	sched.Start()

	h := handler.New(svc, tokens, sessions, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	sched.Stop(closeCtx)
	stop()
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Warn("close", zap.Error(err))
		}
	}
	if err := rdb.Close(); err != nil {
		log.Warn("redis close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
