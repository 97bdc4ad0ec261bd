package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harshmriduhash/Cold-Emailer/internal/dispatch"
	"github.com/harshmriduhash/Cold-Emailer/internal/store"
	"github.com/harshmriduhash/Cold-Emailer/internal/submit"
	"github.com/harshmriduhash/Cold-Emailer/pkg/config"
	"github.com/harshmriduhash/Cold-Emailer/pkg/db"
	"github.com/harshmriduhash/Cold-Emailer/pkg/ids"
	"github.com/harshmriduhash/Cold-Emailer/pkg/logx"
	"github.com/harshmriduhash/Cold-Emailer/pkg/notify"
	"github.com/harshmriduhash/Cold-Emailer/pkg/rmq"
	"github.com/harshmriduhash/Cold-Emailer/services/composer-api/server"
)

func main() {
	logx.Init()
	defer logx.Sync()

	config.MustLoadAPI()
	cfg := config.API

	disp, err := dispatch.New(cfg.DispatchURL, &http.Client{Timeout: cfg.DispatchTimeout})
	if err != nil {
		logx.L().Fatalw("dispatch_init_error", "error", err)
	}

	feed := notify.NewFeed(cfg.NotifyFeedSize)
	sinks := []notify.Sink{notify.LogSink{}, feed}

	if cfg.RMQURL != "" {
		pub, err := rmq.NewPublisher(cfg.RMQURL, cfg.NotifyQueue)
		if err != nil {
			logx.L().Fatalw("rmq_init_error", "error", err)
		}
		defer func() {
			if err := pub.Close(); err != nil {
				logx.L().Warnw("rmq_publisher_close_error", "error", err)
			} else {
				logx.L().Infow("rmq_publisher_closed")
			}
		}()
		sinks = append(sinks, notify.NewQueueSink(pub))
	}

	var opts []submit.Option
	var st *store.Store
	if cfg.DBDSN != "" {
		sqlDB, err := db.Open(cfg.DBDSN)
		if err != nil {
			logx.L().Fatalw("db_open_error", "error", err)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				logx.L().Warnw("db_close_error", "error", err)
			} else {
				logx.L().Infow("db_closed")
			}
		}()
		st = store.New(sqlDB)
		opts = append(opts, submit.WithRecorder(st))
	}

	ctrl := submit.New(ids.UUID{}, disp, notify.Multi(sinks...), opts...)

	h := server.NewHandlers(ctrl, feed, st)
	srv := server.NewHTTPServer(":"+cfg.Port, h)

	go func() {
		logx.L().Infow("api_listen_start", "addr", ":"+cfg.Port, "dispatch_url", cfg.DispatchURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.L().Fatalw("http_server_error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logx.L().Infow("signal_received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logx.L().Errorw("server_shutdown_error", "error", err)
	} else {
		logx.L().Infow("server_shutdown_success")
	}

	logx.L().Infow("composer-api stopped gracefully")
}
