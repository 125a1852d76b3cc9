package cron

import (
	"context"
	"fmt"
	"time"

	"concierge/config"
	"concierge/models"
	"concierge/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InquiryStore keeps delivered inquiries.
type InquiryStore interface {
	Store(ctx context.Context, in models.ContactInquiry) error
}

// QueueRedisOpt is the asynq connection for the inquiry queue (REDIS_QUEUE_DB).
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewInquiryMux routes inquiry tasks to their handler.
func NewInquiryMux(store InquiryStore, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDeliverInquiry, handleInquiryTask(store, logger))
	return mux
}

func handleInquiryTask(store InquiryStore, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		in, err := tasks.ParseInquiryTask(task)
		if err != nil {
			logger.Error("[InquiryHandler] invalid payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := store.Store(ctx, in); err != nil {
			logger.Error("[InquiryHandler] failed to store inquiry", zap.String("inquiryID", in.ID), zap.Error(err))
			return err
		}
		logger.Info("[InquiryHandler] inquiry delivered",
			zap.String("inquiryID", in.ID),
			zap.String("service", in.Service),
			zap.Time("submittedAt", in.SubmittedAt),
		)
		return nil
	}
}

// RunInquiryWorker processes inquiry tasks until ctx is cancelled.
func RunInquiryWorker(ctx context.Context, store InquiryStore, logger *zap.Logger) error {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewInquiryMux(store, logger)

	logger.Info("[InquiryWorker] starting async worker")
	const maxAttempts = 5
	for attempts := 1; ; attempts++ {
		err := srv.Start(mux)
		if err == nil {
			break
		}
		logger.Warn("[InquiryWorker] failed to start worker",
			zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
		if attempts == maxAttempts {
			return fmt.Errorf("inquiry worker: %w", err)
		}
		select {
		case <-time.After(time.Duration(attempts*2) * time.Second):
		case <-ctx.Done():
			return nil
		}
	}

	<-ctx.Done()
	logger.Info("[InquiryWorker] shutting down")
	srv.Shutdown()
	return nil
}
