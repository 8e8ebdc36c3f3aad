package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulkeeper/pulkeeper/internal/ai"
	"github.com/pulkeeper/pulkeeper/internal/config"
	"github.com/pulkeeper/pulkeeper/internal/domain"
	"github.com/pulkeeper/pulkeeper/internal/jobs"
	"github.com/pulkeeper/pulkeeper/internal/jobs/inmemory"
	"github.com/pulkeeper/pulkeeper/internal/logger"
	"github.com/pulkeeper/pulkeeper/internal/resolver"
	"github.com/pulkeeper/pulkeeper/internal/speech"
	"github.com/pulkeeper/pulkeeper/internal/storage/postgres"
	"github.com/pulkeeper/pulkeeper/internal/vision"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := postgres.New(ctx, postgres.Config{DSN: cfg.Postgres.DSN()}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer store.Close()

	analyzer := ai.NewClient(ai.Config{
		Endpoint:    cfg.AI.Endpoint,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		Attempts:    uint(cfg.AI.Attempts),
	}, log)

	transcriber := speech.NewTranscriber(speech.Config{
		Endpoint: cfg.Speech.Endpoint,
		APIKey:   cfg.Speech.APIKey,
		Model:    cfg.Speech.Model,
		Timeout:  time.Duration(cfg.Speech.TimeoutSeconds) * time.Second,
		Attempts: uint(cfg.Speech.Attempts),
	}, log)

	extractor := vision.NewExtractor(cfg.Vision.Model, log)

	res := resolver.New(analyzer, log)

	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(cfg.Queue.BufferSize, cfg.Queue.Workers, jobStore)

	log.Info().
		Int("workers", cfg.Queue.Workers).
		Msg("Starting worker service")

	handler := func(ctx context.Context, job jobs.Job) error {
		msgJob, ok := job.(*jobs.ResolveMessageJob)
		if !ok {
			return fmt.Errorf("unexpected job type: %T", job)
		}

		jobLog := log.With().
			Str("job_id", msgJob.JobID).
			Int64("user_id", msgJob.UserID).
			Str("kind", string(msgJob.Kind)).
			Logger()

		jobLog.Info().Msg("Processing message")

		text := msgJob.Text
		var err error
		switch msgJob.Kind {
		case jobs.KindVoice:
			text, err = transcriber.Transcribe(ctx, msgJob.Payload, "voice.ogg")
			if err != nil {
				jobLog.Error().Err(err).Msg("Transcription failed")
				return err
			}
		case jobs.KindReceipt:
			text, err = extractor.ExtractText(ctx, msgJob.Payload, msgJob.MimeType)
			if err != nil {
				if errors.Is(err, domain.ErrNoAmount) {
					jobLog.Warn().Msg("Receipt unreadable, dropping job")
					return nil
				}
				jobLog.Error().Err(err).Msg("Receipt extraction failed")
				return err
			}
		}

		tx, err := res.Resolve(ctx, text)
		if err != nil {
			// A message without an amount will never resolve; retrying
			// wastes AI calls. Only infrastructure failures are retried.
			if errors.Is(err, domain.ErrNoAmount) {
				jobLog.Warn().Err(err).Msg("Message not resolvable, dropping job")
				return nil
			}
			jobLog.Error().Err(err).Msg("Resolution failed")
			return err
		}

		id, err := store.InsertTransaction(ctx, msgJob.UserID, tx)
		if err != nil {
			jobLog.Error().Err(err).Msg("Failed to store transaction")
			return err
		}

		jobLog.Info().
			Int64("transaction_id", id).
			Int64("amount", tx.Amount).
			Str("category", string(tx.Category)).
			Bool("is_income", tx.IsIncome).
			Msg("Message resolved")

		return nil
	}

	if err := jobQueue.Start(ctx, handler); err != nil {
		log.Fatal().Err(err).Msg("Failed to start job consumer")
	}

	log.Info().Msg("Worker service started, waiting for jobs...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down worker service...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during graceful shutdown")
	}

	log.Info().Msg("Worker service exited")
}
