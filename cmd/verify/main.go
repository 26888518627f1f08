package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quran-dataset-check/internal/config"
	"github.com/aliskhannn/quran-dataset-check/internal/delivery/console"
	"github.com/aliskhannn/quran-dataset-check/internal/logger"
	"github.com/aliskhannn/quran-dataset-check/internal/repository"
	"github.com/aliskhannn/quran-dataset-check/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg, os.Stdout); err != nil {
		lg.Error("verify failed", zap.Error(err))
		_ = lg.Sync()
		stop()
		os.Exit(1)
	}
}

// run checks the configured dataset once and prints the result to out.
// A missing or malformed dataset is reported on out and is not an error.
func run(ctx context.Context, cfg *config.Config, lg *zap.Logger, out io.Writer) error {
	datasetRepo := repository.NewDatasetRepository(cfg.DatasetPath)
	validator := service.NewDatasetValidator(datasetRepo, lg)
	printer := console.NewPrinter(out, cfg.Output.SampleSize, cfg.Output.NoColor)

	lg.Debug("checking dataset", zap.String("path", datasetRepo.Path()))

	report, err := validator.Validate(ctx)
	var malformed *repository.MalformedError
	switch {
	case errors.Is(err, repository.ErrDatasetNotFound):
		lg.Warn("dataset not found", zap.String("path", datasetRepo.Path()))
		return printer.RenderNotFound(datasetRepo.Path())
	case errors.As(err, &malformed):
		lg.Warn("dataset is malformed", zap.String("path", datasetRepo.Path()), zap.Error(err))
		return printer.RenderParseError(malformed.Err)
	case err != nil:
		return err
	}

	return printer.RenderReport(report)
}
