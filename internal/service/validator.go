package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/quran-dataset-check/internal/domain/entities"
)

// DatasetRepository loads the surah records to check.
type DatasetRepository interface {
	GetAll(ctx context.Context) ([]entities.Surah, error)
}

// DatasetValidator checks that every surah has text and collects the juz identifiers.
type DatasetValidator struct {
	repository DatasetRepository
	logger     *zap.Logger
}

// NewDatasetValidator creates a new DatasetValidator.
func NewDatasetValidator(repository DatasetRepository, logger *zap.Logger) *DatasetValidator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DatasetValidator{
		repository: repository,
		logger:     logger,
	}
}

// Validate loads the dataset and builds a report.
// Errors from the repository are returned unchanged so callers can match its sentinels.
func (v *DatasetValidator) Validate(ctx context.Context) (*entities.Report, error) {
	surahs, err := v.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := Check(surahs)

	v.logger.Debug("dataset checked",
		zap.Int("total", report.Total),
		zap.Int("missing_content", len(report.MissingContent)),
		zap.Int("distinct_juz", len(report.Juz)),
	)

	return report, nil
}

// Check runs both checks over an already loaded dataset.
func Check(surahs []entities.Surah) *entities.Report {
	report := &entities.Report{
		Total:          len(surahs),
		MissingContent: make([]string, 0),
	}

	juz := entities.NewJuzSet()
	for _, s := range surahs {
		if !s.HasContent() {
			report.MissingContent = append(report.MissingContent, s.Name())
		}
		juz.Add(s.Juz())
	}
	report.Juz = juz.Sorted()

	return report
}
