package services

import (
	"context"
	"os"

	"weather-export/internal/domain"
	"weather-export/internal/errors"
	"weather-export/internal/export"
	"weather-export/internal/logging"
)

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	openRepo  RepositoryOpener
	exportDir string
	dirPerm   os.FileMode
	mapper    *domain.Mapper
}

// NewExportService creates a new ExportService writing into exportDir
func NewExportService(openRepo RepositoryOpener, exportDir string, dirPerm os.FileMode) ExportService {
	return &exportServiceImpl{
		openRepo:  openRepo,
		exportDir: exportDir,
		dirPerm:   dirPerm,
		mapper:    domain.NewMapper(),
	}
}

// Export runs the query and write stages. The export directory is created
// before the store is touched, whatever the outcome. The store handle is
// released on every return path.
func (s *exportServiceImpl) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if err := os.MkdirAll(s.exportDir, s.dirPerm); err != nil {
		return nil, errors.NewWriteError("create export directory", s.exportDir, err)
	}

	repo, err := s.openRepo(ctx)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewStoreError("open store", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logging.Errorw("closing weather store", "error", cerr)
		}
	}()

	logging.Debugw("querying readings",
		"start", req.Range.Start,
		"end_exclusive", req.Range.ExclusiveEnd(),
	)

	readings, err := repo.ReadingsInRange(ctx, req.Range.Start, req.Range.ExclusiveEnd())
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Range: req.Range, RowCount: len(readings)}
	if result.Empty() {
		return result, nil
	}

	records := s.mapper.WeatherRecord.FromDatabaseSlice(readings)
	path := export.Path(s.exportDir, req.StartInput, req.EndInput)
	if err := export.WriteFile(path, records); err != nil {
		return nil, err
	}

	logging.Debugf("wrote %d rows to %s", len(records), path)
	result.Path = path
	return result, nil
}
