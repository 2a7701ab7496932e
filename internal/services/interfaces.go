package services

import (
	"context"

	"weather-export/internal/domain"
	"weather-export/internal/repository/sqlite"
)

// ExportRequest carries a validated range together with the raw operator
// input the output file is named after.
type ExportRequest struct {
	StartInput string
	EndInput   string
	Range      domain.DateRange
}

// ExportResult describes a finished export
type ExportResult struct {
	Range    domain.DateRange
	RowCount int
	// Path is empty when no rows matched and no file was written
	Path string
}

// Empty reports the no-data outcome
func (r *ExportResult) Empty() bool {
	return r.RowCount == 0
}

// RepositoryOpener acquires a store handle for a single export run
type RepositoryOpener func(ctx context.Context) (sqlite.Repository, error)

// ExportService runs the query and write stages of an export
type ExportService interface {
	// Export ensures the export directory, reads the range and writes the CSV
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}
