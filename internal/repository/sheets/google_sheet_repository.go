package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/khamar/internal/config"
	"github.com/mamadbah2/khamar/internal/domain/models"
)

const summaryRange = "Summary!A:H"

// GoogleSheetRepository appends rows through the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed exporter.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSummary writes one row per summary, monetary values rounded by the sheet.
func (r *GoogleSheetRepository) AppendSummary(ctx context.Context, summary models.MonthlySummary) error {
	return r.writeRow(ctx, summaryRange, SummaryRow(summary))
}

// SummaryRow lays a summary out in sheet column order.
func SummaryRow(s models.MonthlySummary) []interface{} {
	return []interface{}{
		s.Period,
		s.Month,
		s.TotalEggProduction,
		s.TotalEggRevenue,
		s.TotalFeedExpenses,
		s.TotalMedicineExpenses,
		s.TotalExpenses,
		s.ProfitOrLoss,
	}
}

func (r *GoogleSheetRepository) writeRow(ctx context.Context, sheetRange string, values []interface{}) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("row appended to sheet", zap.String("range", sheetRange))
	return nil
}
