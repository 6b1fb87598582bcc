package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/legend-harry/pranir-aquatech/internal/config"
	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Repository defines the read operations supported by the price history
// spreadsheet adapter.
type Repository interface {
	ReadPriceHistory(ctx context.Context) ([]models.PricePoint, error)
}

// PriceHistoryRepository reads ordered market price observations from a
// Google Sheet maintained by the ops team.
type PriceHistoryRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	priceRange    string
	logger        *zap.Logger
}

// NewPriceHistoryRepository builds a Google Sheets backed price history
// repository instance.
func NewPriceHistoryRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &PriceHistoryRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		priceRange:    cfg.PriceRange,
		logger:        logger,
	}, nil
}

// ReadPriceHistory fetches the configured range and parses it into an ordered
// price series. Malformed rows (headers included) are skipped, not fatal.
func (r *PriceHistoryRepository) ReadPriceHistory(ctx context.Context) ([]models.PricePoint, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.priceRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", r.priceRange, err)
	}

	points := make([]models.PricePoint, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) < 2 {
			continue
		}

		date, err := parseDate(row[0])
		if err != nil {
			r.logger.Debug("skip price row with invalid date", zap.Any("value", row[0]), zap.Error(err))
			continue
		}

		price, err := parseFloat(row[1])
		if err != nil {
			r.logger.Debug("skip price row with invalid price", zap.Any("value", row[1]), zap.Error(err))
			continue
		}

		points = append(points, models.PricePoint{Date: date, Price: price})
	}

	r.logger.Debug("price history loaded", zap.Int("points", len(points)))
	return points, nil
}

func parseDate(value interface{}) (time.Time, error) {
	str := fmt.Sprint(value)
	if str == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(str) > 10 {
		str = str[:10]
	}
	return time.Parse(dateLayout, str)
}

func parseFloat(value interface{}) (float64, error) {
	str := fmt.Sprint(value)
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(str, 64)
}
