package repository

import (
	"backend/models"
	"backend/utils"
	"database/sql"
	"encoding/json"
	"fmt"
)

// GenerateEstimateNumber produces a human-readable estimate number in the
// format "ES" followed by a six digit sequence, e.g. "ES104233".
func GenerateEstimateNumber(db *sql.DB) (string, error) {
	ctx, cancel := utils.GetFastQueryContext(nil)
	defer cancel()

	var last sql.NullString
	err := db.QueryRowContext(ctx, `SELECT estimate_number FROM saved_estimates ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to fetch last estimate number: %w", err)
	}

	next := 100001
	if last.Valid && len(last.String) > 2 {
		var seq int
		if _, scanErr := fmt.Sscanf(last.String, "ES%d", &seq); scanErr == nil {
			next = seq + 1
		}
	}

	return fmt.Sprintf("ES%06d", next), nil
}

// ScanEstimateRow scans a full saved_estimates row in column order.
// results_data and share_code are nullable (an estimate can be saved without
// results and is unshared until the first share call), so they scan through
// intermediates instead of directly into the model fields.
func ScanEstimateRow(row interface {
	Scan(dest ...interface{}) error
}, est *models.SavedEstimate) error {
	var resultsData []byte
	var shareCode sql.NullString
	if err := row.Scan(
		&est.ID,
		&est.EstimateNumber,
		&est.CalculatorType,
		&est.EstimateName,
		&est.EstimateData,
		&resultsData,
		&est.ClientID,
		&shareCode,
		&est.CreatedBy,
		&est.CreatedAt,
		&est.UpdatedAt,
	); err != nil {
		return err
	}
	if len(resultsData) > 0 {
		est.ResultsData = json.RawMessage(resultsData)
	}
	est.ShareCode = shareCode.String
	return nil
}

// FetchEstimateByID retrieves a single saved estimate owned by the given user.
func FetchEstimateByID(db *sql.DB, estimateID int, userID int) (*models.SavedEstimate, error) {
	query := `
		SELECT id, estimate_number, calculator_type, estimate_name, estimate_data,
		       results_data, client_id, share_code, created_by, created_at, updated_at
		FROM saved_estimates
		WHERE id = $1 AND created_by = $2
	`
	ctx, cancel := utils.GetFastQueryContext(nil)
	defer cancel()
	row := db.QueryRowContext(ctx, query, estimateID, userID)

	var est models.SavedEstimate
	if err := ScanEstimateRow(row, &est); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("estimate %d not found", estimateID)
		}
		return nil, fmt.Errorf("failed to fetch estimate %d: %w", estimateID, err)
	}
	return &est, nil
}

// FetchEstimateByShareCode retrieves a saved estimate via its public share code.
func FetchEstimateByShareCode(db *sql.DB, shareCode string) (*models.SavedEstimate, error) {
	query := `
		SELECT id, estimate_number, calculator_type, estimate_name, estimate_data,
		       results_data, client_id, share_code, created_by, created_at, updated_at
		FROM saved_estimates
		WHERE share_code = $1
	`
	ctx, cancel := utils.GetFastQueryContext(nil)
	defer cancel()
	row := db.QueryRowContext(ctx, query, shareCode)

	var est models.SavedEstimate
	if err := ScanEstimateRow(row, &est); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no estimate for share code %s", shareCode)
		}
		return nil, fmt.Errorf("failed to fetch shared estimate: %w", err)
	}
	return &est, nil
}
