package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"backend/models"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveEstimateHandler saves a calculator snapshot
// @Summary Save estimate
// @Description Persist a named snapshot of a calculator's inputs and results
// @Tags Estimates
// @Accept json
// @Produce json
// @Param request body models.SavedEstimate true "Estimate snapshot"
// @Success 201 {object} models.SavedEstimate
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/estimates [post]
func SaveEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var est models.SavedEstimate
		if err := c.ShouldBindJSON(&est); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		if len(est.EstimateData) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "estimate_data is required"})
			return
		}

		// Snapshot inputs are stored verbatim; the calculator re-validates
		// them on the next calculate call.
		if !json.Valid(est.EstimateData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "estimate_data must be valid JSON"})
			return
		}
		if len(est.ResultsData) > 0 && !json.Valid(est.ResultsData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "results_data must be valid JSON"})
			return
		}

		estimateNumber, err := repository.GenerateEstimateNumber(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate estimate number", "details": err.Error()})
			return
		}

		query := `
			INSERT INTO saved_estimates
				(estimate_number, calculator_type, estimate_name, estimate_data, results_data, client_id, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING id, created_at, updated_at`

		var resultsData interface{}
		if len(est.ResultsData) > 0 {
			resultsData = []byte(est.ResultsData)
		}

		ctx, cancel := utils.GetDefaultQueryContext(c.Request.Context())
		defer cancel()

		err = db.QueryRowContext(ctx, query,
			estimateNumber, est.CalculatorType, est.EstimateName,
			[]byte(est.EstimateData), resultsData, est.ClientID, userID,
		).Scan(&est.ID, &est.CreatedAt, &est.UpdatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save estimate", "details": err.Error()})
			return
		}

		est.EstimateNumber = estimateNumber
		est.CreatedBy = userID

		c.JSON(http.StatusCreated, est)
	}
}

// ListEstimatesHandler lists saved estimates
// @Summary List estimates
// @Description List the authenticated user's saved estimates, optionally filtered by calculator type or client
// @Tags Estimates
// @Produce json
// @Param calculator_type query string false "Calculator type filter"
// @Param client_id query int false "Client filter"
// @Success 200 {array} models.EstimateListItem
// @Failure 500 {object} models.ErrorResponse
// @Router /api/estimates [get]
func ListEstimatesHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		query := `
			SELECT e.id, e.estimate_number, e.calculator_type, e.estimate_name,
			       e.client_id, COALESCE(cl.name, ''), e.created_at, e.updated_at
			FROM saved_estimates e
			LEFT JOIN clients cl ON e.client_id = cl.id
			WHERE e.created_by = $1`
		args := []interface{}{userID}

		if calcType := c.Query("calculator_type"); calcType != "" {
			args = append(args, calcType)
			query += ` AND e.calculator_type = $` + strconv.Itoa(len(args))
		}
		if clientID := c.Query("client_id"); clientID != "" {
			id, err := strconv.Atoi(clientID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id"})
				return
			}
			args = append(args, id)
			query += ` AND e.client_id = $` + strconv.Itoa(len(args))
		}
		query += ` ORDER BY e.updated_at DESC`

		ctx, cancel := utils.GetDefaultQueryContext(c.Request.Context())
		defer cancel()

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimates", "details": err.Error()})
			return
		}
		defer rows.Close()

		estimates := []models.EstimateListItem{}
		for rows.Next() {
			var item models.EstimateListItem
			if err := rows.Scan(
				&item.ID, &item.EstimateNumber, &item.CalculatorType, &item.EstimateName,
				&item.ClientID, &item.ClientName, &item.CreatedAt, &item.UpdatedAt,
			); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan estimate", "details": err.Error()})
				return
			}
			estimates = append(estimates, item)
		}

		c.JSON(http.StatusOK, estimates)
	}
}

// GetEstimateHandler loads one saved estimate
// @Summary Get estimate
// @Description Load a saved estimate's snapshot inputs and results
// @Tags Estimates
// @Produce json
// @Param id path int true "Estimate ID"
// @Success 200 {object} models.SavedEstimate
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id} [get]
func GetEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		estimateID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
			return
		}

		est, err := repository.FetchEstimateByID(db, estimateID, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}

		c.JSON(http.StatusOK, est)
	}
}

// UpdateEstimateHandler updates a saved estimate
// @Summary Update estimate
// @Description Replace a saved estimate's name, snapshot and results
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path int true "Estimate ID"
// @Param request body models.SavedEstimate true "Updated snapshot"
// @Success 200 {object} models.SavedEstimate
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id} [put]
func UpdateEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		estimateID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
			return
		}

		var est models.SavedEstimate
		if err := c.ShouldBindJSON(&est); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		if len(est.EstimateData) == 0 || !json.Valid(est.EstimateData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "estimate_data must be valid JSON"})
			return
		}
		if len(est.ResultsData) > 0 && !json.Valid(est.ResultsData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "results_data must be valid JSON"})
			return
		}

		var resultsData interface{}
		if len(est.ResultsData) > 0 {
			resultsData = []byte(est.ResultsData)
		}

		ctx, cancel := utils.GetDefaultQueryContext(c.Request.Context())
		defer cancel()

		result, err := db.ExecContext(ctx, `
			UPDATE saved_estimates
			SET estimate_name = $1, estimate_data = $2, results_data = $3, client_id = $4, updated_at = NOW()
			WHERE id = $5 AND created_by = $6`,
			est.EstimateName, []byte(est.EstimateData), resultsData, est.ClientID, estimateID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update estimate", "details": err.Error()})
			return
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}

		updated, err := repository.FetchEstimateByID(db, estimateID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload estimate", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteEstimateHandler deletes a saved estimate
// @Summary Delete estimate
// @Description Delete a saved estimate owned by the authenticated user
// @Tags Estimates
// @Produce json
// @Param id path int true "Estimate ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id} [delete]
func DeleteEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		estimateID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
			return
		}

		result, err := db.Exec(`DELETE FROM saved_estimates WHERE id = $1 AND created_by = $2`, estimateID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete estimate", "details": err.Error()})
			return
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Estimate deleted"})
	}
}

// ShareEstimateHandler issues a public share code
// @Summary Share estimate
// @Description Generate (or return the existing) public share code for an estimate
// @Tags Estimates
// @Produce json
// @Param id path int true "Estimate ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id}/share [post]
func ShareEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		estimateID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
			return
		}

		est, err := repository.FetchEstimateByID(db, estimateID, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}

		if est.ShareCode == "" {
			est.ShareCode = uuid.NewString()
			_, err = db.Exec(`UPDATE saved_estimates SET share_code = $1, updated_at = NOW() WHERE id = $2`, est.ShareCode, est.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save share code", "details": err.Error()})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"share_code": est.ShareCode})
	}
}

// GetSharedEstimateHandler loads an estimate by share code
// @Summary Get shared estimate
// @Description Load a shared estimate snapshot without authentication
// @Tags Estimates
// @Produce json
// @Param code path string true "Share code"
// @Success 200 {object} models.SavedEstimate
// @Failure 404 {object} models.ErrorResponse
// @Router /api/shared/{code} [get]
func GetSharedEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Share code is required"})
			return
		}

		est, err := repository.FetchEstimateByShareCode(db, code)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shared estimate not found"})
			return
		}

		// Shared view is read-only; strip ownership info.
		est.CreatedBy = 0
		c.JSON(http.StatusOK, est)
	}
}

// EmailEstimateHandler emails an estimate summary
// @Summary Email estimate
// @Description Send the estimate's itemized results to a recipient over SMTP
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path int true "Estimate ID"
// @Param request body object true "Recipient" SchemaExample({"to": "client@example.com"})
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/estimates/{id}/email [post]
func EmailEstimateHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		estimateID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
			return
		}

		var req struct {
			To string `json:"to" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient email is required"})
			return
		}

		est, err := repository.FetchEstimateByID(db, estimateID, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}

		var results models.EstimateResults
		if len(est.ResultsData) > 0 {
			if err := json.Unmarshal(est.ResultsData, &results); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode estimate results", "details": err.Error()})
				return
			}
		}

		emailService := services.NewEmailService()
		if err := emailService.SendEstimateEmail(req.To, est.EstimateName, results.Results); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Estimate emailed to " + req.To})
	}
}
