package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateEstimatePDF godoc
// @Summary      Generate estimate PDF
// @Tags         Estimates
// @Param        id   path  int  true  "Estimate ID"
// @Success      200  "PDF file"
// @Failure      400  {object}  object
// @Failure      404  {object}  object
// @Router       /api/estimates/{id}/pdf [get]
func GenerateEstimatePDF(db *sql.DB) gin.HandlerFunc {
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

		var results models.EstimateResults
		if len(est.ResultsData) > 0 {
			if err := json.Unmarshal(est.ResultsData, &results); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode estimate results"})
				return
			}
		}

		// Fetch preparer details for the letterhead
		var companyName, firstName, lastName sql.NullString
		_ = db.QueryRow(`SELECT company_name, first_name, last_name FROM users WHERE id = $1`, userID).
			Scan(&companyName, &firstName, &lastName)

		// Optional client block
		var clientName, clientAddress, clientCity sql.NullString
		if est.ClientID != nil {
			_ = db.QueryRow(`SELECT name, address, CONCAT(city, ', ', state, ' ', zip_code) FROM clients WHERE id = $1`, *est.ClientID).
				Scan(&clientName, &clientAddress, &clientCity)
		}

		titleCaser := cases.Title(language.Und)

		// --- Generate PDF ---
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		// --- Header ---
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(190, 10, "ESTIMATE")
		pdf.Ln(12)

		pdf.SetFont("Arial", "", 10)
		if companyName.Valid && companyName.String != "" {
			pdf.Cell(190, 6, companyName.String)
			pdf.Ln(6)
		}
		if firstName.Valid {
			pdf.Cell(190, 6, "Prepared by: "+firstName.String+" "+lastName.String)
			pdf.Ln(6)
		}
		pdf.Ln(2)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(95, 8, est.EstimateName)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 8, "Estimate No: "+est.EstimateNumber)
		pdf.Ln(8)
		pdf.Cell(95, 6, titleCaser.String(est.CalculatorType)+" Estimate")
		pdf.Cell(95, 6, "Date: "+est.UpdatedAt.Format("2006-01-02"))
		pdf.Ln(10)

		if clientName.Valid && clientName.String != "" {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(190, 6, "Prepared For")
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 10)
			pdf.Cell(190, 5, clientName.String)
			pdf.Ln(5)
			if clientAddress.Valid && clientAddress.String != "" {
				pdf.Cell(190, 5, clientAddress.String)
				pdf.Ln(5)
			}
			if clientCity.Valid && clientCity.String != "" {
				pdf.Cell(190, 5, clientCity.String)
				pdf.Ln(5)
			}
			pdf.Ln(4)
		}

		// --- Line items table ---
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 8, "Quantity", "1", 0, "R", true, 0, "")
		pdf.CellFormat(35, 8, "Unit", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 8, "Cost", "1", 0, "R", true, 0, "")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, r := range results.Results {
			if r.IsTotal {
				continue
			}
			cost := ""
			if r.Cost > 0 {
				cost = fmt.Sprintf("$%.2f", r.Cost)
			}
			label := r.Label
			if r.IsWarning {
				label = "Note: " + label
			}
			pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", r.Value), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, r.Unit, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, cost, "1", 0, "R", false, 0, "")
			pdf.Ln(7)
		}

		// Total row
		for _, r := range results.Results {
			if !r.IsTotal {
				continue
			}
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(160, 8, r.Label, "1", 0, "R", true, 0, "")
			pdf.CellFormat(30, 8, fmt.Sprintf("$%.2f", r.Value), "1", 0, "R", true, 0, "")
			pdf.Ln(8)
		}

		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 5, "Material quantities are rounded up to whole purchasable units. Prices are estimates only.")

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=estimate_%s.pdf", est.EstimateNumber))

		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}
