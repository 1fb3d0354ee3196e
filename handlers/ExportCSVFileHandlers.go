package handlers

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func loadEstimateResults(c *gin.Context, db *sql.DB) (*models.SavedEstimate, []models.CalculationResult, bool) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, nil, false
	}

	estimateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return nil, nil, false
	}

	est, err := repository.FetchEstimateByID(db, estimateID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
		return nil, nil, false
	}

	var results models.EstimateResults
	if len(est.ResultsData) > 0 {
		if err := json.Unmarshal(est.ResultsData, &results); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode estimate results"})
			return nil, nil, false
		}
	}

	return est, results.Results, true
}

// ExportEstimateCSV godoc
// @Summary      Export estimate as CSV
// @Tags         export
// @Produce      text/csv
// @Param        id  path  int  true  "Estimate ID"
// @Success      200  {file}  file  "CSV file"
// @Failure      404  {object}  object
// @Router       /api/estimates/{id}/csv [get]
func ExportEstimateCSV(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		est, results, ok := loadEstimateResults(c, db)
		if !ok {
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=estimate_%s.csv", est.EstimateNumber))

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		header := []string{"Item", "Quantity", "Unit", "Cost"}
		if err := writer.Write(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV header"})
			return
		}

		for _, r := range results {
			cost := ""
			if r.Cost > 0 {
				cost = fmt.Sprintf("%.2f", r.Cost)
			}
			if r.IsTotal {
				cost = fmt.Sprintf("%.2f", r.Value)
			}
			row := []string{r.Label, fmt.Sprintf("%.2f", r.Value), r.Unit, cost}
			if err := writer.Write(row); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV row"})
				return
			}
		}
	}
}

// ExportEstimateXLSX godoc
// @Summary      Export estimate as Excel workbook
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  int  true  "Estimate ID"
// @Success      200  {file}  file  "XLSX file"
// @Failure      404  {object}  object
// @Router       /api/estimates/{id}/xlsx [get]
func ExportEstimateXLSX(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		est, results, ok := loadEstimateResults(c, db)
		if !ok {
			return
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Estimate"
		f.SetSheetName("Sheet1", sheet)

		// Summary block
		f.SetCellValue(sheet, "A1", "Estimate Number")
		f.SetCellValue(sheet, "B1", est.EstimateNumber)
		f.SetCellValue(sheet, "A2", "Estimate Name")
		f.SetCellValue(sheet, "B2", est.EstimateName)
		f.SetCellValue(sheet, "A3", "Calculator")
		f.SetCellValue(sheet, "B3", est.CalculatorType)
		f.SetCellValue(sheet, "A4", "Date")
		f.SetCellValue(sheet, "B4", est.UpdatedAt.Format("2006-01-02"))

		// Line item table
		headerRow := 6
		headers := []string{"Item", "Quantity", "Unit", "Cost"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
			f.SetCellValue(sheet, cell, h)
		}

		boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err == nil {
			startCell, _ := excelize.CoordinatesToCellName(1, headerRow)
			endCell, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
			f.SetCellStyle(sheet, startCell, endCell, boldStyle)
		}

		row := headerRow + 1
		for _, r := range results {
			labelCell, _ := excelize.CoordinatesToCellName(1, row)
			valueCell, _ := excelize.CoordinatesToCellName(2, row)
			unitCell, _ := excelize.CoordinatesToCellName(3, row)
			costCell, _ := excelize.CoordinatesToCellName(4, row)

			f.SetCellValue(sheet, labelCell, r.Label)
			f.SetCellValue(sheet, valueCell, r.Value)
			f.SetCellValue(sheet, unitCell, r.Unit)
			if r.IsTotal {
				f.SetCellValue(sheet, costCell, r.Value)
				if err == nil {
					f.SetCellStyle(sheet, labelCell, costCell, boldStyle)
				}
			} else if r.Cost > 0 {
				f.SetCellValue(sheet, costCell, r.Cost)
			}
			row++
		}

		f.SetColWidth(sheet, "A", "A", 36)
		f.SetColWidth(sheet, "B", "D", 14)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=estimate_%s.xlsx", est.EstimateNumber))

		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}
