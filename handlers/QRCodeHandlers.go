package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"
	"os"
	"strconv"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// addLabel adds text to an image at the specified position
func addLabel(img *image.RGBA, x, y int, label string) {
	col := color.RGBA{0, 0, 0, 255}
	face := inconsolata.Regular8x16

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// addLabelBold adds bold text for caption labels
func addLabelBold(img *image.RGBA, x, y int, label string) {
	col := color.RGBA{30, 30, 30, 255}
	face := inconsolata.Bold8x16

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// GenerateEstimateQRCode godoc
// @Summary      Generate share QR code as JPEG
// @Description  Encode the estimate's public share URL in a captioned QR image
// @Tags         Estimates
// @Param        id   path      int  true  "Estimate ID"
// @Success      200  {file}    file  "JPEG image"
// @Failure      400  {object}  object
// @Router       /api/estimates/{id}/qr [get]
func GenerateEstimateQRCode(db *sql.DB) gin.HandlerFunc {
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

		// Issue a share code on first QR request so the link resolves.
		if est.ShareCode == "" {
			est.ShareCode = uuid.NewString()
			if _, err := db.Exec(`UPDATE saved_estimates SET share_code = $1, updated_at = NOW() WHERE id = $2`, est.ShareCode, est.ID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save share code"})
				return
			}
		}

		baseURL := os.Getenv("PUBLIC_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		shareURL := baseURL + "/api/shared/" + est.ShareCode

		// Pull the estimate total for the caption
		totalStr := ""
		var results models.EstimateResults
		if len(est.ResultsData) > 0 && json.Unmarshal(est.ResultsData, &results) == nil {
			for _, r := range results.Results {
				if r.IsTotal {
					totalStr = fmt.Sprintf("$%.2f", r.Value)
				}
			}
		}

		qr, err := qrcode.New(shareURL, qrcode.Medium)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR code generation failed")
			return
		}

		qrImg := qr.Image(512)

		qrSize := qrImg.Bounds().Dy()
		padding := 30
		lineHeight := 28
		textAreaHeight := 3*lineHeight + padding
		totalHeight := qrSize + padding + textAreaHeight

		combinedImg := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
		draw.Draw(combinedImg, combinedImg.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

		qrRect := image.Rect(0, 0, qrSize, qrSize)
		draw.Draw(combinedImg, qrRect, qrImg, image.Point{}, draw.Src)

		separatorY := qrSize + padding/2
		for x := 0; x < qrSize; x++ {
			combinedImg.Set(x, separatorY, color.RGBA{200, 200, 200, 255})
		}

		startY := qrSize + padding + lineHeight
		xPos := 20

		nameDisplay := est.EstimateName
		if len(nameDisplay) > 30 {
			nameDisplay = nameDisplay[:27] + "..."
		}

		addLabelBold(combinedImg, xPos, startY, "Estimate:")
		addLabel(combinedImg, xPos+120, startY, est.EstimateNumber)

		addLabelBold(combinedImg, xPos, startY+lineHeight, "Name:")
		addLabel(combinedImg, xPos+120, startY+lineHeight, nameDisplay)

		addLabelBold(combinedImg, xPos, startY+2*lineHeight, "Total:")
		if totalStr == "" {
			totalStr = "N/A"
		}
		addLabel(combinedImg, xPos+120, startY+2*lineHeight, totalStr)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, combinedImg, nil); err != nil {
			c.String(http.StatusInternalServerError, "JPEG encoding failed")
			return
		}

		c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
	}
}
