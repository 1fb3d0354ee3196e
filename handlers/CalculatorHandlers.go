package handlers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resolverFor builds the price resolver for one calculate call using the
// authenticated user's override catalog when custom pricing is requested.
func resolverFor(c *gin.Context, gdb *gorm.DB, trade string, mode models.PricingMode) *services.Resolver {
	userID, ok := CurrentUserID(c)
	if !ok {
		return services.NewDefaultResolver()
	}
	return services.LoadResolver(gdb, userID, trade, mode)
}

// respondCalculation maps calculator output onto the wire. Validation
// failures are 422 so clients can distinguish "fill in this field" from a
// server fault; a catalog fetch failure is reported alongside the results
// computed on default prices.
func respondCalculation(c *gin.Context, r *services.Resolver, results []models.CalculationResult, err error) {
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := models.CalculationResponse{Results: results}
	if r.FetchErr != nil {
		resp.PricingError = "custom pricing unavailable, defaults applied"
	}
	c.JSON(http.StatusOK, resp)
}

// CalculateConcreteHandler estimates a concrete pour
// @Summary Calculate concrete estimate
// @Description Compute an itemized bill of materials for a slab or wall pour
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.ConcreteInput true "Pour measurements and options"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/concrete [post]
func CalculateConcreteHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.ConcreteInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "concrete", req.PricingMode)
		results, err := services.CalculateConcrete(req.ConcreteInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateFramingHandler estimates wall framing
// @Summary Calculate framing estimate
// @Description Compute studs, plates, headers and fasteners for a wall run
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.FramingInput true "Wall measurements and openings"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/framing [post]
func CalculateFramingHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.FramingInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "framing", req.PricingMode)
		results, err := services.CalculateFraming(req.FramingInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateFencingHandler estimates a fence build
// @Summary Calculate fencing estimate
// @Description Compute posts, sections, concrete and gates for a fence line
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.FencingInput true "Fence line measurements"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/fencing [post]
func CalculateFencingHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.FencingInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "fencing", req.PricingMode)
		results, err := services.CalculateFencing(req.FencingInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateFlooringHandler estimates a flooring install
// @Summary Calculate flooring estimate
// @Description Compute boxes, underlayment and transitions for a floor area
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.FlooringInput true "Room measurements and material"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/flooring [post]
func CalculateFlooringHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.FlooringInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "flooring", req.PricingMode)
		results, err := services.CalculateFlooring(req.FlooringInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateFoundationHandler estimates a foundation pour
// @Summary Calculate foundation estimate
// @Description Compute footings, walls, slab, reinforcement and drainage
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.FoundationInput true "Foundation dimensions"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/foundation [post]
func CalculateFoundationHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.FoundationInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "foundation", req.PricingMode)
		results, err := services.CalculateFoundation(req.FoundationInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateSidingHandler estimates a siding install
// @Summary Calculate siding estimate
// @Description Compute siding units, house wrap, corner posts and fasteners
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.SidingInput true "Wall sections and openings"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/siding [post]
func CalculateSidingHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.SidingInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "siding", req.PricingMode)
		results, err := services.CalculateSiding(req.SidingInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateTileHandler estimates a tile install
// @Summary Calculate tile estimate
// @Description Compute tile boxes, thinset, grout and substrate for an area
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.TileInput true "Area and tile selection"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/tile [post]
func CalculateTileHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.TileInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "tile", req.PricingMode)
		results, err := services.CalculateTile(req.TileInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculatePlumbingHandler estimates a plumbing rough-in
// @Summary Calculate plumbing estimate
// @Description Compute fixture rough-ins, supply runs, fittings and sewer line
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.PlumbingInput true "Fixtures and piping runs"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/plumbing [post]
func CalculatePlumbingHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.PlumbingInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "plumbing", req.PricingMode)
		results, err := services.CalculatePlumbing(req.PlumbingInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateElectricalHandler estimates electrical rough-in
// @Summary Calculate electrical estimate
// @Description Compute breakers, wire rolls, devices and boxes per circuit
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.ElectricalInput true "Circuits and device counts"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/electrical [post]
func CalculateElectricalHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.ElectricalInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "electrical", req.PricingMode)
		results, err := services.CalculateElectrical(req.ElectricalInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculatePaintHandler estimates a paint job
// @Summary Calculate paint estimate
// @Description Compute paint gallons, primer, tape and supplies for walls
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.PaintInput true "Wall sections, coats and quality"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/paint [post]
func CalculatePaintHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.PaintInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "paint", req.PricingMode)
		results, err := services.CalculatePaint(req.PaintInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateJunkRemovalHandler estimates a junk haul
// @Summary Calculate junk removal estimate
// @Description Compute hauling charge, mileage and access surcharges
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.JunkRemovalInput true "Items, distance and access"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/junk-removal [post]
func CalculateJunkRemovalHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.JunkRemovalInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "junk_removal", req.PricingMode)
		results, err := services.CalculateJunkRemoval(req.JunkRemovalInput, r)
		respondCalculation(c, r, results, err)
	}
}

// CalculateVeneerHandler estimates a veneer install
// @Summary Calculate veneer estimate
// @Description Compute flats, corners, lath and mortar coats for a veneer wall
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body models.VeneerInput true "Wall area and veneer type"
// @Success 200 {object} models.CalculationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/calculators/veneer [post]
func CalculateVeneerHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			models.VeneerInput
			PricingMode models.PricingMode `json:"pricing_mode"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		r := resolverFor(c, gdb, "veneer", req.PricingMode)
		results, err := services.CalculateVeneer(req.VeneerInput, r)
		respondCalculation(c, r, results, err)
	}
}
