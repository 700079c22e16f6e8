package handler

import (
	"math"
	"net/http"
	"time"

	"floorplan-compliance-backend/internal/models"
	"floorplan-compliance-backend/internal/service"
	"floorplan-compliance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	buildingCodeService *service.BuildingCodeService
	vastuService        *service.VastuService
	sunlightService     *service.SunlightService
	analysisService     *service.AnalysisService
}

func NewAnalysisHandler(
	buildingCodeService *service.BuildingCodeService,
	vastuService *service.VastuService,
	sunlightService *service.SunlightService,
	analysisService *service.AnalysisService,
) *AnalysisHandler {
	return &AnalysisHandler{
		buildingCodeService: buildingCodeService,
		vastuService:        vastuService,
		sunlightService:     sunlightService,
		analysisService:     analysisService,
	}
}

type AnalysisRequest struct {
	FloorPlan     models.FloorPlan `json:"floor_plan" binding:"required"`
	AnalysisTypes []string         `json:"analysis_types"`
	StrictMode    bool             `json:"strict_mode"`
	Location      string           `json:"location"`
}

// bindFloorPlan parses and validates the request body. The engine itself
// assumes a valid plan, so every structural violation stops here with a 400.
func (h *AnalysisHandler) bindFloorPlan(c *gin.Context) (*models.FloorPlan, bool) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	plan := req.FloorPlan
	plan.Normalize()
	if err := plan.Validate(); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid floor plan: "+err.Error())
		return nil, false
	}
	return &plan, true
}

// AnalyzeBuildingCodes runs the building code evaluator only
func (h *AnalysisHandler) AnalyzeBuildingCodes(c *gin.Context) {
	plan, ok := h.bindFloorPlan(c)
	if !ok {
		return
	}

	start := time.Now()
	analysis := h.buildingCodeService.Analyze(plan)

	utils.AnalysisResponse(c, "Building code analysis completed successfully", gin.H{
		"analysis": analysis,
		"summary":  h.buildingCodeService.Summary(analysis),
	}, elapsedSeconds(start))
}

// AnalyzeVastu runs the Vastu Shastra evaluator only
func (h *AnalysisHandler) AnalyzeVastu(c *gin.Context) {
	plan, ok := h.bindFloorPlan(c)
	if !ok {
		return
	}

	start := time.Now()
	analysis := h.vastuService.Analyze(plan)

	utils.AnalysisResponse(c, "Vastu Shastra analysis completed successfully", gin.H{
		"analysis": analysis,
		"summary":  h.vastuService.Summary(analysis),
	}, elapsedSeconds(start))
}

// AnalyzeSunlight runs the sunlight evaluator only
func (h *AnalysisHandler) AnalyzeSunlight(c *gin.Context) {
	plan, ok := h.bindFloorPlan(c)
	if !ok {
		return
	}

	start := time.Now()
	analysis := h.sunlightService.Analyze(plan)

	utils.AnalysisResponse(c, "Sunlight optimization analysis completed successfully", gin.H{
		"analysis": analysis,
		"summary":  h.sunlightService.Summary(analysis),
	}, elapsedSeconds(start))
}

// AnalyzeComplete runs all three evaluators and the aggregation
func (h *AnalysisHandler) AnalyzeComplete(c *gin.Context) {
	plan, ok := h.bindFloorPlan(c)
	if !ok {
		return
	}

	start := time.Now()
	complete := h.analysisService.AnalyzeComplete(plan)

	utils.AnalysisResponse(c, "Complete floor plan analysis completed successfully",
		complete, elapsedSeconds(start))
}

// GetAnalysisTypes lists the available analysis types and their categories
func (h *AnalysisHandler) GetAnalysisTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"analysis_types": []gin.H{
			{
				"id":          "building_code",
				"name":        "Building Code Compliance",
				"description": "Checks room sizes, ventilation, exits, and structural requirements",
				"categories":  []string{"Room Size", "Ventilation", "Emergency Egress", "Structural"},
			},
			{
				"id":          "vastu",
				"name":        "Vastu Shastra",
				"description": "Analyzes directional placement according to Vastu principles",
				"categories":  []string{"Main Entrance", "Kitchen Placement", "Bedroom Directions", "Pooja Room"},
			},
			{
				"id":          "sunlight",
				"name":        "Sunlight Optimization",
				"description": "Evaluates natural light access and seasonal considerations",
				"categories":  []string{"Morning Light", "Kitchen Lighting", "Living Area Brightness", "Seasonal Comfort"},
			},
		},
	})
}

// elapsedSeconds reports seconds since start rounded to milliseconds
func elapsedSeconds(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*1000) / 1000
}
