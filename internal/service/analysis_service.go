package service

import (
	"math"
	"sort"
	"time"

	"floorplan-compliance-backend/internal/models"

	"github.com/google/uuid"
)

// Weights for the overall compliance score. Building codes dominate since
// they are safety-critical; Vastu and sunlight are softer concerns.
const (
	buildingCodeWeight = 0.5
	vastuWeight        = 0.3
	sunlightWeight     = 0.2
)

const (
	maxPriorityIssues   = 10
	maxRecommendations  = 5
	priorityWarningRoom = 5
	priorityIntakeCap   = 8
)

// AnalysisService runs all three evaluators and aggregates their results
// into a single report. The evaluators are independent and stateless, so
// any run order yields the same result.
type AnalysisService struct {
	buildingCode *BuildingCodeService
	vastu        *VastuService
	sunlight     *SunlightService
}

func NewAnalysisService(
	buildingCode *BuildingCodeService,
	vastu *VastuService,
	sunlight *SunlightService,
) *AnalysisService {
	return &AnalysisService{
		buildingCode: buildingCode,
		vastu:        vastu,
		sunlight:     sunlight,
	}
}

// AnalyzeComplete evaluates the plan against all three rule sets and builds
// the combined report with priority issues and top recommendations.
func (s *AnalysisService) AnalyzeComplete(plan *models.FloorPlan) *models.CompleteAnalysis {
	buildingCode := s.buildingCode.Analyze(plan)
	vastu := s.vastu.Analyze(plan)
	sunlight := s.sunlight.Analyze(plan)

	return &models.CompleteAnalysis{
		FloorPlanID:            uuid.NewString(),
		Timestamp:              time.Now().Format(time.RFC3339),
		BuildingCode:           *buildingCode,
		Vastu:                  *vastu,
		Sunlight:               *sunlight,
		OverallComplianceScore: overallScore(buildingCode, vastu, sunlight),
		PriorityIssues:         collectPriorityIssues(buildingCode, vastu, sunlight),
		Recommendations:        topRecommendations(buildingCode, vastu, sunlight),
	}
}

// overallScore computes the weighted composite score, rounded to 1 decimal
func overallScore(
	buildingCode *models.BuildingCodeAnalysis,
	vastu *models.VastuAnalysis,
	sunlight *models.SunlightAnalysis,
) float64 {
	score := buildingCode.CompliancePercentage*buildingCodeWeight +
		vastu.VastuScore*vastuWeight +
		sunlight.SunlightScore*sunlightWeight
	return math.Round(score*10) / 10
}

// collectPriorityIssues gathers non_compliant issues from all three
// analyses, tops up with warnings when few critical issues exist, then
// sorts by severity rank. The sort is stable, so ties keep encounter order
// within a severity bucket.
func collectPriorityIssues(
	buildingCode *models.BuildingCodeAnalysis,
	vastu *models.VastuAnalysis,
	sunlight *models.SunlightAnalysis,
) []models.ComplianceIssue {
	priority := make([]models.ComplianceIssue, 0)

	allIssues := make([]models.ComplianceIssue, 0,
		len(buildingCode.Issues)+len(vastu.Issues)+len(sunlight.Issues))
	allIssues = append(allIssues, buildingCode.Issues...)
	allIssues = append(allIssues, vastu.Issues...)
	allIssues = append(allIssues, sunlight.Issues...)

	for _, issue := range allIssues {
		if issue.Severity == models.StatusNonCompliant {
			priority = append(priority, issue)
		}
	}

	if len(priority) < priorityWarningRoom {
		for _, issue := range allIssues {
			if issue.Severity == models.StatusWarning && len(priority) < priorityIntakeCap {
				priority = append(priority, issue)
			}
		}
	}

	sort.SliceStable(priority, func(i, j int) bool {
		return priority[i].Severity.Rank() < priority[j].Severity.Rank()
	})

	if len(priority) > maxPriorityIssues {
		priority = priority[:maxPriorityIssues]
	}
	return priority
}

// topRecommendations derives up to 5 top-level recommendations from the
// aspect scores and sub-statuses. A clean report gets one generic line; a
// report with too many problem areas collapses to general guidance.
func topRecommendations(
	buildingCode *models.BuildingCodeAnalysis,
	vastu *models.VastuAnalysis,
	sunlight *models.SunlightAnalysis,
) []string {
	var recommendations []string

	if buildingCode.CompliancePercentage < 70 {
		recommendations = append(recommendations, "Address critical building code violations for safety compliance")
	}
	if !buildingCode.MinimumRoomSizesMet {
		recommendations = append(recommendations, "Expand undersized rooms to meet minimum area requirements")
	}
	if !buildingCode.VentilationAdequate {
		recommendations = append(recommendations, "Add windows or ventilation systems for adequate air circulation")
	}

	if vastu.VastuScore < 70 {
		if vastu.KitchenPlacement == models.StatusNonCompliant {
			recommendations = append(recommendations, "Consider relocating kitchen to South-East direction for better Vastu")
		}
		if vastu.MainEntranceDirection == models.StatusNonCompliant {
			recommendations = append(recommendations, "Optimize main entrance direction for positive energy flow")
		}
	}

	if sunlight.SunlightScore < 60 {
		if sunlight.MorningLightAccess == models.StatusNonCompliant {
			recommendations = append(recommendations, "Add East-facing windows for better morning light in bedrooms")
		}
		if sunlight.KitchenNaturalLight == models.StatusNonCompliant {
			recommendations = append(recommendations, "Improve natural lighting in kitchen for better food preparation")
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Floor plan shows good overall compliance - consider minor optimizations")
	} else if len(recommendations) > 6 {
		recommendations = []string{
			"Focus on building code compliance first for safety",
			"Address room sizing and ventilation issues",
			"Optimize room directions for better functionality",
			"Improve natural lighting throughout the home",
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
