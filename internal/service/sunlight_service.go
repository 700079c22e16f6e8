package service

import (
	"fmt"
	"strings"

	"floorplan-compliance-backend/internal/models"
	"floorplan-compliance-backend/internal/rules"

	"github.com/samber/lo"
)

// SunlightService evaluates natural light access: morning light, kitchen and
// living area brightness, window placement and seasonal patterns. Solar
// intensities are illustrative constants, not a solar-position model.
type SunlightService struct {
	rules *rules.SunlightRules
}

func NewSunlightService(r *rules.Rules) *SunlightService {
	return &SunlightService{
		rules: &r.Sunlight,
	}
}

// Analyze runs all sunlight checks and rolls them up into one analysis
func (s *SunlightService) Analyze(plan *models.FloorPlan) *models.SunlightAnalysis {
	morningIssues := s.checkMorningLightAccess(plan.Rooms)
	kitchenIssues := s.checkKitchenNaturalLight(plan.Rooms)
	livingIssues := s.checkLivingAreaBrightness(plan.Rooms)
	windowIssues := s.checkWindowOptimization(plan.Rooms)
	seasonalIssues := s.checkSeasonalConsiderations(plan)

	issues := make([]models.ComplianceIssue, 0,
		len(morningIssues)+len(kitchenIssues)+len(livingIssues)+len(windowIssues)+len(seasonalIssues))
	issues = append(issues, morningIssues...)
	issues = append(issues, kitchenIssues...)
	issues = append(issues, livingIssues...)
	issues = append(issues, windowIssues...)
	issues = append(issues, seasonalIssues...)

	score := s.calculateScore(plan.Rooms, issues)

	var overallStatus models.ComplianceStatus
	switch {
	case score >= 80:
		overallStatus = models.StatusCompliant
	case score >= 60:
		overallStatus = models.StatusWarning
	default:
		overallStatus = models.StatusNonCompliant
	}

	return &models.SunlightAnalysis{
		OverallStatus:          overallStatus,
		SunlightScore:          score,
		Issues:                 issues,
		MorningLightAccess:     models.WorstStatus(morningIssues),
		KitchenNaturalLight:    kitchenStatus(models.IssuesWithAspect(issues, models.AspectKitchenLight)),
		LivingAreaBrightness:   models.WorstStatus(livingIssues),
		SeasonalConsiderations: s.seasonalRecommendations(plan),
	}
}

// lightQuality scores a room's expected natural light on a 0-100 scale from
// its facing direction, window count and size. Zero windows means zero light.
func (s *SunlightService) lightQuality(room *models.Room) float64 {
	if room.Windows == 0 {
		return 0
	}

	baseIntensity, ok := s.rules.SolarIntensity[room.Direction]
	if !ok {
		baseIntensity = 30
	}

	// Extra windows help with diminishing returns
	windowMultiplier := 1.0 + float64(room.Windows-1)*0.3
	if windowMultiplier > 2.0 {
		windowMultiplier = 2.0
	}

	// Larger rooms need more light; 100 sq ft is the baseline
	areaFactor := room.Area / 100.0
	if areaFactor > 1.5 {
		areaFactor = 1.5
	}
	sizeAdjustment := 1.0
	if areaFactor > 1.0 {
		sizeAdjustment = 1.0 / areaFactor
	}

	quality := baseIntensity * windowMultiplier * sizeAdjustment
	if quality > 100 {
		quality = 100
	}
	return quality
}

// checkMorningLightAccess verifies bedrooms and dining rooms against the
// morning direction set.
func (s *SunlightService) checkMorningLightAccess(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		room := &rooms[i]
		if room.Type != models.RoomBedroom {
			continue
		}

		hasMorningLight := containsDirection(s.rules.MorningDirections, room.Direction)

		if !hasMorningLight && room.Windows > 0 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("morning_light"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectMorningLight,
				Category:      "Morning Light",
				Title:         "Limited Morning Light in Bedroom",
				Description:   fmt.Sprintf("Bedroom faces %s, missing optimal morning sunlight.", room.Direction),
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					"Consider adding windows facing East or North-East",
					"Use light colors and mirrors to enhance natural light",
					"Install skylights if side windows are not feasible",
					"Consider wake-up lighting systems for darker rooms",
				},
			})
		} else if room.Windows == 0 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("no_windows"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectMorningLight,
				Category:      "Natural Light",
				Title:         "Bedroom Lacks Windows",
				Description:   "Bedroom has no windows for natural light or ventilation.",
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					"Add windows for natural light and ventilation",
					"East-facing windows provide excellent morning light",
					"Ensure windows meet minimum size requirements",
					"Consider ventilation if windows are not possible",
				},
			})
		}
	}

	for i := range rooms {
		room := &rooms[i]
		if room.Type != models.RoomDiningRoom {
			continue
		}

		if !containsDirection(s.rules.MorningDirections, room.Direction) && room.Windows > 0 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("dining_morning"),
				Severity:      models.StatusNeedsReview,
				Aspect:        models.AspectMorningLight,
				Category:      "Morning Light",
				Title:         "Dining Room Could Benefit from Morning Light",
				Description:   fmt.Sprintf("Dining room faces %s, missing pleasant morning light for breakfast.", room.Direction),
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					"Morning light enhances dining experience",
					"Consider East-facing windows if possible",
					"Ensure adequate artificial lighting for evenings",
				},
			})
		}
	}

	return issues
}

// checkKitchenNaturalLight flags windowless or poorly lit kitchens
func (s *SunlightService) checkKitchenNaturalLight(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		kitchen := &rooms[i]
		if kitchen.Type != models.RoomKitchen {
			continue
		}

		if kitchen.Windows == 0 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("kitchen_no_light"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectKitchenLight,
				Category:      "Kitchen Lighting",
				Title:         "Kitchen Lacks Natural Light",
				Description:   "Kitchen has no windows for natural light, making food preparation difficult.",
				AffectedRooms: []string{kitchen.ID},
				Suggestions: []string{
					"Add windows for natural light during cooking",
					"South-East windows provide excellent morning light",
					"Ensure adequate task lighting for food preparation",
					"Consider skylights if wall windows are limited",
				},
			})
		} else if s.lightQuality(kitchen) < 40 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("kitchen_poor_light"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectKitchenLight,
				Category:      "Kitchen Lighting",
				Title:         "Kitchen Has Limited Natural Light",
				Description:   fmt.Sprintf("Kitchen faces %s with %d window(s), providing limited natural light.", kitchen.Direction, kitchen.Windows),
				AffectedRooms: []string{kitchen.ID},
				Suggestions: []string{
					"Add additional windows if possible",
					"Use light-colored surfaces to reflect available light",
					"Install under-cabinet lighting for task illumination",
					"Consider larger windows for better light penetration",
				},
			})
		}
	}

	return issues
}

// checkLivingAreaBrightness verifies the main living areas get daylight
func (s *SunlightService) checkLivingAreaBrightness(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		living := &rooms[i]
		if living.Type != models.RoomLivingRoom {
			continue
		}

		quality := s.lightQuality(living)

		if living.Windows == 0 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("living_no_light"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectLivingBrightness,
				Category:      "Living Area Lighting",
				Title:         "Living Room Lacks Windows",
				Description:   "Main living area has no natural light sources.",
				AffectedRooms: []string{living.ID},
				Suggestions: []string{
					"Add multiple windows for cross-ventilation and light",
					"South-facing windows provide consistent daylight",
					"Consider large windows or sliding doors",
					"Plan artificial lighting for evening use",
				},
			})
		} else if quality < 50 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("living_dim"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectLivingBrightness,
				Category:      "Living Area Lighting",
				Title:         "Living Room Could Be Brighter",
				Description:   fmt.Sprintf("Living room has limited natural light (quality: %.0f%%).", quality),
				AffectedRooms: []string{living.ID},
				Suggestions: []string{
					"Add more windows for better daylight",
					"Consider larger window sizes",
					"Use light colors for walls and furniture",
					"Add mirrors to reflect and amplify natural light",
				},
			})
		} else if living.Windows < 2 && living.Area > 150 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("living_insufficient"),
				Severity:      models.StatusNeedsReview,
				Aspect:        models.AspectLivingBrightness,
				Category:      "Living Area Lighting",
				Title:         "Large Living Room May Need More Windows",
				Description:   fmt.Sprintf("Living room area (%.0f sq ft) may benefit from additional windows.", living.Area),
				AffectedRooms: []string{living.ID},
				Suggestions: []string{
					"Consider multiple windows for even light distribution",
					"Add windows on different walls for cross-lighting",
					"Ensure adequate lighting for different seating areas",
				},
			})
		}
	}

	return issues
}

// checkWindowOptimization flags over-glazed hot-side rooms and dark
// north-facing daylight-priority rooms.
func (s *SunlightService) checkWindowOptimization(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		room := &rooms[i]
		if !containsDirection(s.rules.AfternoonDirections, room.Direction) {
			continue
		}
		if room.Windows > 2 && room.Type != models.RoomLivingRoom {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("excessive_sun"),
				Severity:      models.StatusNeedsReview,
				Aspect:        models.AspectSunExposure,
				Category:      "Sun Exposure",
				Title:         "Potential Overheating Risk",
				Description:   fmt.Sprintf("%s faces %s with %d windows.", displayName(room.Type), room.Direction, room.Windows),
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					"Consider window shading or overhangs",
					"Use low-E glass to reduce heat gain",
					"Install window treatments for sun control",
					"Ensure adequate ventilation for cooling",
				},
			})
		}
	}

	for i := range rooms {
		room := &rooms[i]
		if room.Direction != models.North {
			continue
		}
		if containsRoomType(s.rules.DaylightPriorityRooms, room.Type) && room.Windows <= 1 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("north_dark"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectSunExposure,
				Category:      "Natural Light",
				Title:         "North-Facing Room May Be Dark",
				Description:   fmt.Sprintf("%s faces north with limited windows.", displayName(room.Type)),
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					"Add additional windows for north light",
					"North light is consistent and good for work areas",
					"Ensure adequate artificial lighting",
					"Use light colors to maximize available light",
				},
			})
		}
	}

	return issues
}

// checkSeasonalConsiderations emits aggregated seasonal findings: summer
// heat on the south-west side and limited winter light on the north side.
func (s *SunlightService) checkSeasonalConsiderations(plan *models.FloorPlan) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	southWestRooms := lo.Filter(plan.Rooms, func(r models.Room, _ int) bool {
		return (r.Direction == models.SouthWest || r.Direction == models.West) && r.Windows >= 2
	})
	if len(southWestRooms) > 0 {
		names := lo.Map(southWestRooms, func(r models.Room, _ int) string {
			return displayName(r.Type)
		})
		issues = append(issues, models.ComplianceIssue{
			ID:          issueID("summer_heat"),
			Severity:    models.StatusNeedsReview,
			Aspect:      models.AspectSeasonal,
			Category:    "Seasonal Comfort",
			Title:       "Summer Cooling Consideration",
			Description: fmt.Sprintf("Rooms facing south-west may experience excessive heat in summer: %s", strings.Join(names, ", ")),
			AffectedRooms: lo.Map(southWestRooms, func(r models.Room, _ int) string {
				return r.ID
			}),
			Suggestions: []string{
				"Plan for summer shading solutions",
				"Consider deciduous trees for seasonal shade",
				"Install window overhangs or awnings",
				"Ensure adequate ventilation and cooling",
			},
		})
	}

	limitedWinterLight := lo.Filter(plan.Rooms, func(r models.Room, _ int) bool {
		return (r.Direction == models.North || r.Direction == models.NorthWest) &&
			containsRoomType(s.rules.DaylightPriorityRooms, r.Type)
	})
	if len(limitedWinterLight) > 0 {
		issues = append(issues, models.ComplianceIssue{
			ID:          issueID("winter_light"),
			Severity:    models.StatusNeedsReview,
			Aspect:      models.AspectSeasonal,
			Category:    "Seasonal Comfort",
			Title:       "Winter Light Planning",
			Description: "Some rooms may have limited natural light during winter months.",
			AffectedRooms: lo.Map(limitedWinterLight, func(r models.Room, _ int) string {
				return r.ID
			}),
			Suggestions: []string{
				"Plan adequate artificial lighting for winter",
				"Use warm light colors during darker months",
				"Consider light therapy options",
				"Maximize available daylight with light colors",
			},
		})
	}

	return issues
}

// calculateScore starts at 80, rewards well-lit rooms and morning-light
// pairings, then deducts per issue severity. Clamped to [0, 100].
func (s *SunlightService) calculateScore(rooms []models.Room, issues []models.ComplianceIssue) float64 {
	score := 80.0

	for i := range rooms {
		room := &rooms[i]
		quality := s.lightQuality(room)

		switch {
		case quality >= 80:
			score += 3
		case quality >= 60:
			score += 2
		case quality >= 40:
			score += 1
		}

		if containsRoomType(s.rules.MorningLightRooms, room.Type) &&
			containsDirection(s.rules.MorningDirections, room.Direction) {
			score += 2
		}
	}

	for _, issue := range issues {
		switch issue.Severity {
		case models.StatusNonCompliant:
			score -= 12
		case models.StatusWarning:
			score -= 6
		case models.StatusNeedsReview:
			score -= 2
		}
	}

	return clampScore(score)
}

// seasonalRecommendations returns up to 4 seasonal advice strings derived
// from the plan orientation plus general guidance.
func (s *SunlightService) seasonalRecommendations(plan *models.FloorPlan) []string {
	var recommendations []string

	southFacing := lo.CountBy(plan.Rooms, func(r models.Room) bool {
		return r.Direction == models.South
	})
	westFacing := lo.CountBy(plan.Rooms, func(r models.Room) bool {
		return r.Direction == models.West
	})

	if southFacing > westFacing {
		recommendations = append(recommendations,
			"Good south-facing orientation provides consistent winter light",
			"Consider summer shading for south windows")
	}
	if westFacing >= 2 {
		recommendations = append(recommendations,
			"West-facing windows may cause afternoon overheating in summer",
			"Plan for evening glare control with appropriate window treatments")
	}

	recommendations = append(recommendations,
		"Use deciduous landscaping for seasonal shade control",
		"Consider adjustable window treatments for year-round comfort",
		"Plan artificial lighting to supplement natural light in winter")

	if len(recommendations) > 4 {
		recommendations = recommendations[:4]
	}
	return recommendations
}

// Summary condenses a sunlight analysis for dashboard display
func (s *SunlightService) Summary(analysis *models.SunlightAnalysis) map[string]interface{} {
	return map[string]interface{}{
		"overall_status":  analysis.OverallStatus,
		"sunlight_score":  analysis.SunlightScore,
		"total_issues":    len(analysis.Issues),
		"critical_issues": countBySeverity(analysis.Issues, models.StatusNonCompliant),
		"warning_issues":  countBySeverity(analysis.Issues, models.StatusWarning),
		"review_issues":   countBySeverity(analysis.Issues, models.StatusNeedsReview),
		"aspect_status": map[string]interface{}{
			"morning_light":     analysis.MorningLightAccess,
			"kitchen_light":     analysis.KitchenNaturalLight,
			"living_brightness": analysis.LivingAreaBrightness,
		},
		"seasonal_tips": len(analysis.SeasonalConsiderations),
	}
}
