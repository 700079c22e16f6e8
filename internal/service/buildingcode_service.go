package service

import (
	"fmt"

	"floorplan-compliance-backend/internal/models"
	"floorplan-compliance-backend/internal/rules"

	"github.com/samber/lo"
)

// BuildingCodeService checks a floor plan against building code minimums:
// room sizes, ventilation, emergency egress and structural heuristics.
type BuildingCodeService struct {
	rules *rules.BuildingCodeRules
}

func NewBuildingCodeService(r *rules.Rules) *BuildingCodeService {
	return &BuildingCodeService{
		rules: &r.BuildingCode,
	}
}

// Analyze runs all building code checks and rolls them up into one analysis
func (s *BuildingCodeService) Analyze(plan *models.FloorPlan) *models.BuildingCodeAnalysis {
	roomSizeIssues := s.checkMinimumRoomSizes(plan.Rooms)
	ventilationIssues := s.checkVentilation(plan.Rooms)
	exitPathIssues := s.checkExitPaths(plan.Rooms)
	structuralIssues := s.checkStructuralIntegrity(plan)

	issues := make([]models.ComplianceIssue, 0,
		len(roomSizeIssues)+len(ventilationIssues)+len(exitPathIssues)+len(structuralIssues))
	issues = append(issues, roomSizeIssues...)
	issues = append(issues, ventilationIssues...)
	issues = append(issues, exitPathIssues...)
	issues = append(issues, structuralIssues...)

	roomSizesMet := len(roomSizeIssues) == 0
	ventilationAdequate := len(ventilationIssues) == 0
	exitPathsClear := len(exitPathIssues) == 0

	// Only non_compliant structural findings break the structural boolean;
	// needs_review and warning findings leave it compliant.
	criticalStructural := lo.CountBy(structuralIssues, func(i models.ComplianceIssue) bool {
		return i.Severity == models.StatusNonCompliant
	})
	structuralIntegrity := models.StatusCompliant
	if criticalStructural > 0 {
		structuralIntegrity = models.StatusNonCompliant
	}

	passedChecks := lo.CountBy([]bool{
		roomSizesMet,
		ventilationAdequate,
		exitPathsClear,
		structuralIntegrity == models.StatusCompliant,
	}, func(ok bool) bool { return ok })
	compliancePercentage := float64(passedChecks) / 4 * 100

	var overallStatus models.ComplianceStatus
	switch {
	case compliancePercentage >= 90:
		overallStatus = models.StatusCompliant
	case compliancePercentage >= 70:
		overallStatus = models.StatusWarning
	default:
		overallStatus = models.StatusNonCompliant
	}

	return &models.BuildingCodeAnalysis{
		OverallStatus:        overallStatus,
		CompliancePercentage: compliancePercentage,
		Issues:               issues,
		MinimumRoomSizesMet:  roomSizesMet,
		VentilationAdequate:  ventilationAdequate,
		ExitPathsClear:       exitPathsClear,
		StructuralIntegrity:  structuralIntegrity,
	}
}

// checkMinimumRoomSizes flags rooms below the minimum area for their type.
// Room types without a defined minimum are skipped entirely.
func (s *BuildingCodeService) checkMinimumRoomSizes(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		room := &rooms[i]
		minArea, ok := s.rules.MinRoomAreas[room.Type]
		if !ok {
			continue
		}

		if room.Area < minArea {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("room_size"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectRoomSize,
				Category:      "Room Size",
				Title:         fmt.Sprintf("%s Too Small", displayName(room.Type)),
				Description:   fmt.Sprintf("Room '%s' is %.0f sq ft, but minimum required is %.0f sq ft.", room.Label(), room.Area, minArea),
				AffectedRooms: []string{room.ID},
				Suggestions:   []string{
					fmt.Sprintf("Expand room area to at least %.0f sq ft", minArea),
					"Consider combining with adjacent spaces",
					"Remove non-essential fixtures to create more space",
				},
				CodeReference: "IBC Section 1208 - Interior Space Dimensions",
			})
		}
	}

	return issues
}

// checkVentilation verifies window counts and natural ventilation. Both
// checks can fire for the same room.
func (s *BuildingCodeService) checkVentilation(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		room := &rooms[i]
		requiredWindows, ok := s.rules.MinWindows[room.Type]
		if !ok {
			continue
		}

		if room.Windows < requiredWindows {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("ventilation"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectVentilation,
				Category:      "Ventilation",
				Title:         fmt.Sprintf("Insufficient Windows in %s", displayName(room.Type)),
				Description:   fmt.Sprintf("Room has %d window(s), but %d required for adequate ventilation.", room.Windows, requiredWindows),
				AffectedRooms: []string{room.ID},
				Suggestions:   []string{
					fmt.Sprintf("Add %d additional window(s)", requiredWindows-room.Windows),
					"Install mechanical ventilation system",
					"Consider skylights if wall windows are not feasible",
				},
				CodeReference: "IBC Section 1204 - Natural Ventilation",
			})
		}

		if !room.NaturalVentilation() {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("natural_vent"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectVentilation,
				Category:      "Ventilation",
				Title:         "No Natural Ventilation",
				Description:   fmt.Sprintf("Room '%s' lacks natural ventilation sources.", room.Label()),
				AffectedRooms: []string{room.ID},
				Suggestions:   []string{
					"Add operable windows or vents",
					"Install exhaust fans",
					"Connect to central ventilation system",
				},
				CodeReference: "IBC Section 1204 - Natural Ventilation",
			})
		}
	}

	return issues
}

// checkExitPaths verifies emergency egress: every bedroom needs a window,
// and corridors must not be narrower than the minimum passage width.
func (s *BuildingCodeService) checkExitPaths(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		room := &rooms[i]
		if room.Type != models.RoomBedroom {
			continue
		}
		if room.Windows == 0 {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("egress"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectEgress,
				Category:      "Emergency Egress",
				Title:         "Bedroom Lacks Emergency Exit",
				Description:   fmt.Sprintf("Bedroom '%s' has no window for emergency egress.", room.Label()),
				AffectedRooms: []string{room.ID},
				Suggestions:   []string{
					"Add egress window meeting size requirements",
					"Ensure window sill height is appropriate",
					"Install window hardware for easy opening",
				},
				CodeReference: "IBC Section 1030 - Emergency Egress",
			})
		}
	}

	for i := range rooms {
		room := &rooms[i]
		if room.Type != models.RoomCorridor {
			continue
		}

		// Plan units are assumed to be inches here; see the rules package.
		minWidth := room.Coordinates.Width
		if room.Coordinates.Height < minWidth {
			minWidth = room.Coordinates.Height
		}

		if minWidth < s.rules.MinCorridorWidth {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("corridor_width"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectEgress,
				Category:      "Accessibility",
				Title:         "Narrow Corridor",
				Description:   fmt.Sprintf("Corridor width of %.1f units may be too narrow for safe passage.", minWidth),
				AffectedRooms: []string{room.ID},
				Suggestions:   []string{
					fmt.Sprintf("Widen corridor to at least %.0f inches", s.rules.MinCorridorWidth),
					"Remove obstacles in corridor path",
					"Ensure clear height of at least 80 inches",
				},
				CodeReference: "IBC Section 1005 - Egress Width",
			})
		}
	}

	return issues
}

// checkStructuralIntegrity applies plan-wide and per-room structural heuristics
func (s *BuildingCodeService) checkStructuralIntegrity(plan *models.FloorPlan) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	totalArea := plan.BuildingInfo.TotalArea
	if plan.BuildingInfo.Floors == 1 && totalArea > s.rules.MaxSingleFloorArea {
		issues = append(issues, models.ComplianceIssue{
			ID:            issueID("structure"),
			Severity:      models.StatusNeedsReview,
			Aspect:        models.AspectStructural,
			Category:      "Structural",
			Title:         "Large Single-Floor Structure",
			Description:   fmt.Sprintf("Building area of %.0f sq ft may require additional structural analysis.", totalArea),
			AffectedRooms: []string{},
			Suggestions:   []string{
				"Consult structural engineer for load calculations",
				"Verify foundation requirements",
				"Consider additional support columns",
			},
			CodeReference: "IBC Chapter 16 - Structural Design",
		})
	}

	for i := range plan.Rooms {
		room := &plan.Rooms[i]
		w, h := room.Coordinates.Width, room.Coordinates.Height
		aspectRatio := w / h
		if h > w {
			aspectRatio = h / w
		}

		if aspectRatio > s.rules.MaxAspectRatio {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("proportion"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectStructural,
				Category:      "Structural",
				Title:         "Unusual Room Proportions",
				Description:   fmt.Sprintf("Room '%s' has extreme proportions (ratio: %.1f:1).", room.Label(), aspectRatio),
				AffectedRooms: []string{room.ID},
				Suggestions:   []string{
					"Consider structural support for long spans",
					"Add intermediate columns if necessary",
					"Verify beam sizing requirements",
				},
				CodeReference: "IBC Section 1604 - General Design Requirements",
			})
		}
	}

	return issues
}

// Summary condenses a building code analysis for dashboard display
func (s *BuildingCodeService) Summary(analysis *models.BuildingCodeAnalysis) map[string]interface{} {
	return map[string]interface{}{
		"overall_status":        analysis.OverallStatus,
		"compliance_percentage": analysis.CompliancePercentage,
		"total_issues":          len(analysis.Issues),
		"critical_issues":       countBySeverity(analysis.Issues, models.StatusNonCompliant),
		"warning_issues":        countBySeverity(analysis.Issues, models.StatusWarning),
		"review_issues":         countBySeverity(analysis.Issues, models.StatusNeedsReview),
		"key_metrics": map[string]interface{}{
			"room_sizes_compliant": analysis.MinimumRoomSizesMet,
			"ventilation_adequate": analysis.VentilationAdequate,
			"exit_paths_clear":     analysis.ExitPathsClear,
			"structural_integrity": analysis.StructuralIntegrity,
		},
	}
}

// countBySeverity counts issues carrying the given severity
func countBySeverity(issues []models.ComplianceIssue, severity models.ComplianceStatus) int {
	return lo.CountBy(issues, func(i models.ComplianceIssue) bool {
		return i.Severity == severity
	})
}
