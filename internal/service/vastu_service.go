package service

import (
	"fmt"

	"floorplan-compliance-backend/internal/models"
	"floorplan-compliance-backend/internal/rules"
)

// VastuService checks room placement against Vastu Shastra directional
// principles: entrance, kitchen, bedrooms, pooja room and general placement.
type VastuService struct {
	rules *rules.VastuRules
}

func NewVastuService(r *rules.Rules) *VastuService {
	return &VastuService{
		rules: &r.Vastu,
	}
}

// MainEntranceRoom selects the room approximating the main entrance: the
// first living room in plan order. Returns nil when the plan has none.
func MainEntranceRoom(rooms []models.Room) *models.Room {
	for i := range rooms {
		if rooms[i].Type == models.RoomLivingRoom {
			return &rooms[i]
		}
	}
	return nil
}

// MasterBedroom selects the bedroom with the maximum area. Ties resolve to
// list order: the first bedroom equal to the maximum wins.
func MasterBedroom(bedrooms []models.Room) *models.Room {
	if len(bedrooms) == 0 {
		return nil
	}
	master := &bedrooms[0]
	for i := range bedrooms[1:] {
		if bedrooms[i+1].Area > master.Area {
			master = &bedrooms[i+1]
		}
	}
	return master
}

// Analyze runs all Vastu checks and rolls them up into one analysis
func (s *VastuService) Analyze(plan *models.FloorPlan) *models.VastuAnalysis {
	entranceIssues := s.checkMainEntrance(plan.Rooms)
	kitchenIssues := s.checkKitchenPlacement(plan.Rooms)
	bedroomIssues := s.checkBedroomDirections(plan.Rooms)
	poojaIssues := s.checkPoojaRoomCompliance(plan.Rooms)
	generalIssues := s.checkGeneralRoomPlacements(plan.Rooms)

	issues := make([]models.ComplianceIssue, 0,
		len(entranceIssues)+len(kitchenIssues)+len(bedroomIssues)+len(poojaIssues)+len(generalIssues))
	issues = append(issues, entranceIssues...)
	issues = append(issues, kitchenIssues...)
	issues = append(issues, bedroomIssues...)
	issues = append(issues, poojaIssues...)
	issues = append(issues, generalIssues...)

	score := s.calculateScore(plan.Rooms, issues)

	var overallStatus models.ComplianceStatus
	switch {
	case score >= 85:
		overallStatus = models.StatusCompliant
	case score >= 65:
		overallStatus = models.StatusWarning
	default:
		overallStatus = models.StatusNonCompliant
	}

	return &models.VastuAnalysis{
		OverallStatus:         overallStatus,
		VastuScore:            score,
		Issues:                issues,
		MainEntranceDirection: models.WorstStatus(entranceIssues),
		KitchenPlacement:      kitchenStatus(kitchenIssues),
		BedroomDirections:     models.WorstStatus(bedroomIssues),
		PoojaRoomCompliance:   models.WorstStatus(poojaIssues),
	}
}

// kitchenStatus collapses kitchen issues to compliant/non_compliant/warning;
// the kitchen aspect makes no needs_review distinction.
func kitchenStatus(issues []models.ComplianceIssue) models.ComplianceStatus {
	if len(issues) == 0 {
		return models.StatusCompliant
	}
	for _, issue := range issues {
		if issue.Severity == models.StatusNonCompliant {
			return models.StatusNonCompliant
		}
	}
	return models.StatusWarning
}

// checkMainEntrance classifies the entrance direction against the ordered
// preference list: top 3 are fine, bottom 3 warn, anything else fails.
func (s *VastuService) checkMainEntrance(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	entrance := MainEntranceRoom(rooms)
	if entrance == nil {
		issues = append(issues, models.ComplianceIssue{
			ID:            issueID("entrance"),
			Severity:      models.StatusNeedsReview,
			Aspect:        models.AspectEntrance,
			Category:      "Main Entrance",
			Title:         "Main Entrance Not Clearly Defined",
			Description:   "Unable to identify main entrance area for Vastu analysis.",
			AffectedRooms: []string{},
			Suggestions: []string{
				"Clearly define main entrance location",
				"Consider entrance in North-East direction",
				"Ensure entrance is well-lit and welcoming",
			},
		})
		return issues
	}

	direction := entrance.Direction
	preferences := s.rules.EntrancePreferences

	switch {
	case containsDirection(preferences[:3], direction):
		// Good entrance direction, nothing to report
	case containsDirection(preferences[3:], direction):
		issues = append(issues, models.ComplianceIssue{
			ID:            issueID("entrance"),
			Severity:      models.StatusWarning,
			Aspect:        models.AspectEntrance,
			Category:      "Main Entrance",
			Title:         "Entrance Direction Could Be Better",
			Description:   fmt.Sprintf("Main entrance faces %s, which is acceptable but not optimal.", direction),
			AffectedRooms: []string{entrance.ID},
			Suggestions: []string{
				"Consider North-East entrance for best Vastu compliance",
				"North or East entrances are also favorable",
				"Enhance entrance with proper lighting and decor",
			},
		})
	default:
		issues = append(issues, models.ComplianceIssue{
			ID:            issueID("entrance"),
			Severity:      models.StatusNonCompliant,
			Aspect:        models.AspectEntrance,
			Category:      "Main Entrance",
			Title:         "Unfavorable Entrance Direction",
			Description:   fmt.Sprintf("Main entrance faces %s, which is not recommended in Vastu.", direction),
			AffectedRooms: []string{entrance.ID},
			Suggestions: []string{
				"If possible, create entrance in North-East direction",
				"Use Vastu remedies like proper lighting and symbols",
				"Consider relocating main entrance",
			},
		})
	}

	return issues
}

// checkKitchenPlacement verifies every kitchen against the ideal/avoid tables
func (s *VastuService) checkKitchenPlacement(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		kitchen := &rooms[i]
		if kitchen.Type != models.RoomKitchen {
			continue
		}

		switch {
		case containsDirection(s.rules.IdealDirections[models.RoomKitchen], kitchen.Direction):
			// Perfect kitchen placement
		case containsDirection(s.rules.AvoidDirections[models.RoomKitchen], kitchen.Direction):
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("kitchen"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectKitchenPlacement,
				Category:      "Kitchen Placement",
				Title:         "Kitchen in Unfavorable Direction",
				Description:   fmt.Sprintf("Kitchen faces %s, which should be avoided according to Vastu.", kitchen.Direction),
				AffectedRooms: []string{kitchen.ID},
				Suggestions: []string{
					"Ideal kitchen direction is South-East",
					"South direction is also acceptable",
					"Use Vastu remedies if relocation is not possible",
					"Ensure proper ventilation and lighting",
				},
			})
		default:
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("kitchen"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectKitchenPlacement,
				Category:      "Kitchen Placement",
				Title:         "Kitchen Direction Not Optimal",
				Description:   fmt.Sprintf("Kitchen faces %s, which is acceptable but not ideal.", kitchen.Direction),
				AffectedRooms: []string{kitchen.ID},
				Suggestions: []string{
					"South-East is the most favorable direction for kitchen",
					"Ensure cooking is done facing East while preparing food",
					"Keep kitchen clean and well-organized",
				},
			})
		}
	}

	return issues
}

// checkBedroomDirections verifies bedroom placement; avoid-list violations
// are harsher for the master bedroom than for secondary bedrooms.
func (s *VastuService) checkBedroomDirections(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	var bedrooms []models.Room
	for _, r := range rooms {
		if r.Type == models.RoomBedroom {
			bedrooms = append(bedrooms, r)
		}
	}
	master := MasterBedroom(bedrooms)

	for i := range bedrooms {
		bedroom := &bedrooms[i]
		// Every bedroom whose area equals the maximum counts as a master
		isMaster := master != nil && bedroom.Area == master.Area

		switch {
		case containsDirection(s.rules.IdealDirections[models.RoomBedroom], bedroom.Direction):
			// Good bedroom placement
		case containsDirection(s.rules.AvoidDirections[models.RoomBedroom], bedroom.Direction):
			severity := models.StatusWarning
			titlePrefix := ""
			if isMaster {
				severity = models.StatusNonCompliant
				titlePrefix = "Master "
			}
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("bedroom"),
				Severity:      severity,
				Aspect:        models.AspectBedroomPlacement,
				Category:      "Bedroom Placement",
				Title:         titlePrefix + "Bedroom in Unfavorable Direction",
				Description:   fmt.Sprintf("Bedroom faces %s, which should be avoided for bedrooms.", bedroom.Direction),
				AffectedRooms: []string{bedroom.ID},
				Suggestions: []string{
					"South-West is ideal for master bedroom",
					"South and West are also favorable",
					"Avoid North-East for bedrooms, especially master bedroom",
					"Place bed with head towards South or West",
				},
			})
		default:
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("bedroom"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectBedroomPlacement,
				Category:      "Bedroom Placement",
				Title:         "Bedroom Direction Not Optimal",
				Description:   fmt.Sprintf("Bedroom faces %s, which is acceptable but not ideal.", bedroom.Direction),
				AffectedRooms: []string{bedroom.ID},
				Suggestions: []string{
					"South-West is most favorable for master bedroom",
					"Ensure bed placement follows Vastu guidelines",
					"Use appropriate colors and decor for the direction",
				},
			})
		}
	}

	return issues
}

// checkPoojaRoomCompliance verifies pooja room placement, or suggests adding
// one when the plan has none.
func (s *VastuService) checkPoojaRoomCompliance(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	var poojaRooms []*models.Room
	for i := range rooms {
		if rooms[i].Type == models.RoomPoojaRoom {
			poojaRooms = append(poojaRooms, &rooms[i])
		}
	}

	if len(poojaRooms) == 0 {
		issues = append(issues, models.ComplianceIssue{
			ID:            issueID("pooja"),
			Severity:      models.StatusNeedsReview,
			Aspect:        models.AspectPoojaRoom,
			Category:      "Pooja Room",
			Title:         "No Dedicated Pooja Room",
			Description:   "Consider creating a dedicated space for prayers and meditation.",
			AffectedRooms: []string{},
			Suggestions: []string{
				"Create pooja area in North-East direction",
				"Small corner in North-East can serve as prayer space",
				"Ensure the area is clean and peaceful",
			},
		})
		return issues
	}

	for _, pooja := range poojaRooms {
		switch {
		case containsDirection(s.rules.IdealDirections[models.RoomPoojaRoom], pooja.Direction):
			// Perfect pooja room placement
		case containsDirection(s.rules.AvoidDirections[models.RoomPoojaRoom], pooja.Direction):
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("pooja"),
				Severity:      models.StatusNonCompliant,
				Aspect:        models.AspectPoojaRoom,
				Category:      "Pooja Room",
				Title:         "Pooja Room in Unfavorable Direction",
				Description:   fmt.Sprintf("Pooja room faces %s, which is not recommended for prayer space.", pooja.Direction),
				AffectedRooms: []string{pooja.ID},
				Suggestions: []string{
					"North-East is the most auspicious direction for pooja room",
					"North and East are also favorable",
					"Avoid South, South-West, and West for pooja room",
					"Consider relocating prayer space if possible",
				},
			})
		default:
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("pooja"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectPoojaRoom,
				Category:      "Pooja Room",
				Title:         "Pooja Room Direction Not Ideal",
				Description:   fmt.Sprintf("Pooja room faces %s, consider better positioning.", pooja.Direction),
				AffectedRooms: []string{pooja.ID},
				Suggestions: []string{
					"North-East direction is most favorable for pooja room",
					"Face East or North while praying",
					"Keep the space clean and well-ventilated",
				},
			})
		}
	}

	return issues
}

// checkGeneralRoomPlacements covers the remaining room types present in the
// ideal-direction table, excluding the ones handled by dedicated checks.
func (s *VastuService) checkGeneralRoomPlacements(rooms []models.Room) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for i := range rooms {
		room := &rooms[i]
		switch room.Type {
		case models.RoomKitchen, models.RoomBedroom, models.RoomPoojaRoom:
			continue
		}

		idealDirections, ok := s.rules.IdealDirections[room.Type]
		if !ok {
			continue
		}
		avoidDirections := s.rules.AvoidDirections[room.Type]

		if containsDirection(avoidDirections, room.Direction) {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("room"),
				Severity:      models.StatusWarning,
				Aspect:        models.AspectRoomPlacement,
				Category:      "Room Placement",
				Title:         fmt.Sprintf("%s in Less Favorable Direction", displayName(room.Type)),
				Description:   fmt.Sprintf("%s faces %s, which could be better positioned.", displayName(room.Type), room.Direction),
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					fmt.Sprintf("Ideal directions: %s", joinDirections(idealDirections)),
					"Consider room function when planning layout",
					"Use appropriate colors and lighting for the direction",
				},
			})
		} else if !containsDirection(idealDirections, room.Direction) {
			issues = append(issues, models.ComplianceIssue{
				ID:            issueID("room"),
				Severity:      models.StatusNeedsReview,
				Aspect:        models.AspectRoomPlacement,
				Category:      "Room Placement",
				Title:         fmt.Sprintf("%s Direction Review", displayName(room.Type)),
				Description:   fmt.Sprintf("%s could benefit from better directional placement.", displayName(room.Type)),
				AffectedRooms: []string{room.ID},
				Suggestions: []string{
					fmt.Sprintf("Consider directions: %s", joinDirections(idealDirections)),
					"Current placement is acceptable if other factors are favorable",
					"Focus on proper lighting and ventilation",
				},
			})
		}
	}

	return issues
}

// calculateScore starts at 100, deducts per issue severity and adds back a
// bonus for rooms placed in an ideal direction. Clamped to [0, 100].
func (s *VastuService) calculateScore(rooms []models.Room, issues []models.ComplianceIssue) float64 {
	score := 100.0

	for _, issue := range issues {
		switch issue.Severity {
		case models.StatusNonCompliant:
			score -= 15
		case models.StatusWarning:
			score -= 8
		case models.StatusNeedsReview:
			score -= 3
		}
	}

	bonus := 0.0
	for i := range rooms {
		room := &rooms[i]
		ideal, ok := s.rules.IdealDirections[room.Type]
		if !ok || !containsDirection(ideal, room.Direction) {
			continue
		}
		if room.Type == models.RoomKitchen || room.Type == models.RoomPoojaRoom {
			bonus += 3
		} else {
			bonus += 1
		}
	}
	score += bonus

	return clampScore(score)
}

// Summary condenses a Vastu analysis for dashboard display
func (s *VastuService) Summary(analysis *models.VastuAnalysis) map[string]interface{} {
	return map[string]interface{}{
		"overall_status":  analysis.OverallStatus,
		"vastu_score":     analysis.VastuScore,
		"total_issues":    len(analysis.Issues),
		"critical_issues": countBySeverity(analysis.Issues, models.StatusNonCompliant),
		"warning_issues":  countBySeverity(analysis.Issues, models.StatusWarning),
		"review_issues":   countBySeverity(analysis.Issues, models.StatusNeedsReview),
		"aspect_status": map[string]interface{}{
			"entrance":   analysis.MainEntranceDirection,
			"kitchen":    analysis.KitchenPlacement,
			"bedrooms":   analysis.BedroomDirections,
			"pooja_room": analysis.PoojaRoomCompliance,
		},
	}
}

// clampScore bounds a score to [0, 100]
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
