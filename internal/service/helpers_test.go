package service

import (
	"math"

	"floorplan-compliance-backend/internal/models"
)

// testRoom builds a room with square coordinates matching its area, so the
// structural aspect ratio check stays quiet unless a test overrides them.
func testRoom(id string, roomType models.RoomType, area float64, direction models.Direction, windows int) models.Room {
	side := math.Sqrt(area)
	return models.Room{
		ID:        id,
		Type:      roomType,
		Area:      area,
		Direction: direction,
		Windows:   windows,
		Doors:     1,
		Coordinates: models.Coordinates{
			Width:  side,
			Height: side,
		},
	}
}

// testPlan wraps rooms in a two-floor plan sized to the sum of room areas
func testPlan(rooms ...models.Room) *models.FloorPlan {
	total := 0.0
	for _, r := range rooms {
		total += r.Area
	}
	return &models.FloorPlan{
		Rooms: rooms,
		BuildingInfo: models.BuildingInfo{
			TotalArea:         total,
			Floors:            2,
			BuildingType:      "residential",
			LocalBuildingCode: "generic",
		},
	}
}

// issueTitles extracts the titles of a slice of issues in order
func issueTitles(issues []models.ComplianceIssue) []string {
	titles := make([]string, len(issues))
	for i, issue := range issues {
		titles[i] = issue.Title
	}
	return titles
}
