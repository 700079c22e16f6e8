package service

import (
	"strings"

	"floorplan-compliance-backend/internal/models"

	"github.com/google/uuid"
)

// issueID builds a short unique issue identifier with a readable prefix
func issueID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// displayName renders a room type for issue titles ("dining_room" -> "Dining Room")
func displayName(t models.RoomType) string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// joinDirections renders a direction list for suggestion text
func joinDirections(dirs []models.Direction) string {
	labels := make([]string, len(dirs))
	for i, d := range dirs {
		labels[i] = string(d)
	}
	return strings.Join(labels, ", ")
}

// containsDirection reports membership of d in dirs
func containsDirection(dirs []models.Direction, d models.Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}

// containsRoomType reports membership of t in types
func containsRoomType(types []models.RoomType, t models.RoomType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
