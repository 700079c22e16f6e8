package service

import (
	"fmt"
	"image"
	"math"
	"os"

	"floorplan-compliance-backend/internal/models"

	// Register decoders for the supported floor plan image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ExtractionService turns uploaded floor plan images into structured
// FloorPlan data. The extraction itself is a mock: room layouts are derived
// from building type and area bands, not from computer vision.
type ExtractionService struct{}

func NewExtractionService() *ExtractionService {
	return &ExtractionService{}
}

// roomTemplate drives mock room generation for one room
type roomTemplate struct {
	roomType  models.RoomType
	areaRatio float64
	direction models.Direction
}

// ProcessFloorPlanImage reads an uploaded image and produces a floor plan.
// A totalArea of 0 means the area is estimated from the image dimensions.
func (s *ExtractionService) ProcessFloorPlanImage(filePath, buildingType string, totalArea float64) (*models.FloorPlan, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if totalArea <= 0 {
		areaFactor := 0.8
		if buildingType != "residential" {
			areaFactor = 1.2
		}
		totalArea = float64(cfg.Width*cfg.Height) / 1000 * areaFactor
	}

	rooms := s.generateRooms(cfg.Width, buildingType, totalArea)

	plan := &models.FloorPlan{
		Rooms: rooms,
		BuildingInfo: models.BuildingInfo{
			TotalArea:         totalArea,
			Floors:            1,
			BuildingType:      buildingType,
			LocalBuildingCode: "generic",
		},
		ImageMetadata: map[string]interface{}{
			"original_width":  cfg.Width,
			"original_height": cfg.Height,
			"format":          format,
			"file_path":       filePath,
		},
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("extracted floor plan invalid: %w", err)
	}
	return plan, nil
}

// GenerateSamplePlan builds a demo floor plan for the given building type
// and complexity level (simple/medium/complex).
func (s *ExtractionService) GenerateSamplePlan(buildingType, complexity string) *models.FloorPlan {
	areaByComplexity := map[string]float64{
		"simple":  800,
		"medium":  1200,
		"complex": 2000,
	}
	totalArea, ok := areaByComplexity[complexity]
	if !ok {
		totalArea = 1200
	}

	rooms := s.generateRooms(800, buildingType, totalArea)

	return &models.FloorPlan{
		Rooms: rooms,
		BuildingInfo: models.BuildingInfo{
			TotalArea:         totalArea,
			Floors:            1,
			BuildingType:      buildingType,
			ConstructionYear:  2023,
			LocalBuildingCode: "generic",
			LocationCoordinates: map[string]float64{
				"lat": 28.6139,
				"lng": 77.2090,
			},
		},
		ImageMetadata: map[string]interface{}{
			"generated":   true,
			"complexity":  complexity,
			"sample_type": buildingType,
		},
	}
}

// generateRooms lays out mock rooms for the building type and area band
func (s *ExtractionService) generateRooms(imageWidth int, buildingType string, totalArea float64) []models.Room {
	var templates []roomTemplate

	if buildingType == "residential" {
		switch {
		case totalArea < 800: // Small apartment
			templates = []roomTemplate{
				{models.RoomLivingRoom, 0.3, models.South},
				{models.RoomBedroom, 0.25, models.East},
				{models.RoomKitchen, 0.15, models.SouthEast},
				{models.RoomBathroom, 0.1, models.West},
				{models.RoomCorridor, 0.2, models.North},
			}
		case totalArea < 1500: // Medium house
			templates = []roomTemplate{
				{models.RoomLivingRoom, 0.2, models.South},
				{models.RoomBedroom, 0.18, models.SouthWest},
				{models.RoomBedroom, 0.15, models.West},
				{models.RoomKitchen, 0.12, models.SouthEast},
				{models.RoomDiningRoom, 0.1, models.North},
				{models.RoomBathroom, 0.08, models.NorthWest},
				{models.RoomBathroom, 0.05, models.West},
				{models.RoomCorridor, 0.12, models.North},
			}
		default: // Large house
			templates = []roomTemplate{
				{models.RoomLivingRoom, 0.18, models.South},
				{models.RoomBedroom, 0.15, models.SouthWest},
				{models.RoomBedroom, 0.12, models.West},
				{models.RoomBedroom, 0.1, models.NorthWest},
				{models.RoomKitchen, 0.1, models.SouthEast},
				{models.RoomDiningRoom, 0.08, models.North},
				{models.RoomStudy, 0.08, models.NorthEast},
				{models.RoomBathroom, 0.06, models.NorthWest},
				{models.RoomBathroom, 0.04, models.West},
				{models.RoomStorage, 0.03, models.SouthWest},
				{models.RoomCorridor, 0.06, models.North},
			}
		}
	} else { // Commercial: one main area plus support spaces
		templates = []roomTemplate{
			{models.RoomLivingRoom, 0.4, models.South},
			{models.RoomBathroom, 0.1, models.North},
			{models.RoomStorage, 0.2, models.West},
			{models.RoomCorridor, 0.3, models.East},
		}
	}

	rooms := make([]models.Room, 0, len(templates))
	currentY := 0.0

	for i, tpl := range templates {
		area := totalArea * tpl.areaRatio

		// Mock layout: width from the area scale, capped by the image,
		// height chosen so the rectangle matches the area exactly.
		width := math.Min(float64(imageWidth)*0.8, math.Max(100, math.Sqrt(area)*10))
		height := area / width

		windows := mockWindowCount(tpl.roomType, area)
		hasVentilation := windows > 0

		rooms = append(rooms, models.Room{
			ID:        fmt.Sprintf("room_%d", i+1),
			Type:      tpl.roomType,
			Area:      area,
			Direction: tpl.direction,
			Windows:   windows,
			Doors:     1,
			Coordinates: models.Coordinates{
				X:      50,
				Y:      currentY,
				Width:  width,
				Height: height,
			},
			HasNaturalVentilation: &hasVentilation,
		})
		currentY += height + 10
	}

	return rooms
}

// mockWindowCount estimates windows from room type, with extras for size
func mockWindowCount(roomType models.RoomType, area float64) int {
	baseWindows := map[models.RoomType]int{
		models.RoomLivingRoom: 2,
		models.RoomBedroom:    1,
		models.RoomKitchen:    1,
		models.RoomDiningRoom: 1,
		models.RoomStudy:      1,
		models.RoomBathroom:   0,
		models.RoomCorridor:   0,
		models.RoomStorage:    0,
		models.RoomPoojaRoom:  1,
	}

	count := baseWindows[roomType]
	if area > 150 {
		count++
	}
	if area > 300 {
		count++
	}
	return count
}
