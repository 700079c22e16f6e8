package rules

import (
	"fmt"
	"os"

	"floorplan-compliance-backend/internal/models"

	"gopkg.in/yaml.v3"
)

// Rules bundles the static tables driving all three evaluators. A Rules
// value is built once at startup and treated as read-only afterwards.
type Rules struct {
	BuildingCode BuildingCodeRules `yaml:"building_code"`
	Vastu        VastuRules        `yaml:"vastu"`
	Sunlight     SunlightRules     `yaml:"sunlight"`
}

// BuildingCodeRules holds minimum requirements for the building code checks.
// Areas are in the plan's area units (square feet for the generic code);
// corridor width is treated as inches, matching the plan's raw units.
type BuildingCodeRules struct {
	MinRoomAreas       map[models.RoomType]float64 `yaml:"min_room_areas"`
	MinWindows         map[models.RoomType]int     `yaml:"min_windows"`
	MinCorridorWidth   float64                     `yaml:"min_corridor_width"`
	MaxAspectRatio     float64                     `yaml:"max_aspect_ratio"`
	MaxSingleFloorArea float64                     `yaml:"max_single_floor_area"`
}

// VastuRules holds directional placement tables. Ideal/avoid membership is
// what matters; a direction in neither list is acceptable but not ideal.
type VastuRules struct {
	IdealDirections     map[models.RoomType][]models.Direction `yaml:"ideal_directions"`
	AvoidDirections     map[models.RoomType][]models.Direction `yaml:"avoid_directions"`
	EntrancePreferences []models.Direction                     `yaml:"entrance_preferences"`
}

// SunlightRules holds the direction sets, room-type sets and the mock solar
// intensity table used by the sunlight evaluator.
type SunlightRules struct {
	MorningDirections     []models.Direction           `yaml:"morning_directions"`
	AfternoonDirections   []models.Direction           `yaml:"afternoon_directions"`
	EveningDirections     []models.Direction           `yaml:"evening_directions"`
	MorningLightRooms     []models.RoomType            `yaml:"morning_light_rooms"`
	DaylightPriorityRooms []models.RoomType            `yaml:"daylight_priority_rooms"`
	SolarIntensity        map[models.Direction]float64 `yaml:"solar_intensity"`
}

// Default returns the built-in rule tables
func Default() *Rules {
	return &Rules{
		BuildingCode: BuildingCodeRules{
			MinRoomAreas: map[models.RoomType]float64{
				models.RoomBedroom:    80,
				models.RoomLivingRoom: 120,
				models.RoomKitchen:    50,
				models.RoomBathroom:   25,
				models.RoomDiningRoom: 80,
				models.RoomStudy:      60,
			},
			MinWindows: map[models.RoomType]int{
				models.RoomBedroom:    1,
				models.RoomLivingRoom: 2,
				models.RoomKitchen:    1,
				models.RoomDiningRoom: 1,
				models.RoomStudy:      1,
			},
			MinCorridorWidth:   36,
			MaxAspectRatio:     5,
			MaxSingleFloorArea: 2000,
		},
		Vastu: VastuRules{
			IdealDirections: map[models.RoomType][]models.Direction{
				models.RoomBedroom:    {models.SouthWest, models.South, models.West},
				models.RoomLivingRoom: {models.North, models.NorthEast, models.East},
				models.RoomKitchen:    {models.SouthEast, models.South},
				models.RoomBathroom:   {models.South, models.West, models.SouthWest},
				models.RoomDiningRoom: {models.West, models.NorthWest, models.North},
				models.RoomStudy:      {models.NorthEast, models.North, models.East},
				models.RoomPoojaRoom:  {models.NorthEast, models.North, models.East},
				models.RoomStorage:    {models.SouthWest, models.West, models.South},
				models.RoomStaircase:  {models.SouthWest, models.South, models.West},
			},
			AvoidDirections: map[models.RoomType][]models.Direction{
				models.RoomKitchen:   {models.North, models.NorthEast, models.NorthWest},
				models.RoomBathroom:  {models.NorthEast, models.North},
				models.RoomPoojaRoom: {models.South, models.SouthWest, models.West},
				models.RoomBedroom:   {models.NorthEast},
			},
			EntrancePreferences: []models.Direction{
				models.NorthEast, models.North, models.East,
				models.West, models.South, models.SouthEast,
			},
		},
		Sunlight: SunlightRules{
			MorningDirections:   []models.Direction{models.East, models.NorthEast, models.SouthEast},
			AfternoonDirections: []models.Direction{models.South, models.SouthWest, models.West},
			EveningDirections:   []models.Direction{models.West, models.NorthWest, models.SouthWest},
			MorningLightRooms:   []models.RoomType{models.RoomBedroom, models.RoomDiningRoom, models.RoomStudy},
			DaylightPriorityRooms: []models.RoomType{
				models.RoomLivingRoom, models.RoomKitchen, models.RoomStudy,
			},
			SolarIntensity: map[models.Direction]float64{
				models.North:     30,
				models.NorthEast: 60,
				models.East:      80,
				models.SouthEast: 90,
				models.South:     100,
				models.SouthWest: 95,
				models.West:      85,
				models.NorthWest: 50,
			},
		},
	}
}

// Load builds the rule tables, overlaying the optional YAML file on top of
// the defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Rules, error) {
	r := Default()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return r, nil
}
