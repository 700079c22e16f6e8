package models

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// RoomType classifies a room for rule lookups
type RoomType string

const (
	RoomLivingRoom RoomType = "living_room"
	RoomBedroom    RoomType = "bedroom"
	RoomKitchen    RoomType = "kitchen"
	RoomBathroom   RoomType = "bathroom"
	RoomDiningRoom RoomType = "dining_room"
	RoomStudy      RoomType = "study"
	RoomBalcony    RoomType = "balcony"
	RoomStaircase  RoomType = "staircase"
	RoomCorridor   RoomType = "corridor"
	RoomStorage    RoomType = "storage"
	RoomGarage     RoomType = "garage"
	RoomPoojaRoom  RoomType = "pooja_room"
)

// Direction is one of the 8 compass points used for Vastu and sunlight rules
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	NorthEast Direction = "north_east"
	NorthWest Direction = "north_west"
	SouthEast Direction = "south_east"
	SouthWest Direction = "south_west"
)

// Coordinates holds the room rectangle in plan-local units
type Coordinates struct {
	X      float64 `json:"x" binding:"gte=0"`
	Y      float64 `json:"y" binding:"gte=0"`
	Width  float64 `json:"width" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
}

// Room describes a single room extracted from a floor plan
type Room struct {
	ID          string      `json:"id" binding:"required"`
	Type        RoomType    `json:"type" binding:"required,oneof=living_room bedroom kitchen bathroom dining_room study balcony staircase corridor storage garage pooja_room"`
	Name        string      `json:"name,omitempty"`
	Area        float64     `json:"area" binding:"required,gt=0"`
	Direction   Direction   `json:"direction" binding:"required,oneof=north south east west north_east north_west south_east south_west"`
	Windows     int         `json:"windows" binding:"gte=0"`
	Doors       int         `json:"doors" binding:"required,gte=1"`
	Coordinates Coordinates `json:"coordinates" binding:"required"`

	CeilingHeight         float64 `json:"ceiling_height,omitempty" binding:"omitempty,gt=0"`
	HasNaturalVentilation *bool   `json:"has_natural_ventilation,omitempty"`
	IsLoadBearing         *bool   `json:"is_load_bearing,omitempty"`
}

// NaturalVentilation reports whether the room has natural ventilation.
// Defaults to true when the field is omitted from the input.
func (r *Room) NaturalVentilation() bool {
	return r.HasNaturalVentilation == nil || *r.HasNaturalVentilation
}

// Label returns the custom room name or falls back to the room type
func (r *Room) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return string(r.Type)
}

// BuildingInfo holds building-level characteristics and metadata
type BuildingInfo struct {
	TotalArea           float64            `json:"total_area" binding:"required,gt=0"`
	Floors              int                `json:"floors" binding:"required,gte=1,lte=10"`
	BuildingType        string             `json:"building_type"`
	ConstructionYear    int                `json:"construction_year,omitempty"`
	LocationCoordinates map[string]float64 `json:"location_coordinates,omitempty"`
	LocalBuildingCode   string             `json:"local_building_code"`
	ZoneClassification  string             `json:"zone_classification,omitempty"`
}

// FloorPlan is the complete input to the analysis engine
type FloorPlan struct {
	Rooms         []Room                 `json:"rooms" binding:"required,min=1,dive"`
	BuildingInfo  BuildingInfo           `json:"building_info" binding:"required"`
	ImageMetadata map[string]interface{} `json:"image_metadata,omitempty"`
}

// areaTolerance is the allowed mismatch between area and width×height (10%)
const areaTolerance = 0.1

// roomAreaSumFactor caps the sum of room areas relative to total building area
const roomAreaSumFactor = 1.2

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reuse the gin binding tags so the rules live in one place
	v.SetTagName("binding")
	return v
}

// Normalize fills in default building metadata for fields the input omitted
func (fp *FloorPlan) Normalize() {
	if fp.BuildingInfo.BuildingType == "" {
		fp.BuildingInfo.BuildingType = "residential"
	}
	if fp.BuildingInfo.LocalBuildingCode == "" {
		fp.BuildingInfo.LocalBuildingCode = "generic"
	}
}

// Validate checks field constraints and the structural invariants the
// evaluators assume: room area must roughly match its rectangle and the
// sum of room areas must not exceed 1.2× the building total. Violations
// are client-input errors, never compliance issues.
func (fp *FloorPlan) Validate() error {
	if err := validate.Struct(fp); err != nil {
		return err
	}

	totalRoomArea := 0.0
	for i := range fp.Rooms {
		room := &fp.Rooms[i]

		calculated := room.Coordinates.Width * room.Coordinates.Height
		if math.Abs(room.Area-calculated) > calculated*areaTolerance {
			return fmt.Errorf("room %s: area %.1f does not match dimensions %.1f x %.1f",
				room.ID, room.Area, room.Coordinates.Width, room.Coordinates.Height)
		}
		totalRoomArea += room.Area
	}

	if totalRoomArea > fp.BuildingInfo.TotalArea*roomAreaSumFactor {
		return fmt.Errorf("sum of room areas (%.1f) exceeds building area (%.1f)",
			totalRoomArea, fp.BuildingInfo.TotalArea)
	}

	return nil
}

// RoomsOfType returns the rooms matching the given type, preserving plan order
func (fp *FloorPlan) RoomsOfType(t RoomType) []Room {
	var out []Room
	for _, r := range fp.Rooms {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}
