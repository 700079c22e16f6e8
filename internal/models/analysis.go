package models

// ComplianceStatus is the severity/status scale shared by issues and analyses
type ComplianceStatus string

const (
	StatusCompliant    ComplianceStatus = "compliant"
	StatusNonCompliant ComplianceStatus = "non_compliant"
	StatusWarning      ComplianceStatus = "warning"
	StatusNeedsReview  ComplianceStatus = "needs_review"
)

// Rank orders statuses by urgency. Lower is more urgent. This is the single
// ranking used for both priority sorting and worst-severity rollups.
func (s ComplianceStatus) Rank() int {
	switch s {
	case StatusNonCompliant:
		return 0
	case StatusWarning:
		return 1
	case StatusNeedsReview:
		return 2
	default:
		return 3
	}
}

// Aspect tags an issue with the sub-check that produced it, so status
// rollups can filter on the tag instead of matching title text.
type Aspect string

const (
	AspectRoomSize         Aspect = "room_size"
	AspectVentilation      Aspect = "ventilation"
	AspectEgress           Aspect = "egress"
	AspectStructural       Aspect = "structural"
	AspectEntrance         Aspect = "entrance"
	AspectKitchenPlacement Aspect = "kitchen_placement"
	AspectBedroomPlacement Aspect = "bedroom_placement"
	AspectPoojaRoom        Aspect = "pooja_room"
	AspectRoomPlacement    Aspect = "room_placement"
	AspectMorningLight     Aspect = "morning_light"
	AspectKitchenLight     Aspect = "kitchen_light"
	AspectLivingBrightness Aspect = "living_brightness"
	AspectSunExposure      Aspect = "sun_exposure"
	AspectSeasonal         Aspect = "seasonal"
)

// ComplianceIssue is a single violation or suggestion found by an evaluator
type ComplianceIssue struct {
	ID            string           `json:"id"`
	Severity      ComplianceStatus `json:"severity"`
	Aspect        Aspect           `json:"aspect"`
	Category      string           `json:"category"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	AffectedRooms []string         `json:"affected_rooms"`
	Suggestions   []string         `json:"suggestions"`
	CodeReference string           `json:"code_reference,omitempty"`
}

// WorstStatus rolls a set of issues up to a single status: compliant when
// the set is empty, otherwise the most urgent severity present.
func WorstStatus(issues []ComplianceIssue) ComplianceStatus {
	if len(issues) == 0 {
		return StatusCompliant
	}
	worst := issues[0].Severity
	for _, issue := range issues[1:] {
		if issue.Severity.Rank() < worst.Rank() {
			worst = issue.Severity
		}
	}
	return worst
}

// IssuesWithAspect filters issues down to those tagged with the given aspect
func IssuesWithAspect(issues []ComplianceIssue, aspect Aspect) []ComplianceIssue {
	var out []ComplianceIssue
	for _, issue := range issues {
		if issue.Aspect == aspect {
			out = append(out, issue)
		}
	}
	return out
}

// BuildingCodeAnalysis holds building code compliance results
type BuildingCodeAnalysis struct {
	OverallStatus        ComplianceStatus  `json:"overall_status"`
	CompliancePercentage float64           `json:"compliance_percentage"`
	Issues               []ComplianceIssue `json:"issues"`

	MinimumRoomSizesMet bool             `json:"minimum_room_sizes_met"`
	VentilationAdequate bool             `json:"ventilation_adequate"`
	ExitPathsClear      bool             `json:"exit_paths_clear"`
	StructuralIntegrity ComplianceStatus `json:"structural_integrity"`
}

// VastuAnalysis holds Vastu Shastra compliance results
type VastuAnalysis struct {
	OverallStatus ComplianceStatus  `json:"overall_status"`
	VastuScore    float64           `json:"vastu_score"`
	Issues        []ComplianceIssue `json:"issues"`

	MainEntranceDirection ComplianceStatus `json:"main_entrance_direction"`
	KitchenPlacement      ComplianceStatus `json:"kitchen_placement"`
	BedroomDirections     ComplianceStatus `json:"bedroom_directions"`
	PoojaRoomCompliance   ComplianceStatus `json:"pooja_room_compliance"`
}

// SunlightAnalysis holds sunlight optimization results
type SunlightAnalysis struct {
	OverallStatus ComplianceStatus  `json:"overall_status"`
	SunlightScore float64           `json:"sunlight_score"`
	Issues        []ComplianceIssue `json:"issues"`

	MorningLightAccess     ComplianceStatus `json:"morning_light_access"`
	KitchenNaturalLight    ComplianceStatus `json:"kitchen_natural_light"`
	LivingAreaBrightness   ComplianceStatus `json:"living_area_brightness"`
	SeasonalConsiderations []string         `json:"seasonal_considerations"`
}

// CompleteAnalysis combines the three aspect analyses with an overall summary
type CompleteAnalysis struct {
	FloorPlanID string `json:"floor_plan_id"`
	Timestamp   string `json:"timestamp"`

	BuildingCode BuildingCodeAnalysis `json:"building_code"`
	Vastu        VastuAnalysis        `json:"vastu"`
	Sunlight     SunlightAnalysis     `json:"sunlight"`

	OverallComplianceScore float64           `json:"overall_compliance_score"`
	PriorityIssues         []ComplianceIssue `json:"priority_issues"`
	Recommendations        []string          `json:"recommendations"`
}
