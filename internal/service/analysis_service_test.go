package service

import (
	"math"
	"testing"
	"time"

	"floorplan-compliance-backend/internal/models"
	"floorplan-compliance-backend/internal/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisService() *AnalysisService {
	r := rules.Default()
	return NewAnalysisService(
		NewBuildingCodeService(r),
		NewVastuService(r),
		NewSunlightService(r),
	)
}

func mixedPlan() *models.FloorPlan {
	return testPlan(
		testRoom("room_1", models.RoomLivingRoom, 150, models.North, 2),
		testRoom("room_2", models.RoomBedroom, 100, models.SouthWest, 1),
		testRoom("room_3", models.RoomKitchen, 60, models.East, 1),
		testRoom("room_4", models.RoomBathroom, 30, models.NorthEast, 0),
	)
}

func TestAnalyzeCompleteWeightedScore(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	complete := svc.AnalyzeComplete(mixedPlan())

	expected := complete.BuildingCode.CompliancePercentage*0.5 +
		complete.Vastu.VastuScore*0.3 +
		complete.Sunlight.SunlightScore*0.2
	expected = math.Round(expected*10) / 10

	assert.Equal(t, expected, complete.OverallComplianceScore)
	assert.GreaterOrEqual(t, complete.OverallComplianceScore, 0.0)
	assert.LessOrEqual(t, complete.OverallComplianceScore, 100.0)

	assert.NotEmpty(t, complete.FloorPlanID)
	_, err := time.Parse(time.RFC3339, complete.Timestamp)
	assert.NoError(t, err)
}

func TestAnalyzeCompleteDeterministic(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	first := svc.AnalyzeComplete(mixedPlan())
	second := svc.AnalyzeComplete(mixedPlan())

	assert.Equal(t, first.OverallComplianceScore, second.OverallComplianceScore)
	assert.Equal(t, first.BuildingCode.CompliancePercentage, second.BuildingCode.CompliancePercentage)
	assert.Equal(t, first.Vastu.VastuScore, second.Vastu.VastuScore)
	assert.Equal(t, first.Sunlight.SunlightScore, second.Sunlight.SunlightScore)
	assert.Equal(t, first.Recommendations, second.Recommendations)

	// Issue identifiers are random, titles and order are not
	assert.Equal(t, issueTitles(first.PriorityIssues), issueTitles(second.PriorityIssues))
	assert.NotEqual(t, first.FloorPlanID, second.FloorPlanID)
}

func TestPriorityIssuesCappedAndCriticalFirst(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	// Four undersized windowless bedrooms yield 12 critical building code
	// issues alone, well past the priority cap.
	plan := testPlan(
		testRoom("room_1", models.RoomBedroom, 60, models.North, 0),
		testRoom("room_2", models.RoomBedroom, 60, models.North, 0),
		testRoom("room_3", models.RoomBedroom, 60, models.North, 0),
		testRoom("room_4", models.RoomBedroom, 60, models.North, 0),
	)

	complete := svc.AnalyzeComplete(plan)

	require.Len(t, complete.PriorityIssues, 10)
	for _, issue := range complete.PriorityIssues {
		assert.Equal(t, models.StatusNonCompliant, issue.Severity)
	}
}

func TestPriorityIssuesWarningTopUp(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	plan := testPlan(
		testRoom("room_1", models.RoomBedroom, 60, models.SouthWest, 1),
		testRoom("room_2", models.RoomKitchen, 150, models.East, 1),
	)

	complete := svc.AnalyzeComplete(plan)

	require.NotEmpty(t, complete.PriorityIssues)
	assert.Equal(t, models.StatusNonCompliant, complete.PriorityIssues[0].Severity)

	warnings := 0
	for i, issue := range complete.PriorityIssues {
		if issue.Severity == models.StatusWarning {
			warnings++
		}
		if i > 0 {
			assert.GreaterOrEqual(t, issue.Severity.Rank(),
				complete.PriorityIssues[i-1].Severity.Rank(), "issues sorted by severity rank")
		}
	}
	assert.Greater(t, warnings, 0, "warnings fill in when critical issues are few")
	assert.LessOrEqual(t, len(complete.PriorityIssues), 10)
}

func TestRecommendationsCleanPlan(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	plan := testPlan(
		testRoom("room_1", models.RoomLivingRoom, 150, models.North, 2),
		testRoom("room_2", models.RoomBedroom, 100, models.SouthWest, 1),
		testRoom("room_3", models.RoomKitchen, 60, models.SouthEast, 1),
		testRoom("room_4", models.RoomBathroom, 30, models.West, 0),
	)

	complete := svc.AnalyzeComplete(plan)

	assert.Equal(t, []string{
		"Floor plan shows good overall compliance - consider minor optimizations",
	}, complete.Recommendations)
}

func TestRecommendationsCollapseWhenEverythingFails(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	plan := testPlan(
		testRoom("room_1", models.RoomBedroom, 60, models.NorthEast, 0),
		testRoom("room_2", models.RoomKitchen, 40, models.North, 0),
		testRoom("room_3", models.RoomLivingRoom, 100, models.NorthWest, 1),
	)

	complete := svc.AnalyzeComplete(plan)

	assert.Equal(t, []string{
		"Focus on building code compliance first for safety",
		"Address room sizing and ventilation issues",
		"Optimize room directions for better functionality",
		"Improve natural lighting throughout the home",
	}, complete.Recommendations)
}

func TestRecommendationsNeverExceedFive(t *testing.T) {
	t.Parallel()

	svc := newAnalysisService()
	plans := []*models.FloorPlan{
		mixedPlan(),
		testPlan(testRoom("room_1", models.RoomBedroom, 60, models.North, 0)),
		testPlan(testRoom("room_1", models.RoomKitchen, 40, models.North, 0)),
	}

	for _, plan := range plans {
		complete := svc.AnalyzeComplete(plan)
		assert.LessOrEqual(t, len(complete.Recommendations), 5)
		assert.NotEmpty(t, complete.Recommendations)
	}
}
