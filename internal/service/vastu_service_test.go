package service

import (
	"testing"

	"floorplan-compliance-backend/internal/models"
	"floorplan-compliance-backend/internal/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVastuService() *VastuService {
	return NewVastuService(rules.Default())
}

func TestMainEntranceRoomSelector(t *testing.T) {
	t.Parallel()

	rooms := []models.Room{
		testRoom("room_1", models.RoomBedroom, 100, models.SouthWest, 1),
		testRoom("room_2", models.RoomLivingRoom, 150, models.North, 2),
		testRoom("room_3", models.RoomLivingRoom, 200, models.East, 2),
	}

	entrance := MainEntranceRoom(rooms)
	require.NotNil(t, entrance)
	assert.Equal(t, "room_2", entrance.ID)

	assert.Nil(t, MainEntranceRoom(rooms[:1]))
}

func TestMasterBedroomSelector(t *testing.T) {
	t.Parallel()

	bedrooms := []models.Room{
		testRoom("room_1", models.RoomBedroom, 100, models.SouthWest, 1),
		testRoom("room_2", models.RoomBedroom, 150, models.West, 1),
		testRoom("room_3", models.RoomBedroom, 150, models.South, 1),
	}

	master := MasterBedroom(bedrooms)
	require.NotNil(t, master)
	assert.Equal(t, "room_2", master.ID, "first bedroom at the maximum area wins ties")

	assert.Nil(t, MasterBedroom(nil))
}

func TestVastuIdealPlan(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(
		testRoom("room_1", models.RoomLivingRoom, 150, models.North, 2),
		testRoom("room_2", models.RoomKitchen, 60, models.SouthEast, 1),
		testRoom("room_3", models.RoomBedroom, 120, models.SouthWest, 1),
		testRoom("room_4", models.RoomPoojaRoom, 30, models.NorthEast, 1),
	)

	analysis := svc.Analyze(plan)

	assert.Empty(t, analysis.Issues)
	assert.Equal(t, 100.0, analysis.VastuScore)
	assert.Equal(t, models.StatusCompliant, analysis.OverallStatus)
	assert.Equal(t, models.StatusCompliant, analysis.MainEntranceDirection)
	assert.Equal(t, models.StatusCompliant, analysis.KitchenPlacement)
	assert.Equal(t, models.StatusCompliant, analysis.BedroomDirections)
	assert.Equal(t, models.StatusCompliant, analysis.PoojaRoomCompliance)
}

func TestVastuKitchenAvoidDirection(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(
		testRoom("room_1", models.RoomLivingRoom, 150, models.NorthEast, 2),
		testRoom("room_2", models.RoomKitchen, 60, models.North, 1),
		testRoom("room_3", models.RoomPoojaRoom, 30, models.NorthEast, 1),
	)

	analysis := svc.Analyze(plan)

	kitchenIssues := models.IssuesWithAspect(analysis.Issues, models.AspectKitchenPlacement)
	require.Len(t, kitchenIssues, 1)
	assert.Equal(t, "Kitchen in Unfavorable Direction", kitchenIssues[0].Title)
	assert.Equal(t, models.StatusNonCompliant, kitchenIssues[0].Severity)
	assert.Equal(t, models.StatusNonCompliant, analysis.KitchenPlacement)

	// 100 - 15 for the violation, +1 living and +3 pooja ideal bonuses
	assert.Equal(t, 89.0, analysis.VastuScore)
	assert.Equal(t, models.StatusCompliant, analysis.OverallStatus)
}

func TestVastuKitchenNeutralDirection(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(testRoom("room_1", models.RoomKitchen, 60, models.East, 1))

	analysis := svc.Analyze(plan)

	kitchenIssues := models.IssuesWithAspect(analysis.Issues, models.AspectKitchenPlacement)
	require.Len(t, kitchenIssues, 1)
	assert.Equal(t, "Kitchen Direction Not Optimal", kitchenIssues[0].Title)
	assert.Equal(t, models.StatusWarning, kitchenIssues[0].Severity)
	assert.Equal(t, models.StatusWarning, analysis.KitchenPlacement)
}

func TestVastuMasterBedroomSeverity(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(
		testRoom("room_1", models.RoomBedroom, 150, models.NorthEast, 1),
		testRoom("room_2", models.RoomBedroom, 100, models.NorthEast, 1),
	)

	analysis := svc.Analyze(plan)

	bedroomIssues := models.IssuesWithAspect(analysis.Issues, models.AspectBedroomPlacement)
	require.Len(t, bedroomIssues, 2)

	byRoom := map[string]models.ComplianceIssue{}
	for _, issue := range bedroomIssues {
		require.Len(t, issue.AffectedRooms, 1)
		byRoom[issue.AffectedRooms[0]] = issue
	}

	assert.Equal(t, models.StatusNonCompliant, byRoom["room_1"].Severity)
	assert.Equal(t, "Master Bedroom in Unfavorable Direction", byRoom["room_1"].Title)
	assert.Equal(t, models.StatusWarning, byRoom["room_2"].Severity)
	assert.Equal(t, "Bedroom in Unfavorable Direction", byRoom["room_2"].Title)
	assert.Equal(t, models.StatusNonCompliant, analysis.BedroomDirections)
}

func TestVastuBedroomAreaTieBothMaster(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(
		testRoom("room_1", models.RoomBedroom, 120, models.NorthEast, 1),
		testRoom("room_2", models.RoomBedroom, 120, models.NorthEast, 1),
	)

	analysis := svc.Analyze(plan)

	bedroomIssues := models.IssuesWithAspect(analysis.Issues, models.AspectBedroomPlacement)
	require.Len(t, bedroomIssues, 2)
	for _, issue := range bedroomIssues {
		assert.Equal(t, models.StatusNonCompliant, issue.Severity)
		assert.Equal(t, "Master Bedroom in Unfavorable Direction", issue.Title)
	}
}

func TestVastuPoojaRoomAvoidDirection(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(testRoom("room_1", models.RoomPoojaRoom, 30, models.South, 1))

	analysis := svc.Analyze(plan)

	poojaIssues := models.IssuesWithAspect(analysis.Issues, models.AspectPoojaRoom)
	require.Len(t, poojaIssues, 1)
	assert.Equal(t, "Pooja Room in Unfavorable Direction", poojaIssues[0].Title)
	assert.Equal(t, models.StatusNonCompliant, poojaIssues[0].Severity)
	assert.Equal(t, models.StatusNonCompliant, analysis.PoojaRoomCompliance)
}

func TestVastuNoPoojaRoom(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(testRoom("room_1", models.RoomLivingRoom, 150, models.NorthEast, 2))

	analysis := svc.Analyze(plan)

	poojaIssues := models.IssuesWithAspect(analysis.Issues, models.AspectPoojaRoom)
	require.Len(t, poojaIssues, 1)
	assert.Equal(t, "No Dedicated Pooja Room", poojaIssues[0].Title)
	assert.Equal(t, models.StatusNeedsReview, poojaIssues[0].Severity)
	assert.NotNil(t, poojaIssues[0].AffectedRooms)
	assert.Empty(t, poojaIssues[0].AffectedRooms)
	assert.Equal(t, models.StatusNeedsReview, analysis.PoojaRoomCompliance)
}

func TestVastuNoLivingRoomEntrance(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(testRoom("room_1", models.RoomBedroom, 120, models.SouthWest, 1))

	analysis := svc.Analyze(plan)

	entranceIssues := models.IssuesWithAspect(analysis.Issues, models.AspectEntrance)
	require.Len(t, entranceIssues, 1)
	assert.Equal(t, "Main Entrance Not Clearly Defined", entranceIssues[0].Title)
	assert.Equal(t, models.StatusNeedsReview, entranceIssues[0].Severity)
	assert.Empty(t, entranceIssues[0].AffectedRooms)
	assert.Equal(t, models.StatusNeedsReview, analysis.MainEntranceDirection)
}

func TestVastuEntranceBands(t *testing.T) {
	t.Parallel()

	svc := newVastuService()

	// Top of the preference list passes quietly
	analysis := svc.Analyze(testPlan(testRoom("room_1", models.RoomLivingRoom, 150, models.East, 2)))
	assert.Empty(t, models.IssuesWithAspect(analysis.Issues, models.AspectEntrance))
	assert.Equal(t, models.StatusCompliant, analysis.MainEntranceDirection)

	// Bottom half of the preference list warns
	analysis = svc.Analyze(testPlan(testRoom("room_1", models.RoomLivingRoom, 150, models.West, 2)))
	entranceIssues := models.IssuesWithAspect(analysis.Issues, models.AspectEntrance)
	require.Len(t, entranceIssues, 1)
	assert.Equal(t, models.StatusWarning, entranceIssues[0].Severity)
	assert.Equal(t, models.StatusWarning, analysis.MainEntranceDirection)

	// Outside the list entirely fails
	analysis = svc.Analyze(testPlan(testRoom("room_1", models.RoomLivingRoom, 150, models.NorthWest, 2)))
	entranceIssues = models.IssuesWithAspect(analysis.Issues, models.AspectEntrance)
	require.Len(t, entranceIssues, 1)
	assert.Equal(t, models.StatusNonCompliant, entranceIssues[0].Severity)
	assert.Equal(t, models.StatusNonCompliant, analysis.MainEntranceDirection)
}

func TestVastuGeneralRoomPlacements(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(
		testRoom("room_1", models.RoomBathroom, 30, models.NorthEast, 0),
		testRoom("room_2", models.RoomStorage, 20, models.North, 0),
		testRoom("room_3", models.RoomBalcony, 15, models.South, 0),
	)

	analysis := svc.Analyze(plan)

	placementIssues := models.IssuesWithAspect(analysis.Issues, models.AspectRoomPlacement)
	require.Len(t, placementIssues, 2)

	byRoom := map[string]models.ComplianceIssue{}
	for _, issue := range placementIssues {
		byRoom[issue.AffectedRooms[0]] = issue
	}
	assert.Equal(t, models.StatusWarning, byRoom["room_1"].Severity, "avoid-list direction warns")
	assert.Equal(t, models.StatusNeedsReview, byRoom["room_2"].Severity, "neutral direction needs review")
}

func TestVastuScoreDeductions(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(testRoom("room_1", models.RoomLivingRoom, 150, models.South, 2))

	analysis := svc.Analyze(plan)

	// Entrance warning (-8), placement review (-3), missing pooja room (-3)
	assert.Equal(t, 86.0, analysis.VastuScore)
	assert.Equal(t, models.StatusCompliant, analysis.OverallStatus)
	assert.Len(t, analysis.Issues, 3)
}

func TestVastuCalculateScoreClamped(t *testing.T) {
	t.Parallel()

	svc := newVastuService()

	var issues []models.ComplianceIssue
	for i := 0; i < 8; i++ {
		issues = append(issues, models.ComplianceIssue{Severity: models.StatusNonCompliant})
	}

	assert.Equal(t, 0.0, svc.calculateScore(nil, issues))
}

func TestVastuSummary(t *testing.T) {
	t.Parallel()

	svc := newVastuService()
	plan := testPlan(testRoom("room_1", models.RoomKitchen, 60, models.North, 1))

	summary := svc.Summary(svc.Analyze(plan))

	assert.Equal(t, 1, summary["critical_issues"])
	aspects, ok := summary["aspect_status"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.StatusNonCompliant, aspects["kitchen"])
}
