package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/repository"
)

type stubGenerator struct{}

func (stubGenerator) RoutePlan(spots []entity.ScenicSpot, _ string) string {
	return "route:" + joinSpotNames(spots)
}
func (stubGenerator) TransportPlan(spots []entity.ScenicSpot, _ string) string {
	return "transport:" + joinSpotNames(spots)
}
func (stubGenerator) StrategyPlan(spots []entity.ScenicSpot, _ string) string {
	return "strategy:" + joinSpotNames(spots)
}

func joinSpotNames(spots []entity.ScenicSpot) string {
	names := make([]string, len(spots))
	for i, sp := range spots {
		names[i] = sp.Name
	}
	return strings.Join(names, ",")
}

func newAssistant(t *testing.T) (*AssistantService, *gorm.DB) {
	db := openTestDB(t)
	for _, name := range []string{"白石山", "野三坡", "清西陵"} {
		require.NoError(t, db.Create(&entity.ScenicSpot{Name: name}).Error)
	}
	svc := NewAssistantService(
		repository.NewPlanRepository(db),
		repository.NewScenicRepository(db),
		stubGenerator{},
	)
	return svc, db
}

func TestMatchSpots(t *testing.T) {
	svc, _ := newAssistant(t)

	t.Run("exact name", func(t *testing.T) {
		matched, notFound, err := svc.MatchSpots([]string{"白石山"})
		require.NoError(t, err)
		require.Empty(t, notFound)
		require.Len(t, matched, 1)
		require.Equal(t, "白石山", matched[0].Name)
	})

	t.Run("suffix stripped", func(t *testing.T) {
		// "白石山景区" is not in the catalog, "白石山" is
		matched, notFound, err := svc.MatchSpots([]string{"白石山景区"})
		require.NoError(t, err)
		require.Empty(t, notFound)
		require.Len(t, matched, 1)
		require.Equal(t, "白石山", matched[0].Name)
	})

	t.Run("unknown reported not failed", func(t *testing.T) {
		matched, notFound, err := svc.MatchSpots([]string{"野三坡", "不存在的地方"})
		require.NoError(t, err)
		require.Len(t, matched, 1)
		require.Equal(t, []string{"不存在的地方"}, notFound)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		matched, _, err := svc.MatchSpots([]string{"白石山", "白石山景区", " 白石山 "})
		require.NoError(t, err)
		require.Len(t, matched, 1)
	})

	t.Run("blank names skipped", func(t *testing.T) {
		matched, notFound, err := svc.MatchSpots([]string{"", "  ", "清西陵"})
		require.NoError(t, err)
		require.Empty(t, notFound)
		require.Len(t, matched, 1)
	})
}

func TestPlanGeneratesSectionsByType(t *testing.T) {
	svc, _ := newAssistant(t)

	res, err := svc.Plan(nil, &PlanReq{ScenicSpots: []string{"白石山", "野三坡"}, QueryType: "route"})
	require.NoError(t, err)
	require.Equal(t, "route:白石山,野三坡", res.RoutePlan)
	require.Empty(t, res.TransportPlan)
	require.Empty(t, res.StrategyPlan)
	require.Equal(t, res.RoutePlan, res.FullResponse)

	res, err = svc.Plan(nil, &PlanReq{ScenicSpots: []string{"白石山"}})
	require.NoError(t, err)
	require.Equal(t, "general", res.QueryType)
	require.NotEmpty(t, res.RoutePlan)
	require.NotEmpty(t, res.TransportPlan)
	require.NotEmpty(t, res.StrategyPlan)
	require.Equal(t, 2, strings.Count(res.FullResponse, "\n\n"))
}

func TestPlanNoSpotMatched(t *testing.T) {
	svc, db := newAssistant(t)

	_, err := svc.Plan(nil, &PlanReq{ScenicSpots: []string{"不存在的地方"}})
	require.ErrorIs(t, err, apperr.ErrValidation)

	var n int64
	require.NoError(t, db.Model(&entity.PlanQuery{}).Count(&n).Error)
	require.EqualValues(t, 0, n)
}

func TestPlanHistoryAndFavorite(t *testing.T) {
	svc, db := newAssistant(t)

	user := entity.User{Email: "u@example.com", Role: "user"}
	require.NoError(t, db.Create(&user).Error)

	// anonymous query is logged without a user
	_, err := svc.Plan(nil, &PlanReq{ScenicSpots: []string{"白石山"}})
	require.NoError(t, err)

	res, err := svc.Plan(&user.ID, &PlanReq{ScenicSpots: []string{"野三坡"}, QueryType: "strategy"})
	require.NoError(t, err)

	history, err := svc.History(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, res.QueryID, history[0].ID)
	require.Contains(t, history[0].ScenicSpots, "野三坡")

	require.NoError(t, svc.SetFavorite(user.ID, res.QueryID, true))
	q, err := repository.NewPlanRepository(db).GetForUser(user.ID, res.QueryID)
	require.NoError(t, err)
	require.True(t, q.IsFavorite)

	// cannot favorite someone else's query
	other := entity.User{Email: "o@example.com", Role: "user"}
	require.NoError(t, db.Create(&other).Error)
	require.ErrorIs(t, svc.SetFavorite(other.ID, res.QueryID, true), apperr.ErrNotFound)
}
