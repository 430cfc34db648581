package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripdeck/internal/models/itinerary_models"
	"tripdeck/internal/repositories"
	mem "tripdeck/pkg/memcache"
	"tripdeck/pkg/utils"
)

const testSession = "session-a"

func newEngine(t *testing.T) ItineraryServiceInterface {
	t.Helper()
	store := mem.NewItineraries(time.Hour)
	return NewItineraryService(store, repositories.NewCatalogRepository())
}

func fetch(t *testing.T, svc ItineraryServiceInterface) *itinerary_models.Itinerary {
	t.Helper()
	it, err := svc.GetItinerary(context.Background(), testSession)
	require.NoError(t, err)
	return it
}

func addAttraction(t *testing.T, svc ItineraryServiceInterface, attractionID, dayID string) itinerary_models.Activity {
	t.Helper()
	act, err := svc.AddActivityFromCatalog(context.Background(), testSession, attractionID, dayID)
	require.NoError(t, err)
	return act
}

func TestGetItineraryInitializesDefaultDays(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	it := fetch(t, svc)
	require.Len(t, it.Days, itinerary_models.DefaultDayCount)
	require.Equal(t, "Day 1", it.Days[0].Title)
	require.Equal(t, "Day 2", it.Days[1].Title)
	require.Equal(t, "Day 3", it.Days[2].Title)
	for _, d := range it.Days {
		require.Empty(t, d.Activities)
		require.NotEmpty(t, d.ID)
	}
}

func TestDayTitlesStayContiguous(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	fetch(t, svc)
	for i := 0; i < 4; i++ {
		_, err := svc.AddDay(ctx, testSession)
		require.NoError(t, err)
	}

	it := fetch(t, svc)
	require.Len(t, it.Days, 7)

	require.NoError(t, svc.RemoveDay(ctx, testSession, it.Days[2].ID))
	require.NoError(t, svc.RemoveDay(ctx, testSession, it.Days[5].ID))

	it = fetch(t, svc)
	require.Len(t, it.Days, 5)
	for i, d := range it.Days {
		require.Equal(t, itinerary_models.DayTitle(i+1), d.Title)
	}
}

func TestRemoveLastDayRejected(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	day, err := svc.AddDay(ctx, testSession)
	require.NoError(t, err)
	require.Equal(t, "Day 1", day.Title)

	err = svc.RemoveDay(ctx, testSession, day.ID)
	require.ErrorIs(t, err, utils.ErrLastDay)

	it := fetch(t, svc)
	require.Len(t, it.Days, 1)
	require.Equal(t, day.ID, it.Days[0].ID)
}

func TestRemoveUnknownDayIsNoOp(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	fetch(t, svc)
	require.NoError(t, svc.RemoveDay(context.Background(), testSession, "day-nope"))
	require.Len(t, fetch(t, svc).Days, 3)
}

func TestAddActivityInitializesAndDefaultsToDayOne(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	act := addAttraction(t, svc, "paris-eiffel-tower", "")
	require.NotEmpty(t, act.ID)
	require.Equal(t, "Eiffel Tower", act.Name)
	require.Equal(t, "₹2100", act.Price)
	require.Equal(t, itinerary_models.ActivityTypeAttraction, act.Type)
	require.Equal(t, "paris-eiffel-tower", act.SourceAttractionID)

	it := fetch(t, svc)
	require.Len(t, it.Days, itinerary_models.DefaultDayCount)
	require.Len(t, it.Days[0].Activities, 1)
	require.Equal(t, act.ID, it.Days[0].Activities[0].ID)

	parsed, err := time.Parse("3:04 PM", act.Time)
	require.NoError(t, err)
	require.GreaterOrEqual(t, parsed.Hour(), 9)
	require.LessOrEqual(t, parsed.Hour(), 17)
	require.Zero(t, parsed.Minute()%15)
}

func TestAddActivityToGivenDay(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	days := fetch(t, svc).Days
	act := addAttraction(t, svc, "paris-louvre-museum", days[1].ID)

	it := fetch(t, svc)
	require.Empty(t, it.Days[0].Activities)
	require.Len(t, it.Days[1].Activities, 1)
	require.Equal(t, act.ID, it.Days[1].Activities[0].ID)
}

func TestAddActivityUnknownAttraction(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	_, err := svc.AddActivityFromCatalog(context.Background(), testSession, "atlantis-palace", "")
	require.ErrorIs(t, err, utils.ErrAttractionNotFound)
}

func TestAddActivityUnknownDay(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	fetch(t, svc)
	_, err := svc.AddActivityFromCatalog(context.Background(), testSession, "paris-eiffel-tower", "day-nope")
	require.ErrorIs(t, err, utils.ErrDayNotFound)
	require.Empty(t, fetch(t, svc).Days[0].Activities)
}

func TestRemoveActivity(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	keep := addAttraction(t, svc, "paris-eiffel-tower", "")
	gone := addAttraction(t, svc, "paris-montmartre", "")

	require.NoError(t, svc.RemoveActivity(ctx, testSession, gone.ID))
	// unknown ids are tolerated, not errors
	require.NoError(t, svc.RemoveActivity(ctx, testSession, "activity-nope"))

	it := fetch(t, svc)
	require.Len(t, it.Days[0].Activities, 1)
	require.Equal(t, keep.ID, it.Days[0].Activities[0].ID)
}

func TestUpdateActivityTime(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	act := addAttraction(t, svc, "paris-eiffel-tower", "")
	require.NoError(t, svc.UpdateActivityTime(ctx, testSession, act.ID, "11:30 AM"))
	require.NoError(t, svc.UpdateActivityTime(ctx, testSession, "activity-nope", "1:00 PM"))

	it := fetch(t, svc)
	require.Equal(t, "11:30 AM", it.Days[0].Activities[0].Time)
}

func TestReorderPermutation(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	a := addAttraction(t, svc, "paris-eiffel-tower", "")
	b := addAttraction(t, svc, "paris-louvre-museum", "")
	c := addAttraction(t, svc, "paris-seine-cruise", "")
	day := fetch(t, svc).Days[0]

	require.NoError(t, svc.ReorderWithinDay(ctx, testSession, day.ID, []string{c.ID, a.ID, b.ID}))

	got := fetch(t, svc).Days[0]
	require.Equal(t, []string{c.ID, a.ID, b.ID}, activityIDs(got))
}

func TestReorderDropsStaleIDsAndKeepsUnnamed(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	a := addAttraction(t, svc, "paris-eiffel-tower", "")
	b := addAttraction(t, svc, "paris-louvre-museum", "")
	c := addAttraction(t, svc, "paris-seine-cruise", "")
	day := fetch(t, svc).Days[0]

	// "activity-stale" was removed before this drag event landed; b is
	// missing from the reported order entirely.
	require.NoError(t, svc.ReorderWithinDay(ctx, testSession, day.ID, []string{c.ID, "activity-stale", a.ID}))

	got := fetch(t, svc).Days[0]
	require.Equal(t, []string{c.ID, a.ID, b.ID}, activityIDs(got))
}

func TestReorderRejectsForeignActivity(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	days := fetch(t, svc).Days
	a := addAttraction(t, svc, "paris-eiffel-tower", days[0].ID)
	other := addAttraction(t, svc, "paris-louvre-museum", days[1].ID)

	err := svc.ReorderWithinDay(ctx, testSession, days[0].ID, []string{other.ID, a.ID})
	require.ErrorIs(t, err, utils.ErrReorderMismatch)

	// rejected reorders leave both days untouched
	it := fetch(t, svc)
	require.Equal(t, []string{a.ID}, activityIDs(it.Days[0]))
	require.Equal(t, []string{other.ID}, activityIDs(it.Days[1]))
}

func TestReorderRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	a := addAttraction(t, svc, "paris-eiffel-tower", "")
	b := addAttraction(t, svc, "paris-louvre-museum", "")
	day := fetch(t, svc).Days[0]

	err := svc.ReorderWithinDay(ctx, testSession, day.ID, []string{a.ID, a.ID, b.ID})
	require.ErrorIs(t, err, utils.ErrReorderMismatch)
	require.Equal(t, []string{a.ID, b.ID}, activityIDs(fetch(t, svc).Days[0]))
}

func TestReorderUnknownDayIsNoOp(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)

	a := addAttraction(t, svc, "paris-eiffel-tower", "")
	require.NoError(t, svc.ReorderWithinDay(context.Background(), testSession, "day-nope", []string{a.ID}))
	require.Equal(t, []string{a.ID}, activityIDs(fetch(t, svc).Days[0]))
}

func TestMoveActivityAcrossDays(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	days := fetch(t, svc).Days
	a := addAttraction(t, svc, "paris-eiffel-tower", days[1].ID)
	b := addAttraction(t, svc, "paris-louvre-museum", days[1].ID)
	moved := addAttraction(t, svc, "paris-seine-cruise", days[0].ID)

	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, moved.ID, days[0].ID, days[1].ID, 1))

	it := fetch(t, svc)
	require.Empty(t, it.Days[0].Activities)
	require.Equal(t, []string{a.ID, moved.ID, b.ID}, activityIDs(it.Days[1]))
}

func TestMoveClampsTargetIndex(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	days := fetch(t, svc).Days
	a := addAttraction(t, svc, "paris-eiffel-tower", days[0].ID)
	b := addAttraction(t, svc, "paris-louvre-museum", days[0].ID)
	c := addAttraction(t, svc, "paris-seine-cruise", days[1].ID)

	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, a.ID, days[0].ID, days[1].ID, 99))
	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, b.ID, days[0].ID, days[1].ID, -5))

	it := fetch(t, svc)
	require.Empty(t, it.Days[0].Activities)
	require.Equal(t, []string{b.ID, c.ID, a.ID}, activityIDs(it.Days[1]))
}

func TestMoveUnknownIsNoOp(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	days := fetch(t, svc).Days
	a := addAttraction(t, svc, "paris-eiffel-tower", days[0].ID)

	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, a.ID, "day-nope", days[1].ID, 0))
	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, a.ID, days[0].ID, "day-nope", 0))
	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, "activity-nope", days[0].ID, days[1].ID, 0))

	it := fetch(t, svc)
	require.Equal(t, []string{a.ID}, activityIDs(it.Days[0]))
	require.Empty(t, it.Days[1].Activities)
}

func TestEiffelTowerScenario(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	act := addAttraction(t, svc, "paris-eiffel-tower", "")

	it := fetch(t, svc)
	require.Len(t, it.Days, 3)
	require.Equal(t, act.ID, it.Days[0].Activities[0].ID)

	require.NoError(t, svc.MoveActivityAcrossDays(ctx, testSession, act.ID, it.Days[0].ID, it.Days[1].ID, 0))

	it = fetch(t, svc)
	require.Empty(t, it.Days[0].Activities)
	require.Len(t, it.Days[1].Activities, 1)
	require.Equal(t, "Eiffel Tower", it.Days[1].Activities[0].Name)
	require.Equal(t, "₹2100", it.Days[1].Activities[0].Price)
}

func TestRemoveMiddleDayKeepsNeighbors(t *testing.T) {
	t.Parallel()
	svc := newEngine(t)
	ctx := context.Background()

	days := fetch(t, svc).Days
	first := addAttraction(t, svc, "paris-eiffel-tower", days[0].ID)
	addAttraction(t, svc, "paris-louvre-museum", days[1].ID)
	last := addAttraction(t, svc, "paris-seine-cruise", days[2].ID)

	require.NoError(t, svc.RemoveDay(ctx, testSession, days[1].ID))

	it := fetch(t, svc)
	require.Len(t, it.Days, 2)
	require.Equal(t, "Day 1", it.Days[0].Title)
	require.Equal(t, "Day 2", it.Days[1].Title)
	require.Equal(t, []string{first.ID}, activityIDs(it.Days[0]))
	require.Equal(t, []string{last.ID}, activityIDs(it.Days[1]))
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	store := mem.NewItineraries(time.Hour)
	svc := NewItineraryService(store, repositories.NewCatalogRepository())
	ctx := context.Background()

	_, err := svc.AddActivityFromCatalog(ctx, "session-a", "paris-eiffel-tower", "")
	require.NoError(t, err)

	other, err := svc.GetItinerary(ctx, "session-b")
	require.NoError(t, err)
	for _, d := range other.Days {
		require.Empty(t, d.Activities)
	}
}

func activityIDs(day itinerary_models.Day) []string {
	ids := make([]string, 0, len(day.Activities))
	for _, a := range day.Activities {
		ids = append(ids, a.ID)
	}
	return ids
}
