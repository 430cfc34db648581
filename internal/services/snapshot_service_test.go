package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripdeck/internal/models/itinerary_models"
	"tripdeck/internal/repositories"
	mem "tripdeck/pkg/memcache"
	"tripdeck/pkg/utils"
)

type fakeSnapshotRepo struct {
	records map[string][]byte
	failPut bool
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{records: make(map[string][]byte)}
}

func (r *fakeSnapshotRepo) Put(ctx context.Context, key string, value []byte) error {
	if r.failPut {
		return utils.ErrStorage
	}
	r.records[key] = value
	return nil
}

func (r *fakeSnapshotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := r.records[key]
	if !ok {
		return nil, utils.ErrSnapshotNotFound
	}
	return v, nil
}

func newSnapshotFixture(t *testing.T) (ItineraryServiceInterface, SnapshotServiceInterface, *fakeSnapshotRepo, mem.ItineraryStore) {
	t.Helper()
	store := mem.NewItineraries(time.Hour)
	engine := NewItineraryService(store, repositories.NewCatalogRepository())
	repo := newFakeSnapshotRepo()
	return engine, NewSnapshotService(store, repo), repo, store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	engine, snapshots, _, _ := newSnapshotFixture(t)
	ctx := context.Background()

	days := fetch(t, engine).Days
	a := addAttraction(t, engine, "paris-eiffel-tower", days[0].ID)
	b := addAttraction(t, engine, "paris-louvre-museum", days[1].ID)
	require.NoError(t, engine.UpdateActivityTime(ctx, testSession, a.ID, "2:15 PM"))

	require.NoError(t, snapshots.Save(ctx, testSession, "Paris", "France"))

	// wreck the in-memory state, then load it back
	require.NoError(t, engine.RemoveActivity(ctx, testSession, a.ID))
	require.NoError(t, engine.RemoveDay(ctx, testSession, days[2].ID))

	loaded, err := snapshots.Load(ctx, testSession)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Days, 3)
	require.Equal(t, days[0].ID, loaded.Days[0].ID)
	require.Equal(t, "Day 1", loaded.Days[0].Title)
	require.Equal(t, []string{a.ID}, activityIDs(loaded.Days[0]))
	require.Equal(t, []string{b.ID}, activityIDs(loaded.Days[1]))
	require.Equal(t, "2:15 PM", loaded.Days[0].Activities[0].Time)
	require.Equal(t, "₹2100", loaded.Days[0].Activities[0].Price)

	// the engine now serves the restored state
	it := fetch(t, engine)
	require.Len(t, it.Days, 3)
	require.Equal(t, []string{a.ID}, activityIDs(it.Days[0]))
}

func TestSaveBeforeFirstFetchKeepsDefaultDays(t *testing.T) {
	t.Parallel()
	engine, snapshots, repo, _ := newSnapshotFixture(t)
	ctx := context.Background()

	// Save without ever fetching the itinerary. The persisted snapshot and
	// the state a later load installs must still hold the default days.
	require.NoError(t, snapshots.Save(ctx, testSession, "Paris", "France"))

	var saved itinerary_models.Itinerary
	require.NoError(t, json.Unmarshal(repo.records["itinerary:"+testSession], &saved))
	require.Len(t, saved.Days, 3)

	loaded, err := snapshots.Load(ctx, testSession)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Days, 3)
	for i, day := range loaded.Days {
		require.Equal(t, itinerary_models.DayTitle(i+1), day.Title)
	}

	require.Len(t, fetch(t, engine).Days, 3)
}

func TestSaveWritesDestinationSummary(t *testing.T) {
	t.Parallel()
	engine, snapshots, repo, _ := newSnapshotFixture(t)
	ctx := context.Background()

	fetch(t, engine)
	require.NoError(t, snapshots.Save(ctx, testSession, "Tokyo", "Japan"))

	raw, ok := repo.records["destination:"+testSession]
	require.True(t, ok)

	var summary DestinationSummary
	require.NoError(t, json.Unmarshal(raw, &summary))
	require.Equal(t, "Tokyo", summary.Name)
	require.Equal(t, "Japan", summary.Country)
	_, err := time.Parse(time.RFC3339, summary.SavedAt)
	require.NoError(t, err)
}

func TestSaveFailureLeavesStateIntact(t *testing.T) {
	t.Parallel()
	engine, snapshots, repo, _ := newSnapshotFixture(t)
	ctx := context.Background()

	a := addAttraction(t, engine, "paris-eiffel-tower", "")
	repo.failPut = true

	err := snapshots.Save(ctx, testSession, "Paris", "France")
	require.ErrorIs(t, err, utils.ErrStorage)

	it := fetch(t, engine)
	require.Equal(t, []string{a.ID}, activityIDs(it.Days[0]))
}

func TestLoadWithoutSavedState(t *testing.T) {
	t.Parallel()
	_, snapshots, _, _ := newSnapshotFixture(t)

	loaded, err := snapshots.Load(context.Background(), testSession)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestLoadDiscardsCorruptSnapshot(t *testing.T) {
	t.Parallel()
	engine, snapshots, repo, _ := newSnapshotFixture(t)
	ctx := context.Background()

	a := addAttraction(t, engine, "paris-eiffel-tower", "")
	repo.records["itinerary:"+testSession] = []byte("{not json")

	loaded, err := snapshots.Load(ctx, testSession)
	require.NoError(t, err)
	require.Nil(t, loaded)

	// in-memory state survives a failed load
	require.Equal(t, []string{a.ID}, activityIDs(fetch(t, engine).Days[0]))
}

func TestLoadDiscardsUnknownVersion(t *testing.T) {
	t.Parallel()
	_, snapshots, repo, _ := newSnapshotFixture(t)

	future := itinerary_models.Itinerary{Version: 99, Days: []itinerary_models.Day{itinerary_models.NewDay(1)}}
	raw, err := json.Marshal(&future)
	require.NoError(t, err)
	repo.records["itinerary:"+testSession] = raw

	loaded, err := snapshots.Load(context.Background(), testSession)
	require.NoError(t, err)
	require.Nil(t, loaded)
}
