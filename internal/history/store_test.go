package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/gsqget/gsq-downloader/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New("file:" + filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func finishedJob(id string, startedAt time.Time) *model.SearchJob {
	return &model.SearchJob{
		ID: id,
		Config: model.SearchConfig{
			RegionName:       "Mount Isa Mineral Province",
			DataTypeName:     "Mining Data",
			MaxDatasets:      20,
			OutputDir:        "/tmp/gsq_polygon_data",
			PreciseFiltering: true,
		},
		Query:      "mining OR exploration OR resource",
		Status:     model.JobStatusCompleted,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Minute),
		Report:     &model.DownloadReport{DatasetsFound: 4, ResourcesAttempted: 9, ResourcesSaved: 7},
	}
}

func TestRecordAndRecent(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	is.NoErr(store.RecordJob(ctx, finishedJob("run-1", base)))
	is.NoErr(store.RecordJob(ctx, finishedJob("run-2", base.Add(time.Hour))))

	runs, err := store.Recent(ctx, 10)
	is.NoErr(err)
	is.Equal(len(runs), 2)

	// Newest first.
	is.Equal(runs[0].ID, "run-2")
	is.Equal(runs[1].ID, "run-1")

	run := runs[1]
	is.Equal(run.Region, "Mount Isa Mineral Province")
	is.Equal(run.Query, "mining OR exploration OR resource")
	is.Equal(run.Status, "Completed")
	is.Equal(run.DatasetsFound, 4)
	is.Equal(run.ResourcesAttempted, 9)
	is.Equal(run.ResourcesSaved, 7)
	is.True(run.Precise)
	is.True(!run.Preview)
	is.True(run.StartedAt.Equal(base))
}

func TestRecent_Limit(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		job := finishedJob("run-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
		is.NoErr(store.RecordJob(ctx, job))
	}

	runs, err := store.Recent(ctx, 3)
	is.NoErr(err)
	is.Equal(len(runs), 3)
}

func TestRecordJob_PreviewCounts(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	job := &model.SearchJob{
		ID:         "preview-1",
		Config:     model.SearchConfig{RegionName: "Cairns Region", DataTypeName: "Geological Data", MaxDatasets: 5, PreviewMode: true},
		Query:      "geology",
		Status:     model.JobStatusCompleted,
		StartedAt:  time.Now().UTC().Truncate(time.Second),
		FinishedAt: time.Now().UTC().Truncate(time.Second),
		Results:    &model.ResultSet{Results: []model.Dataset{{Title: "a"}, {Title: "b"}}},
	}
	is.NoErr(store.RecordJob(ctx, job))

	runs, err := store.Recent(ctx, 1)
	is.NoErr(err)
	is.Equal(runs[0].DatasetsFound, 2)
	is.True(runs[0].Preview)
	is.Equal(runs[0].ResourcesAttempted, 0)
}

func TestRecent_Empty(t *testing.T) {
	is := is.New(t)
	store := newTestStore(t)

	runs, err := store.Recent(context.Background(), 10)
	is.NoErr(err)
	is.Equal(len(runs), 0)
}
