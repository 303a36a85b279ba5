package model

import (
	"testing"
	"time"
)

func TestSearchJob_ElapsedString(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{30 * time.Second, "00:30"},
		{90 * time.Second, "01:30"},
		{time.Hour, "01:00:00"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
	}

	for _, test := range tests {
		job := &SearchJob{StartedAt: base, FinishedAt: base.Add(test.elapsed)}
		result := job.ElapsedString()
		if result != test.expected {
			t.Errorf("ElapsedString() with elapsed=%v = %s, expected %s", test.elapsed, result, test.expected)
		}
	}
}

func TestSearchJob_ElapsedStringUnfinished(t *testing.T) {
	job := &SearchJob{StartedAt: time.Now()}
	if job.ElapsedString() != "—" {
		t.Errorf("ElapsedString() for unfinished job = %s, expected —", job.ElapsedString())
	}
}

func TestSearchJob_OutcomeLine(t *testing.T) {
	preview := &SearchJob{
		Status:  JobStatusCompleted,
		Results: &ResultSet{Results: []Dataset{{Title: "a"}, {Title: "b"}}},
	}
	if preview.OutcomeLine() != "Preview found 2 datasets" {
		t.Errorf("unexpected preview outcome: %s", preview.OutcomeLine())
	}

	download := &SearchJob{
		Status: JobStatusCompleted,
		Report: &DownloadReport{DatasetsFound: 3, ResourcesAttempted: 10, ResourcesSaved: 8},
	}
	if download.OutcomeLine() != "Downloaded 8/10 resources from 3 datasets" {
		t.Errorf("unexpected download outcome: %s", download.OutcomeLine())
	}

	failed := &SearchJob{Status: JobStatusError, LastError: "portal unreachable"}
	if failed.OutcomeLine() != "Error: portal unreachable" {
		t.Errorf("unexpected error outcome: %s", failed.OutcomeLine())
	}
}

func TestJobStatus_Transitions(t *testing.T) {
	activeStatuses := []JobStatus{JobStatusSearching, JobStatusDownloading, JobStatusCancelling}
	for _, status := range activeStatuses {
		if !status.IsActive() {
			t.Errorf("Expected %s to be active", status)
		}
		if status.IsFinished() {
			t.Errorf("Expected %s to not be finished", status)
		}
	}

	finishedStatuses := []JobStatus{JobStatusCompleted, JobStatusCancelled, JobStatusError}
	for _, status := range finishedStatuses {
		if status.IsActive() {
			t.Errorf("Expected %s to not be active", status)
		}
		if !status.IsFinished() {
			t.Errorf("Expected %s to be finished", status)
		}
	}

	if JobStatusPending.IsActive() || JobStatusPending.IsFinished() {
		t.Error("Pending should be neither active nor finished")
	}
}
