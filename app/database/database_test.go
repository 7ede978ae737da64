package database

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/tlforge/content-forge/app/compose"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func testDrafts() []compose.Draft {
	return []compose.Draft{
		{Platform: compose.PlatformX, Kind: compose.KindCaption, Payload: compose.Payload{Caption: "hello"}},
		{Platform: compose.PlatformInstagram, Kind: compose.KindCaption, Payload: compose.Payload{Caption: "hello"}},
		{Platform: compose.PlatformTikTok, Kind: compose.KindTikTokScript, Payload: compose.Payload{Script: "hook", Overlay: []string{"line"}}},
		{Platform: compose.PlatformLinkedIn, Kind: compose.KindCaption, Payload: compose.Payload{Caption: "hello"}},
		{Platform: compose.PlatformFacebook, Kind: compose.KindCaption, Payload: compose.Payload{Caption: "hello"}},
	}
}

func TestSourceRepository_CreateAndGet(t *testing.T) {
	repo := NewSourceRepository(openTestDB(t))

	created, err := repo.CreateSource("Presence over fixing", "presence-over-fixing",
		"A short summary.", "https://example.com/blog/presence")
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Created source should have an ID")
	}

	fetched, err := repo.GetSource(created.ID)
	if err != nil {
		t.Fatalf("Failed to get source: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected a source, got nil")
	}
	if fetched.Title != "Presence over fixing" {
		t.Errorf("Unexpected title: '%s'", fetched.Title)
	}
	if fetched.Slug != "presence-over-fixing" {
		t.Errorf("Unexpected slug: '%s'", fetched.Slug)
	}
	if fetched.CreatedAt.IsZero() {
		t.Error("Source should carry a creation timestamp")
	}
}

func TestSourceRepository_GetMissingReturnsNil(t *testing.T) {
	repo := NewSourceRepository(openTestDB(t))

	source, err := repo.GetSource("no-such-id")
	if err != nil {
		t.Fatalf("Missing source should not be an error: %v", err)
	}
	if source != nil {
		t.Errorf("Expected nil for a missing source, got %+v", source)
	}
}

func TestSourceRepository_ListNewestFirst(t *testing.T) {
	repo := NewSourceRepository(openTestDB(t))

	for _, title := range []string{"first", "second", "third"} {
		if _, err := repo.CreateSource(title, title, "", ""); err != nil {
			t.Fatalf("Failed to create source: %v", err)
		}
	}

	sources, err := repo.ListSources(2)
	if err != nil {
		t.Fatalf("Failed to list sources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}

	count, err := repo.GetSourceCount()
	if err != nil {
		t.Fatalf("Failed to count sources: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 sources, got %d", count)
	}
}

func TestDerivativeRepository_BatchAndList(t *testing.T) {
	db := openTestDB(t)
	sourceRepo := NewSourceRepository(db)
	derivativeRepo := NewDerivativeRepository(db)

	source, err := sourceRepo.CreateSource("Title", "title", "", "")
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	if err := derivativeRepo.CreateBatch(source.ID, testDrafts()); err != nil {
		t.Fatalf("Failed to create derivative batch: %v", err)
	}

	derivatives, err := derivativeRepo.ListBySource(source.ID)
	if err != nil {
		t.Fatalf("Failed to list derivatives: %v", err)
	}
	if len(derivatives) != 5 {
		t.Fatalf("Expected 5 derivatives, got %d", len(derivatives))
	}

	for i := 1; i < len(derivatives); i++ {
		if derivatives[i-1].Platform > derivatives[i].Platform {
			t.Errorf("Derivatives not ordered by platform: %s > %s",
				derivatives[i-1].Platform, derivatives[i].Platform)
		}
	}

	for _, d := range derivatives {
		if d.Status != StatusDraft {
			t.Errorf("New derivative should be a draft, got '%s'", d.Status)
		}
		var payload compose.Payload
		if err := json.Unmarshal(d.Payload, &payload); err != nil {
			t.Errorf("Payload for %s is not valid JSON: %v", d.Platform, err)
		}
	}
}

func TestDerivativeRepository_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	sourceRepo := NewSourceRepository(db)
	derivativeRepo := NewDerivativeRepository(db)

	source, err := sourceRepo.CreateSource("Title", "title", "", "")
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}
	if err := derivativeRepo.CreateBatch(source.ID, testDrafts()); err != nil {
		t.Fatalf("Failed to create derivative batch: %v", err)
	}

	derivatives, err := derivativeRepo.ListBySource(source.ID)
	if err != nil {
		t.Fatalf("Failed to list derivatives: %v", err)
	}

	updated, err := derivativeRepo.UpdateStatus(derivatives[0].ID, StatusArchived)
	if err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}
	if !updated {
		t.Fatal("Expected the status update to affect a row")
	}

	// Archived derivatives disappear from the dashboard listing
	remaining, err := derivativeRepo.ListBySource(source.ID)
	if err != nil {
		t.Fatalf("Failed to list derivatives: %v", err)
	}
	if len(remaining) != 4 {
		t.Errorf("Expected 4 visible derivatives after archiving, got %d", len(remaining))
	}

	counts, err := derivativeRepo.GetStatusCounts()
	if err != nil {
		t.Fatalf("Failed to get status counts: %v", err)
	}
	if counts[StatusArchived] != 1 {
		t.Errorf("Expected 1 archived derivative, got %d", counts[StatusArchived])
	}
	if counts[StatusDraft] != 4 {
		t.Errorf("Expected 4 draft derivatives, got %d", counts[StatusDraft])
	}
}

func TestDerivativeRepository_UpdateStatusUnknownID(t *testing.T) {
	derivativeRepo := NewDerivativeRepository(openTestDB(t))

	updated, err := derivativeRepo.UpdateStatus("no-such-id", StatusApproved)
	if err != nil {
		t.Fatalf("Unknown ID should not be an error: %v", err)
	}
	if updated {
		t.Error("Expected no rows to be updated for an unknown ID")
	}
}

func TestDerivativeRepository_OrphanedSourceListsEmpty(t *testing.T) {
	db := openTestDB(t)
	sourceRepo := NewSourceRepository(db)
	derivativeRepo := NewDerivativeRepository(db)

	source, err := sourceRepo.CreateSource("Orphan", "orphan", "", "")
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	derivatives, err := derivativeRepo.ListBySource(source.ID)
	if err != nil {
		t.Fatalf("Listing an orphaned source should not fail: %v", err)
	}
	if len(derivatives) != 0 {
		t.Errorf("Expected no derivatives for an orphaned source, got %d", len(derivatives))
	}
}
