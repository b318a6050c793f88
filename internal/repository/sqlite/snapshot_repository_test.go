package sqlite

import (
	"context"
	"testing"

	"theme-parity/internal/domain"
)

func setupSnapshotTestDB(t *testing.T) (*DB, context.Context) {
	t.Helper()
	db, err := NewDB(Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return db, context.Background()
}

func strPtr(s string) *string {
	return &s
}

func sampleReports() []domain.ThemeReport {
	return []domain.ThemeReport{
		{
			Name:            "GreenScreen",
			DescriptorTitle: strPtr("{{|white:black:U|}}"),
			INITitle:        strPtr("${_W_}${_U_}"),
			TitleColor:      []string{"WHITE", "BLACK", "OFF"},
			ScreenColor:     []string{"BLACK", "GREEN", "ON"},
		},
		{Name: "Orphan"},
	}
}

func TestSnapshotRepository_Save(t *testing.T) {
	db, ctx := setupSnapshotTestDB(t)
	defer db.Close()

	repo := NewSnapshotRepository(db)

	t.Run("save and reload round trip", func(t *testing.T) {
		snapshot := domain.NewSnapshot("baseline", sampleReports())

		if err := repo.Save(ctx, snapshot); err != nil {
			t.Fatalf("failed to save snapshot: %v", err)
		}
		if snapshot.ID == 0 {
			t.Error("expected ID to be set after insert")
		}

		retrieved, err := repo.GetByID(ctx, snapshot.ID)
		if err != nil {
			t.Fatalf("failed to retrieve snapshot: %v", err)
		}

		if retrieved.Note != "baseline" {
			t.Errorf("expected note %q, got %q", "baseline", retrieved.Note)
		}
		if len(retrieved.Reports) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(retrieved.Reports))
		}

		first := retrieved.Reports[0]
		if first.Name != "GreenScreen" {
			t.Errorf("expected first report GreenScreen, got %s", first.Name)
		}
		if first.DescriptorTitle == nil || *first.DescriptorTitle != "{{|white:black:U|}}" {
			t.Errorf("descriptor title not preserved: %v", first.DescriptorTitle)
		}
		if len(first.ScreenColor) != 3 || first.ScreenColor[1] != "GREEN" {
			t.Errorf("screen color triple not preserved: %v", first.ScreenColor)
		}

		second := retrieved.Reports[1]
		if second.DescriptorTitle != nil || second.TitleColor != nil {
			t.Error("expected absent fields to stay absent after round trip")
		}
	})

	t.Run("validation error on empty snapshot", func(t *testing.T) {
		snapshot := domain.NewSnapshot("empty", nil)

		if err := repo.Save(ctx, snapshot); err == nil {
			t.Error("expected validation error for snapshot without reports")
		}
	})
}

func TestSnapshotRepository_List(t *testing.T) {
	db, ctx := setupSnapshotTestDB(t)
	defer db.Close()

	repo := NewSnapshotRepository(db)

	for _, note := range []string{"first", "second", "third"} {
		snapshot := domain.NewSnapshot(note, sampleReports())
		if err := repo.Save(ctx, snapshot); err != nil {
			t.Fatalf("failed to save snapshot %q: %v", note, err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		snapshots, err := repo.List(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list snapshots: %v", err)
		}
		if len(snapshots) != 3 {
			t.Fatalf("expected 3 snapshots, got %d", len(snapshots))
		}
		if snapshots[0].Note != "third" {
			t.Errorf("expected newest snapshot first, got %q", snapshots[0].Note)
		}
	})

	t.Run("limit applies", func(t *testing.T) {
		snapshots, err := repo.List(ctx, 2)
		if err != nil {
			t.Fatalf("failed to list snapshots: %v", err)
		}
		if len(snapshots) != 2 {
			t.Errorf("expected 2 snapshots, got %d", len(snapshots))
		}
	})

	t.Run("count matches", func(t *testing.T) {
		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("failed to count snapshots: %v", err)
		}
		if count != 3 {
			t.Errorf("expected count 3, got %d", count)
		}
	})
}

func TestSnapshotRepository_Delete(t *testing.T) {
	db, ctx := setupSnapshotTestDB(t)
	defer db.Close()

	repo := NewSnapshotRepository(db)

	snapshot := domain.NewSnapshot("doomed", sampleReports())
	if err := repo.Save(ctx, snapshot); err != nil {
		t.Fatalf("failed to save snapshot: %v", err)
	}

	if err := repo.Delete(ctx, snapshot.ID); err != nil {
		t.Fatalf("failed to delete snapshot: %v", err)
	}

	if _, err := repo.GetByID(ctx, snapshot.ID); err == nil {
		t.Error("expected error retrieving deleted snapshot")
	}

	if err := repo.Delete(ctx, snapshot.ID); err == nil {
		t.Error("expected error deleting missing snapshot")
	}
}

func TestSnapshotRepository_Clear(t *testing.T) {
	db, ctx := setupSnapshotTestDB(t)
	defer db.Close()

	repo := NewSnapshotRepository(db)

	for i := 0; i < 2; i++ {
		snapshot := domain.NewSnapshot("", sampleReports())
		if err := repo.Save(ctx, snapshot); err != nil {
			t.Fatalf("failed to save snapshot: %v", err)
		}
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("failed to clear snapshots: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count snapshots: %v", err)
	}
	if count != 0 {
		t.Errorf("expected count 0 after clear, got %d", count)
	}
}
