package storage

import (
	"path/filepath"
	"testing"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "notiplan.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteConfigRoundTrip(t *testing.T) {
	store := newTestStore(t)

	cfg := models.Config{
		Profile:            constants.ProfileEmoji,
		TaskDatabaseID:     "task-db-id",
		CalendarDatabaseID: "cal-db-id",
		WorkspaceName:      "Acme",
		Timezone:           "America/New_York",
	}
	if err := store.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	got, err := store.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("config = %+v, want %+v", got, cfg)
	}
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	first := models.Config{Profile: constants.ProfilePlain, TaskDatabaseID: "a"}
	second := models.Config{Profile: constants.ProfileEmoji, TaskDatabaseID: "b"}
	if err := store.SaveConfig(first); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}
	if err := store.SaveConfig(second); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	got, err := store.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() failed: %v", err)
	}
	if got.TaskDatabaseID != "b" || got.Profile != constants.ProfileEmoji {
		t.Errorf("config = %+v, want the second save", got)
	}
}

func TestSQLiteGetConfigBeforeSetup(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetConfig(); err == nil {
		t.Error("GetConfig() on an empty store should fail")
	}
}

func TestSQLiteLoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}
