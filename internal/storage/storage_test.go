package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dsouzarc/incast/internal/models"
)

func record(id, date, group, createdAt string) models.Record {
	return models.Record{
		ID:              id,
		Date:            date,
		AssignmentGroup: group,
		Predictions:     map[string]float64{"P1": 10, "P2": 20, "P3": 5, "P4": 1},
		CreatedAt:       createdAt,
	}
}

func newStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"sqlite": NewSQLiteStore(filepath.Join(dir, "incast.db")),
		"json":   NewJSONStore(filepath.Join(dir, "incast.json")),
	}
}

func TestStores_RoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()
			if err := store.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			records := []models.Record{
				record("a", "2024-01-01", "NETWORK", "2024-01-01T08:00:00Z"),
				record("b", "2024-01-02", "DATABASE", "2024-01-02T08:00:00Z"),
				record("c", "2024-01-03", "NETWORK", "2024-01-03T08:00:00Z"),
			}
			for _, r := range records {
				if err := store.SaveRecord(r); err != nil {
					t.Fatalf("SaveRecord failed: %v", err)
				}
			}

			// Newest first, limited.
			got, err := store.GetRecords(2)
			if err != nil {
				t.Fatalf("GetRecords failed: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("Expected 2 records, got %d", len(got))
			}
			if got[0].ID != "c" || got[1].ID != "b" {
				t.Errorf("Expected newest-first order c,b, got %s,%s", got[0].ID, got[1].ID)
			}
			if !reflect.DeepEqual(got[0].Predictions, records[2].Predictions) {
				t.Errorf("Predictions did not round-trip: %v", got[0].Predictions)
			}

			// Non-positive limit returns everything.
			all, err := store.GetRecords(0)
			if err != nil {
				t.Fatalf("GetRecords failed: %v", err)
			}
			if len(all) != 3 {
				t.Errorf("Expected 3 records, got %d", len(all))
			}
		})
	}
}

func TestStores_GetGroups(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()
			if err := store.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			for i, group := range []string{"NETWORK", "DATABASE", "NETWORK", "APPS"} {
				r := record(string(rune('a'+i)), "2024-01-01", group, "2024-01-01T08:00:00Z")
				if err := store.SaveRecord(r); err != nil {
					t.Fatalf("SaveRecord failed: %v", err)
				}
			}

			groups, err := store.GetGroups()
			if err != nil {
				t.Fatalf("GetGroups failed: %v", err)
			}
			want := []string{"APPS", "DATABASE", "NETWORK"}
			if !reflect.DeepEqual(groups, want) {
				t.Errorf("Expected %v, got %v", want, groups)
			}
		})
	}
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "incast.json"))
	if err := store.Load(); err == nil {
		t.Error("Expected Load to fail before Init")
	}
}

func TestSQLiteStore_LoadBeforeInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "incast.db"))
	if err := store.Load(); err == nil {
		t.Error("Expected Load to fail before Init")
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "incast.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("Expected second Init to fail")
	}
}
