package settings

import (
	"context"
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

func testRepo(t *testing.T) *BoltRepository {
	t.Helper()

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "panel.db"), 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewBoltRepository(db)
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != Default() {
		t.Errorf("Load = %+v, want defaults", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := testRepo(t)

	in := Settings{
		Protocol:      "https",
		Server:        "engine:8621",
		ConAcexy:      true,
		ExportSTRM:    true,
		DirectSources: "http://a.example/list.m3u\nhttp://b.example/list.m3u",
		MovieSources:  "http://c.example/movies.m3u",
	}
	if err := repo.Save(context.Background(), in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != in {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, in)
	}
}

func TestSaveRejectsInvalidAndKeepsPrevious(t *testing.T) {
	repo := testRepo(t)

	valid := Settings{Protocol: "http", Server: "127.0.0.1:6878", ConAcexy: true}
	if err := repo.Save(context.Background(), valid); err != nil {
		t.Fatal(err)
	}

	invalid := Settings{Protocol: "gopher", Server: "127.0.0.1:6878"}
	if err := repo.Save(context.Background(), invalid); err == nil {
		t.Fatal("expected validation error")
	}

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != valid {
		t.Errorf("previous settings lost after rejected save: %+v", got)
	}
}

func TestContextCancelled(t *testing.T) {
	repo := testRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Load(ctx); err == nil {
		t.Error("Load should fail with cancelled context")
	}
	if err := repo.Save(ctx, Default()); err == nil {
		t.Error("Save should fail with cancelled context")
	}
}

func TestNewBoltRepositoryNilDB(t *testing.T) {
	if _, err := NewBoltRepository(nil); err == nil {
		t.Error("expected error for nil db")
	}
}
