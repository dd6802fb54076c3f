package cache

import (
	"path/filepath"
	"testing"
	"time"

	"welboard/internal/menu"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func testCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "menucache.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("closing cache: %v", err)
		}
	})
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := testCache(t)

	meals := []menu.RawMeal{
		{Course: "한식", Name: "비빔밥", SubMenu: "쌀밥,나물"},
		{Course: "일품", Name: "돈까스"},
	}
	if err := c.Put(testDate, "2", meals); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(testDate, "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0].Name != "비빔밥" {
		t.Errorf("cached meals = %+v", got)
	}
}

func TestCacheMisses(t *testing.T) {
	c := testCache(t)

	if _, ok, err := c.Get(testDate, "2"); err != nil || ok {
		t.Fatalf("empty cache: ok = %v, err = %v, want miss", ok, err)
	}

	// Different slot is a different key.
	if err := c.Put(testDate, "2", []menu.RawMeal{{Name: "비빔밥"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, err := c.Get(testDate, "3"); err != nil || ok {
		t.Fatalf("other slot: ok = %v, err = %v, want miss", ok, err)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := testCache(t)

	if err := c.Put(testDate, "2", []menu.RawMeal{{Name: "비빔밥"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, ok, err := c.Get(testDate, "2"); err != nil || ok {
		t.Fatalf("stale entry: ok = %v, err = %v, want miss", ok, err)
	}
}

func TestCacheReplaces(t *testing.T) {
	c := testCache(t)

	if err := c.Put(testDate, "2", []menu.RawMeal{{Name: "비빔밥"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put(testDate, "2", []menu.RawMeal{{Name: "돈까스"}}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, ok, err := c.Get(testDate, "2")
	if err != nil || !ok {
		t.Fatalf("get: ok = %v, err = %v", ok, err)
	}
	if len(got) != 1 || got[0].Name != "돈까스" {
		t.Errorf("cached meals = %+v, want replacement", got)
	}
}
