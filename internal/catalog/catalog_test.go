package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("expected bundled catalog to parse, got %v", err)
	}
	if c.Title != "Nechronica" {
		t.Fatalf("expected title Nechronica, got %q", c.Title)
	}
	if len(c.Categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(c.Categories))
	}
	if len(c.Doll.Positions) != 6 || len(c.Doll.ReinforcementParts) != 3 || len(c.Doll.Classes) != 6 {
		t.Fatalf("unexpected doll dropdowns: %+v", c.Doll)
	}
	if len(c.Necromancer.Enemies) != 13 {
		t.Fatalf("expected 13 enemies, got %d", len(c.Necromancer.Enemies))
	}
	if c.Necromancer.Enemies[0].ID != "mon_zombie_basic" {
		t.Fatalf("expected zombie first, got %+v", c.Necromancer.Enemies[0])
	}
}

func TestEnemyByName(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	e, ok := c.EnemyByName("Lich")
	if !ok || e.ID != "mon_lich" {
		t.Fatalf("expected mon_lich, got %+v %v", e, ok)
	}
	if _, ok := c.EnemyByName("Beholder"); ok {
		t.Fatalf("did not expect a match")
	}
}

func TestLabel(t *testing.T) {
	if got := Label("Alice"); got != "۶ Alice" {
		t.Fatalf("expected %q, got %q", "۶ Alice", got)
	}
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	if _, err := Parse([]byte("title: x\n")); err == nil {
		t.Fatalf("expected error for catalog without categories")
	}
	if _, err := Parse([]byte("categories: [unterminated")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("categories: [World]\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(c.Categories) != 1 || c.Categories[0] != "World" {
		t.Fatalf("unexpected categories: %v", c.Categories)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
