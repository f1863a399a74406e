package enemy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vcrini/lazynechronica/internal/diag"
)

func TestDefaultIsZombie(t *testing.T) {
	r := Default()
	if r.ID != "mon_zombie_basic" || r.Name != "Zombie" {
		t.Fatalf("unexpected default: %q %q", r.ID, r.Name)
	}
	if r.MaximumActionPoints != 8 {
		t.Fatalf("expected 8 AP, got %d", r.MaximumActionPoints)
	}
	if len(r.Maneuvers) != 2 {
		t.Fatalf("expected 2 maneuvers, got %d", len(r.Maneuvers))
	}
	if r.Maneuvers[0].Damage == nil || r.Maneuvers[0].Damage.Formula == nil {
		t.Fatalf("expected formula on first maneuver")
	}
	if r.Maneuvers[1].Damage == nil || r.Maneuvers[1].Damage.Formula != nil {
		t.Fatalf("expected damage without formula on second maneuver")
	}
}

func TestLoadMissingFileWritesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	var rec diag.Recorder
	store := NewStore(path, Default(), &rec)

	got := store.Load()
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("expected default record, got %+v", got)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
	want, err := Encode(Default())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(onDisk, want) {
		t.Fatalf("expected serialized default on disk, got %q", onDisk)
	}
	if !rec.Contains(diag.LevelInfo, "created initial") {
		t.Fatalf("expected creation notice, got %+v", rec.Events)
	}
}

func TestLoadCorruptFileLeavesItUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	corrupt := []byte(`{"id": "mon_zombie_basic", "name": `)
	if err := os.WriteFile(path, corrupt, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var rec diag.Recorder
	store := NewStore(path, Default(), &rec)

	got := store.Load()
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("expected default record, got %+v", got)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(after, corrupt) {
		t.Fatalf("expected corrupt file to be left untouched, got %q", after)
	}
	if len(rec.ByLevel(diag.LevelError)) != 1 {
		t.Fatalf("expected one error event, got %+v", rec.Events)
	}
}

func TestLoadNullDocumentFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	null := []byte("null\n")
	if err := os.WriteFile(path, null, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var rec diag.Recorder
	got := NewStore(path, Default(), &rec).Load()
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("expected default record, got %+v", got)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(after, null) {
		t.Fatalf("expected null document to be left untouched, got %q", after)
	}
	if len(rec.ByLevel(diag.LevelError)) != 1 {
		t.Fatalf("expected one error event, got %+v", rec.Events)
	}
}

func TestDecodeRejectsNull(t *testing.T) {
	for _, in := range []string{"null", "  null  "} {
		if _, err := Decode([]byte(in)); !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("Decode(%q): expected ErrEmptyDocument, got %v", in, err)
		}
	}
	r, err := Decode([]byte(`{"id": "mon_x"}`))
	if err != nil || r.ID != "mon_x" {
		t.Fatalf("expected mon_x, got %+v %v", r, err)
	}
}

func TestLoadUnreadablePathFallsBack(t *testing.T) {
	dir := t.TempDir()
	// A directory where the document should be cannot be read as a file.
	path := filepath.Join(dir, DefaultFile)
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	store := NewStore(path, Default(), diag.Nop)
	if got := store.Load(); got.ID != "mon_zombie_basic" {
		t.Fatalf("expected default record, got %q", got.ID)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory to be left in place")
	}
}

func TestLoadUsesInjectedDefaults(t *testing.T) {
	dir := t.TempDir()
	custom := Record{ID: "mon_skeleton", Name: "Skeleton", Maneuvers: []Maneuver{}}
	store := NewStore(filepath.Join(dir, "skeleton.json"), custom, nil)

	got := store.Load()
	if got.ID != "mon_skeleton" {
		t.Fatalf("expected injected default, got %q", got.ID)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	store := NewStore(path, Default(), diag.Nop)

	r := Default()
	r.MaximumActionPoints = 12
	r.Maneuvers[1].Damage.Formula = StringPtr("grab")
	if err := store.Save(r); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got := store.Load()
	if !reflect.DeepEqual(got, r) {
		t.Fatalf("mismatch after reload:\n got %+v\nwant %+v", got, r)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left, got %d entries", len(entries))
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", DefaultFile)
	var rec diag.Recorder
	store := NewStore(path, Default(), &rec)

	if err := store.Save(Default()); err == nil {
		t.Fatalf("expected error saving into a missing directory")
	}
	if len(rec.ByLevel(diag.LevelError)) == 0 {
		t.Fatalf("expected error diagnostic")
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := Default()
	c := r.Clone()
	c.Maneuvers[0].Damage.BaseDamage = 99
	*c.Maneuvers[0].Damage.Formula = "changed"
	c.Maneuvers[1].Timing = "Rapid"

	if r.Maneuvers[0].Damage.BaseDamage != 1 {
		t.Fatalf("clone shares damage block")
	}
	if *r.Maneuvers[0].Damage.Formula != "chain_attack" {
		t.Fatalf("clone shares formula pointer")
	}
	if r.Maneuvers[1].Timing != "Action" {
		t.Fatalf("clone shares maneuver slice")
	}
}
