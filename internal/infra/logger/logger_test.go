package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	want := filepath.Join(tmp, DirName, "logs", FileName)
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	Component("test").Info("photo.added", "name", "beach")
	L().Debug("hidden.at.info.level")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	f, err := os.Open(want)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var msgs []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", sc.Text(), err)
		}
		msgs = append(msgs, m)
	}

	if len(msgs) != 2 {
		t.Fatalf("expected 2 lines (init + info), got %d", len(msgs))
	}
	if msgs[1]["msg"] != "photo.added" || msgs[1]["component"] != "test" {
		t.Fatalf("unexpected record: %v", msgs[1])
	}
}

func TestSetup_FailsWhenRootIsAFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Setup(Config{Root: file}); err == nil {
		t.Fatalf("expected error")
	}
	if IsReady() == nil {
		t.Fatalf("expected discard logger after failure")
	}
}
