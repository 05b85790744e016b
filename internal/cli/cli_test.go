package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/angie11-11/PhotoApp/internal/app/format"
	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/infra/configfinder"
)

// --- helpers ---

type fakeLocator struct {
	root  string
	err   error
	calls []string
}

func (f *fakeLocator) FindRoot(startDir string) (string, error) {
	f.calls = append(f.calls, startDir)
	return f.root, f.err
}

func writeImage(t *testing.T, dir, name string, size int) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, bytes.Repeat([]byte{0xff}, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- list ---

func TestList_JSONSortedBySize(t *testing.T) {
	tmp := t.TempDir()
	a := writeImage(t, tmp, "a.png", 30)
	b := writeImage(t, tmp, "b.jpg", 10)
	c := writeImage(t, tmp, "c.JPEG", 20)

	out, _, err := execute(t, "list", "-w", tmp, "--sort", "size", "--format", "json", a, b, c)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var got albumJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Count != 3 || got.Sort != "size" {
		t.Fatalf("unexpected header %+v", got)
	}

	var names []string
	for _, p := range got.Photos {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "b,c,a" {
		t.Fatalf("expected b,c,a, got %v", names)
	}
	if got.Photos[0].SizeBytes != 10 || got.Photos[0].Size != "10 B" {
		t.Fatalf("unexpected size fields %+v", got.Photos[0])
	}
}

func TestList_JSONPathFilter(t *testing.T) {
	tmp := t.TempDir()
	z := writeImage(t, tmp, "zebra.png", 5)
	a := writeImage(t, tmp, "ant.png", 6)

	out, _, err := execute(t, "list", "-w", tmp, "--sort", "name", "--format", "json", "--jsonpath", "$.photos[*].name", z, a)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if strings.Join(names, ",") != "ant,zebra" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestList_RejectedFilesAreReportedAndFail(t *testing.T) {
	tmp := t.TempDir()
	ok := writeImage(t, tmp, "ok.png", 5)
	gif := writeImage(t, tmp, "anim.gif", 5)
	missing := filepath.Join(tmp, "missing.jpg")

	out, errOut, err := execute(t, "list", "-w", tmp, ok, gif, missing)
	if err == nil || !strings.Contains(err.Error(), "2 file(s) rejected") {
		t.Fatalf("expected rejection error, got %v", err)
	}
	if !strings.Contains(errOut, "anim.gif") || !strings.Contains(errOut, "missing.jpg") {
		t.Fatalf("stderr should name rejected files:\n%s", errOut)
	}
	if !strings.Contains(out, "Photos: 1 (insertion order)") || !strings.Contains(out, "ok") {
		t.Fatalf("accepted photos should still be printed:\n%s", out)
	}
}

func TestList_UsesConfiguredDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfg := "photoalbum:\n  sort:\n    default: size\n  files:\n    extensions: [webp]\n"
	if err := os.WriteFile(filepath.Join(tmp, configfinder.ConfigFile), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	big := writeImage(t, tmp, "big.webp", 50)
	small := writeImage(t, tmp, "small.webp", 5)

	out, _, err := execute(t, "list", "-w", tmp, "--format", "json", big, small)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got albumJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Sort != "size" || got.Photos[0].Name != "small" {
		t.Fatalf("config defaults not applied: %+v", got)
	}
	if _, err := os.Stat(filepath.Join(tmp, ".photoalbum", "logs", "photoalbum.log")); err != nil {
		t.Fatalf("expected log file next to config: %v", err)
	}
}

func TestList_FlagErrors(t *testing.T) {
	tmp := t.TempDir()
	p := writeImage(t, tmp, "a.png", 1)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown sort", []string{"list", "-w", tmp, "--sort", "colour", p}, "colour"},
		{"bad format", []string{"list", "-w", tmp, "--format", "xml", p}, "unsupported format"},
		{"jsonpath needs json", []string{"list", "-w", tmp, "--jsonpath", "$.count", p}, "--jsonpath requires"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := execute(t, c.args...)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestPrintPrettyAlbum(t *testing.T) {
	v := albumView{
		photos: []domain.Photo{{
			Name:      "pier",
			Path:      "/p/pier.jpg",
			AddedAt:   time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
			SizeBytes: 1500,
		}},
		criterion: domain.SortByDate,
		fmt:       format.New("%Y-%m-%d"),
	}

	var buf bytes.Buffer
	printPrettyAlbum(&buf, v)
	out := buf.String()
	for _, want := range []string{"Photos: 1 (sorted by date)", "  1. pier", "2026-02-03 · 1.5 kB", "/p/pier.jpg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSelectJSONPath_Invalid(t *testing.T) {
	if _, err := selectJSONPath(albumJSON{}, "$.["); err == nil {
		t.Fatalf("expected error for malformed expression")
	}
}

// --- init / version ---

func TestInit_WritesConfigOnce(t *testing.T) {
	tmp := t.TempDir()

	out, _, err := execute(t, "init", "-w", tmp)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Initialized photoalbum config") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(tmp, configfinder.ConfigFile)); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	out, _, err = execute(t, "init", "-w", tmp)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Fatalf("expected already-exists notice, got %q", out)
	}

	out, _, err = execute(t, "init", "-w", tmp, "--force")
	if err != nil || !strings.Contains(out, "Initialized") {
		t.Fatalf("forced init: out=%q err=%v", out, err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "photoalbum ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- workspace resolution ---

func TestResolveWorkspaceRoot_Flag(t *testing.T) {
	tmp := t.TempDir()

	root, found, err := resolveWorkspaceRoot(configfinder.NewFinder(), tmp)
	if err != nil {
		t.Fatal(err)
	}
	if root != tmp || found {
		t.Fatalf("got root=%s found=%v", root, found)
	}

	if err := os.WriteFile(filepath.Join(tmp, configfinder.ConfigFile), []byte("photoalbum: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, found, _ = resolveWorkspaceRoot(configfinder.NewFinder(), tmp); !found {
		t.Fatalf("expected config to be detected")
	}
}

func TestResolveWorkspaceRoot_UsesLocator(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	wd, _ = filepath.Abs(wd)

	loc := &fakeLocator{root: "/albums/summer"}
	root, found, err := resolveWorkspaceRoot(loc, "")
	if err != nil {
		t.Fatal(err)
	}
	if root != "/albums/summer" || !found {
		t.Fatalf("got root=%s found=%v", root, found)
	}
	if len(loc.calls) != 1 || loc.calls[0] != wd {
		t.Fatalf("locator should search from the working directory, got %v", loc.calls)
	}

	miss := &fakeLocator{err: &domain.OpError{Op: "configfinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound}}
	root, found, err = resolveWorkspaceRoot(miss, "")
	if err != nil {
		t.Fatal(err)
	}
	if root != wd || found {
		t.Fatalf("expected fallback to working directory, got root=%s found=%v", root, found)
	}
}

func TestResolveWorkspaceRoot_FlagSkipsLocator(t *testing.T) {
	tmp := t.TempDir()
	loc := &fakeLocator{root: "/elsewhere"}

	root, _, err := resolveWorkspaceRoot(loc, tmp)
	if err != nil {
		t.Fatal(err)
	}
	if root != tmp || len(loc.calls) != 0 {
		t.Fatalf("flag should win: root=%s calls=%v", root, loc.calls)
	}
}
