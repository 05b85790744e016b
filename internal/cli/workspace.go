package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/infra/configfinder"
	"github.com/angie11-11/PhotoApp/internal/infra/imagefile"
	"github.com/angie11-11/PhotoApp/internal/ports"
	"github.com/angie11-11/PhotoApp/internal/usecase"
)

// workspaceCtx is the configuration a command runs with. found is false when
// no photoalbum.yaml exists and the defaults are in effect.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
}

func loadWorkspace(locator ports.ConfigLocator, workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(locator, workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := configfinder.LoadOrDefault(root)
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{root: root, found: found, cfg: cfg}, nil
}

// resolveWorkspaceRoot prefers the flag, then the nearest directory holding
// photoalbum.yaml, then the working directory.
func resolveWorkspaceRoot(locator ports.ConfigLocator, workspaceFlag string) (root string, found bool, err error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, configfinder.ConfigFile)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	if locator == nil {
		return wd, false, nil
	}
	if r, ferr := locator.FindRoot(wd); ferr == nil && r != "" {
		return r, true, nil
	}
	return wd, false, nil
}

func (ws *workspaceCtx) newAlbum(log *slog.Logger) *usecase.ManageAlbum {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	inspector := imagefile.NewInspector(imagefile.WithExtensions(ws.cfg.Files.Extensions))
	return usecase.NewManageAlbum(domain.NewAlbum(), inspector, usecase.WithLogger(log))
}

// sortCriterion resolves the --sort flag against the configured default.
// An empty result keeps insertion order.
func (ws *workspaceCtx) sortCriterion(flag string) (domain.SortCriterion, error) {
	if strings.TrimSpace(flag) == "" {
		return ws.cfg.Sort.Default, nil
	}
	return domain.ParseSortCriterion(flag)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
