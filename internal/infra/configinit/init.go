package configinit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/infra/configfinder"
	"github.com/angie11-11/PhotoApp/internal/infra/logger"
)

// Initializer writes a default photoalbum.yaml and the local log directory.
type Initializer struct {
	defaults domain.Config
}

func NewInitializer() *Initializer {
	return &Initializer{defaults: domain.DefaultConfig()}
}

func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	if err := os.MkdirAll(filepath.Join(root, logger.DirName, "logs"), 0o755); err != nil {
		return &domain.OpError{Op: "configinit.mkdir", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "configinit.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, configfinder.ConfigFile)
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}

	b, err := Render(i.defaults)
	if err != nil {
		return &domain.OpError{Op: "configinit.render", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{Op: "configinit.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

type fileConfig struct {
	PhotoAlbum struct {
		Sort struct {
			Default string `yaml:"default"`
		} `yaml:"sort"`
		Files struct {
			Extensions []string `yaml:"extensions,flow"`
		} `yaml:"files"`
		Display struct {
			DateFormat    string `yaml:"date_format"`
			PreviewWidth  int    `yaml:"preview_width"`
			PreviewHeight int    `yaml:"preview_height"`
		} `yaml:"display"`
	} `yaml:"photoalbum"`
}

// Render encodes cfg in the photoalbum.yaml layout read by configfinder.
func Render(cfg domain.Config) ([]byte, error) {
	var fc fileConfig
	fc.PhotoAlbum.Sort.Default = string(cfg.Sort.Default)
	if fc.PhotoAlbum.Sort.Default == "" {
		fc.PhotoAlbum.Sort.Default = string(domain.SortByName)
	}
	fc.PhotoAlbum.Files.Extensions = cfg.Files.Extensions
	fc.PhotoAlbum.Display.DateFormat = cfg.Display.DateFormat
	fc.PhotoAlbum.Display.PreviewWidth = cfg.Display.PreviewWidth
	fc.PhotoAlbum.Display.PreviewHeight = cfg.Display.PreviewHeight

	body, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append([]byte("# photoalbum configuration\n"), body...), nil
}

func ensureGitignore(root string) error {
	const header = "# photoalbum"
	entries := []string{
		logger.DirName + "/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
