package domain

// Config represents the photoalbum configuration loaded from photoalbum.yaml.
type Config struct {
	Sort    SortConfig
	Files   FilesConfig
	Display DisplayConfig
}

type SortConfig struct {
	// Default is applied after photos are preloaded from the command line.
	// Empty keeps insertion order.
	Default SortCriterion
}

type FilesConfig struct {
	// Extensions accepted as images, lower-case and without the dot.
	Extensions []string
}

type DisplayConfig struct {
	DateFormat    string // strftime layout
	PreviewWidth  int
	PreviewHeight int
}

// DefaultConfig provides sane defaults if photoalbum.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Files: FilesConfig{
			Extensions: []string{"jpg", "jpeg", "png"},
		},
		Display: DisplayConfig{
			DateFormat:    "%Y-%m-%d %H:%M:%S",
			PreviewWidth:  48,
			PreviewHeight: 24,
		},
	}
}
