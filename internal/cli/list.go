package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/angie11-11/PhotoApp/internal/app/format"
	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/infra/configfinder"
	"github.com/angie11-11/PhotoApp/internal/infra/logger"
)

type photoJSON struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	AddedAt   time.Time `json:"added_at"`
	SizeBytes int64     `json:"size_bytes"`
	Size      string    `json:"size"`
}

type albumJSON struct {
	Count  int         `json:"count"`
	Sort   string      `json:"sort,omitempty"`
	Photos []photoJSON `json:"photos"`
}

func listCmd() *cobra.Command {
	var workspace string
	var sortBy string
	var outFormat string
	var expr string

	c := &cobra.Command{
		Use:   "list images...",
		Short: "Build an album from image files and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(configfinder.NewFinder(), workspace)
			if err != nil {
				return err
			}

			criterion, err := ws.sortCriterion(sortBy)
			if err != nil {
				return err
			}
			if expr != "" && outFormat != "json" {
				return fmt.Errorf("--jsonpath requires --format json")
			}

			if ws.found {
				cleanup, _ := logger.Setup(logger.Config{Root: ws.root})
				if cleanup != nil {
					defer func() { _ = cleanup() }()
				}
			}

			uc := ws.newAlbum(logger.Component("album"))
			_, errs := uc.ImportPaths(cmd.Context(), args)
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", e)
			}

			if criterion != "" {
				if err := uc.SortBy(criterion); err != nil {
					return err
				}
			}

			view := albumView{
				photos:    uc.Photos(),
				criterion: criterion,
				fmt:       format.New(ws.cfg.Display.DateFormat),
			}
			if err := printAlbum(cmd.OutOrStdout(), view, outFormat, expr); err != nil {
				return err
			}

			if len(errs) > 0 {
				return fmt.Errorf("%d file(s) rejected", len(errs))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Directory holding photoalbum.yaml (optional; autodetected if omitted)")
	c.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort order: name|date|size (default: config sort.default)")
	c.Flags().StringVar(&outFormat, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&expr, "jsonpath", "", "JSONPath expression applied to the json output, e.g. $.photos[*].name")
	return c
}

type albumView struct {
	photos    []domain.Photo
	criterion domain.SortCriterion
	fmt       format.Formatter
}

func printAlbum(w io.Writer, v albumView, outFormat, expr string) error {
	switch outFormat {
	case "json":
		payload := toJSON(v)
		if strings.TrimSpace(expr) == "" {
			return writeJSON(w, payload)
		}
		selected, err := selectJSONPath(payload, expr)
		if err != nil {
			return err
		}
		return writeJSON(w, selected)
	case "pretty", "":
		printPrettyAlbum(w, v)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", outFormat)
	}
}

func toJSON(v albumView) albumJSON {
	out := albumJSON{
		Count:  len(v.photos),
		Sort:   string(v.criterion),
		Photos: make([]photoJSON, 0, len(v.photos)),
	}
	for _, p := range v.photos {
		out.Photos = append(out.Photos, photoJSON{
			Name:      p.Name,
			Path:      p.Path,
			AddedAt:   p.AddedAt.UTC(),
			SizeBytes: p.SizeBytes,
			Size:      format.Size(p.SizeBytes),
		})
	}
	return out
}

// selectJSONPath evaluates expr against the generic JSON form of payload.
func selectJSONPath(payload any, expr string) (any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", expr, err)
	}
	return val, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrettyAlbum(w io.Writer, v albumView) {
	order := "insertion order"
	if v.criterion != "" {
		order = "sorted by " + string(v.criterion)
	}
	fmt.Fprintf(w, "Photos: %d (%s)\n", len(v.photos), order)
	if len(v.photos) == 0 {
		return
	}
	fmt.Fprintln(w)

	for i, p := range v.photos {
		fmt.Fprintf(w, "%3d. %s\n", i+1, p.Name)
		fmt.Fprintf(w, "     %s · %s\n", v.fmt.Date(p.AddedAt), format.Size(p.SizeBytes))
		fmt.Fprintf(w, "     %s\n", p.Path)
	}
}
