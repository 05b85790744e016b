package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/angie11-11/PhotoApp/internal/infra/configfinder"
	"github.com/angie11-11/PhotoApp/internal/infra/exifmeta"
	"github.com/angie11-11/PhotoApp/internal/infra/logger"
	"github.com/angie11-11/PhotoApp/internal/infra/preview"
	"github.com/angie11-11/PhotoApp/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string

	cmd := &cobra.Command{
		Use:          "photoalbum [images...]",
		Short:        "Browse and organize photos in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(configfinder.NewFinder(), workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ws.root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			log := logger.L()
			log.Info("app.start", "root", ws.root, "config_found", ws.found, "preload", len(args))

			uc := ws.newAlbum(logger.Component("album"))

			_, errs := uc.ImportPaths(cmd.Context(), args)
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", e)
			}
			if c := ws.cfg.Sort.Default; c != "" && uc.Count() > 0 {
				if err := uc.SortBy(c); err != nil {
					return err
				}
			}

			deps := tui.Deps{
				Album:     uc,
				Previewer: preview.NewRenderer(),
				Metadata:  exifmeta.NewReader(),
				Config:    ws.cfg,
				Logger:    logger.Component("tui"),
				Debug:     debug,
				LogPath:   logger.Path(),
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .photoalbum/logs/photoalbum.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Directory holding photoalbum.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(listCmd(), initCmd(), versionCmd())
	return cmd
}
