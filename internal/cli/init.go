package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angie11-11/PhotoApp/internal/infra/configfinder"
	"github.com/angie11-11/PhotoApp/internal/infra/configinit"
	"github.com/angie11-11/PhotoApp/internal/usecase"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default photoalbum.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := strings.TrimSpace(dir)
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			existed := fileExists(filepath.Join(root, configfinder.ConfigFile))

			uc := usecase.NewInitConfig(configinit.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if existed && !force {
				fmt.Fprintf(out, "Config already exists in %s (use --force to overwrite)\n", root)
				return nil
			}
			fmt.Fprintf(out, "Initialized photoalbum config in %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "workspace", "w", "", "Directory to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing photoalbum.yaml")
	return c
}
