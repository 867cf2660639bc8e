package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-feconfig/internal/style"
	"github.com/goliatone/go-feconfig/pkg/chip"
	"github.com/goliatone/go-feconfig/pkg/store"
)

func newExportTemplateCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "export-template [dir]",
		Short: "Copy the built-in FE template to a directory",
		Long: `Export-template writes the embedded chip.tpl to dir (default ".") so it can
be edited and passed back with --templates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := exportTemplates(cmd, store.NewOS(), dir, force)
			if err != nil {
				return err
			}
			for _, path := range written {
				style.Success(cmd.OutOrStdout(), "wrote "+style.FormatFilePath(path))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing templates")
	return cmd
}

func exportTemplates(cmd *cobra.Command, s *store.Store, dir string, force bool) ([]string, error) {
	src := chip.TemplatesFS()
	var written []string
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if !force {
			exists, err := s.Exists(target)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("export: %s already exists (use --force to overwrite)", target)
			}
		}
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		if err := s.Fs().MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := s.Write(cmd.Context(), target, data); err != nil {
			return err
		}
		written = append(written, target)
		return nil
	})
	return written, err
}
