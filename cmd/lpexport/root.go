package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/templates"
	"landing-builder-backend/internal/theme"
)

type rootFlags struct {
	templatesDir string
	sanitize     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lpexport",
		Short:         "Convert landing page documents to standalone HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.templatesDir, "templates-dir", os.Getenv("TEMPLATES_DIR"), "Directory with YAML template presets")
	cmd.PersistentFlags().BoolVar(&flags.sanitize, "sanitize", false, "Sanitize custom HTML sections")

	cmd.AddCommand(newHTMLCmd(flags))
	cmd.AddCommand(newJSONCmd())
	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newKindsCmd())

	return cmd
}

func newRegistry() *sections.Registry {
	theme.RegisterValidations()
	return sections.DefaultRegistry()
}

func loadCatalog(flags *rootFlags, reg *sections.Registry) (*templates.Catalog, error) {
	catalog, err := templates.NewCatalog(reg)
	if err != nil {
		return nil, err
	}
	if flags.templatesDir != "" {
		if _, err := catalog.LoadDir(flags.templatesDir); err != nil {
			return nil, fmt.Errorf("loading templates from %s: %w", flags.templatesDir, err)
		}
	}
	return catalog, nil
}
