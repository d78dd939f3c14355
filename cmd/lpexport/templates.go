package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/theme"
)

func newTemplatesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List template presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(rootFlags, newRegistry())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSECTIONS\tDESCRIPTION")
			for _, tpl := range catalog.List() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", tpl.ID, tpl.Name, tpl.Sections, tpl.Description)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(newTemplateNewCmd(rootFlags))
	return cmd
}

func newTemplateNewCmd(rootFlags *rootFlags) *cobra.Command {
	var (
		output string
		title  string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "new <template-id>",
		Short: "Start a document from a template preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(rootFlags, newRegistry())
			if err != nil {
				return err
			}
			preset, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			doc := builder.LoadTemplate(theme.NewDocument(title, lang), preset.Sections, preset.GlobalStyles)
			data, err := export.ExportJSON(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, append(data, '\n'))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdio, "Output file, - for stdout")
	cmd.Flags().StringVar(&title, "title", "Untitled page", "Page title")
	cmd.Flags().StringVar(&lang, "lang", "en", "Document language")

	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available section kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tNAME\tCATEGORY\tLISTS")
			for _, meta := range newRegistry().ListMetadata() {
				lists := "-"
				if len(meta.Lists) > 0 {
					lists = fmt.Sprint(meta.Lists)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", meta.Kind, meta.Name, meta.Category, lists)
			}
			return w.Flush()
		},
	}
}
