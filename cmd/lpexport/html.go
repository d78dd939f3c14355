package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/sections"
)

type htmlOptions struct {
	output string
}

func newHTMLCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &htmlOptions{}

	cmd := &cobra.Command{
		Use:   "html <document.json>",
		Short: "Render a document as a standalone HTML page",
		Long:  "Render a document as a standalone HTML page. Use - to read the document from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTML(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, - for stdout (default: slug of the page title)")

	return cmd
}

func runHTML(cmd *cobra.Command, rootFlags *rootFlags, opts *htmlOptions, input string) error {
	data, err := readInput(cmd, input)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	doc, err := export.ImportJSON(data, export.ImportOptions{})
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	exporter := export.NewExporter(newRegistry(), sections.NewRenderContext(rootFlags.sanitize))
	page := exporter.HTML(doc)

	output := opts.output
	if output == "" {
		output = export.Filename(doc)
		if input != stdio {
			output = filepath.Join(filepath.Dir(input), output)
		}
	}
	if err := writeOutput(cmd, output, []byte(page)); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	if output != stdio {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d sections)\n", output, len(doc.Sections))
	}
	return nil
}
