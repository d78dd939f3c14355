package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"landing-builder-backend/internal/export"
)

type jsonOptions struct {
	output        string
	regenerateIDs bool
}

func newJSONCmd() *cobra.Command {
	opts := &jsonOptions{}

	cmd := &cobra.Command{
		Use:   "json <document.json>",
		Short: "Validate a document and rewrite it with defaults filled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}
			doc, err := export.ImportJSON(data, export.ImportOptions{RegenerateIDs: opts.regenerateIDs})
			if err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}
			normalised, err := export.ExportJSON(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.output, append(normalised, '\n'))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", stdio, "Output file, - for stdout")
	cmd.Flags().BoolVar(&opts.regenerateIDs, "regenerate-ids", false, "Assign fresh section ids")

	return cmd
}
