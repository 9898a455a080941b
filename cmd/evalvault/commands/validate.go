package commands

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evalvault/pkg/dataset"
	"evalvault/pkg/record"
	"evalvault/pkg/taxonomy"
)

func newValidateCommand() *cobra.Command {
	var recordsPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a records file against the taxonomy and rubric invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(recordsPath, appConfig.Records)
			if path == "" {
				return errors.New("records path is required")
			}

			registry := taxonomy.NewRegistry()
			store := record.NewStore(registry)
			ds := dataset.NewFileDataset(path)

			out := cmd.OutOrStdout()
			recordCh, errCh := ds.Records(cmd.Context())

			invalid := 0
			total := 0
			for rec := range recordCh {
				total++
				if _, err := store.Append(rec); err != nil {
					invalid++
					fmt.Fprintf(out, "%s  %s\n", renderInvalid(out), rec.TestCaseID)
					fmt.Fprintf(out, "    %v\n", err)
					continue
				}

				line := fmt.Sprintf("%s  %s", renderOutcome(out, rec.Outcome), rec.TestCaseID)
				if sev, ok := rec.WorstSeverity(); ok {
					line += "  " + renderSeverity(out, sev)
				}
				fmt.Fprintln(out, line)
			}
			if err := readStreamErr(cmd.Context(), errCh); err != nil {
				return err
			}

			logger.Info("validation finished",
				zap.String("records", path),
				zap.Int("total", total),
				zap.Int("invalid", invalid))

			if invalid > 0 {
				return errors.Newf("%d of %d record(s) failed validation", invalid, total)
			}
			fmt.Fprintf(out, "%d record(s) valid\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "path to records file (json, jsonl, yaml)")

	return cmd
}

func readStreamErr(ctx context.Context, errCh <-chan error) error {
	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
