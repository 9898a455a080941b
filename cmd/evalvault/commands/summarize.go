package commands

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/core"
	"evalvault/pkg/dataset"
	"evalvault/pkg/evallog"
	"evalvault/pkg/record"
	"evalvault/pkg/reporter"
	"evalvault/pkg/taxonomy"
)

func newSummarizeCommand() *cobra.Command {
	var (
		recordsPath    string
		format         string
		outputPath     string
		topN           int
		from           string
		to             string
		runDir         string
		runID          string
		requireRecords bool
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Aggregate a records file into pass rates and failure frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(recordsPath, appConfig.Records)
			if path == "" {
				return errors.New("records path is required")
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = reporter.FormatTable
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			topResolved := resolveInt(topN, appConfig.Top, 5)
			runDirResolved := resolveString(runDir, appConfig.RunDir)

			window, err := parseWindow(from, to)
			if err != nil {
				return err
			}

			registry := taxonomy.NewRegistry()
			store := record.NewStore(registry)
			ds := dataset.NewFileDataset(path)

			loaded, err := ds.ReadAll(cmd.Context())
			if err != nil {
				return err
			}
			for _, rec := range loaded {
				if _, err := store.Append(rec); err != nil {
					return errors.Wrapf(err, "record %q", rec.TestCaseID)
				}
			}

			records := store.Latest()
			summary, err := aggregate.Summarize(registry, records, aggregate.Options{
				Window:         window,
				TopN:           topResolved,
				RequireRecords: requireRecords,
			})
			if err != nil {
				return err
			}

			logger.Info("summarized records",
				zap.String("records", path),
				zap.Int("total", summary.Total),
				zap.Int("failed", summary.Failed))

			writer := cmd.OutOrStdout()
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := reporter.New(formatResolved, writer, registry)
			if err != nil {
				return err
			}
			if err := rep.Report(summary); err != nil {
				return err
			}

			if runDirResolved != "" {
				log := evallog.NewRunLog(runID, records, summary)
				dir, err := evallog.WriteRun(runDirResolved, log)
				if err != nil {
					return err
				}
				logger.Info("run log written", zap.String("dir", dir))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "path to records file (json, jsonl, yaml)")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json, markdown, csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().IntVar(&topN, "top", 0, "ranked failure list size")
	cmd.Flags().StringVar(&from, "from", "", "window start date (2006-01-02)")
	cmd.Flags().StringVar(&to, "to", "", "window end date (2006-01-02)")
	cmd.Flags().StringVar(&runDir, "run-dir", "", "directory to persist the run log under")
	cmd.Flags().StringVar(&runID, "run-id", "", "run id (default: random)")
	cmd.Flags().BoolVar(&requireRecords, "require-records", false, "fail instead of reporting zeroed counts on empty input")

	return cmd
}

func parseWindow(from, to string) (*aggregate.Window, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	window := &aggregate.Window{}
	if from != "" {
		t, err := time.Parse(core.DateLayout, from)
		if err != nil {
			return nil, errors.Wrap(err, "--from")
		}
		window.From = t
	}
	if to != "" {
		t, err := time.Parse(core.DateLayout, to)
		if err != nil {
			return nil, errors.Wrap(err, "--to")
		}
		window.To = t
	}
	return window, nil
}
