package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-usecase-explorer/internal/config"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/importer"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/migrations"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const defaultSamplePath = "./data/sample-usecases.csv"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type importFlags struct {
	configPath string
	format     string
	dryRun     bool
	force      bool
}

func newRootCmd() *cobra.Command {
	var flags importFlags

	root := &cobra.Command{
		Use:   "importer [csv-file]",
		Short: "Import AI use cases from a CSV file",
		Long: `Import AI use cases from a CSV file into the catalog.

Formats:
  standard - columns title, description, businessArea, maturityLevel, ...
  bechtle  - SharePoint list export with German column names

Rows whose title already exists are skipped.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	root.Flags().StringVarP(&flags.configPath, "config", "c", "config.env", "Path to configuration file")
	root.Flags().StringVarP(&flags.format, "format", "f", string(importer.FormatStandard), "CSV format: standard or bechtle")
	root.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate rows without writing to the database")
	root.Flags().BoolVar(&flags.force, "force", false, "Report rows with an existing title as errors")

	root.AddCommand(newGenerateSampleCmd())
	return root
}

func newGenerateSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-sample [output]",
		Short: "Write a sample CSV in the standard format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSamplePath
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeSampleFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sample CSV written to %s\n", path)
			return nil
		},
	}
}

func writeSampleFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	defer f.Close()

	if err := importer.WriteSample(f); err != nil {
		return fmt.Errorf("failed to write sample file: %w", err)
	}
	return f.Close()
}

func runImport(cmd *cobra.Command, path string, flags importFlags) error {
	format, err := importer.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := logger.Initialize(cfg.App.LogLevel, "console"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	ctx := cmd.Context()
	opts := importer.Options{DryRun: flags.dryRun, Force: flags.force}

	var imp *importer.Importer
	if opts.DryRun {
		imp = importer.New(nil, nil)
	} else {
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := migrations.Up(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		imp = importer.New(
			repositories.NewUseCaseReadRepository(db, nil),
			repositories.NewUseCaseWriteRepository(db),
		)
	}

	result, err := imp.Import(ctx, f, format, opts)
	if err != nil {
		return err
	}

	if err := printResult(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("import finished with %d errors", len(result.Errors))
	}
	return nil
}

func printResult(w io.Writer, result *importer.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
