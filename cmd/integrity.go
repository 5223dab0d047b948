package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ingredient-manager/core/config"
	"ingredient-manager/core/database"
	"ingredient-manager/core/logger"
	"ingredient-manager/core/objectstore"
	"ingredient-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the journal store and the container database",
	Long:  `Checks the journal bucket layout, the database schema and the persisted container contents.`,
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the journal bucket layout",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the container database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// contentsCmd represents the integrity contents command
var contentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "Audit persisted container contents",
	Long:  `Verifies that every container's persisted contents respect its capacity and slot layout. Outputs log lines by default or the JSON report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if !jsonOutput {
			runIntegrityChecks(cmd.Context(), false, false, true)
			return nil
		}

		svc, _, err := integrityService()
		if err != nil {
			return err
		}
		report, err := svc.CheckContents(context.Background())
		if err != nil {
			return fmt.Errorf("contents check failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd, contentsCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
	contentsCmd.Flags().Bool("json", false, "Output the JSON report")
}

// integrityService builds the integrity service. The database is optional so
// the bucket can be checked on its own.
func integrityService() (*integrity.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := objectstore.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	folders := []string{cfg.Journal.Prefix}
	return integrity.NewService(store, cfg.Storage.Bucket, cfg.Storage.Region, folders, db, logg), logg, nil
}

func runIntegrityChecks(ctx context.Context, runStructure, runServer, runContents bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, logg, err := integrityService()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if runStructure {
		logg.Info("Checking journal bucket structure...")
		report, err := svc.Structure(ctx, fixFlag)
		switch {
		case err != nil:
			logg.Error("Structure check failed", zap.Error(err))
		case report.Status == "fixed":
			logg.Info("Structure fixed successfully.", zap.Strings("created", report.Fixed))
		case len(report.Missing) > 0:
			logg.Warn("Missing structure detected", zap.Strings("missing", report.Missing))
			logg.Info("Run with --fix to create missing folders.")
		default:
			logg.Info("Structure is intact.")
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runContents {
		logg.Info("Auditing container contents...")
		report, err := svc.CheckContents(ctx)
		if err != nil {
			logg.Error("Contents check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Container contents are consistent.", zap.Int("containers", report.Checked))
		} else {
			for name, problems := range report.Problems {
				logg.Warn("Container breaks its limits", zap.String("container", name), zap.Strings("problems", problems))
			}
		}
	}
}
