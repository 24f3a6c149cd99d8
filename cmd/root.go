package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/selfbiz/costplan/internal/engine"
	"github.com/selfbiz/costplan/internal/factories"
	"github.com/selfbiz/costplan/internal/models"
	"github.com/selfbiz/costplan/internal/repositories/postgres"
	"github.com/selfbiz/costplan/internal/snapshotio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "costplan",
	Short: "Cost and overhead analysis for small food businesses",
	Long:  `costplan loads a business snapshot (ingredients, menus, overheads, scenarios), resolves unit costs and monthly overheads, and writes menu economics, overhead allocation, scenario and tax reports to the configured destination.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func run(cfg *models.Config) error {
	ctx := context.Background()

	snapshot, reports, cleanup, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	eng := engine.New(snapshot, cfg.AnalysisDate)

	dest, err := engine.DetermineOutput(cfg, reports)
	if err != nil {
		return err
	}
	defer dest.Close()

	var tax *engine.TaxInput
	if cfg.Tax.Enabled {
		tax = &engine.TaxInput{
			SalesAmount:    cfg.Tax.SalesAmount,
			SalesMode:      cfg.Tax.SalesMode,
			PurchaseAmount: cfg.Tax.PurchaseAmount,
			PurchaseMode:   cfg.Tax.PurchaseMode,
			VATRate:        cfg.Tax.VATRate,
			LaborCost:      cfg.Tax.LaborCost,
			OtherCost:      cfg.Tax.OtherCost,
			AssumedTaxRate: cfg.Tax.AssumedTaxRate,
			Period:         cfg.Tax.Period,
		}
	}

	return eng.WriteReports(dest, tax)
}

// loadSnapshot resolves the configured input source. The returned ReportStore
// is non-nil only when a database connection exists for report persistence.
func loadSnapshot(ctx context.Context, cfg *models.Config) (*models.Snapshot, engine.ReportStore, func(), error) {
	switch cfg.InputSource {
	case "json":
		snapshot, err := snapshotio.LoadSnapshotFile(cfg.InputPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load snapshot file: %w", err)
		}
		return snapshot, nil, nil, nil

	case "csv":
		snapshot, err := snapshotio.LoadSnapshotDir(cfg.InputPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load snapshot directory: %w", err)
		}
		return snapshot, nil, nil, nil

	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		snapshot, err := postgres.LoadSnapshot(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return snapshot, postgres.NewReportRepository(pool), pool.Close, nil

	case "seed":
		snapshot := factories.BuildSnapshot(cfg.SeedMenus, cfg.AnalysisDate)
		if cfg.InputPath != "" {
			if err := snapshotio.SaveSnapshotFile(cfg.InputPath, snapshot); err != nil {
				return nil, nil, nil, fmt.Errorf("failed to save seeded snapshot: %w", err)
			}
		}
		if cfg.OutputDestination == "postgres" {
			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return nil, nil, nil, err
			}
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, nil, err
			}
			if err := postgres.StoreSnapshot(ctx, pool, snapshot); err != nil {
				pool.Close()
				return nil, nil, nil, err
			}
			return snapshot, postgres.NewReportRepository(pool), pool.Close, nil
		}
		return snapshot, nil, nil, nil
	}

	return nil, nil, nil, fmt.Errorf("unsupported input source: %s", cfg.InputSource)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("input-source", "json", "Snapshot source: json, csv, postgres or seed")
	rootCmd.Flags().String("input-path", "", "Snapshot file (json) or directory (csv)")
	rootCmd.Flags().String("analysis-date", time.Now().Format(time.RFC3339), "Analysis date for contract and loan windows")
	rootCmd.Flags().Int("seed-menus", 10, "Number of menus to generate with the seed source")
	rootCmd.Flags().String("output-destination", "local", "Report destination: local, s3 or postgres")
	rootCmd.Flags().String("output-format", "json", "Report file format: json, csv or parquet")
	rootCmd.Flags().String("output-path", "", "Base directory for report files (empty writes to console)")
	rootCmd.Flags().String("output-folder", "reports", "Subfolder under the output path")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish reports to Kafka instead of files")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
