package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

// TaxConfig feeds the standalone VAT/income-tax estimator; the amounts come
// straight from the operator, not from the snapshot.
type TaxConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	SalesAmount    float64 `mapstructure:"sales_amount"`
	SalesMode      string  `mapstructure:"sales_mode"` // inclusive or exclusive
	PurchaseAmount float64 `mapstructure:"purchase_amount"`
	PurchaseMode   string  `mapstructure:"purchase_mode"`
	VATRate        float64 `mapstructure:"vat_rate"` // fraction, e.g. 0.1
	LaborCost      float64 `mapstructure:"labor_cost"`
	OtherCost      float64 `mapstructure:"other_cost"`
	AssumedTaxRate float64 `mapstructure:"assumed_tax_rate"` // percent
	Period         string  `mapstructure:"period"`           // monthly, quarterly, yearly
}

type Config struct {
	InputSource  string    `mapstructure:"input_source"` // json, csv, postgres or seed
	InputPath    string    `mapstructure:"input_path"`
	AnalysisDate time.Time `mapstructure:"analysis_date"` // "now" for date-window math
	SeedMenus    int       `mapstructure:"seed_menus"`

	OutputDestination string `mapstructure:"output_destination"` // local, s3 or postgres
	OutputFormat      string `mapstructure:"output_format"`      // json, csv or parquet
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	Database     DatabaseConfig     `mapstructure:"database"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Tax          TaxConfig          `mapstructure:"tax"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("analysis_date", time.Now().Format(time.RFC3339))
	viper.SetDefault("input_source", "json")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("output_format", "json")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.AnalysisDate.IsZero() {
		config.AnalysisDate = time.Now()
	}

	return &config, nil
}
