package configs

const (
	SourceLocal = "local"
	SourceS3    = "s3"
)

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Input       InputConfig       `mapstructure:"input" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// InputConfig selects where the day/product/task tree is read from.
type InputConfig struct {
	Source string   `mapstructure:"source" validate:"required,oneof=local s3"`
	S3     S3Config `mapstructure:"s3"`
}

// S3Config holds the S3-compatible endpoint used when input.source is s3.
// The input argument of the run is then an object key prefix inside Bucket.
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// AggregationConfig holds aggregation configuration.
type AggregationConfig struct {
	DayWorkers          int  `mapstructure:"day_workers" validate:"required,min=1,max=64"`
	SkipUnreadableTasks bool `mapstructure:"skip_unreadable_tasks"`
	PVUMultiplier       int  `mapstructure:"pvu_multiplier" validate:"required,min=1"`
}

// ReportConfig holds output file naming and encoding.
type ReportConfig struct {
	FilePrefix string `mapstructure:"file_prefix" validate:"required,excludesall=/\\:"`
	Extension  string `mapstructure:"extension" validate:"required,alphanum"`
	UseCRLF    bool   `mapstructure:"use_crlf"`
}

// MetricsConfig holds run metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}
