package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL" default:"sqlite://data.db"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`

	// Uploads
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"` // 10 MiB

	// Export archive (optional)
	ExportBucket string `envconfig:"EXPORT_BUCKET"`
	ExportPrefix string `envconfig:"EXPORT_PREFIX" default:"exports"`
}
