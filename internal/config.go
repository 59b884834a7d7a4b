package internal

type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	SQLiteFilepath string `env:"SQLITE_FILEPATH,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	// Comma-separated blacklist; empty disables moderation.
	CensoredWords []string `env:"CENSORED_WORDS"`

	// Per-connection outbound buffer; a full buffer drops frames rather
	// than blocking the fan-out.
	ConnectionBufferSize int `env:"CONNECTION_BUFFER_SIZE,required=true"`
	// Audit entries queued between the coordinator and the badger writer.
	AuditBufferSize int `env:"AUDIT_BUFFER_SIZE,required=true"`
}
