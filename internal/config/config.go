package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	WaniKani WaniKaniConfig `yaml:"wanikani"`
	JPDB     JPDBConfig     `yaml:"jpdb"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// WaniKaniConfig holds WaniKani API settings. The token only needs read
// permissions. "Known" kanji are assignments at Guru or above (stage 5);
// "known" vocabulary starts at Apprentice (stage 1).
type WaniKaniConfig struct {
	APIToken           string `yaml:"api_token"            env:"WANIKANI_API_TOKEN" env-required:"true"`
	BaseURL            string `yaml:"base_url"             env:"WANIKANI_BASE_URL"  env-default:"https://api.wanikani.com/v2"`
	KanjiMinStage      int    `yaml:"kanji_min_stage"      env:"WANIKANI_KANJI_MIN_STAGE"      env-default:"5"`
	VocabularyMinStage int    `yaml:"vocabulary_min_stage" env:"WANIKANI_VOCABULARY_MIN_STAGE" env-default:"1"`
}

// JPDBConfig holds jpdb API settings for canonical-spelling resolution.
type JPDBConfig struct {
	APIToken  string `yaml:"api_token"  env:"JPDB_API_TOKEN"`
	BaseURL   string `yaml:"base_url"   env:"JPDB_BASE_URL"   env-default:"https://jpdb.io/api/v1"`
	BatchSize int    `yaml:"batch_size" env:"JPDB_BATCH_SIZE" env-default:"1000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
