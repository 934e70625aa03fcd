package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`

	// GPS filter tuning. The accuracy gate rejects fixes whose reported
	// error radius exceeds AccuracyLimitM*AccuracyFactor meters; the
	// jitter gate rejects fixes closer than MinMoveDeg degrees to the
	// last recorded point.
	AccuracyLimitM float64 `mapstructure:"GPS_ACCURACY_LIMIT_M"`
	AccuracyFactor float64 `mapstructure:"GPS_ACCURACY_FACTOR"`
	MinMoveDeg     float64 `mapstructure:"GPS_MIN_MOVE_DEG"`
	FixTimeoutSec  int     `mapstructure:"GPS_FIX_TIMEOUT_SEC"`
	FixBuffer      int     `mapstructure:"GPS_FIX_BUFFER"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GPS_ACCURACY_LIMIT_M", 30.0)
	viper.SetDefault("GPS_ACCURACY_FACTOR", 2.0)
	viper.SetDefault("GPS_MIN_MOVE_DEG", 0.00005)
	viper.SetDefault("GPS_FIX_TIMEOUT_SEC", 15)
	viper.SetDefault("GPS_FIX_BUFFER", 64)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
