package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Notification NotificationConfig `yaml:"notification"`
	Redis        RedisConfig        `yaml:"redis"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Bootstrap    BootstrapConfig    `yaml:"bootstrap"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AuthRateLimit   int           `yaml:"auth_rate_limit"  env:"SERVER_AUTH_RATE_LIMIT"  env-default:"20"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"bluemoon-fees"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Dispatch modes for ledger notifications.
const (
	// DispatchStrict resolves the addressee before the mutation and writes the
	// notification in the same transaction; a missing ADMIN aborts the mutation.
	DispatchStrict = "strict"
	// DispatchBestEffort commits the mutation first and only logs dispatch failures.
	DispatchBestEffort = "best_effort"
)

// NotificationConfig controls how ledger mutations notify administrators.
type NotificationConfig struct {
	DispatchMode string `yaml:"dispatch_mode" env:"NOTIFICATION_DISPATCH_MODE" env-default:"strict"`
}

// RedisConfig holds the notification fan-out bus settings.
type RedisConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"REDIS_ENABLED"      env-default:"false"`
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	Channel     string        `yaml:"channel"      env:"REDIS_CHANNEL"      env-default:"bluemoon:notifications"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// BootstrapConfig controls seeding of default users on an empty database.
type BootstrapConfig struct {
	SeedUsers     bool   `yaml:"seed_users"     env:"BOOTSTRAP_SEED_USERS"     env-default:"true"`
	AdminUsername string `yaml:"admin_username" env:"BOOTSTRAP_ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string `yaml:"admin_password" env:"BOOTSTRAP_ADMIN_PASSWORD" env-default:"admin123"`
	AdminEmail    string `yaml:"admin_email"    env:"BOOTSTRAP_ADMIN_EMAIL"    env-default:"admin@bluemoon.local"`
	UserUsername  string `yaml:"user_username"  env:"BOOTSTRAP_USER_USERNAME"  env-default:"user"`
	UserPassword  string `yaml:"user_password"  env:"BOOTSTRAP_USER_PASSWORD"  env-default:"user123"`
	UserEmail     string `yaml:"user_email"     env:"BOOTSTRAP_USER_EMAIL"     env-default:"user@bluemoon.local"`
}

// IsStrict reports whether notification dispatch is coupled to the mutation.
func (c NotificationConfig) IsStrict() bool {
	return c.DispatchMode == DispatchStrict
}
