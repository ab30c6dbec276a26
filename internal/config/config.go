package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	CAS       CASConfig       `yaml:"cas"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Storage   StorageConfig   `yaml:"storage"`
	Mail      MailConfig      `yaml:"mail"`
	Errors    ErrorsConfig    `yaml:"errors"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Records   RecordsConfig   `yaml:"records"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
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
	LoginRateLimit  int           `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"trainrec"`
}

// AuthConfig holds JWT issuance and transport settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"trainrec"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	HeaderPrefix   string        `yaml:"header_prefix"    env:"AUTH_HEADER_PREFIX"    env-default:"Bearer"`
	CookieEnabled  bool          `yaml:"cookie_enabled"   env:"AUTH_COOKIE_ENABLED"   env-default:"false"`
	CookieName     string        `yaml:"cookie_name"      env:"AUTH_COOKIE_NAME"      env-default:"trainrec_token"`
	CookieDomain   string        `yaml:"cookie_domain"    env:"AUTH_COOKIE_DOMAIN"`
	CookieSecure   bool          `yaml:"cookie_secure"    env:"AUTH_COOKIE_SECURE"    env-default:"true"`
}

// CASConfig holds the CAS single sign-on settings.
type CASConfig struct {
	ServerURL        string        `yaml:"server_url"        env:"CAS_SERVER_URL"        env-required:"true"`
	Version          string        `yaml:"version"           env:"CAS_VERSION"           env-default:"2"`
	Timeout          time.Duration `yaml:"timeout"           env:"CAS_TIMEOUT"           env-default:"5s"`
	ServiceBaseURL   string        `yaml:"service_base_url"  env:"CAS_SERVICE_BASE_URL"`
	RedirectURL      string        `yaml:"redirect_url"      env:"CAS_REDIRECT_URL"      env-default:"/"`
	RetryLogin       bool          `yaml:"retry_login"       env:"CAS_RETRY_LOGIN"       env-default:"false"`
	LogoutCompletely bool          `yaml:"logout_completely" env:"CAS_LOGOUT_COMPLETELY" env-default:"true"`
	AllowedHostsRaw  string        `yaml:"allowed_hosts"     env:"CAS_ALLOWED_HOSTS"`
}

// AllowedHosts returns the hosts accepted as absolute "next" redirect targets.
func (c CASConfig) AllowedHosts() []string {
	var hosts []string
	for _, h := range strings.Split(c.AllowedHostsRaw, ",") {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && !slices.Contains(hosts, h) {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig holds attachment storage settings.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"os"`
	Root    string `yaml:"root"    env:"STORAGE_ROOT"    env-default:"./data/attachments"`
}

// MailConfig holds e-mail notification settings. An empty API key disables delivery.
type MailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"MAIL_SENDGRID_API_KEY"`
	FromAddress    string `yaml:"from_address"     env:"MAIL_FROM_ADDRESS"     env-default:"noreply@trainrec.local"`
	FromName       string `yaml:"from_name"        env:"MAIL_FROM_NAME"        env-default:"Training Records"`
}

// ErrorsConfig holds error reporting settings.
type ErrorsConfig struct {
	RollbarToken string `yaml:"rollbar_token" env:"ERRORS_ROLLBAR_TOKEN"`
	Environment  string `yaml:"environment"   env:"ERRORS_ENVIRONMENT"   env-default:"development"`
}

// SchedulerConfig holds maintenance job settings.
type SchedulerConfig struct {
	Enabled        bool          `yaml:"enabled"          env:"SCHEDULER_ENABLED"          env-default:"true"`
	PurgeLinksSpec string        `yaml:"purge_links_spec" env:"SCHEDULER_PURGE_LINKS_SPEC" env-default:"@hourly"`
	JobTimeout     time.Duration `yaml:"job_timeout"      env:"SCHEDULER_JOB_TIMEOUT"      env-default:"5m"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RecordsConfig holds training record limits.
type RecordsConfig struct {
	MaxAttachmentBytes  int64         `yaml:"max_attachment_bytes"  env:"RECORDS_MAX_ATTACHMENT_BYTES"  env-default:"10485760"`
	AllowedContentTypes string        `yaml:"allowed_content_types" env:"RECORDS_ALLOWED_CONTENT_TYPES" env-default:"application/pdf,image/png,image/jpeg"`
	MaxContentLength    int           `yaml:"max_content_length"    env:"RECORDS_MAX_CONTENT_LENGTH"    env-default:"20000"`
	QueuePageSize       int           `yaml:"queue_page_size"       env:"RECORDS_QUEUE_PAGE_SIZE"       env-default:"50"`
	ShortLinkTTL        time.Duration `yaml:"short_link_ttl"        env:"RECORDS_SHORT_LINK_TTL"        env-default:"720h"`
}

// ContentTypes returns the parsed list of accepted attachment content types.
func (c RecordsConfig) ContentTypes() []string {
	var types []string
	for _, t := range strings.Split(c.AllowedContentTypes, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			types = append(types, t)
		}
	}
	return types
}
