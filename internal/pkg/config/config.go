package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Auth    AuthConfig
	Redis   RedisConfig
	Broker  BrokerConfig
	Policy  PolicyConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" required:"true"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Seoul"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type SessionConfig struct {
	Secret     string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"session_token"`
	SameSite   string        `envconfig:"COOKIE_SAMESITE" default:"Lax"`
	Domain     string        `envconfig:"COOKIE_DOMAIN"`
}

type AuthConfig struct {
	// pyxis: library login API, local: bcrypt hashes in the members table
	Provider      string        `envconfig:"AUTH_PROVIDER" default:"pyxis"`
	PyxisLoginURL string        `envconfig:"PYXIS_LOGIN_URL" default:"https://lib.hanyang.ac.kr/pyxis-api/api/login"`
	PyxisTimeout  time.Duration `envconfig:"PYXIS_TIMEOUT" default:"5s"`
	AdminUserIDs  []string      `envconfig:"ADMIN_USER_IDS"`
}

// Empty URL selects the in-process revocation list.
type RedisConfig struct {
	URL       string `envconfig:"REDIS_URL"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"campus-booking:revoked:"`
}

// Empty URL disables event publication.
type BrokerConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"campus.booking"`
}

// PolicyConfig carries the per-kind reservation policy. Zero caps mean unlimited.
type PolicyConfig struct {
	SlotGranularity time.Duration `envconfig:"SLOT_GRANULARITY" default:"30m"`
	SeatMinSession  time.Duration `envconfig:"SEAT_MIN_SESSION" default:"30m"`
	TxMaxRetries    int           `envconfig:"TX_MAX_RETRIES" default:"3"`

	ClassroomBlocking   []string      `envconfig:"CLASSROOM_BLOCKING_STATUSES" default:"pending,approved"`
	ClassroomDailyCap   time.Duration `envconfig:"CLASSROOM_DAILY_CAP" default:"0"`
	ClassroomMonthlyCap time.Duration `envconfig:"CLASSROOM_MONTHLY_CAP" default:"0"`

	StudyRoomBlocking   []string      `envconfig:"STUDY_ROOM_BLOCKING_STATUSES" default:"pending,approved"`
	StudyRoomDailyCap   time.Duration `envconfig:"STUDY_ROOM_DAILY_CAP" default:"2h"`
	StudyRoomMonthlyCap time.Duration `envconfig:"STUDY_ROOM_MONTHLY_CAP" default:"20h"`

	SeatDailyCap   time.Duration `envconfig:"SEAT_DAILY_CAP" default:"6h"`
	SeatDailyCount int           `envconfig:"SEAT_DAILY_COUNT" default:"10"`
}

func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

func (c ServerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			Env:      "test",
			TimeZone: "Asia/Seoul",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Session: SessionConfig{
			Secret:     "test-session-secret",
			TTL:        2 * time.Hour,
			CookieName: "session_token",
			SameSite:   "Lax",
		},
		Auth: AuthConfig{
			Provider:     "local",
			PyxisTimeout: time.Second,
			AdminUserIDs: []string{"admin-1"},
		},
		Broker: BrokerConfig{
			Exchange: "campus.booking",
		},
		Policy: PolicyConfig{
			SlotGranularity:     30 * time.Minute,
			SeatMinSession:      30 * time.Minute,
			TxMaxRetries:        3,
			ClassroomBlocking:   []string{"pending", "approved"},
			StudyRoomBlocking:   []string{"pending", "approved"},
			StudyRoomDailyCap:   2 * time.Hour,
			StudyRoomMonthlyCap: 20 * time.Hour,
			SeatDailyCap:        6 * time.Hour,
			SeatDailyCount:      10,
		},
	}
}
