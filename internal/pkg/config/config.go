package config

import (
	"fmt"
	"time"
	// QUEUE_TIMEZONE must resolve on hosts without a zoneinfo database
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// A .env file in the working directory is loaded first when present.
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	GenAI  GenAIConfig
	Queue  QueueConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Staff  StaffConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver      string        `envconfig:"STORE_DRIVER" default:"file"`
	FilePath    string        `envconfig:"STORE_FILE_PATH" default:"data/antriqu_tickets.json"`
	SaveTimeout time.Duration `envconfig:"STORE_SAVE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"antriqu"`
	Password string `envconfig:"DB_PASSWORD" default:"antriqu"`
	DBName   string `envconfig:"DB_NAME" default:"antriqu"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	MaxRetries   int    `envconfig:"REDIS_MAX_RETRIES" default:"3"`
	PoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	Key          string `envconfig:"REDIS_TICKETS_KEY" default:"antriqu_tickets"`
}

type KafkaConfig struct {
	Enabled      bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers      []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string   `envconfig:"KAFKA_TOPIC" default:"antriqu.ticket-events"`
	RetryMax     int      `envconfig:"KAFKA_RETRY_MAX" default:"3"`
	RequiredAcks int      `envconfig:"KAFKA_REQUIRED_ACKS" default:"1"`
}

type GenAIConfig struct {
	Enabled     bool          `envconfig:"GENAI_ENABLED" default:"false"`
	APIKey      string        `envconfig:"GENAI_API_KEY" default:""`
	TextModel   string        `envconfig:"GENAI_TEXT_MODEL" default:"gemini-3-flash-preview"`
	SpeechModel string        `envconfig:"GENAI_SPEECH_MODEL" default:"gemini-2.5-flash-preview-tts"`
	Voice       string        `envconfig:"GENAI_VOICE" default:"Kore"`
	Timeout     time.Duration `envconfig:"GENAI_TIMEOUT" default:"20s"`
}

type QueueConfig struct {
	Counters        int           `envconfig:"QUEUE_COUNTERS" default:"4"`
	TimeZone        string        `envconfig:"QUEUE_TIMEZONE" default:"Asia/Jakarta"`
	AnnounceTimeout time.Duration `envconfig:"QUEUE_ANNOUNCE_TIMEOUT" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// StaffConfig holds staff accounts as "email|bcrypt-hash|role" entries.
type StaffConfig struct {
	Accounts []string `envconfig:"STAFF_ACCOUNTS" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c QueueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid QUEUE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Queue.Counters <= 0 {
		return Config{}, fmt.Errorf("QUEUE_COUNTERS must be positive, got %d", cfg.Queue.Counters)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:      StoreDriverMemory,
			SaveTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Jakarta",
			MaxConns: 4,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
			Key:  "antriqu_tickets_test",
		},
		Queue: QueueConfig{
			Counters:        4,
			TimeZone:        "Asia/Jakarta",
			AnnounceTimeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
