package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultEnv                = "production"
	defaultMaxRequestBodySize = "10M"
	defaultMaxUploadSize      = 10 << 20
	defaultBcryptCost         = 8
)

// Environment names recognised by the application.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS CORSConfig `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	JWT JWTConfig `json:"jwt" yaml:"jwt"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Validation *ValidationConfig `json:"validation" yaml:"validation"`

	Frontend struct {
		URL string `json:"url" yaml:"url"`
	} `json:"frontend" yaml:"frontend"`

	// Email configuration for outgoing mail
	Email *EmailConfig `json:"email" yaml:"email"`

	// MailQueue configuration for asynchronous mail delivery
	MailQueue *MailQueueConfig `json:"mailQueue" yaml:"mailQueue"`

	// Storage configuration for uploaded files
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Cron *CronConfig `json:"cron" yaml:"cron"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig defines allowed origins for cross-origin requests
type CORSConfig struct {
	Origins     []string `json:"origins" yaml:"origins"`
	Credentials bool     `json:"credentials" yaml:"credentials"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`

	// Transactions requires a replica set or sharded cluster
	Transactions bool `json:"transactions" yaml:"transactions"`
}

// JWTConfig defines token signing and expiration windows
type JWTConfig struct {
	Secret                  string        `json:"secret" yaml:"secret"`
	AccessExpiration        time.Duration `json:"accessExpiration" yaml:"accessExpiration"`
	RefreshExpiration       time.Duration `json:"refreshExpiration" yaml:"refreshExpiration"`
	ResetPasswordExpiration time.Duration `json:"resetPasswordExpiration" yaml:"resetPasswordExpiration"`
	VerifyEmailExpiration   time.Duration `json:"verifyEmailExpiration" yaml:"verifyEmailExpiration"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// LengthRange is an inclusive min/max length constraint
type LengthRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// ValidationConfig defines input length constraints
type ValidationConfig struct {
	Password LengthRange `json:"password" yaml:"password"`
	Name     LengthRange `json:"name" yaml:"name"`
	Email    LengthRange `json:"email" yaml:"email"`
}

// EmailConfig defines SMTP settings and the sender address
type EmailConfig struct {
	From string     `json:"from" yaml:"from"`
	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`
}

type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	TLS      bool   `json:"tls" yaml:"tls"`
}

// MailQueueConfig defines how mail jobs leave the API process
type MailQueueConfig struct {
	// Provider type: "" sends inline, "local" pushes over HTTP, "google" uses Pub/Sub, "rabbitmq" uses AMQP
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Broker URL and queue name (for rabbitmq provider)
	RabbitMQURL string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	Queue       string `json:"queue" yaml:"queue"`
}

// StorageConfig defines the object store used for uploads
type StorageConfig struct {
	Endpoint      string `json:"endpoint" yaml:"endpoint"`
	AccessKey     string `json:"accessKey" yaml:"accessKey"`
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	Bucket        string `json:"bucket" yaml:"bucket"`
	UseSSL        bool   `json:"useSSL" yaml:"useSSL"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`

	// AllowedTypes maps a MIME category (image, audio, video, document) to accepted extensions
	AllowedTypes map[string][]string `json:"allowedTypes" yaml:"allowedTypes"`

	// DisallowedTypes lists extensions rejected per category even when allowed above
	DisallowedTypes map[string][]string `json:"disallowedTypes" yaml:"disallowedTypes"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig defines the token bucket applied to auth routes
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
}

type CronConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Timezone string `json:"timezone" yaml:"timezone"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env.Env == EnvProduction
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env.Env == EnvDevelopment
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Optional dotenv file next to the config, e.g. .env.development.local
	if err := loadDotEnv(filepath.Dir(configFile)); err != nil {
		return nil, err
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: MONGO_CONNECTTIMEOUT -> mongo.connectTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// loadDotEnv loads .env.<ENV>.local from dir into the process environment.
// Variables already set in the environment win.
func loadDotEnv(dir string) error {
	envName := os.Getenv("ENV")
	if envName == "" {
		envName = defaultEnv
	}

	path := filepath.Join(dir, ".env."+envName+".local")
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.JWT.AccessExpiration <= 0 {
		cfg.JWT.AccessExpiration = 30 * time.Minute
	}
	if cfg.JWT.RefreshExpiration <= 0 {
		cfg.JWT.RefreshExpiration = 30 * 24 * time.Hour
	}
	if cfg.JWT.ResetPasswordExpiration <= 0 {
		cfg.JWT.ResetPasswordExpiration = 10 * time.Minute
	}
	if cfg.JWT.VerifyEmailExpiration <= 0 {
		cfg.JWT.VerifyEmailExpiration = 10 * time.Minute
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	if cfg.Validation == nil {
		cfg.Validation = &ValidationConfig{}
	}
	setRange(&cfg.Validation.Password, 8, 255)
	setRange(&cfg.Validation.Name, 1, 50)
	setRange(&cfg.Validation.Email, 3, 255)

	if cfg.Storage != nil && cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
}

func setRange(r *LengthRange, minLen, maxLen int) {
	if r.Min <= 0 {
		r.Min = minLen
	}
	if r.Max <= 0 {
		r.Max = maxLen
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
