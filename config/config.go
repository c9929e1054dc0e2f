package config

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultImportWindowDays   = 30
	defaultSlowQuery          = 200 * time.Millisecond
	defaultPoolWait           = 50 * time.Millisecond
	defaultPoolMonitor        = 5 * time.Second
	defaultImportLimit        = 100
	defaultTimezone           = "Europe/Moscow"
	defaultRadiusMeters       = 5000
	defaultDispatchWorkers    = 8
	defaultMaxListed          = 5
	defaultRetryMax           = 2
	defaultRetryBackoff       = 200 * time.Millisecond
	defaultArchiveAfter       = 7 * 24 * time.Hour
	defaultDeleteAfter        = 30 * 24 * time.Hour
	defaultImportSpec         = "0 */6 * * *"
	defaultCleanupSpec        = "0 3 * * *"
	defaultDigestSpec         = "0 9 * * *"
	defaultKudaGoBaseURL      = "https://kudago.com/public-api/v1.4"
	defaultKudaGoPageSize     = 100
	defaultKudaGoPageInterval = 500 * time.Millisecond
	defaultTelegramRateLimit  = 25
)

var defaultCities = []string{
	"voronezh", "moscow", "spb", "ekaterinburg", "kazan", "novosibirsk", "nizhny_novgorod",
}

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
	} `json:"http" yaml:"http"`

	// Admin configuration for the trigger endpoints
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database schema management
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Importer configuration for event sources
	Importer *ImporterConfig `json:"importer" yaml:"importer"`

	// Notification configuration for recipient matching
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Dispatch configuration for new-event pushes
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Digest configuration for the daily summary
	Digest *DigestConfig `json:"digest" yaml:"digest"`

	// Retention configuration for archiving and deleting past events
	Retention *RetentionConfig `json:"retention" yaml:"retention"`

	// Scheduler configuration for periodic jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Telegram configuration for the bot delivery channel
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AdminConfig protects the admin endpoints with a static API key
type AdminConfig struct {
	Token string `json:"token" yaml:"token"`
}

// DatabaseConfig defines schema management options
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs statements slower than this at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	// PoolWaitThreshold turns pool wait observations into warnings
	PoolWaitThreshold time.Duration `json:"poolWaitThreshold" yaml:"poolWaitThreshold"`
	// PoolMonitorInterval is how often pool wait statistics are sampled
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// ImporterConfig defines which sources are imported for which cities
type ImporterConfig struct {
	Cities     []string `json:"cities" yaml:"cities"`
	Sources    []string `json:"sources" yaml:"sources"`
	WindowDays int      `json:"windowDays" yaml:"windowDays"`
	Limit      int      `json:"limit" yaml:"limit"`

	// Timezone used to derive the calendar day of an event start
	Timezone string `json:"timezone" yaml:"timezone"`

	KudaGo *KudaGoConfig `json:"kudago" yaml:"kudago"`
	Afisha *AfishaConfig `json:"afisha" yaml:"afisha"`
}

// KudaGoConfig defines the KudaGo public API client
type KudaGoConfig struct {
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl"`
	PageSize     int           `json:"pageSize" yaml:"pageSize"`
	PageInterval time.Duration `json:"pageInterval" yaml:"pageInterval"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// AfishaConfig defines the Afisha JSON feed client
type AfishaConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// NotificationConfig defines recipient matching defaults
type NotificationConfig struct {
	// Radius in meters applied to recipients that did not choose one
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`

	// Timezone for quiet hours of recipients without their own
	Timezone string `json:"timezone" yaml:"timezone"`
}

// DispatchConfig defines the new-event fan-out
type DispatchConfig struct {
	Workers      int           `json:"workers" yaml:"workers"`
	MaxListed    int           `json:"maxListed" yaml:"maxListed"`
	RetryMax     int           `json:"retryMax" yaml:"retryMax"`
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// DigestConfig defines the daily summary
type DigestConfig struct {
	MaxListed int `json:"maxListed" yaml:"maxListed"`
}

// RetentionConfig defines when past events are archived and deleted
type RetentionConfig struct {
	ArchiveAfter time.Duration `json:"archiveAfter" yaml:"archiveAfter"`
	DeleteAfter  time.Duration `json:"deleteAfter" yaml:"deleteAfter"`
}

// SchedulerConfig defines cron specs for the periodic jobs
type SchedulerConfig struct {
	Timezone string `json:"timezone" yaml:"timezone"`
	Jobs     struct {
		Import  JobConfig `json:"import" yaml:"import"`
		Cleanup JobConfig `json:"cleanup" yaml:"cleanup"`
		Digest  JobConfig `json:"digest" yaml:"digest"`
	} `json:"jobs" yaml:"jobs"`
}

// JobConfig defines a single scheduled job
type JobConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Spec    string `json:"spec" yaml:"spec"`
}

// TelegramConfig defines the Telegram bot channel
type TelegramConfig struct {
	Token string `json:"token" yaml:"token"`

	// Messages per second across all chats
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push OIDC tokens; empty skips verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset section and field with its default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQuery
	}
	if cfg.Database.PoolWaitThreshold <= 0 {
		cfg.Database.PoolWaitThreshold = defaultPoolWait
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitor
	}

	if cfg.Importer == nil {
		cfg.Importer = &ImporterConfig{}
	}
	if len(cfg.Importer.Cities) == 0 {
		cfg.Importer.Cities = slices.Clone(defaultCities)
	}
	if len(cfg.Importer.Sources) == 0 {
		cfg.Importer.Sources = []string{"kudago"}
	}
	cfg.Importer.WindowDays = positiveOr(cfg.Importer.WindowDays, defaultImportWindowDays)
	cfg.Importer.Limit = positiveOr(cfg.Importer.Limit, defaultImportLimit)
	cfg.Importer.Timezone = cmp.Or(cfg.Importer.Timezone, defaultTimezone)
	if cfg.Importer.KudaGo == nil {
		cfg.Importer.KudaGo = &KudaGoConfig{}
	}
	cfg.Importer.KudaGo.BaseURL = cmp.Or(cfg.Importer.KudaGo.BaseURL, defaultKudaGoBaseURL)
	cfg.Importer.KudaGo.PageSize = positiveOr(cfg.Importer.KudaGo.PageSize, defaultKudaGoPageSize)
	cfg.Importer.KudaGo.PageInterval = cmp.Or(cfg.Importer.KudaGo.PageInterval, defaultKudaGoPageInterval)
	cfg.Importer.KudaGo.Timeout = cmp.Or(cfg.Importer.KudaGo.Timeout, 30*time.Second)
	if cfg.Importer.Afisha == nil {
		cfg.Importer.Afisha = &AfishaConfig{}
	}
	cfg.Importer.Afisha.Timeout = cmp.Or(cfg.Importer.Afisha.Timeout, 30*time.Second)

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	cfg.Notification.DefaultRadius = cmp.Or(cfg.Notification.DefaultRadius, defaultRadiusMeters)
	cfg.Notification.Timezone = cmp.Or(cfg.Notification.Timezone, defaultTimezone)

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{RetryMax: defaultRetryMax}
	}
	cfg.Dispatch.Workers = cmp.Or(cfg.Dispatch.Workers, defaultDispatchWorkers)
	cfg.Dispatch.MaxListed = cmp.Or(cfg.Dispatch.MaxListed, defaultMaxListed)
	cfg.Dispatch.RetryBackoff = cmp.Or(cfg.Dispatch.RetryBackoff, defaultRetryBackoff)

	if cfg.Digest == nil {
		cfg.Digest = &DigestConfig{}
	}
	cfg.Digest.MaxListed = cmp.Or(cfg.Digest.MaxListed, 10)

	if cfg.Retention == nil {
		cfg.Retention = &RetentionConfig{}
	}
	cfg.Retention.ArchiveAfter = cmp.Or(cfg.Retention.ArchiveAfter, defaultArchiveAfter)
	cfg.Retention.DeleteAfter = cmp.Or(cfg.Retention.DeleteAfter, defaultDeleteAfter)

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
		cfg.Scheduler.Jobs.Import.Enabled = true
		cfg.Scheduler.Jobs.Cleanup.Enabled = true
		cfg.Scheduler.Jobs.Digest.Enabled = true
	}
	cfg.Scheduler.Timezone = cmp.Or(cfg.Scheduler.Timezone, defaultTimezone)
	cfg.Scheduler.Jobs.Import.Spec = cmp.Or(cfg.Scheduler.Jobs.Import.Spec, defaultImportSpec)
	cfg.Scheduler.Jobs.Cleanup.Spec = cmp.Or(cfg.Scheduler.Jobs.Cleanup.Spec, defaultCleanupSpec)
	cfg.Scheduler.Jobs.Digest.Spec = cmp.Or(cfg.Scheduler.Jobs.Digest.Spec, defaultDigestSpec)

	if cfg.Telegram == nil {
		cfg.Telegram = &TelegramConfig{}
	}
	cfg.Telegram.RateLimit = cmp.Or(cfg.Telegram.RateLimit, defaultTelegramRateLimit)
	cfg.Telegram.Burst = cmp.Or(cfg.Telegram.Burst, 1)

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

// positiveOr returns fallback when v is zero or negative.
func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}

	return v
}
