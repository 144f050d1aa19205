package config

import (
	"os"
	"path/filepath"
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
)

// Name selects which service configuration file is loaded.
type Name string

const (
	Distributor Name = "distributor"
	Publisher   Name = "publisher"
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrate runs the embedded schema migrations on startup
	Migrate bool `json:"migrate" yaml:"migrate"`

	// Admin holds the operator credentials for the admin API
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Bus selects and configures the message bus
	Bus *BusConfig `json:"bus" yaml:"bus"`

	Consumer *ConsumerConfig `json:"consumer" yaml:"consumer"`

	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// Distributor holds the store-side business rules of the distributor service
	Distributor *DistributorConfig `json:"distributor" yaml:"distributor"`

	// Publisher holds the auto-patch cadence of the publisher service
	Publisher *PublisherConfig `json:"publisher" yaml:"publisher"`

	// Catalog configures the CSV catalog bootstrap
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Shell configures the interactive operator console
	Shell *ShellConfig `json:"shell" yaml:"shell"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AdminConfig defines the operator login used by the admin API
type AdminConfig struct {
	Username     string        `json:"username" yaml:"username"`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenSecret  string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// BusConfig defines the message bus connection
type BusConfig struct {
	// Provider type: "memory", "kafka" or "google"
	Provider string `json:"provider" yaml:"provider"`

	// Kafka bootstrap brokers (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`

	// Consumer group shared by every listener of this service
	GroupID string `json:"groupId" yaml:"groupId"`

	// Partitions per topic when topics are created by this service
	Partitions int `json:"partitions" yaml:"partitions"`

	ReplicationFactor int `json:"replicationFactor" yaml:"replicationFactor"`

	// CreateTopics provisions missing kafka topics on startup; memory and google always do
	CreateTopics bool `json:"createTopics" yaml:"createTopics"`

	Google *GoogleBusConfig `json:"google" yaml:"google"`
}

// GoogleBusConfig defines Google Pub/Sub settings (for google provider)
type GoogleBusConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Endpoint overrides the Pub/Sub endpoint, e.g. a local emulator
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// ConsumerConfig defines listener redelivery and ingress logging
type ConsumerConfig struct {
	Concurrency    int           `json:"concurrency" yaml:"concurrency"`
	AutoStartup    bool          `json:"autoStartup" yaml:"autoStartup"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`
	MaxBackoff     time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
	DeadLetter     bool          `json:"deadLetter" yaml:"deadLetter"`
	ConsumeLogSize int           `json:"consumeLogSize" yaml:"consumeLogSize"`
}

// OutboxConfig defines how staged events are forwarded to the bus
type OutboxConfig struct {
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff      time.Duration `json:"backoff" yaml:"backoff"`
}

// DistributorConfig defines distributor business rules
type DistributorConfig struct {
	// Minimum play time, in minutes, before a player may review a game
	ReviewMinPlayTimeMinutes float64 `json:"reviewMinPlayTimeMinutes" yaml:"reviewMinPlayTimeMinutes"`

	// Price assigned to a newly distributed game
	DefaultPrice float64 `json:"defaultPrice" yaml:"defaultPrice"`
}

// PublisherConfig defines the auto-patch cadence
type PublisherConfig struct {
	NegativeFeedbackEvery int `json:"negativeFeedbackEvery" yaml:"negativeFeedbackEvery"`
	CrashReportEvery      int `json:"crashReportEvery" yaml:"crashReportEvery"`
	LowRatingMax          int `json:"lowRatingMax" yaml:"lowRatingMax"`
}

// CatalogConfig defines where the game catalog CSV is read from
type CatalogConfig struct {
	// gocloud blob bucket URL, e.g. file:///data or mem://
	BucketURL       string `json:"bucketUrl" yaml:"bucketUrl"`
	Key             string `json:"key" yaml:"key"`
	ImportOnStartup bool   `json:"importOnStartup" yaml:"importOnStartup"`
	MaxLines        int    `json:"maxLines" yaml:"maxLines"`
}

// ShellConfig defines the operator console
type ShellConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Prompt      string `json:"prompt" yaml:"prompt"`
	HistoryFile string `json:"historyFile" yaml:"historyFile"`
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

// NewLoader returns an fx constructor that loads the named service configuration.
func NewLoader(name Name) func() (*Config, error) {
	return func() (*Config, error) {
		return New(name)
	}
}

func New(name Name) (*Config, error) {
	cfg, err := LoadWithEnv[Config](string(name), "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
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
