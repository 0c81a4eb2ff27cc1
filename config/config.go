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
	defaultMaxRequestBodySize = "16KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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

	// Gating holds thresholds and ceilings for the location gating engine
	Gating *GatingConfig `json:"gating" yaml:"gating"`

	// Monitor configures the adaptive location-service poller
	Monitor *MonitorConfig `json:"monitor" yaml:"monitor"`

	// Places configures the places/geocoding search client
	Places *PlacesConfig `json:"places" yaml:"places"`

	// Zones configures where delivery zones are loaded from
	Zones *ZonesConfig `json:"zones" yaml:"zones"`

	// ZoneService points clients at a running zoned instance
	ZoneService *ZoneServiceConfig `json:"zoneService" yaml:"zoneService"`

	// Redis is used as a shared places cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for waitlist event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for waitlist topic subscriptions
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Worker configures the waitlist push consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatingConfig defines the decision thresholds of the gating engine.
// Zero values are replaced by DefaultGatingConfig values.
type GatingConfig struct {
	// Maximum accepted GPS accuracy radius in meters
	AccuracyThresholdMeters float64 `json:"accuracyThresholdMeters" yaml:"accuracyThresholdMeters"`

	// Hard ceiling for a single GPS fix request
	GPSTimeout time.Duration `json:"gpsTimeout" yaml:"gpsTimeout"`

	// Hard ceiling for a single zone lookup
	ZoneLookupTimeout time.Duration `json:"zoneLookupTimeout" yaml:"zoneLookupTimeout"`

	// Hard ceiling for the platform permission dialog
	PermissionTimeout time.Duration `json:"permissionTimeout" yaml:"permissionTimeout"`

	// Ceiling for the fire-and-forget waitlist request
	NotifyTimeout time.Duration `json:"notifyTimeout" yaml:"notifyTimeout"`

	// Ceiling for reading or writing the setup flag
	StoreTimeout time.Duration `json:"storeTimeout" yaml:"storeTimeout"`

	// Ceiling for service and permission probes and for opening settings screens
	PlatformTimeout time.Duration `json:"platformTimeout" yaml:"platformTimeout"`
}

// DefaultGatingConfig returns the engine defaults.
func DefaultGatingConfig() GatingConfig {
	return GatingConfig{
		AccuracyThresholdMeters: 100,
		GPSTimeout:              10 * time.Second,
		ZoneLookupTimeout:       5 * time.Second,
		PermissionTimeout:       60 * time.Second,
		NotifyTimeout:           5 * time.Second,
		StoreTimeout:            3 * time.Second,
		PlatformTimeout:         2 * time.Second,
	}
}

// Normalized returns a copy with every unset field filled from the defaults.
func (c *GatingConfig) Normalized() GatingConfig {
	def := DefaultGatingConfig()
	if c == nil {
		return def
	}

	out := *c
	if out.AccuracyThresholdMeters <= 0 {
		out.AccuracyThresholdMeters = def.AccuracyThresholdMeters
	}
	if out.GPSTimeout <= 0 {
		out.GPSTimeout = def.GPSTimeout
	}
	if out.ZoneLookupTimeout <= 0 {
		out.ZoneLookupTimeout = def.ZoneLookupTimeout
	}
	if out.PermissionTimeout <= 0 {
		out.PermissionTimeout = def.PermissionTimeout
	}
	if out.NotifyTimeout <= 0 {
		out.NotifyTimeout = def.NotifyTimeout
	}
	if out.StoreTimeout <= 0 {
		out.StoreTimeout = def.StoreTimeout
	}
	if out.PlatformTimeout <= 0 {
		out.PlatformTimeout = def.PlatformTimeout
	}

	return out
}

// MonitorConfig defines the polling schedule used while waiting on OS settings.
type MonitorConfig struct {
	Phases []PollPhase `json:"phases" yaml:"phases"`
}

// PollPhase polls every Interval while the elapsed wait is below Until.
// A zero Until marks the open-ended last phase.
type PollPhase struct {
	Until    time.Duration `json:"until" yaml:"until"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// DefaultPollPhases returns the fast/medium/slow schedule: 2s for the first 6s,
// 5s for the next 25s, 10s afterwards.
func DefaultPollPhases() []PollPhase {
	return []PollPhase{
		{Until: 6 * time.Second, Interval: 2 * time.Second},
		{Until: 31 * time.Second, Interval: 5 * time.Second},
		{Interval: 10 * time.Second},
	}
}

// PollPhasesOrDefault returns the configured phases, or the defaults when none are set.
func (c *MonitorConfig) PollPhasesOrDefault() []PollPhase {
	if c == nil || len(c.Phases) == 0 {
		return DefaultPollPhases()
	}

	return c.Phases
}

// PlacesConfig defines the places search client configuration
type PlacesConfig struct {
	// Base URL of the places API, e.g. https://maps.googleapis.com
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// API key sent with every request
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Default region bias for queries (ccTLD, e.g. "in")
	RegionHint string `json:"regionHint" yaml:"regionHint"`

	// Maximum upstream requests per hour; cache hits are not counted
	RequestsPerHour int `json:"requestsPerHour" yaml:"requestsPerHour"`

	// Burst allowance for the hourly limiter
	Burst int `json:"burst" yaml:"burst"`

	// How long a normalized query result stays cached
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// Cache backend: "memory" or "redis"
	CacheBackend string `json:"cacheBackend" yaml:"cacheBackend"`

	// Debounce applied to text input before a query is issued
	Debounce time.Duration `json:"debounce" yaml:"debounce"`

	// Ceiling for a single upstream request
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ZonesConfig defines the delivery zone source
type ZonesConfig struct {
	// Source type: "postgres" or "blob"
	Source string `json:"source" yaml:"source"`

	// Bucket URL for the blob source (file:///..., gs://...)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Object key of the GeoJSON FeatureCollection inside the bucket
	Key string `json:"key" yaml:"key"`

	// Grid cell size in kilometers for the zone pre-filter
	GridCellSizeKm float64 `json:"gridCellSizeKm" yaml:"gridCellSizeKm"`
}

// ZoneServiceConfig defines how clients reach the zone service
type ZoneServiceConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	URL string `json:"url" yaml:"url"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the Pub/Sub push consumer
type WorkerConfig struct {
	// Port overrides http.port for the worker process
	Port int `json:"port" yaml:"port"`

	// PushAudience is the expected OIDC audience of push requests.
	// Empty means the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// FirebaseConfig defines Firebase configuration for waitlist topics
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides, aligned with existing YAML keys.
	// Example: GATING_GPSTIMEOUT -> gating.gpsTimeout
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
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

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
