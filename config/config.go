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
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Persistence configuration for schema migration and query logging
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	// Redis configuration for the weather cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Routing configuration for the base-route engine
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// PMTiles configuration for vector-tile routing
	PMTiles *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`

	// Weather configuration for the OpenWeatherMap client
	Weather *WeatherConfig `json:"weather" yaml:"weather"`

	// Incidents configuration for report lifetimes and route matching
	Incidents *IncidentsConfig `json:"incidents" yaml:"incidents"`

	// Model configuration for artifact storage
	Model *ModelConfig `json:"model" yaml:"model"`

	// Training configuration for the regression model
	Training *TrainingConfig `json:"training" yaml:"training"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// QRCode configuration for shareable favorite place codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PersistenceConfig defines schema handling and query logging
type PersistenceConfig struct {
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RoutingConfig defines routing engine configuration
type RoutingConfig struct {
	// Provider selects the engine: "osrm", "pmtiles" or "haversine"
	Provider string `json:"provider" yaml:"provider"`

	// Timeout applied to each engine call
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Default vehicle speed in km/h for duration estimation when routing data is unavailable
	DefaultSpeedKmh float64 `json:"defaultSpeedKmh" yaml:"defaultSpeedKmh"`

	// Maximum distance in kilometers for GPS coordinate snapping to road network
	MaxSnapDistanceKm float64 `json:"maxSnapDistanceKm" yaml:"maxSnapDistanceKm"`

	OSRM OSRMConfig `json:"osrm" yaml:"osrm"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// OSRMConfig defines the OSRM HTTP API
type OSRMConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Profile string `json:"profile" yaml:"profile"`
}

// BreakerConfig defines circuit breaker thresholds for an upstream
type BreakerConfig struct {
	MaxFailures  int           `json:"maxFailures" yaml:"maxFailures"`
	ResetTimeout time.Duration `json:"resetTimeout" yaml:"resetTimeout"`
}

// PMTilesConfig defines PMTiles routing configuration
type PMTilesConfig struct {
	// Enable PMTiles-based routing
	Enabled bool `json:"enabled" yaml:"enabled"`

	// PMTiles source URL (local file path, HTTP URL, or GCS URL)
	Source string `json:"source" yaml:"source"`

	// Road layer name in the MVT tiles
	RoadLayer string `json:"roadLayer" yaml:"roadLayer"`

	// Zoom level for tile queries
	ZoomLevel int `json:"zoomLevel" yaml:"zoomLevel"`
}

// WeatherConfig defines the OpenWeatherMap client
type WeatherConfig struct {
	// An empty key disables lookups and always returns the neutral placeholder
	APIKey         string        `json:"apiKey" yaml:"apiKey"`
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	Lang           string        `json:"lang" yaml:"lang"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	CacheTTL       time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	Breaker        BreakerConfig `json:"breaker" yaml:"breaker"`
}

// IncidentsConfig defines incident lifetimes and route matching
type IncidentsConfig struct {
	DefaultExpiryMinutes    int     `json:"defaultExpiryMinutes" yaml:"defaultExpiryMinutes"`
	ConfirmExtensionMinutes int     `json:"confirmExtensionMinutes" yaml:"confirmExtensionMinutes"`
	RouteThresholdKm        float64 `json:"routeThresholdKm" yaml:"routeThresholdKm"`
	NearbyRadiusKm          float64 `json:"nearbyRadiusKm" yaml:"nearbyRadiusKm"`
}

// ModelConfig defines where trained models are stored
type ModelConfig struct {
	ArtifactName string `json:"artifactName" yaml:"artifactName"`

	// Blob URL mirrored after each training run (file://, gs://, s3://)
	MirrorURL string `json:"mirrorUrl" yaml:"mirrorUrl"`
}

// TrainingConfig defines the training pipeline
type TrainingConfig struct {
	MinTrips     int     `json:"minTrips" yaml:"minTrips"`
	MaxTrips     int     `json:"maxTrips" yaml:"maxTrips"`
	RetrainEvery int     `json:"retrainEvery" yaml:"retrainEvery"`
	Estimators   int     `json:"estimators" yaml:"estimators"`
	MaxDepth     int     `json:"maxDepth" yaml:"maxDepth"`
	LearningRate float64 `json:"learningRate" yaml:"learningRate"`
	Seed         uint64  `json:"seed" yaml:"seed"`
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

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// New loads the configuration from config.yaml and the environment.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
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

// applyDefaults fills optional sections so consumers never see a nil pointer or a zero tunable.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{AutoMigrate: true}
	}
	if cfg.Persistence.SlowQueryThreshold <= 0 {
		cfg.Persistence.SlowQueryThreshold = 200 * time.Millisecond
	}

	if cfg.Routing == nil {
		cfg.Routing = &RoutingConfig{}
	}
	if cfg.Routing.Provider == "" {
		cfg.Routing.Provider = "osrm"
	}
	if cfg.Routing.RequestTimeout <= 0 {
		cfg.Routing.RequestTimeout = 10 * time.Second
	}
	if cfg.Routing.DefaultSpeedKmh <= 0 {
		cfg.Routing.DefaultSpeedKmh = 30.0
	}
	if cfg.Routing.MaxSnapDistanceKm <= 0 {
		cfg.Routing.MaxSnapDistanceKm = 0.5
	}
	if cfg.Routing.OSRM.BaseURL == "" {
		cfg.Routing.OSRM.BaseURL = "https://router.project-osrm.org"
	}
	if cfg.Routing.OSRM.Profile == "" {
		cfg.Routing.OSRM.Profile = "driving"
	}
	applyBreakerDefaults(&cfg.Routing.Breaker)

	if cfg.PMTiles == nil {
		cfg.PMTiles = &PMTilesConfig{}
	}

	if cfg.Weather == nil {
		cfg.Weather = &WeatherConfig{}
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if cfg.Weather.Lang == "" {
		cfg.Weather.Lang = "es"
	}
	if cfg.Weather.RequestTimeout <= 0 {
		cfg.Weather.RequestTimeout = 10 * time.Second
	}
	if cfg.Weather.CacheTTL <= 0 {
		cfg.Weather.CacheTTL = 10 * time.Minute
	}
	applyBreakerDefaults(&cfg.Weather.Breaker)

	if cfg.Incidents == nil {
		cfg.Incidents = &IncidentsConfig{}
	}
	if cfg.Incidents.DefaultExpiryMinutes <= 0 {
		cfg.Incidents.DefaultExpiryMinutes = 60
	}
	if cfg.Incidents.ConfirmExtensionMinutes <= 0 {
		cfg.Incidents.ConfirmExtensionMinutes = 30
	}
	if cfg.Incidents.RouteThresholdKm <= 0 {
		cfg.Incidents.RouteThresholdKm = 0.3
	}
	if cfg.Incidents.NearbyRadiusKm <= 0 {
		cfg.Incidents.NearbyRadiusKm = 10.0
	}

	if cfg.Model == nil {
		cfg.Model = &ModelConfig{}
	}
	if cfg.Model.ArtifactName == "" {
		cfg.Model.ArtifactName = "route_predictor"
	}
	if cfg.Model.MirrorURL == "" {
		cfg.Model.MirrorURL = "file:///tmp/routecast-models"
	}

	if cfg.Training == nil {
		cfg.Training = &TrainingConfig{}
	}
	if cfg.Training.MinTrips <= 0 {
		cfg.Training.MinTrips = 10
	}
	if cfg.Training.MaxTrips <= 0 {
		cfg.Training.MaxTrips = 5000
	}
	if cfg.Training.RetrainEvery <= 0 {
		cfg.Training.RetrainEvery = 25
	}
	if cfg.Training.Estimators <= 0 {
		cfg.Training.Estimators = 100
	}
	if cfg.Training.MaxDepth <= 0 {
		cfg.Training.MaxDepth = 5
	}
	if cfg.Training.LearningRate <= 0 {
		cfg.Training.LearningRate = 0.1
	}
	if cfg.Training.Seed == 0 {
		cfg.Training.Seed = 42
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}
}

func applyBreakerDefaults(b *BreakerConfig) {
	if b.MaxFailures <= 0 {
		b.MaxFailures = 5
	}
	if b.ResetTimeout <= 0 {
		b.ResetTimeout = 30 * time.Second
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
