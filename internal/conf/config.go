package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/provider"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// DotEnvFile is read from the working directory when present
const DotEnvFile = ".env"

type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	Search SearchConfig  `mapstructure:"search"`
	Log    logger.Config `mapstructure:"log"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	GRPCPort int    `mapstructure:"grpc_port"`
}

type SearchConfig struct {
	DefaultEngine string         `mapstructure:"default_engine"`
	Bing          ProviderConfig `mapstructure:"bing"`
	Google        ProviderConfig `mapstructure:"google"`
	Baidu         ProviderConfig `mapstructure:"baidu"`
	News          ProviderConfig `mapstructure:"news"`
}

type ProviderConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	EngineID string `mapstructure:"engine_id"`
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string]string{
	"search.default_engine":   "DEFAULT_SEARCH_ENGINE",
	"search.bing.api_key":     "BING_SEARCH_API_KEY",
	"search.bing.endpoint":    "BING_SEARCH_ENDPOINT",
	"search.google.api_key":   "GOOGLE_SEARCH_API_KEY",
	"search.google.engine_id": "GOOGLE_SEARCH_ENGINE_ID",
	"search.google.endpoint":  "GOOGLE_SEARCH_ENDPOINT",
	"search.baidu.endpoint":   "BAIDU_SEARCH_ENDPOINT",
	"search.news.api_key":     "NEWS_API_KEY",
	"search.news.endpoint":    "NEWS_API_ENDPOINT",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
	"log.output":              "LOG_OUTPUT",
	"log.file.filename":       "LOG_FILE",
	"server.host":             "SERVER_HOST",
	"server.port":             "SERVER_PORT",
	"server.grpc_port":        "SERVER_GRPC_PORT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.grpc_port", 9090)

	v.SetDefault("search.default_engine", string(types.DefaultEngine))
	v.SetDefault("search.bing.endpoint", provider.BingAPIHost)
	v.SetDefault("search.google.endpoint", provider.GoogleAPIHost)
	v.SetDefault("search.baidu.endpoint", provider.BaiduAPIHost)
	v.SetDefault("search.news.endpoint", provider.NewsAPIHost)

	def := logger.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.output", def.Output)
	v.SetDefault("log.enablecaller", def.EnableCaller)
	v.SetDefault("log.enablestacktrace", def.EnableStacktrace)
	v.SetDefault("log.file.filename", def.File.Filename)
	v.SetDefault("log.file.maxsize", def.File.MaxSize)
	v.SetDefault("log.file.maxage", def.File.MaxAge)
	v.SetDefault("log.file.maxbackups", def.File.MaxBackups)
	v.SetDefault("log.file.compress", def.File.Compress)
}

// LoadConfig reads the optional config file at path, the .env file in the working
// directory and the process environment. The process environment wins over both
// files; a config file wins over .env.
func LoadConfig(path string) (*Config, error) {
	return load(path, DotEnvFile)
}

func load(path, envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := applyDotEnv(v, envFile); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// applyDotEnv layers KEY=value pairs from envFile beneath the real environment
func applyDotEnv(v *viper.Viper, envFile string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	dv := viper.New()
	dv.SetConfigFile(envFile)
	dv.SetConfigType("env")
	if err := dv.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	for key, env := range envBindings {
		name := strings.ToLower(env)
		if dv.IsSet(name) {
			v.SetDefault(key, dv.GetString(name))
		}
	}
	return nil
}

// ResolveDefaultEngine validates a configured default engine name. Unknown or
// empty values are replaced by google with a warning.
func ResolveDefaultEngine(raw string, log *zap.Logger) types.EngineID {
	if log == nil {
		log = zap.NewNop()
	}

	id, ok := types.ParseEngine(raw)
	if !ok {
		log.Warn("invalid default search engine, using fallback",
			zap.String("configured", raw),
			zap.String("engine", string(types.DefaultEngine)),
			zap.Strings("supported", types.WebEngineNames()),
		)
		return types.DefaultEngine
	}

	log.Info("default search engine resolved", zap.String("engine", string(id)))
	return id
}

// ProviderConfigs returns one provider configuration per engine
func (c *SearchConfig) ProviderConfigs() []*types.ProviderConfig {
	return []*types.ProviderConfig{
		{ID: types.EngineBing, APIHost: c.Bing.Endpoint, APIKey: c.Bing.APIKey},
		{ID: types.EngineGoogle, APIHost: c.Google.Endpoint, APIKey: c.Google.APIKey, EngineID: c.Google.EngineID},
		{ID: types.EngineBaidu, APIHost: c.Baidu.Endpoint},
		{ID: types.EngineNewsAPI, APIHost: c.News.Endpoint, APIKey: c.News.APIKey},
	}
}

// Address returns the HTTP listen address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GRPCAddress returns the gRPC listen address
func (c *ServerConfig) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}
