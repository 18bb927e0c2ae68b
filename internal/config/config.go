package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "ADMIN_CONFIG_FILE"

type jwt struct {
	Secret         string `mapstructure:"secret"`
	RefreshSecret  string `mapstructure:"refresh_secret"`
	Issuer         string `mapstructure:"issuer"`
	AccessTTLMin   int    `mapstructure:"access_ttl_min"`
	RefreshTTLDays int    `mapstructure:"refresh_ttl_days"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	MongoURI       string     `mapstructure:"mongo_uri"`
	MongoDatabase  string     `mapstructure:"mongo_database"`
	CloudinaryURL  string     `mapstructure:"cloudinary_url"`
	JWT            jwt        `mapstructure:"jwt"`
}

func Load() Config {
	cfg, err := load(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

func load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "INFO")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "ecommerce-admin")
	v.SetDefault("cloudinary_url", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.refresh_secret", "")
	v.SetDefault("jwt.issuer", "ecommerce-admin")
	v.SetDefault("jwt.access_ttl_min", 15)
	v.SetDefault("jwt.refresh_ttl_days", 7)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	// log_level arrives as text ("INFO", "DEBUG"); slog.Level decodes it via
	// encoding.TextUnmarshaler, which viper's default hooks do not cover.
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))

	var cfg Config
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getConfigFilepath resolves the config file location: the env var wins over
// the flag; an empty result means config comes from defaults and env only.
func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}
