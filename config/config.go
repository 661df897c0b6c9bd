package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
	LogFile               string
	UploadMaxBytes        int
}

const envPrefix = "SCHEDSIM"

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file is not an
// error; the defaults and SCHEDSIM_* environment variables still apply.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := NewViper()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}
		config = FromViper(v)
	})

	return config
}

// Load reads the config file at path, or only defaults and environment when
// path is empty.
func Load(path string) (*SchedulerConfig, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return FromViper(v), nil
}

// NewViper returns a viper instance carrying the defaults and environment
// binding, ready for a config file or command line flags.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("upload.max_bytes", 1<<20)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) *SchedulerConfig {
	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log.level"),
		LogFile:               v.GetString("log.file"),
		UploadMaxBytes:        v.GetInt("upload.max_bytes"),
	}
}
