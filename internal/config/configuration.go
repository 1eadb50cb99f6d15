package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	JanitorConfig JanitorConfig `yaml:"janitor"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"size_limit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"log_path"`
}

type JanitorConfig struct {
	Schedule string `yaml:"schedule"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Configuration) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.RequestConfig.SizeLimit == 0 {
		config.Server.RequestConfig.SizeLimit = 10
	}
	if config.Server.JanitorConfig.Schedule == "" {
		config.Server.JanitorConfig.Schedule = "@hourly"
	}
	// Secrets belong in the environment; the yaml value is a dev fallback.
	if secret := os.Getenv("STASHED_JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
}
