package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvInfo 服務設定 from .env
type EnvInfo struct {
	// service name, also the yaml file name
	Service string
	// listen port, PORT wins over SEMICOLON_PORT (hosting platforms inject PORT)
	Port string
	// service yaml path
	YAMLPath string
	// service log path, empty means stdout only
	LogPath string
	// document store connection string
	MongoURI string
}

// EnvConfig 服務設定
var (
	EnvConfig = initEnv()
	envConfig EnvInfo
	once      sync.Once
	env       string
)

func initEnv() EnvInfo {
	once.Do(func() {
		path, err := GetPath(".env", 5)
		if err != nil {
			log.Printf("Warning: Could not get .env path: %v", err)
		} else if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: Could not load .env file: %v", err)
		}

		env = os.Getenv("ENV")

		envConfig = EnvInfo{
			Service:  getEnv("SEMICOLON_SERVICE", "semicolon"),
			Port:     getEnv("PORT", os.Getenv("SEMICOLON_PORT")),
			YAMLPath: getEnv("SEMICOLON_YAML", "./config"),
			LogPath:  os.Getenv("SEMICOLON_LOG"),
			MongoURI: os.Getenv("MONGODB_URI"),
		}
	})

	return envConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// IsProduction check run env
func IsProduction() bool {
	return env == "production"
}

// IsLocal check run env
func IsLocal() bool {
	return env == "local" || env == ""
}

// LoadConfig 加載配置
// 找不到 yaml 檔時只用 defaults 與環境變數
func LoadConfig[T any](serviceName string, configPath string, defaults map[string]any) (T, error) {
	var cfg T

	v := viper.New()
	v.SetConfigName(serviceName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 自動讀取環境變數, mongo.uri -> MONGO_URI
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("loading config file: %w", err)
		}
		log.Printf("Warning: config %s not found in %s, using defaults", serviceName, configPath)
	} else {
		rawConfig, err := os.ReadFile(v.ConfigFileUsed())
		if err != nil {
			return cfg, fmt.Errorf("reading raw config file: %w", err)
		}

		// 替換 ${} 占位符為環境變數的值
		expandedConfig := os.ExpandEnv(string(rawConfig))
		if err := v.ReadConfig(bytes.NewBufferString(expandedConfig)); err != nil {
			return cfg, fmt.Errorf("reading expanded config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// GetPath use fileName loop maxCount find file path
func GetPath(fileName string, maxCount int) (string, error) {
	path := "./" + fileName

	for i := 0; i < maxCount; i++ {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		path = "../" + path
	}
	return "", errors.New(fileName + " can't find path")
}
