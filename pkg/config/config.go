package config

import "time"

// Semicolon definition semicolon service YAML structure
type Semicolon struct {
	Port   string       `mapstructure:"port"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Gate   GateConfig   `mapstructure:"gate"`
	Seed   SeedConfig   `mapstructure:"seed"`
	Static StaticConfig `mapstructure:"static"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

// MongoConfig definition document store setting
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
	// bounds one whole connection attempt, keep below the platform request deadline
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	// bounds server selection per operation so requests fail fast while disconnected
	ServerSelectionTimeout time.Duration `mapstructure:"server_selection_timeout"`
	RetryCount             int           `mapstructure:"retry_count"`
	RetryInterval          time.Duration `mapstructure:"retry_interval"`
}

// GateConfig definition unlock gate setting
type GateConfig struct {
	AdminCode        string        `mapstructure:"admin_code"`
	AdminCodeHash    string        `mapstructure:"admin_code_hash"`
	ExposeUnlockCode bool          `mapstructure:"expose_unlock_code"`
	RequireToken     bool          `mapstructure:"require_token"`
	TokenSecret      string        `mapstructure:"token_secret"`
	TokenTTL         time.Duration `mapstructure:"token_ttl"`
}

// SeedConfig definition /init setting
type SeedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// StaticConfig definition front-end assets
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// DebugConfig definition diagnostics
type DebugConfig struct {
	PprofAddr string `mapstructure:"pprof_addr"`
}

// SemicolonDefaults viper defaults, every key listed here can be overridden by env (gate.admin_code -> GATE_ADMIN_CODE)
func SemicolonDefaults() map[string]any {
	return map[string]any{
		"port":                           "3001",
		"mongo.uri":                      "",
		"mongo.database":                 "semicolon",
		"mongo.connect_timeout":          "10s",
		"mongo.server_selection_timeout": "5s",
		"mongo.retry_count":              0,
		"mongo.retry_interval":           "1s",
		"gate.admin_code":                "sajak-admin",
		"gate.admin_code_hash":           "",
		"gate.expose_unlock_code":        false,
		"gate.require_token":             false,
		"gate.token_secret":              "",
		"gate.token_ttl":                 "24h",
		"seed.enabled":                   true,
		"seed.file":                      "",
		"static.dir":                     "./public",
		"debug.pprof_addr":               "",
	}
}

// LoadSemicolon load semicolon config, .env values win over yaml for port and mongo uri
func LoadSemicolon() (Semicolon, error) {
	cfg, err := LoadConfig[Semicolon](EnvConfig.Service, EnvConfig.YAMLPath, SemicolonDefaults())
	if err != nil {
		return cfg, err
	}
	if EnvConfig.Port != "" {
		cfg.Port = EnvConfig.Port
	}
	if EnvConfig.MongoURI != "" {
		cfg.Mongo.URI = EnvConfig.MongoURI
	}
	return cfg, nil
}
