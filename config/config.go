package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置项取值非法
var ErrInvalidConfig = errors.New("配置无效")

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Logging LoggingConfig `yaml:"logging"`
	Game    GameConfig    `yaml:"game"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"` // gin 模式：debug / release / test
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type GameConfig struct {
	SessionTTL       time.Duration `yaml:"session_ttl"`
	MaxSolutions     int           `yaml:"max_solutions"`
	PreviewSolutions int           `yaml:"preview_solutions"`
	MaxAttempts      int           `yaml:"max_attempts"`
	ExhaustiveShapes bool          `yaml:"exhaustive_shapes"`
	StrictVerify     bool          `yaml:"strict_verify"`
}

// Default 全部使用默认值的配置
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load 读取 YAML 配置文件并校验
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault 文件不存在时返回默认配置
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate 检查必填项并补全默认值
func (c *Config) Validate() error {
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: 启用 Redis 时必须配置 redis.addr", ErrInvalidConfig)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("%w: redis.db 不能为负数", ErrInvalidConfig)
	}
	if c.Game.SessionTTL < 0 {
		return fmt.Errorf("%w: game.session_ttl 不能为负数", ErrInvalidConfig)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Game.SessionTTL == 0 {
		c.Game.SessionTTL = 30 * time.Minute
	}
	if c.Game.MaxSolutions == 0 {
		c.Game.MaxSolutions = 5
	}
	if c.Game.PreviewSolutions == 0 {
		c.Game.PreviewSolutions = 3
	}
	if c.Game.MaxAttempts == 0 {
		c.Game.MaxAttempts = 100
	}

	return nil
}
