package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName 配置文件名
const FileName = "fddl.toml"

// Config fddl 配置
type Config struct {
	Repl    ReplConfig    `toml:"repl"`
	History HistoryConfig `toml:"history"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
	I18n    I18nConfig    `toml:"i18n"`
}

// ReplConfig 交互模式配置
type ReplConfig struct {
	Prompt       string `toml:"prompt"`       // 主提示符
	Continuation string `toml:"continuation"` // 续行提示符
	Banner       bool   `toml:"banner"`       // 启动时是否显示横幅
}

// HistoryConfig 历史记录配置
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`  // 为空时使用 ~/.fddl/history.db
	Limit   int    `toml:"limit"` // 保留条数，0 表示不限制
}

// OutputConfig 输出配置
type OutputConfig struct {
	Color string `toml:"color"` // auto, always, never
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// I18nConfig 语言配置
type I18nConfig struct {
	Lang string `toml:"lang"` // 为空时根据环境变量检测
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Repl: ReplConfig{
			Prompt:       "> ",
			Continuation: "... ",
			Banner:       true,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   1000,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// FindAndLoad 从指定目录向上查找 fddl.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 fddl.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，未设置的项保持默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// 相对路径以配置文件所在目录为基准
	if config.History.Path != "" && !filepath.IsAbs(config.History.Path) {
		config.History.Path = filepath.Join(filepath.Dir(path), config.History.Path)
	}

	return config, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Output.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unknown mode %q", c.Output.Color)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit: must not be negative, got %d", c.History.Limit)
	}
	return nil
}

// ParseLevel 将日志级别名称转换为 slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
