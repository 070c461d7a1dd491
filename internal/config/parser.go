package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// 默认配置,用户配置只需要覆盖需要修改的字段
//
//go:embed appconfig.json
var defaultConfig []byte

var ErrInvalidConfig = errors.New("invalid config")

// Default 返回内置的默认配置
func Default() *Config {
	var cfg Config
	if err := json.Unmarshal(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("内置配置解析失败: %v", err))
	}
	return &cfg
}

// ParseConfig 将 JSON 配置覆盖到默认配置上并校验
func ParseConfig(byteConfig []byte) (*Config, error) {
	cfg := Default()
	if len(byteConfig) > 0 {
		if err := json.Unmarshal(byteConfig, cfg); err != nil {
			return nil, err
		}
	}
	for _, dir := range []*string{&cfg.Chromedp.UserDataDir, &cfg.Rod.UserDataDir} {
		if *dir == "" {
			continue
		}
		absPath, err := filepath.Abs(*dir)
		if err != nil {
			return nil, err
		}
		*dir = absPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig 读取配置文件,path 为空时使用默认配置
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Crawl.MaxItems <= 0 {
		return fmt.Errorf("%w: crawl.max_items must be positive, got %d", ErrInvalidConfig, c.Crawl.MaxItems)
	}
	if c.Crawl.WaitTimeoutMs <= 0 {
		return fmt.Errorf("%w: crawl.wait_timeout_ms must be positive, got %d", ErrInvalidConfig, c.Crawl.WaitTimeoutMs)
	}
	if c.SettleDelay() < MinSettleDelay {
		return fmt.Errorf("%w: crawl.settle_delay_ms must be at least %d, got %d",
			ErrInvalidConfig, MinSettleDelay.Milliseconds(), c.Crawl.SettleDelayMs)
	}
	if c.Crawl.NavigationsPerSecond < 0 {
		return fmt.Errorf("%w: crawl.navigations_per_second must not be negative", ErrInvalidConfig)
	}
	if c.Crawl.SiteOrigin != "" {
		origin, err := url.Parse(c.Crawl.SiteOrigin)
		if err != nil || origin.Scheme == "" || origin.Host == "" {
			return fmt.Errorf("%w: crawl.site_origin must be an absolute url, got %q", ErrInvalidConfig, c.Crawl.SiteOrigin)
		}
	}
	if len(c.Selectors.Items) == 0 || len(c.Selectors.TitleLink) == 0 {
		return fmt.Errorf("%w: selectors.items and selectors.title_link are required", ErrInvalidConfig)
	}
	return nil
}
