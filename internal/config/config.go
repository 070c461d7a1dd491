package config

import (
	"net/http/cookiejar"
	"time"
)

// MinSettleDelay 滚动后等待异步内容渲染的最小时长
// 固定等待本身就依赖页面速度,低于这个值基本拿不到懒加载内容
const MinSettleDelay = 500 * time.Millisecond

// Selectors 每个字段按优先级排列的 CSS 选择器,用于兼容不同的列表渲染结构
type Selectors struct {
	Items     []string `json:"items"`
	TitleLink []string `json:"title_link"`
	Channel   []string `json:"channel"`
	Metadata  []string `json:"metadata"`
	Duration  []string `json:"duration"`
}

type Config struct {
	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log"`

	Rod struct {
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
		Leakless             bool   `json:"leakless"`
		Bin                  string `json:"bin"`
		Trace                bool   `json:"trace"`
	} `json:"rod"`

	Chromedp struct {
		LifeTime             int    `json:"life_time"`
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
	} `json:"chromedp"`

	Colly struct {
		AllowedDomains   []string           `json:"allowed_domains"`
		UserAgent        string             `json:"user_agent"`
		IgnoreRobotsTxt  bool               `json:"ignore_robots_txt"`
		Delay            int                `json:"delay"`
		RandomDelay      int                `json:"random_delay"`
		EnableCookieJar  bool               `json:"enable_cookie_jar"`
		CookieJarOptions *cookiejar.Options `json:"cookie_jar_options"`
	} `json:"colly"`

	Crawl struct {
		DefaultURL           string  `json:"default_url"`
		SiteOrigin           string  `json:"site_origin"`
		MaxItems             int     `json:"max_items"`
		WaitTimeoutMs        int     `json:"wait_timeout_ms"`
		SettleDelayMs        int     `json:"settle_delay_ms"`
		NavigationsPerSecond float64 `json:"navigations_per_second"`
	} `json:"crawl"`

	Selectors Selectors `json:"selectors"`

	LLM struct {
		Host           string `json:"host"`
		Port           int    `json:"port"`
		Model          string `json:"model"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"llm"`
}

func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Crawl.WaitTimeoutMs) * time.Millisecond
}

func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Crawl.SettleDelayMs) * time.Millisecond
}
