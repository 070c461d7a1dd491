package param

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const DefaultMaxItems = 30

var ErrInvalidCrawl = errors.New("invalid crawl request")

// Crawl 一次爬取请求:目标页面和最多返回的记录数
type Crawl struct {
	Url      string `json:"url" jsonschema:"description=listing page url to scrape, defaults to the site root"`
	MaxItems int    `json:"max_items" jsonschema:"description=maximum number of videos to return (default 30)"`
}

// Normalize 填充默认值并校验,返回新的请求
// defaultMax 不大于 0 时使用 DefaultMaxItems
func (c Crawl) Normalize(defaultURL string, defaultMax int) (Crawl, error) {
	c.Url = strings.TrimSpace(c.Url)
	if c.Url == "" {
		c.Url = defaultURL
	}
	if c.MaxItems <= 0 {
		c.MaxItems = defaultMax
	}
	if c.MaxItems <= 0 {
		c.MaxItems = DefaultMaxItems
	}
	u, err := url.Parse(c.Url)
	if err != nil {
		return Crawl{}, fmt.Errorf("%w: %w", ErrInvalidCrawl, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Crawl{}, fmt.Errorf("%w: url must be absolute http(s), got %q", ErrInvalidCrawl, c.Url)
	}
	return c, nil
}

// Origin 目标页面的 scheme://host
func (c Crawl) Origin() (*url.URL, error) {
	u, err := url.Parse(c.Url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCrawl, err)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
