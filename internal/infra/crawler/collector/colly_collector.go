package collector

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

type collyCrawler struct {
	colly *colly.Collector
}

// InitCollyCrawler maxRequests 是本次爬取允许的页面请求总数上限
func InitCollyCrawler(ctx context.Context, cfg *config.Config, maxRequests uint32, logger logrus.FieldLogger) (CollyCrawler, error) {
	var opts []colly.CollectorOption
	opts = append(opts,
		colly.StdlibContext(ctx),
		colly.MaxRequests(maxRequests),
		colly.UserAgent(cfg.Colly.UserAgent),
		colly.AllowedDomains(cfg.Colly.AllowedDomains...),
	)
	if cfg.Colly.IgnoreRobotsTxt {
		opts = append(opts, colly.IgnoreRobotsTxt())
	}
	c := colly.NewCollector(opts...)
	err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       time.Duration(cfg.Colly.Delay) * time.Second,
		RandomDelay: time.Duration(cfg.Colly.RandomDelay) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("设置限速规则失败: %w", err)
	}
	if cfg.Colly.EnableCookieJar {
		jar, err := cookiejar.New(cfg.Colly.CookieJarOptions)
		if err != nil {
			return nil, fmt.Errorf("创建 CookieJar 失败: %w", err)
		}
		c.SetCookieJar(jar)
	}
	logger.WithFields(logrus.Fields{
		"max_requests": maxRequests,
		"delay":        cfg.Colly.Delay,
		"random_delay": cfg.Colly.RandomDelay,
	}).Debug("InitCollyCrawler")
	return &collyCrawler{
		colly: c,
	}, nil
}

func (c *collyCrawler) Visit(url string) error {
	err := c.colly.Visit(url)
	if err != nil {
		return fmt.Errorf("访问URL失败: %w", err)
	}
	return nil
}

func (c *collyCrawler) OnRequest(callback func(r *colly.Request)) {
	c.colly.OnRequest(callback)
}

func (c *collyCrawler) OnHTML(selector string, callback func(e *colly.HTMLElement)) {
	c.colly.OnHTML(selector, callback)
}

func (c *collyCrawler) OnError(callback func(r *colly.Response, err error)) {
	c.colly.OnError(callback)
}
