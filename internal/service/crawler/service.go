package crawler

import (
	"context"
	"errors"
	"net/url"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/service/listing"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/sirupsen/logrus"
)

var ErrNavigationLimit = errors.New("navigation limit reached")

// CrawlerService 爬取驱动:访问目标页面并返回按 DOM 顺序排列的视频记录
// 导航失败、页面崩溃或取消时返回错误,不返回部分结果
type CrawlerService interface {
	Crawl(ctx context.Context, req param.Crawl) ([]entity.Video, error)
}

// resolveOrigin 相对链接补全使用的站点地址,未配置时取目标页面的 scheme://host
func resolveOrigin(cfg *config.Config, req param.Crawl) (*url.URL, error) {
	if cfg.Crawl.SiteOrigin != "" {
		return url.Parse(cfg.Crawl.SiteOrigin)
	}
	return req.Origin()
}

func newScanner(cfg *config.Config, origin *url.URL, opts listing.ScanOptions, logger logrus.FieldLogger) *listing.Scanner {
	extractor := listing.NewExtractor(cfg.Selectors, origin, logger)
	if opts.ItemSelectors == nil {
		opts.ItemSelectors = cfg.Selectors.Items
	}
	return listing.NewScanner(extractor, opts, logger)
}
