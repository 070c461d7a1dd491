package crawler

import (
	"context"
	"fmt"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/LouYuanbo1/ytcrawler/internal/service/listing"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

type browserService struct {
	browser chrome.Browser
	cfg     *config.Config
	limiter *rate.Limiter
	logger  logrus.FieldLogger
}

// InitBrowserService 使用 rod 或 chromedp 浏览器会话的爬取驱动
func InitBrowserService(browser chrome.Browser, cfg *config.Config, logger logrus.FieldLogger) CrawlerService {
	limit := rate.Inf
	if cfg.Crawl.NavigationsPerSecond > 0 {
		limit = rate.Limit(cfg.Crawl.NavigationsPerSecond)
	}
	return &browserService{
		browser: browser,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

func (bs *browserService) Crawl(ctx context.Context, req param.Crawl) ([]entity.Video, error) {
	req, err := req.Normalize(bs.cfg.Crawl.DefaultURL, bs.cfg.Crawl.MaxItems)
	if err != nil {
		return nil, err
	}
	origin, err := resolveOrigin(bs.cfg, req)
	if err != nil {
		return nil, err
	}
	logger := bs.logger.WithFields(logrus.Fields{"url": req.Url, "max_items": req.MaxItems})
	logger.Info("开始爬取")

	// 导航次数上限等于 maxItems,目前只会导航一次
	navBudget := semaphore.NewWeighted(int64(req.MaxItems))

	page, err := bs.browser.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			logger.WithError(err).Warn("关闭页面失败")
		}
	}()

	if err := bs.navigate(ctx, page, navBudget, req.Url); err != nil {
		return nil, err
	}
	logger.Debug("导航成功")

	scanner := newScanner(bs.cfg, origin, listing.ScanOptions{
		WaitTimeout: bs.cfg.WaitTimeout(),
		SettleDelay: bs.cfg.SettleDelay(),
	}, logger)
	videos, err := scanner.ScanPage(ctx, page, req.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("扫描页面失败: %w", err)
	}
	logger.WithField("videos", len(videos)).Info("爬取完成")
	return videos, nil
}

func (bs *browserService) navigate(ctx context.Context, page types.Page, budget *semaphore.Weighted, url string) error {
	if !budget.TryAcquire(1) {
		return fmt.Errorf("%w: %s", ErrNavigationLimit, url)
	}
	if err := bs.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("等待导航配额失败: %w", err)
	}
	if err := page.Navigate(ctx, url); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	return nil
}
