package crawler

import (
	"context"
	"fmt"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/collector"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/LouYuanbo1/ytcrawler/internal/service/listing"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

type collyService struct {
	cfg    *config.Config
	logger logrus.FieldLogger
}

// InitCollyService 不启动浏览器,直接解析服务端返回的 HTML
// 适合列表直接渲染在 HTML 中的页面,成本低但拿不到脚本渲染或懒加载的内容
func InitCollyService(cfg *config.Config, logger logrus.FieldLogger) CrawlerService {
	return &collyService{cfg: cfg, logger: logger}
}

func (cs *collyService) Crawl(ctx context.Context, req param.Crawl) ([]entity.Video, error) {
	req, err := req.Normalize(cs.cfg.Crawl.DefaultURL, cs.cfg.Crawl.MaxItems)
	if err != nil {
		return nil, err
	}
	origin, err := resolveOrigin(cs.cfg, req)
	if err != nil {
		return nil, err
	}
	logger := cs.logger.WithFields(logrus.Fields{"url": req.Url, "max_items": req.MaxItems})
	logger.Info("开始爬取")

	// 页面请求总数上限等于 maxItems
	collyCrawler, err := collector.InitCollyCrawler(ctx, cs.cfg, uint32(req.MaxItems), logger)
	if err != nil {
		return nil, err
	}

	// 静态页面没有脚本运行时,滚动后无需等待
	scanner := newScanner(cs.cfg, origin, listing.ScanOptions{WaitTimeout: cs.cfg.WaitTimeout()}, logger)

	var (
		videos  = []entity.Video{}
		scanErr error
	)
	collyCrawler.OnRequest(func(r *colly.Request) {
		logger.WithField("request_url", r.URL.String()).Debug("访问页面")
	})
	collyCrawler.OnHTML("html", func(e *colly.HTMLElement) {
		videos, scanErr = scanner.ScanPage(ctx, collector.NewStaticPage(e.DOM), req.MaxItems)
	})
	collyCrawler.OnError(func(r *colly.Response, err error) {
		logger.WithFields(logrus.Fields{
			"status_code": r.StatusCode,
		}).WithError(err).Error("请求失败")
	})

	if err := collyCrawler.Visit(req.Url); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", types.ErrNavigation, err)
	}
	if scanErr != nil {
		return nil, fmt.Errorf("扫描页面失败: %w", scanErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.WithField("videos", len(videos)).Info("爬取完成")
	return videos, nil
}
