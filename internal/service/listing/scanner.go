package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/sirupsen/logrus"
)

// 滚动到底部触发懒加载,只触发一次
const scrollToBottomJS = `window.scrollTo(0, document.documentElement.scrollHeight);`

type ScanOptions struct {
	// ItemSelectors 覆盖不同列表渲染器的选择器,合并为一个选择器组按 DOM 顺序查询
	ItemSelectors []string
	WaitTimeout   time.Duration
	// SettleDelay 滚动后等待异步内容渲染的固定时长
	SettleDelay time.Duration
}

// Scanner 列表扫描器,每次页面加载运行一次
type Scanner struct {
	extractor *Extractor
	opts      ScanOptions
	logger    logrus.FieldLogger
}

func NewScanner(extractor *Extractor, opts ScanOptions, logger logrus.FieldLogger) *Scanner {
	return &Scanner{extractor: extractor, opts: opts, logger: logger}
}

// ScanPage 等待列表出现 -> 滚动触发懒加载 -> 等待渲染 -> 按 DOM 顺序提取记录
// 最多返回 maxItems 条,达到上限后不再提取剩余元素
// 单个元素提取失败只会丢弃该元素;只有上下文取消或页面不可用才返回错误
func (s *Scanner) ScanPage(ctx context.Context, page types.Page, maxItems int) ([]entity.Video, error) {
	if maxItems <= 0 {
		return []entity.Video{}, nil
	}
	itemSelector := strings.Join(s.opts.ItemSelectors, ", ")
	logger := s.logger.WithField("max_items", maxItems)

	if err := page.WaitForSelector(ctx, itemSelector, s.opts.WaitTimeout); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.WithError(err).Warn("等待列表元素失败,按页面现有内容继续")
	}

	if err := page.Evaluate(ctx, scrollToBottomJS); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.WithError(err).Warn("滚动到底部失败")
	}
	if err := sleep(ctx, s.opts.SettleDelay); err != nil {
		return nil, err
	}

	candidates, err := page.QueryAll(ctx, itemSelector)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: 查询列表元素失败: %w", types.ErrPageUnavailable, err)
	}
	logger.WithField("candidates", len(candidates)).Debug("找到列表元素")

	videos := make([]entity.Video, 0, min(maxItems, len(candidates)))
	for i, el := range candidates {
		if len(videos) >= maxItems {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		video, err := s.extractor.ExtractRecord(ctx, el)
		if err != nil {
			logger.WithField("index", i).WithError(err).Debug("丢弃无效记录")
			continue
		}
		videos = append(videos, video)
	}

	logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"videos":     len(videos),
	}).Info("列表扫描完成")
	return videos, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
