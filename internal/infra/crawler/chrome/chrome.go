package chrome

import (
	"context"

	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
)

// Browser 一个浏览器会话,负责创建页面;rod 和 chromedp 各有一个实现
type Browser interface {
	NewPage(ctx context.Context) (types.Page, error)
	Close() error
}
