package types

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNavigation      = errors.New("navigation failed")
	ErrPageUnavailable = errors.New("page unavailable")
	ErrSelectorTimeout = errors.New("wait for selector timed out")
)

// Page 浏览器自动化引擎需要提供的最小能力集合
// rod、chromedp 以及基于 goquery 的静态页面都实现了这个接口
type Page interface {
	Navigate(ctx context.Context, url string) error
	// WaitForSelector 阻塞直到 selector 出现,超过 timeout 返回 ErrSelectorTimeout
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error
	Evaluate(ctx context.Context, js string) error
	// QueryAll 按 DOM 顺序返回所有匹配元素,不等待
	QueryAll(ctx context.Context, selector string) ([]Element, error)
	Close() error
}

// Element 页面中的一个元素句柄
type Element interface {
	QueryAll(ctx context.Context, selector string) ([]Element, error)
	// Attribute 第二个返回值表示属性是否存在
	Attribute(ctx context.Context, name string) (string, bool, error)
	Text(ctx context.Context) (string, error)
}
