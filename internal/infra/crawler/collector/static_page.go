package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/PuerkitoBio/goquery"
)

// staticPage 基于已下载 HTML 的页面,没有脚本运行时,内容不会再变化
type staticPage struct {
	root *goquery.Selection
}

func NewStaticPage(root *goquery.Selection) types.Page {
	return &staticPage{root: root}
}

func (sp *staticPage) Navigate(_ context.Context, url string) error {
	return fmt.Errorf("%w: 静态页面不支持导航: %s", types.ErrNavigation, url)
}

// WaitForSelector 静态内容不会再出现新元素,不存在时直接按超时处理
func (sp *staticPage) WaitForSelector(ctx context.Context, selector string, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sp.root.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %s", types.ErrSelectorTimeout, selector)
	}
	return nil
}

// Evaluate 没有脚本运行时,忽略
func (sp *staticPage) Evaluate(ctx context.Context, _ string) error {
	return ctx.Err()
}

func (sp *staticPage) QueryAll(ctx context.Context, selector string) ([]types.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return wrapSelection(sp.root.Find(selector)), nil
}

func (sp *staticPage) Close() error {
	return nil
}

type staticElement struct {
	sel *goquery.Selection
}

func wrapSelection(sel *goquery.Selection) []types.Element {
	els := make([]types.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		els = append(els, &staticElement{sel: s})
	})
	return els
}

func (se *staticElement) QueryAll(_ context.Context, selector string) ([]types.Element, error) {
	return wrapSelection(se.sel.Find(selector)), nil
}

func (se *staticElement) Attribute(_ context.Context, name string) (string, bool, error) {
	value, ok := se.sel.Attr(name)
	return value, ok, nil
}

func (se *staticElement) Text(context.Context) (string, error) {
	return se.sel.Text(), nil
}
