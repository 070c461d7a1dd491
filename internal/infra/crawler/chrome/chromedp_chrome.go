package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

type chromedpBrowser struct {
	allocCtx      context.Context
	allocCtxFuc   context.CancelFunc
	browserCtx    context.Context
	browserCtxFuc context.CancelFunc
	timeoutCtxFuc context.CancelFunc
	logger        logrus.FieldLogger
}

// InitChromedpBrowser LifeTime 大于 0 时整个浏览器会话在 LifeTime 秒后强制结束
func InitChromedpBrowser(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("incognito", cfg.Chromedp.Incognito),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
	)
	if cfg.Chromedp.DisableBlinkFeatures != "" {
		opts = append(opts, chromedp.Flag("disable-blink-features", cfg.Chromedp.DisableBlinkFeatures))
	}
	if cfg.Chromedp.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.Chromedp.UserDataDir))
	}
	if cfg.Chromedp.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.Chromedp.UserAgent))
	}

	timeoutCtx, cancelTimeout := ctx, context.CancelFunc(func() {})
	if cfg.Chromedp.LifeTime > 0 {
		timeoutCtx, cancelTimeout = context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	return &chromedpBrowser{
		allocCtx:      allocCtx,
		allocCtxFuc:   cancelAlloc,
		browserCtx:    browserCtx,
		browserCtxFuc: cancelBrowser,
		timeoutCtxFuc: cancelTimeout,
		logger:        logger,
	}
}

func (cb *chromedpBrowser) NewPage(ctx context.Context) (types.Page, error) {
	// 第一次 Run 时才真正启动浏览器进程
	if err := chromedp.Run(cb.browserCtx); err != nil {
		return nil, fmt.Errorf("%w: 启动浏览器失败: %w", types.ErrPageUnavailable, err)
	}
	pageCtx, cancelPage := chromedp.NewContext(cb.browserCtx)
	page := &chromedpPage{ctx: pageCtx, cancel: cancelPage}
	if err := page.run(ctx); err != nil {
		cancelPage()
		return nil, fmt.Errorf("%w: 创建页面失败: %w", types.ErrPageUnavailable, err)
	}
	return page, nil
}

func (cb *chromedpBrowser) Close() error {
	cb.browserCtxFuc()
	cb.allocCtxFuc()
	cb.timeoutCtxFuc()
	return nil
}

type chromedpPage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run 在标签页上下文中执行动作;调用方 ctx 取消时关闭标签页
func (cp *chromedpPage) run(ctx context.Context, actions ...chromedp.Action) error {
	return runWith(ctx, cp.ctx, cp.cancel, actions...)
}

func runWith(ctx, tabCtx context.Context, cancelTab context.CancelFunc, actions ...chromedp.Action) error {
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()
	if err := chromedp.Run(tabCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

func (cp *chromedpPage) Navigate(ctx context.Context, url string) error {
	if err := cp.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrNavigation, url, err)
	}
	return nil
}

func (cp *chromedpPage) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(cp.ctx, timeout)
	defer cancel()
	err := runWith(ctx, waitCtx, cp.cancel, chromedp.WaitReady(selector, chromedp.ByQuery))
	if err != nil && ctx.Err() == nil && waitCtx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %s", types.ErrSelectorTimeout, selector)
	}
	return err
}

func (cp *chromedpPage) Evaluate(ctx context.Context, js string) error {
	return cp.run(ctx, chromedp.Evaluate(js, nil))
}

func (cp *chromedpPage) QueryAll(ctx context.Context, selector string) ([]types.Element, error) {
	var nodes []*cdp.Node
	if err := cp.run(ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return nil, err
	}
	return cp.wrapNodes(nodes), nil
}

func (cp *chromedpPage) Close() error {
	cp.cancel()
	return nil
}

func (cp *chromedpPage) wrapNodes(nodes []*cdp.Node) []types.Element {
	els := make([]types.Element, 0, len(nodes))
	for _, node := range nodes {
		els = append(els, &chromedpElement{page: cp, node: node})
	}
	return els
}

type chromedpElement struct {
	page *chromedpPage
	node *cdp.Node
}

func (ce *chromedpElement) QueryAll(ctx context.Context, selector string) ([]types.Element, error) {
	var nodes []*cdp.Node
	err := ce.page.run(ctx, chromedp.Nodes(selector, &nodes,
		chromedp.ByQueryAll, chromedp.FromNode(ce.node), chromedp.AtLeast(0)))
	if err != nil {
		return nil, err
	}
	return ce.page.wrapNodes(nodes), nil
}

func (ce *chromedpElement) Attribute(ctx context.Context, name string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := ce.page.run(ctx, chromedp.AttributeValue([]cdp.NodeID{ce.node.NodeID}, name, &value, &ok, chromedp.ByNodeID))
	if err != nil {
		return "", false, err
	}
	return value, ok, nil
}

func (ce *chromedpElement) Text(ctx context.Context) (string, error) {
	var text string
	if err := ce.page.run(ctx, chromedp.Text([]cdp.NodeID{ce.node.NodeID}, &text, chromedp.ByNodeID)); err != nil {
		return "", err
	}
	return text, nil
}
