package chrome

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

type rodBrowser struct {
	// root 是启动的浏览器进程,browser 可能是其上的无痕上下文
	root     *rod.Browser
	browser  *rod.Browser
	launcher *launcher.Launcher
	// 配置了 user_data_dir 时保留目录,只有临时目录才清理
	keepUserData bool
	userAgent    string
	logger       logrus.FieldLogger
}

func InitRodBrowser(cfg *config.Config, logger logrus.FieldLogger) (Browser, error) {
	l := launcher.New().
		Headless(cfg.Rod.Headless).
		NoSandbox(cfg.Rod.NoSandbox).
		Leakless(cfg.Rod.Leakless)
	if cfg.Rod.Bin != "" {
		l = l.Bin(cfg.Rod.Bin)
	}
	if cfg.Rod.UserDataDir != "" {
		l = l.UserDataDir(cfg.Rod.UserDataDir)
	}
	if cfg.Rod.DisableBlinkFeatures != "" {
		l = l.Set("disable-blink-features", cfg.Rod.DisableBlinkFeatures)
	}
	if cfg.Rod.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}
	logger.WithField("control_url", controlURL).Info("浏览器已启动")

	browser := rod.New().ControlURL(controlURL).Trace(cfg.Rod.Trace)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}
	rb := &rodBrowser{
		root:         browser,
		browser:      browser,
		launcher:     l,
		keepUserData: cfg.Rod.UserDataDir != "",
		userAgent:    cfg.Rod.UserAgent,
		logger:       logger,
	}
	if cfg.Rod.Incognito {
		incognito, err := browser.Incognito()
		if err != nil {
			_ = rb.Close()
			return nil, fmt.Errorf("创建无痕上下文失败: %w", err)
		}
		rb.browser = incognito
	}
	return rb, nil
}

func (rb *rodBrowser) NewPage(ctx context.Context) (types.Page, error) {
	page, err := rb.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: 创建页面失败: %w", types.ErrPageUnavailable, err)
	}
	if rb.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: rb.userAgent}); err != nil {
			rb.logger.WithError(err).Warn("设置 UserAgent 失败")
		}
	}
	return &rodPage{page: page}, nil
}

// Close 关闭浏览器进程并清理启动器
func (rb *rodBrowser) Close() error {
	err := rb.root.Close()
	if rb.keepUserData {
		rb.launcher.Kill()
	} else {
		rb.launcher.Cleanup()
	}
	return err
}

type rodPage struct {
	page *rod.Page
}

func (rp *rodPage) Navigate(ctx context.Context, url string) error {
	page := rp.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrNavigation, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: 等待页面加载失败 %s: %w", types.ErrNavigation, url, err)
	}
	return nil
}

// WaitForSelector rod 的 Element 会一直重试直到元素出现或超时
func (rp *rodPage) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := rp.page.Context(ctx).Timeout(timeout).Element(selector)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w: %s", types.ErrSelectorTimeout, selector)
	}
	return err
}

func (rp *rodPage) Evaluate(ctx context.Context, js string) error {
	_, err := rp.page.Context(ctx).Eval(fmt.Sprintf("() => { %s }", js))
	return err
}

func (rp *rodPage) QueryAll(ctx context.Context, selector string) ([]types.Element, error) {
	found, err := rp.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapRodElements(found), nil
}

func (rp *rodPage) Close() error {
	return rp.page.Close()
}

type rodElement struct {
	el *rod.Element
}

func wrapRodElements(found rod.Elements) []types.Element {
	els := make([]types.Element, 0, len(found))
	for _, el := range found {
		els = append(els, &rodElement{el: el})
	}
	return els
}

func (re *rodElement) QueryAll(ctx context.Context, selector string) ([]types.Element, error) {
	found, err := re.el.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapRodElements(found), nil
}

func (re *rodElement) Attribute(ctx context.Context, name string) (string, bool, error) {
	value, err := re.el.Context(ctx).Attribute(name)
	if err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (re *rodElement) Text(ctx context.Context) (string, error) {
	return re.el.Context(ctx).Text()
}
