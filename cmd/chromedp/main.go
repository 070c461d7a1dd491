package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LouYuanbo1/ytcrawler/internal/cli"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/ytcrawler/internal/service/crawler"
	"github.com/alecthomas/kong"
)

func main() {
	cli.LoadDotEnv()
	var flags cli.Flags
	parser := kong.Parse(&flags, kong.Description("使用 chromedp 驱动的浏览器爬取视频列表,结果以 JSON 输出到 stdout"))

	cfg, logger, err := flags.Load()
	if err != nil {
		parser.Fatalf("加载配置失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 浏览器的生命周期由 ctx 和配置中的 life_time 共同决定
	browser := chrome.InitChromedpBrowser(ctx, cfg, logger)
	defer browser.Close()

	svc := crawler.InitBrowserService(browser, cfg, logger)
	videos, err := svc.Crawl(ctx, flags.Request())
	if err != nil {
		logger.WithError(err).Error("爬取失败")
		browser.Close()
		os.Exit(1)
	}
	if err := cli.WriteVideos(os.Stdout, videos); err != nil {
		logger.WithError(err).Error("输出失败")
	}
}
