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
	parser := kong.Parse(&flags, kong.Description("使用 rod 驱动的浏览器爬取视频列表,结果以 JSON 输出到 stdout"))

	cfg, logger, err := flags.Load()
	if err != nil {
		parser.Fatalf("加载配置失败: %v", err)
	}

	// Ctrl+C 取消爬取,不输出部分结果
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	browser, err := chrome.InitRodBrowser(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("初始化 rod 浏览器失败")
	}
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
