package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LouYuanbo1/ytcrawler/internal/cli"
	"github.com/LouYuanbo1/ytcrawler/internal/service/crawler"
	"github.com/alecthomas/kong"
)

// colly 只能拿到服务端渲染的 HTML,适合不依赖脚本的列表页
func main() {
	cli.LoadDotEnv()
	var flags cli.Flags
	parser := kong.Parse(&flags, kong.Description("不启动浏览器,直接解析页面 HTML 提取视频列表"))

	cfg, logger, err := flags.Load()
	if err != nil {
		parser.Fatalf("加载配置失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	videos, err := crawler.InitCollyService(cfg, logger).Crawl(ctx, flags.Request())
	if err != nil {
		logger.WithError(err).Error("爬取失败")
		os.Exit(1)
	}
	if err := cli.WriteVideos(os.Stdout, videos); err != nil {
		logger.WithError(err).Error("输出失败")
	}
}
