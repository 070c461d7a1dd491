package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/LouYuanbo1/ytcrawler/internal/cli"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/ytcrawler/internal/service/crawler"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/alecthomas/kong"
)

type parallelFlags struct {
	Config  string   `help:"配置文件路径,为空时使用内置默认配置" env:"YTCRAWLER_CONFIG" type:"path"`
	Max     int      `help:"每个页面最多返回的视频数" env:"YTCRAWLER_MAX" default:"0"`
	Workers int      `help:"同时打开的标签页数" default:"3"`
	URLs    []string `arg:"" help:"列表页面地址"`
}

// 多个列表页面共用一个 rod 浏览器,每个页面一个标签页
func main() {
	cli.LoadDotEnv()
	var flags parallelFlags
	parser := kong.Parse(&flags, kong.Description("并发爬取多个列表页面,结果按输入顺序以 JSON 输出"))

	cfg, logger, err := (&cli.Flags{Config: flags.Config}).Load()
	if err != nil {
		parser.Fatalf("加载配置失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	browser, err := chrome.InitRodBrowser(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("初始化 rod 浏览器失败")
	}
	defer browser.Close()

	reqs := make([]param.Crawl, 0, len(flags.URLs))
	for _, u := range flags.URLs {
		reqs = append(reqs, param.Crawl{Url: u, MaxItems: flags.Max})
	}
	svc := crawler.InitParallelService(crawler.InitBrowserService(browser, cfg, logger), flags.Workers, logger)
	results, err := svc.CrawlAll(ctx, reqs)
	if err != nil {
		logger.WithError(err).Error("部分页面爬取失败")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		logger.WithError(err).Error("输出失败")
	}
}
