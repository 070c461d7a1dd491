package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/cli"
	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/llm"
	"github.com/LouYuanbo1/ytcrawler/internal/service/agent"
	"github.com/LouYuanbo1/ytcrawler/internal/service/crawler"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type agentFlags struct {
	cli.Flags `embed:""`
	Timeout   time.Duration `help:"单次对话超时" default:"5m"`
	WebSearch bool          `help:"允许模型使用网页搜索"`
	Query     string        `arg:"" help:"发给模型的问题"`
}

// 运行前确保 ollama 服务已启动,并且模型支持工具调用
func main() {
	cli.LoadDotEnv()
	var flags agentFlags
	parser := kong.Parse(&flags, kong.Description("由本地模型决定是否调用视频爬取工具"))

	cfg, logger, err := flags.Load()
	if err != nil {
		parser.Fatalf("加载配置失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	answer, err := run(ctx, &flags, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("对话失败")
		stop()
		os.Exit(1)
	}
	fmt.Println(answer)
}

func run(ctx context.Context, flags *agentFlags, cfg *config.Config, logger *logrus.Logger) (string, error) {
	model, err := llm.InitLLM(ctx, cfg)
	if err != nil {
		return "", err
	}

	browser, err := chrome.InitRodBrowser(cfg, logger)
	if err != nil {
		return "", fmt.Errorf("初始化 rod 浏览器失败: %w", err)
	}
	defer browser.Close()

	scrapeTool, err := agent.NewScrapeTool(crawler.InitBrowserService(browser, cfg, logger))
	if err != nil {
		return "", fmt.Errorf("创建爬取工具失败: %w", err)
	}

	agentParam := &param.Agent{
		Timeout:   flags.Timeout,
		WebSearch: flags.WebSearch,
		DuckDuckGoSearch: param.SearchConfig{
			MaxResults: 5,
			Timeout:    30 * time.Second,
		},
	}
	tools, err := agent.Tools(ctx, scrapeTool, agentParam)
	if err != nil {
		return "", err
	}

	agentService, err := agent.InitAgentService(ctx, model, tools, agentParam, logger)
	if err != nil {
		return "", err
	}
	return agentService.Invoke(ctx, flags.Query)
}
