package agent

import (
	"context"
	"fmt"

	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/cloudwego/eino-ext/components/tool/duckduckgo/v2"
	"github.com/cloudwego/eino/components/tool"
)

// NewSearchTool 网页搜索工具,模型可以先搜索频道或话题,再调用爬取工具
func NewSearchTool(ctx context.Context, cfg param.SearchConfig) (tool.InvokableTool, error) {
	searchTool, err := duckduckgo.NewTextSearchTool(ctx, &duckduckgo.Config{
		MaxResults: cfg.MaxResults,
		Region:     cfg.Region,
		Timeout:    cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("创建搜索工具失败: %w", err)
	}
	return searchTool, nil
}

// Tools 根据参数组装 agent 可用的工具
func Tools(ctx context.Context, scrapeTool tool.InvokableTool, param *param.Agent) ([]tool.InvokableTool, error) {
	tools := []tool.InvokableTool{scrapeTool}
	if !param.WebSearch {
		return tools, nil
	}
	searchTool, err := NewSearchTool(ctx, param.DuckDuckGoSearch)
	if err != nil {
		return nil, err
	}
	return append(tools, searchTool), nil
}
