package agent

import (
	"context"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/service/crawler"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

const ScrapeToolName = "scrape_youtube_videos"

const scrapeToolDesc = "Scrape a YouTube listing page and return video records " +
	"(title, url, views, duration, channel, published_at) in page order."

type scrapeInput struct {
	Url       string `json:"url,omitempty" jsonschema:"description=listing page url, defaults to https://www.youtube.com/"`
	MaxVideos int    `json:"max_videos,omitempty" jsonschema:"description=maximum number of videos to return (default 30)"`
}

// NewScrapeTool 把爬取驱动注册为 agent 工具,输出为视频记录数组的 JSON
func NewScrapeTool(svc crawler.CrawlerService) (tool.InvokableTool, error) {
	return utils.InferTool(ScrapeToolName, scrapeToolDesc,
		func(ctx context.Context, in scrapeInput) ([]entity.Video, error) {
			return svc.Crawl(ctx, param.Crawl{Url: in.Url, MaxItems: in.MaxVideos})
		})
}
