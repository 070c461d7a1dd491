package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeToolInfo(t *testing.T) {
	scrapeTool, err := NewScrapeTool(&fakeCrawler{})
	require.NoError(t, err)

	info, err := scrapeTool.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScrapeToolName, info.Name)
	assert.NotEmpty(t, info.Desc)
}

func TestScrapeToolInvoke(t *testing.T) {
	svc := &fakeCrawler{videos: []entity.Video{
		{Title: "A", URL: "https://www.youtube.com/watch?v=a", Views: ptr(int64(1200000))},
		{Title: "B", URL: "https://www.youtube.com/watch?v=b"},
	}}
	scrapeTool, err := NewScrapeTool(svc)
	require.NoError(t, err)

	out, err := scrapeTool.InvokableRun(context.Background(), `{"url":"https://www.youtube.com/feed/trending","max_videos":2}`)
	require.NoError(t, err)
	require.Equal(t, []param.Crawl{{Url: "https://www.youtube.com/feed/trending", MaxItems: 2}}, svc.reqs)

	var videos []entity.Video
	require.NoError(t, json.Unmarshal([]byte(out), &videos))
	require.Len(t, videos, 2)
	assert.Equal(t, "A", videos[0].Title)
	require.NotNil(t, videos[0].Views)
	assert.Equal(t, int64(1200000), *videos[0].Views)
	assert.Nil(t, videos[1].Views)
}

func TestScrapeToolDefaults(t *testing.T) {
	svc := &fakeCrawler{}
	scrapeTool, err := NewScrapeTool(svc)
	require.NoError(t, err)

	_, err = scrapeTool.InvokableRun(context.Background(), `{}`)
	require.NoError(t, err)
	assert.Equal(t, []param.Crawl{{}}, svc.reqs)
}

func TestScrapeToolCrawlFailure(t *testing.T) {
	crawlErr := errors.New("navigation failed")
	scrapeTool, err := NewScrapeTool(&fakeCrawler{err: crawlErr})
	require.NoError(t, err)

	_, err = scrapeTool.InvokableRun(context.Background(), `{"max_videos":3}`)
	assert.ErrorIs(t, err, crawlErr)
}
