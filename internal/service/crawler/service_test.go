package crawler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/collector"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// listingPage 生成 n 个列表元素,missing 中的序号(从 1 开始)没有标题链接
func listingPage(n int, missing ...int) string {
	skip := map[int]bool{}
	for _, i := range missing {
		skip[i] = true
	}
	var b strings.Builder
	b.WriteString("<html><body><div id=\"contents\">")
	for i := 1; i <= n; i++ {
		b.WriteString("<ytd-rich-item-renderer>")
		if !skip[i] {
			fmt.Fprintf(&b, `<a id="video-title-link" href="/watch?v=%d" title="Video %d">Video %d</a>`, i, i, i)
		}
		fmt.Fprintf(&b, `<ytd-channel-name><a href="/@c%d">Channel %d</a></ytd-channel-name>`, i, i)
		fmt.Fprintf(&b, `<div id="metadata-line"><span class="inline-metadata-item">%dK views</span><span class="inline-metadata-item">%d days ago</span></div>`, i, i)
		b.WriteString(`<ytd-thumbnail-overlay-time-status-renderer><span id="text"> 1:0` + fmt.Sprint(i) + ` </span></ytd-thumbnail-overlay-time-status-renderer>`)
		b.WriteString("</ytd-rich-item-renderer>")
	}
	b.WriteString("</div></body></html>")
	return b.String()
}

type recordingPage struct {
	types.Page
	navigated   []string
	navigateErr error
	closed      bool
}

func (rp *recordingPage) Navigate(_ context.Context, url string) error {
	rp.navigated = append(rp.navigated, url)
	return rp.navigateErr
}

func (rp *recordingPage) Close() error {
	rp.closed = true
	return nil
}

type fakeBrowser struct {
	html        string
	pageErr     error
	navigateErr error
	pages       []*recordingPage
}

func (fb *fakeBrowser) NewPage(context.Context) (types.Page, error) {
	if fb.pageErr != nil {
		return nil, fb.pageErr
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fb.html))
	if err != nil {
		return nil, err
	}
	page := &recordingPage{Page: collector.NewStaticPage(doc.Selection), navigateErr: fb.navigateErr}
	fb.pages = append(fb.pages, page)
	return page, nil
}

func (fb *fakeBrowser) Close() error { return nil }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Crawl.SettleDelayMs = 1
	cfg.Crawl.WaitTimeoutMs = 10
	cfg.Crawl.NavigationsPerSecond = 0
	cfg.Log.Level = "debug"
	return cfg
}

func testLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func videoTitles(videos []entity.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.Title)
	}
	return out
}

var errCrashed = errors.New("target crashed")

func requireNoPartialResult(t *testing.T, videos []entity.Video, err error) {
	t.Helper()
	require.Error(t, err)
	require.Nil(t, videos)
}
