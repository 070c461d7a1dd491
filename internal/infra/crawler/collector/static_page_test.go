package collector

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><body>
<ytd-rich-item-renderer id="one">
  <a id="video-title-link" href="/watch?v=1" title="First">First</a>
</ytd-rich-item-renderer>
<ytd-video-renderer id="two">
  <a id="video-title" href="/watch?v=2">  Second  </a>
</ytd-video-renderer>
<ytd-rich-item-renderer id="three"></ytd-rich-item-renderer>
</body></html>`

func newTestPage(t *testing.T) types.Page {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingHTML))
	require.NoError(t, err)
	return NewStaticPage(doc.Selection)
}

func TestStaticPageQueryAllKeepsDocumentOrder(t *testing.T) {
	page := newTestPage(t)
	ctx := context.Background()

	els, err := page.QueryAll(ctx, "ytd-video-renderer, ytd-rich-item-renderer")
	require.NoError(t, err)
	require.Len(t, els, 3)

	ids := make([]string, 0, len(els))
	for _, el := range els {
		id, ok, err := el.Attribute(ctx, "id")
		require.NoError(t, err)
		require.True(t, ok)
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"one", "two", "three"}, ids)
}

func TestStaticElementAccessors(t *testing.T) {
	page := newTestPage(t)
	ctx := context.Background()

	els, err := page.QueryAll(ctx, "ytd-video-renderer")
	require.NoError(t, err)
	require.Len(t, els, 1)

	links, err := els[0].QueryAll(ctx, "a#video-title")
	require.NoError(t, err)
	require.Len(t, links, 1)

	href, ok, err := links[0].Attribute(ctx, "href")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/watch?v=2", href)

	_, ok, err = links[0].Attribute(ctx, "title")
	require.NoError(t, err)
	assert.False(t, ok)

	text, err := links[0].Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "  Second  ", text)

	none, err := els[0].QueryAll(ctx, "a#video-title-link")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStaticPageWaitForSelector(t *testing.T) {
	page := newTestPage(t)

	assert.NoError(t, page.WaitForSelector(context.Background(), "ytd-rich-item-renderer", time.Second))
	assert.ErrorIs(t, page.WaitForSelector(context.Background(), "ytd-grid-video-renderer", time.Second), types.ErrSelectorTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, page.WaitForSelector(ctx, "ytd-rich-item-renderer", time.Second), context.Canceled)
}

func TestStaticPageNavigateUnsupported(t *testing.T) {
	page := newTestPage(t)
	assert.ErrorIs(t, page.Navigate(context.Background(), "https://www.youtube.com/"), types.ErrNavigation)
	assert.NoError(t, page.Evaluate(context.Background(), "window.scrollTo(0, 0)"))
	assert.NoError(t, page.Close())
}
