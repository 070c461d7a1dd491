package listing

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
)

var errBrowser = errors.New("browser went away")

type fakeElement struct {
	attrs    map[string]string
	text     string
	textErr  error
	children map[string][]*fakeElement
	queryErr map[string]error
	queries  int
}

func (fe *fakeElement) QueryAll(_ context.Context, selector string) ([]types.Element, error) {
	fe.queries++
	if err, ok := fe.queryErr[selector]; ok {
		return nil, err
	}
	found := fe.children[selector]
	els := make([]types.Element, 0, len(found))
	for _, child := range found {
		els = append(els, child)
	}
	return els, nil
}

func (fe *fakeElement) Attribute(_ context.Context, name string) (string, bool, error) {
	value, ok := fe.attrs[name]
	return value, ok, nil
}

func (fe *fakeElement) Text(context.Context) (string, error) {
	return fe.text, fe.textErr
}

func (fe *fakeElement) add(selector string, child *fakeElement) *fakeElement {
	if fe.children == nil {
		fe.children = map[string][]*fakeElement{}
	}
	fe.children[selector] = append(fe.children[selector], child)
	return fe
}

type fakePage struct {
	items    []*fakeElement
	waitErr  error
	evalErr  error
	queryErr error
	calls    []string
	scripts  []string
	waited   time.Duration
}

func (fp *fakePage) Navigate(context.Context, string) error {
	fp.calls = append(fp.calls, "navigate")
	return nil
}

func (fp *fakePage) WaitForSelector(_ context.Context, _ string, timeout time.Duration) error {
	fp.calls = append(fp.calls, "wait")
	fp.waited = timeout
	return fp.waitErr
}

func (fp *fakePage) Evaluate(_ context.Context, js string) error {
	fp.calls = append(fp.calls, "evaluate")
	fp.scripts = append(fp.scripts, js)
	return fp.evalErr
}

func (fp *fakePage) QueryAll(context.Context, string) ([]types.Element, error) {
	fp.calls = append(fp.calls, "query")
	if fp.queryErr != nil {
		return nil, fp.queryErr
	}
	els := make([]types.Element, 0, len(fp.items))
	for _, item := range fp.items {
		els = append(els, item)
	}
	return els, nil
}

func (fp *fakePage) Close() error { return nil }

var (
	testSelectors = config.Default().Selectors
	testOrigin, _ = url.Parse("https://www.youtube.com")
)

// videoItem 构造一个使用默认选择器的完整列表元素
func videoItem(title, href string) *fakeElement {
	item := &fakeElement{}
	link := &fakeElement{attrs: map[string]string{"title": title, "href": href}, text: title}
	item.add(testSelectors.TitleLink[0], link)
	item.add(testSelectors.Channel[0], &fakeElement{text: " Channel of " + title + " "})
	item.add(testSelectors.Metadata[0], &fakeElement{text: "1.2M views"})
	item.add(testSelectors.Metadata[0], &fakeElement{text: "3 days ago"})
	item.add(testSelectors.Duration[0], &fakeElement{text: "\n 12:34 \n"})
	return item
}

// bareItem 只有标题链接的元素
func bareItem(title, href string) *fakeElement {
	return (&fakeElement{}).add(testSelectors.TitleLink[0],
		&fakeElement{attrs: map[string]string{"href": href}, text: title})
}
