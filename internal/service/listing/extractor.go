package listing

import (
	"context"
	"net/url"
	"strings"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/sirupsen/logrus"
)

// Extractor 字段提取器,从一个列表元素中读取视频记录的各个字段
// 单个字段读取失败只会让该字段缺失,不会影响其它字段
type Extractor struct {
	origin     *url.URL
	logger     logrus.FieldLogger
	titleLinks []string

	// title 和 href 在同一个标题链接元素上读取
	title       field
	href        field
	channel     field
	views       field
	duration    field
	publishedAt field
}

// NewExtractor origin 用于把站内相对链接(以 / 开头)补全为绝对链接
func NewExtractor(selectors config.Selectors, origin *url.URL, logger logrus.FieldLogger) *Extractor {
	return &Extractor{
		origin:     origin,
		logger:     logger,
		titleLinks: selectors.TitleLink,
		// 优先使用 title 属性,没有时退回到可见文本
		title:   newField("title", attr("title"), text),
		href:    newField("url", attr("href")),
		channel: newField("channel", each(selectors.Channel, first, text)...),
		views:   newField("views", each(selectors.Metadata, first, text)...),
		// 播放量和发布时间通常是相邻的两个 span,发布时间在最后
		publishedAt: newField("published_at", each(selectors.Metadata, last, text)...),
		duration:    newField("duration", each(selectors.Duration, first, text)...),
	}
}

// ExtractRecord title 或 url 缺失时返回 entity.ErrRecordInvalid
func (e *Extractor) ExtractRecord(ctx context.Context, el types.Element) (entity.Video, error) {
	title, href := e.titleLink(ctx, el)
	var link string
	if href != "" {
		var ok bool
		link, ok = e.resolve(href)
		if !ok {
			e.logger.WithField("href", href).Debug("链接无法解析")
		}
	}

	var opts []entity.VideoOption
	if raw, ok := e.views.extract(ctx, el, e.logger); ok {
		if views, ok := ParseAbbreviatedCount(raw); ok {
			opts = append(opts, entity.WithViews(views))
		} else {
			e.logger.WithField("text", raw).Debug("播放量无法解析")
		}
	}
	if channel, ok := e.channel.extract(ctx, el, e.logger); ok {
		opts = append(opts, entity.WithChannel(channel))
	}
	if duration, ok := e.duration.extract(ctx, el, e.logger); ok {
		opts = append(opts, entity.WithDuration(duration))
	}
	if publishedAt, ok := e.publishedAt.extract(ctx, el, e.logger); ok {
		opts = append(opts, entity.WithPublishedAt(publishedAt))
	}
	return entity.NewVideo(title, link, opts...)
}

// titleLink 按优先级找到第一个能读出标题的链接,href 取自同一个元素
func (e *Extractor) titleLink(ctx context.Context, el types.Element) (string, string) {
	for _, selector := range e.titleLinks {
		link, err := locate(ctx, el, selector, first)
		if err != nil {
			e.logger.WithField("selector", selector).WithError(err).Debug("标题链接查询失败")
			continue
		}
		if link == nil {
			continue
		}
		title, ok := e.title.extract(ctx, link, e.logger)
		if !ok {
			continue
		}
		href, _ := e.href.extract(ctx, link, e.logger)
		return title, href
	}
	return "", ""
}

// resolve 站内相对链接补全为绝对链接,其它链接原样返回
func (e *Extractor) resolve(href string) (string, bool) {
	if !strings.HasPrefix(href, "/") {
		return href, true
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return e.origin.ResolveReference(ref).String(), true
}
