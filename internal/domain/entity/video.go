package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRecordInvalid 必填字段(title/url)缺失,整条记录被丢弃
	ErrRecordInvalid = errors.New("invalid video record")
	ErrMissingTitle  = fmt.Errorf("%w: missing title", ErrRecordInvalid)
	ErrMissingURL    = fmt.Errorf("%w: missing url", ErrRecordInvalid)
)

// Video 视频列表中的一条记录
// Title 和 URL 必填,其余字段为 nil 表示页面上没有取到(与零值区分)
type Video struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Views       *int64  `json:"views,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
}

type VideoOption func(v *Video)

func WithViews(views int64) VideoOption {
	return func(v *Video) {
		v.Views = &views
	}
}

func WithDuration(duration string) VideoOption {
	return func(v *Video) {
		v.Duration = optionalString(duration)
	}
}

func WithChannel(channel string) VideoOption {
	return func(v *Video) {
		v.Channel = optionalString(channel)
	}
}

func WithPublishedAt(publishedAt string) VideoOption {
	return func(v *Video) {
		v.PublishedAt = optionalString(publishedAt)
	}
}

// NewVideo 构造记录,title 或 url 去空白后为空时返回 ErrRecordInvalid
func NewVideo(title, url string, opts ...VideoOption) (Video, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" {
		return Video{}, ErrMissingTitle
	}
	if url == "" {
		return Video{}, ErrMissingURL
	}
	v := Video{Title: title, URL: url}
	for _, opt := range opts {
		opt(&v)
	}
	return v, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
