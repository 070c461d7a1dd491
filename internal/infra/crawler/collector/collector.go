package collector

import (
	"github.com/gocolly/colly/v2"
)

type CollyCrawler interface {
	Visit(url string) error
	OnRequest(callback func(r *colly.Request))
	OnHTML(selector string, callback func(e *colly.HTMLElement))
	OnError(callback func(r *colly.Response, err error))
}
