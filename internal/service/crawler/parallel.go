package crawler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/sirupsen/logrus"
)

// BatchResult 一个请求的结果,Err 不为空时 Videos 为 nil,Error 是 Err 的文本
type BatchResult struct {
	Request param.Crawl    `json:"request"`
	Videos  []entity.Video `json:"videos"`
	Error   string         `json:"error,omitempty"`
	Err     error          `json:"-"`
}

// ParallelService 多个列表页面并发爬取,每个页面仍然只做一次加载
type ParallelService interface {
	CrawlAll(ctx context.Context, reqs []param.Crawl) ([]BatchResult, error)
}

type parallelService struct {
	svc     CrawlerService
	workers int
	logger  logrus.FieldLogger
}

func InitParallelService(svc CrawlerService, workers int, logger logrus.FieldLogger) ParallelService {
	return &parallelService{svc: svc, workers: max(workers, 1), logger: logger}
}

// CrawlAll 结果顺序与 reqs 一致;单个请求失败不影响其他请求,所有失败合并返回
func (ps *parallelService) CrawlAll(ctx context.Context, reqs []param.Crawl) ([]BatchResult, error) {
	results := make([]BatchResult, len(reqs))
	jobCh := make(chan int, len(reqs))
	for i := range reqs {
		jobCh <- i
	}
	close(jobCh)

	wg := sync.WaitGroup{}
	for workerID := range min(ps.workers, len(reqs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobCh {
				videos, err := ps.svc.Crawl(ctx, reqs[i])
				if err != nil {
					ps.logger.WithFields(logrus.Fields{
						"worker": workerID,
						"url":    reqs[i].Url,
					}).WithError(err).Warn("页面爬取失败")
					err = fmt.Errorf("%s: %w", reqs[i].Url, err)
				}
				result := BatchResult{Request: reqs[i], Videos: videos, Err: err}
				if err != nil {
					result.Error = err.Error()
				}
				results[i] = result
			}
		}()
	}
	wg.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}
