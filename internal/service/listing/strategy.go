package listing

import (
	"context"
	"strings"

	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/types"
	"github.com/sirupsen/logrus"
)

type position int

const (
	first position = iota
	last
)

// locate 返回 nil 表示选择器没有匹配
func locate(ctx context.Context, el types.Element, selector string, pos position) (types.Element, error) {
	found, err := el.QueryAll(ctx, selector)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	if pos == last {
		return found[len(found)-1], nil
	}
	return found[0], nil
}

// strategy 从元素中读取一个字段的原始值
type strategy func(ctx context.Context, el types.Element) (string, error)

func attr(name string) strategy {
	return func(ctx context.Context, el types.Element) (string, error) {
		value, _, err := el.Attribute(ctx, name)
		return value, err
	}
}

func text(ctx context.Context, el types.Element) (string, error) {
	return el.Text(ctx)
}

// at 在选择器匹配到的子元素上执行 s
func at(selector string, pos position, s strategy) strategy {
	return func(ctx context.Context, el types.Element) (string, error) {
		target, err := locate(ctx, el, selector, pos)
		if target == nil {
			return "", err
		}
		return s(ctx, target)
	}
}

// each 每个选择器一个策略,顺序即优先级
func each(selectors []string, pos position, s strategy) []strategy {
	strategies := make([]strategy, 0, len(selectors))
	for _, selector := range selectors {
		strategies = append(strategies, at(selector, pos, s))
	}
	return strategies
}

// field 一个字段的策略列表,依次尝试直到拿到非空值
type field struct {
	name       string
	strategies []strategy
}

func newField(name string, strategies ...strategy) field {
	return field{name: name, strategies: strategies}
}

func (f field) extract(ctx context.Context, el types.Element, logger logrus.FieldLogger) (string, bool) {
	for i, s := range f.strategies {
		value, err := s(ctx, el)
		if err != nil {
			logger.WithFields(logrus.Fields{"field": f.name, "strategy": i}).WithError(err).Debug("字段读取失败")
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			return value, true
		}
	}
	return "", false
}
