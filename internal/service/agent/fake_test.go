package agent

import (
	"context"
	"errors"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type fakeCrawler struct {
	videos []entity.Video
	err    error
	reqs   []param.Crawl
}

func (fc *fakeCrawler) Crawl(_ context.Context, req param.Crawl) ([]entity.Video, error) {
	fc.reqs = append(fc.reqs, req)
	if fc.err != nil {
		return nil, fc.err
	}
	return fc.videos, nil
}

// fakeChatModel 固定返回 reply,记录收到的消息和绑定的工具
type fakeChatModel struct {
	reply    *schema.Message
	tools    []*schema.ToolInfo
	received []*schema.Message
}

func (m *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.received = input
	return m.reply, nil
}

func (m *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func (m *fakeChatModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	m.tools = tools
	return m, nil
}

type fakeLLM struct {
	model *fakeChatModel
}

func (l *fakeLLM) Model() model.ToolCallingChatModel {
	return l.model
}

func ptr[T any](v T) *T {
	return &v
}
