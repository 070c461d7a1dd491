package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/components/model"
)

type LLM interface {
	Model() model.ToolCallingChatModel
}

type ollamaLLM struct {
	model model.ToolCallingChatModel
}

// InitLLM 连接本地 ollama 服务,模型需要支持工具调用
func InitLLM(ctx context.Context, cfg *config.Config) (LLM, error) {
	chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: fmt.Sprintf("%s:%d", cfg.LLM.Host, cfg.LLM.Port),
		Model:   cfg.LLM.Model,
		Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ollama 模型失败: %w", err)
	}
	return &ollamaLLM{model: chatModel}, nil
}

func (l *ollamaLLM) Model() model.ToolCallingChatModel {
	return l.model
}
