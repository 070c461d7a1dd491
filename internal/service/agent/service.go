package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/LouYuanbo1/ytcrawler/internal/infra/llm"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"
)

const defaultSystemPrompt = "你是一个视频信息助手。需要视频列表时调用工具 " + ScrapeToolName +
	" 获取数据,不要编造视频信息。"

type AgentService interface {
	Invoke(ctx context.Context, query string) (string, error)
}

type agentService struct {
	graph  compose.Runnable[map[string]any, *schema.Message]
	opts   param.Agent
	logger logrus.FieldLogger
}

func InitAgentService(
	ctx context.Context,
	llm llm.LLM,
	tools []tool.InvokableTool,
	param *param.Agent,
	logger logrus.FieldLogger,
) (AgentService, error) {
	graph, err := initAgentGraph(ctx, llm, tools, param)
	if err != nil {
		return nil, fmt.Errorf("创建流程图失败: %w", err)
	}
	return &agentService{graph: graph, opts: *param, logger: logger}, nil
}

// initAgentGraph prompt -> llm -> 有工具调用时执行工具,否则直接返回模型回复
func initAgentGraph(
	ctx context.Context,
	llm llm.LLM,
	tools []tool.InvokableTool,
	param *param.Agent,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	baseTools := make([]tool.BaseTool, 0, len(tools))
	toolInfos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("获取工具信息失败: %w", err)
		}
		baseTools = append(baseTools, t)
		toolInfos = append(toolInfos, info)
	}

	chatModel, err := llm.Model().WithTools(toolInfos)
	if err != nil {
		return nil, fmt.Errorf("绑定工具失败: %w", err)
	}
	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{Tools: baseTools})
	if err != nil {
		return nil, fmt.Errorf("创建工具节点失败: %w", err)
	}

	systemPrompt := param.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}
	template := prompt.FromMessages(schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{query}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, err
	}
	if err := graph.AddChatModelNode("llm", chatModel); err != nil {
		return nil, err
	}
	if err := graph.AddToolsNode("tools", toolsNode); err != nil {
		return nil, err
	}
	if err := graph.AddLambdaNode("toolResult", compose.InvokableLambda(joinToolResults)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("prompt", "llm"); err != nil {
		return nil, err
	}
	err = graph.AddBranch("llm", compose.NewGraphBranch(routeToolCalls, map[string]bool{
		"tools":     true,
		compose.END: true,
	}))
	if err != nil {
		return nil, err
	}
	if err := graph.AddEdge("tools", "toolResult"); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("toolResult", compose.END); err != nil {
		return nil, err
	}
	return graph.Compile(ctx)
}

func routeToolCalls(_ context.Context, msg *schema.Message) (string, error) {
	if len(msg.ToolCalls) > 0 {
		return "tools", nil
	}
	return compose.END, nil
}

// joinToolResults 多个工具调用的结果按顺序拼接为一条消息
func joinToolResults(_ context.Context, msgs []*schema.Message) (*schema.Message, error) {
	contents := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		contents = append(contents, msg.Content)
	}
	return schema.ToolMessage(strings.Join(contents, "\n"), ""), nil
}

func (as *agentService) Invoke(ctx context.Context, query string) (string, error) {
	if as.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, as.opts.Timeout)
		defer cancel()
	}
	result, err := as.graph.Invoke(ctx, map[string]any{"query": query})
	if err != nil {
		as.logger.WithError(err).Error("执行流程图失败")
		return "", err
	}
	return result.Content, nil
}
