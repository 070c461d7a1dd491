package param

import (
	"time"

	"github.com/cloudwego/eino-ext/components/tool/duckduckgo/v2"
)

type SearchConfig struct {
	MaxResults int
	Region     duckduckgo.Region
	Timeout    time.Duration
}

type Agent struct {
	// SystemPrompt 为空时使用默认提示词
	SystemPrompt string
	// Timeout 单次对话超时,0 表示不限制
	Timeout time.Duration
	// WebSearch 为 true 时额外注册网页搜索工具
	WebSearch        bool
	DuckDuckGoSearch SearchConfig
}
