package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/logger"
	"github.com/LouYuanbo1/ytcrawler/param"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Flags 各个入口共用的命令行参数,也可以通过环境变量或 .env 文件设置
type Flags struct {
	Config string `help:"配置文件路径,为空时使用内置默认配置" env:"YTCRAWLER_CONFIG" type:"path"`
	URL    string `help:"列表页面地址,为空时使用配置中的 default_url" env:"YTCRAWLER_URL"`
	Max    int    `help:"最多返回的视频数" env:"YTCRAWLER_MAX" default:"0"`
}

// LoadDotEnv 在解析命令行参数之前调用,.env 不存在时忽略
func LoadDotEnv() {
	_ = godotenv.Load()
}

func (f *Flags) Load() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig(f.Config)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.InitLogger(cfg), nil
}

func (f *Flags) Request() param.Crawl {
	return param.Crawl{Url: f.URL, MaxItems: f.Max}
}

// WriteVideos 以缩进 JSON 数组输出结果,没有记录时输出 []
func WriteVideos(w io.Writer, videos []entity.Video) error {
	if videos == nil {
		videos = []entity.Video{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(videos); err != nil {
		return fmt.Errorf("输出结果失败: %w", err)
	}
	return nil
}
