package logger

import (
	"os"
	"strings"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/sirupsen/logrus"
)

// InitLogger 根据配置创建日志器,日志输出到 stderr,stdout 留给爬取结果
func InitLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
