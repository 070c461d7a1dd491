package listing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	viewsWordRe      = regexp.MustCompile(`(?i)\s*views\s*`)
	thousandsSepRe   = regexp.MustCompile(`(\d),(\d)`)
	abbreviatedRe    = regexp.MustCompile(`(?i)(\d+)(?:\.(\d+))?([kmb])?`)
	countMultipliers = map[string]int64{
		"":  1,
		"k": 1_000,
		"m": 1_000_000,
		"b": 1_000_000_000,
	}
)

// 小数部分最多保留的位数,保证 frac*multiplier 不会溢出 int64
const maxFracDigits = 9

// ParseAbbreviatedCount 把 "1.2M views" 这类缩写数字转换为整数(向零截断)
// 无法解析时返回 false,调用方必须区分 "0" 和 "未知"
func ParseAbbreviatedCount(text string) (int64, bool) {
	text = strings.TrimSpace(viewsWordRe.ReplaceAllString(text, " "))
	if text == "" {
		return 0, false
	}
	// "1,234" 中的千分位逗号,替换两次以处理相邻分组
	text = thousandsSepRe.ReplaceAllString(text, "$1$2")
	text = thousandsSepRe.ReplaceAllString(text, "$1$2")

	m := abbreviatedRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	multiplier := countMultipliers[strings.ToLower(m[3])]
	if whole > math.MaxInt64/multiplier {
		return 0, false
	}
	result := whole * multiplier

	frac := m[2]
	if len(frac) > maxFracDigits {
		frac = frac[:maxFracDigits]
	}
	if frac != "" && multiplier > 1 {
		fracValue, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, false
		}
		scale := int64(math.Pow10(len(frac)))
		part := fracValue * multiplier / scale
		if result > math.MaxInt64-part {
			return 0, false
		}
		result += part
	}
	return result, true
}
