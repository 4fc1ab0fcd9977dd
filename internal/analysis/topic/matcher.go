// Package topic 识别关键词触发的话题，并从预设回复中选择一条。
package topic

import (
	"math/rand/v2"
	"strings"
)

// Chooser 返回 [0, n) 内的下标，n 总是大于 0
type Chooser func(n int) int

// RandomChooser 使用 math/rand/v2 均匀随机选择
func RandomChooser(n int) int {
	return rand.IntN(n)
}

// Matcher 按顺序匹配话题关键词，首个命中者胜出
type Matcher struct {
	contexts []Context
	choose   Chooser
}

// NewMatcher 创建 Matcher，choose 为空时使用 RandomChooser
func NewMatcher(contexts []Context, choose Chooser) *Matcher {
	if choose == nil {
		choose = RandomChooser
	}
	return &Matcher{contexts: contexts, choose: choose}
}

// Match 将消息转为小写后按顺序扫描话题，首个以子串形式出现的关键词决定话题
func (m *Matcher) Match(message string) (Category, string, bool) {
	lowered := strings.ToLower(message)
	for _, ctx := range m.contexts {
		for _, keyword := range ctx.Keywords {
			if !strings.Contains(lowered, keyword) {
				continue
			}
			if len(ctx.Responses) == 0 {
				return ctx.Category, "", false
			}
			return ctx.Category, ctx.Responses[m.choose(len(ctx.Responses))], true
		}
	}
	return "", "", false
}
