package emotion

import (
	"sort"
	"strings"
)

// Label 表示一条消息的情绪类别。
type Label string

const (
	Joy      Label = "joy"
	Sadness  Label = "sadness"
	Anger    Label = "anger"
	Fear     Label = "fear"
	Surprise Label = "surprise"
	Love     Label = "love"
	Neutral  Label = "neutral"
)

// Labels 按固定顺序列出全部已知标签
var Labels = []Label{Joy, Sadness, Anger, Fear, Surprise, Love, Neutral}

// Known 判断标签是否属于已知集合
func (l Label) Known() bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}

// Normalize 将分类器原始标签转为小写并去除空白，未知标签原样保留。
func Normalize(raw string) Label {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Neutral
	}
	return Label(normalized)
}

// Score 一条分类结果
type Score struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Top 返回得分最高的结果，同分时保留靠前的一项
func Top(scores []Score) (Score, bool) {
	if len(scores) == 0 {
		return Score{}, false
	}
	ranked := append([]Score(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked[0], true
}

// Detection 一轮对话使用的情绪标签与置信度
type Detection struct {
	Label      Label
	Confidence float64
}

// Fallback 分类不可用时使用的结果
var Fallback = Detection{Label: Neutral, Confidence: 0}
