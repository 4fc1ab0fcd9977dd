package emotion

import (
	"context"
	"sort"
	"strings"
)

var keywordBuckets = map[Label][]string{
	Joy: {
		"happy", "glad", "great", "awesome", "amazing", "wonderful", "excited", "yay",
		"delighted", "cheerful", "fantastic", "proud", "good news", "haha", "lol",
	},
	Sadness: {
		"sad", "unhappy", "cry", "crying", "depressed", "lonely", "upset", "hurt",
		"miss", "lost", "heartbroken", "down", "empty", "hopeless", "sorrow",
	},
	Anger: {
		"angry", "furious", "rage", "mad", "annoyed", "pissed", "hate", "outraged",
		"frustrated", "irritated", "sick of", "fed up",
	},
	Fear: {
		"scared", "afraid", "fear", "terrified", "anxious", "nervous", "worried",
		"panic", "frightened", "dread", "unsafe",
	},
	Surprise: {
		"wow", "surprised", "unexpected", "shocked", "can't believe", "no way",
		"suddenly", "out of nowhere", "unbelievable",
	},
	Love: {
		"love", "adore", "caring", "affection", "cherish", "sweetheart", "darling",
		"in love", "romantic",
	},
}

const (
	keywordWeight   = 3
	exclamationLoad = 1
	neutralBaseline = 1
)

// Lexicon 基于关键词打分的分类器，总是为全部标签打分，得分之和为 1。
type Lexicon struct {
	buckets map[Label][]string
}

// NewLexicon 使用内置关键词创建 Lexicon
func NewLexicon() *Lexicon {
	return &Lexicon{buckets: keywordBuckets}
}

// Classify 实现 Classifier
func (l *Lexicon) Classify(_ context.Context, text string) ([]Score, error) {
	raw := l.score(text)

	total := 0
	for _, s := range raw {
		total += s
	}

	scores := make([]Score, 0, len(Labels))
	for _, label := range Labels {
		scores = append(scores, Score{Label: label, Score: float64(raw[label]) / float64(total)})
	}
	return rank(scores), nil
}

func (l *Lexicon) score(text string) map[Label]int {
	normalized := strings.TrimSpace(strings.ToLower(text))
	scores := map[Label]int{Neutral: neutralBaseline}
	if normalized == "" {
		return scores
	}

	for label, keywords := range l.buckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[label] += keywordWeight
			}
		}
	}

	// 感叹号只放大已有的积极或惊讶倾向
	if exclamations := strings.Count(text, "!"); exclamations > 0 {
		for _, label := range []Label{Joy, Surprise} {
			if scores[label] > 0 {
				scores[label] += exclamations * exclamationLoad
			}
		}
	}
	return scores
}

func rank(scores []Score) []Score {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}
