package chat

import (
	"fmt"
	"slices"

	"github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
	"github.com/zhouzirui/samvaad/backend/internal/analysis/topic"
)

// Rule 标识回复由哪条规则产生
type Rule string

const (
	RuleContext          Rule = "context"
	RuleEarlySupport     Rule = "early_support"
	RuleEarlyFollowUp    Rule = "early_follow_up"
	RuleProfessionalHelp Rule = "professional_help"
	RuleProcessAnger     Rule = "process_anger"
	RuleCelebrate        Rule = "celebrate"
	RuleFollowUp         Rule = "follow_up"
)

const (
	earlyConversationTurns = 2
	streakWindow           = 3
	streakLength           = 2
)

var validatedEmotions = []emotion.Label{emotion.Sadness, emotion.Anger, emotion.Fear}

var lowEmotions = []emotion.Label{emotion.Sadness, emotion.Fear}

// Matcher 查找关键词触发的回复
type Matcher interface {
	Match(message string) (topic.Category, string, bool)
}

// Selector 根据消息、识别出的情绪和历史情绪选出一条回复
type Selector struct {
	matcher Matcher
	choose  topic.Chooser
}

// NewSelector 创建 Selector，choose 为空时均匀随机选择
func NewSelector(matcher Matcher, choose topic.Chooser) *Selector {
	if choose == nil {
		choose = topic.RandomChooser
	}
	return &Selector{matcher: matcher, choose: choose}
}

// Select 按优先级选择回复，history 不包含当前轮次
func (s *Selector) Select(message string, label emotion.Label, history []emotion.Label) (string, Rule) {
	if _, reply, ok := s.matcher.Match(message); ok {
		return reply, RuleContext
	}

	if len(history) <= earlyConversationTurns {
		if slices.Contains(validatedEmotions, label) {
			return fmt.Sprintf(validationTemplate, label, s.followUp(label)), RuleEarlySupport
		}
		return s.followUp(label), RuleEarlyFollowUp
	}

	recent := history[max(0, len(history)-streakWindow):]
	if len(recent) >= streakLength {
		last := recent[len(recent)-streakLength:]
		switch {
		case allIn(last, lowEmotions...):
			return ProfessionalHelpMessage, RuleProfessionalHelp
		case allIn(last, emotion.Anger):
			return ProcessAngerMessage, RuleProcessAnger
		case allIn(last, emotion.Joy):
			return CelebrateMessage, RuleCelebrate
		}
	}

	return s.followUp(label), RuleFollowUp
}

func (s *Selector) followUp(label emotion.Label) string {
	questions := FollowUps(label)
	return questions[s.choose(len(questions))]
}

func allIn(labels []emotion.Label, set ...emotion.Label) bool {
	for _, l := range labels {
		if !slices.Contains(set, l) {
			return false
		}
	}
	return true
}
