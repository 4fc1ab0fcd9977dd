package chat

import "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"

var followUps = map[emotion.Label][]string{
	emotion.Joy: {
		"What's been the highlight of your day so far?",
		"I love hearing about your happiness! What else is going well for you?",
		"It's wonderful to see you in such a positive space. What's contributing to this joy?",
		"Your positive energy is contagious! What would you like to celebrate?",
	},
	emotion.Sadness: {
		"I can hear how much you're hurting. Would you like to tell me more about what's causing this sadness?",
		"It's okay to feel this way. What's been the hardest part of what you're going through?",
		"I'm here to listen. What would help you feel even a little bit supported right now?",
		"Your feelings are completely valid. What's one thing that might help you feel better?",
	},
	emotion.Anger: {
		"I can feel how frustrated you are. What's been the most challenging part of this situation?",
		"It sounds like you have every right to be angry. What would help you feel heard?",
		"Anger can be really intense. What's underneath this anger for you?",
		"I understand why you're feeling this way. What would help you feel more at peace?",
	},
	emotion.Fear: {
		"Fear can be really overwhelming. What's making you feel most afraid right now?",
		"I can hear how scared you are. What would help you feel safer?",
		"It's natural to feel afraid when things are uncertain. What's one thing that might help you feel more grounded?",
		"I'm here to support you through this fear. What would help you feel more secure?",
	},
	emotion.Surprise: {
		"Wow, that sounds unexpected! How are you feeling about this surprise?",
		"That's quite a surprise! What's your reaction to this news?",
		"I can hear how shocking this is for you. How are you processing this?",
		"That's definitely unexpected! What would help you make sense of this?",
	},
	emotion.Love: {
		"It's beautiful to hear about your feelings of love. What's making you feel this way?",
		"Love is such a powerful emotion. What would you like to share about it?",
		"I can feel the warmth in your words. What's bringing you this feeling of love?",
		"Your love is radiating through your message. What would you like to explore about it?",
	},
	emotion.Neutral: {
		"How are you feeling about everything right now?",
		"What's on your mind today?",
		"I'm here to listen. What would you like to talk about?",
		"How can I support you today?",
	},
}

// FollowUps 返回情绪对应的追问列表，没有时退回 neutral
func FollowUps(label emotion.Label) []string {
	if questions, ok := followUps[label]; ok {
		return questions
	}
	return followUps[emotion.Neutral]
}

const (
	validationTemplate = "I can sense that you're feeling %s, and I want you to know that it's okay to feel this way. Your feelings are valid. %s"

	ProfessionalHelpMessage = "I've noticed you've been feeling down lately. I want you to know that you don't have to go through this alone. Have you considered talking to a mental health professional? They can provide the support you deserve."

	ProcessAngerMessage = "I can see that you've been feeling angry about this situation. Sometimes anger can be a sign that something important to us has been hurt or threatened. What do you think is at the heart of what's making you angry?"

	CelebrateMessage = "It's wonderful to see you in such a positive space! Your joy is contagious. What's been the most meaningful part of this positive experience for you?"
)
