package topic

// Category 关键词触发的话题类别
type Category string

const (
	Greeting      Category = "greeting"
	Farewell      Category = "farewell"
	Gratitude     Category = "gratitude"
	SelfCare      Category = "self_care"
	Relationships Category = "relationships"
	WorkStress    Category = "work_stress"
	Anxiety       Category = "anxiety"
	Depression    Category = "depression"
)

// Context 话题类别及其关键词与预设回复
type Context struct {
	Category  Category
	Keywords  []string
	Responses []string
}

// DefaultContexts 返回内置话题。顺序有意义，先匹配的类别优先。
func DefaultContexts() []Context {
	return []Context{
		{
			Category: Greeting,
			Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
			Responses: []string{
				"Hello! I'm here to support you on your mental health journey. How are you feeling today?",
				"Hi there! I'm glad you reached out. What's on your mind?",
				"Hello! I'm here to listen and support you. How can I help you today?",
				"Hey! Thanks for connecting with me. What would you like to talk about?",
			},
		},
		{
			Category: Farewell,
			Keywords: []string{"bye", "goodbye", "see you", "talk to you later", "good night"},
			Responses: []string{
				"Take care! Remember, I'm here whenever you need someone to talk to. You're not alone.",
				"Goodbye! I hope our conversation helped. Don't hesitate to reach out again.",
				"See you later! Keep taking care of yourself. You're doing great.",
				"Take care of yourself! I'm always here to support you.",
			},
		},
		{
			Category: Gratitude,
			Keywords: []string{"thank you", "thanks", "appreciate", "grateful"},
			Responses: []string{
				"You're very welcome! I'm here to support you, and I'm glad I could help.",
				"It's my pleasure! Supporting you is what I'm here for. How else can I help?",
				"You're welcome! I'm grateful that you trust me enough to share with me.",
				"Anytime! I'm here for you. Is there anything else you'd like to discuss?",
			},
		},
		{
			Category: SelfCare,
			Keywords: []string{"tired", "exhausted", "stressed", "overwhelmed", "burnout"},
			Responses: []string{
				"It sounds like you're going through a lot right now. Have you considered taking some time for self-care? Even small things like taking a walk or deep breathing can help.",
				"I can hear how overwhelmed you're feeling. What would help you feel a bit better right now? Sometimes just talking about it can be a form of self-care.",
				"You're dealing with a lot, and that's completely valid. What's one small thing you could do today to take care of yourself?",
				"It's okay to feel this way. Self-care isn't selfish - it's necessary. What activities usually help you feel more grounded?",
			},
		},
		{
			Category: Relationships,
			Keywords: []string{"friend", "family", "partner", "relationship", "love", "breakup"},
			Responses: []string{
				"Relationships can be really complex and emotional. Would you like to tell me more about what's happening?",
				"It sounds like this relationship situation is really affecting you. How are you feeling about it?",
				"Relationships can bring up so many different emotions. What's the most challenging part for you right now?",
				"I can hear how important this relationship is to you. What would you like to explore about it?",
			},
		},
		{
			Category: WorkStress,
			Keywords: []string{"work", "job", "career", "boss", "colleague", "deadline", "meeting"},
			Responses: []string{
				"Work stress can be really challenging. What's been the most difficult part of your work situation?",
				"I can hear how work is affecting you. What would help you feel more supported in your work environment?",
				"Work stress can really impact our mental health. What's one thing that would make your work situation better?",
				"It sounds like work is taking a toll on you. How are you coping with the stress?",
			},
		},
		{
			Category: Anxiety,
			Keywords: []string{"anxious", "worry", "panic", "nervous", "scared", "afraid"},
			Responses: []string{
				"Anxiety can be really overwhelming. What's making you feel most anxious right now?",
				"I can hear how anxious you're feeling. Have you tried any techniques that help you feel more grounded?",
				"Anxiety affects so many people, and it's completely valid to feel this way. What would help you feel a bit calmer?",
				"It sounds like your anxiety is really intense right now. What's one thing that usually helps you feel more at ease?",
			},
		},
		{
			Category: Depression,
			Keywords: []string{"sad", "depressed", "hopeless", "worthless", "empty", "numb"},
			Responses: []string{
				"I can hear how much you're struggling right now. Your feelings are valid, and you don't have to go through this alone. What's been the hardest part?",
				"Depression can make everything feel so heavy. I'm here to listen and support you. What would help you feel even a little bit better?",
				"I can sense how difficult this is for you. Remember that it's okay to not be okay. What's one small thing that might help today?",
				"You're dealing with so much, and I want you to know that your feelings matter. What would you like to talk about?",
			},
		},
	}
}
