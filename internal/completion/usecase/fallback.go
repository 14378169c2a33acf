package usecase

import (
	"strings"
)

// topic is a category of question that has a canned answer when no provider
// is reachable.
type topic int

const (
	topicNone topic = iota
	topicGreeting
	topicThanks
	topicProgramming
	topicHelp
)

type topicSpec struct {
	topic    topic
	keywords []string
	reply    string
}

// Checked in order; a keyword matches a word it prefixes.
var topics = []topicSpec{
	{
		topic:    topicGreeting,
		keywords: []string{"مرحبا", "السلام", "أهلا", "اهلا", "hello", "hey"},
		reply:    "أهلاً بك! 👋 أواجه ضغطاً مؤقتاً في خدمات الإجابة، لكن يسعدني مساعدتك. أعد إرسال سؤالك بعد لحظات.",
	},
	{
		topic:    topicThanks,
		keywords: []string{"شكرا", "thanks", "thank"},
		reply:    "العفو! 🌟 سعيد بمساعدتك دائماً.",
	},
	{
		topic:    topicProgramming,
		keywords: []string{"برمجة", "كود", "بايثون", "جافا", "code", "python", "golang", "javascript", "program"},
		reply:    "💻 سؤالك البرمجي مهم! خدمات الإجابة غير متاحة للحظات. أرسل الكود أو رسالة الخطأ كاملة وسأجيبك فور عودتها.",
	},
	{
		topic:    topicHelp,
		keywords: []string{"مساعدة", "ساعدني", "help"},
		reply:    "🤝 أنا هنا للمساعدة. يمكنني الإجابة عن الأسئلة وكتابة الأكواد ومتابعة الأسعار وضبط التذكيرات. حاول مرة أخرى بعد لحظات.",
	},
}

type fallback struct {
	generic []string
	pick    func(n int) int
}

func newFallback(generic []string, pick func(n int) int) *fallback {
	replies := make([]string, 0, len(generic))
	for _, g := range generic {
		if g = strings.TrimSpace(g); g != "" {
			replies = append(replies, g)
		}
	}
	return &fallback{generic: replies, pick: pick}
}

func matchTopic(message string) (topicSpec, bool) {
	words := strings.Fields(strings.ToLower(message))
	for _, spec := range topics {
		for _, kw := range spec.keywords {
			for _, w := range words {
				if strings.HasPrefix(w, kw) {
					return spec, true
				}
			}
		}
	}
	return topicSpec{}, false
}

// reply never returns "".
func (f *fallback) reply(message string) string {
	if spec, ok := matchTopic(message); ok {
		return spec.reply
	}
	if len(f.generic) == 0 {
		return topics[len(topics)-1].reply
	}
	return f.generic[f.pick(len(f.generic))]
}
