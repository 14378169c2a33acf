// Package intent detects agent-actionable requests in a message and pulls a
// topic out of them. Everything here is keyword heuristics and pure.
package intent

import (
	"strings"
	"unicode/utf8"
)

// Intent is a coarse category of request.
type Intent string

const (
	TrackPrice       Intent = "track_price"
	ScheduleReminder Intent = "schedule_reminder"
	ResearchTopic    Intent = "research_topic"
	AutomateTask     Intent = "automate_task"
)

// intentSpec binds an intent to the keywords that detect it and the
// triggers its topic is read after.
type intentSpec struct {
	intent     Intent
	actionable bool
	keywords   []string
	triggers   []string
}

// specs is in enum order; analysis reports matches in this order.
var specs = []intentSpec{
	{
		intent:     TrackPrice,
		actionable: true,
		keywords:   []string{"تابع سعر", "تتبع سعر", "راقب سعر", "نبهني بسعر", "track price", "track the price", "monitor the price", "price alert"},
		triggers:   []string{"تابع سعر", "تتبع سعر", "راقب سعر", "نبهني بسعر", "track the price of", "track price of", "track the price", "track price", "monitor the price of", "price alert for"},
	},
	{
		intent:     ScheduleReminder,
		actionable: true,
		keywords:   []string{"ذكرني", "ذكّرني", "تذكير", "remind me", "set a reminder"},
		triggers:   []string{"ذكرني ب", "ذكرني", "ذكّرني ب", "ذكّرني", "تذكير ب", "تذكير", "remind me to", "remind me about", "remind me", "set a reminder for", "set a reminder to"},
	},
	{
		intent:     ResearchTopic,
		actionable: true,
		keywords:   []string{"ابحث عن", "ابحث في", "بحث عن", "ابحث لي عن", "research", "look up", "find information about"},
		triggers:   []string{"ابحث لي عن", "ابحث عن", "ابحث في", "بحث عن", "research about", "research on", "research", "look up", "find information about"},
	},
	{
		intent:   AutomateTask,
		keywords: []string{"أتمتة", "اتمتة", "أتمت", "automate", "automation"},
		triggers: []string{"أتمتة", "اتمتة", "automate"},
	},
}

// imperatives mark a message as an instruction, independent of intents.
var imperatives = []string{"قم ب", "نفذ", "افعل", "اعمل", "أنشئ", "انشئ", "اكتب لي", "please do", "execute", "run ", "create "}

// minTopicRunes: a topic must be longer than this.
const minTopicRunes = 2

// Analysis is the result of Analyze.
type Analysis struct {
	Intents       []Intent
	NeedsAgent    bool
	IsInstruction bool
}

// Has reports whether i was detected.
func (a Analysis) Has(i Intent) bool {
	for _, got := range a.Intents {
		if got == i {
			return true
		}
	}
	return false
}

// Analyze reports every intent whose keywords occur in the lowercased message.
func Analyze(message string) Analysis {
	text := strings.ToLower(message)

	var a Analysis
	for _, s := range specs {
		if containsAny(text, s.keywords) {
			a.Intents = append(a.Intents, s.intent)
		}
	}
	a.NeedsAgent = len(a.Intents) > 0
	a.IsInstruction = containsAny(text, imperatives)
	return a
}

// Actionable reports whether the intent leads to task creation.
func (i Intent) Actionable() bool {
	if s, ok := lookup(i); ok {
		return s.actionable
	}
	return false
}

// Triggers returns the phrases a topic for i is read after.
func (i Intent) Triggers() []string {
	if s, ok := lookup(i); ok {
		out := make([]string, len(s.triggers))
		copy(out, s.triggers)
		return out
	}
	return nil
}

// FirstActionable returns the first detected intent that creates a task.
func (a Analysis) FirstActionable() (Intent, bool) {
	for _, i := range a.Intents {
		if i.Actionable() {
			return i, true
		}
	}
	return "", false
}

// ExtractTopic returns the trimmed text after the first occurrence of the
// first trigger that is followed by more than two characters, or "".
// The result is a best-effort guess; callers treat "" as no topic.
func ExtractTopic(message string, triggers []string) string {
	lower := strings.ToLower(message)
	// Slice the original when lowercasing kept byte offsets, to keep the user's casing.
	source := lower
	if len(lower) == len(message) {
		source = message
	}

	for _, t := range triggers {
		t = strings.ToLower(t)
		if t == "" {
			continue
		}
		idx := strings.Index(lower, t)
		if idx < 0 {
			continue
		}
		topic := strings.TrimSpace(source[idx+len(t):])
		if utf8.RuneCountInString(topic) > minTopicRunes {
			return topic
		}
	}
	return ""
}

func lookup(i Intent) (intentSpec, bool) {
	for _, s := range specs {
		if s.intent == i {
			return s, true
		}
	}
	return intentSpec{}, false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
