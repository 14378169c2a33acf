package usecase

import (
	"clainai/internal/agenttask"
	"clainai/internal/intent"
)

const defaultConversationPage = 20

// welcomeTemplate args: developer name, developer contact.
const welcomeTemplate = `🎉 **مرحباً بك من جديد!**

المحادثة السابقة تم مسحها بنجاح.

**👨‍💻 المطور:** %[1]s
**📧 البريد:** %[2]s

اسألني أي شيء وسأجيبك بإبداع! 🚀`

// taskTypes maps actionable intents to the task they create.
var taskTypes = map[intent.Intent]agenttask.TaskType{
	intent.TrackPrice:       agenttask.TypePriceTracking,
	intent.ScheduleReminder: agenttask.TypeReminder,
	intent.ResearchTopic:    agenttask.TypeResearch,
}
