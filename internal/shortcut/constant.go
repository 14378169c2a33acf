package shortcut

// Templates take, in order: assistant name, developer name, developer contact.
const (
	developerTemplate = `👨‍💻 **تم تطويري بواسطة %[2]s**

أنا %[1]s، مساعد ذكي عربي طوره %[2]s.
📧 للتواصل مع المطور: %[3]s`

	nameTemplate = `🤖 **اسمي %[1]s**

أنا مساعد ذكي عربي من تطوير %[2]s، أساعدك في الإجابة على الأسئلة وكتابة الأكواد وشرح المفاهيم.`
)
