package shortcut

// Rule is one fixed reply category.
type Rule int

const (
	RuleNone Rule = iota
	RuleDeveloperInfo
	RuleNameInfo
)

// Tag is the provenance stored with the reply.
func (r Rule) Tag() string {
	switch r {
	case RuleDeveloperInfo:
		return "developer_info"
	case RuleNameInfo:
		return "name_info"
	default:
		return ""
	}
}

func (r Rule) String() string {
	if t := r.Tag(); t != "" {
		return t
	}
	return "none"
}

// ruleSpec binds a rule to its keywords and reply template. Order in rules
// is match priority: owner identity before assistant identity.
type ruleSpec struct {
	rule     Rule
	keywords []string
	template string
}

var rules = []ruleSpec{
	{
		rule: RuleDeveloperInfo,
		keywords: []string{
			"من طورك", "من صنعك", "من برمجك", "من مطورك", "من هو مطورك", "مين طورك", "مين عملك",
			"من أنشأك", "من انشأك", "المطور", "مطورك", "صانعك",
			"developer", "who made you", "who created you", "who built you", "who developed you", "your creator",
		},
		template: developerTemplate,
	},
	{
		rule: RuleNameInfo,
		keywords: []string{
			"ما اسمك", "ما هو اسمك", "شو اسمك", "ايش اسمك", "إيش اسمك", "من أنت", "من انت", "عرف بنفسك", "عرفني بنفسك",
			"what is your name", "what's your name", "whats your name", "who are you", "your name",
		},
		template: nameTemplate,
	},
}
