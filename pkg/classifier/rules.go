package classifier

import "caretask/internal/model"

// CategoryRule assigns Category when any keyword is a substring of the
// lower-cased task text.
type CategoryRule struct {
	Category model.Category
	Keywords []string
}

// CategoryRules are evaluated in order and the first match wins.
// "visit" is listed under both appointment and social; appointment is
// checked first and therefore claims it.
var CategoryRules = []CategoryRule{
	{Category: model.CategoryMedication, Keywords: []string{"medication", "pill", "medicine", "doctor"}},
	{Category: model.CategoryAppointment, Keywords: []string{"appointment", "visit", "meeting"}},
	{Category: model.CategorySocial, Keywords: []string{"call", "phone", "visit", "family"}},
	{Category: model.CategoryHousehold, Keywords: []string{"clean", "wash", "cook", "grocery"}},
	{Category: model.CategoryPersonal, Keywords: []string{"exercise", "walk", "shower", "eat"}},
}

// PriorityRule yields Priority when any keyword is a substring of the
// lower-cased task text, or, if TimeKeywords is set, of the lower-cased
// time context.
type PriorityRule struct {
	Name         string
	Priority     model.Priority
	Keywords     []string
	TimeKeywords []string
}

// PriorityRules are evaluated in order and the first match wins, so
// urgency and medication outrank any time signal.
var PriorityRules = []PriorityRule{
	{Name: "urgent", Priority: model.PriorityHigh, Keywords: []string{"urgent", "important", "asap", "immediately", "emergency"}},
	{Name: "medication", Priority: model.PriorityHigh, Keywords: []string{"medication", "pill", "medicine"}},
	{
		Name:         "same-day",
		Priority:     model.PriorityHigh,
		Keywords:     []string{"today", "this morning", "this afternoon", "tonight"},
		TimeKeywords: []string{"today"},
	},
	{Name: "soon", Priority: model.PriorityMedium, Keywords: []string{"tomorrow", "this week", "next week", "soon"}},
}

// ActionKeywords mark a sentence as describing something to do.
var ActionKeywords = []string{
	"need to", "have to", "should", "must", "remember to", "don't forget",
	"call", "visit", "take", "go to", "buy", "pick up",
	"clean", "wash", "cook", "eat", "drink", "exercise", "walk", "shower", "brush",
	"appointment", "meeting", "medication", "pill", "medicine",
}
