package profile

import "strings"

// QA is a single answered follow-up question.
type QA struct {
	Question string `mapstructure:"question" json:"question" yaml:"question"`
	Answer   string `mapstructure:"answer" json:"answer" yaml:"answer"`
}

// Answers maps question text to a free text answer, keeping question order.
type Answers struct {
	questions []string
	values    map[string]string
}

// Set stores the answer. Re-answering a question keeps its original position.
func (a *Answers) Set(question, answer string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[question]; !ok {
		a.questions = append(a.questions, question)
	}
	a.values[question] = answer
}

func (a Answers) Get(question string) (string, bool) {
	answer, ok := a.values[question]
	return answer, ok
}

func (a Answers) Len() int {
	return len(a.questions)
}

func (a Answers) Questions() []string {
	questions := make([]string, len(a.questions))
	copy(questions, a.questions)
	return questions
}

// Values returns the answers in question order.
func (a Answers) Values() []string {
	values := make([]string, 0, len(a.questions))
	for _, q := range a.questions {
		values = append(values, a.values[q])
	}
	return values
}

func (a Answers) Items() []QA {
	items := make([]QA, 0, len(a.questions))
	for _, q := range a.questions {
		items = append(items, QA{Question: q, Answer: a.values[q]})
	}
	return items
}

// Text joins all answers with a single space and lowercases the result.
func (a Answers) Text() string {
	return strings.ToLower(strings.Join(a.Values(), " "))
}

// Tokens splits Text on whitespace.
func (a Answers) Tokens() []string {
	return strings.Fields(a.Text())
}

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	var clone Answers
	for _, q := range a.questions {
		clone.Set(q, a.values[q])
	}
	return clone
}
