package bank

// DefaultTitle is used when a bank file does not name itself.
const DefaultTitle = "Study Quiz"

// Bank is an immutable, ordered catalog of questions. It is built once at
// startup and shared read-only; every accessor hands out copies.
type Bank struct {
	title     string
	questions []Question
}

// New validates questions and returns a bank holding a private copy of them.
func New(title string, questions []Question) (*Bank, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}
	if title == "" {
		title = DefaultTitle
	}
	return &Bank{title: title, questions: qs}, nil
}

// Title returns the display name of the bank.
func (b *Bank) Title() string {
	return b.title
}

// Size returns the number of questions. A nil bank has size 0.
func (b *Bank) Size() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

// All returns every question in file order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// At returns the question at index i. It panics if i is out of range.
func (b *Bank) At(i int) Question {
	return b.questions[i].clone()
}
