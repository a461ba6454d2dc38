package history

// Recall walks previously submitted commands, most recent first. cursor is
// -1 when nothing is selected.
type Recall struct {
	entries []string
	cursor  int
}

func NewRecall() *Recall {
	return &Recall{cursor: -1}
}

// Push records a submission and drops any selection.
func (r *Recall) Push(entry string) {
	if entry == "" {
		return
	}
	r.entries = append(r.entries, entry)
	r.cursor = -1
}

// Prev selects the next older entry, stopping at the oldest. ok is false
// when there is no history.
func (r *Recall) Prev() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	if r.cursor == -1 {
		r.cursor = len(r.entries) - 1
	} else if r.cursor > 0 {
		r.cursor--
	}
	return r.entries[r.cursor], true
}

// Next selects the next newer entry. Moving past the newest clears the
// selection and returns "" with ok true so the input can be emptied. With
// nothing selected it does nothing.
func (r *Recall) Next() (string, bool) {
	if r.cursor == -1 {
		return "", false
	}
	r.cursor++
	if r.cursor >= len(r.entries) {
		r.cursor = -1
		return "", true
	}
	return r.entries[r.cursor], true
}
