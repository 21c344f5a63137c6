package history

// Log is an ordered list of snapshots plus a cursor pointing at the current one.
//
// The zero value is not usable; create a Log with New.
type Log[S any] struct {
	entries []S
	cursor  int
}

// New creates a Log whose only entry is initial.
func New[S any](initial S) *Log[S] {
	return &Log[S]{entries: []S{initial}}
}

// Record truncates the log after the cursor, appends snapshot and moves the cursor to it.
func (l *Log[S]) Record(snapshot S) {
	var zero S
	for i := l.cursor + 1; i < len(l.entries); i++ {
		l.entries[i] = zero
	}

	l.entries = append(l.entries[:l.cursor+1], snapshot)
	l.cursor++
}

// Undo moves the cursor back if possible and returns the entry it points to.
func (l *Log[S]) Undo() S {
	if l.CanUndo() {
		l.cursor--
	}

	return l.entries[l.cursor]
}

// Redo moves the cursor forward if possible and returns the entry it points to.
func (l *Log[S]) Redo() S {
	if l.CanRedo() {
		l.cursor++
	}

	return l.entries[l.cursor]
}

// CanUndo reports whether the cursor is not at the first entry.
func (l *Log[S]) CanUndo() bool {
	return l.cursor > 0
}

// CanRedo reports whether the cursor is not at the last entry.
func (l *Log[S]) CanRedo() bool {
	return l.cursor < len(l.entries)-1
}

// Current returns the entry the cursor points to.
func (l *Log[S]) Current() S {
	return l.entries[l.cursor]
}

// Len returns the number of entries, including the initial one.
func (l *Log[S]) Len() int {
	return len(l.entries)
}

// Cursor returns the position of the current entry.
func (l *Log[S]) Cursor() int {
	return l.cursor
}
