package core

// UndoStack keeps full buffer snapshots, newest last. The top of the stack is
// always the buffer as it was right before the most recent mutation.
type UndoStack struct {
	snapshots []*Buffer
	limit     int
}

// NewUndoStack creates an undo stack. A limit <= 0 keeps every snapshot;
// otherwise the oldest snapshots are dropped once the limit is exceeded.
func NewUndoStack(limit int) *UndoStack {
	return &UndoStack{limit: limit}
}

// Save pushes a deep copy of buffer.
func (u *UndoStack) Save(buffer *Buffer) {
	u.push(buffer.Clone())
}

// push takes ownership of snapshot.
func (u *UndoStack) push(snapshot *Buffer) {
	u.snapshots = append(u.snapshots, snapshot)

	if u.limit > 0 && len(u.snapshots) > u.limit {
		u.snapshots = u.snapshots[len(u.snapshots)-u.limit:]
	}
}

// Undo pops the most recent snapshot. It returns false when there is nothing
// to undo.
func (u *UndoStack) Undo() (*Buffer, bool) {
	if len(u.snapshots) == 0 {
		return nil, false
	}

	i := len(u.snapshots) - 1
	prev := u.snapshots[i]
	u.snapshots[i] = nil
	u.snapshots = u.snapshots[:i]

	return prev, true
}

func (u *UndoStack) Len() int { return len(u.snapshots) }
