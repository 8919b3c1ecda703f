package task

// Collection is an ordered sequence of top-level tasks. Operations never
// mutate the receiver; they return new collections sharing task pointers.
type Collection struct {
	tasks []*Task
}

// NewCollection wraps a list of top-level tasks.
func NewCollection(tasks []*Task) Collection {
	return Collection{tasks: tasks}
}

// Tasks returns the top-level tasks in order. Callers must not mutate the
// returned slice.
func (c Collection) Tasks() []*Task {
	return c.tasks
}

// Len returns the number of top-level tasks.
func (c Collection) Len() int {
	return len(c.tasks)
}

// Append concatenates two collections, receiver first.
func (c Collection) Append(other Collection) Collection {
	if len(other.tasks) == 0 {
		return c
	}
	merged := make([]*Task, 0, len(c.tasks)+len(other.tasks))
	merged = append(merged, c.tasks...)
	merged = append(merged, other.tasks...)
	return Collection{tasks: merged}
}

// Concat folds Append over the list, preserving list order.
func Concat(cs []Collection) Collection {
	if len(cs) == 0 {
		return Collection{}
	}
	return cs[0].Append(Concat(cs[1:]))
}

// Filter returns the top-level tasks matching pred. Subtask contents do not
// affect membership.
func (c Collection) Filter(pred func(*Task) bool) Collection {
	var out []*Task
	for _, t := range c.tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return Collection{tasks: out}
}

// Map applies fn to every top-level task. fn decides whether to descend
// into subtasks.
func (c Collection) Map(fn func(*Task) *Task) Collection {
	if len(c.tasks) == 0 {
		return c
	}
	out := make([]*Task, len(c.tasks))
	for i, t := range c.tasks {
		out[i] = fn(t)
	}
	return Collection{tasks: out}
}

// ReplaceForFile removes every task originating from sourcePath and appends
// fresh in their place. Calling it repeatedly for the same source is
// idempotent: no duplicates, no stale records.
func (c Collection) ReplaceForFile(sourcePath string, fresh Collection) Collection {
	kept := c.Filter(func(t *Task) bool { return t.SourcePath != sourcePath })
	return kept.Append(fresh)
}

// FindByID looks up a task by id, searching top-level tasks and their
// subtask subtrees. ok is false when no task has the id.
func (c Collection) FindByID(id string) (*Task, bool) {
	for _, t := range c.tasks {
		if found, ok := findInTree(t, id); ok {
			return found, true
		}
	}
	return nil, false
}

func findInTree(t *Task, id string) (*Task, bool) {
	if t.ID == id {
		return t, true
	}
	for _, sub := range t.Subtasks {
		if found, ok := findInTree(sub, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Flatten returns every task, each top-level record followed by its full
// subtask subtree depth-first. Each record appears exactly once.
func (c Collection) Flatten() []*Task {
	var out []*Task
	for _, t := range c.tasks {
		out = flattenInto(out, t)
	}
	return out
}

func flattenInto(out []*Task, t *Task) []*Task {
	out = append(out, t)
	for _, sub := range t.Subtasks {
		out = flattenInto(out, sub)
	}
	return out
}
