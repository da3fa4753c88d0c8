package models

// TemplateTask is a task definition without completion state
type TemplateTask struct {
	Title    string  `json:"title"`
	Weight   float64 `json:"weight"`
	Category string  `json:"category,omitempty"`
}

// Template is a reusable set of task definitions used to pre-populate a new
// day's draft. At most one template is marked as the default.
type Template struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Tasks     []TemplateTask `json:"tasks"`
	IsDefault bool           `json:"is_default"`
	DeletedAt *string        `json:"deleted_at,omitempty"` // RFC3339 timestamp
}

// Draft expands the template into a fresh task list with zero completion.
// IDs are left empty for the caller to assign.
func (t Template) Draft() []Task {
	tasks := make([]Task, 0, len(t.Tasks))
	for _, tt := range t.Tasks {
		tasks = append(tasks, Task{
			Title:    tt.Title,
			Weight:   tt.Weight,
			Category: tt.Category,
		})
	}
	return tasks
}
