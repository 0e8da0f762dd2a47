package task

// Task is an upstream activity record with tipo "tarea". The upstream has
// grown several alternate names for the same concepts over time; the fallback
// logic lives in the methods below, nowhere else.
type Task struct {
	ID          int    `json:"id"`
	Type        string `json:"tipo"`
	Title       string `json:"titulo"`
	AltTitle    string `json:"title"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Details     string `json:"description"`
	Date        string `json:"fecha"`
	DueDateTime string `json:"due_datetime"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Status      string `json:"status"`
	Label       string `json:"etiqueta"`
	AssignedTo  int    `json:"assigned_user_id"`
}

// DisplayTitle resolves the upstream's alternate title fields in their
// historical precedence order.
func (t Task) DisplayTitle() string {
	for _, candidate := range []string{t.Title, t.AltTitle, t.Name, t.Description} {
		if candidate != "" {
			return candidate
		}
	}
	return "Sin título de tarea"
}

// Completed reports whether the task is done under either of the upstream's
// two markers.
func (t Task) Completed() bool {
	return t.Status == "completed" || t.Label == "hecho"
}

type WritePayload struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	DueTime     string `json:"due_time,omitempty"`
	AssignedTo  *int   `json:"assigned_user_id,omitempty"`
}
