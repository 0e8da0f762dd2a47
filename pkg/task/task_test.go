package task

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inventra/inventra/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_DisplayTitlePrecedence(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{"titulo wins", Task{Title: "a", AltTitle: "b", Name: "c", Description: "d"}, "a"},
		{"title next", Task{AltTitle: "b", Name: "c", Description: "d"}, "b"},
		{"nombre next", Task{Name: "c", Description: "d"}, "c"},
		{"descripcion last", Task{Description: "d"}, "d"},
		{"nothing set", Task{}, "Sin título de tarea"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.DisplayTitle())
		})
	}
}

func TestTask_Completed(t *testing.T) {
	assert.True(t, Task{Status: "completed"}.Completed())
	assert.True(t, Task{Label: "hecho"}.Completed())
	assert.False(t, Task{Status: "pending"}.Completed())
	assert.False(t, Task{Label: "pendiente"}.Completed())
	assert.False(t, Task{}.Completed())
}

func TestTask_DecodesAlternateFieldNames(t *testing.T) {
	raw := []byte(`{"id": 4, "title": "alt name", "due_date": "2024-05-01", "due_time": "14:00", "etiqueta": "hecho"}`)

	var task Task
	require.NoError(t, json.Unmarshal(raw, &task))

	assert.Equal(t, "alt name", task.DisplayTitle())
	assert.Equal(t, "2024-05-01", task.DueDate)
	assert.Equal(t, "14:00", task.DueTime)
	assert.True(t, task.Completed())
}

type fixedToken struct{}

func (fixedToken) Token() string { return "t" }

func TestService_CompleteUsesPatchOnCompletePath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"id": 9, "status": "completed"})
	}))
	defer srv.Close()
	service := NewService(upstream.NewClient(srv.URL, fixedToken{}, time.Second))

	done, err := service.Complete(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/tareas/9/complete/", gotPath)
	assert.True(t, done.Completed())
}
