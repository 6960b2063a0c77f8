package models

import (
	"testing"
	"time"
)

func validTask() Task {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return Task{
		Title:       "Report",
		Description: "Quarterly report",
		CreatedAt:   now,
		DueAt:       now.AddDate(0, 0, 3),
		Status:      StatusTodo,
		Priority:    PriorityNormal,
		UserID:      1,
	}
}

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Task)
		wantOK bool
	}{
		{"valid", func(*Task) {}, true},
		{"empty title", func(tk *Task) { tk.Title = "  " }, false},
		{"empty description", func(tk *Task) { tk.Description = "" }, false},
		{"missing due date", func(tk *Task) { tk.DueAt = time.Time{} }, false},
		{"missing start date", func(tk *Task) { tk.CreatedAt = time.Time{} }, false},
		{"due before start", func(tk *Task) { tk.DueAt = tk.CreatedAt.Add(-time.Hour) }, false},
		{"bad priority", func(tk *Task) { tk.Priority = "urgent" }, false},
		{"bad status", func(tk *Task) { tk.Status = "done" }, false},
		{"due equals start", func(tk *Task) { tk.DueAt = tk.CreatedAt }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(&task)
			ok, reason := task.Validate()
			if ok != tt.wantOK {
				t.Errorf("Validate() = %v (%q), want ok=%v", ok, reason, tt.wantOK)
			}
			if !ok && reason == "" {
				t.Error("invalid task must carry a reason")
			}
		})
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		password string
		wantOK   bool
	}{
		{"valid", User{Name: "Ana", Email: "ana@mail.com"}, "secret1", true},
		{"short name", User{Name: "Al", Email: "al@mail.com"}, "secret1", false},
		{"no at sign", User{Name: "Ana", Email: "ana.mail.com"}, "secret1", false},
		{"short password", User{Name: "Ana", Email: "ana@mail.com"}, "pw", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := tt.user.Validate(tt.password)
			if ok != tt.wantOK {
				t.Errorf("Validate() = %v (%q), want ok=%v", ok, reason, tt.wantOK)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus(" Completed "); err != nil || s != StatusCompleted {
		t.Errorf("ParseStatus = %v, %v", s, err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority("IMPORTANT"); err != nil || p != PriorityImportant {
		t.Errorf("ParsePriority = %v, %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"days and hours", start, start.Add(76 * time.Hour), "3 days and 4 hours"},
		{"single units", start, start.Add(25*time.Hour + time.Minute), "1 day and 1 hour and 1 minute"},
		{"minutes only", start, start.Add(45 * time.Minute), "45 minutes"},
		{"sub minute", start, start.Add(20 * time.Second), "less than a minute"},
		{"missing start", time.Time{}, start, NotCalculated},
		{"missing end", start, time.Time{}, NotCalculated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatDuration = %q, want %q", got, tt.want)
			}
		})
	}
}
