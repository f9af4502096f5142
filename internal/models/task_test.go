package models

import (
	"testing"
	"time"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{name: "todo", input: "todo", want: StatusTodo},
		{name: "doing", input: "doing", want: StatusDoing},
		{name: "done", input: "done", want: StatusDone},
		{name: "on hold", input: "on hold", want: StatusOnHold},
		{name: "unknown value", input: "bogus", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "wrong case", input: "TODO", wantErr: true},
		{name: "hyphenated on-hold", input: "on-hold", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTaskStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTaskStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHumanizedTime(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{name: "seconds ago", age: 30 * time.Second, want: "Just now"},
		{name: "one minute", age: 90 * time.Second, want: "1 minute ago"},
		{name: "several minutes", age: 45 * time.Minute, want: "45 minutes ago"},
		{name: "one hour", age: 90 * time.Minute, want: "1 hour ago"},
		{name: "several hours", age: 7 * time.Hour, want: "7 hours ago"},
		{name: "yesterday", age: 30 * time.Hour, want: "Yesterday"},
		{name: "days ago", age: 3 * 24 * time.Hour, want: "3 days ago"},
		{name: "one week", age: 8 * 24 * time.Hour, want: "1 week ago"},
		{name: "several weeks", age: 20 * 24 * time.Hour, want: "2 weeks ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{CreatedAt: now.Add(-tt.age)}
			if got := task.HumanizedTime(now); got != tt.want {
				t.Errorf("HumanizedTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHumanizedTime_OldTaskUsesDate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	task := Task{CreatedAt: time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)}

	if got := task.HumanizedTime(now); got != "Mar 02, 2025" {
		t.Errorf("HumanizedTime() = %q, want %q", got, "Mar 02, 2025")
	}
}
