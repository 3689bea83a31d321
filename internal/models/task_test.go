package models

import (
	"strings"
	"testing"
)

func TestTaskValidation_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty name should fail",
			task:    Task{Name: "", Description: "some task"},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "whitespace name should fail",
			task:    Task{Name: "   ", Description: "some task"},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "valid task should pass",
			task:    Task{Name: "buy milk", Description: "2%"},
			wantErr: false,
		},
		{
			name:    "empty description is allowed",
			task:    Task{Name: "buy milk"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestTaskValidation_NameLength(t *testing.T) {
	task := Task{Name: strings.Repeat("a", 256)}
	if err := task.Validate(); err == nil {
		t.Error("expected error for 256-character name")
	}

	task.Name = strings.Repeat("a", 255)
	if err := task.Validate(); err != nil {
		t.Errorf("unexpected error for 255-character name: %v", err)
	}
}
