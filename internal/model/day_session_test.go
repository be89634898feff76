package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDaySessionInputValidate(t *testing.T) {
	bad := SessionStatus("paused")
	ok := StatusStarted

	tests := []struct {
		name    string
		in      DaySessionInput
		wantErr bool
	}{
		{"valid minimal", DaySessionInput{Date: "2025-09-12", StartTime: "2025-09-12T09:00:00"}, false},
		{"valid with status", DaySessionInput{Date: "2025-09-12", StartTime: "t", Status: &ok}, false},
		{"missing start_time", DaySessionInput{Date: "2025-09-12"}, true},
		{"missing date", DaySessionInput{StartTime: "t"}, true},
		{"unknown status", DaySessionInput{Date: "2025-09-12", StartTime: "t", Status: &bad}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSession) {
				t.Errorf("error %v does not wrap ErrInvalidSession", err)
			}
		})
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := DaySessionInput{Date: "2025-09-12", StartTime: "t"}.NewSession()
	if s.Status != StatusReady {
		t.Errorf("status = %q, want ready", s.Status)
	}
	if s.IsRest || s.IsNewAction {
		t.Error("flags should default to false")
	}
	if s.EndTime != nil || s.Action != nil || s.SetNumber != nil {
		t.Error("optional fields should default to nil")
	}
}

func TestDaySessionPatchApply(t *testing.T) {
	end := "2025-09-12T10:00:00"
	action := "reading"
	set := 2
	base := DaySession{
		StartTime: "2025-09-12T09:00:00",
		EndTime:   &end,
		Action:    &action,
		Status:    StatusStarted,
		SetNumber: &set,
	}

	var patch DaySessionPatch
	body := `{"status":"finished","action":null,"set_number":3,"is_rest":null}`
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := patch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	at := time.Date(2025, 9, 12, 11, 0, 0, 0, time.UTC)
	s := base
	s.Apply(patch, at)

	if s.Status != StatusFinished {
		t.Errorf("status = %q, want finished", s.Status)
	}
	if s.Action != nil {
		t.Errorf("action = %v, want cleared", *s.Action)
	}
	if s.EndTime == nil || *s.EndTime != end {
		t.Error("end_time should be untouched when absent")
	}
	if s.SetNumber == nil || *s.SetNumber != 3 {
		t.Errorf("set_number = %v, want 3", s.SetNumber)
	}
	if s.IsRest {
		t.Error("null is_rest should be ignored")
	}
	if s.StartTime != base.StartTime {
		t.Error("start_time should be untouched")
	}
	if !s.UpdatedAt.Equal(at) {
		t.Errorf("updated_at = %v, want %v", s.UpdatedAt, at)
	}
}

func TestDaySessionPatchRejectsUnknownStatus(t *testing.T) {
	var patch DaySessionPatch
	if err := json.Unmarshal([]byte(`{"status":"sleeping"}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := patch.Validate(); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Validate() = %v, want ErrInvalidSession", err)
	}
}

func TestSessionStatusValid(t *testing.T) {
	for _, s := range sessionStatuses {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if SessionStatus("").Valid() {
		t.Error("empty status should be invalid")
	}
}
