package core

import (
	"strings"
	"testing"
)

func TestValidateReportsAllViolations(t *testing.T) {
	v := Validate(Process{ID: "  ", ArrivalTime: -1, BurstTime: 0, Priority: -2})

	if v.Valid {
		t.Fatal("descriptor violating every rule reported as valid")
	}
	if len(v.Errors) != 4 {
		t.Fatalf("got %d errors, want 4: %v", len(v.Errors), v.Errors)
	}
	for _, want := range []string{"id", "arrival", "burst", "priority"} {
		found := false
		for _, msg := range v.Errors {
			if strings.Contains(msg, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no error message mentions %q: %v", want, v.Errors)
		}
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name    string
		process Process
		valid   bool
	}{
		{"ok", Process{ID: "P1", ArrivalTime: 0, BurstTime: 1, Priority: 0}, true},
		{"empty id", Process{ID: "", ArrivalTime: 0, BurstTime: 1}, false},
		{"whitespace id", Process{ID: " \t", ArrivalTime: 0, BurstTime: 1}, false},
		{"negative arrival", Process{ID: "P1", ArrivalTime: -3, BurstTime: 1}, false},
		{"zero burst", Process{ID: "P1", BurstTime: 0}, false},
		{"negative priority", Process{ID: "P1", BurstTime: 1, Priority: -1}, false},
	}

	for _, tt := range tests {
		v := Validate(tt.process)
		if v.Valid != tt.valid {
			t.Errorf("%s: Valid = %v, want %v (errors: %v)", tt.name, v.Valid, tt.valid, v.Errors)
		}
		if v.Valid && len(v.Errors) != 0 {
			t.Errorf("%s: valid result carries errors %v", tt.name, v.Errors)
		}
	}
}

func TestExampleProcessesAlwaysValid(t *testing.T) {
	examples := ExampleProcesses()
	if len(examples) != 5 {
		t.Fatalf("got %d example processes, want 5", len(examples))
	}

	ids := make(map[string]bool)
	for i, p := range examples {
		if v := Validate(p); !v.Valid {
			t.Errorf("example %s invalid: %v", p.ID, v.Errors)
		}
		if ids[p.ID] {
			t.Errorf("duplicate example id %s", p.ID)
		}
		ids[p.ID] = true
		if p.InsertionOrder != i {
			t.Errorf("example %s has insertion order %d, want %d", p.ID, p.InsertionOrder, i)
		}
	}
}
