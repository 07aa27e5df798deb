package model

import "testing"

func TestFilter_Matches(t *testing.T) {
	open := Task{ID: 1, Text: "open"}
	done := Task{ID: 2, Text: "done", Completed: true}

	tests := []struct {
		filter   Filter
		task     Task
		expected bool
	}{
		{FilterAll, open, true},
		{FilterAll, done, true},
		{FilterActive, open, true},
		{FilterActive, done, false},
		{FilterCompleted, open, false},
		{FilterCompleted, done, true},
		{Filter("bogus"), done, true},
	}

	for _, test := range tests {
		result := test.filter.Matches(test.task)
		if result != test.expected {
			t.Errorf("Filter(%s).Matches(%s) = %v, expected %v", test.filter, test.task.Text, result, test.expected)
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in       string
		expected Filter
		wantErr  bool
	}{
		{"all", FilterAll, false},
		{"Active", FilterActive, false},
		{" COMPLETED ", FilterCompleted, false},
		{"", FilterAll, false},
		{"done", FilterAll, true},
	}

	for _, test := range tests {
		result, err := ParseFilter(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseFilter(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
		}
		if result != test.expected {
			t.Errorf("ParseFilter(%q) = %s, expected %s", test.in, result, test.expected)
		}
	}
}

func TestFilter_Next(t *testing.T) {
	if FilterAll.Next() != FilterActive {
		t.Errorf("Expected all -> active, got %s", FilterAll.Next())
	}
	if FilterActive.Next() != FilterCompleted {
		t.Errorf("Expected active -> completed, got %s", FilterActive.Next())
	}
	if FilterCompleted.Next() != FilterAll {
		t.Errorf("Expected completed -> all, got %s", FilterCompleted.Next())
	}
}

func TestStats_Active(t *testing.T) {
	s := Stats{Total: 5, Completed: 2}
	if s.Active() != 3 {
		t.Errorf("Expected 3 active, got %d", s.Active())
	}
}
