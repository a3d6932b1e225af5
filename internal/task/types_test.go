package task

import (
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestDueKey(t *testing.T) {
	tests := []struct {
		name     string
		due      *string
		wantRank int
		wantTie  string
	}{
		{name: "24-hour", due: strPtr("14:30"), wantRank: 870, wantTie: "14:30"},
		{name: "24-hour single digit hour", due: strPtr("9:00"), wantRank: 540, wantTie: "9:00"},
		{name: "12-hour with minutes", due: strPtr("2:30PM"), wantRank: 870, wantTie: "2:30PM"},
		{name: "12-hour lowercase", due: strPtr("2:30pm"), wantRank: 870, wantTie: "2:30pm"},
		{name: "bare 12-hour", due: strPtr("2PM"), wantRank: 840, wantTie: "2PM"},
		{name: "bare 12-hour lowercase", due: strPtr("9am"), wantRank: 540, wantTie: "9am"},
		{name: "midnight", due: strPtr("12AM"), wantRank: 0, wantTie: "12AM"},
		{name: "noon", due: strPtr("12PM"), wantRank: 720, wantTie: "12PM"},
		{name: "surrounding whitespace", due: strPtr("  14:30  "), wantRank: 870, wantTie: "14:30"},
		{name: "unparseable", due: strPtr("whenever"), wantRank: rankUnparseable, wantTie: "whenever"},
		{name: "out of range minute", due: strPtr("14:75"), wantRank: rankUnparseable, wantTie: "14:75"},
		{name: "empty string", due: strPtr(""), wantRank: rankNone, wantTie: ""},
		{name: "nil", due: nil, wantRank: rankNone, wantTie: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, tie := dueKey(tt.due)
			if rank != tt.wantRank {
				t.Errorf("dueKey() rank = %d, want %d", rank, tt.wantRank)
			}
			if tie != tt.wantTie {
				t.Errorf("dueKey() tiebreak = %q, want %q", tie, tt.wantTie)
			}
		})
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{name: "empty list", tasks: nil, want: 1},
		{name: "sequential ids", tasks: []Task{{ID: 1}, {ID: 2}, {ID: 3}}, want: 4},
		{name: "max not last", tasks: []Task{{ID: 5}, {ID: 2}}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.tasks); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "open with due",
			task: Task{ID: 1, Text: "Buy milk", Due: strPtr("14:30")},
			want: "[ ] #1 Buy milk (due 14:30)",
		},
		{
			name: "done with due",
			task: Task{ID: 2, Text: "Ship release", Due: strPtr("2PM"), Done: true},
			want: "[x] #2 Ship release (due 2PM)",
		},
		{
			name: "no due",
			task: Task{ID: 3, Text: "Walk the dog"},
			want: "[ ] #3 Walk the dog",
		},
		{
			name: "empty due hides suffix",
			task: Task{ID: 4, Text: "Stretch", Due: strPtr("")},
			want: "[ ] #4 Stretch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortedForDisplay(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "done early", Due: strPtr("9:00"), Done: true},
		{ID: 2, Text: "no due"},
		{ID: 3, Text: "afternoon", Due: strPtr("2PM")},
		{ID: 4, Text: "someday", Due: strPtr("whenever")},
		{ID: 5, Text: "morning", Due: strPtr("9:00")},
	}

	sorted := SortedForDisplay(tasks)

	wantOrder := []int{5, 3, 4, 2, 1}
	if len(sorted) != len(wantOrder) {
		t.Fatalf("SortedForDisplay() returned %d tasks, want %d", len(sorted), len(wantOrder))
	}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Errorf("position %d: got #%d, want #%d", i, sorted[i].ID, want)
		}
	}

	// Input order must be untouched.
	if tasks[0].ID != 1 || tasks[4].ID != 5 {
		t.Error("SortedForDisplay() mutated its input")
	}
}

func TestSortedForDisplayStable(t *testing.T) {
	tasks := []Task{
		{ID: 7, Text: "second added", Due: strPtr("14:30")},
		{ID: 3, Text: "first added", Due: strPtr("14:30")},
	}

	sorted := SortedForDisplay(tasks)
	if sorted[0].ID != 7 || sorted[1].ID != 3 {
		t.Errorf("equal tasks reordered: got [#%d #%d], want [#7 #3]", sorted[0].ID, sorted[1].ID)
	}
}

func TestSortedForDisplayTiebreak(t *testing.T) {
	// Equal ranks fall back to the due string itself.
	tasks := []Task{
		{ID: 1, Text: "later in alphabet", Due: strPtr("zzz")},
		{ID: 2, Text: "earlier in alphabet", Due: strPtr("aaa")},
	}

	sorted := SortedForDisplay(tasks)
	if sorted[0].ID != 2 || sorted[1].ID != 1 {
		t.Errorf("tiebreak order = [#%d #%d], want [#2 #1]", sorted[0].ID, sorted[1].ID)
	}
}
