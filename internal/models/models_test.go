package models

import "testing"

func TestStateToggleCycle(t *testing.T) {
	cases := []struct {
		state State
		next  State
	}{
		{StateUntracked, StateDone},
		{StateDone, StateSkipped},
		{StateSkipped, StateUntracked},
	}
	for _, tc := range cases {
		if got := tc.state.Next(); got != tc.next {
			t.Fatalf("%s.Next() = %s, want %s", tc.state, got, tc.next)
		}
	}
}

func TestStateValid(t *testing.T) {
	if !StateDone.Valid() || !StateSkipped.Valid() {
		t.Fatalf("expected done and skipped to be storable")
	}
	if StateUntracked.Valid() {
		t.Fatalf("untracked must never be stored")
	}
	if State("").Valid() || State("complete").Valid() {
		t.Fatalf("unknown states must be rejected")
	}
}

func TestDateMapCloneIsIndependent(t *testing.T) {
	orig := DateMap{"2024-01-01": StateDone}
	clone := orig.Clone()
	clone["2024-01-02"] = StateSkipped

	if _, ok := orig["2024-01-02"]; ok {
		t.Fatalf("mutating the clone leaked into the original")
	}
}

func TestDateMapCloneOfNil(t *testing.T) {
	var m DateMap
	clone := m.Clone()
	if clone == nil {
		t.Fatalf("expected a non-nil clone")
	}
	clone["2024-01-01"] = StateDone
}

func TestCompletionMapCloneIsDeep(t *testing.T) {
	orig := CompletionMap{"a": {"2024-01-01": StateDone}}
	clone := orig.Clone()
	clone["a"]["2024-01-02"] = StateSkipped

	if _, ok := orig["a"]["2024-01-02"]; ok {
		t.Fatalf("expected nested maps to be copied")
	}
}

func TestCloneHabits(t *testing.T) {
	habits := []Habit{{ID: "a", Name: "Read"}}
	clone := CloneHabits(habits)
	clone[0].Name = "Write"

	if habits[0].Name != "Read" {
		t.Fatalf("mutating the clone leaked into the original")
	}
}
