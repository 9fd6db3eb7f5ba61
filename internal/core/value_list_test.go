package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueList(t *testing.T) {
	tests := []struct {
		name     string
		policy   MessagePolicy
		wantMsgs []string
	}{
		{
			name:     "keep duplicates",
			policy:   KeepDuplicates,
			wantMsgs: []string{"a", "b", "a", "end"},
		},
		{
			name:     "deduplicate",
			policy:   Deduplicate,
			wantMsgs: []string{"a", "b", "end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewValueList[int](tt.policy)
			l.Add(OfMessage(1, "a"))
			l.Add(Fail[int]("b", "a"))
			l.Add(Of(3))
			l.AddMessage("end")

			if l.Len() != 4 {
				t.Errorf("Len() = %d, want 4", l.Len())
			}
			if diff := cmp.Diff([]int{1, 3}, l.Values()); diff != "" {
				t.Errorf("Values mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantMsgs, l.Messages()); diff != "" {
				t.Errorf("Messages mismatch (-want +got):\n%s", diff)
			}
			if got := len(l.Items()); got != 4 {
				t.Errorf("len(Items()) = %d, want 4", got)
			}
		})
	}
}
