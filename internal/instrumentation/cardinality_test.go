package instrumentation

import "testing"

func TestKnownOperation(t *testing.T) {
	tests := []struct {
		op   string
		want bool
	}{
		{OperationInsert, true},
		{OperationGet, true},
		{OperationPatch, true},
		{OperationDelete, true},
		{OperationList, true},
		{"quickAdd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			if got := KnownOperation(tt.op); got != tt.want {
				t.Errorf("KnownOperation(%q) = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}
