package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"nutrisearch/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--delay", "1ms"}, args...))
	t.Cleanup(func() {
		lookupJSON = false
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"KEY", "salmon", "brown rice", "almonds", "Atlantic Salmon"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		contains []string
	}{
		{
			name:     "found",
			args:     []string{"lookup", "Salmon"},
			contains: []string{"Atlantic Salmon", "Calories"},
		},
		{
			name:     "not found",
			args:     []string{"lookup", "pizza"},
			wantErr:  true,
			contains: []string{`"pizza" not found. Try: Salmon, Brown Rice`},
		},
		{
			name:     "any miss fails",
			args:     []string{"lookup", "banana", "tofu"},
			wantErr:  true,
			contains: []string{"Banana", `"tofu" not found`},
		},
		{
			name:     "blank skipped",
			args:     []string{"lookup", "  ", "oatmeal"},
			contains: []string{"skipping blank query", "Oatmeal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				if !errors.Is(err, errLookupFailed) {
					t.Errorf("err = %v, want errLookupFailed", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestLookupJSON(t *testing.T) {
	out, err := execute(t, "lookup", "--json", "SPINACH")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	var st models.QueryState
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("decode %s: %v", out, err)
	}
	if st.Phase != models.PhaseFound || st.Input != "SPINACH" || st.Result == nil {
		t.Errorf("unexpected state: %+v", st)
	}
}
