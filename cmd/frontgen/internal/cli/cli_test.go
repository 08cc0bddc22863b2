package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cuba-labs/frontgen/restgen/model"
)

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		context int
		want    []DiffLine
	}{
		{
			name: "equal",
			old:  "a\nb\n",
			new:  "a\nb\n",
		},
		{
			name:    "changed line",
			old:     "a\nb\nc\n",
			new:     "a\nB\nc\n",
			context: 1,
			want: []DiffLine{
				{' ', "a"}, {'-', "b"}, {'+', "B"}, {' ', "c"},
			},
		},
		{
			name:    "added line",
			old:     "a\n",
			new:     "a\nb\n",
			context: 3,
			want:    []DiffLine{{' ', "a"}, {'+', "b"}},
		},
		{
			name:    "distant context collapsed",
			old:     "1\n2\n3\n4\n5\nx\n",
			new:     "1\n2\n3\n4\n5\ny\n",
			context: 1,
			want: []DiffLine{
				{'~', "..."}, {' ', "5"}, {'-', "x"}, {'+', "y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineDiff(tt.old, tt.new, tt.context)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LineDiff() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReporter(t *testing.T) {
	var buf strings.Builder
	r := NewReporter(&buf, false)
	r.Success("wrote %s", "services.ts")
	r.Failure("%d files out of date", 1)
	r.Diff([]DiffLine{{'-', "old"}, {'+', "new"}, {'~', "..."}})

	out := buf.String()
	for _, want := range []string{"wrote services.ts", "1 files out of date", "-old", "+new", " ..."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReporter_Warnings(t *testing.T) {
	warnings := []model.Warning{{Code: model.WarnUnresolvedType, Message: "parameter b of S.m: unknown type x.Y, emitted as any"}}

	var quiet, verbose strings.Builder
	NewReporter(&quiet, false).Warnings(warnings)
	NewReporter(&verbose, true).Warnings(warnings)

	if !strings.Contains(quiet.String(), "! parameter b of S.m") || strings.Contains(quiet.String(), "[unresolved_type]") {
		t.Errorf("quiet output = %q", quiet.String())
	}
	if !strings.Contains(verbose.String(), "[unresolved_type]") {
		t.Errorf("verbose output = %q", verbose.String())
	}
}
