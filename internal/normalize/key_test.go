package normalize

import "testing"

func TestKeyStability(t *testing.T) {
	// Pairs differing only by line-break style, internal whitespace, or
	// case must normalize to the identical key.
	cases := []struct {
		aEdits, aNotes string
		bEdits, bNotes string
	}{
		{"No Active\nContracts", "foo", "no active contracts", "FOO"},
		{"edit  text", "note\r\ntext", "EDIT TEXT", "note text"},
		{"  edit ", "note\rline", "edit", "NOTE LINE"},
		{"a\tb", "c   d", "A B", "c d"},
	}
	for _, tc := range cases {
		a := Key(tc.aEdits, tc.aNotes)
		b := Key(tc.bEdits, tc.bNotes)
		if a != b {
			t.Errorf("Key(%q, %q) = %q != Key(%q, %q) = %q",
				tc.aEdits, tc.aNotes, a, tc.bEdits, tc.bNotes, b)
		}
	}
}

func TestKeyPlaceholders(t *testing.T) {
	got := Key("", "")
	want := "--- NO CLAIM EDITS ---|--- NO CLAIM NOTES ---"
	if got != want {
		t.Errorf("Key(\"\", \"\") = %q, want %q", got, want)
	}
}

func TestSanitizeNotesLineBreaks(t *testing.T) {
	cases := []struct{ in, want string }{
		{"line1\nline2", "line1 line2"},
		{"line1\r\nline2", "line1 line2"},
		{"line1\rline2", "line1 line2"},
		{"a  \n\n  b", "a b"},
		{"", NoNotesPlaceholder},
	}
	for _, tc := range cases {
		if got := SanitizeNotes(tc.in); got != tc.want {
			t.Errorf("SanitizeNotes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeEditsPreservesCase(t *testing.T) {
	if got := SanitizeEdits("No  Active Contracts"); got != "No Active Contracts" {
		t.Errorf("SanitizeEdits = %q, want display case preserved", got)
	}
}

func TestKeyFromSanitizedMatchesKey(t *testing.T) {
	edits, notes := "Some Edit", "Some\nNote"
	direct := Key(edits, notes)
	sanitized := KeyFromSanitized(SanitizeEdits(edits), SanitizeNotes(notes))
	if direct != sanitized {
		t.Errorf("key paths diverge: %q vs %q", direct, sanitized)
	}
}
