package mangle

import "testing"

func has(t *testing.T, set map[string]struct{}, want string) {
	t.Helper()
	if _, ok := set[want]; !ok {
		t.Errorf("variant %q missing from set", want)
	}
}

func lacks(t *testing.T, set map[string]struct{}, word string) {
	t.Helper()
	if _, ok := set[word]; ok {
		t.Errorf("variant %q unexpectedly present", word)
	}
}

func TestSetCaseForms(t *testing.T) {
	set := Set("hunter")
	has(t, set, "hunter")
	has(t, set, "HUNTER")
	has(t, set, "Hunter")
}

func TestSetContainsBaseEvenWhenMixedCase(t *testing.T) {
	set := Set("hUnTeR")
	has(t, set, "hUnTeR")
	has(t, set, "hunter")
	has(t, set, "HUNTER")
	has(t, set, "Hunter")
}

func TestSetLeetSingleSubstitution(t *testing.T) {
	set := Set("password")
	has(t, set, "p@ssword") // first 'a'
	has(t, set, "passw0rd") // the 'o'
	has(t, set, "pa5sword") // first 's'
	has(t, set, "pas5word") // second 's'
	// substitutions never combine
	lacks(t, set, "p@ssw0rd")
	lacks(t, set, "p@55w0rd")
}

func TestSetDigitAffixes(t *testing.T) {
	set := Set("hunter")
	has(t, set, "hunter2")
	has(t, set, "2hunter")
	has(t, set, "hunter123")
	has(t, set, "hunter99")
	has(t, set, "07hunter")
}

func TestSetSymbolAffixes(t *testing.T) {
	set := Set("hunter")
	for _, s := range []string{"!", "@", "#", "$"} {
		has(t, set, "hunter"+s)
		has(t, set, s+"hunter")
	}
}

func TestSetEmptyBase(t *testing.T) {
	set := Set("")
	has(t, set, "")
	has(t, set, "2") // affixes still apply
	if len(set) == 0 {
		t.Fatal("Set(\"\") returned empty set")
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hunter", "Hunter"},
		{"HUNTER", "Hunter"},
		{"h", "H"},
		{"", ""},
		{"über", "Über"},
	}
	for _, tc := range cases {
		if got := capitalize(tc.in); got != tc.want {
			t.Errorf("capitalize(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
