package slugger

import "testing"

func TestAnchor(t *testing.T) {
	cases := []struct{ in, want string }{
		{"A", "a"},
		{"Sub Section", "sub-section"},
		{"Hello, World!", "hello-world"},
		{"  spaced  ", "spaced"},
	}
	for _, c := range cases {
		if got := Anchor(c.in); got != c.want {
			t.Errorf("Anchor(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormat_KeepsCaseWhenLowerDisabled(t *testing.T) {
	o := Options{Lower: false, Replacement: "-"}
	if got := o.Format("Hello World"); got != "Hello-World" {
		t.Errorf("expected Hello-World, got %q", got)
	}
}

func TestFormat_CustomReplacement(t *testing.T) {
	o := Options{Lower: true, Replacement: "_"}
	if got := o.Format("Sub Section"); got != "sub_section" {
		t.Errorf("expected sub_section, got %q", got)
	}
}

func TestFormat_Locale(t *testing.T) {
	o := Options{Lower: true, Replacement: "-", Locale: "de"}
	if got := o.Format("Straße Über"); got != "strasse-ueber" {
		t.Errorf("expected strasse-ueber, got %q", got)
	}
}
