package scaling

import "testing"

func TestDefault(t *testing.T) {
	cls := Default()
	cases := map[string]Kind{
		"gm":     Proportional,
		"gmb":    Proportional,
		"cgg":    Proportional,
		"id":     Proportional,
		"rout":   Inverse,
		"region": Invariant,
		"VSB":    Invariant,
		"ft":     Invariant,
	}
	for name, want := range cases {
		if got := cls.Kind(name); got != want {
			t.Fatalf("Kind(%s) = %s, want %s", name, got, want)
		}
	}
	if cls.Resizable("VDS") {
		t.Fatal("VDS should not be resizable")
	}
	if got := cls.Columns(Proportional); len(got) != 4 || got[0] != "cgg" {
		t.Fatalf("Columns(Proportional) = %v", got)
	}
}

func TestWithDoesNotMutate(t *testing.T) {
	base := Default()
	next := base.With("cgd", Proportional).With("rout", Invariant)
	if base.Kind("cgd") != Invariant || base.Kind("rout") != Inverse {
		t.Fatal("With modified the receiver")
	}
	if next.Kind("cgd") != Proportional || next.Resizable("rout") {
		t.Fatalf("unexpected classification: %v", next)
	}
}

func TestFromLists(t *testing.T) {
	cls, err := FromLists([]string{"gm", "id"}, []string{"rout", "rds"})
	if err != nil {
		t.Fatalf("FromLists failed: %v", err)
	}
	if cls.Kind("rds") != Inverse || cls.Kind("id") != Proportional {
		t.Fatalf("unexpected classification: %v", cls)
	}
	if _, err := FromLists([]string{"gm"}, []string{"gm"}); err == nil {
		t.Fatal("expected error for overlapping lists")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Invariant, Proportional, Inverse} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("quadratic"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
