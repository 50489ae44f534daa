package regex

import (
	"testing"

	"github.com/kr/pretty"
)

func TestAcceptanceScenario1GreedyOptionalThenOneOrMore(t *testing.T) {
	re := MustCompile(`a?b+c`)
	if !re.Match([]byte("bbbbc")) {
		t.Fatal("expected a?b+c to match bbbbc")
	}
	caps, ok := re.FindSubmatch([]byte("bbbbc"))
	if !ok {
		t.Fatal("expected match")
	}
	if len(caps) != 0 {
		t.Fatalf("caps = %+v, want none", caps)
	}
}

func TestAcceptanceScenario2LazyPlusThenGroupStar(t *testing.T) {
	re := MustCompile(`a+?(a*)`)
	caps, ok := re.FindSubmatch([]byte("aaa"))
	if !ok {
		t.Fatal("expected a+?(a*) to match aaa")
	}
	want := Capture{Start: 1, End: 3}
	if caps[0] != want {
		t.Fatalf("caps[0] = %+v, want %+v", caps[0], want)
	}
}

func TestAcceptanceScenario3GreedyGroupCapturesAll(t *testing.T) {
	re := MustCompile(`(a+)a*`)
	caps, ok := re.FindSubmatch([]byte("aaa"))
	if !ok {
		t.Fatal("expected (a+)a* to match aaa")
	}
	want := Capture{Start: 0, End: 3}
	if caps[0] != want {
		t.Fatalf("caps[0] = %+v, want %+v", caps[0], want)
	}
}

func TestAcceptanceScenario4TwoGroupsShortHaystack(t *testing.T) {
	re := MustCompile(`a*(b+)(c+)`)
	caps, ok := re.FindSubmatch([]byte("aaabc"))
	if !ok {
		t.Fatal("expected match")
	}
	want := []Capture{{Start: 3, End: 4}, {Start: 4, End: 5}}
	if diff := pretty.Diff(caps, want); len(diff) != 0 {
		t.Fatalf("captures do not match:\n%s", pretty.Sprint(diff))
	}
}

func TestAcceptanceScenario5TwoGroupsLongerRuns(t *testing.T) {
	re := MustCompile(`a*(b+)(c+)`)
	caps, ok := re.FindSubmatch([]byte("aaabbcc"))
	if !ok {
		t.Fatal("expected match")
	}
	want := []Capture{{Start: 3, End: 5}, {Start: 5, End: 7}}
	if diff := pretty.Diff(caps, want); len(diff) != 0 {
		t.Fatalf("captures do not match:\n%s", pretty.Sprint(diff))
	}
}

func TestAcceptanceScenario6NoMatch(t *testing.T) {
	re := MustCompile(`a|b`)
	if re.Match([]byte("c")) {
		t.Fatal("expected a|b not to match c")
	}
	if _, ok := re.FindSubmatch([]byte("c")); ok {
		t.Fatal("expected no captures on a non-match")
	}
}

func TestCompileRejectsUnmatchedParen(t *testing.T) {
	if _, err := Compile(`(a`); err == nil {
		t.Fatal("expected error for unmatched paren")
	}
}

func TestCompileRejectsTrailingBackslash(t *testing.T) {
	if _, err := Compile(`a\`); err == nil {
		t.Fatal("expected error for trailing backslash")
	}
}

func TestMustCompilePanicsOnMalformedPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on a malformed pattern")
		}
	}()
	MustCompile(`(a`)
}
