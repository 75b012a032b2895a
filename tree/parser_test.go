// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestParseTeleport(t *testing.T) {
	tt := newTPTree(nil)

	r := tt.root.Parse("tp Steve Alex 100 64")
	if !r.Success() {
		t.Fatalf("want success, got %v", r.Err())
	}
	if r.Node() != tt.y {
		t.Fatalf("want node y, got %q", r.Node().Name())
	}
	if want, got := []string{"tp"}, r.Literals(); !slices.Equal(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if want, got := []any{"Steve", "Alex", 100, 64}, r.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if _, ok := r.Rest(); ok {
		t.Fatalf("want no raw tail")
	}
}

func TestParseFailure(t *testing.T) {
	tt := newTPTree(nil)

	r := tt.root.Parse("tp Steve ???")
	if r.Success() {
		t.Fatalf("want failure, got success at %q", r.Node().Name())
	}
	var perr *ParseError
	if !errors.As(r.Err(), &perr) {
		t.Fatalf("want *ParseError, got %T", r.Err())
	}
	if perr.Token != "???" {
		t.Fatalf("want token ???, got %q", perr.Token)
	}
	// Matching fails while trying the children of the player node.
	if perr.Node != tt.player || r.Node() != tt.player {
		t.Fatalf("want failure at player, got %q", perr.Node.Name())
	}
	if !errors.Is(r.Err(), ErrArgumentParse) {
		t.Fatalf("want ErrArgumentParse, got %v", r.Err())
	}
	if v := r.Suggest(); v == nil || len(v) != 0 {
		t.Fatalf("want empty suggestions, got %v", v)
	}
}

func TestParseEmpty(t *testing.T) {
	tt := newTPTree(nil)
	for _, input := range []string{"", " ", "     "} {
		r := tt.root.Parse(input)
		if !r.Success() || r.Node() != tt.root {
			t.Fatalf("input %q: want success at root, got %v at %q", input, r.Err(), r.Node().Name())
		}
		if len(r.Literals()) != 0 || len(r.Values()) != 0 {
			t.Fatalf("input %q: want no tokens, got %v %v", input, r.Literals(), r.Values())
		}
	}

	empty := NewLiteral("empty")
	if r := empty.Parse(""); !r.Success() || r.Node() != empty {
		t.Fatalf("want success at an empty tree root")
	}
}

func TestParseAlias(t *testing.T) {
	tt := newTPTree(nil)

	r1 := tt.root.Parse("tp Steve Alex 100 64")
	r2 := tt.root.Parse("teleport Steve Alex 100 64")
	if r1.Node() != r2.Node() {
		t.Fatalf("want same terminal node, got %q and %q", r1.Node().Name(), r2.Node().Name())
	}
	if !reflect.DeepEqual(r1.Values(), r2.Values()) {
		t.Fatalf("want %v, got %v", r1.Values(), r2.Values())
	}
	if want, got := []string{"teleport"}, r2.Literals(); !slices.Equal(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// Changes through one key are visible through the other.
	tp, _ := tt.root.LiteralByName("tp")
	tp.AddLiteral(NewLiteral("here"))
	if r := tt.root.Parse("teleport here"); !r.Success() {
		t.Fatalf("want alias to see the new child, got %v", r.Err())
	}
}

func TestParseCaseFold(t *testing.T) {
	tt := newTPTree(nil)

	r := tt.root.Parse("TELEPORT Steve Alex 1 2")
	if !r.Success() || r.Node() != tt.y {
		t.Fatalf("want success at y, got %v", r.Err())
	}
	// Argument values keep their original case.
	if want, got := []any{"Steve", "Alex", 1, 2}, r.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}

	tt.root.SetCaseFold(false)
	if r := tt.root.Parse("TP Steve"); r.Success() {
		t.Fatalf("want failure without case folding")
	}
}

func TestLiteralPriority(t *testing.T) {
	root := NewLiteral("root")
	all, _ := root.AddLiteral(NewLiteral("all"))
	word, _ := root.AddArgument(NewArgument("word", wordArg{}))

	if r := root.Parse("all"); r.Node() != all {
		t.Fatalf("want literal, got %q", r.Node().Name())
	}
	if r := root.Parse("ALL"); r.Node() != all {
		t.Fatalf("want folded literal, got %q", r.Node().Name())
	}
	if r := root.Parse("some"); r.Node() != word {
		t.Fatalf("want argument, got %q", r.Node().Name())
	}

	root.SetCaseFold(false)
	if r := root.Parse("ALL"); r.Node() != word {
		t.Fatalf("want argument without folding, got %q", r.Node().Name())
	}
}

func TestArgumentOrder(t *testing.T) {
	root := NewLiteral("root")
	word, _ := root.AddArgument(NewArgument("word", wordArg{}))
	number, _ := root.AddArgument(NewArgument("number", intArg{}))

	r := root.Parse("5")
	if r.Node() != word {
		t.Fatalf("want word, got %q", r.Node().Name())
	}
	if want, got := []any{"5"}, r.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}

	root.RemoveArgument(word)
	root.AddArgument(word)

	r = root.Parse("5")
	if r.Node() != number {
		t.Fatalf("want number, got %q", r.Node().Name())
	}
	if want, got := []any{5}, r.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestConsumeRest(t *testing.T) {
	root := NewLiteral("root")
	say, _ := root.AddLiteral(NewLiteral("say"))
	say.SetConsumeRest(true)
	say.AddLiteral(NewLiteral("never"))

	r := root.Parse("say  hello   world  ")
	if !r.Success() || r.Node() != say {
		t.Fatalf("want success at say, got %v", r.Err())
	}
	if rest, ok := r.Rest(); !ok || rest != "hello   world  " {
		t.Fatalf("want verbatim tail, got %q (%t)", rest, ok)
	}
	if want, got := []any{"hello   world  "}, r.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// Children of a consume-rest node are never evaluated.
	if r := root.Parse("say never"); r.Node() != say {
		t.Fatalf("want say, got %q", r.Node().Name())
	}

	r = root.Parse("say")
	if rest, ok := r.Rest(); !ok || rest != "" {
		t.Fatalf("want empty tail, got %q (%t)", rest, ok)
	}
	if len(r.Values()) != 0 {
		t.Fatalf("want no values for an empty tail, got %v", r.Values())
	}
}

func TestConsumeRestUnmatched(t *testing.T) {
	start := NewLiteral("start")
	start.SetConsumeRest(true)
	help, _ := start.AddLiteral(NewLiteral("-h"))

	if r := start.Parse("-h"); r.Node() != help {
		t.Fatalf("want -h, got %q", r.Node().Name())
	}

	r := start.Parse("aaaa  aaa")
	if !r.Success() || r.Node() != start {
		t.Fatalf("want success at start, got %v", r.Err())
	}
	if rest, _ := r.Rest(); rest != "aaaa  aaa" {
		t.Fatalf("want tail starting at the unmatched token, got %q", rest)
	}
}

func TestParseRemoved(t *testing.T) {
	tt := newTPTree(nil)

	if n := tt.root.RemoveLiteral(tt.tp); n != 2 {
		t.Fatalf("want 2 keys removed, got %d", n)
	}
	r := tt.root.Parse("teleport Steve")
	if r.Success() || r.Node() != tt.root {
		t.Fatalf("want failure at root after removal")
	}

	tt = newTPTree(nil)
	if !tt.tp.RemoveArgument(tt.player) {
		t.Fatalf("want player removed")
	}
	if r := tt.root.Parse("tp Steve"); r.Success() || r.Node() != tt.tp {
		t.Fatalf("want failure at tp after removal")
	}

	tt = newTPTree(nil)
	if !tt.root.RemoveLiteralByName("teleport") {
		t.Fatalf("want teleport removed")
	}
	if r := tt.root.Parse("teleport"); r.Success() {
		t.Fatalf("want teleport to fail after removal")
	}
	if r := tt.root.Parse("tp"); !r.Success() {
		t.Fatalf("want tp to keep working, got %v", r.Err())
	}
}

func TestParseSeparator(t *testing.T) {
	tt := newTPTree(nil)

	p, err := NewParser(&Options{Separator: "::"})
	if err != nil {
		t.Fatal(err)
	}
	r := p.Parse(tt.root, "::tp::::Steve::Alex::1::2::")
	if !r.Success() || r.Node() != tt.y {
		t.Fatalf("want success at y, got %v", r.Err())
	}
}

func TestParseFromSubtree(t *testing.T) {
	tt := newTPTree(nil)

	x := tt.root.Lookup(Lit("tp"), Arg(0), Arg(0), Arg(0))
	if x != tt.x {
		t.Fatalf("want x, got %v", x)
	}
	if r := x.Parse("64"); r.Node() != tt.y {
		t.Fatalf("want y, got %q", r.Node().Name())
	}
}

func TestConsumeRestEntryNode(t *testing.T) {
	say := NewLiteral("say").SetConsumeRest(true)

	r := say.Parse("")
	if !r.Success() || r.Node() != say {
		t.Fatalf("want success at say, got %v", r.Err())
	}
	if rest, ok := r.Rest(); !ok || rest != "" {
		t.Fatalf("want empty tail, got %q (%t)", rest, ok)
	}

	r = say.Parse("  hello  world")
	if rest, ok := r.Rest(); !ok || rest != "hello  world" {
		t.Fatalf("want %q, got %q (%t)", "hello  world", rest, ok)
	}

	if _, ok := NewLiteral("tp").Parse("").Rest(); ok {
		t.Fatalf("want no tail for a node that does not consume the rest")
	}
}
