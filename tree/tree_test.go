// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type playerArg struct{}

func (playerArg) Parse(token string) (any, error) {
	if strings.HasPrefix(token, "@") {
		return token, nil
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("invalid player %q: %w", token, ErrArgumentParse)
		}
	}
	return token, nil
}

func (playerArg) Suggestions() []string {
	return []string{"@p", "@a", "Steve", "Alex"}
}

type intArg struct{}

func (intArg) Parse(token string) (any, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArgumentParse, err)
	}
	return v, nil
}

func (intArg) Suggestions() []string {
	return nil
}

type wordArg struct{}

func (wordArg) Parse(token string) (any, error) {
	return token, nil
}

func (wordArg) Suggestions() []string {
	return nil
}

// tpTree is the teleport example tree built by hand:
//
//	tp|teleport <player> <target> <x> <y>
type tpTree struct {
	root, tp, player, target, x, y *Node
}

func newTPTree(exec Executor) *tpTree {
	t := &tpTree{root: NewLiteral("root")}
	t.tp, _ = t.root.AddLiteral(NewLiteral("tp"))
	t.root.AddLiteralAliases([]string{"teleport"}, t.tp)
	t.player, _ = t.tp.AddArgument(NewArgument("player", playerArg{}))
	t.target, _ = t.player.AddArgument(NewArgument("target", playerArg{}))
	t.x, _ = t.target.AddArgument(NewArgument("x", intArg{}))
	t.y, _ = t.x.AddArgument(NewArgument("y", intArg{}))
	t.player.SetExecutor(exec)
	t.y.SetExecutor(exec)
	return t
}

// tpSpec is the same tree in declarative form.
func tpSpec(exec Executor) *Spec {
	return Literal("tp").Alias("teleport", "tpp", "tp_").Then(
		Argument("player", playerArg{}).Exec(exec).Then(
			Argument("target", playerArg{}).Then(
				Argument("x", intArg{}).Then(
					Argument("y", intArg{}).Exec(exec).Param("im_a_param", true),
				),
			),
		),
	)
}
