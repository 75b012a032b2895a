// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bvk/cmdtree/argtype"
	"github.com/bvk/cmdtree/specfile"
	"github.com/bvk/cmdtree/tree"
	"github.com/visvasity/cli"
)

// Player accepts player names made of letters, digits and underscores.
var Player = argtype.Pattern{
	Regexp: regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`),
}

// GameModes are the choices accepted by the gamemode command.
var GameModes = []string{"survival", "creative", "adventure", "spectator"}

func teleport(ctx context.Context, call *tree.Call) error {
	stdout := cli.Stdout(ctx)
	switch len(call.Values) {
	case 1:
		fmt.Fprintf(stdout, "%s teleported to spawn\n", call.Values[0])
	case 2:
		fmt.Fprintf(stdout, "%s teleported to %s\n", call.Values[0], call.Values[1])
	case 3:
		fmt.Fprintf(stdout, "%s teleported to (%v, %v)\n", call.Values[0], call.Values[1], call.Values[2])
	default:
		return fmt.Errorf("unexpected number of teleport arguments %d", len(call.Values))
	}
	return nil
}

func say(ctx context.Context, call *tree.Call) error {
	if len(call.Rest) == 0 {
		return fmt.Errorf("nothing to say")
	}
	fmt.Fprintf(cli.Stdout(ctx), "[server] %s\n", call.Rest)
	return nil
}

func gamemode(ctx context.Context, call *tree.Call) error {
	player := "everyone"
	if len(call.Values) > 1 {
		player = fmt.Sprint(call.Values[1])
	}
	fmt.Fprintf(cli.Stdout(ctx), "game mode of %s is set to %s\n", player, call.Values[0])
	return nil
}

func give(ctx context.Context, call *tree.Call) error {
	item := "gold"
	if v, ok := call.Params["item"]; ok {
		item = fmt.Sprint(v)
	}
	fmt.Fprintf(cli.Stdout(ctx), "gave %v %s to %s\n", call.Values[1], item, call.Values[0])
	return nil
}

func echo(ctx context.Context, call *tree.Call) error {
	text := call.Rest
	if call.Literals[len(call.Literals)-1] == "loud" {
		text = strings.ToUpper(text)
	}
	fmt.Fprintln(cli.Stdout(ctx), text)
	return nil
}

// NewSampleRegistry returns a registry that knows the sample executors and
// the player argument type, so spec files can refer to them by name.
func NewSampleRegistry() (*specfile.Registry, error) {
	reg := specfile.NewRegistry()
	if err := reg.AddArgumentType("player", Player); err != nil {
		return nil, err
	}
	executors := map[string]tree.ExecutorFunc{
		"teleport": teleport,
		"say":      say,
		"gamemode": gamemode,
		"give":     give,
		"echo":     echo,
	}
	for name, exec := range executors {
		if err := reg.AddExecutor(name, exec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// SampleSpecs returns the built-in sample commands.
func SampleSpecs() map[string]*tree.Spec {
	tp := tree.ExecutorFunc(teleport)
	return map[string]*tree.Spec{
		"tp": tree.Literal("tp").Alias("teleport", "tpp", "tp_").Then(
			tree.Argument("player", Player).Exec(tp).Then(
				tree.Argument("x", argtype.Int{}).Then(
					tree.Argument("y", argtype.Int{}).Exec(tp).Rest(false).Param("relative", false),
				),
				tree.Argument("target", Player).Exec(tp).Rest(false),
			),
		),
		"say": tree.Literal("say").Exec(tree.ExecutorFunc(say)),
		"gamemode": tree.Literal("gamemode").Alias("gm").Then(
			tree.Argument("mode", argtype.Enum{Values: GameModes, IgnoreCase: true}).Exec(tree.ExecutorFunc(gamemode)).Then(
				tree.Argument("player", Player).Exec(tree.ExecutorFunc(gamemode)),
			),
		),
		"give": tree.Literal("give").Then(
			tree.Argument("player", Player).Then(
				tree.Argument("amount", argtype.Decimal{}).Exec(tree.ExecutorFunc(give)).Param("item", "gold"),
			),
		),
		// Sub-commands of echo are matched case-sensitively.
		"echo": tree.Literal("echo").Fold(false).Then(
			tree.Literal("loud").Exec(tree.ExecutorFunc(echo)),
			tree.Literal("quiet").Exec(tree.ExecutorFunc(echo)),
		),
	}
}
