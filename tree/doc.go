// Copyright (c) 2025 BVK Chaitanya

// Package tree implements a declarative command-tree dispatcher for text
// commands typed in consoles, chats or admin channels.
//
// A command tree is made of literal nodes, matched by exact keyword, and
// argument nodes, matched when an ArgumentType accepts the token. Input is
// split at a separator and matched one token at a time:
//
//   - Literal keys always win over arguments.
//   - Arguments are tried in declaration order and the first one accepting
//     the token wins. There is no backtracking.
//   - Reaching a consume-rest node stops parsing and captures the remaining
//     input as one raw string.
//
// Parse results can be turned into suggestions or executed. Parse problems
// are returned as data, configuration problems as errors wrapping
// ErrConfiguration, and executor failures are caught at the dispatch
// boundary.
//
// # EXAMPLE
//
//	root := tree.NewLiteral("root")
//	tp := tree.Literal("tp").Alias("teleport").Then(
//		tree.Argument("player", playerType).Exec(tpExecutor).Then(
//			tree.Argument("x", intType).Then(
//				tree.Argument("y", intType).Exec(tpExecutor),
//			),
//		),
//	)
//	if _, err := tree.Build(root, tp); err != nil {
//		return err
//	}
//	r := root.Parse("teleport Steve 100 64")
//	if err := r.Execute(ctx, nil); err != nil {
//		return err
//	}
//
// Trees that change while being used should be wrapped in a Dispatcher,
// which serializes structural changes against parsing.
package tree
