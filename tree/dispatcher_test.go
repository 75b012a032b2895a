// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var got []any
	exec := ExecutorFunc(func(_ context.Context, call *Call) error {
		got = call.Values
		return nil
	})
	root := NewLiteral("root")
	if _, err := Build(root, tpSpec(exec)); err != nil {
		t.Fatal(err)
	}

	d, err := NewDispatcher(root, nil, logger)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := d.Dispatch(ctx, "tp Steve", nil); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Steve" {
		t.Fatalf("want [Steve], got %v", got)
	}

	if _, err := d.Dispatch(ctx, "tp Steve Alex", nil); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("want ErrIncomplete, got %v", err)
	}
	if !strings.Contains(buf.String(), "command is incomplete") {
		t.Fatalf("want incomplete command to be logged, got %q", buf.String())
	}

	r, err := d.Dispatch(ctx, "nope", nil)
	if !errors.Is(err, ErrArgumentParse) || r.Success() {
		t.Fatalf("want parse failure, got %v", err)
	}

	// Dispatcher stays usable after failures.
	if _, err := d.Dispatch(ctx, "teleport Alex", nil); err != nil {
		t.Fatal(err)
	}

	if err := d.Update(func(root *Node) error {
		root.RemoveLiteralByName("teleport")
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if r := d.Parse("teleport Alex"); r.Success() {
		t.Fatalf("want failure after update")
	}

	fresh := NewLiteral("fresh")
	fresh.AddLiteral(NewLiteral("ping"))
	if err := d.Replace(fresh); err != nil {
		t.Fatal(err)
	}
	if want, got := "ping", strings.Join(d.Suggest(""), ","); want != got {
		t.Fatalf("want %q, got %q", want, got)
	}
	if err := d.Replace(nil); err == nil {
		t.Fatalf("want error for nil root")
	}
}

func TestDispatcherConcurrent(t *testing.T) {
	ctx := context.Background()
	root := NewLiteral("root")
	d, err := NewDispatcher(root, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("cmd%d", i)
			exec := ExecutorFunc(func(context.Context, *Call) error { return nil })
			err := d.Update(func(root *Node) error {
				_, err := Build(root, Literal(name).Exec(exec))
				return err
			})
			if err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Dispatch(ctx, fmt.Sprintf("cmd%d", j%10), nil)
				d.Suggest("")
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		if _, err := d.Dispatch(ctx, fmt.Sprintf("cmd%d", i), nil); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDispatchUsesParsedExecutor(t *testing.T) {
	ctx := context.Background()

	var calls []string
	var params []any
	newExec := func(name string) Executor {
		return ExecutorFunc(func(_ context.Context, call *Call) error {
			calls = append(calls, name)
			params = append(params, call.Params["v"])
			return nil
		})
	}

	root := NewLiteral("root")
	ping, err := root.AddLiteral(NewLiteral("ping").SetExecutor(newExec("first")).SetParams(map[string]any{"v": 1}))
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDispatcher(root, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := d.Parse("ping")
	if err := d.Update(func(*Node) error {
		ping.SetExecutor(newExec("second")).SetParams(map[string]any{"v": 2})
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := r.Execute(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Dispatch(ctx, "ping", nil); err != nil {
		t.Fatal(err)
	}
	if want, got := "[first second]", fmt.Sprint(calls); want != got {
		t.Fatalf("want %s, got %s", want, got)
	}
	if want, got := "[1 2]", fmt.Sprint(params); want != got {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestDispatchWithConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	noop := ExecutorFunc(func(context.Context, *Call) error { return nil })

	root := NewLiteral("root")
	ping, err := root.AddLiteral(NewLiteral("ping").SetExecutor(noop))
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDispatcher(root, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			d.Update(func(*Node) error {
				ping.SetExecutor(noop).SetParams(map[string]any{"i": i})
				return nil
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := d.Dispatch(ctx, "ping", nil); err != nil {
				t.Error(err)
				return
			}
		}
	}()
	wg.Wait()
}
