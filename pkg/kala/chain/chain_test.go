package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/kala/pkg/kala"
	"github.com/ib-77/kala/pkg/kala/solo"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := kala.SuccessOf(10)
	c := Start(ctx, base)
	out := c.Result()
	if !out.IsSuccess() || out.MustGet() != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
	if out.Id() != base.Id() {
		t.Fatalf("expected chain to keep the Try it started from")
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.MustGet() != 7 {
		t.Fatalf("expected success with 7, got %v", out)
	}
}

func TestRun_CapturesErrorAndPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Run(ctx, func(ctx context.Context) (int, error) { return strconv.Atoi("x") }).Result()
	var numErr *strconv.NumError
	if !errors.As(out.Err(), &numErr) {
		t.Fatalf("expected NumError, got %v", out)
	}

	out2 := Run(ctx, func(ctx context.Context) (int, error) { panic("boom") }).Result()
	var pe *kala.PanicError
	if !errors.As(out2.Err(), &pe) {
		t.Fatalf("expected PanicError, got %v", out2)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	c := Start(ctx, kala.FailureOf[int](err))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) kala.Try[string] {
		called = true
		return kala.SuccessOf("ok")
	})
	out := c2.Result()
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected failure 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_PropagateCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, solo.Cancel[int](errors.New("cancel")))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) kala.Try[string] {
		called = true
		return kala.SuccessOf("x")
	})
	out := c2.Result()
	if !out.IsCancel() || !errors.Is(out.Err(), context.Canceled) {
		t.Fatalf("expected cancel, got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on cancel input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	out := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	}).Result()
	if !out.IsSuccess() || out.MustGet() != "val_3" {
		t.Fatalf("expected success 'val_3', got %v", out)
	}

	// error path
	out2 := ThenTry(FromValue(ctx, 9), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	}).Result()
	if out2.IsSuccess() || out2.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got %v", out2)
	}

	// short-circuit on failure input
	out3 := ThenTry(Start(ctx, kala.FailureOf[int](errors.New("bad"))), func(ctx context.Context, v int) (string, error) {
		return "ignored", nil
	}).Result()
	if out3.IsSuccess() || out3.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got %v", out3)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) }).Result()
	if !out.IsSuccess() || out.MustGet() != "n:5" {
		t.Fatalf("expected success 'n:5', got %v", out)
	}

	out2 := Map(Start(ctx, kala.FailureOf[int](errors.New("oops"))), func(ctx context.Context, v int) string { return "ignored" }).Result()
	if out2.IsSuccess() || out2.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got %v", out2)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, kala.FailureOf[int](errors.New("x"))).
		Recover(func(ctx context.Context, err error) int { return -1 }).
		Result()
	if !out.IsSuccess() || out.MustGet() != -1 {
		t.Fatalf("expected recovered -1, got %v", out)
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	out := FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { called = true }).Result()
	if !out.IsSuccess() || out.MustGet() != 11 {
		t.Fatalf("expected success with 11, got %v", out)
	}
	if !called {
		t.Fatalf("expected Ensure to invoke onSuccess for success result")
	}

	// failure path should not call onSuccess
	called = false
	out2 := Start(ctx, kala.FailureOf[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { called = true }).Result()
	if out2.IsSuccess() || out2.Err().Error() != "x" {
		t.Fatalf("expected failure 'x', got %v", out2)
	}
	if called {
		t.Fatalf("Ensure onSuccess must not be called for failure result")
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	finish := func(c *Chain[int]) string {
		return Finally(c,
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, err error) string { return "fail" },
			func(ctx context.Context, err error) string { return "cancel" },
		)
	}

	if s := finish(FromValue(ctx, 2)); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if s := finish(Start(ctx, kala.FailureOf[int](errors.New("e")))); s != "fail" {
		t.Fatalf("expected 'fail', got %q", s)
	}
	if s := finish(Start(ctx, solo.Cancel[int](errors.New("c")))); s != "cancel" {
		t.Fatalf("expected 'cancel', got %q", s)
	}
}

func TestChain_EndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(s string) string {
		c := Run(ctx, func(ctx context.Context) (string, error) { return s, nil })
		n := ThenTry(c, func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
		doubled := Map(n, func(ctx context.Context, v int) int { return v * 2 })
		return Finally(doubled,
			func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) },
			func(ctx context.Context, err error) string { return "err" },
			func(ctx context.Context, err error) string { return "cancel" })
	}

	if got := parse("21"); got != "val:42" {
		t.Fatalf("expected 'val:42', got %q", got)
	}
	if got := parse("bad"); got != "err" {
		t.Fatalf("expected 'err', got %q", got)
	}
}
