package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestFrameDriver_Frame(t *testing.T) {
	d := NewFrameDriver()

	var got []string
	d.RequestFrame(func(time.Time) {
		got = append(got, "first")
		d.RequestFrame(func(time.Time) {
			got = append(got, "requested during frame")
		})
	})
	d.RequestFrame(func(time.Time) {
		got = append(got, "second")
	})

	d.Frame(time.Now())
	testutil.AssertEqual(t, "ran", len(got), 2)
	testutil.AssertEqual(t, "pending", d.Pending(), 1)

	d.Frame(time.Now())
	testutil.AssertEqual(t, "ran", len(got), 3)
	testutil.AssertEqual(t, "last", got[2], "requested during frame")
	testutil.AssertEqual(t, "pending", d.Pending(), 0)
}

func TestFrameDriver_Start(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewFrameDriver(
		WithFrameLength(time.Millisecond),
		WithClock(func() time.Time { return base }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() {
		stopped <- d.Start(ctx)
	}()

	frames := make(chan time.Time, 1)
	err := d.Call(ctx, func() {
		d.RequestFrame(func(now time.Time) {
			frames <- now
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case now := <-frames:
		testutil.AssertEqual(t, "frame time", now, base)
	case <-time.After(5 * time.Second):
		t.Fatal("frame never ran")
	}

	cancel()
	select {
	case err := <-stopped:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop")
	}

	err = d.Post(context.Background(), func() {})
	if !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
}

func TestFrameDriver_PostCancelled(t *testing.T) {
	d := NewFrameDriver()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Post(ctx, func() {})
	testutil.AssertErrorContains(t, err, "context canceled")
}
