package listener

import (
	"context"
	"sync"
)

// connGroup holds the sessions of one listener. Stopping the group cancels
// every session and waits for them to end.
type connGroup struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newConnGroup() *connGroup {
	// Sessions outlive the accept loop's context until stop is called.
	ctx, cancel := context.WithCancel(context.Background())
	return &connGroup{ctx: ctx, cancel: cancel}
}

// do runs fn on the calling goroutine as a member of the group.
func (g *connGroup) do(fn func(ctx context.Context)) {
	g.wg.Add(1)
	defer g.wg.Done()
	fn(g.ctx)
}

// goDo runs fn on a new goroutine as a member of the group.
func (g *connGroup) goDo(fn func(ctx context.Context)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		fn(g.ctx)
	}()
}

func (g *connGroup) stop() {
	g.cancel()
	g.wg.Wait()
}
