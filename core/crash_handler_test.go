package core

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeScreen struct {
	finalized atomic.Int32
}

func (f *fakeScreen) Fini() { f.finalized.Add(1) }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func withCrashHooks(t *testing.T) (*fakeScreen, *syncBuffer, <-chan int) {
	t.Helper()

	screen := &fakeScreen{}
	out := &syncBuffer{}
	codes := make(chan int, 1)

	prevOut, prevExit := crashOutput, crashExit
	crashOutput = out
	crashExit = func(code int) { codes <- code }
	SetCrashScreen(screen)

	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashScreen(nil)
	})
	return screen, out, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	screen, out, codes := withCrashHooks(t)

	HandleCrash(nil)

	if screen.finalized.Load() != 0 {
		t.Error("screen finalized on nil panic value")
	}
	if out.String() != "" {
		t.Errorf("unexpected output %q", out.String())
	}
	select {
	case code := <-codes:
		t.Errorf("exit(%d) called on nil panic value", code)
	default:
	}
}

func TestGoRecoversPanic(t *testing.T) {
	screen, out, codes := withCrashHooks(t)

	Go(func() { panic("lane exploded") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler did not run")
	}

	if screen.finalized.Load() != 1 {
		t.Errorf("Fini called %d times, want 1", screen.finalized.Load())
	}
	if !strings.Contains(out.String(), "lane exploded") {
		t.Errorf("crash report missing panic value: %q", out.String())
	}
}
