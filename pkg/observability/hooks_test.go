package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Navigation hooks
	n := NoopNavigationHooks{}
	n.OnNavigate("right", "within", "0_beta", time.Millisecond, nil)
	n.OnNavigate("up", "no-next-item", "", time.Millisecond, errors.New("boom"))
	n.OnJump("BTN@GAMES", nil)

	// Layout hooks
	l := NoopLayoutHooks{}
	l.OnBuild("Home", 2, time.Second, nil)
	l.OnInsert("Home@Games", "game-1", true, nil)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/navigate")
	h.OnResponse(ctx, "POST", "/navigate", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Navigation().(NoopNavigationHooks); !ok {
		t.Error("Navigation() should return NoopNavigationHooks by default")
	}
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customNav := &testNavigationHooks{}
	SetNavigationHooks(customNav)
	if Navigation() != customNav {
		t.Error("SetNavigationHooks should set custom hooks")
	}

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Navigation().(NoopNavigationHooks); !ok {
		t.Error("Reset() should restore NoopNavigationHooks")
	}
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testNavigationHooks{}
	SetNavigationHooks(custom)

	// Setting nil should be ignored
	SetNavigationHooks(nil)

	if Navigation() != custom {
		t.Error("SetNavigationHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testNavigationHooks struct{ NoopNavigationHooks }
type testLayoutHooks struct{ NoopLayoutHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
