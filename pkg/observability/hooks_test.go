package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBundleHooks{}
	b.OnLoadStart(ctx, "amp.lv2")
	b.OnFileParsed(ctx, "amp.lv2/manifest.ttl", 12, time.Millisecond, nil)
	b.OnLoadComplete(ctx, "amp.lv2", 1, time.Second, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "plugin", "svg")
	r.OnRenderComplete(ctx, "plugin", "svg", 2048, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Bundle().(NoopBundleHooks); !ok {
		t.Error("Bundle() should return NoopBundleHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customBundle := &testBundleHooks{}
	SetBundleHooks(customBundle)
	if Bundle() != customBundle {
		t.Error("SetBundleHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	SetBundleHooks(nil)
	if Bundle() != customBundle {
		t.Error("SetBundleHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Bundle().(NoopBundleHooks); !ok {
		t.Error("Reset() should restore NoopBundleHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testBundleHooks{}
	SetBundleHooks(h)

	ctx := context.Background()
	Bundle().OnLoadStart(ctx, "amp.lv2")
	Bundle().OnFileParsed(ctx, "manifest.ttl", 3, 0, nil)
	Bundle().OnFileParsed(ctx, "amp.ttl", 40, 0, nil)
	Bundle().OnLoadComplete(ctx, "amp.lv2", 1, 0, nil)

	if h.starts != 1 || h.files != 2 || h.statements != 43 || h.completes != 1 {
		t.Errorf("hooks got starts=%d files=%d statements=%d completes=%d, want 1 2 43 1",
			h.starts, h.files, h.statements, h.completes)
	}
}

type testBundleHooks struct {
	starts, files, statements, completes int
}

func (h *testBundleHooks) OnLoadStart(context.Context, string) { h.starts++ }
func (h *testBundleHooks) OnFileParsed(_ context.Context, _ string, n int, _ time.Duration, _ error) {
	h.files++
	h.statements += n
}
func (h *testBundleHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

type testRenderHooks struct{}

func (*testRenderHooks) OnRenderStart(context.Context, string, string) {}
func (*testRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}
