package overlay

import (
	"math"
	"testing"
)

func newTestOverlay(lines []string) (*Overlay, *recorder, *fakeGlyphs) {
	rec, ctx, glyphs := newFakes()
	return New(lines, glyphs, ctx, DefaultOptions()), rec, glyphs
}

// TestDefaultOptions 测试默认构造参数
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	want := Options{TextSize: 22, HoldTime: 3, FadeTime: 2.5, MarginX: 36, MarginY: 36, Padding: 18}
	if opts != want {
		t.Errorf("DefaultOptions() = %+v, 期望 %+v", opts, want)
	}
}

// TestOverlayDrawsWhileVisible 测试可见时绘制面板和所有行
func TestOverlayDrawsWhileVisible(t *testing.T) {
	o, rec, _ := newTestOverlay(instructionLines)

	o.Draw(&fakeWindow{width: 1920, height: 1080})

	if rec.count("strip") != 1 {
		t.Errorf("面板绘制次数 = %d, 期望 1", rec.count("strip"))
	}
	if rec.count("line") != len(instructionLines) {
		t.Errorf("文字绘制次数 = %d, 期望 %d", rec.count("line"), len(instructionLines))
	}
}

// TestOverlayViewportShrinksToZero 测试显示中视口缩为 0 时不产生任何绘制调用
func TestOverlayViewportShrinksToZero(t *testing.T) {
	o, rec, _ := newTestOverlay(instructionLines)
	win := &fakeWindow{width: 800, height: 600}

	o.Update(0.5)
	o.Draw(win)
	if len(rec.calls) == 0 {
		t.Fatal("正常视口下应有绘制调用")
	}

	rec.calls = nil
	for _, size := range [][2]int{{0, 0}, {0, 600}, {800, 0}, {-1, 600}} {
		win.width, win.height = size[0], size[1]
		o.Draw(win)
		if len(rec.calls) != 0 {
			t.Errorf("视口 %v: 期望 0 次调用, 实际 %d", size, len(rec.calls))
		}
	}
	if o.Alpha() <= 0 {
		t.Errorf("alpha = %v, 视口变化不应影响淡出", o.Alpha())
	}
}

// TestOverlayLifecycle 测试 Active → Fading → Hidden → Reset → Active
func TestOverlayLifecycle(t *testing.T) {
	o, rec, _ := newTestOverlay(instructionLines)
	win := &fakeWindow{width: 800, height: 600}

	if o.Phase() != PhaseActive {
		t.Fatalf("初始 Phase = %v, 期望 active", o.Phase())
	}

	o.Update(4.0)
	if o.Phase() != PhaseFading {
		t.Fatalf("4 秒后 Phase = %v, 期望 fading", o.Phase())
	}
	if math.Abs(o.Alpha()-0.6) > 1e-9 {
		t.Errorf("alpha = %v, 期望 0.6", o.Alpha())
	}

	o.Update(2.0)
	if o.Phase() != PhaseHidden {
		t.Fatalf("6 秒后 Phase = %v, 期望 hidden", o.Phase())
	}

	rec.calls = nil
	o.Draw(win)
	if len(rec.calls) != 0 {
		t.Errorf("隐藏后期望 0 次调用, 实际 %d", len(rec.calls))
	}

	o.Reset()
	if o.Phase() != PhaseActive || o.Alpha() != 1 {
		t.Errorf("Reset 后 Phase = %v alpha = %v", o.Phase(), o.Alpha())
	}
	o.Draw(win)
	if rec.count("line") != len(instructionLines) {
		t.Errorf("Reset 后应重新绘制 %d 行, 实际 %d", len(instructionLines), rec.count("line"))
	}
}

// TestOverlaySetContent 测试替换内容后重新显示
func TestOverlaySetContent(t *testing.T) {
	o, rec, _ := newTestOverlay(instructionLines)
	o.Update(10)
	if o.Visible() {
		t.Fatal("10 秒后浮层应已隐藏")
	}

	o.SetContent([]string{"one", "two"})
	if !o.Visible() {
		t.Fatal("替换内容后浮层应重新显示")
	}
	if o.Content().LineCount() != 2 {
		t.Errorf("LineCount = %d, 期望 2", o.Content().LineCount())
	}

	o.Draw(&fakeWindow{width: 800, height: 600})
	if rec.count("line") != 2 {
		t.Errorf("文字绘制次数 = %d, 期望 2", rec.count("line"))
	}
}

// TestOverlayEmptyContent 测试空内容不绘制
func TestOverlayEmptyContent(t *testing.T) {
	o, rec, _ := newTestOverlay(nil)
	if o.Visible() {
		t.Error("空内容不应可见")
	}
	o.Draw(&fakeWindow{width: 800, height: 600})
	if len(rec.calls) != 0 {
		t.Errorf("空内容期望 0 次调用, 实际 %d", len(rec.calls))
	}
}

// TestOverlayMetricsFromGlyphSource 测试字符宽度来自字形源的宽高比
func TestOverlayMetricsFromGlyphSource(t *testing.T) {
	_, ctx, glyphs := newFakes()
	glyphs.aspect, glyphs.hasMeta = 0.5, true

	o := New(instructionLines, glyphs, ctx, DefaultOptions())
	if o.Metrics().CharWidth != 11 {
		t.Errorf("CharWidth = %v, 期望 11", o.Metrics().CharWidth)
	}

	o.SetTextSize(40)
	if o.Metrics().CharWidth != 20 || o.Metrics().LineHeight != 54 {
		t.Errorf("SetTextSize(40) 后 Metrics = %+v, 期望 {20 54}", o.Metrics())
	}

	// 非正字号被忽略
	o.SetTextSize(0)
	if o.Metrics().CharWidth != 20 {
		t.Errorf("SetTextSize(0) 不应修改 Metrics, 实际 %+v", o.Metrics())
	}
}
