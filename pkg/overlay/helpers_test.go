package overlay

// 测试用的渲染后端和字形源替身，记录所有调用

type drawCall struct {
	kind   string // "blend", "quad", "strip", "line"
	blend  bool
	quad   [8]float32
	color  Color
	text   string
	anchor Point
	size   float64
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

type fakeContext struct {
	rec     *recorder
	blendOn bool
}

func (f *fakeContext) SetBlend(enabled bool) {
	f.blendOn = enabled
	f.rec.calls = append(f.rec.calls, drawCall{kind: "blend", blend: enabled})
}

func (f *fakeContext) WriteQuad(vertices [8]float32) {
	f.rec.calls = append(f.rec.calls, drawCall{kind: "quad", quad: vertices})
}

func (f *fakeContext) DrawStrip(clr Color) {
	f.rec.calls = append(f.rec.calls, drawCall{kind: "strip", color: clr, blend: f.blendOn})
}

type fakeGlyphs struct {
	rec     *recorder
	ctx     *fakeContext
	aspect  float64
	hasMeta bool
}

func (g *fakeGlyphs) CharAspect() (float64, bool) {
	return g.aspect, g.hasMeta
}

func (g *fakeGlyphs) DrawLine(text string, anchor Point, size float64, clr Color) {
	blend := false
	if g.ctx != nil {
		blend = g.ctx.blendOn
	}
	g.rec.calls = append(g.rec.calls, drawCall{
		kind: "line", text: text, anchor: anchor, size: size, color: clr, blend: blend,
	})
}

type fakeWindow struct {
	width, height int
}

func (w *fakeWindow) Size() (int, int) {
	return w.width, w.height
}

func newFakes() (*recorder, *fakeContext, *fakeGlyphs) {
	rec := &recorder{}
	ctx := &fakeContext{rec: rec}
	glyphs := &fakeGlyphs{rec: rec, ctx: ctx}
	return rec, ctx, glyphs
}

// instructionLines 与默认配置相同的说明文字
var instructionLines = []string{
	"Controls:",
	"  Mouse click sets Julia seed",
	"  WASD pans the view",
	"  Z / X zoom in or out",
	"  P / O adjust fractal power",
	"  K / L tweak iteration depth",
	"  M cycles fractal styles",
	"  H shows this help again",
}
