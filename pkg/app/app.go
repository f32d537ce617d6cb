// Package app 提供分形浏览器的核心包装器
//
// 该包把配置、输入、分形渲染、说明浮层和视图存档组装成 ebiten.Game。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/fractal/pkg/config"
	"github.com/decker502/fractal/pkg/fractal"
	"github.com/decker502/fractal/pkg/game"
	"github.com/decker502/fractal/pkg/input"
	"github.com/decker502/fractal/pkg/overlay"
	"github.com/decker502/fractal/pkg/render"
)

// storageAppName gdata 存储目录名
const storageAppName = "fractal"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 用户配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// RestoreView 启动时恢复上次保存的视图
	RestoreView bool
}

// App 是分形浏览器的核心包装器，实现 ebiten.Game 接口
type App struct {
	settings *config.AppConfig
	dt       float64

	params   *fractal.Params
	held     fractal.InputState
	keyboard *input.Keyboard
	shader   *fractal.Renderer

	surface *render.Surface
	overlay *overlay.Overlay
	views   *game.ViewManager

	width, height int  // 最近一次 Layout 的尺寸
	fullscreen    bool // 最近一次 Update 时的全屏状态

	startFullscreen          bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	bindings, err := input.NewBindings(settings.Keys)
	if err != nil {
		return nil, fmt.Errorf("按键绑定无效: %w", err)
	}

	palette, err := fractal.BuildPalette(settings.Palette)
	if err != nil {
		return nil, fmt.Errorf("调色板无效: %w", err)
	}

	shader, err := fractal.LoadRenderer(palette)
	if err != nil {
		return nil, fmt.Errorf("着色器加载失败: %w", err)
	}

	surface := render.NewSurface()
	glyphs, err := render.NewMonoGlyphs(surface)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		settings: settings,
		dt:       1.0 / float64(settings.Window.TPS),
		params:   fractal.FromConfig(settings.Fractal),
		keyboard: input.NewKeyboard(bindings),
		shader:   shader,
		surface:  surface,
		overlay:  overlay.New(settings.Instructions, glyphs, surface, OverlayOptions(settings.Overlay)),
		views:    game.NewViewManager(openStorage()),
	}

	if cfg.RestoreView {
		a.restoreView()
	}

	log.Printf("[App] Initialized (style=%s, tps=%d)", fractal.StyleName(a.params.Style), settings.Window.TPS)
	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (views will not persist)", err)
		return nil
	}
	return manager
}

// OverlayOptions 把配置转换为浮层构造参数
func OverlayOptions(c config.OverlayConfig) overlay.Options {
	return overlay.Options{
		TextSize: c.TextSize,
		HoldTime: c.HoldTime,
		FadeTime: c.FadeTime,
		MarginX:  c.MarginX,
		MarginY:  c.MarginY,
		Padding:  c.Padding,
	}
}

// restoreView 恢复上次保存的视图
func (a *App) restoreView() {
	view, ok := a.views.View()
	if !ok {
		log.Printf("[App] No saved view, using configured start view")
		return
	}
	view.Apply(a.params)
	a.startFullscreen = view.Fullscreen
	log.Printf("[App] Restored saved view (style=%s)", fractal.StyleName(a.params.Style))
}

// Settings 返回生效的配置
func (a *App) Settings() *config.AppConfig {
	return a.settings
}

// StartFullscreen 恢复的视图是否要求全屏启动
func (a *App) StartFullscreen() bool {
	return a.startFullscreen
}

// Params 返回当前分形参数
func (a *App) Params() *fractal.Params {
	return a.params
}

// Update 更新逻辑
// 每个 tick 调用一次，dt 固定为 1/TPS
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	a.fullscreen = ebiten.IsFullscreen()

	// 失去焦点时收不到松开事件
	if !ebiten.IsFocused() {
		a.held.Clear()
	}

	for _, ev := range a.keyboard.Poll() {
		a.handleEvent(ev)
	}

	if clicked, x, y := input.PointerClick(); clicked {
		a.params.SetJuliaSeed(x, y, a.width, a.height)
	}

	a.params.Step(a.dt, a.held)
	a.overlay.Update(a.dt)
	return nil
}

// handleEvent 处理一个动作事件
func (a *App) handleEvent(ev input.Event) {
	if a.held.Apply(ev) || !ev.Pressed {
		return
	}

	switch ev.Action {
	case input.ActionCycleStyle:
		style := a.params.CycleStyle()
		log.Printf("[App] Style: %s", fractal.StyleName(style))
	case input.ActionShowHelp:
		a.overlay.Reset()
	case input.ActionSaveView:
		if err := a.SaveView(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	case input.ActionToggleFullscreen:
		a.toggleFullscreen()
	}
}

// toggleFullscreen 切换全屏
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// SaveView 保存当前视图
func (a *App) SaveView() error {
	if err := a.views.Save(game.ViewFromParams(a.params, a.fullscreen)); err != nil {
		return fmt.Errorf("保存视图失败: %w", err)
	}
	return nil
}

// Draw 绘制画面：先绘制分形，再叠加说明浮层
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Bind(screen)
	a.shader.Draw(screen, a.params)
	a.overlay.Draw(a.surface)
}

// Layout 返回逻辑屏幕尺寸
// 与窗口实际尺寸一致，浮层每帧按当前尺寸重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Shutdown 退出前保存视图
func (a *App) Shutdown() error {
	return a.SaveView()
}
