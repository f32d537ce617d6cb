package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/fractal/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 嵌入的默认配置文件路径
const DefaultConfigPath = "data/config.yaml"

// MaxIterations 迭代次数上限（与着色器循环上限一致）
const MaxIterations = 1000

// StyleCount 分形样式数量
const StyleCount = 8

// AppConfig 应用配置
type AppConfig struct {
	Window       WindowConfig        `yaml:"window"`       // 窗口设置
	Overlay      OverlayConfig       `yaml:"overlay"`      // 说明浮层设置
	Instructions []string            `yaml:"instructions"` // 浮层显示的说明文字
	Keys         map[string][]string `yaml:"keys"`         // 动作 -> 按键名（覆盖默认绑定）
	Fractal      FractalConfig       `yaml:"fractal"`      // 分形初始参数
	Palette      []string            `yaml:"palette"`      // 调色板色标（#rrggbb）
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Title     string `yaml:"title"`     // 窗口标题
	Width     int    `yaml:"width"`     // 初始宽度（像素）
	Height    int    `yaml:"height"`    // 初始高度（像素）
	TPS       int    `yaml:"tps"`       // 每秒逻辑帧数
	Resizable bool   `yaml:"resizable"` // 是否允许调整窗口大小
}

// OverlayConfig 说明浮层设置
type OverlayConfig struct {
	TextSize float64 `yaml:"textSize"` // 名义字号（像素）
	HoldTime float64 `yaml:"holdTime"` // 完全显示的停留时间（秒）
	FadeTime float64 `yaml:"fadeTime"` // 淡出时长（秒），<= 0 表示停留结束后立即消失
	MarginX  float64 `yaml:"marginX"`  // 距窗口左右边缘（像素）
	MarginY  float64 `yaml:"marginY"`  // 距窗口上下边缘（像素）
	Padding  float64 `yaml:"padding"`  // 面板内边距（像素）
}

// FractalConfig 分形初始参数
type FractalConfig struct {
	CenterX     float64 `yaml:"centerX"`     // 视图中心 X
	CenterY     float64 `yaml:"centerY"`     // 视图中心 Y
	Scale       float64 `yaml:"scale"`       // 视图缩放（越小越放大）
	Power       float64 `yaml:"power"`       // 初始幂次
	TargetPower float64 `yaml:"targetPower"` // 启动后平滑过渡到的幂次
	Iterations  int     `yaml:"iterations"`  // 迭代次数
	Style       int     `yaml:"style"`       // 样式编号 [0, StyleCount)
	JuliaX      float64 `yaml:"juliaX"`      // Julia 种子实部
	JuliaY      float64 `yaml:"juliaY"`      // Julia 种子虚部
}

// DefaultInstructions 默认说明文字
var DefaultInstructions = []string{
	"Controls:",
	"  Mouse click sets Julia seed",
	"  WASD pans the view",
	"  Z / X zoom in or out",
	"  P / O adjust fractal power",
	"  K / L tweak iteration depth",
	"  M cycles fractal styles",
	"  H shows this help again",
}

// DefaultPalette 默认调色板色标
var DefaultPalette = []string{"#000764", "#206bcb", "#edffff", "#ffaa00", "#310230"}

// Default 返回默认配置
func Default() *AppConfig {
	instructions := make([]string, len(DefaultInstructions))
	copy(instructions, DefaultInstructions)
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return &AppConfig{
		Window: WindowConfig{
			Title:     "Fractal",
			Width:     1280,
			Height:    720,
			TPS:       60,
			Resizable: true,
		},
		Overlay: OverlayConfig{
			TextSize: 22.0,
			HoldTime: 3.0,
			FadeTime: 2.5,
			MarginX:  36,
			MarginY:  36,
			Padding:  18,
		},
		Instructions: instructions,
		Fractal: FractalConfig{
			CenterX:     0.5,
			CenterY:     0.0,
			Scale:       1.25,
			Power:       1.0,
			TargetPower: 2.0,
			Iterations:  100,
			Style:       0,
			JuliaX:      -0.8,
			JuliaY:      0.156,
		},
		Palette: palette,
	}
}

// Parse 解析 YAML 配置
// 未出现的字段保留默认值
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := validateAppConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	normalizeOverlay(&cfg.Overlay)
	return cfg, nil
}

// LoadFile 从磁盘加载配置
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load 加载应用配置
//
// 参数：
//   - path: 用户配置文件路径；为空时使用嵌入的默认配置
//
// 返回：
//   - *AppConfig: 配置
//   - error: 用户指定的文件无法读取或无效时返回错误
//
// 嵌入的默认配置不可用时记录警告并使用 Default()。
func Load(path string) (*AppConfig, error) {
	if path != "" {
		cfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loaded config from %s", path)
		return cfg, nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: embedded config unavailable: %v (using defaults)", err)
		return Default(), nil
	}

	cfg, err := Parse(data)
	if err != nil {
		log.Printf("[Config] Warning: embedded config invalid: %v (using defaults)", err)
		return Default(), nil
	}

	log.Printf("[Config] Loaded embedded config %s", DefaultConfigPath)
	return cfg, nil
}

// validateAppConfig 验证配置中无法降级处理的字段
func validateAppConfig(cfg *AppConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", cfg.Window.TPS)
	}

	if cfg.Fractal.Iterations < 1 || cfg.Fractal.Iterations > MaxIterations {
		return fmt.Errorf("fractal iterations must be between 1 and %d, got %d", MaxIterations, cfg.Fractal.Iterations)
	}
	if cfg.Fractal.Style < 0 || cfg.Fractal.Style >= StyleCount {
		return fmt.Errorf("fractal style must be between 0 and %d, got %d", StyleCount-1, cfg.Fractal.Style)
	}
	if cfg.Fractal.Scale <= 0 {
		return fmt.Errorf("fractal scale must be positive, got %v", cfg.Fractal.Scale)
	}

	if len(cfg.Palette) < 2 {
		return fmt.Errorf("palette needs at least 2 colors, got %d", len(cfg.Palette))
	}

	return nil
}

// normalizeOverlay 把不合理的浮层参数降级为可用值
// 浮层配置错误不阻止启动
func normalizeOverlay(o *OverlayConfig) {
	def := Default().Overlay

	if o.TextSize <= 0 {
		log.Printf("[Config] Warning: overlay textSize %v invalid, using %v", o.TextSize, def.TextSize)
		o.TextSize = def.TextSize
	}
	if o.HoldTime < 0 {
		o.HoldTime = 0
	}
	o.MarginX = max(o.MarginX, 0)
	o.MarginY = max(o.MarginY, 0)
	o.Padding = max(o.Padding, 0)
}
