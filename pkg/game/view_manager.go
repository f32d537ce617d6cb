package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/fractal/pkg/config"
	"github.com/decker502/fractal/pkg/fractal"
)

// SavedView 持久化的分形视图
// 只保存目标值，恢复后不再播放平滑过渡
type SavedView struct {
	CenterX    float64 `yaml:"centerX"`    // 视图中心 X
	CenterY    float64 `yaml:"centerY"`    // 视图中心 Y
	Scale      float64 `yaml:"scale"`      // 视图缩放
	Power      float64 `yaml:"power"`      // 幂次目标
	Iterations int     `yaml:"iterations"` // 迭代次数
	Style      int     `yaml:"style"`      // 样式编号
	JuliaX     float64 `yaml:"juliaX"`     // Julia 种子目标实部
	JuliaY     float64 `yaml:"juliaY"`     // Julia 种子目标虚部
	Fullscreen bool    `yaml:"fullscreen"` // 保存时是否全屏
}

// ViewFromParams 从当前参数生成保存记录
func ViewFromParams(p *fractal.Params, fullscreen bool) SavedView {
	return SavedView{
		CenterX:    p.TargetCenter.X,
		CenterY:    p.TargetCenter.Y,
		Scale:      p.Scale,
		Power:      p.TargetPower,
		Iterations: p.Iterations,
		Style:      p.Style,
		JuliaX:     p.TargetJulia.X,
		JuliaY:     p.TargetJulia.Y,
		Fullscreen: fullscreen,
	}
}

// Apply 把保存的视图写回参数
// 当前值和目标值同时设置，缩放倍率复位为 1
func (v SavedView) Apply(p *fractal.Params) {
	cfg := config.FractalConfig{
		CenterX:     v.CenterX,
		CenterY:     v.CenterY,
		Scale:       v.Scale,
		Power:       v.Power,
		TargetPower: v.Power,
		Iterations:  v.Iterations,
		Style:       v.Style,
		JuliaX:      v.JuliaX,
		JuliaY:      v.JuliaY,
	}
	*p = *fractal.FromConfig(cfg)
}

// validate 检查保存记录是否可用
func (v SavedView) validate() error {
	if v.Scale <= 0 {
		return fmt.Errorf("saved view scale must be positive, got %v", v.Scale)
	}
	if v.Iterations < fractal.MinIterations || v.Iterations > config.MaxIterations {
		return fmt.Errorf("saved view iterations out of range: %d", v.Iterations)
	}
	if v.Style < 0 || v.Style >= config.StyleCount {
		return fmt.Errorf("saved view style out of range: %d", v.Style)
	}
	return nil
}

// 存储路径常量
const (
	viewObject   = "view"
	viewProperty = "last"
)

// ViewManager 视图存档管理器
// 负责最近一次视图的加载和保存
type ViewManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	view         *SavedView     // 最近一次加载或保存的视图，nil 表示没有
}

// NewViewManager 创建视图存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存保存）
//
// 返回：
//   - *ViewManager: 视图存档管理器
//
// 已有存档无法读取时记录警告，视为没有存档。
func NewViewManager(gdataManager *gdata.Manager) *ViewManager {
	vm := &ViewManager{gdataManager: gdataManager}

	if err := vm.Load(); err != nil {
		log.Printf("[ViewManager] Warning: Failed to load saved view: %v (ignoring)", err)
	}

	return vm
}

// Persistent 是否能写入磁盘
func (vm *ViewManager) Persistent() bool {
	return vm.gdataManager != nil
}

// Load 从 gdata 加载视图
//
// 返回：
//   - error: 存档存在但无法读取、解析或校验时返回错误
func (vm *ViewManager) Load() error {
	// 降级模式：保留内存中的视图
	if vm.gdataManager == nil {
		return nil
	}

	if !vm.gdataManager.ObjectPropExists(viewObject, viewProperty) {
		vm.view = nil
		return nil
	}

	data, err := vm.gdataManager.LoadObjectProp(viewObject, viewProperty)
	if err != nil {
		vm.view = nil
		return fmt.Errorf("failed to load view: %w", err)
	}

	var loaded SavedView
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		vm.view = nil
		return fmt.Errorf("failed to unmarshal view: %w", err)
	}
	if err := loaded.validate(); err != nil {
		vm.view = nil
		return err
	}

	vm.view = &loaded
	log.Printf("[ViewManager] View loaded (style=%d scale=%g)", loaded.Style, loaded.Scale)
	return nil
}

// Save 保存视图
//
// 降级模式下只保存在内存中，不报错
//
// 返回：
//   - error: 序列化或写入失败时返回错误
func (vm *ViewManager) Save(view SavedView) error {
	vm.view = &view

	if vm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&view)
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}

	if err := vm.gdataManager.SaveObjectProp(viewObject, viewProperty, data); err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}

	log.Printf("[ViewManager] View saved")
	return nil
}

// View 返回最近一次加载或保存的视图
func (vm *ViewManager) View() (SavedView, bool) {
	if vm.view == nil {
		return SavedView{}, false
	}
	return *vm.view, true
}
