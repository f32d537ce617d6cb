package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fractal/pkg/app"
	"github.com/decker502/fractal/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "配置文件路径（默认使用内置配置）")
	noRestore  = flag.Bool("no-restore", false, "不恢复上次保存的视图")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	fractalApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		RestoreView: !*noRestore,
	})
	if err != nil {
		// 非 verbose 模式下日志已被静默
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	window := fractalApp.Settings().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(window.TPS)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(fractalApp.StartFullscreen())

	if err := ebiten.RunGame(fractalApp); err != nil {
		log.Fatal(err)
	}

	if err := fractalApp.Shutdown(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
}
