package main

import (
	"flag"
	"log"

	"github.com/gonewx/isoedit/pkg/app"
	"github.com/gonewx/isoedit/pkg/config"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	mapName := flag.String("map", "untitled", "要打开的地图名称（不存在则新建）")
	tilesetPath := flag.String("tileset", "", "瓦片集配置文件路径（为空使用内置瓦片集）")
	flag.Parse()

	editorApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		MapName:     *mapName,
		TilesetPath: *tilesetPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&closingGame{App: editorApp}); err != nil && err != errQuit {
		log.Fatal(err)
	}
}

// errQuit 表示用户关闭窗口后的正常退出
var errQuit = quitError{}

type quitError struct{}

func (quitError) Error() string { return "quit" }

// closingGame 包装 App，在窗口关闭前给当前场景保存状态的机会
type closingGame struct {
	*app.App
}

// Update 先处理窗口关闭请求，再转发给 App
func (g *closingGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if scene := g.GetSceneManager().GetCurrentScene(); scene != nil {
			if saveable, ok := scene.(editor.Saveable); ok {
				saveable.SaveOnExit()
			}
		}
		return errQuit
	}
	return g.App.Update()
}
