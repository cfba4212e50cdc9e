// Package app 提供编辑器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：打开持久化存储、加载瓦片集配置、
// 创建场景管理器，并实现 ebiten.Game 接口驱动主循环。
package app

import (
	"io"
	"log"

	"github.com/gonewx/isoedit/pkg/config"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/gonewx/isoedit/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MapName 要打开的地图名称，不存在则新建空白地图
	MapName string
	// TilesetPath 瓦片集配置文件路径，为空或加载失败时使用内置瓦片集
	TilesetPath string
}

// App 是编辑器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *editor.SceneManager
	verbose      bool
}

// NewApp 创建并初始化编辑器应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 打开跨平台持久化存储
	// 失败时进入降级模式（仅内存编辑），不影响启动
	gdataManager, err := gdata.Open(gdata.Config{AppName: "isoedit"})
	if err != nil {
		log.Printf("[App] Warning: 打开持久化存储失败: %v (降级为内存模式)", err)
		gdataManager = nil
	}
	mapStore := editor.NewMapStore(gdataManager)

	// 加载瓦片集配置
	tileset := config.DefaultTileset()
	if cfg.TilesetPath != "" {
		loaded, err := config.LoadTilesetConfig(cfg.TilesetPath)
		if err != nil {
			log.Printf("[App] Warning: 加载瓦片集配置失败: %v (使用内置瓦片集)", err)
		} else {
			if missing := loaded.Covers(); len(missing) > 0 {
				log.Printf("[App] Warning: 瓦片集配置缺少类型: %v", missing)
			}
			tileset = loaded
		}
	}

	mapName := cfg.MapName
	if mapName == "" {
		mapName = "untitled"
	}

	// 创建场景管理器并进入编辑场景
	sceneManager := editor.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewEditorScene(mapStore, tileset, mapName))

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新编辑器逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制编辑器画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑画布尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时保存未存盘的修改
func (a *App) GetSceneManager() *editor.SceneManager {
	return a.sceneManager
}
