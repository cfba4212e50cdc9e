package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/isoedit/pkg/components"
	"github.com/gonewx/isoedit/pkg/ecs"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/gonewx/isoedit/pkg/types"
	"github.com/gonewx/isoedit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EditorMode 编辑器输入状态机的状态
type EditorMode int

const (
	// ModeIdle 空闲：无进行中的拖拽操作
	ModeIdle EditorMode = iota
	// ModePanning 平移：按住右键/中键拖动摄像机
	ModePanning
	// ModeSelecting 框选：按住左键拖出选区矩形
	ModeSelecting
)

// String 返回状态的字符串表示
func (m EditorMode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModePanning:
		return "Panning"
	case ModeSelecting:
		return "Selecting"
	default:
		return "Unknown"
	}
}

// inputEvent 驱动状态机的离散输入事件
type inputEvent int

const (
	eventSelectPress   inputEvent = iota // 左键按下
	eventSelectRelease                   // 左键抬起
	eventPanPress                        // 右键/中键按下
	eventPanRelease                      // 右键/中键抬起
)

// modeTransitions 状态转移表
// 未列出的 (状态, 事件) 组合保持原状态不变：
// 拖拽过程中另一个按键的按下/抬起一律忽略
var modeTransitions = map[EditorMode]map[inputEvent]EditorMode{
	ModeIdle: {
		eventSelectPress: ModeSelecting,
		eventPanPress:    ModePanning,
	},
	ModeSelecting: {
		eventSelectRelease: ModeIdle,
	},
	ModePanning: {
		eventPanRelease: ModeIdle,
	},
}

// advanceMode 执行一次状态转移
func advanceMode(mode EditorMode, ev inputEvent) EditorMode {
	if next, ok := modeTransitions[mode][ev]; ok {
		return next
	}
	return mode
}

// InputSystem 处理编辑器的鼠标和键盘输入
//
// 鼠标：
//   - 左键拖拽：框选矩形选区（按下位置为锚点）
//   - 右键/中键拖拽：平移摄像机
//
// 键盘：
//   - 1..8: 切换笔刷瓦片类型
//   - X: 切换当前笔刷类型在排除规则中的成员状态
//   - Enter/Space: 把选区内可编辑格子批量改写为笔刷类型
//   - Escape: 清空选区
//   - F5: 保存当前地图
//
// 选区约定：框选拖拽的每次更新都先 Clear 再 Select，
// 选区始终是锚点与当前格子确定的单个矩形，不跨调用累积
type InputSystem struct {
	entityManager   *ecs.EntityManager
	selectionSystem *SelectionSystem
	editorState     *editor.EditorState
	mapStore        *editor.MapStore

	mapEntity    ecs.EntityID
	cameraEntity ecs.EntityID

	mode EditorMode

	// 框选锚点：左键按下时的网格坐标（可能越界，Select 内部钳制）
	anchorCol int
	anchorRow int

	// 平移起点：上一帧的鼠标屏幕坐标
	lastMouseX int
	lastMouseY int
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, ss *SelectionSystem, es *editor.EditorState, store *editor.MapStore, mapEntity, cameraEntity ecs.EntityID) *InputSystem {
	return &InputSystem{
		entityManager:   em,
		selectionSystem: ss,
		editorState:     es,
		mapStore:        store,
		mapEntity:       mapEntity,
		cameraEntity:    cameraEntity,
		mode:            ModeIdle,
	}
}

// Mode 返回当前输入状态（调试覆盖层使用）
func (s *InputSystem) Mode() EditorMode {
	return s.mode
}

// Update 处理一帧的输入
func (s *InputSystem) Update(deltaTime float64) {
	s.handleKeyboard()

	mouseX, mouseY := ebiten.CursorPosition()

	// 把本帧的按键边沿沿转移表推进状态机，并在进入新状态时执行入口动作
	s.dispatchMouseEvents(mouseX, mouseY)

	switch s.mode {
	case ModeSelecting:
		s.updateSelecting(mouseX, mouseY)
	case ModePanning:
		s.updatePanning(mouseX, mouseY)
	}

	s.lastMouseX = mouseX
	s.lastMouseY = mouseY
}

// dispatchMouseEvents 把鼠标按键边沿转换为离散事件并推进状态机
func (s *InputSystem) dispatchMouseEvents(mouseX, mouseY int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		prev := s.mode
		s.mode = advanceMode(s.mode, eventSelectPress)
		if prev == ModeIdle && s.mode == ModeSelecting {
			s.beginSelecting(mouseX, mouseY)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.mode = advanceMode(s.mode, eventSelectRelease)
	}

	panPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)
	panReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle)

	if panPressed {
		s.mode = advanceMode(s.mode, eventPanPress)
	}
	if panReleased {
		s.mode = advanceMode(s.mode, eventPanRelease)
	}
}

// beginSelecting 记录框选锚点并建立初始单格选区
func (s *InputSystem) beginSelecting(mouseX, mouseY int) {
	col, row := s.cursorGridCoords(mouseX, mouseY)
	s.anchorCol = col
	s.anchorRow = row

	s.selectionSystem.Clear(s.mapEntity)
	s.selectionSystem.Select(s.mapEntity, col, row, col, row, s.editorState.Exclusion)
}

// updateSelecting 框选拖拽中的每帧更新
// 约定：先 Clear 再 Select，选区始终从干净状态重算，
// 不依赖 Select 的增量语义跨帧累积
func (s *InputSystem) updateSelecting(mouseX, mouseY int) {
	col, row := s.cursorGridCoords(mouseX, mouseY)

	s.selectionSystem.Clear(s.mapEntity)
	s.selectionSystem.Select(s.mapEntity, s.anchorCol, s.anchorRow, col, row, s.editorState.Exclusion)
}

// updatePanning 平移拖拽中的每帧更新
// 摄像机反向移动，让世界跟随鼠标
func (s *InputSystem) updatePanning(mouseX, mouseY int) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return
	}
	camera.X -= float64(mouseX - s.lastMouseX)
	camera.Y -= float64(mouseY - s.lastMouseY)
}

// handleKeyboard 处理键盘输入
func (s *InputSystem) handleKeyboard() {
	// 1..8 切换笔刷类型（与 types.AllTileTypes 顺序一致）
	brushKeys := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	}
	allTypes := types.AllTileTypes()
	for i, key := range brushKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(allTypes) {
			s.editorState.SetBrush(allTypes[i])
			log.Printf("[InputSystem] 笔刷切换: %s", allTypes[i])
		}
	}

	// X 切换当前笔刷类型的排除状态
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		excluded := s.editorState.ToggleExclusion(s.editorState.BrushType)
		log.Printf("[InputSystem] 排除规则更新: %s 排除=%v (当前 %s)",
			s.editorState.BrushType, excluded, s.editorState.Exclusion)
	}

	// Enter/Space 批量改写选区
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		painted := s.selectionSystem.PaintSelected(s.mapEntity, s.editorState.BrushType)
		if painted > 0 {
			s.editorState.MarkDirty()
		}
	}

	// Escape 清空选区
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.selectionSystem.Clear(s.mapEntity)
	}

	// F5 保存地图
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := s.SaveCurrentMap(); err != nil {
			log.Printf("[InputSystem] 保存地图失败: %v", err)
		}
	}
}

// SaveCurrentMap 把当前地图写入存储
// 场景退出时也会调用，保存成功后清除修改标记
func (s *InputSystem) SaveCurrentMap() error {
	grid, ok := ecs.GetComponent[*components.TileMapComponent](s.entityManager, s.mapEntity)
	if !ok {
		return fmt.Errorf("地图实体 %d 缺少 TileMapComponent", s.mapEntity)
	}

	tiles := make([]int, len(grid.Tiles))
	for i, t := range grid.Tiles {
		tiles[i] = int(t)
	}
	data := &editor.MapData{
		Name:   s.editorState.CurrentMapName,
		Width:  grid.Width,
		Height: grid.Height,
		Tiles:  tiles,
	}

	if err := s.mapStore.Save(data); err != nil {
		return err
	}
	s.editorState.MarkSaved()
	return nil
}

// cursorGridCoords 把鼠标屏幕坐标换算为网格坐标
// 返回原始计算值（可能越界），选区操作内部负责钳制
func (s *InputSystem) cursorGridCoords(mouseX, mouseY int) (col, row int) {
	var cameraX, cameraY float64
	if camera, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity); ok {
		cameraX = camera.X
		cameraY = camera.Y
	}

	grid, ok := ecs.GetComponent[*components.TileMapComponent](s.entityManager, s.mapEntity)
	if !ok {
		return 0, 0
	}

	col, row, _ = utils.ScreenToGridCoords(mouseX, mouseY, cameraX, cameraY, grid.Width, grid.Height)
	return col, row
}
