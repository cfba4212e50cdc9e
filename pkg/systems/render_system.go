package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/isoedit/pkg/components"
	"github.com/gonewx/isoedit/pkg/config"
	"github.com/gonewx/isoedit/pkg/ecs"
	"github.com/gonewx/isoedit/pkg/editor"
	"github.com/gonewx/isoedit/pkg/types"
	"github.com/gonewx/isoedit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RenderSystem 渲染地图瓦片和选区覆盖层
//
// 职责范围：
//   - 按等距投影绘制每个瓦片的菱形
//   - 根据选区分类叠加视觉处理：
//     Unselected 保持原样，Selected 叠加高亮，Ineligible 叠加红色压暗
//   - 鼠标悬停格子的描边
//   - 左上角的状态信息条（模式/笔刷/排除规则/可编辑计数）
//
// 视觉策略只存在于本系统；选区核心只提供三值分类
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	selectionSystem *SelectionSystem
	inputSystem     *InputSystem
	editorState     *editor.EditorState
	tileset         *config.Tileset

	mapEntity    ecs.EntityID
	cameraEntity ecs.EntityID

	// 预生成的菱形图像（每种瓦片类型一张，加上覆盖层三张）
	tileImages        map[types.TileType]*ebiten.Image
	selectedOverlay   *ebiten.Image
	ineligibleOverlay *ebiten.Image
	hoverOutline      *ebiten.Image
}

// NewRenderSystem 创建渲染系统并预生成瓦片图像
func NewRenderSystem(em *ecs.EntityManager, ss *SelectionSystem, is *InputSystem, es *editor.EditorState, tileset *config.Tileset, mapEntity, cameraEntity ecs.EntityID) *RenderSystem {
	rs := &RenderSystem{
		entityManager:   em,
		selectionSystem: ss,
		inputSystem:     is,
		editorState:     es,
		tileset:         tileset,
		mapEntity:       mapEntity,
		cameraEntity:    cameraEntity,
		tileImages:      make(map[types.TileType]*ebiten.Image),
	}

	for _, t := range types.AllTileTypes() {
		style := tileset.Style(t)
		rs.tileImages[t] = newDiamondImage(color.RGBA{style.R, style.G, style.B, 0xFF}, true)
	}
	// 未知类型用品红色菱形兜底，便于发现数据问题
	rs.tileImages[types.TileUnknown] = newDiamondImage(color.RGBA{0xFF, 0x00, 0xFF, 0xFF}, true)

	rs.selectedOverlay = newDiamondImage(color.RGBA{0xFF, 0xFF, 0xFF, 0x66}, false)
	rs.ineligibleOverlay = newDiamondImage(color.RGBA{0xE0, 0x20, 0x20, 0x73}, false)
	rs.hoverOutline = newDiamondOutline(color.RGBA{0xFF, 0xEB, 0x3B, 0xCC})

	return rs
}

// Draw 渲染一帧
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x26, 0x2B, 0x30, 0xFF})

	grid, ok := ecs.GetComponent[*components.TileMapComponent](rs.entityManager, rs.mapEntity)
	if !ok {
		return
	}
	sel, _ := ecs.GetComponent[*components.SelectionComponent](rs.entityManager, rs.mapEntity)

	var cameraX, cameraY float64
	if camera, ok := ecs.GetComponent[*components.CameraComponent](rs.entityManager, rs.cameraEntity); ok {
		cameraX = camera.X
		cameraY = camera.Y
	}

	// 行列双循环即是正确的画家序：
	// 瓦片是平面菱形，没有高度遮挡，后画的行自然覆盖前面的接缝
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			worldX, worldY := utils.GridToWorldCoords(col, row)
			screenX := worldX - config.TileWidth/2 - cameraX
			screenY := worldY - cameraY

			// 画面外剔除
			if screenX+config.TileWidth < 0 || screenX > config.ScreenWidth ||
				screenY+config.TileHeight < 0 || screenY > config.ScreenHeight {
				continue
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(screenX, screenY)

			img, ok := rs.tileImages[grid.TypeAt(col, row)]
			if !ok {
				img = rs.tileImages[types.TileUnknown]
			}
			screen.DrawImage(img, op)

			// 选区覆盖层
			if sel != nil {
				switch sel.Classification[row*grid.Width+col] {
				case components.TileSelected:
					screen.DrawImage(rs.selectedOverlay, op)
				case components.TileIneligible:
					screen.DrawImage(rs.ineligibleOverlay, op)
				}
			}
		}
	}

	rs.drawHoverOutline(screen, grid, cameraX, cameraY)
	rs.drawStatusBar(screen, grid)
}

// drawHoverOutline 绘制鼠标悬停格子的描边
func (rs *RenderSystem) drawHoverOutline(screen *ebiten.Image, grid *components.TileMapComponent, cameraX, cameraY float64) {
	mouseX, mouseY := ebiten.CursorPosition()
	col, row, inBounds := utils.ScreenToGridCoords(mouseX, mouseY, cameraX, cameraY, grid.Width, grid.Height)
	if !inBounds {
		return
	}

	worldX, worldY := utils.GridToWorldCoords(col, row)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(worldX-config.TileWidth/2-cameraX, worldY-cameraY)
	screen.DrawImage(rs.hoverOutline, op)
}

// drawStatusBar 绘制左上角状态信息
func (rs *RenderSystem) drawStatusBar(screen *ebiten.Image, grid *components.TileMapComponent) {
	dirtyMark := ""
	if rs.editorState.Dirty {
		dirtyMark = " *"
	}
	msg := fmt.Sprintf("%s (%dx%d)%s | mode: %s | brush: %s | exclude: %s | eligible: %d",
		rs.editorState.CurrentMapName, grid.Width, grid.Height, dirtyMark,
		rs.inputSystem.Mode(),
		rs.editorState.BrushType,
		rs.editorState.Exclusion,
		rs.selectionSystem.EligibleCount(rs.mapEntity))
	ebitenutil.DebugPrint(screen, msg)
}

// newDiamondImage 生成一张菱形瓦片图像
// withEdge 为 true 时在菱形边缘画一圈压暗描边，形成网格线
func newDiamondImage(fill color.RGBA, withEdge bool) *ebiten.Image {
	const w = int(config.TileWidth)
	const h = int(config.TileHeight)

	edge := color.RGBA{
		R: uint8(float64(fill.R) * 0.6),
		G: uint8(float64(fill.G) * 0.6),
		B: uint8(float64(fill.B) * 0.6),
		A: fill.A,
	}

	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := diamondDistance(x, y, w, h)
			if d > 1 {
				continue
			}
			if withEdge && d > 0.88 {
				img.Set(x, y, edge)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}

// newDiamondOutline 生成只有描边的菱形图像（悬停光标）
func newDiamondOutline(c color.RGBA) *ebiten.Image {
	const w = int(config.TileWidth)
	const h = int(config.TileHeight)

	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := diamondDistance(x, y, w, h)
			if d <= 1 && d > 0.82 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// diamondDistance 像素到菱形中心的 L1 归一化距离
// 结果 <= 1 表示像素在菱形内部，== 1 恰好在边上
func diamondDistance(x, y, w, h int) float64 {
	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	return math.Abs(dx)/(float64(w)/2) + math.Abs(dy)/(float64(h)/2)
}
