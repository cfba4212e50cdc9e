// Package utils 提供编辑器通用的工具函数
//
// coordinates.go 提供等距投影的坐标转换工具。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **网格坐标**：整数 (col, row)，按列/行寻址瓦片
//   - **世界坐标**：相对于地图原点的像素坐标（固定）
//   - **屏幕坐标**：相对于窗口左上角的像素坐标（随摄像机移动）
//
// # 核心转换公式
//
// 网格坐标 → 世界坐标（菱形顶点）：
//
//	worldX = OriginX + (col-row) * TileWidth/2
//	worldY = OriginY + (col+row) * TileHeight/2
//
// 世界坐标 → 屏幕坐标：
//
//	screenX = worldX - cameraX
//	screenY = worldY - cameraY
//
// 逆变换使用 math.Floor 取整，保证负象限的点也落入正确的格子
// （整数截断会把 -0.5 错误地归入格子 0）。
package utils

import (
	"math"

	"github.com/gonewx/isoedit/pkg/config"
)

// GridToWorldCoords 将网格坐标转换为菱形顶点的世界坐标
//
// 返回的是格子菱形最上方顶点的坐标；
// 绘制瓦片图像时以 (worldX - TileWidth/2, worldY) 为左上角
func GridToWorldCoords(col, row int) (worldX, worldY float64) {
	worldX = config.OriginX + float64(col-row)*config.TileWidth/2
	worldY = config.OriginY + float64(col+row)*config.TileHeight/2
	return worldX, worldY
}

// GridToScreenCoords 将网格坐标转换为菱形中心的屏幕坐标
//
// 参数:
//   - col, row: 网格坐标
//   - cameraX, cameraY: 摄像机偏移（世界坐标）
//
// 返回:
//   - centerX, centerY: 格子菱形中心的屏幕坐标
func GridToScreenCoords(col, row int, cameraX, cameraY float64) (centerX, centerY float64) {
	worldX, worldY := GridToWorldCoords(col, row)
	centerX = worldX - cameraX
	centerY = worldY + config.TileHeight/2 - cameraY
	return centerX, centerY
}

// ScreenToGridCoords 将屏幕坐标转换为网格坐标
//
// 参数:
//   - screenX, screenY: 屏幕坐标（通常来自鼠标位置）
//   - cameraX, cameraY: 摄像机偏移（世界坐标）
//   - mapWidth, mapHeight: 地图尺寸（列数/行数），用于范围判断
//
// 返回:
//   - col, row: 网格坐标。即使越界也返回计算值，调用方可按需钳制
//   - inBounds: 坐标是否落在地图内
func ScreenToGridCoords(screenX, screenY int, cameraX, cameraY float64, mapWidth, mapHeight int) (col, row int, inBounds bool) {
	// 换算到以地图原点为基准的世界坐标
	wx := float64(screenX) + cameraX - config.OriginX
	wy := float64(screenY) + cameraY - config.OriginY

	// 菱形网格的逆变换：先归一化到半瓦片单位，再旋转回行列轴
	a := wx / (config.TileWidth / 2)
	b := wy / (config.TileHeight / 2)

	col = int(math.Floor((a + b) / 2))
	row = int(math.Floor((b - a) / 2))

	inBounds = col >= 0 && col < mapWidth && row >= 0 && row < mapHeight
	return col, row, inBounds
}

// MapWorldBounds 计算地图在世界坐标系中的包围盒
//
// 返回:
//   - minX, minY, maxX, maxY: 包围盒边界（世界坐标）
//
// 用于摄像机平移钳制：摄像机偏移不应让整个包围盒移出画面
func MapWorldBounds(mapWidth, mapHeight int) (minX, minY, maxX, maxY float64) {
	// 最左顶点来自格子 (0, mapHeight-1)，最右顶点来自 (mapWidth-1, 0)
	minX = config.OriginX - float64(mapHeight)*config.TileWidth/2
	maxX = config.OriginX + float64(mapWidth)*config.TileWidth/2
	minY = config.OriginY
	maxY = config.OriginY + float64(mapWidth+mapHeight)*config.TileHeight/2
	return minX, minY, maxX, maxY
}

// Clamp 把 v 钳制到闭区间 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
