package config

// 等距投影布局常量
// 这些常量定义了瓦片菱形的像素尺寸和地图原点在世界坐标系中的位置，
// 用于网格坐标与屏幕坐标的互相换算
//
// 调整指南：
//   - TileWidth/TileHeight 必须保持 2:1 比例，否则菱形走样
//   - OriginX/OriginY 是格子 (0,0) 菱形顶点的世界坐标
const (
	TileWidth  = 64.0 // 瓦片菱形宽度（像素）
	TileHeight = 32.0 // 瓦片菱形高度（像素）

	OriginX = 0.0  // 地图原点X（世界坐标）
	OriginY = 64.0 // 地图原点Y（世界坐标），留出顶部信息条空间
)

// 窗口与画布常量
const (
	ScreenWidth  = 1024 // 逻辑画布宽度
	ScreenHeight = 768  // 逻辑画布高度

	WindowTitle = "等距地图编辑器"
)

// 默认地图尺寸
// 未指定地图文件时新建空白地图使用
const (
	DefaultMapWidth  = 24 // 默认列数
	DefaultMapHeight = 24 // 默认行数
)

// CameraSlack 摄像机可以越过地图包围盒的最大距离（像素）
// 防止把地图完全平移出画面
const CameraSlack = 160.0
