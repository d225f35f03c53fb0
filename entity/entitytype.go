package entity

import (
	"git.fiblab.net/general/common/v2/geometry"
)

// entity/vehicle/vehicle.go的依赖倒置
// 赛道与传感器通过该接口读取车辆位姿，不依赖具体车辆类型
type IVehicle interface {
	X() float64     // 获取车辆中心x坐标
	Y() float64     // 获取车辆中心y坐标
	Angle() float64 // 获取车辆朝向（弧度，0沿+x方向，逆时针为正）
	V() float64     // 获取车辆速度（前进为正）

	FrontPoint() geometry.Point             // 获取车头参考点（中心沿朝向前移半车长）
	BoundingBoxVertices() [4]geometry.Point // 获取车辆包围盒四角的世界坐标
}
