package vehicle

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/drivesim/utils/config"
	"github.com/samber/lo"
)

const (
	// 速度小于该阈值时认为车辆静止：不再产生转向、阻力衰减视为收敛
	standstillV = 1e-3
)

// Vehicle 车辆实体
// 功能：维护车辆位姿与运动状态，按油门/转向输入推进运动学
// 说明：固定属性在构造时确定，回合内不变；位姿与速度由Step原地更新，
// 每个回合开始时通过Reset清零。给定相同输入序列与dt，结果完全确定
type Vehicle struct {
	attr config.VehicleAttr // 车辆固定属性

	x, y     float64 // 车辆中心坐标
	angle    float64 // 朝向（弧度，0沿+x方向，逆时针为正）
	velocity float64 // 速度，前进为正

	throttle float64 // 当前油门，[-1, 1]
	steering float64 // 当前转向，[-1, 1]
}

// New 创建并初始化一个新的Vehicle实例
// 功能：根据属性配置创建车辆，位姿与输入全部为零
// 参数：attr-车辆固定属性
// 返回：初始化完成的Vehicle实例
func New(attr config.VehicleAttr) *Vehicle {
	if attr.MaxSpeed <= 0 || attr.Length <= 0 || attr.Width <= 0 {
		log.Panicf("vehicle: bad attr %+v", attr)
	}
	return &Vehicle{attr: attr}
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle{x=%.2f, y=%.2f, angle=%.3f, v=%.2f}", v.x, v.y, v.angle, v.velocity)
}

// Reset 重置车辆到指定位姿
// 功能：设置位姿，速度与油门/转向输入清零，固定属性保持不变
// 参数：x/y-车辆中心坐标，angle-朝向
func (v *Vehicle) Reset(x, y, angle float64) {
	v.x = x
	v.y = y
	v.angle = angle
	v.velocity = 0
	v.throttle = 0
	v.steering = 0
}

// SetControls 设置本步的油门与转向输入
// 功能：写入控制输入，超出[-1, 1]的部分截断
// 参数：throttle-油门，steering-转向
func (v *Vehicle) SetControls(throttle, steering float64) {
	v.throttle = lo.Clamp(throttle, -1, 1)
	v.steering = lo.Clamp(steering, -1, 1)
}

// Step 推进车辆状态dt秒
// 功能：按当前油门/转向输入更新速度、朝向与位置
// 参数：dt-时间步长（秒）
// 算法说明：
// 1. 加速度：accel = throttle * maxAccel，v += accel * dt
// 2. 线性阻力：v -= drag * v * dt，衰减与当前速度成正比，
//    油门为零时速度向零指数松弛（有限步内不会精确归零，降到1e-3以下视为收敛）
// 3. 速度截断到[-maxSpeed/2, maxSpeed]（倒车上限为前进上限的一半）
// 4. |v|大于1e-3时转向：angle += steering * steeringRate * (|v|/maxSpeed) * dt，
//    转向权重随速度比例线性缩放，静止时为零，避免原地打转
// 5. 显式欧拉积分位置：x += cos(angle)*v*dt，y += sin(angle)*v*dt
func (v *Vehicle) Step(dt float64) {
	accel := v.throttle * v.attr.MaxAccel
	v.velocity += accel * dt
	v.velocity -= v.attr.Drag * v.velocity * dt

	v.velocity = lo.Clamp(v.velocity, -v.attr.MaxSpeed/2, v.attr.MaxSpeed)

	if math.Abs(v.velocity) > standstillV {
		steerScale := math.Abs(v.velocity) / v.attr.MaxSpeed
		v.angle += v.steering * v.attr.SteeringRate * steerScale * dt
	}

	v.x += math.Cos(v.angle) * v.velocity * dt
	v.y += math.Sin(v.angle) * v.velocity * dt
}

// RelaxSteering 舵角回中
// 功能：本步没有转向指令时，将舵角以steeringReturnRate向零回退，不过冲
// 参数：dt-时间步长（秒）
func (v *Vehicle) RelaxSteering(dt float64) {
	if v.steering > 0 {
		v.steering = math.Max(0, v.steering-v.attr.SteeringReturnRate*dt)
	} else if v.steering < 0 {
		v.steering = math.Min(0, v.steering+v.attr.SteeringReturnRate*dt)
	}
}

// FrontPoint 获取车头参考点
// 功能：计算中心沿朝向前移半车长的点
// 返回：车头参考点坐标
// 说明：既是传感器原点的锚点，也是终点线穿越检测所跟踪的点
func (v *Vehicle) FrontPoint() geometry.Point {
	half := v.attr.Length / 2
	return geometry.Point{
		X: v.x + math.Cos(v.angle)*half,
		Y: v.y + math.Sin(v.angle)*half,
	}
}

// BoundingBoxVertices 获取车辆包围盒四角的世界坐标
// 功能：计算以位姿为中心、按朝向旋转的长x宽矩形的四个角点
// 返回：四角坐标（前右、前左、后左、后右）
// 说明：用于道路包含性检测
func (v *Vehicle) BoundingBoxVertices() [4]geometry.Point {
	halfL := v.attr.Length / 2
	halfW := v.attr.Width / 2
	cos := math.Cos(v.angle)
	sin := math.Sin(v.angle)
	local := [4][2]float64{
		{halfL, -halfW},
		{halfL, halfW},
		{-halfL, halfW},
		{-halfL, -halfW},
	}
	var vertices [4]geometry.Point
	for i, p := range local {
		vertices[i] = geometry.Point{
			X: v.x + p[0]*cos - p[1]*sin,
			Y: v.y + p[0]*sin + p[1]*cos,
		}
	}
	return vertices
}

// getter

// 获取车辆中心x坐标
func (v *Vehicle) X() float64 {
	return v.x
}

// 获取车辆中心y坐标
func (v *Vehicle) Y() float64 {
	return v.y
}

// 获取车辆朝向
func (v *Vehicle) Angle() float64 {
	return v.angle
}

// 获取车辆速度
func (v *Vehicle) V() float64 {
	return v.velocity
}

// 获取当前油门
func (v *Vehicle) Throttle() float64 {
	return v.throttle
}

// 获取当前转向
func (v *Vehicle) Steering() float64 {
	return v.steering
}

// 获取车辆固定属性
func (v *Vehicle) Attr() config.VehicleAttr {
	return v.attr
}
