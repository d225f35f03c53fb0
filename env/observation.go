package env

import (
	"git.fiblab.net/sim/drivesim/entity/sensor"
	"github.com/samber/lo"
)

// EncodeObservation 观测编码
// 功能：将传感器读数与车辆速度编码为归一化观测向量
// 参数：readings-射线读数，v-车辆速度，maxRange-传感器最大量程，maxSpeed-车辆最高速度
// 返回：长度为射线数+1的观测向量，各分量均在[0, 1]内
// 算法说明：
// 1. 各射线距离除以最大量程
// 2. 末位为速度除以最高速度，截断到[0, 1]（倒车按0处理）
func EncodeObservation(readings []sensor.Reading, v, maxRange, maxSpeed float64) []float64 {
	obs := lo.Map(readings, func(r sensor.Reading, _ int) float64 {
		return r.Distance / maxRange
	})
	return append(obs, lo.Clamp(v/maxSpeed, 0, 1))
}
