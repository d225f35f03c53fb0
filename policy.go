package main

import (
	"git.fiblab.net/sim/drivesim/env"
	"git.fiblab.net/sim/drivesim/utils/config"
)

// cruisePolicy 传感器反射式巡航策略
// 功能：只根据传感器读数决定油门与转向的内置基线策略，
// 用于无渲染地驱动整个reset/step回合闭环
// 说明：完全确定性；正前方净空充足时满油门，临近边界时减速并转向较空的一侧
type cruisePolicy struct {
	cfg config.Sensor
}

func newCruisePolicy(cfg config.Sensor) *cruisePolicy {
	return &cruisePolicy{cfg: cfg}
}

// act 计算本步的控制输入
// 功能：读取当前传感器读数并产生(油门, 转向)
// 算法说明：
// 1. 中间射线为正前方净空，低于危险距离的1.5倍时松油，低于危险距离时刹车
// 2. 两侧任一半扇面的最小距离低于危险距离时，向平均净空更大的一侧满舵
// 3. 无转向指令时舵角按回中速率松回（模拟松开方向键）
func (p *cruisePolicy) act(e *env.Env) (throttle, steering float64) {
	readings := e.ReadSensors()
	mid := len(readings) / 2
	front := readings[mid].Distance

	// 索引小的射线在右侧（顺时针半扇面），索引大的在左侧
	rightMin, rightSum := front, .0
	for _, r := range readings[:mid] {
		rightSum += r.Distance
		if r.Distance < rightMin {
			rightMin = r.Distance
		}
	}
	leftMin, leftSum := front, .0
	for _, r := range readings[mid+1:] {
		leftSum += r.Distance
		if r.Distance < leftMin {
			leftMin = r.Distance
		}
	}

	switch {
	case front < p.cfg.DangerDistance:
		throttle = -1
	case front < 1.5*p.cfg.DangerDistance:
		throttle = 0
	default:
		throttle = 1
	}

	if rightMin < p.cfg.DangerDistance || leftMin < p.cfg.DangerDistance {
		if leftSum > rightSum {
			steering = 1
		} else {
			steering = -1
		}
	} else {
		v := e.Vehicle()
		v.RelaxSteering(e.Clock().DT)
		steering = v.Steering()
	}
	return throttle, steering
}
