package env

import (
	"git.fiblab.net/sim/drivesim/clock"
	"git.fiblab.net/sim/drivesim/entity/sensor"
	"git.fiblab.net/sim/drivesim/entity/track"
	"git.fiblab.net/sim/drivesim/entity/vehicle"
	"git.fiblab.net/sim/drivesim/utils/config"
	"git.fiblab.net/sim/drivesim/utils/randengine"
)

// 回合结束事件
const (
	EventFinish   = "finish"    // 穿越终点线
	EventOffTrack = "off_track" // 驶出道路
	EventTimeout  = "timeout"   // 达到截断步数
)

// StepResult 单步推进结果
// 功能：描述一次Step调用后的完整回报
type StepResult struct {
	Observation []float64 // 归一化观测（各射线距离+速度）
	Reward      float64   // 本步奖励
	Terminated  bool      // 回合是否终止（出界或到达终点）
	Truncated   bool      // 回合是否因步数上限被截断
	OnRoad      bool      // 车辆是否仍在道路内
	Finish      bool      // 本步是否穿越终点线
	Event       string    // 结束事件（finish/off_track/timeout），未结束为空
}

// Env 驾驶仿真环境
// 功能：组合车辆、赛道、传感器与时钟，提供reset/step回合驱动接口
// 说明：每个实例持有独立状态，实例间无共享可变状态，
// 多个实例可在不同goroutine中并发驱动而无需加锁；
// 相同种子与相同动作序列下轨迹与所有布尔结果逐位复现
type Env struct {
	cfg *config.RuntimeConfig

	vehicle *vehicle.Vehicle
	track   *track.Track
	sensors *sensor.Array
	clock   *clock.Clock
}

// New 创建驾驶仿真环境
// 功能：根据运行时配置初始化环境的所有组件
// 参数：rc-运行时配置
// 返回：初始化完成的Env实例（尚未生成赛道，使用前必须先Reset）
func New(rc *config.RuntimeConfig) *Env {
	return &Env{
		cfg:     rc,
		vehicle: vehicle.New(rc.All.Vehicle),
		sensors: sensor.New(rc.All.Sensor),
		clock:   clock.New(rc.C.Step),
	}
}

// Reset 开始新回合
// 功能：按种子生成新赛道，将车辆重置到出生位姿，时钟归零
// 参数：seed-赛道生成种子
// 返回：初始观测
// 说明：相同种子生成完全相同的赛道与出生位姿
func (e *Env) Reset(seed uint64) []float64 {
	engine := randengine.New(seed)
	e.track = track.Generate(engine, e.cfg.All.Track)
	x, y, angle := e.track.SpawnPose(e.cfg.All.Track.SpawnAhead)
	e.vehicle.Reset(x, y, angle)
	e.clock.Init()
	log.Debugf("reset: seed %d, spawn (%.1f, %.1f, %.3f)", seed, x, y, angle)
	return e.observe()
}

// Step 推进一个控制步
// 功能：写入油门/转向输入，推进车辆动力学，判定在路与终点穿越，计算奖励
// 参数：throttle-油门∈[-1,1]，steering-转向∈[-1,1]
// 返回：本步推进结果
// 算法说明：
// 1. 截断输入并写入车辆
// 2. 记录旧车头参考点，推进dt，记录新车头参考点
// 3. 终点穿越用新旧车头点的扫掠线段判定；在路判定用包围盒四角
// 4. 奖励 = 0.01 + 0.1*v/maxSpeed，出界-20，到达终点+100
// 5. 终止 = 出界或到达终点（两者同时发生按到达终点计）；
//    截断 = 时钟到达步数上限
func (e *Env) Step(throttle, steering float64) StepResult {
	if e.track == nil {
		log.Panic("env: Step called before Reset")
	}
	e.vehicle.SetControls(throttle, steering)

	frontOld := e.vehicle.FrontPoint()
	e.vehicle.Step(e.clock.DT)
	frontNew := e.vehicle.FrontPoint()

	finish := e.track.HasCrossedFinish(frontOld, frontNew)
	onRoad := e.track.IsVehicleOnRoad(e.vehicle)

	reward := 0.01 + 0.1*e.vehicle.V()/e.vehicle.Attr().MaxSpeed
	if !onRoad {
		reward -= 20
	}
	if finish {
		reward += 100
	}

	e.clock.Tick()
	terminated := finish || !onRoad
	truncated := !terminated && e.clock.Done()

	event := ""
	switch {
	case finish:
		event = EventFinish
	case !onRoad:
		event = EventOffTrack
	case truncated:
		event = EventTimeout
	}

	return StepResult{
		Observation: e.observe(),
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   truncated,
		OnRoad:      onRoad,
		Finish:      finish,
		Event:       event,
	}
}

// observe 生成当前观测
func (e *Env) observe() []float64 {
	readings := e.sensors.Cast(e.vehicle, e.track)
	return EncodeObservation(readings, e.vehicle.V(), e.sensors.Config().MaxRange, e.vehicle.Attr().MaxSpeed)
}

// getter

// 获取环境中的车辆
func (e *Env) Vehicle() *vehicle.Vehicle {
	return e.vehicle
}

// 获取当前回合的赛道（Reset前为nil）
func (e *Env) Track() *track.Track {
	return e.track
}

// 获取传感器阵列
func (e *Env) Sensors() *sensor.Array {
	return e.sensors
}

// 获取环境时钟
func (e *Env) Clock() *clock.Clock {
	return e.clock
}

// ReadSensors 读取当前传感器读数
// 功能：按当前位姿与赛道重新投射全部射线（供外部渲染/策略消费）
func (e *Env) ReadSensors() []sensor.Reading {
	if e.track == nil {
		log.Panic("env: ReadSensors called before Reset")
	}
	return e.sensors.Cast(e.vehicle, e.track)
}
