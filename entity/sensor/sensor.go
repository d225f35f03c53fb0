package sensor

import (
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/drivesim/entity"
	"git.fiblab.net/sim/drivesim/entity/track"
	"git.fiblab.net/sim/drivesim/utils/config"
)

const (
	// 行列式绝对值小于该值时认为射线与线段平行，无交点
	parallelEps = 1e-9
)

// Reading 单条射线的测距读数
// 功能：描述一条射线的投射结果
// 说明：每步重新计算的临时值对象，不做持久化；HitPoint为nil表示量程内无命中
type Reading struct {
	Origin   geometry.Point  // 射线原点
	End      geometry.Point  // 射线终点（命中点，或无命中时沿方向取最大量程处）
	Distance float64         // 测得距离
	HitPoint *geometry.Point // 命中点，nil表示无命中
}

// Array 测距传感器阵列
// 功能：从车头向赛道边界投射一组扇形射线，产生近旁边界的距离读数
// 说明：完全无状态，每次调用都由当前位姿与赛道重新计算，不做跨步缓存
type Array struct {
	cfg config.Sensor // 传感器配置
}

// New 创建传感器阵列
// 功能：根据配置初始化传感器阵列
// 参数：cfg-传感器配置
// 返回：初始化完成的Array实例
func New(cfg config.Sensor) *Array {
	if cfg.NumRays <= 0 || cfg.MaxRange <= 0 {
		log.Panicf("sensor: bad config %+v", cfg)
	}
	return &Array{cfg: cfg}
}

// 获取传感器配置
func (a *Array) Config() config.Sensor {
	return a.cfg
}

// rayDirections 计算各射线的单位方向向量
// 功能：以车辆朝向为中心，在fov角度范围内对称展开numRays条射线
// 参数：angle-车辆朝向
// 返回：numRays个单位方向向量
// 说明：numRays为1时退化为正前方单条射线
func (a *Array) rayDirections(angle float64) []geometry.Point {
	if a.cfg.NumRays <= 1 {
		return []geometry.Point{{X: math.Cos(angle), Y: math.Sin(angle)}}
	}
	halfFOV := a.cfg.FOVDegrees * math.Pi / 180 / 2
	step := 2 * halfFOV / float64(a.cfg.NumRays-1)
	directions := make([]geometry.Point, a.cfg.NumRays)
	for i := range directions {
		rayAngle := angle - halfFOV + step*float64(i)
		directions[i] = geometry.Point{X: math.Cos(rayAngle), Y: math.Sin(rayAngle)}
	}
	return directions
}

// raySegmentIntersection 射线与线段求交
// 功能：参数化求解射线与线段的交点
// 参数：origin-射线原点，dir-射线单位方向，seg-目标线段
// 返回：射线参数t（即距离）与命中点；ok为false表示无有效交点
// 算法说明：
// 1. 解 origin + t*dir = seg.A + u*(seg.B-seg.A)，用叉积消元
// 2. 行列式接近零时射线与线段平行，无交点（确定性回退，不抛错）
// 3. 有效命中要求 t∈[0, maxRange] 且 u∈[0, 1]
func (a *Array) raySegmentIntersection(origin, dir geometry.Point, seg track.Segment) (t float64, hit geometry.Point, ok bool) {
	s := geometry.Point{X: seg.B.X - seg.A.X, Y: seg.B.Y - seg.A.Y}
	denominator := dir.X*s.Y - dir.Y*s.X
	if math.Abs(denominator) < parallelEps {
		return 0, geometry.Point{}, false
	}
	qp := geometry.Point{X: seg.A.X - origin.X, Y: seg.A.Y - origin.Y}
	t = (qp.X*s.Y - qp.Y*s.X) / denominator
	u := (qp.X*dir.Y - qp.Y*dir.X) / denominator
	if t < 0 || t > a.cfg.MaxRange || u < 0 || u > 1 {
		return 0, geometry.Point{}, false
	}
	return t, geometry.Point{X: origin.X + t*dir.X, Y: origin.Y + t*dir.Y}, true
}

// Cast 投射全部射线
// 功能：从车头前移frontOffset处的原点，向所有边界线段投射射线，
// 每条射线保留参数t最小的命中
// 参数：v-车辆，tr-赛道
// 返回：按射线顺序排列的读数列表
// 说明：无命中的射线距离取最大量程，终点取沿方向最大量程处，命中点为nil
func (a *Array) Cast(v entity.IVehicle, tr *track.Track) []Reading {
	angle := v.Angle()
	origin := geometry.Point{
		X: v.X() + math.Cos(angle)*a.cfg.FrontOffset,
		Y: v.Y() + math.Sin(angle)*a.cfg.FrontOffset,
	}
	segments := tr.BorderSegments()
	directions := a.rayDirections(angle)

	readings := make([]Reading, 0, len(directions))
	for _, dir := range directions {
		closestDistance := a.cfg.MaxRange
		var closestPoint *geometry.Point

		for _, seg := range segments {
			t, hit, ok := a.raySegmentIntersection(origin, dir, seg)
			if !ok {
				continue
			}
			if t < closestDistance {
				closestDistance = t
				hitCopy := hit
				closestPoint = &hitCopy
			}
		}

		reading := Reading{
			Origin:   origin,
			Distance: closestDistance,
			HitPoint: closestPoint,
		}
		if closestPoint == nil {
			reading.End = geometry.Point{
				X: origin.X + dir.X*a.cfg.MaxRange,
				Y: origin.Y + dir.Y*a.cfg.MaxRange,
			}
		} else {
			reading.End = *closestPoint
		}
		readings = append(readings, reading)
	}
	return readings
}
