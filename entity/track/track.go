package track

import (
	"fmt"
	"math"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/drivesim/entity"
	"github.com/samber/lo"
)

const (
	// 法线求和长度小于该值时认为相邻两段几乎反向，退回到邻段法线
	normalEps = 1e-9
)

// Track 赛道实体
// 功能：表示一条由中心线与路宽定义的道路，派生左右边界、终点线、
// 在路判定与穿越终点判定
// 说明：回合开始时构造，回合内不可变；边界等派生量均为按需计算的纯函数，
// 不做跨步缓存
type Track struct {
	line        []geometry.Point // 中心线折线
	lineLengths []float64        // 中心线折线点对应的长度列表
	roadWidth   float64          // 路宽
}

// New 创建并初始化一个新的Track实例
// 功能：根据中心线与路宽创建赛道，计算中心线长度表
// 参数：centerline-中心线折线（至少2个点），roadWidth-路宽（必须为正）
// 返回：初始化完成的Track实例，输入非法时返回错误
func New(centerline []geometry.Point, roadWidth float64) (*Track, error) {
	if len(centerline) < 2 {
		return nil, fmt.Errorf("track: centerline must contain at least two points, got %d", len(centerline))
	}
	if roadWidth <= 0 {
		return nil, fmt.Errorf("track: road width must be positive, got %f", roadWidth)
	}
	t := &Track{
		line:      centerline,
		roadWidth: roadWidth,
	}
	t.lineLengths = geometry.GetPolylineLengths2D(t.line)
	return t, nil
}

// 获取赛道中心线
func (t *Track) CenterLine() []geometry.Point {
	return t.line
}

// 获取赛道路宽
func (t *Track) RoadWidth() float64 {
	return t.roadWidth
}

// 获取赛道中心线长度
func (t *Track) Length() float64 {
	return t.lineLengths[len(t.lineLengths)-1]
}

// Borders 计算赛道左右边界
// 功能：将中心线沿顶点法线向两侧各偏移半路宽，得到左右边界折线
// 返回：左边界与右边界，点数均等于中心线点数
// 算法说明：
// 1. 对每条中心线线段计算垂直于其方向的单位法线（方向角+π/2）
// 2. 内部顶点的法线取相邻两段法线之和的归一化（角平分线近似）；
//    若求和长度接近零（相邻两段几乎反向）则退回到邻段法线，避免除零
// 3. 端点直接取唯一邻段的法线
// 4. 左边界 = 中心线点 + 法线*路宽/2，右边界 = 中心线点 - 法线*路宽/2
func (t *Track) Borders() (left, right []geometry.Point) {
	normals := make([]geometry.Point, len(t.line)-1)
	for i := 0; i < len(t.line)-1; i++ {
		angle := math.Atan2(t.line[i+1].Y-t.line[i].Y, t.line[i+1].X-t.line[i].X)
		normalAngle := angle + math.Pi/2
		normals[i] = geometry.Point{X: math.Cos(normalAngle), Y: math.Sin(normalAngle)}
	}

	left = make([]geometry.Point, len(t.line))
	right = make([]geometry.Point, len(t.line))
	halfWidth := t.roadWidth / 2
	for i, p := range t.line {
		var normal geometry.Point
		switch {
		case i == 0:
			normal = normals[0]
		case i == len(t.line)-1:
			normal = normals[len(normals)-1]
		default:
			normal = geometry.Point{
				X: normals[i-1].X + normals[i].X,
				Y: normals[i-1].Y + normals[i].Y,
			}
			if length := math.Hypot(normal.X, normal.Y); length > normalEps {
				normal.X /= length
				normal.Y /= length
			} else {
				// 相邻两段几乎反向，角平分线退化，退回到邻段法线
				normal = normals[i]
			}
		}
		left[i] = geometry.Point{X: p.X + normal.X*halfWidth, Y: p.Y + normal.Y*halfWidth}
		right[i] = geometry.Point{X: p.X - normal.X*halfWidth, Y: p.Y - normal.Y*halfWidth}
	}
	return left, right
}

// BorderSegments 获取边界线段集合
// 功能：将左右边界的相邻点连成线段并拼接，作为射线投射的障碍集合
// 返回：左边界线段在前、右边界线段在后的线段列表
func (t *Track) BorderSegments() []Segment {
	left, right := t.Borders()
	segments := make([]Segment, 0, 2*(len(t.line)-1))
	for _, border := range [][]geometry.Point{left, right} {
		for i := 0; i < len(border)-1; i++ {
			segments = append(segments, Segment{A: border[i], B: border[i+1]})
		}
	}
	return segments
}

// FinishSegment 获取终点线
// 功能：计算连接左边界末点与右边界末点的横向线段
// 返回：终点线段，始终位于赛道末端
func (t *Track) FinishSegment() Segment {
	left, right := t.Borders()
	return Segment{A: left[len(left)-1], B: right[len(right)-1]}
}

// HasCrossedFinish 检查相邻两步之间是否穿越终点线
// 功能：判断被跟踪点（车头参考点）在相邻两步位置之间的直线路径
// 是否与终点线相交
// 参数：pPrev-上一步位置，pNext-本步位置
// 返回：true表示本步穿越了终点线
// 说明：使用两步之间的扫掠线段而非单点区域判定，
// 高速时车头参考点一步就可能跳过终点线（隧穿），单点判定会漏检
func (t *Track) HasCrossedFinish(pPrev, pNext geometry.Point) bool {
	return segmentsIntersect(Segment{A: pPrev, B: pNext}, t.FinishSegment())
}

// IsPointOnRoad 检查点是否在道路区域内
// 功能：判断点到中心线的最小垂直距离是否小于半路宽
// 参数：p-待检测的点
// 返回：true表示点在道路内（恰好落在边界上视为出界）
// 说明：将道路视为中心线周围固定半径的管状区域（各线段上投影参数
// 截断到[0,1]），在急弯自交处仍然稳健
func (t *Track) IsPointOnRoad(p geometry.Point) bool {
	s := geometry.GetClosestPolylineSToPoint2D(t.line, t.lineLengths, p)
	closest := t.getPositionByS(s)
	return math.Hypot(p.X-closest.X, p.Y-closest.Y) < t.roadWidth/2
}

// IsVehicleOnRoad 检查车辆是否完全在道路内
// 功能：判断车辆包围盒四个角点是否都通过IsPointOnRoad
// 参数：v-车辆
// 返回：true表示车辆完全在道路内
func (t *Track) IsVehicleOnRoad(v entity.IVehicle) bool {
	for _, vertex := range v.BoundingBoxVertices() {
		if !t.IsPointOnRoad(vertex) {
			return false
		}
	}
	return true
}

// getPositionByS 将中心线s坐标转换为xy坐标
// 功能：在中心线折线上按弧长插值出坐标
// 说明：s超出范围时截断到[0, 长度]；相邻长度差接近零时退回到前一点，避免除零
func (t *Track) getPositionByS(s float64) (pos geometry.Point) {
	last := t.lineLengths[len(t.lineLengths)-1]
	if s < 0 || s > last {
		log.Debugf("get position with s %v out of range{0,%v}", s, last)
		s = lo.Clamp(s, 0, last)
	}
	if i := sort.SearchFloat64s(t.lineLengths, s); i == 0 {
		pos = t.line[0]
	} else {
		sHigh, sLow := t.lineLengths[i], t.lineLengths[i-1]
		if sHigh-sLow < normalEps {
			pos = t.line[i-1]
		} else {
			k := (s - sLow) / (sHigh - sLow)
			pos = geometry.Blend(t.line[i-1], t.line[i], k)
		}
	}
	return
}
