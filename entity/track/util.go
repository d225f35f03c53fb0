package track

import (
	"math"

	"git.fiblab.net/general/common/v2/geometry"
)

const (
	// 叉积绝对值小于该值时认为三点共线
	collinearEps = 1e-9
)

// Segment 线段
// 功能：表示一条由两个端点定义的线段
// 说明：仅作为相交测试的临时值使用，不做持久化
type Segment struct {
	A geometry.Point // 起点
	B geometry.Point // 终点
}

// cross2D 计算向量(b-a)与(c-a)的叉积z分量
func cross2D(a, b, c geometry.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// orientation 计算三点的方向关系
// 返回：0-共线，1-顺时针，2-逆时针
// 说明：叉积绝对值在collinearEps内视为共线，避免浮点噪声导致误判
func orientation(a, b, c geometry.Point) int {
	cross := cross2D(a, b, c)
	if math.Abs(cross) < collinearEps {
		return 0
	}
	if cross < 0 {
		return 1
	}
	return 2
}

// onSegment 检查共线点c是否落在线段ab的范围内
func onSegment(a, b, c geometry.Point) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect 检查两条线段是否相交
// 功能：标准四方向线段相交测试，带共线区间重叠回退
// 参数：s1/s2-待测线段
// 返回：true表示相交（包括端点接触与共线重叠）
// 算法说明：
// 1. 计算四组三点方向：o1=(s1,q1)，o2=(s1,q2)，o3=(s2,p1)，o4=(s2,p2)
// 2. o1≠o2且o3≠o4时两线段跨越彼此，相交
// 3. 某组方向为共线时，检查对应点是否落在线段范围内（区间重叠回退）
func segmentsIntersect(s1, s2 Segment) bool {
	o1 := orientation(s1.A, s1.B, s2.A)
	o2 := orientation(s1.A, s1.B, s2.B)
	o3 := orientation(s2.A, s2.B, s1.A)
	o4 := orientation(s2.A, s2.B, s1.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(s1.A, s1.B, s2.A) {
		return true
	}
	if o2 == 0 && onSegment(s1.A, s1.B, s2.B) {
		return true
	}
	if o3 == 0 && onSegment(s2.A, s2.B, s1.A) {
		return true
	}
	if o4 == 0 && onSegment(s2.A, s2.B, s1.B) {
		return true
	}
	return false
}
