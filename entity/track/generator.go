package track

import (
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/drivesim/utils/config"
	"git.fiblab.net/sim/drivesim/utils/randengine"
	"github.com/samber/lo"
)

// Generate 过程性生成一条新赛道
// 功能：按配置生成正弦波形中心线并构造Track，每个回合生成一条独一无二的赛道
// 参数：e-随机数引擎（决定振幅与波数），cfg-赛道生成配置
// 返回：生成的Track实例
// 算法说明：
// 1. 从均匀分布采样振幅A~U[amplitudeMin, amplitudeMax)与波数W~U[wavesMin, wavesMax)
// 2. x在[xStart, xEnd]上等距取numPoints个点，严格递增
// 3. y = yMid + A*sin(2π*W*t)，t∈[0,1]，并截断到[margin, windowHeight-margin]
// 说明：相同种子的引擎生成的赛道逐位一致
func Generate(e *randengine.Engine, cfg config.TrackGen) *Track {
	amplitude := e.UniformRange(cfg.AmplitudeMin, cfg.AmplitudeMax)
	waves := e.UniformRange(cfg.WavesMin, cfg.WavesMax)

	points := make([]geometry.Point, cfg.NumPoints)
	for i := 0; i < cfg.NumPoints; i++ {
		t := float64(i) / float64(cfg.NumPoints-1)
		x := cfg.XStart + (cfg.XEnd-cfg.XStart)*t
		y := cfg.YMid + amplitude*math.Sin(2*math.Pi*waves*t)
		y = lo.Clamp(y, cfg.Margin, cfg.WindowHeight-cfg.Margin)
		points[i] = geometry.Point{X: x, Y: y}
	}

	t, err := New(points, cfg.RoadWidth)
	if err != nil {
		// 配置合法时不可能发生
		log.Panicf("track: generate: %v", err)
	}
	return t
}

// SpawnPose 计算赛道上的出生位姿
// 功能：取中心线首段方向作为初始朝向，出生点沿该方向从首点前移ahead
// 参数：ahead-前移距离
// 返回：出生点x/y坐标与初始朝向
func (t *Track) SpawnPose(ahead float64) (x, y, angle float64) {
	start := t.line[0]
	next := t.line[1]
	angle = math.Atan2(next.Y-start.Y, next.X-start.X)
	x = start.X + math.Cos(angle)*ahead
	y = start.Y + math.Sin(angle)*ahead
	return x, y, angle
}
