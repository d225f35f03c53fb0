package config

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息，缺省项已填充默认值
// 说明：将YAML配置转换为运行时可用的配置对象
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，填充缺省配置项
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 创建运行时配置对象
// 2. 对所有未指定的配置项填充默认值（与原始实现保持一致的常数）
// 说明：确保配置的正确性和一致性，为仿真运行提供有效配置
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	if rc.C.Step.Interval == 0 {
		rc.C.Step.Interval = 1.0 / 60.0
	}
	if rc.C.Step.Total == 0 {
		rc.C.Step.Total = 1500
	}
	rc.All.Control = rc.C

	fillVehicleDefaults(&rc.All.Vehicle)
	fillTrackDefaults(&rc.All.Track)
	fillSensorDefaults(&rc.All.Sensor)

	return rc
}

func fillVehicleDefaults(v *VehicleAttr) {
	if v.MaxSpeed == 0 {
		v.MaxSpeed = 200
	}
	if v.MaxAccel == 0 {
		v.MaxAccel = 150
	}
	if v.Drag == 0 {
		v.Drag = 1.8
	}
	if v.SteeringRate == 0 {
		v.SteeringRate = 3
	}
	if v.SteeringReturnRate == 0 {
		v.SteeringReturnRate = 6
	}
	if v.Length == 0 {
		v.Length = 80
	}
	if v.Width == 0 {
		v.Width = 40
	}
}

func fillTrackDefaults(t *TrackGen) {
	if t.NumPoints == 0 {
		t.NumPoints = 80
	}
	if t.XStart == 0 {
		t.XStart = 80
	}
	if t.XEnd == 0 {
		t.XEnd = 720
	}
	if t.YMid == 0 {
		t.YMid = 320
	}
	if t.Margin == 0 {
		t.Margin = 80
	}
	if t.WindowHeight == 0 {
		t.WindowHeight = 600
	}
	if t.AmplitudeMin == 0 {
		t.AmplitudeMin = 70
	}
	if t.AmplitudeMax == 0 {
		t.AmplitudeMax = 130
	}
	if t.WavesMin == 0 {
		t.WavesMin = 0.6
	}
	if t.WavesMax == 0 {
		t.WavesMax = 1.2
	}
	if t.RoadWidth == 0 {
		t.RoadWidth = 110
	}
	if t.SpawnAhead == 0 {
		t.SpawnAhead = 60
	}
}

func fillSensorDefaults(s *Sensor) {
	if s.NumRays == 0 {
		s.NumRays = 9
	}
	if s.FOVDegrees == 0 {
		s.FOVDegrees = 180
	}
	if s.MaxRange == 0 {
		s.MaxRange = 220
	}
	if s.DangerDistance == 0 {
		s.DangerDistance = 50
	}
	if s.FrontOffset == 0 {
		s.FrontOffset = 40
	}
}
