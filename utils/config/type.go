package config

// VehicleAttr 车辆动力学属性配置
// 功能：定义车辆的固定物理参数，回合内不变
// 说明：速度/加速度单位与赛道坐标一致（像素/秒），转向速率单位为弧度/秒
type VehicleAttr struct {
	MaxSpeed           float64 `yaml:"max_speed,omitempty"`            // 最高前进速度
	MaxAccel           float64 `yaml:"max_accel,omitempty"`            // 油门满开时的加速度
	Drag               float64 `yaml:"drag,omitempty"`                 // 线性阻力系数（衰减与当前速度成正比）
	SteeringRate       float64 `yaml:"steering_rate,omitempty"`        // 满舵时的最大转向速率
	SteeringReturnRate float64 `yaml:"steering_return_rate,omitempty"` // 松开方向后舵角回中速率
	Length             float64 `yaml:"length,omitempty"`               // 车长
	Width              float64 `yaml:"width,omitempty"`                // 车宽
}

// TrackGen 赛道生成配置
// 功能：定义过程性赛道中心线的生成参数
// 说明：中心线为x严格递增的正弦波形，y被限制在窗口边距内
type TrackGen struct {
	NumPoints    int     `yaml:"num_points,omitempty"`    // 中心线点数
	XStart       float64 `yaml:"x_start,omitempty"`       // 起点x坐标
	XEnd         float64 `yaml:"x_end,omitempty"`         // 终点x坐标
	YMid         float64 `yaml:"y_mid,omitempty"`         // 波形中线y坐标
	Margin       float64 `yaml:"margin,omitempty"`        // y方向窗口边距
	WindowHeight float64 `yaml:"window_height,omitempty"` // 窗口高度
	AmplitudeMin float64 `yaml:"amplitude_min,omitempty"` // 振幅下界
	AmplitudeMax float64 `yaml:"amplitude_max,omitempty"` // 振幅上界
	WavesMin     float64 `yaml:"waves_min,omitempty"`     // 波数下界
	WavesMax     float64 `yaml:"waves_max,omitempty"`     // 波数上界
	RoadWidth    float64 `yaml:"road_width,omitempty"`    // 路宽
	SpawnAhead   float64 `yaml:"spawn_ahead,omitempty"`   // 出生点沿首段方向前移距离
}

// Sensor 测距传感器配置
// 功能：定义射线传感器扇面的形状与量程
type Sensor struct {
	NumRays        int     `yaml:"num_rays,omitempty"`        // 射线数量
	FOVDegrees     float64 `yaml:"fov_degrees,omitempty"`     // 扇面角度（度）
	MaxRange       float64 `yaml:"max_range,omitempty"`       // 最大探测距离
	DangerDistance float64 `yaml:"danger_distance,omitempty"` // 危险距离阈值
	FrontOffset    float64 `yaml:"front_offset,omitempty"`    // 射线原点沿车头方向的前移距离
}

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：控制仿真的时间范围、步长和精度
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数（回合截断步数）
	Interval float64 `yaml:"interval"` // 每步的时间间隔
}

// Control 模拟器控制配置
// 功能：定义仿真系统的核心控制参数
type Control struct {
	Step ControlStep `yaml:"step"`
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
// 说明：包含控制、车辆、赛道、传感器等所有配置项
type Config struct {
	Control Control     `yaml:"control"`           // 模拟过程控制
	Vehicle VehicleAttr `yaml:"vehicle,omitempty"` // 车辆动力学属性
	Track   TrackGen    `yaml:"track,omitempty"`   // 赛道生成参数
	Sensor  Sensor      `yaml:"sensor,omitempty"`  // 传感器参数
}
