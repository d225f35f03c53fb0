package main

import (
	"encoding/base64"
	"flag"
	"os"

	"git.fiblab.net/sim/drivesim/env"
	"git.fiblab.net/sim/drivesim/utils/config"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	// 配置文件路径，为空则使用内置默认配置
	configPath = flag.String("config", "", "config file path (empty means built-in defaults)")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 赛道生成起始种子，第i个回合使用seed+i
	seed = flag.Uint64("seed", 0, "base seed for track generation (episode i uses seed+i)")
	// 回合数
	episodes = flag.Int("episodes", 10, "number of episodes to run")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "drivesim")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	var c config.Config
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	}
	if file != nil {
		if err := yaml.UnmarshalStrict(file, &c); err != nil {
			log.Panicf("config file load err: %v", err)
		}
	}
	rc := config.NewRuntimeConfig(c)
	log.Infof("%+v", rc.All)

	e := env.New(rc)
	policy := newCruisePolicy(rc.All.Sensor)

	finished := 0
	for i := 0; i < *episodes; i++ {
		episodeSeed := *seed + uint64(i)
		e.Reset(episodeSeed)
		totalReward := .0
		for {
			throttle, steering := policy.act(e)
			result := e.Step(throttle, steering)
			totalReward += result.Reward
			if result.Terminated || result.Truncated {
				if result.Event == env.EventFinish {
					finished++
				}
				log.Infof("episode %d (seed %d): %s after %d steps (%s), v=%.1f, reward=%.2f",
					i, episodeSeed, result.Event, e.Clock().Steps(), e.Clock(), e.Vehicle().V(), totalReward)
				break
			}
		}
	}
	log.Infof("finished %d/%d episodes", finished, *episodes)
}
