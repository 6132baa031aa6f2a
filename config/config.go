package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type WorkloadConfig struct {
	Count       int
	ArrivalMin  int
	ArrivalMax  int
	BurstMin    int
	BurstMax    int
	PriorityMin int
	PriorityMax int
}

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	Workload                                 WorkloadConfig
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalln(err)
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.MultilevelFeedbackQueueLevelsTimeQuantum = viper.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
		config.Workload = WorkloadConfig{
			Count:       viper.GetInt("workload.count"),
			ArrivalMin:  viper.GetInt("workload.arrival.min"),
			ArrivalMax:  viper.GetInt("workload.arrival.max"),
			BurstMin:    viper.GetInt("workload.burst.min"),
			BurstMax:    viper.GetInt("workload.burst.max"),
			PriorityMin: viper.GetInt("workload.priority.min"),
			PriorityMax: viper.GetInt("workload.priority.max"),
		}
	})

	return config
}
