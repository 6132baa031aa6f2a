package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpusim/api"
	"cpusim/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	group := app.Group("/api")

	v1 := group.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/preemptive-priority", handler.PreemptivePriority)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/report/:algorithm", handler.Report)
		v1.Post("/workload", handler.GenerateWorkload)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
