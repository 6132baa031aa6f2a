package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"cpusim/config"
	"cpusim/internal/responses"
)

func newTestApp() *fiber.App {
	cfg := &config.SchedulerConfig{
		Port:                                     9095,
		RoundRobinTimeQuantum:                    3,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{2, 4, 8},
		Workload: config.WorkloadConfig{
			Count:      5,
			ArrivalMin: 0, ArrivalMax: 10,
			BurstMin: 1, BurstMax: 10,
			PriorityMin: 1, PriorityMax: 5,
		},
	}
	handler := NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/all", handler.AllAlgorithms)
	v1.Post("/report/:algorithm", handler.Report)
	v1.Post("/workload", handler.GenerateWorkload)
	return app
}

func postJSON(app *fiber.App, path, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		return nil, err
	}
	recorder := httptest.NewRecorder()
	recorder.Code = res.StatusCode
	if _, err := io.Copy(recorder.Body, res.Body); err != nil {
		return nil, err
	}
	return recorder, nil
}

func TestHandler_FirstComeFirstServe(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	rr, err := postJSON(app, "/api/v1/fcfs", `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":5},
		{"process_id":2,"arrival_time":1,"burst_time":3}
	]}`)
	ass.NoError(err)
	ass.Equal(fiber.StatusOK, rr.Code)

	var response responses.ScheduleResponse
	ass.NoError(json.Unmarshal(rr.Body.Bytes(), &response))
	ass.Equal("fcfs", response.Algorithm)
	ass.Equal(2, response.Throughput)
	ass.Equal(8, response.TotalTime)
	ass.Len(response.Timeline, 2)
}

func TestHandler_RejectsInvalidJobs(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	tests := []struct {
		name string
		path string
		body string
	}{
		{
			name: "non-positive burst time",
			path: "/api/v1/fcfs",
			body: `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`,
		},
		{
			name: "negative quantum",
			path: "/api/v1/rr",
			body: `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":5}],"time_quantum":-1}`,
		},
		{
			name: "malformed body",
			path: "/api/v1/fcfs",
			body: `{"jobs":`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, err := postJSON(app, tt.path, tt.body)
			ass.NoError(err)
			ass.Equal(fiber.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandler_RoundRobinUsesConfiguredQuantum(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	rr, err := postJSON(app, "/api/v1/rr", `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":10}
	]}`)
	ass.NoError(err)
	ass.Equal(fiber.StatusOK, rr.Code)

	var response responses.ScheduleResponse
	ass.NoError(json.Unmarshal(rr.Body.Bytes(), &response))
	// quantum 3 from config: 10 units split into 3+3+3+1
	ass.Len(response.Timeline, 4)
	ass.Equal(3, response.Timeline[0].Duration)
}

func TestHandler_AllAlgorithms(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	rr, err := postJSON(app, "/api/v1/all", `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":5,"priority":2},
		{"process_id":2,"arrival_time":1,"burst_time":3,"priority":1}
	]}`)
	ass.NoError(err)
	ass.Equal(fiber.StatusOK, rr.Code)

	var results []responses.ScheduleResponse
	ass.NoError(json.Unmarshal(rr.Body.Bytes(), &results))
	ass.Len(results, 7)
	for _, result := range results {
		ass.Equal(2, result.Throughput)
	}
}

func TestHandler_Report(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	rr, err := postJSON(app, "/api/v1/report/fcfs", `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":5}
	]}`)
	ass.NoError(err)
	ass.Equal(fiber.StatusOK, rr.Code)
	ass.Contains(rr.Body.String(), "Gantt schedule")

	rr, err = postJSON(app, "/api/v1/report/lottery", `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":5}
	]}`)
	ass.NoError(err)
	ass.Equal(fiber.StatusBadRequest, rr.Code)
}

func TestHandler_GenerateWorkload(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	// empty body falls back to the configured defaults
	rr, err := postJSON(app, "/api/v1/workload", "")
	ass.NoError(err)
	ass.Equal(fiber.StatusOK, rr.Code)

	var response responses.WorkloadResponse
	ass.NoError(json.Unmarshal(rr.Body.Bytes(), &response))
	ass.Len(response.Jobs, 5)
	ass.NotZero(response.Seed)

	rr, err = postJSON(app, "/api/v1/workload", `{"count":0,"burst_min":1,"burst_max":5,"arrival_max":5,"priority_min":1,"priority_max":3}`)
	ass.NoError(err)
	ass.Equal(fiber.StatusBadRequest, rr.Code)
}
