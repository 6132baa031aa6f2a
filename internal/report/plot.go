package report

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"cpusim/internal/responses"
)

// PlotAverages builds a PNG bar chart of the average turnaround, waiting and
// response times of one run.
func PlotAverages(response responses.ScheduleResponse) (io.WriterTo, error) {
	p := plot.New()
	p.Title.Text = "Average times: " + response.Algorithm
	p.Y.Label.Text = "Time units"

	values := plotter.Values{
		response.AverageTurnAroundTime,
		response.AverageWaitingTime,
		response.AverageResponseTime,
	}
	bars, err := plotter.NewBarChart(values, vg.Points(50))
	if err != nil {
		return nil, err
	}
	p.Add(bars)
	p.NominalX("Turnaround", "Waiting", "Response")

	return p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
}
