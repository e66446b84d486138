// Package render produces the chart artifacts for a pipeline run.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/weather-viz/internal/domain"
)

// Fixed artifact filenames, written into the output directory.
const (
	TemperatureTrendFile    = "temperature_trend.png"
	MonthlyRainfallFile     = "monthly_rainfall.png"
	HumidityTemperatureFile = "humidity_vs_temperature.png"
	CombinedFile            = "combined_plot.png"
)

// colorOrange is the trend line color; the bar and scatter charts use the
// stock go-chart blue.
var colorOrange = drawing.Color{R: 255, G: 127, B: 14, A: 255}

// Artifacts holds the on-disk paths of the rendered charts.
type Artifacts struct {
	TemperatureTrend    string
	MonthlyRainfall     string
	HumidityTemperature string
	Combined            string
}

// Renderer renders chart PNGs into an output directory and optionally opens
// each one in the platform image viewer.
type Renderer struct {
	outDir string
	show   bool
	logger *slog.Logger
}

// New creates a Renderer. When show is true each chart is opened in the
// platform viewer after it is saved.
func New(outDir string, show bool, logger *slog.Logger) *Renderer {
	return &Renderer{outDir: outDir, show: show, logger: logger}
}

// Render produces the four chart artifacts. Each figure is rendered to a
// buffer, saved to disk, then displayed; no rendering state survives past
// the save of each chart.
func (r *Renderer) Render(obs []domain.Observation, totals []domain.MonthlyRainfall) (Artifacts, error) {
	trendBuf, err := renderTemperatureTrend(obs, "Daily Temperature Trend", 1000, 500)
	if err != nil {
		return Artifacts{}, fmt.Errorf("render temperature trend: %w", err)
	}
	trendPath, err := r.save(TemperatureTrendFile, trendBuf)
	if err != nil {
		return Artifacts{}, err
	}

	rainBuf, err := renderMonthlyRainfall(totals, "Monthly Rainfall Total", 900, 500)
	if err != nil {
		return Artifacts{}, fmt.Errorf("render monthly rainfall: %w", err)
	}
	rainPath, err := r.save(MonthlyRainfallFile, rainBuf)
	if err != nil {
		return Artifacts{}, err
	}

	scatterBuf, err := renderHumidityScatter(obs)
	if err != nil {
		return Artifacts{}, fmt.Errorf("render humidity scatter: %w", err)
	}
	scatterPath, err := r.save(HumidityTemperatureFile, scatterBuf)
	if err != nil {
		return Artifacts{}, err
	}

	combinedBuf, err := renderCombined(obs, totals)
	if err != nil {
		return Artifacts{}, fmt.Errorf("render combined plot: %w", err)
	}
	combinedPath, err := r.save(CombinedFile, combinedBuf)
	if err != nil {
		return Artifacts{}, err
	}

	return Artifacts{
		TemperatureTrend:    trendPath,
		MonthlyRainfall:     rainPath,
		HumidityTemperature: scatterPath,
		Combined:            combinedPath,
	}, nil
}

// save writes the rendered image, then hands it to the viewer if display is
// enabled. The file is always on disk before any display attempt.
func (r *Renderer) save(name string, buf *bytes.Buffer) (string, error) {
	path := filepath.Join(r.outDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("save chart %s: %w", name, err)
	}
	r.logger.Info("chart saved", "path", path)

	if r.show {
		r.display(path)
	}
	return path, nil
}

func renderTemperatureTrend(obs []domain.Observation, title string, width, height int) (*bytes.Buffer, error) {
	dates, temps := trendValues(obs)

	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: "Date"},
		YAxis:      chart.YAxis{Name: "Temperature (°C)", Range: expandedRange(temps)},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Temperature",
				Style: chart.Style{
					StrokeColor: colorOrange,
					StrokeWidth: 1.5,
					DotColor:    colorOrange,
					DotWidth:    2.5,
				},
				XValues: dates,
				YValues: temps,
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func renderMonthlyRainfall(totals []domain.MonthlyRainfall, title string, width, height int) (*bytes.Buffer, error) {
	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(t.Month),
			Value: t.Total,
			Style: chart.Style{FillColor: chart.ColorBlue, StrokeColor: chart.ColorBlue},
		})
	}
	if len(bars) == 0 {
		// BarChart refuses to render zero bars; an empty table still gets
		// a valid, visibly empty artifact.
		bars = append(bars, chart.Value{Label: "", Value: 0})
	}

	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   40,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		YAxis:      chart.YAxis{Name: "Rainfall (mm)", Range: expandedRange(values)},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func renderHumidityScatter(obs []domain.Observation) (*bytes.Buffer, error) {
	temps := make([]float64, 0, len(obs))
	hums := make([]float64, 0, len(obs))
	for _, o := range obs {
		temps = append(temps, o.Temperature)
		hums = append(hums, o.Humidity)
	}
	// Pad to two points so the axis ranges are computable.
	switch len(temps) {
	case 0:
		temps = append(temps, 0, 1)
		hums = append(hums, 0, 0)
	case 1:
		temps = append(temps, temps[0]+1)
		hums = append(hums, hums[0])
	}

	// ~60% alpha so overlapping observations stay readable.
	dot := drawing.Color{R: 0, G: 116, B: 217, A: 153}

	ch := chart.Chart{
		Title:      "Humidity vs Temperature",
		Width:      700,
		Height:     500,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: "Temperature (°C)", Range: expandedRange(temps)},
		YAxis:      chart.YAxis{Name: "Humidity (%)", Range: expandedRange(hums)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Observations",
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    dot,
					DotWidth:    5,
				},
				XValues: temps,
				YValues: hums,
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// renderCombined places the temperature trend and the rainfall bars side by
// side in a single image. go-chart has no subplot support, so both charts
// are rendered separately and composited.
func renderCombined(obs []domain.Observation, totals []domain.MonthlyRainfall) (*bytes.Buffer, error) {
	left, err := renderTemperatureTrend(obs, "Daily Temperature", 600, 500)
	if err != nil {
		return nil, err
	}
	right, err := renderMonthlyRainfall(totals, "Monthly Rainfall", 600, 500)
	if err != nil {
		return nil, err
	}

	leftImg, err := png.Decode(left)
	if err != nil {
		return nil, fmt.Errorf("decode left panel: %w", err)
	}
	rightImg, err := png.Decode(right)
	if err != nil {
		return nil, fmt.Errorf("decode right panel: %w", err)
	}

	lb, rb := leftImg.Bounds(), rightImg.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), leftImg, lb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), rightImg, rb.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode combined plot: %w", err)
	}
	return &buf, nil
}

// trendValues extracts chronologically ordered (date, temperature) pairs,
// padded to at least two points so the time axis has a range.
func trendValues(obs []domain.Observation) ([]time.Time, []float64) {
	ordered := make([]domain.Observation, len(obs))
	copy(ordered, obs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	dates := make([]time.Time, 0, len(ordered))
	temps := make([]float64, 0, len(ordered))
	for _, o := range ordered {
		dates = append(dates, o.Date)
		temps = append(temps, o.Temperature)
	}

	switch len(dates) {
	case 0:
		now := time.Now()
		dates = append(dates, now, now.Add(24*time.Hour))
		temps = append(temps, 0, 0)
	case 1:
		dates = append(dates, dates[0].Add(24*time.Hour))
		temps = append(temps, temps[0])
	}
	return dates, temps
}

// expandedRange returns an explicit axis range only when the values are
// degenerate (all equal), where go-chart's automatic range would collapse to
// zero width. A column imputed entirely to 0 is the common trigger. Returns
// nil otherwise so the automatic range applies.
func expandedRange(values []float64) chart.Range {
	if len(values) == 0 {
		return nil
	}
	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV != maxV {
		return nil
	}
	return &chart.ContinuousRange{Min: minV - 1, Max: maxV + 1}
}
