package weather

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

var generateStart = time.Date(1948, time.July, 1, 0, 0, 0, 0, time.UTC)

// Generate returns n consecutive days of plausible observations starting on
// 1948-07-01. The same seed yields the same points.
func Generate(n int, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)

	for i := 0; i < n; i++ {
		date := generateStart.AddDate(0, 0, i)
		season := math.Cos(2 * math.Pi * float64(date.YearDay()-200) / 365)
		avg := int(55+25*season) + r.Intn(11) - 5
		spread := 5 + r.Intn(10)

		p := Point{
			Date:          date,
			TempMax:       avg + spread,
			TempAvg:       avg,
			TempMin:       avg - spread,
			DewMax:        avg - 2,
			DewAvg:        avg - 8,
			DewMin:        avg - 14,
			HumidityMax:   70 + r.Intn(31),
			HumidityAvg:   50 + r.Intn(30),
			HumidityMin:   20 + r.Intn(30),
			PressureAvg:   29.5 + r.Float64(),
			VisibilityMax: 10,
			VisibilityAvg: 5 + r.Intn(6),
			VisibilityMin: r.Intn(6),
			WindSpeedMax:  10 + r.Intn(20),
			WindSpeedAvg:  5 + r.Intn(10),
			GustSpeedMax:  r.Intn(45),
			CloudCover:    r.Intn(9),
			WindDirection: r.Intn(360),
		}
		p.PressureMax = p.PressureAvg + 0.2
		p.PressureMin = p.PressureAvg - 0.2

		if r.Intn(3) == 0 {
			p.Rain = true
			p.Precipitation = math.Round(r.Float64()*150) / 100
		}
		if p.TempMin < 32 && r.Intn(4) == 0 {
			p.Snow = true
			p.Precipitation += math.Round(r.Float64()*100) / 100
		}
		p.Fog = r.Intn(10) == 0
		p.Thunderstorm = p.Rain && p.TempMax > 75 && r.Intn(3) == 0

		points = append(points, p)
	}

	return points
}

// Write encodes points in the format Read parses.
func Write(w io.Writer, points []Point) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}

	for _, p := range points {
		if err := writer.Write(record(p)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes points to a new CSV file at path.
func WriteFile(path string, points []Point) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create weather data: %w", err)
	}

	if err := Write(file, points); err != nil {
		_ = file.Close()
		return fmt.Errorf("write weather data: %w", err)
	}
	return file.Close()
}

func record(p Point) []string {
	itoa := strconv.Itoa
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

	var events []string
	for _, e := range []struct {
		name string
		set  bool
	}{{"Fog", p.Fog}, {"Rain", p.Rain}, {"Snow", p.Snow}, {"Thunderstorm", p.Thunderstorm}} {
		if e.set {
			events = append(events, e.name)
		}
	}

	return []string{
		p.Date.Format(dateLayout),
		itoa(p.TempMax), itoa(p.TempAvg), itoa(p.TempMin),
		itoa(p.DewMax), itoa(p.DewAvg), itoa(p.DewMin),
		itoa(p.HumidityMax), itoa(p.HumidityAvg), itoa(p.HumidityMin),
		ftoa(p.PressureMax), ftoa(p.PressureAvg), ftoa(p.PressureMin),
		itoa(p.VisibilityMax), itoa(p.VisibilityAvg), itoa(p.VisibilityMin),
		itoa(p.WindSpeedMax), itoa(p.WindSpeedAvg), itoa(p.GustSpeedMax),
		ftoa(p.Precipitation), itoa(p.CloudCover), strings.Join(events, "-"), itoa(p.WindDirection),
	}
}
