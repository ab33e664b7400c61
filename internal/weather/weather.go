// Package weather loads daily weather observations in the Weather Underground
// CSV export format. The records feed the query benchmarks.
package weather

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	cinqerrors "github.com/openfga/cinq/internal/errors"
)

// ErrMalformedRecord marks a row whose cells could not be parsed.
var ErrMalformedRecord = errors.New("malformed weather record")

// Column headers as exported by Weather Underground. Some of them look wrong,
// but that is how the export names them.
const (
	ColumnDate          = "EST"
	ColumnTempMax       = "Max TemperatureF"
	ColumnTempAvg       = "Mean TemperatureF"
	ColumnTempMin       = "Min TemperatureF"
	ColumnDewMax        = "Max Dew PointF"
	ColumnDewAvg        = "MeanDew PointF"
	ColumnDewMin        = "Min DewpointF"
	ColumnHumidityMax   = "Max Humidity"
	ColumnHumidityAvg   = "Mean Humidity"
	ColumnHumidityMin   = "Min Humidity"
	ColumnPressureMax   = "Max Sea Level PressureIn"
	ColumnPressureAvg   = "Mean Sea Level PressureIn"
	ColumnPressureMin   = "Min Sea Level PressureIn"
	ColumnVisibilityMax = "Max VisibilityMiles"
	ColumnVisibilityAvg = "Mean VisibilityMiles"
	ColumnVisibilityMin = "Min VisibilityMiles"
	ColumnWindSpeedMax  = "Max Wind SpeedMPH"
	ColumnWindSpeedAvg  = "Mean Wind SpeedMPH"
	ColumnGustSpeedMax  = "Max Gust SpeedMPH"
	ColumnPrecipitation = "PrecipitationIn"
	ColumnCloudCover    = "CloudCover"
	ColumnEvents        = "Events"
	ColumnWindDirection = "WindDirDegrees"
)

// Columns lists the headers in export order.
var Columns = []string{
	ColumnDate,
	ColumnTempMax, ColumnTempAvg, ColumnTempMin,
	ColumnDewMax, ColumnDewAvg, ColumnDewMin,
	ColumnHumidityMax, ColumnHumidityAvg, ColumnHumidityMin,
	ColumnPressureMax, ColumnPressureAvg, ColumnPressureMin,
	ColumnVisibilityMax, ColumnVisibilityAvg, ColumnVisibilityMin,
	ColumnWindSpeedMax, ColumnWindSpeedAvg, ColumnGustSpeedMax,
	ColumnPrecipitation, ColumnCloudCover, ColumnEvents, ColumnWindDirection,
}

const dateLayout = "2006-1-2"

// Point is one day of observations.
type Point struct {
	Date time.Time

	TempMax, TempAvg, TempMin             int
	DewMax, DewAvg, DewMin                int
	HumidityMax, HumidityAvg, HumidityMin int

	PressureMax, PressureAvg, PressureMin float64

	VisibilityMax, VisibilityAvg, VisibilityMin int

	WindSpeedMax, WindSpeedAvg int
	GustSpeedMax               int
	WindDirection              int

	Precipitation float64
	CloudCover    int

	Fog, Rain, Thunderstorm, Snow bool
}

// Load reads the CSV file at path.
func Load(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather data: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a header line followed by one record per line. Reading stops
// at the first line whose cell count differs from the header's, which is how
// the export pads its tail. A blank cell or a trace reading ("T") counts as 0.
func Read(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read weather header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var points []Point
	for line := 2; ; line++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read weather line %d: %w", line, err)
		}
		if len(cells) != len(header) {
			break
		}

		p, err := parse(recordReader{index: index, cells: cells})
		if err != nil {
			return nil, cinqerrors.With(fmt.Errorf("line %d: %w", line, err), ErrMalformedRecord)
		}
		points = append(points, p)
	}

	return points, nil
}

type recordReader struct {
	index map[string]int
	cells []string
	err   error
}

func (r *recordReader) cell(column string) string {
	i, ok := r.index[column]
	if !ok {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r *recordReader) number(column string) string {
	v := r.cell(column)
	if v == "" || v == "T" {
		return "0"
	}
	return v
}

func (r *recordReader) integer(column string) int {
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(r.number(column))
	if err != nil {
		r.err = fmt.Errorf("column %q: %w", column, err)
	}
	return v
}

func (r *recordReader) decimal(column string) float64 {
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(r.number(column), 64)
	if err != nil {
		r.err = fmt.Errorf("column %q: %w", column, err)
	}
	return v
}

func parse(r recordReader) (Point, error) {
	date, err := time.Parse(dateLayout, r.cell(ColumnDate))
	if err != nil {
		return Point{}, fmt.Errorf("column %q: %w", ColumnDate, err)
	}

	p := Point{
		Date:          date,
		TempMax:       r.integer(ColumnTempMax),
		TempAvg:       r.integer(ColumnTempAvg),
		TempMin:       r.integer(ColumnTempMin),
		DewMax:        r.integer(ColumnDewMax),
		DewAvg:        r.integer(ColumnDewAvg),
		DewMin:        r.integer(ColumnDewMin),
		HumidityMax:   r.integer(ColumnHumidityMax),
		HumidityAvg:   r.integer(ColumnHumidityAvg),
		HumidityMin:   r.integer(ColumnHumidityMin),
		PressureMax:   r.decimal(ColumnPressureMax),
		PressureAvg:   r.decimal(ColumnPressureAvg),
		PressureMin:   r.decimal(ColumnPressureMin),
		VisibilityMax: r.integer(ColumnVisibilityMax),
		VisibilityAvg: r.integer(ColumnVisibilityAvg),
		VisibilityMin: r.integer(ColumnVisibilityMin),
		WindSpeedMax:  r.integer(ColumnWindSpeedMax),
		WindSpeedAvg:  r.integer(ColumnWindSpeedAvg),
		GustSpeedMax:  r.integer(ColumnGustSpeedMax),
		Precipitation: r.decimal(ColumnPrecipitation),
		CloudCover:    r.integer(ColumnCloudCover),
		WindDirection: r.integer(ColumnWindDirection),
	}
	if r.err != nil {
		return Point{}, r.err
	}

	for _, event := range strings.Split(r.cell(ColumnEvents), "-") {
		switch event {
		case "Fog":
			p.Fog = true
		case "Rain":
			p.Rain = true
		case "Thunderstorm":
			p.Thunderstorm = true
		case "Snow":
			p.Snow = true
		}
	}

	return p, nil
}
