package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// csvHeader is the long-format results schema: one record per
// instance/solver cell.
var csvHeader = []string{
	"instance", "dimension", "algo", "runs",
	"time_mean_s", "time_std_s",
	"quality_best", "quality_mean", "quality_std",
	"rel_error", "full_tour", "error",
}

// WriteCSV writes the benchmark rows to path, creating parent directories
// as needed.
func WriteCSV(path string, rows []Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range rows {
		for _, c := range row.Cells {
			record := []string{
				row.Instance,
				strconv.Itoa(row.Dimension),
				c.Algo,
				strconv.Itoa(c.Runs),
				ftoa(c.Time.Mean),
				ftoa(c.Time.Std),
				ftoa(c.Quality.Best),
				ftoa(c.Quality.Mean),
				ftoa(c.Quality.Std),
				ftoa(c.RelError),
				strconv.FormatBool(c.FullTour),
				c.Err,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
