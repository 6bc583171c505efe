package shared

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"
)

// WriteCSV streams rows as a CSV attachment named {resource}_{date}.csv.
func WriteCSV(w http.ResponseWriter, resource string, rows [][]string) error {
	filename := fmt.Sprintf("%s_%s.csv", resource, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	writer := csv.NewWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
