package profile

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// WriteJSON writes the profile as indented JSON.
func (p *Profile) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteCSV writes the profile as CSV with a header row using the
// variant's output labels.
func (p *Profile) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"pressure"}
	for _, label := range p.Labels {
		header = append(header, label)
	}
	header = append(header, "in_funnel")
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range p.Pressure {
		row := []string{
			strconv.FormatFloat(p.Pressure[i], 'f', 2, 64),
			strconv.FormatFloat(p.Value[i], 'g', 10, 64),
			strconv.FormatFloat(p.Alpha[i], 'g', 10, 64),
			strconv.FormatFloat(p.Beta[i], 'g', 10, 64),
			strconv.FormatFloat(p.Ref[i], 'g', 10, 64),
			strconv.FormatFloat(p.Anomaly[i], 'g', 10, 64),
			strconv.FormatBool(p.InFunnel[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes the profile to path in the given format, "csv" or
// "json".
func (p *Profile) Export(path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if format == "csv" {
		return p.WriteCSV(file)
	}
	return p.WriteJSON(file)
}
