package output

import "strconv"

// ProjectRow is the list command's view of one scanned project directory.
type ProjectRow struct {
	Project string `json:"project" yaml:"project"`
	Title   string `json:"title" yaml:"title"`
	Anchor  string `json:"anchor" yaml:"anchor"`
	Readme  bool   `json:"readme" yaml:"readme"`
	Bytes   int    `json:"bytes" yaml:"bytes"`
}

// ProjectsToTableData converts project rows to table format.
func ProjectsToTableData(rows []ProjectRow) Data {
	headers := []string{"Project", "Title", "Anchor", "README", "Bytes"}

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		readme := "yes"
		if !r.Readme {
			readme = "-"
		}
		tableRows = append(tableRows, []string{
			r.Project,
			r.Title,
			r.Anchor,
			readme,
			strconv.Itoa(r.Bytes),
		})
	}

	return Data{
		Headers: headers,
		Rows:    tableRows,
	}
}
