package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"housingready/internal/utils"
	"housingready/pkg/types"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", types.ValidationError("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName is the download name for an export taken on day.
func FileName(day time.Time, format Format) string {
	return fmt.Sprintf("housing-ready-%s.%s", day.Format("2006-01-02"), format)
}

var Headers = []string{
	"Name", "Clarity ID", "Worker", "Date",
	"Phase 1", "Phase 2", "Phase 3", "Phase 4",
	"Housing Complete", "Housed", "Bank Account",
	"Needs Detox", "Needs MH", "Notes",
}

func Row(c *types.Client) []string {
	return []string{
		c.Name,
		utils.PtrString(c.ClarityID),
		utils.PtrString(c.OutreachWorker),
		c.DateOfEntry.Format("01/02/2006"),
		yesNo(c.Phase1ID),
		yesNo(c.Phase2SocialSecurity),
		yesNo(c.Phase3BirthCert),
		yesNo(c.Phase4ProofOfIncome),
		yesNo(c.HousingPaperworkCompleted),
		yesNo(c.Housed),
		yesNo(c.HasBankAccount),
		yesNo(c.NeedsDetox),
		yesNo(c.NeedsMentalHealth),
		utils.PtrString(c.Notes),
	}
}

func yesNo(f types.Flag) string {
	if f {
		return "Yes"
	}
	return "No"
}

func WriteCSV(w io.Writer, clients []*types.Client) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range clients {
		if err := cw.Write(Row(c)); err != nil {
			return fmt.Errorf("write csv row for client %s: %w", c.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Write renders clients in the given format.
func Write(w io.Writer, format Format, clients []*types.Client) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, clients)
	default:
		return WriteCSV(w, clients)
	}
}
