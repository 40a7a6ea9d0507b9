package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/filex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header is the fixed first row of an export.
var Header = []string{
	"Name",
	"Email",
	"Mobile",
	"Skills",
	"Experience Type",
	"Total Experience",
	"Current Location",
	"Application Status",
	"Submitted At",
	"Expected Salary",
	"Resume Link",
}

// SubmittedLayout renders "Submitted At" cells.
const SubmittedLayout = "02/01/2006, 15:04:05"

// Row converts one record into its export cells. Times are shown in loc.
func Row(c candidate.Candidate, loc *time.Location) []string {
	expType := "Experienced"
	if c.Fresher() {
		expType = "Fresher"
	}
	total := ""
	if c.TotalExperience != "" {
		total = c.TotalExperience + " Years"
	}
	status := "Pending Review"
	if c.IsViewed {
		status = "Viewed"
	}
	submitted := ""
	if !c.SubmittedAt.IsZero() {
		submitted = c.SubmittedAt.In(loc).Format(SubmittedLayout)
	}

	return []string{
		c.Name,
		c.Email,
		c.MobileNumber,
		c.Skill,
		expType,
		total,
		c.CurrentLocation,
		status,
		submitted,
		c.ExpectedCTC,
		c.ResumeLink,
	}
}

// Export writes list as CSV: a UTF-8 byte-order mark, the header row, then
// one row per record, CRLF terminated.
func Export(w io.Writer, list []candidate.Candidate, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	cw := csv.NewWriter(bw)
	cw.UseCRLF = true
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range list {
		if err := cw.Write(Row(c, loc)); err != nil {
			return fmt.Errorf("write row %s: %w", c.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return bw.Close()
}

// FileName is the export file name for a run at now, to the second, UTC.
func FileName(now time.Time) string {
	return "candidates_export_" + now.UTC().Format("2006-01-02_15-04-05") + ".csv"
}

// ExportFile writes list to a timestamped file in dir and returns its path.
// An empty list writes nothing and returns common.ErrNothingToExport.
func ExportFile(dir string, list []candidate.Candidate, now time.Time) (string, error) {
	if len(list) == 0 {
		return "", common.ErrNothingToExport
	}

	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Export(&buf, list, now.Location()); err != nil {
		return "", err
	}

	path := filepath.Join(abs, FileName(now))
	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o640); err != nil {
		return "", err
	}
	return path, nil
}
