// Package export writes listings in formats spreadsheet users can open directly.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/EduCatCode/104-test/internal/models"
)

// Header lists the CSV columns in the order rows are written
var Header = []string{
	"職缺名稱", "公司名稱", "地區", "薪資原文", "學歷", "經歷",
	"擅長工具", "工作內容", "網址", "縣市", "平均月薪",
}

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// FileName is the suggested file name for a keyword's export. Path separators
// in the keyword become underscores so searches like "C/C++" stay one file.
func FileName(keyword string) string {
	return fmt.Sprintf("104_jobs_%s.csv", pathSeparators.Replace(keyword))
}

// WriteCSV writes listings as UTF-8 CSV with a byte order mark so Excel picks
// the right encoding. Every field is quoted.
func WriteCSV(w io.Writer, listings []models.Listing) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	bw := bufio.NewWriter(tw)

	if err := writeRow(bw, Header); err != nil {
		return err
	}
	for i, l := range listings {
		if err := writeRow(bw, row(l)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return tw.Close()
}

func row(l models.Listing) []string {
	estimate := ""
	if l.HasSalary() {
		estimate = strconv.FormatFloat(*l.SalaryEstimate, 'f', -1, 64)
	}
	return []string{
		l.Title, l.Company, l.RegionText, l.SalaryText, l.EducationText, l.ExperienceText,
		l.SkillsText, l.DescriptionPreview, l.URL, l.RegionCode, estimate,
	}
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
