package tabread

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadDelimitedComma(t *testing.T) {
	path := writeFile(t, "claims.csv", "A,B,C\n1,2,3\n4,5,6\n")
	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tbl.Headers) != 3 || tbl.Headers[0] != "A" {
		t.Errorf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[1][2] != "6" {
		t.Errorf("rows = %v", tbl.Rows)
	}
}

func TestReadDelimitedTabWins(t *testing.T) {
	// Tab delimiter wins even when the header also contains commas.
	path := writeFile(t, "claims.txt", "A, left\tB\n1, one\t2\n")
	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tbl.Headers) != 2 || tbl.Headers[0] != "A, left" {
		t.Errorf("headers = %v", tbl.Headers)
	}
}

func TestReadDelimitedQuotedFields(t *testing.T) {
	path := writeFile(t, "claims.csv", "A,B\n\"x, y\",2\n")
	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Rows[0][0] != "x, y" {
		t.Errorf("quoted field = %q", tbl.Rows[0][0])
	}
}

func TestReadDelimitedErrors(t *testing.T) {
	if _, err := Read(writeFile(t, "empty.csv", "")); err == nil {
		t.Error("expected error for empty file")
	}
	if _, err := Read(writeFile(t, "nodelim.csv", "justoneheader\nvalue\n")); err == nil {
		t.Error("expected error for undetectable separator")
	}
	if _, err := Read(writeFile(t, "noheader.csv", "A,B\n")); err == nil {
		t.Error("expected error for header-only file")
	}
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetSheetRow(sheet, "A1", &[]any{"A", "B"})
	f.SetSheetRow(sheet, "A2", &[]any{"1", "2"})
	f.SetSheetRow(sheet, "A3", &[]any{"3", "4"})
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tbl.Headers) != 2 || tbl.Headers[1] != "B" {
		t.Errorf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[0][0] != "1" {
		t.Errorf("rows = %v", tbl.Rows)
	}
}
