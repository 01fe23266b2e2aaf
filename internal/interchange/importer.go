package interchange

import (
	"bytes"
	"encoding/csv"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// headerScanLimit caps how many leading rows are inspected when looking for
// the real header row. Ledger exports prepend banner/metadata rows; anything
// deeper than this window mis-detects row 0 as the header, a known limit.
const headerScanLimit = 10

// parallelRowThreshold is the row count above which the per-row build step
// fans out to a worker pool. Rows are independent, so only the shared column
// map has to be resolved first.
const parallelRowThreshold = 500

var headerTokens = []string{"item details", "product name", "name", "sku"}

var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// ImportProducts parses an uploaded file (xlsx workbook or delimited text)
// into canonical records. source selects the field map; "auto" or empty
// triggers detection from the header row. Malformed-but-readable input never
// fails: structural emptiness yields an empty result, row problems land on
// the records. Only an unreadable container returns an error.
func ImportProducts(data []byte, source string) (*ImportResult, error) {
	grid, err := loadGrid(data)
	if err != nil {
		return nil, err
	}
	return ImportGrid(grid, source), nil
}

// ImportGrid runs the pipeline over an already-decoded cell grid.
func ImportGrid(grid [][]string, source string) *ImportResult {
	headerIdx := findHeaderRow(grid)
	if headerIdx < 0 {
		return emptyResult(source)
	}

	headers := grid[headerIdx]
	if source == "" || source == SourceAuto {
		source = DetectSource(headers)
	}

	rm := ResolveColumns(headers, FieldMapFor(source))

	var (
		rows        [][]string
		displayRows []int
	)
	for i := headerIdx + 1; i < len(grid); i++ {
		if blankRow(grid[i]) {
			continue
		}
		rows = append(rows, grid[i])
		displayRows = append(displayRows, i+1)
	}
	if len(rows) == 0 {
		res := emptyResult(source)
		res.Headers = headers
		res.UnmappedColumns = rm.Unmapped
		return res
	}

	records := buildRows(source, rm, rows, displayRows)

	res := &ImportResult{
		Records:         records,
		Source:          source,
		TotalRows:       len(records),
		Headers:         headers,
		UnmappedColumns: rm.Unmapped,
	}
	for _, rec := range records {
		if len(rec.Errors) > 0 {
			res.ErrorCount++
		}
		if len(rec.Warnings) > 0 {
			res.WarningCount++
		}
	}
	res.ValidCount = res.TotalRows - res.ErrorCount
	return res
}

func emptyResult(source string) *ImportResult {
	if source == "" || source == SourceAuto {
		source = SourceGeneric
	}
	return &ImportResult{
		Records:         []*Record{},
		Source:          source,
		UnmappedColumns: []string{},
	}
}

// loadGrid decodes the byte buffer into a 2-D grid of raw cell strings.
// Workbooks are recognized by the zip magic; everything else is treated as
// delimited text.
func loadGrid(data []byte) ([][]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if bytes.HasPrefix(data, xlsxMagic) {
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "open workbook")
		}
		defer func() { _ = f.Close() }()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %s", sheets[0])
		}
		return rows, nil
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read delimited text")
	}
	return rows, nil
}

// findHeaderRow scans the leading rows for one whose first cell looks like a
// table header. Returns -1 when the grid has no usable rows at all.
func findHeaderRow(grid [][]string) int {
	if len(grid) == 0 {
		return -1
	}
	limit := headerScanLimit
	if len(grid) < limit {
		limit = len(grid)
	}
	for i := 0; i < limit; i++ {
		if len(grid[i]) == 0 {
			continue
		}
		first := strings.ToLower(grid[i][0])
		for _, tok := range headerTokens {
			if strings.Contains(first, tok) {
				return i
			}
		}
	}
	return 0
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// buildRows materializes records in file order. Above the threshold the loop
// fans out to an ants pool; each task writes its own pre-sized slot so
// diagnostics keep stable row order.
func buildRows(source string, rm *RowMap, rows [][]string, displayRows []int) []*Record {
	records := make([]*Record, len(rows))
	if len(rows) < parallelRowThreshold {
		for i := range rows {
			records[i] = buildRecord(source, rm, rows[i], displayRows[i])
		}
		return records
	}

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		zap.S().Warnf("worker pool unavailable, building rows serially: %v", err)
		for i := range rows {
			records[i] = buildRecord(source, rm, rows[i], displayRows[i])
		}
		return records
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range rows {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			records[i] = buildRecord(source, rm, rows[i], displayRows[i])
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()
	return records
}
