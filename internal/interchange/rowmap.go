package interchange

// RowMap is the resolved column assignment for one file: canonical field name
// to physical column index, plus the headers no field claimed. It is computed
// once per import, before any data row is processed, and shared read-only by
// every row.
type RowMap struct {
	columns  map[string]int
	headers  []string
	Unmapped []string
}

// ResolveColumns scans each canonical field's candidate list in priority
// order and binds the field to the first header whose normalized form equals
// the normalized candidate. Matching is exact on normalized strings; no
// edit-distance fuzzing, so behavior stays predictable and auditable. A field
// with no match is simply absent for every data row; the builder's defaulting
// policy takes over from there.
func ResolveColumns(headers []string, fm FieldMap) *RowMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	rm := &RowMap{
		columns: make(map[string]int, len(CanonicalFields)),
		headers: headers,
	}
	claimed := make([]bool, len(headers))

	for _, field := range CanonicalFields {
		for _, candidate := range fm[field] {
			want := NormalizeHeader(candidate)
			if want == "" {
				continue
			}
			found := -1
			for i, h := range normalized {
				if h == want {
					found = i
					break
				}
			}
			if found >= 0 {
				rm.columns[field] = found
				claimed[found] = true
				break
			}
		}
	}

	for i, h := range headers {
		if !claimed[i] && NormalizeHeader(h) != "" {
			rm.Unmapped = append(rm.Unmapped, h)
		}
	}
	return rm
}

// Value returns the raw cell for a canonical field in one data row, or nil
// when the field resolved to no column or the row is short.
func (rm *RowMap) Value(field string, row []string) interface{} {
	col, ok := rm.columns[field]
	if !ok || col >= len(row) {
		return nil
	}
	return row[col]
}

// Has reports whether a canonical field resolved to a physical column.
func (rm *RowMap) Has(field string) bool {
	_, ok := rm.columns[field]
	return ok
}
