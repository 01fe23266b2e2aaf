package domain

// Tables lists every model auto-migrated on startup.
var Tables = []interface{}{
	&Product{},
	&ImportLog{},
}
