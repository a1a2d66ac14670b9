package tracing

// Span attribute keys.
const (
	AttrRecordID    = "grid.record.id"
	AttrColumnID    = "grid.column.id"
	AttrRowIndex    = "grid.row.index"
	AttrBatchSize   = "grid.batch.size"
	AttrBatchFailed = "grid.batch.failed"
	AttrDialect     = "db.dialect"
)

// Span names.
const (
	SpanCommitCell = "gateway.commit_cell"
	SpanCommitMany = "gateway.commit_many"
	SpanLoadPage   = "store.load_page"
)

const EventCellFailed = "cell.failed"
