package tracing

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter is a TraceWriter that stores records into a CSV file.
type CSVTraceWriter struct {
	path string
	file *os.File

	records    []ExecRecord
	bufferSize int
	closed     bool
}

// NewCSVTraceWriter creates a new CSVTraceWriter. Init must be called before
// writing.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the csv file. A random name is used if the path is empty. It
// panics if the file already exists.
func (t *CSVTraceWriter) Init() {
	if t.path == "" {
		t.path = "tickloop_trace_" + xid.New().String()
	}

	filename := t.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file, "Tick, EventID, Due, Kind\n")

	atexit.Register(t.Close)
}

// Write buffers a record.
func (t *CSVTraceWriter) Write(rec ExecRecord) {
	t.records = append(t.records, rec)
	if len(t.records) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered records to the file.
func (t *CSVTraceWriter) Flush() {
	if t.closed {
		return
	}

	for _, rec := range t.records {
		fmt.Fprintf(t.file, "%d, %d, %d, %s\n",
			rec.Tick,
			rec.EventID,
			rec.Due,
			rec.Kind,
		)
	}

	t.records = nil
}

// Close flushes and closes the file. Closing twice does nothing.
func (t *CSVTraceWriter) Close() {
	if t.closed {
		return
	}

	t.Flush()
	t.closed = true

	err := t.file.Close()
	if err != nil {
		panic(err)
	}
}
