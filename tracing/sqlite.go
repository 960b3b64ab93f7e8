package tracing

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/memdiag/bus"
)

// SQLiteTraceWriter is a writer that writes bus transactions to a SQLite
// database.
type SQLiteTraceWriter struct {
	*sql.DB
	statement *sql.Stmt

	dbName    string
	toWrite   []*bus.Transaction
	batchSize int
}

// NewSQLiteTraceWriter creates a new SQLiteTraceWriter. The database file is
// path with a .sqlite3 suffix. An empty path generates a unique name.
func NewSQLiteTraceWriter(path string) *SQLiteTraceWriter {
	w := &SQLiteTraceWriter{
		dbName:    path,
		batchSize: 10000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// FileName returns the name of the database file.
func (t *SQLiteTraceWriter) FileName() string {
	return t.dbName + ".sqlite3"
}

// Init creates the database file and the trace table.
func (t *SQLiteTraceWriter) Init() error {
	if t.dbName == "" {
		t.dbName = "memdiag_trace_" + xid.New().String()
	}

	filename := t.FileName()
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("file %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return err
	}

	t.DB = db

	if err := t.createTable(); err != nil {
		return err
	}

	t.statement, err = t.Prepare(`
		insert into bus_trace
		(id, kind, address, data, slave, start_time, latency, error)
		values (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Bus trace is collected in database: %s\n",
		filename)

	return nil
}

func (t *SQLiteTraceWriter) createTable() error {
	stmts := []string{
		`create table bus_trace
		(
			id         varchar(200) not null,
			kind       varchar(16)  not null,
			address    integer      not null,
			data       integer      not null,
			slave      varchar(100),
			start_time float        not null,
			latency    integer      not null,
			error      text
		);`,
		`create index bus_trace_address_index on bus_trace (address);`,
		`create index bus_trace_kind_index on bus_trace (kind);`,
	}

	for _, s := range stmts {
		if _, err := t.Exec(s); err != nil {
			return err
		}
	}

	return nil
}

// Write buffers a transaction.
func (t *SQLiteTraceWriter) Write(txn *bus.Transaction) {
	t.toWrite = append(t.toWrite, txn)
	if len(t.toWrite) >= t.batchSize {
		t.Flush()
	}
}

// Flush writes all the buffered transactions to the database.
func (t *SQLiteTraceWriter) Flush() {
	if len(t.toWrite) == 0 || t.DB == nil {
		return
	}

	t.mustExecute("BEGIN TRANSACTION")
	defer t.mustExecute("COMMIT TRANSACTION")

	for _, txn := range t.toWrite {
		var errText sql.NullString
		if txn.Err != nil {
			errText = sql.NullString{String: txn.Err.Error(), Valid: true}
		}

		_, err := t.statement.Exec(
			txn.ID,
			txn.Kind.String(),
			txn.Addr,
			txn.Data,
			txn.Slave,
			float64(txn.Start),
			txn.Latency,
			errText,
		)
		if err != nil {
			panic(err)
		}
	}

	t.toWrite = nil
}

func (t *SQLiteTraceWriter) mustExecute(query string) sql.Result {
	res, err := t.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
