// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"pwsim-core/engine"
	"pwsim-core/policy"
	"pwsim/internal/writers"
)

// ---------------- Simulation records ----------------

// RecordWriterFactory starts simulation-record writers.
type RecordWriterFactory struct {
	Format string
	Header bool
	Pretty bool
}

func NewRecordWriterFactory(format string, header, pretty bool) RecordWriterFactory {
	return RecordWriterFactory{Format: format, Header: header, Pretty: pretty}
}

func (f RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Record, <-chan error) {
	return writers.StartRecordWriter(out, f.Format, f.Header, f.Pretty, bufSize)
}

// ---------------- Audit verdicts ----------------

// AuditWriterFactory starts policy-verdict writers.
type AuditWriterFactory struct {
	Format string
	Header bool
}

func NewAuditWriterFactory(format string, header bool) AuditWriterFactory {
	return AuditWriterFactory{Format: format, Header: header}
}

func (f AuditWriterFactory) Start(out io.Writer, bufSize int) (chan<- policy.Result, <-chan error) {
	return writers.StartAuditWriter(out, f.Format, f.Header, bufSize)
}
