package compiler

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/phaer/pip/internal/core/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.trai.ch/zerr"
)

//go:embed report_schema.json
var reportSchema string

// compiledSchema compiles the embedded report schema once per process.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("report_schema.json", reportSchema)
})

// validateDocument serializes the report and checks it against the embedded
// report schema. This is the last gate before a document can reach a sink.
func validateDocument(report *domain.Report) error {
	sch, err := compiledSchema()
	if err != nil {
		return zerr.Wrap(err, "failed to compile report schema")
	}

	data, err := json.Marshal(report)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.Wrap(err, "failed to decode report for validation")
	}

	if err := sch.Validate(doc); err != nil {
		return zerr.Wrap(domain.ErrSchemaViolation, err.Error())
	}
	return nil
}
