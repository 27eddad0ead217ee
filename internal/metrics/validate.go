package metrics

import (
	"embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/record.cue
var schemaFS embed.FS

var (
	schemaOnce sync.Once
	schemaCtx  *cue.Context
	recordDef  cue.Value
	schemaErr  error
)

func recordSchema() (cue.Value, error) {
	schemaOnce.Do(func() {
		content, err := schemaFS.ReadFile("schemas/record.cue")
		if err != nil {
			schemaErr = fmt.Errorf("reading embedded record schema: %w", err)
			return
		}
		schemaCtx = cuecontext.New()
		inst := schemaCtx.CompileBytes(content, cue.Filename("record.cue"))
		if err := inst.Err(); err != nil {
			schemaErr = fmt.Errorf("compiling record schema: %w", err)
			return
		}
		recordDef = inst.LookupPath(cue.ParsePath("#Record"))
		if !recordDef.Exists() {
			schemaErr = fmt.Errorf("record schema missing #Record definition")
		}
	})
	return recordDef, schemaErr
}

// ValidateRecords checks every decoded measurement object against the
// embedded CUE record schema. The check guards the type contract only:
// filePath must be a string, measurements must be numeric or null. A
// failure anywhere in the batch is fatal.
func ValidateRecords(objects []map[string]any, source string) error {
	def, err := recordSchema()
	if err != nil {
		return err
	}

	for i, obj := range objects {
		// Null values mean column-present, value-missing; there is
		// nothing to type-check, and a null filePath must fail the
		// required-field check the same way an absent one does.
		concrete := make(map[string]any, len(obj))
		for k, v := range obj {
			if v != nil {
				concrete[k] = v
			}
		}
		dataValue := schemaCtx.Encode(concrete)
		if err := dataValue.Err(); err != nil {
			return fmt.Errorf("%s: record %d: encoding: %w", source, i, err)
		}
		unified := def.Unify(dataValue)
		if err := unified.Err(); err != nil {
			return fmt.Errorf("%s: record %d: %w", source, i, err)
		}
		if err := unified.Validate(cue.Concrete(true)); err != nil {
			return fmt.Errorf("%s: record %d: %w", source, i, err)
		}
	}
	return nil
}
