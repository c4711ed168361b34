package phonetics

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed stressdict.json stressdict.schema.json
var dictFiles embed.FS

// DictError represents a failure loading or validating the embedded stress
// dictionary resource.
type DictError struct {
	Message string
	Cause   error
}

func (e *DictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stress dictionary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("stress dictionary error: %s", e.Message)
}

func (e *DictError) Unwrap() error {
	return e.Cause
}

var (
	dictOnce sync.Once
	dict     map[string]string
	dictErr  error
)

// LoadStressDict forces loading and schema validation of the embedded stress
// dictionary. Call it at startup so a malformed resource surfaces before any
// generation begins; StressPattern loads lazily otherwise.
func LoadStressDict() error {
	_, err := stressDict()
	return err
}

// stressDict returns the cached inflected-form → marked-stressed-form table.
func stressDict() (map[string]string, error) {
	dictOnce.Do(func() {
		data, err := dictFiles.ReadFile("stressdict.json")
		if err != nil {
			dictErr = &DictError{Message: "failed to read stressdict.json", Cause: err}
			return
		}
		schema, err := dictFiles.ReadFile("stressdict.schema.json")
		if err != nil {
			dictErr = &DictError{Message: "failed to read stressdict.schema.json", Cause: err}
			return
		}

		result, err := gojsonschema.Validate(
			gojsonschema.NewBytesLoader(schema),
			gojsonschema.NewBytesLoader(data),
		)
		if err != nil {
			dictErr = &DictError{Message: "schema validation failed", Cause: err}
			return
		}
		if !result.Valid() {
			var sb strings.Builder
			for _, desc := range result.Errors() {
				sb.WriteString(desc.String())
				sb.WriteString("; ")
			}
			dictErr = &DictError{Message: "invalid dictionary: " + strings.TrimSuffix(sb.String(), "; ")}
			return
		}

		var parsed map[string]string
		if err := json.Unmarshal(data, &parsed); err != nil {
			dictErr = &DictError{Message: "failed to parse stressdict.json", Cause: err}
			return
		}
		dict = parsed
	})
	return dict, dictErr
}
