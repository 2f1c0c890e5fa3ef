// internal/reporting/encoders.go
package reporting

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/typogen/internal/batch"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// textEncoder prints Original/Generated pairs separated by a blank line.
type textEncoder struct {
	w io.Writer
}

func (e *textEncoder) encode(rec batch.Record) error {
	_, err := fmt.Fprintf(e.w, "Original: %s\nGenerated: %s\n\n", rec.Result.Input, rec.Result.Output)
	return err
}

func (e *textEncoder) finish() error { return nil }

// jsonlEncoder writes one JSON object per line.
type jsonlEncoder struct {
	enc *jsoniter.Encoder
}

func newJSONLEncoder(w io.Writer) *jsonlEncoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonlEncoder{enc: enc}
}

func (e *jsonlEncoder) encode(rec batch.Record) error {
	return e.enc.Encode(rec)
}

func (e *jsonlEncoder) finish() error { return nil }

// yamlEncoder writes a stream of YAML documents, one per record.
type yamlEncoder struct {
	enc *yaml.Encoder
}

func newYAMLEncoder(w io.Writer) *yamlEncoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &yamlEncoder{enc: enc}
}

func (e *yamlEncoder) encode(rec batch.Record) error {
	return e.enc.Encode(rec)
}

func (e *yamlEncoder) finish() error {
	return e.enc.Close()
}
