package character

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Decode reads one character record from r. Unknown keys are rejected rather
// than ignored: character files are written by hand, and a silently dropped
// typo ("skils") is worse than a hard failure. Structural mismatches (a list
// where a mapping is expected, a string where a number is expected) surface as
// validation errors naming the offending field.
func Decode(r io.Reader) (*Character, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var char Character
	if err := dec.Decode(&char); err != nil {
		return nil, decodeError(err)
	}

	// A second value in the stream means the file is not a single record.
	if dec.More() {
		return nil, gnerr.Validation("character file contains more than one JSON document")
	}

	return &char, nil
}

// DecodeFile reads one character record from a JSON file.
func DecodeFile(path string) (*Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gnerr.WrapWithCode(err, gnerr.CodeNotFound, "reading character file")
	}
	return Decode(bytes.NewReader(data))
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "(document root)"
		}
		return gnerr.Validationf("field %q: expected %s, got %s", field, typeErr.Type, typeErr.Value).
			WithMeta("field", field)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return gnerr.WrapWithCode(err, gnerr.CodeValidation, "character file is not valid JSON").
			WithMeta("offset", syntaxErr.Offset)
	}

	// encoding/json reports unknown keys as a plain error string.
	if strings.Contains(err.Error(), "unknown field") {
		return gnerr.WrapWithCode(err, gnerr.CodeValidation, "character file has a key not in the schema")
	}

	return gnerr.WrapWithCode(err, gnerr.CodeValidation, "decoding character file")
}
