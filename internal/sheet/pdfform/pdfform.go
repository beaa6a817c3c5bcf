// Package pdfform writes a sheet.FieldMap into a fillable PDF. It is the only
// place the PDF library is touched; everything upstream works on the plain
// field mapping so it stays testable without a template file.
package pdfform

import (
	"encoding/json"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/cli"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
	"github.com/gamenight-tools/gamenight/internal/sheet"
)

// Filler fills a PDF form template with a field mapping.
type Filler interface {
	// Fill writes the mapping into templatePath's form fields and saves the
	// result at outputPath. Any failure is fatal to the run; there is no
	// partial output.
	Fill(templatePath, outputPath string, fields sheet.FieldMap) error

	// ListFields reports the form field names present in the template.
	ListFields(templatePath string) ([]string, error)
}

type pdfcpuFiller struct {
	conf *model.Configuration
}

// New creates a Filler backed by pdfcpu.
func New() Filler {
	return &pdfcpuFiller{conf: model.NewDefaultConfiguration()}
}

// Fill implements Filler. pdfcpu's form API consumes its fill data as a JSON
// document, so the mapping is staged through a temp file scoped to this call.
func (f *pdfcpuFiller) Fill(templatePath, outputPath string, fields sheet.FieldMap) error {
	data, err := encodeFormData(fields)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "gamenight-form-*.json")
	if err != nil {
		return gnerr.Wrap(err, "creating form data file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return gnerr.Wrap(err, "writing form data file")
	}
	if err := tmp.Close(); err != nil {
		return gnerr.Wrap(err, "closing form data file")
	}

	if err := api.FillFormFile(templatePath, tmp.Name(), outputPath, f.conf); err != nil {
		return gnerr.WrapWithCode(err, gnerr.CodeInternal, "filling PDF form")
	}
	return nil
}

// ListFields implements Filler.
func (f *pdfcpuFiller) ListFields(templatePath string) ([]string, error) {
	fields, err := cli.ListFormFieldsFile([]string{templatePath}, f.conf)
	if err != nil {
		return nil, gnerr.WrapWithCode(err, gnerr.CodeInternal, "listing PDF form fields")
	}
	return fields, nil
}

// pdfcpu form-fill JSON shapes (the same format `pdfcpu form export` emits).
type formData struct {
	Forms []formPage `json:"forms"`
}

type formPage struct {
	TextFields []textField `json:"textfield,omitempty"`
	Checkboxes []checkbox  `json:"checkbox,omitempty"`
}

type textField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type checkbox struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

func encodeFormData(fields sheet.FieldMap) ([]byte, error) {
	var page formPage
	for _, f := range fields {
		if f.Checkbox {
			page.Checkboxes = append(page.Checkboxes, checkbox{Name: f.Name, Value: true})
			continue
		}
		page.TextFields = append(page.TextFields, textField{Name: f.Name, Value: f.Value})
	}

	data, err := json.Marshal(formData{Forms: []formPage{page}})
	if err != nil {
		return nil, gnerr.Wrap(err, "encoding form data")
	}
	return data, nil
}
