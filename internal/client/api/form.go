package api

import (
	"bytes"
	"mime/multipart"
)

// Form is a multipart/form-data body. Fields and files are written in the
// order they were added.
type Form struct {
	parts []formPart
}

type formPart struct {
	name     string
	filename string
	value    []byte
	file     bool
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) AddField(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: []byte(value)})
	return f
}

// AddFields adds every entry of fields. Map order is not stable, so use
// AddField when order matters to the backend.
func (f *Form) AddFields(fields map[string]string) *Form {
	for k, v := range fields {
		f.AddField(k, v)
	}
	return f
}

func (f *Form) AddFile(name, filename string, content []byte) *Form {
	f.parts = append(f.parts, formPart{name: name, filename: filename, value: content, file: true})
	return f
}

func (f *Form) Len() int {
	return len(f.parts)
}

func (f *Form) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		if p.file {
			fw, err := w.CreateFormFile(p.name, p.filename)
			if err != nil {
				return nil, "", err
			}
			if _, err := fw.Write(p.value); err != nil {
				return nil, "", err
			}
			continue
		}
		if err := w.WriteField(p.name, string(p.value)); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
