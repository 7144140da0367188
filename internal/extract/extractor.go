package extract

import (
	"encoding/xml"
	"io"
	"strings"
)

// Decode parses one extract document into its raw sections. It is a pure
// function of the reader's content: no side effects, no storage access.
// Absent right/restrict/deal sections are not an error; a document that is
// not well-formed XML, or that lacks the parcel cadastral number, is.
func Decode(r io.Reader) (*RawStatement, error) {
	var raw RawStatement
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &DocumentError{Code: DocumentErrorMalformedXML, Err: err}
	}
	if strings.TrimSpace(raw.Land.CadNumber) == "" {
		return nil, &DocumentError{Code: DocumentErrorMissingCadNumber}
	}
	return &raw, nil
}
