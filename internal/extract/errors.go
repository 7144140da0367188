package extract

import "fmt"

type DocumentErrorCode string

const (
	// DocumentErrorMalformedXML marks input that is not well-formed XML or
	// is not a share-holdings extract.
	DocumentErrorMalformedXML DocumentErrorCode = "malformed_xml"
	// DocumentErrorMissingCadNumber marks an extract without a parcel
	// cadastral number, which every downstream record hangs off.
	DocumentErrorMissingCadNumber DocumentErrorCode = "missing_cad_number"
)

// DocumentError reports an extract that cannot be processed. It fails the
// document, never the batch.
type DocumentError struct {
	Code DocumentErrorCode
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("document %s", e.Code)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// DirectoryNotFoundError reports a missing input directory. This is fatal
// before the batch starts.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("input directory not found: %s", e.Path)
}
