package model

// Content types declared on render artifacts.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeZIP  = "application/zip"
)

// RenderArtifact is one renderer output, immutable once produced. The bundle
// composer owns artifacts until they are handed to the I/O collaborator.
type RenderArtifact struct {
	FileName    string
	ContentType string
	Data        []byte
}
