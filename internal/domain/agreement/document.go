package agreement

// ContentTypePDF is the media type of rendered agreements.
const ContentTypePDF = "application/pdf"

// Document is a rendered agreement ready for download.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}
