package constants

import "strings"

// UploadFieldName is the multipart form field carrying the contract file.
const UploadFieldName = "contract"

// PDFMimeType is the only accepted upload content type.
const PDFMimeType = "application/pdf"

// IsPDFContentType reports whether a multipart part looks like a PDF.
// Some browsers send application/octet-stream for drag-and-drop uploads,
// so the extension is accepted as a tie-breaker.
func IsPDFContentType(contentType, filename string) bool {
	if strings.Contains(contentType, "pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
