package export

// TextFormatter renders the document body as plain UTF-8 text.
// The bytes are exactly the generated text so a downloaded file
// round-trips to what the user saw on screen.
type TextFormatter struct{}

// Format returns the document body as bytes
func (f *TextFormatter) Format(doc Document) ([]byte, error) {
	return []byte(doc.Body), nil
}

// ContentType returns the MIME type for plain text downloads
func (f *TextFormatter) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Extension returns the file extension without the dot
func (f *TextFormatter) Extension() string {
	return "txt"
}
