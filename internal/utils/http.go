package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-polip/internal/document"
)

// WriteJSON writes data as a JSON body with statusCode. The simulator uses
// it for error replies, which devices read as a bare JSON string such as
// "value invalid". An unencodable value yields a 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDocument writes doc in its ordered compact encoding. The bytes on the
// wire are exactly the bytes a tag was computed over.
func WriteDocument(w http.ResponseWriter, doc *document.Document, statusCode int) (int, error) {
	body, err := doc.Encode()
	if err != nil {
		http.Error(w, "error encoding document", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding document: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
