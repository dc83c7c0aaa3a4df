package output

import (
	"encoding/json"
	"os"

	"github.com/law-makers/contactscan/pkg/models"
)

// SaveJSON writes an indented JSON export of a contact bundle to filepath.
func SaveJSON(bundle *models.ContactBundle, filepath string) error {
	content, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}

// SaveJSONResults writes batch scan results as one JSON document. Failed
// scans keep their error string so a batch file is self-describing.
func SaveJSONResults(results []models.ScanResult, filepath string) error {
	content, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}
