package output

import (
	"encoding/csv"
	"os"

	"github.com/law-makers/contactscan/pkg/models"
)

// SaveCSV writes a contact bundle as type,value,platform rows. Emails and
// phones leave the platform column empty.
func SaveCSV(bundle *models.ContactBundle, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"type", "value", "platform"}); err != nil {
		return err
	}

	for _, email := range bundle.Emails {
		if err := writer.Write([]string{"email", email, ""}); err != nil {
			return err
		}
	}
	for _, phone := range bundle.Phones {
		if err := writer.Write([]string{"phone", phone, ""}); err != nil {
			return err
		}
	}
	for _, social := range bundle.Socials {
		if err := writer.Write([]string{"social", social.URL, social.Platform}); err != nil {
			return err
		}
	}

	return nil
}
