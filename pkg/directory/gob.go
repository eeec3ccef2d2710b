package directory

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadGob deserializes contacts from a gob-encoded file into d.Contacts.
func (d *Directory) loadGob(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&d.Contacts); err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	return nil
}

// SaveGob serializes contacts to a gob-encoded file at path.
func SaveGob(contacts []Contact, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}

	if err := gob.NewEncoder(f).Encode(contacts); err != nil {
		f.Close()
		return fmt.Errorf("encode gob: %w", err)
	}
	return f.Close()
}
