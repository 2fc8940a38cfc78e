// Package filestore persists the reservation list as a single JSON
// document on disk. There is no partial update: every write replaces
// the whole document.
package filestore

import (
	"encoding/json"
	"os"
	"time"

	"booking-calendar/internal/infra"
)

// Record is the wire shape of one reservation, matching the export and
// import payloads field for field.
type Record struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Platform   string    `json:"platform"`
	Status     string    `json:"status"`
	Price      *float64  `json:"price,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

const filePermissions = 0o644

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the full collection. A missing document is initialized to
// an empty sequence on first access.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := s.Write(nil); writeErr != nil {
				return nil, writeErr
			}
			return []Record{}, nil
		}
		return nil, infra.WrapRepoErr(infra.KindIOFailure, "failed to read store file", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorrupt, "store file is not a sequence of records", err)
	}
	return records, nil
}

// Write replaces the stored document. The payload goes to a temp file
// first and is renamed over the target so readers never observe a
// half-written document.
func (s *Store) Write(records []Record) error {
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to encode store document", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, filePermissions); err != nil {
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to write store file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to replace store file", err)
	}
	return nil
}
