package anki

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name string
		opts CSVOptions
		want [][]string
	}{
		{
			name: "with headers",
			opts: DefaultCSVOptions(),
			want: [][]string{
				{"Term", "Definition", "Context"},
				{"Chat", "Cat", "Le chat dort."},
				{"Chien", "Dog", ""},
			},
		},
		{
			name: "without headers",
			opts: CSVOptions{},
			want: [][]string{
				{"Chat", "Cat", "Le chat dort."},
				{"Chien", "Dog", ""},
			},
		},
		{
			name: "with ids",
			opts: CSVOptions{IncludeHeaders: true, IncludeIDs: true},
			want: [][]string{
				{"ID", "Term", "Definition", "Context"},
				{"card-1-0", "Chat", "Cat", "Le chat dort."},
				{"card-1-1", "Chien", "Dog", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCSV(&buf, sampleDeck(), tt.opts); err != nil {
				t.Fatalf("WriteCSV() error = %v", err)
			}

			records, err := csv.NewReader(&buf).ReadAll()
			if err != nil {
				t.Fatalf("Failed to parse CSV: %v", err)
			}
			if !reflect.DeepEqual(records, tt.want) {
				t.Errorf("WriteCSV() = %q, want %q", records, tt.want)
			}
		})
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.csv")

	if err := WriteCSVFile(sampleDeck(), path, DefaultCSVOptions()); err != nil {
		t.Fatalf("WriteCSVFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if !bytes.Contains(data, []byte(`Chat,Cat,Le chat dort.`)) {
		t.Errorf("CSV content missing first card: %s", data)
	}
}

func TestWriteCSVFile_EmptyDeck(t *testing.T) {
	err := WriteCSVFile(nil, filepath.Join(t.TempDir(), "deck.csv"), DefaultCSVOptions())
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("Expected ErrEmptyDeck, got %v", err)
	}
}
