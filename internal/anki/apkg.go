package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/glossyflash/internal/deck"
)

// APKGWriter creates Anki package files (.apkg) holding one note per card
type APKGWriter struct {
	deckName string
	deckID   int64
	modelID  int64
	now      func() time.Time
}

// NewAPKGWriter creates a writer for a deck called deckName
func NewAPKGWriter(deckName string) *APKGWriter {
	if strings.TrimSpace(deckName) == "" {
		deckName = "Glossy Flash"
	}
	// Timestamp based ids keep repeated imports from clashing
	now := time.Now().UnixMilli()
	return &APKGWriter{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		now:      time.Now,
	}
}

// DeckName returns the name the deck gets inside Anki
func (w *APKGWriter) DeckName() string {
	return w.deckName
}

// Write exports cards to outputPath. An empty deck is rejected since Anki
// refuses to import a package without notes.
func (w *APKGWriter) Write(cards deck.Deck, outputPath string) error {
	if cards.Empty() {
		return ErrEmptyDeck
	}

	tempDir, err := os.MkdirTemp("", "glossyflash_apkg_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// No media is shipped, but Anki expects the mapping file
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := w.createDatabase(dbPath, cards); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := createZipPackage(tempDir, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}

	return nil
}

func (w *APKGWriter) createDatabase(dbPath string, cards deck.Deck) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	if err := w.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := w.insertNotes(tx, cards); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert notes: %w", err)
	}
	return tx.Commit()
}

func (w *APKGWriter) insertCollection(db *sql.DB) error {
	now := w.now().Unix()

	deckEntry := func(id int64, name, desc string) map[string]interface{} {
		return map[string]interface{}{
			"id":               id,
			"name":             name,
			"mod":              now,
			"desc":             desc,
			"collapsed":        false,
			"dyn":              0,
			"conf":             1,
			"usn":              0,
			"newToday":         []int{0, 0},
			"revToday":         []int{0, 0},
			"lrnToday":         []int{0, 0},
			"timeToday":        []int{0, 0},
			"browserCollapsed": false,
			"extendNew":        10,
			"extendRev":        50,
		}
	}
	decks := map[string]interface{}{
		"1": deckEntry(1, "Default", ""),
		strconv.FormatInt(w.deckID, 10): deckEntry(w.deckID, w.deckName,
			"Flashcards generated by Glossy Flash"),
	}

	models := map[string]interface{}{
		strconv.FormatInt(w.modelID, 10): w.noteTypeConfig(),
	}

	conf := map[string]interface{}{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      strconv.FormatInt(w.modelID, 10),
		"dayLearnFirst": false,
	}

	dconf := map[string]interface{}{
		"1": map[string]interface{}{
			"id":   1,
			"name": "Default",
			"dyn":  0,
			"new": map[string]interface{}{
				"delays":        []int{1, 10},
				"ints":          []int{1, 4, 7},
				"initialFactor": 2500,
				"perDay":        20,
				"order":         1,
				"bury":          true,
				"separate":      true,
			},
			"lapse": map[string]interface{}{
				"delays":      []int{10},
				"mult":        0,
				"minInt":      1,
				"leechFails":  8,
				"leechAction": 0,
			},
			"rev": map[string]interface{}{
				"perDay":   100,
				"ease4":    1.3,
				"fuzz":     0.05,
				"maxIvl":   36500,
				"ivlFct":   1,
				"bury":     true,
				"minSpace": 1,
			},
			"timer":    0,
			"maxTaken": 60,
			"usn":      0,
			"mod":      now,
			"autoplay": true,
			"replayq":  true,
		},
	}

	encoded := make([]string, 0, 4)
	for _, v := range []interface{}{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		encoded = append(encoded, string(data))
	}

	_, err := db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver (schema version)
		0,        // dty
		0,        // usn
		0,        // ls
		encoded[0],
		encoded[1],
		encoded[2],
		encoded[3],
		"{}", // tags
	)
	return err
}

func (w *APKGWriter) insertNotes(tx *sql.Tx, cards deck.Deck) error {
	now := w.now()
	base := now.UnixMilli()

	noteStmt, err := tx.Prepare(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer noteStmt.Close()

	cardStmt, err := tx.Prepare(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cardStmt.Close()

	for i, card := range cards {
		noteID := base + int64(i*2)
		cardID := noteID + 1
		sortField := html.EscapeString(card.Term)

		_, err := noteStmt.Exec(
			noteID,                   // id
			uuid.NewString(),         // guid
			w.modelID,                // mid
			now.Unix(),               // mod
			-1,                       // usn
			"glossyflash",            // tags
			noteFieldsOf(card),       // flds
			sortField,                // sfld (sort field)
			fieldChecksum(sortField), // csum
			0,                        // flags
			"",                       // data
		)
		if err != nil {
			return fmt.Errorf("failed to insert note for %q: %w", card.Term, err)
		}

		_, err = cardStmt.Exec(
			cardID,     // id
			noteID,     // nid
			w.deckID,   // did
			0,          // ord
			now.Unix(), // mod
			-1,         // usn
			0,          // type (0=new)
			0,          // queue (0=new)
			i+1,        // due (new card position)
			0,          // ivl
			0,          // factor
			0,          // reps
			0,          // lapses
			0,          // left
			0,          // odue
			0,          // odid
			0,          // flags
			"",         // data
		)
		if err != nil {
			return fmt.Errorf("failed to insert card for %q: %w", card.Term, err)
		}
	}

	return nil
}

// noteFieldsOf joins the card fields; Anki renders fields as HTML
func noteFieldsOf(card deck.Flashcard) string {
	fields := []string{
		html.EscapeString(card.Term),
		html.EscapeString(card.Definition),
		html.EscapeString(card.Context),
	}
	return strings.Join(fields, fieldSeparator)
}

// fieldChecksum is Anki's duplicate check: the first 8 hex digits of the
// SHA1 of the sort field
func fieldChecksum(field string) int64 {
	sum := sha1.Sum([]byte(field))
	v, _ := strconv.ParseInt(hex.EncodeToString(sum[:4]), 16, 64)
	return v
}

// createFile opens the package file for writing
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func createZipPackage(tempDir, outputPath string) error {
	zipFile, err := createFile(outputPath)
	if err != nil {
		return err
	}

	if err := writeZipPackage(zipFile, tempDir); err != nil {
		zipFile.Close()
		return err
	}
	return zipFile.Close()
}

func writeZipPackage(w io.Writer, tempDir string) error {
	archive := zip.NewWriter(w)

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := addZipEntry(archive, filepath.Join(tempDir, entry.Name()), entry.Name()); err != nil {
			return err
		}
	}

	return archive.Close()
}

func addZipEntry(archive *zip.Writer, path, name string) error {
	writer, err := archive.Create(name)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(writer, file)
	return err
}
