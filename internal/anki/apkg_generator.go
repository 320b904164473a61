package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// APKGGenerator serializes a Package into an Anki .apkg container: a
// zip holding a collection.anki2 SQLite database, numbered media files,
// and a media mapping
type APKGGenerator struct {
	pkg        *Package
	mediaFiles map[string]int // maps package filename to media number
}

// NewAPKGGenerator creates a generator for the given package
func NewAPKGGenerator(pkg *Package) *APKGGenerator {
	return &APKGGenerator{
		pkg:        pkg,
		mediaFiles: make(map[string]int),
	}
}

// Generate writes the .apkg file. Any failure of the container-writing
// steps is returned as a PackagingError.
func (g *APKGGenerator) Generate(outputPath string) error {
	if err := g.generate(outputPath); err != nil {
		return &PackagingError{Err: err}
	}
	return nil
}

func (g *APKGGenerator) generate(outputPath string) error {
	// Build the package in a temp directory, then zip it up
	tempDir, err := os.MkdirTemp("", "anki_export_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// Media files first; this populates g.mediaFiles
	if err := g.writeMediaFiles(tempDir); err != nil {
		return fmt.Errorf("failed to write media files: %w", err)
	}

	if err := g.createMediaMapping(tempDir); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return g.createZipPackage(tempDir, outputPath)
}

// createDatabase creates the Anki SQLite database
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := g.createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}

	return nil
}

// createTables creates the required Anki database tables
func (g *APKGGenerator) createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE col (
			id integer PRIMARY KEY,
			crt integer NOT NULL,
			mod integer NOT NULL,
			scm integer NOT NULL,
			ver integer NOT NULL,
			dty integer NOT NULL,
			usn integer NOT NULL,
			ls integer NOT NULL,
			conf text NOT NULL,
			models text NOT NULL,
			decks text NOT NULL,
			dconf text NOT NULL,
			tags text NOT NULL
		)`,
		`CREATE TABLE notes (
			id integer PRIMARY KEY,
			guid text NOT NULL,
			mid integer NOT NULL,
			mod integer NOT NULL,
			usn integer NOT NULL,
			tags text NOT NULL,
			flds text NOT NULL,
			sfld text NOT NULL,
			csum integer NOT NULL,
			flags integer NOT NULL,
			data text NOT NULL
		)`,
		`CREATE TABLE cards (
			id integer PRIMARY KEY,
			nid integer NOT NULL,
			did integer NOT NULL,
			ord integer NOT NULL,
			mod integer NOT NULL,
			usn integer NOT NULL,
			type integer NOT NULL,
			queue integer NOT NULL,
			due integer NOT NULL,
			ivl integer NOT NULL,
			factor integer NOT NULL,
			reps integer NOT NULL,
			lapses integer NOT NULL,
			left integer NOT NULL,
			odue integer NOT NULL,
			odid integer NOT NULL,
			flags integer NOT NULL,
			data text NOT NULL
		)`,
		`CREATE TABLE revlog (
			id integer PRIMARY KEY,
			cid integer NOT NULL,
			usn integer NOT NULL,
			ease integer NOT NULL,
			ivl integer NOT NULL,
			lastIvl integer NOT NULL,
			factor integer NOT NULL,
			time integer NOT NULL,
			type integer NOT NULL
		)`,
		`CREATE TABLE graves (
			usn integer NOT NULL,
			oid integer NOT NULL,
			type integer NOT NULL
		)`,
		`CREATE INDEX ix_notes_csum ON notes (csum)`,
		`CREATE INDEX ix_notes_usn ON notes (usn)`,
		`CREATE INDEX ix_cards_usn ON cards (usn)`,
		`CREATE INDEX ix_cards_nid ON cards (nid)`,
		`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
		`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
		`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// insertCollection inserts the collection metadata: both decks and
// both models, plus default deck and scheduling configuration
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	decks := map[string]interface{}{
		"1": g.createDeckConfig(1, "Default", now),
	}
	for _, deck := range []*Deck{g.pkg.Pronunciation, g.pkg.Translation} {
		decks[strconv.FormatInt(deck.ID, 10)] = g.createDeckConfig(deck.ID, deck.Name, now)
	}
	decksJSON, _ := json.Marshal(decks)

	models := map[string]interface{}{}
	for _, model := range g.pkg.Models {
		models[strconv.FormatInt(model.ID, 10)] = g.createModelConfig(model, now)
	}
	modelsJSON, _ := json.Marshal(models)

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
		"curModel":      strconv.FormatInt(g.pkg.Models[0].ID, 10),
		"dayLearnFirst": false,
	}
	confJSON, _ := json.Marshal(conf)

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
	dconfJSON, _ := json.Marshal(dconf)

	query := `INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(query,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver (schema version)
		0,        // dty
		0,        // usn
		0,        // ls
		string(confJSON),
		string(modelsJSON),
		string(decksJSON),
		string(dconfJSON),
		"{}", // tags
	)
	return err
}

// createDeckConfig creates one deck entry for the col table
func (g *APKGGenerator) createDeckConfig(id int64, name string, now int64) map[string]interface{} {
	return map[string]interface{}{
		"id":               id,
		"name":             name,
		"mod":              now,
		"desc":             "",
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

// createModelConfig creates one note type entry for the col table
func (g *APKGGenerator) createModelConfig(model *CardModel, now int64) map[string]interface{} {
	flds := make([]map[string]interface{}, len(model.Fields))
	for i, name := range model.Fields {
		flds[i] = map[string]interface{}{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   20,
			"media":  []string{},
		}
	}

	tmpls := make([]map[string]interface{}, len(model.Templates))
	for i, tmpl := range model.Templates {
		tmpls[i] = map[string]interface{}{
			"name":  tmpl.Name,
			"ord":   i,
			"qfmt":  tmpl.Qfmt,
			"afmt":  tmpl.Afmt,
			"did":   nil,
			"bqfmt": "",
			"bafmt": "",
		}
	}

	return map[string]interface{}{
		"id":    model.ID,
		"name":  model.Name,
		"type":  0,
		"mod":   now,
		"usn":   -1,
		"sortf": 0,
		"did":   nil,
		"req":   generationRequirement(),
		"vers":  []int{},
		"tags":  []string{},
		"latexPre": `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`,
		"latexPost": `\end{document}`,
		"flds":      flds,
		"tmpls":     tmpls,
		"css":       cardCSS,
	}
}

const cardCSS = `.card {
  font-family: Arial, sans-serif;
  font-size: 20px;
  text-align: center;
  color: #333;
  background-color: white;
}

hr#answer {
  margin: 30px 0;
  border: 0;
  border-top: 1px solid #ecf0f1;
}`

// insertNotesAndCards inserts all notes and their cards. Note GUIDs
// are the stable content-derived identifiers; row IDs only have to be
// unique within this file.
func (g *APKGGenerator) insertNotesAndCards(db *sql.DB) error {
	now := time.Now()
	nextID := now.UnixMilli()

	for _, deck := range []*Deck{g.pkg.Pronunciation, g.pkg.Translation} {
		for _, note := range deck.Notes {
			noteID := nextID
			cardID := nextID + 1
			nextID += 2

			fields := joinFields(note.Fields)

			noteQuery := `INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
			_, err := db.Exec(noteQuery,
				noteID,                               // id
				strconv.FormatInt(note.GUID, 10),     // guid
				note.ModelID,                         // mid
				now.Unix(),                           // mod
				-1,                                   // usn
				"",                                   // tags
				fields,                               // flds
				note.Fields[0],                       // sfld (sort field)
				0,                                    // csum
				0,                                    // flags
				"",                                   // data
			)
			if err != nil {
				return fmt.Errorf("failed to insert note: %w", err)
			}

			cardQuery := `INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
			_, err = db.Exec(cardQuery,
				cardID,     // id
				noteID,     // nid
				deck.ID,    // did
				0,          // ord (single template)
				now.Unix(), // mod
				-1,         // usn
				0,          // type (0=new)
				0,          // queue (0=new)
				noteID,     // due (for new cards, this is position)
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
				return fmt.Errorf("failed to insert card: %w", err)
			}
		}
	}

	return nil
}

// joinFields joins note fields with the Anki field separator (ASCII 31)
func joinFields(fields []string) string {
	result := ""
	for i, field := range fields {
		if i > 0 {
			result += "\x1f"
		}
		result += field
	}
	return result
}

// writeMediaFiles writes media as numbered files and assigns numbers
// in sorted filename order so re-exports number media the same way
func (g *APKGGenerator) writeMediaFiles(tempDir string) error {
	filenames := make([]string, 0, len(g.pkg.Media))
	for filename := range g.pkg.Media {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	for i, filename := range filenames {
		targetPath := filepath.Join(tempDir, strconv.Itoa(i))
		if err := os.WriteFile(targetPath, g.pkg.Media[filename], 0644); err != nil {
			return fmt.Errorf("failed to write media file %s: %w", filename, err)
		}
		g.mediaFiles[filename] = i
	}

	return nil
}

// createMediaMapping creates the media mapping JSON file
func (g *APKGGenerator) createMediaMapping(tempDir string) error {
	// Reverse mapping (number -> filename)
	mapping := make(map[string]string)
	for filename, num := range g.mediaFiles {
		mapping[strconv.Itoa(num)] = filename
	}

	data, err := json.Marshal(mapping)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(tempDir, "media"), data, 0644)
}

// createZipPackage creates the final .apkg zip file
func (g *APKGGenerator) createZipPackage(tempDir, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)
	defer archive.Close()

	return filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(tempDir, path)
		if err != nil {
			return err
		}

		writer, err := archive.Create(relPath)
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
	})
}
