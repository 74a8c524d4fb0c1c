// Package anki exports a generated deck so it can be studied outside
// glossyflash: as an Anki package (.apkg, a zip holding an SQLite
// collection) or as a CSV file for Anki's text importer.
package anki
