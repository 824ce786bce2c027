// Package corpus persists n-gram chain models in SQLite.
//
// A Store trains named models from plain text, where poems or stanzas are
// separated by blank lines, and loads them back as in-memory markov.Model
// values. Transitions are stored with frequencies; loading expands each
// frequency into repeated candidates so that sampling stays weighted.
//
// The Store works with any database/sql SQLite driver. Callers own the
// *sql.DB and must call SetupSchema once before NewStore.
package corpus
