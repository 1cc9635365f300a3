// Package migration holds the sqlite schema for the play store.
package migration

// Create sets up the schema on a fresh database. The identity index
// makes re-importing the same export files a no-op.
const Create = `
CREATE TABLE IF NOT EXISTS Play (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts INTEGER NOT NULL,
  ms_played INTEGER NOT NULL,
  artist TEXT NOT NULL,
  album TEXT NOT NULL,
  track TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS PlayIdentity ON Play (ts, artist, album, track);

CREATE INDEX IF NOT EXISTS PlayArtist ON Play (artist);
`
