package sqlite

// Schema DDL. Media rows carry an ordinal so the gallery order survives
// load/save round trips.
const (
	createCats = `CREATE TABLE cats (
    cat_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    location_id TEXT NOT NULL,
    shelter_entry_year INTEGER NOT NULL,
    about TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCatMedia = `CREATE TABLE cat_media (
    cat_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    kind TEXT NOT NULL,
    content TEXT NOT NULL,
    PRIMARY KEY (cat_id, ordinal),
    FOREIGN KEY (cat_id) REFERENCES cats(cat_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxCatsLocation  = `CREATE INDEX idx_cats_location ON cats(location_id);`
	idxCatsCreatedAt = `CREATE INDEX idx_cats_created_at ON cats(created_at);`
	idxCatMediaCat   = `CREATE INDEX idx_cat_media_cat ON cat_media(cat_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCats,
	createCatMedia,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCatsLocation,
	idxCatsCreatedAt,
	idxCatMediaCat,
}
