package store

// One physical table per registered draw table. The seven-field tables
// leave f8..f10 out entirely rather than carrying always-null columns.
const schema = `
CREATE TABLE IF NOT EXISTS draws_matin (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    draw_date TEXT NOT NULL,
    f1 INTEGER, f2 INTEGER, f3 INTEGER, f4 INTEGER, f5 INTEGER, f6 INTEGER, f7 INTEGER
);

CREATE TABLE IF NOT EXISTS draws_soir (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    draw_date TEXT NOT NULL,
    f1 INTEGER, f2 INTEGER, f3 INTEGER, f4 INTEGER, f5 INTEGER, f6 INTEGER, f7 INTEGER
);

CREATE TABLE IF NOT EXISTS draws_loto (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    draw_date TEXT NOT NULL,
    f1 INTEGER, f2 INTEGER, f3 INTEGER, f4 INTEGER, f5 INTEGER,
    f6 INTEGER, f7 INTEGER, f8 INTEGER, f9 INTEGER, f10 INTEGER
);

CREATE INDEX IF NOT EXISTS idx_draws_matin_date ON draws_matin(draw_date);
CREATE INDEX IF NOT EXISTS idx_draws_soir_date ON draws_soir(draw_date);
CREATE INDEX IF NOT EXISTS idx_draws_loto_date ON draws_loto(draw_date);
`
