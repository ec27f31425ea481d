package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS debts (
    debt_id        TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    balance        REAL NOT NULL,
    apr            REAL NOT NULL DEFAULT 0,
    min_payment    REAL NOT NULL,
    order_index    INTEGER NOT NULL,
    created_at     TEXT NOT NULL,
    updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS buckets (
    bucket_id        TEXT PRIMARY KEY,
    debt_id          TEXT NOT NULL REFERENCES debts(debt_id) ON DELETE CASCADE,
    name             TEXT NOT NULL,
    balance          REAL NOT NULL,
    apr              REAL NOT NULL,
    payment_priority INTEGER NOT NULL,
    category         TEXT NOT NULL DEFAULT 'other'
);

CREATE TABLE IF NOT EXISTS runs (
    run_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    ran_at          TEXT NOT NULL,
    extra_monthly   REAL NOT NULL,
    total_months    INTEGER NOT NULL,
    total_interest  REAL NOT NULL,
    total_principal REAL NOT NULL,
    freedom_date    TEXT NOT NULL,
    cap_reached     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_buckets_debt ON buckets(debt_id);
CREATE INDEX IF NOT EXISTS idx_debts_order ON debts(order_index);
CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
`
