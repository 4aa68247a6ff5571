// Package storage provides SQLite-based persistence for the quiz question
// bank and answer history. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/gagank1/Flappy-Nerd/internal/quiz"
)

// DefaultPath is the database location used when no --db flag is given.
const DefaultPath = "~/.flappynerd/flappynerd.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// QuestionStats contains aggregated answer history for one question.
type QuestionStats struct {
	Prompt   string
	Topic    string
	Asked    int
	Correct  int
	Accuracy float64
	LastSeen time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic TEXT NOT NULL DEFAULT '',
			prompt TEXT NOT NULL UNIQUE,
			correct TEXT NOT NULL,
			wrong TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_questions_topic ON questions(topic);

		CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			prompt TEXT NOT NULL,
			topic TEXT NOT NULL DEFAULT '',
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_answers_prompt ON answers(prompt);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportBank inserts all questions from a bank, skipping prompts that
// already exist. Returns the number of newly inserted questions.
func (s *Store) ImportBank(b *quiz.Bank) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, q := range b.Questions() {
		res, err := tx.Exec(
			`INSERT OR IGNORE INTO questions (topic, prompt, correct, wrong)
			 VALUES (?, ?, ?, ?)`,
			q.Topic, q.Prompt, q.Correct, q.Wrong,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot import question %q: %w", q.Prompt, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("storage: cannot read import result: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return inserted, nil
}

// LoadBank builds a question bank from all stored questions.
// Returns an error if the table is empty; callers fall back to the
// embedded starter bank.
func (s *Store) LoadBank() (*quiz.Bank, error) {
	rows, err := s.db.Query(
		`SELECT id, topic, prompt, correct, wrong FROM questions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query questions: %w", err)
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.ID, &q.Topic, &q.Prompt, &q.Correct, &q.Wrong); err != nil {
			return nil, fmt.Errorf("storage: cannot scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return quiz.NewBank(questions)
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count questions: %w", err)
	}
	return n, nil
}

// RecordAnswer stores the outcome of one answered question.
func (s *Store) RecordAnswer(q quiz.Question, correct bool) error {
	_, err := s.db.Exec(
		`INSERT INTO answers (prompt, topic, correct) VALUES (?, ?, ?)`,
		q.Prompt, q.Topic, correct,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record answer: %w", err)
	}
	return nil
}

// Stats aggregates the answer history per question, worst accuracy first,
// so the player sees what to drill.
func (s *Store) Stats() ([]QuestionStats, error) {
	rows, err := s.db.Query(
		`SELECT prompt, topic, COUNT(*), SUM(correct), MAX(created_at)
		 FROM answers
		 GROUP BY prompt
		 ORDER BY CAST(SUM(correct) AS REAL) / COUNT(*) ASC, COUNT(*) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []QuestionStats
	for rows.Next() {
		var st QuestionStats
		var lastSeen any
		if err := rows.Scan(&st.Prompt, &st.Topic, &st.Asked, &st.Correct, &lastSeen); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if st.Asked > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Asked)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := lastSeen.(type) {
		case time.Time:
			st.LastSeen = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.LastSeen = parsed
			}
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// TotalStats returns the total answered and correct counts.
func (s *Store) TotalStats() (asked, correct int, err error) {
	var sum sql.NullInt64
	err = s.db.QueryRow(`SELECT COUNT(*), SUM(correct) FROM answers`).Scan(&asked, &sum)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	if sum.Valid {
		correct = int(sum.Int64)
	}
	return asked, correct, nil
}

// ClearAnswers deletes the whole answer history.
func (s *Store) ClearAnswers() error {
	if _, err := s.db.Exec(`DELETE FROM answers`); err != nil {
		return fmt.Errorf("storage: cannot clear answers: %w", err)
	}
	return nil
}
