package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := LoadEnvFile(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	switch cmd {
	case "serve":
		return runServe(ConfigFromEnv())
	case "tui":
		return runTUI(ConfigFromEnv(), stdin, stdout, stderr)
	case "parse":
		return runParse(args, stdout, stderr)
	case "-h", "--help", "help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", cmd)
		printUsage(stderr)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  qa-bot [serve]        web quiz on $PORT (default 8080)")
	fmt.Fprintln(w, "  qa-bot tui            quiz in the terminal")
	fmt.Fprintln(w, "  qa-bot parse <file>   print the questions parsed from a .txt file as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: PORT, QUIZ_DB, QUIZ_SEED_FILE, QUIZ_ALLOWED_ORIGINS, NO_COLOR")
}

// setup opens the store and loads the seed questions.
func setup(cfg Config) (*Store, *Session, error) {
	db, err := OpenDB(cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	store := NewStore(db)
	b, err := SeedStore(store, cfg.SeedFile)
	if err != nil {
		return nil, nil, fmt.Errorf("seed: %w", err)
	}
	log.Printf("Seeded %d questions", b.Count)
	return store, NewSession(store), nil
}

func runServe(cfg Config) int {
	store, sess, err := setup(cfg)
	if err != nil {
		log.Printf("%v", err)
		return exitError
	}
	r := NewRouter(cfg, store, sess)
	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Printf("run: %v", err)
		return exitError
	}
	return exitOK
}

func runTUI(cfg Config, stdin io.Reader, stdout, stderr io.Writer) int {
	// keep log lines off the alt screen
	log.SetOutput(io.Discard)
	store, sess, err := setup(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if err := RunTUI(store, sess, cfg.NoColor, stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

func runParse(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: qa-bot parse <file>")
		return exitUsage
	}
	qs, err := ParseFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, loadErrorMessage(err))
		return exitError
	}
	if qs == nil {
		qs = []Question{}
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qs); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	fmt.Fprintf(stderr, "%d questions\n", len(qs))
	return exitOK
}
