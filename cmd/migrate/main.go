// Command migrate applies the goose migrations to the store.
//
//	migrate [up|down|status|redo|version]
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/config"
)

func main() {
	cfg := config.New()
	command := "up"
	var args []string
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}
	pgCfg := repository.PGCfg{URL: cfg.StoreURL, Key: cfg.StoreKey}
	connString, err := pgCfg.ConnString()
	if err != nil {
		log.Fatal(err)
	}
	db, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatal("opening store error: ", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err = goose.Run(command, db, cfg.MigrationsDir, args...); err != nil {
		log.Fatalf("goose %s error: %v", command, err)
	}
}
