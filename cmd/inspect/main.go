package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	repo "resume-builder/internal/adapter/repository"
	infra "resume-builder/pkg/infrastructure"
)

// Prints the stored resume and flags fields the editor would mark empty.
func main() {
	cfg := infra.LoadConfig()
	path := cfg.StorePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	store, err := repo.NewFileStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r := repo.NewGateway(store, logger).Load(context.Background())

	fmt.Printf("%s (%s) [%s]\n", r.Title, r.Template.Name, r.ID)
	for i, s := range r.Sections {
		fmt.Printf("%d. %s\n", i, s.SectionType.DisplayName())
		empty := map[int]bool{}
		for _, j := range s.EmptyFields() {
			empty[j] = true
		}
		for j, f := range s.Fields {
			mark := ""
			if empty[j] {
				mark = "  <- This field cannot be empty"
			}
			fmt.Printf("   %d.%d %s [%s]: %q%s\n", i, j, f.FieldName, f.FieldType, f.Content, mark)
		}
	}
}
