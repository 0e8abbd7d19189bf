package demo

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mrlokans/nameboard/internal/entities"
)

//go:embed assets/names.txt
var embeddedNames []byte

// Seeder is the part of the names store Seed needs.
type Seeder interface {
	List() ([]entities.Name, error)
	Create(firstName string, liked bool) (*entities.Name, error)
}

// SampleNames returns the embedded sample names in file order.
func SampleNames() []string {
	var out []string
	scanner := bufio.NewScanner(bytes.NewReader(embeddedNames))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Seed fills an empty store with the sample names. A store that already has
// records is left alone. It returns the number of records created.
func Seed(store Seeder) (int, error) {
	existing, err := store.List()
	if err != nil {
		return 0, fmt.Errorf("list names: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, name := range SampleNames() {
		if _, err := store.Create(name, false); err != nil {
			return created, fmt.Errorf("create %q: %w", name, err)
		}
		created++
	}
	return created, nil
}
