package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/anatolykoptev/go_poemas/internal/engine/poems"
)

// SaveCSV writes the catalog as a UTF-8 CSV file. An empty catalog writes
// nothing and is not an error.
func SaveCSV(catalog []*poems.Poem, path string) error {
	if len(catalog) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	rows := makeRows(catalog)
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
