package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"library-backend/internal/domains/book"
)

// resolvingBookRepo adds name resolution over the base fake: names present in
// known resolve, anything else is an unknown-reference error.
type resolvingBookRepo struct {
	*fakeBookRepo
	known map[string]uuid.UUID
}

func (r *resolvingBookRepo) ResolveNames(ctx context.Context, names book.ReferenceNames) (book.ReferenceIDs, error) {
	var ids book.ReferenceIDs
	resolve := func(label, name string) (*uuid.UUID, error) {
		if name == "" {
			return nil, nil
		}
		id, ok := r.known[name]
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", label, name)
		}
		return &id, nil
	}

	var err error
	if ids.AuthorID, err = resolve("author", names.Author); err != nil {
		return ids, err
	}
	if ids.CategoryID, err = resolve("category", names.Category); err != nil {
		return ids, err
	}
	if ids.PublisherID, err = resolve("publisher", names.Publisher); err != nil {
		return ids, err
	}
	if ids.ShelfID, err = resolve("shelf", names.Shelf); err != nil {
		return ids, err
	}
	return ids, nil
}

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []string{"Title", "Author", "Category", "Publisher", "Shelf", "ISBN", "Language", "Pages", "Quantity"}
	for col, v := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}

	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportBooksCreatesRows(t *testing.T) {
	repo := &resolvingBookRepo{
		fakeBookRepo: newFakeBookRepo(),
		known: map[string]uuid.UUID{
			"Nam Cao": uuid.New(),
			"Fiction": uuid.New(),
			"A-1":     uuid.New(),
		},
	}
	creator := NewBookService(repo, newFakeAssetStore(), &fakeEnqueuer{})
	importer := NewImportService(repo, creator)

	buf := buildWorkbook(t, [][]string{
		{"Chí Phèo", "Nam Cao", "Fiction", "", "A-1", "978-604-1", "vi", "120", "4"},
		{"Lão Hạc", "Nam Cao", "Fiction", "", "A-1", "978-604-2", "vi", "90", "2"},
	})

	result, err := importer.ImportBooks(context.Background(), buf)
	require.NoError(t, err)

	assert.Len(t, result.CreatedIDs, 2)
	assert.Empty(t, result.Errors)
	assert.Len(t, repo.books, 2)
}

func TestImportBooksReportsRowErrors(t *testing.T) {
	repo := &resolvingBookRepo{
		fakeBookRepo: newFakeBookRepo(),
		known: map[string]uuid.UUID{
			"Fiction": uuid.New(),
		},
	}
	creator := NewBookService(repo, newFakeAssetStore(), &fakeEnqueuer{})
	importer := NewImportService(repo, creator)

	buf := buildWorkbook(t, [][]string{
		{"Good Row", "", "Fiction", "", "", "", "vi", "100", "1"},
		{"", "", "Fiction", "", "", "", "", "", ""},                 // missing title
		{"Bad Shelf", "", "Fiction", "", "Z-9", "", "", "10", "1"},  // unknown shelf
		{"Bad Pages", "", "Fiction", "", "", "", "", "lots", "1"},   // non-numeric pages
	})

	result, err := importer.ImportBooks(context.Background(), buf)
	require.NoError(t, err)

	assert.Len(t, result.CreatedIDs, 1)
	require.Len(t, result.Errors, 3)

	rows := []int{result.Errors[0].Row, result.Errors[1].Row, result.Errors[2].Row}
	assert.Equal(t, []int{3, 4, 5}, rows)
	assert.Contains(t, result.Errors[1].Message, "unknown shelf")
}
