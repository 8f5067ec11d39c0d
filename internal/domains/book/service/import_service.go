package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"library-backend/internal/domains/book"
)

// Spreadsheet column order for bulk import. Row 1 is the header.
const (
	colTitle = iota
	colAuthor
	colCategory
	colPublisher
	colShelf
	colISBN
	colLanguage
	colPageCount
	colQuantity
)

// importService implements book.ImportService. Each row goes through the
// normal create path so validation and cache invalidation behave exactly as
// they do for single creates.
type importService struct {
	repo    book.Repository
	creator book.Service
}

func NewImportService(repo book.Repository, creator book.Service) book.ImportService {
	return &importService{
		repo:    repo,
		creator: creator,
	}
}

func (s *importService) ImportBooks(ctx context.Context, r io.Reader) (*book.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	result := &book.ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		rowNum := i + 1
		created, err := s.importRow(ctx, row)
		if err != nil {
			result.Errors = append(result.Errors, book.ImportRowError{
				Row:     rowNum,
				Message: err.Error(),
			})
			continue
		}

		result.CreatedIDs = append(result.CreatedIDs, created.ID)
	}

	return result, nil
}

func (s *importService) importRow(ctx context.Context, row []string) (*book.Book, error) {
	title := strings.TrimSpace(cell(row, colTitle))
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	ids, err := s.repo.ResolveNames(ctx, book.ReferenceNames{
		Author:    cell(row, colAuthor),
		Category:  cell(row, colCategory),
		Publisher: cell(row, colPublisher),
		Shelf:     cell(row, colShelf),
	})
	if err != nil {
		return nil, err
	}

	pageCount, err := cellInt(row, colPageCount)
	if err != nil {
		return nil, fmt.Errorf("invalid page count: %v", err)
	}

	quantity, err := cellInt(row, colQuantity)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %v", err)
	}

	req := &book.CreateRequest{
		Title:       title,
		ISBN:        strings.TrimSpace(cell(row, colISBN)),
		Language:    strings.TrimSpace(cell(row, colLanguage)),
		PageCount:   pageCount,
		Quantity:    quantity,
		AuthorID:    ids.AuthorID,
		CategoryID:  ids.CategoryID,
		PublisherID: ids.PublisherID,
		ShelfID:     ids.ShelfID,
	}

	return s.creator.CreateBook(ctx, req, book.Assets{})
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cellInt(row []string, idx int) (int, error) {
	raw := strings.TrimSpace(cell(row, idx))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
