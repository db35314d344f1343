package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// ParsePosition converts a 1-based position given on the command line to a
// 0-based index
func ParsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidPosition, s)
	}
	return n - 1, nil
}

// SplitList splits a comma-separated flag value, dropping blanks
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ResolveBoard finds a board by ID, or else by its case-insensitive name.
// A name shared by several boards is rejected with ErrAmbiguousBoard.
func ResolveBoard(ctx context.Context, svc board.Service, ref string) (types.BoardID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: board", ErrMissingArgument)
	}

	_, err := svc.GetBoard(ctx, types.BoardID(ref))
	if err == nil {
		return types.BoardID(ref), nil
	}
	if !errors.Is(err, board.ErrBoardNotFound) {
		return "", err
	}

	summaries, err := svc.ListBoards(ctx)
	if err != nil {
		return "", err
	}
	var matches []types.BoardID
	for _, s := range summaries {
		if strings.EqualFold(s.Name, ref) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", board.ErrBoardNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d boards", ErrAmbiguousBoard, ref, len(matches))
	}
}

// ResolveBoardColumn loads the board named by boardRef and resolves
// columnRef on it by ID, 1-based position or title
func ResolveBoardColumn(ctx context.Context, svc board.Service, boardRef, columnRef string) (*models.Board, types.ColumnID, error) {
	boardID, err := ResolveBoard(ctx, svc, boardRef)
	if err != nil {
		return nil, "", err
	}
	b, err := svc.GetBoard(ctx, boardID)
	if err != nil {
		return nil, "", err
	}
	columnID, err := board.ResolveColumn(b, columnRef)
	if err != nil {
		return nil, "", err
	}
	return b, columnID, nil
}
