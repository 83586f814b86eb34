package packing

import "errors"

var (
	ErrListNotFound     = errors.New("packing list not found")
	ErrCategoryNotFound = errors.New("packing category not found")
	ErrItemNotFound     = errors.New("packing item not found")
	ErrEmptyLabel       = errors.New("item label is empty")
	ErrEmptyTitle       = errors.New("category title is empty")
)
