package recipe

import "errors"

// Domain errors for recipe validation

var (
	ErrEmptyTitle          = errors.New("recipe title must not be empty")
	ErrNegativeTime        = errors.New("prep and cook time must not be negative")
	ErrInvalidServings     = errors.New("servings must be greater than 0")
	ErrEmptyIngredientName = errors.New("ingredient name is required")
	ErrNegativeAmount      = errors.New("ingredient amount cannot be negative")
	ErrUnknownSource       = errors.New("unknown recipe source")
)
