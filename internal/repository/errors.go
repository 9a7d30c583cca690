package repository

import (
	"errors"
	"fmt"

	"NZWalks-API/internal/domain/model"
)

// wrapUnlessNotFound ErrNotFound は値としてそのまま返し、それ以外は文脈を付けてラップする
func wrapUnlessNotFound(msg string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
