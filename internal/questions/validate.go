package questions

import (
	"errors"

	qsierrors "github.com/standardbeagle/qsi/internal/errors"
	"github.com/standardbeagle/qsi/internal/types"
)

// Validate checks a question batch before matching. Only batch-level
// malformation is an error: a nil batch (position 0). An individual
// empty-text question is fine; the matcher scores it 0.0 everywhere and
// flags it low-confidence rather than rejecting the batch.
func Validate(questions []types.Question) error {
	if questions == nil {
		return qsierrors.NewInvalidQuestionError("validate", 0, errors.New("question batch is nil"))
	}
	return nil
}
