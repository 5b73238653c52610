package randseg

import (
	"fmt"

	"github.com/kiteco/randseg/kite-golib/errors"
)

var (
	// ErrMissingTrainingInput is returned by Train when neither words nor a bigram
	// inventory were supplied.
	ErrMissingTrainingInput = errors.New("must provide words or a bigram inventory to train on")

	// ErrNotTrained is returned when segmenting with a model that was never trained or loaded.
	ErrNotTrained = errors.New("segmentation with vocabulary control requires a trained model")

	// ErrBigramPoolExhausted is returned by Train when the inventory empties before
	// the requested number of merges was learned.
	ErrBigramPoolExhausted = errors.New("bigram inventory exhausted")

	// ErrAlreadyTrained is returned by Train on a model that is already trained.
	ErrAlreadyTrained = errors.New("model is already trained")

	// ErrInvalidUTF8 is returned when saving to JSON a model or inventory holding text
	// that is not valid UTF-8. Such models can be saved as gob.
	ErrInvalidUTF8 = errors.New("JSON cannot hold invalid UTF-8, use a .gob path")
)

// SerializationError reports a failure to save or load a model or inventory.
type SerializationError struct {
	Op   string
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *SerializationError) Unwrap() error { return e.Err }

// Cause returns the underlying error, for errors.Cause
func (e *SerializationError) Cause() error { return e.Err }
