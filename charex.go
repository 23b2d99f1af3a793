// Package charex compares, searches and classifies fixed-width character
// buffers with the element-wise semantics of numpy's char module.
//
// A Buffer is a flat sequence of byte or codepoint slots, each padded with
// zeros up to a common stride. Binary operations broadcast a single-slot
// operand against every slot of the other one. All routines are pure and
// allocate only their result, so an Engine may be shared between goroutines.
package charex

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rawbytedev/charex/internal/classify"
	"github.com/rawbytedev/charex/internal/common"
	"github.com/rawbytedev/charex/internal/search"
)

// Range selects the ordinal range of the codepoint classification tables.
type Range = classify.Range

const (
	Latin1 = classify.Latin1
	ASCII  = classify.ASCII
)

// End selects the logical end of each element as a search window end.
const End = search.End

// Options configures an Engine. The zero value is valid and behaves like
// DefaultOptions.
type Options struct {
	// ClassRange bounds the codepoints the classifiers recognize; anything
	// beyond it belongs to no class. Byte buffers always use ASCII tables.
	ClassRange Range `yaml:"class_range"`
	// BisectThreshold is the widest stride whose logical length is found
	// by a linear probe; wider slots are bisected.
	BisectThreshold int `yaml:"bisect_threshold"`
	// Logger receives debug records for rejected calls. Nil disables logging.
	Logger *zap.Logger `yaml:"-"`
}

// Engine runs the buffer routines under a fixed set of Options.
type Engine struct {
	opts   Options
	log    *zap.Logger
	search search.Options
	bytes  classify.Classifier
	points classify.Classifier
}

// NewEngine validates opts and returns an Engine bound to them.
func NewEngine(opts Options) (*Engine, error) {
	if opts.ClassRange != Latin1 && opts.ClassRange != ASCII {
		return nil, fmt.Errorf("charex: unknown class range %d", uint8(opts.ClassRange))
	}
	if opts.BisectThreshold < 0 {
		return nil, fmt.Errorf("charex: negative bisect threshold %d", opts.BisectThreshold)
	}
	if opts.BisectThreshold == 0 {
		opts.BisectThreshold = common.DefaultBisectThreshold
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		opts:   opts,
		log:    log,
		search: search.Options{Threshold: opts.BisectThreshold},
		bytes:  classify.New(true, opts.ClassRange, opts.BisectThreshold),
		points: classify.New(false, opts.ClassRange, opts.BisectThreshold),
	}, nil
}

var defaultEngine = func() *Engine {
	e, err := NewEngine(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return e
}()

// Default returns the Engine used by the package-level functions.
func Default() *Engine { return defaultEngine }

// Options returns the options the engine was built with.
func (e *Engine) Options() Options { return e.opts }

// reject logs a refused call and returns err unchanged.
func (e *Engine) reject(op string, err error, bufs ...Buffer) error {
	if ce := e.log.Check(zap.DebugLevel, "charex: call rejected"); ce != nil {
		fields := []zap.Field{zap.String("op", op), zap.Error(err)}
		for i, b := range bufs {
			fields = append(fields,
				zap.Stringer(fmt.Sprintf("arg%d.encoding", i), b.Encoding()),
				zap.Int(fmt.Sprintf("arg%d.count", i), b.Len()),
				zap.Int(fmt.Sprintf("arg%d.stride", i), b.Stride()))
		}
		ce.Write(fields...)
	}
	return err
}

// match checks that a and b share an encoding.
func (e *Engine) match(op string, a, b Buffer) error {
	if a.enc != b.enc {
		err := fmt.Errorf("%s between %s and %s: %w", op, a.enc, b.enc, ErrUnsupportedCategory)
		return e.reject(op, err, a, b)
	}
	return nil
}

// StrLen returns the logical length of every slot of b.
func (e *Engine) StrLen(b Buffer) []int {
	if b.enc == Bytes {
		return common.StrLen(b.b, e.opts.BisectThreshold)
	}
	return common.StrLen(b.u, e.opts.BisectThreshold)
}

// RStrip returns a copy of b with trailing whitespace cleared, see
// Buffer.RStrip.
func (e *Engine) RStrip(b Buffer) Buffer {
	return b.rstrip(e.opts.BisectThreshold)
}

func StrLen(b Buffer) []int { return defaultEngine.StrLen(b) }
