package dataset

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/YuminosukeSato/pimastat/pkg/log"
	"github.com/go-gota/gota/dataframe"
)

// TableLoader is anything that produces a Table.
type TableLoader interface {
	Load(ctx context.Context) (*Table, error)
}

// Loader reads a Source and names its columns.
type Loader struct {
	source    Source
	names     []string
	cacheFile string
	target    string
	recoder   LabelRecoder
	logger    log.Logger
}

// LoadOption configures a Loader.
type LoadOption func(*Loader)

// WithCacheFile writes the fetched CSV to path and reads the table back from
// that file.
func WithCacheFile(path string) LoadOption {
	return func(l *Loader) {
		l.cacheFile = path
	}
}

// WithLabelRecoder recodes the target column after loading.
func WithLabelRecoder(target string, recoder LabelRecoder) LoadOption {
	return func(l *Loader) {
		l.target = target
		l.recoder = recoder
	}
}

// WithLogger sets the logger. Defaults to log.GetLogger().
func WithLogger(logger log.Logger) LoadOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader for src whose columns will be called names.
func NewLoader(src Source, names []string, opts ...LoadOption) *Loader {
	l := &Loader{
		source: src,
		names:  append([]string(nil), names...),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.GetLogger()
	}
	l.logger = l.logger.With(log.ComponentKey, "dataset", log.SourceKey, src.String())
	return l
}

// Load is shorthand for NewLoader(src, names, opts...).Load(ctx).
func Load(ctx context.Context, src Source, names []string, opts ...LoadOption) (*Table, error) {
	return NewLoader(src, names, opts...).Load(ctx)
}

// Load reads the source, checks the column count against the configured
// names and assigns them. On any failure it returns a nil table.
func (l *Loader) Load(ctx context.Context) (table *Table, err error) {
	// Recover の後に実行され、panic 時にも途中のテーブルを返さない
	defer func() {
		if err != nil {
			table = nil
		}
	}()
	defer errors.Recover(&err, "Loader.Load")
	start := time.Now()
	l.logger.Info("Loading dataset", log.OperationKey, log.OperationLoad)

	table, err = l.read(ctx)
	if err != nil {
		l.logger.Error("Failed to load dataset", log.ErrAttrKey, err)
		return nil, err
	}
	if err := ValidateColumnCount(table, l.names); err != nil {
		l.logger.Error("Unexpected number of columns", log.ErrAttrKey, err)
		return nil, err
	}
	table, err = table.Rename(l.names)
	if err != nil {
		return nil, err
	}
	if l.recoder != nil {
		l.logger.Debug("Converting label column from numeric to categorical", log.TargetKey, l.target)
		table, err = table.RecodeColumn(l.target, l.recoder)
		if err != nil {
			return nil, err
		}
	}

	l.logger.Info("Dataset loaded",
		log.SamplesKey, table.Nrow(),
		log.FeaturesKey, table.Ncol(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return table, nil
}

func (l *Loader) read(ctx context.Context) (*Table, error) {
	if fs, ok := l.source.(FrameSource); ok && fs.Table != nil {
		return fs.Table, nil
	}

	src := l.source
	if l.cacheFile != "" {
		if err := l.persist(ctx); err != nil {
			return nil, err
		}
		src = FileSource{Path: l.cacheFile}
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readCSV(rc)
}

// persist copies the source into the cache file.
func (l *Loader) persist(ctx context.Context) error {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	f, err := os.Create(l.cacheFile)
	if err != nil {
		return errors.Wrapf(err, "creating %s", l.cacheFile)
	}
	n, err := io.Copy(f, rc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", l.cacheFile)
	}
	l.logger.Debug("Dataset persisted", "path", l.cacheFile, log.BytesKey, n)
	return nil
}

func readCSV(r io.Reader) (*Table, error) {
	t, err := newTable(dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(true),
	))
	if err != nil {
		return nil, errors.Wrap(err, "parsing CSV")
	}
	return t, nil
}

// ValidateColumnCount fails with *errors.ColumnCountError when the table does
// not have exactly len(names) columns. Expected carries the table's column
// count and Actual the number of names supplied.
func ValidateColumnCount(t *Table, names []string) error {
	if t.Ncol() != len(names) {
		return errors.NewColumnCountError(t.Ncol(), len(names))
	}
	return nil
}
