// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 各エラー種別は構造化されたフィールドを持ち、呼び出し側は errors.As で種別ごとに分岐できます。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("pimastat-warning: %v\n", w)
	}
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// pkg/log.SetupLogger はここに構造化ロガーを登録します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn は警告を発生させます。処理は中断されません。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ExcludedColumnWarning は数値でない列が統計計算から除外された場合の警告です。
type ExcludedColumnWarning struct {
	Column string
	Type   string
}

func (w *ExcludedColumnWarning) Error() string {
	return fmt.Sprintf("column '%s' of type %s is not numeric and was excluded from feature statistics", w.Column, w.Type)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ExcludedColumnWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("column_type", w.Type).
		Str("type", "ExcludedColumnWarning")
}

// NewExcludedColumnWarning は新しいExcludedColumnWarningを作成します。
func NewExcludedColumnWarning(column, typ string) *ExcludedColumnWarning {
	return &ExcludedColumnWarning{Column: column, Type: typ}
}

// EmptyPartitionWarning は分割の結果、片方の部分集合が空になった場合の警告です。
// 例えば test_ratio=1 のとき訓練データは0行になります。
type EmptyPartitionWarning struct {
	Partition string
	TestRatio float64
	Rows      int
}

func (w *EmptyPartitionWarning) Error() string {
	return fmt.Sprintf("%s partition is empty (test_ratio=%.3f, rows=%d)", w.Partition, w.TestRatio, w.Rows)
}

// NewEmptyPartitionWarning は新しいEmptyPartitionWarningを作成します。
func NewEmptyPartitionWarning(partition string, testRatio float64, rows int) *EmptyPartitionWarning {
	return &EmptyPartitionWarning{Partition: partition, TestRatio: testRatio, Rows: rows}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NetworkError はデータの取得元に到達できない、または2xx以外の応答を受けた場合のエラーです。
// StatusCode は応答が得られなかった場合 0 になります。
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pimastat: GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("pimastat: GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NetworkError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("url", e.URL).
		Int("status_code", e.StatusCode).
		Str("type", "NetworkError")
}

// NewNetworkError は新しいNetworkErrorを作成し、スタックトレースを付与します。
func NewNetworkError(url string, statusCode int, cause error) error {
	return errors.WithStack(&NetworkError{URL: url, StatusCode: statusCode, Err: cause})
}

// ColumnCountError は読み込んだ表の列数と列名リストの長さが一致しない場合のエラーです。
// Expected は表が実際に持つ列数、Actual は与えられた列名の数です。
type ColumnCountError struct {
	Expected int
	Actual   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("pimastat: number of columns of loaded table is not equal to the expected one. Actual: %d, Expected: %d", e.Actual, e.Expected)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnCountError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("expected", e.Expected).
		Int("actual", e.Actual).
		Str("type", "ColumnCountError")
}

// NewColumnCountError は新しいColumnCountErrorを作成し、スタックトレースを付与します。
func NewColumnCountError(expected, actual int) error {
	return errors.WithStack(&ColumnCountError{Expected: expected, Actual: actual})
}

// UnknownColumnError は指定された列が表に存在しない場合のエラーです。
type UnknownColumnError struct {
	Column    string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("pimastat: unknown column '%s' (available: %v)", e.Column, e.Available)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnknownColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Strs("available", e.Available).
		Str("type", "UnknownColumnError")
}

// NewUnknownColumnError は新しいUnknownColumnErrorを作成し、スタックトレースを付与します。
func NewUnknownColumnError(column string, available []string) error {
	return errors.WithStack(&UnknownColumnError{Column: column, Available: available})
}

// InvalidRatioError は分割比率が (0, 1] の範囲外の場合のエラーです。
type InvalidRatioError struct {
	Ratio float64
}

func (e *InvalidRatioError) Error() string {
	return fmt.Sprintf("pimastat: test ratio must be in (0, 1], got %v", e.Ratio)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidRatioError) MarshalZerologObject(event *zerolog.Event) {
	event.Float64("ratio", e.Ratio).
		Str("type", "InvalidRatioError")
}

// NewInvalidRatioError は新しいInvalidRatioErrorを作成し、スタックトレースを付与します。
func NewInvalidRatioError(ratio float64) error {
	return errors.WithStack(&InvalidRatioError{Ratio: ratio})
}

// MalformedFieldError はラベルの再符号化で値が存在しない、または数値でない場合のエラーです。
// Value は値が存在しない場合 nil になります。
type MalformedFieldError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("pimastat: field '%s': %s (got: %v)", e.Field, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MalformedFieldError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("field", e.Field).
		Interface("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "MalformedFieldError")
}

// NewMalformedFieldError は新しいMalformedFieldErrorを作成し、スタックトレースを付与します。
func NewMalformedFieldError(field string, value interface{}, reason string) error {
	return errors.WithStack(&MalformedFieldError{Field: field, Value: value, Reason: reason})
}

// LengthMismatchError は名前と値の列の長さが異なる場合のエラーです。
type LengthMismatchError struct {
	Op     string
	Names  int
	Values int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("pimastat: %s: got %d names but %d values", e.Op, e.Names, e.Values)
}

// NewLengthMismatchError は新しいLengthMismatchErrorを作成し、スタックトレースを付与します。
func NewLengthMismatchError(op string, names, values int) error {
	return errors.WithStack(&LengthMismatchError{Op: op, Names: names, Values: values})
}

// NotLoadedError はデータを読み込む前に統計や分割を要求した場合のエラーです。
type NotLoadedError struct {
	Processor string
	Method    string
}

func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("pimastat: %s: no dataset loaded. Call Load() before using %s()", e.Processor, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotLoadedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("processor", e.Processor).
		Str("method", e.Method).
		Str("type", "NotLoadedError")
}

// NewNotLoadedError は新しいNotLoadedErrorを作成し、スタックトレースを付与します。
func NewNotLoadedError(processor, method string) error {
	return errors.WithStack(&NotLoadedError{Processor: processor, Method: method})
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("pimastat: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// StackTrace はcockroachdb/errorsが記録したスタックトレースを文字列で返します。
// スタックが記録されていない場合は空文字列です。
func StackTrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
