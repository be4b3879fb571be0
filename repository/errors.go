package repository

import "errors"

var (
	// ErrNilID 汎用エラー 引数のIDがNilです
	ErrNilID = errors.New("nil id")
	// ErrNotFound 汎用エラー 見つかりません
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists 汎用エラー 既に存在しています
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden 汎用エラー 禁止されています
	//
	// リポジトリ自身は返さない。リスト系操作は権限外の行を結果から除外するだけなので、
	// 明示的な権限エラーが必要な上位層が使う。
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgs 汎用エラー 引数が不正です
	ErrInvalidArgs = errors.New("invalid args")
)
