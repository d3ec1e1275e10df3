// internal/model/context.go
package model

type contextKey string

// UserUIDKey は認証ミドルウェアがユーザーUIDを格納するコンテキストキーです。
const UserUIDKey contextKey = "userUID"
