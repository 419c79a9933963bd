package model

type ContextKey string

const (
	// UserIDKey は認証ミドルウェアがリクエストコンテキストに入れるユーザーID (uuid.UUID)
	UserIDKey ContextKey = "userID"
)
