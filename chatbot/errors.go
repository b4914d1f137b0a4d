package chatbot

import "errors"

var (
	// ErrNotInitialized indicates the engine has not been initialized yet.
	ErrNotInitialized = errors.New("chatbot not initialized")

	// ErrNoData indicates the repository holds no phones to answer from.
	ErrNoData = errors.New("no phone data available")
)
